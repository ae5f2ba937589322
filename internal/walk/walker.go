// Package walk traverses a directory tree under a filter configuration and
// renders the surviving structure.
package walk

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/temirov/snapshot/internal/filter"
)

const (
	// treeBranchConnector marks a sibling with further siblings below it.
	treeBranchConnector = "├── "
	// treeLastConnector marks the last sibling of its group.
	treeLastConnector = "└── "
	// treeBranchPadding continues an ancestor level that still has siblings.
	treeBranchPadding = "│   "
	// treeLastPadding blanks an ancestor level whose last child was emitted.
	treeLastPadding = "    "

	relativePathSeparator = "/"
)

// Walker performs a deterministic depth-first traversal of RootDirectory.
// Denied directories are pruned before their listing is read, so a denied
// subtree contributes nothing to either output. Every method recomputes its
// result from the live filesystem; nothing is cached between calls.
type Walker struct {
	RootDirectory string
	Filter        *filter.Config
}

// NewWalker constructs a Walker over rootDirectory with the given policy.
func NewWalker(rootDirectory string, filterConfiguration *filter.Config) *Walker {
	return &Walker{RootDirectory: rootDirectory, Filter: filterConfiguration}
}

// FileVisit receives each surviving file in traversal order. Returning an
// error stops the walk and propagates out of VisitFiles.
type FileVisit func(relativePath string, absolutePath string) error

// childEntry is one surviving directory member awaiting traversal.
type childEntry struct {
	absolutePath string
	relativePath string
	entryName    string
	isDirectory  bool
}

// treeFrame is a pending tree line on the explicit traversal stack.
type treeFrame struct {
	entry  childEntry
	prefix string
	isLast bool
}

// TreeLines renders the surviving tree as connector-prefixed lines, one per
// entry, in traversal order. The root itself is not included.
func (walker *Walker) TreeLines() []string {
	var treeLines []string

	frameStack := appendFramesReversed(nil, walker.survivingChildren(walker.RootDirectory, ""), "")
	for len(frameStack) > 0 {
		currentFrame := frameStack[len(frameStack)-1]
		frameStack = frameStack[:len(frameStack)-1]

		connector := treeBranchConnector
		childPadding := treeBranchPadding
		if currentFrame.isLast {
			connector = treeLastConnector
			childPadding = treeLastPadding
		}
		treeLines = append(treeLines, currentFrame.prefix+connector+currentFrame.entry.entryName)

		if currentFrame.entry.isDirectory {
			childEntries := walker.survivingChildren(currentFrame.entry.absolutePath, currentFrame.entry.relativePath)
			frameStack = appendFramesReversed(frameStack, childEntries, currentFrame.prefix+childPadding)
		}
	}

	return treeLines
}

// VisitFiles drives visit over every surviving file in traversal order:
// within each directory the sorted subdirectories are fully exhausted before
// the directory's own files are visited.
func (walker *Walker) VisitFiles(visit FileVisit) error {
	entryStack := appendEntriesReversed(nil, walker.survivingChildren(walker.RootDirectory, ""))
	for len(entryStack) > 0 {
		currentEntry := entryStack[len(entryStack)-1]
		entryStack = entryStack[:len(entryStack)-1]

		if currentEntry.isDirectory {
			childEntries := walker.survivingChildren(currentEntry.absolutePath, currentEntry.relativePath)
			entryStack = appendEntriesReversed(entryStack, childEntries)
			continue
		}
		if visitError := visit(currentEntry.relativePath, currentEntry.absolutePath); visitError != nil {
			return visitError
		}
	}
	return nil
}

// survivingChildren lists, filters, and orders the immediate children of one
// directory. Directories sort before files; names sort lexicographically
// within each group. A listing failure is treated as an empty subtree so the
// walk continues over the rest of the tree.
func (walker *Walker) survivingChildren(absoluteDirectoryPath string, relativeDirectoryPath string) []childEntry {
	directoryEntries, readDirectoryError := os.ReadDir(absoluteDirectoryPath)
	if readDirectoryError != nil {
		return nil
	}

	var survivors []childEntry
	for _, directoryEntry := range directoryEntries {
		entryName := directoryEntry.Name()
		childRelativePath := entryName
		if relativeDirectoryPath != "" {
			childRelativePath = relativeDirectoryPath + relativePathSeparator + entryName
		}
		if walker.Filter.ShouldSkip(childRelativePath, directoryEntry.IsDir()) {
			continue
		}
		survivors = append(survivors, childEntry{
			absolutePath: filepath.Join(absoluteDirectoryPath, entryName),
			relativePath: childRelativePath,
			entryName:    entryName,
			isDirectory:  directoryEntry.IsDir(),
		})
	}

	sort.Slice(survivors, func(firstIndex, secondIndex int) bool {
		if survivors[firstIndex].isDirectory != survivors[secondIndex].isDirectory {
			return survivors[firstIndex].isDirectory
		}
		return survivors[firstIndex].entryName < survivors[secondIndex].entryName
	})
	return survivors
}

// appendFramesReversed pushes child frames so the first child is popped
// first, tagging the final child as the last of its sibling group.
func appendFramesReversed(frameStack []treeFrame, childEntries []childEntry, prefix string) []treeFrame {
	for childIndex := len(childEntries) - 1; childIndex >= 0; childIndex-- {
		frameStack = append(frameStack, treeFrame{
			entry:  childEntries[childIndex],
			prefix: prefix,
			isLast: childIndex == len(childEntries)-1,
		})
	}
	return frameStack
}

// appendEntriesReversed pushes child entries so the first child is popped first.
func appendEntriesReversed(entryStack []childEntry, childEntries []childEntry) []childEntry {
	for childIndex := len(childEntries) - 1; childIndex >= 0; childIndex-- {
		entryStack = append(entryStack, childEntries[childIndex])
	}
	return entryStack
}
