package snapshot

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/temirov/snapshot/internal/filelock"
	"github.com/temirov/snapshot/internal/filter"
)

const (
	// sourceHeaderFormat opens the source profile artifact.
	sourceHeaderFormat = "=== REPO SNAPSHOT (%d files) ===\n"
	// markdownHeaderFormat opens the markdown profile artifact.
	markdownHeaderFormat = "=== MD SNAPSHOT (%d files) ===\n"
	// folderTreeBanner introduces the rendered tree section.
	folderTreeBanner = "=== FOLDER TREE ===\n"
	// fileContentsBanner introduces the content section.
	fileContentsBanner = "=== FILE CONTENTS ===\n"
	// blockDelimiterFormat labels one file's content with its relative path.
	blockDelimiterFormat = "--- %s ---\n"
)

// FileBlock is one surviving file's labeled content within the document.
// Content holds either the file's text or the collector's sentinel.
type FileBlock struct {
	RelativePath string
	Content      string
}

// BuildSourceDocument produces the source profile artifact: a counting
// header, the rendered tree under rootName, and one delimited block per
// file. The header count always equals the number of blocks emitted.
func BuildSourceDocument(rootName string, treeLines []string, fileBlocks []FileBlock) string {
	var documentBuilder strings.Builder
	fmt.Fprintf(&documentBuilder, sourceHeaderFormat, len(fileBlocks))
	documentBuilder.WriteString("\n")
	documentBuilder.WriteString(folderTreeBanner)
	documentBuilder.WriteString("\n")
	documentBuilder.WriteString(rootName + "/\n")
	for _, treeLine := range treeLines {
		documentBuilder.WriteString(treeLine + "\n")
	}
	documentBuilder.WriteString("\n")
	documentBuilder.WriteString(fileContentsBanner)
	appendFileBlocks(&documentBuilder, fileBlocks)
	return documentBuilder.String()
}

// BuildMarkdownDocument produces the markdown profile artifact: a counting
// header followed by one delimited block per file, with no tree section.
func BuildMarkdownDocument(fileBlocks []FileBlock) string {
	var documentBuilder strings.Builder
	fmt.Fprintf(&documentBuilder, markdownHeaderFormat, len(fileBlocks))
	appendFileBlocks(&documentBuilder, fileBlocks)
	return documentBuilder.String()
}

// appendFileBlocks writes each file as a path-labeled delimiter line followed
// by its newline-terminated content.
func appendFileBlocks(documentBuilder *strings.Builder, fileBlocks []FileBlock) {
	for _, fileBlock := range fileBlocks {
		documentBuilder.WriteString("\n")
		fmt.Fprintf(documentBuilder, blockDelimiterFormat, fileBlock.RelativePath)
		documentBuilder.WriteString(fileBlock.Content)
		if !strings.HasSuffix(fileBlock.Content, "\n") {
			documentBuilder.WriteString("\n")
		}
	}
}

// WriteDocument persists the document under its fixed name in rootDirectory,
// holding the artifact lock for the duration of an atomic write. It returns
// the absolute path of the written artifact.
func WriteDocument(rootDirectory string, outputFileName string, document string) (string, error) {
	outputPath := filepath.Join(rootDirectory, outputFileName)

	artifactLock := filelock.NewArtifactLock(filepath.Join(rootDirectory, filter.LockFileName))
	if lockError := artifactLock.Lock(); lockError != nil {
		return "", lockError
	}
	defer artifactLock.Unlock()

	if writeError := filelock.AtomicWrite(outputPath, []byte(document)); writeError != nil {
		return "", writeError
	}
	return outputPath, nil
}
