package snapshot

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/snapshot/internal/filter"
	"github.com/temirov/snapshot/internal/services/clipboard"
	"github.com/temirov/snapshot/internal/tokenizer"
	"github.com/temirov/snapshot/internal/walk"
)

const (
	// KindSource names the profile writing the full tree-and-contents artifact.
	KindSource = "source"
	// KindMarkdown names the profile gathering markdown files only.
	KindMarkdown = "markdown"

	// markdownSuffix selects the files the markdown profile collects.
	markdownSuffix = ".md"

	warningClipboardFormat  = "clipboard copy failed: %v"
	warningTokenCountFormat = "token estimate failed: %v"
)

// Generator runs the snapshot pipeline for one profile over one root:
// Configure, Walk+Filter, Collect, Assemble, Write. All state is built fresh
// per run and discarded afterwards.
type Generator struct {
	RootDirectory string
	Kind          string
	Filter        *filter.Config
	Logger        *zap.Logger
	Clipboard     clipboard.Copier
	TokenCounter  tokenizer.Counter
}

// Result summarizes one completed run.
type Result struct {
	OutputPath string
	FileCount  int
	Tokens     int
}

// Run produces and persists the snapshot document. Per-file and per-directory
// failures were already converted to sentinels or empty subtrees upstream, so
// the only error sources here are path resolution and the final write.
func (generator *Generator) Run() (Result, error) {
	absoluteRootPath, absolutePathError := filepath.Abs(generator.RootDirectory)
	if absolutePathError != nil {
		return Result{}, fmt.Errorf("resolving root %s: %w", generator.RootDirectory, absolutePathError)
	}

	treeWalker := walk.NewWalker(absoluteRootPath, generator.Filter)

	var fileBlocks []FileBlock
	collectVisit := func(relativePath string, absolutePath string) error {
		if generator.Kind == KindMarkdown && !strings.HasSuffix(strings.ToLower(relativePath), markdownSuffix) {
			return nil
		}
		fileBlocks = append(fileBlocks, FileBlock{
			RelativePath: relativePath,
			Content:      ReadOrSentinel(absolutePath),
		})
		return nil
	}
	if walkError := treeWalker.VisitFiles(collectVisit); walkError != nil {
		return Result{}, walkError
	}

	var document string
	var outputFileName string
	switch generator.Kind {
	case KindMarkdown:
		document = BuildMarkdownDocument(fileBlocks)
		outputFileName = filter.MarkdownSnapshotFileName
	default:
		document = BuildSourceDocument(filepath.Base(absoluteRootPath), treeWalker.TreeLines(), fileBlocks)
		outputFileName = filter.SourceSnapshotFileName
	}

	outputPath, writeError := WriteDocument(absoluteRootPath, outputFileName, document)
	if writeError != nil {
		return Result{}, writeError
	}

	runResult := Result{OutputPath: outputPath, FileCount: len(fileBlocks)}

	if generator.Clipboard != nil {
		if copyError := generator.Clipboard.Copy(document); copyError != nil {
			generator.warn(fmt.Sprintf(warningClipboardFormat, copyError))
		}
	}
	if generator.TokenCounter != nil {
		blockContents := make([]string, len(fileBlocks))
		for blockIndex, fileBlock := range fileBlocks {
			blockContents[blockIndex] = fileBlock.Content
		}
		totalTokens, countError := tokenizer.CountBlocks(generator.TokenCounter, blockContents)
		if countError != nil {
			generator.warn(fmt.Sprintf(warningTokenCountFormat, countError))
		} else {
			runResult.Tokens = totalTokens
		}
	}

	return runResult, nil
}

func (generator *Generator) warn(message string) {
	if generator.Logger != nil {
		generator.Logger.Warn(message)
	}
}
