package snapshot_test

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/temirov/snapshot/internal/snapshot"
)

// blockDelimiterExpression matches one content block delimiter line.
var blockDelimiterExpression = regexp.MustCompile(`(?m)^--- .+ ---$`)

// headerCountExpression extracts the file count from the artifact header.
var headerCountExpression = regexp.MustCompile(`^=== [A-Z ]+ \((\d+) files\) ===$`)

// assertHeaderCountMatchesBlocks verifies the header/blocks invariant on a
// finished document.
func assertHeaderCountMatchesBlocks(testingHandle *testing.T, document string, expectedCount int) {
	testingHandle.Helper()
	documentLines := strings.Split(document, "\n")
	headerMatch := headerCountExpression.FindStringSubmatch(documentLines[0])
	if headerMatch == nil {
		testingHandle.Fatalf("document does not open with a counting header: %q", documentLines[0])
	}
	if headerMatch[1] != fmt.Sprintf("%d", expectedCount) {
		testingHandle.Fatalf("header count %s, want %d", headerMatch[1], expectedCount)
	}
	delimiterCount := len(blockDelimiterExpression.FindAllString(document, -1))
	if delimiterCount != expectedCount {
		testingHandle.Fatalf("found %d content blocks, header promises %d", delimiterCount, expectedCount)
	}
}

// TestBuildMarkdownDocumentEmpty verifies the zero-file artifact: count zero
// and an empty content section.
func TestBuildMarkdownDocumentEmpty(testingHandle *testing.T) {
	document := snapshot.BuildMarkdownDocument(nil)
	if document != "=== MD SNAPSHOT (0 files) ===\n" {
		testingHandle.Fatalf("unexpected empty document: %q", document)
	}
	assertHeaderCountMatchesBlocks(testingHandle, document, 0)
}

// TestBuildMarkdownDocument verifies block framing and the count invariant.
func TestBuildMarkdownDocument(testingHandle *testing.T) {
	fileBlocks := []snapshot.FileBlock{
		{RelativePath: "README.md", Content: "# Title\n"},
		{RelativePath: "docs/guide.md", Content: "guide body without trailing newline"},
	}

	document := snapshot.BuildMarkdownDocument(fileBlocks)
	assertHeaderCountMatchesBlocks(testingHandle, document, 2)

	if !strings.Contains(document, "\n--- README.md ---\n# Title\n") {
		testingHandle.Fatalf("missing first block: %q", document)
	}
	if !strings.Contains(document, "\n--- docs/guide.md ---\nguide body without trailing newline\n") {
		testingHandle.Fatalf("missing newline-terminated second block: %q", document)
	}
}

// TestBuildSourceDocument verifies the header, tree section, and content
// section of the source artifact.
func TestBuildSourceDocument(testingHandle *testing.T) {
	treeLines := []string{
		"├── src",
		"│   └── main.go",
		"└── readme.txt",
	}
	fileBlocks := []snapshot.FileBlock{
		{RelativePath: "src/main.go", Content: "package main\n"},
		{RelativePath: "readme.txt", Content: "hello\n"},
	}

	document := snapshot.BuildSourceDocument("project", treeLines, fileBlocks)
	assertHeaderCountMatchesBlocks(testingHandle, document, 2)

	if !strings.Contains(document, "=== FOLDER TREE ===\n\nproject/\n├── src\n") {
		testingHandle.Fatalf("missing tree section: %q", document)
	}
	if !strings.Contains(document, "=== FILE CONTENTS ===\n") {
		testingHandle.Fatalf("missing content banner: %q", document)
	}
	treeIndex := strings.Index(document, "=== FOLDER TREE ===")
	contentsIndex := strings.Index(document, "=== FILE CONTENTS ===")
	if treeIndex < 0 || contentsIndex < 0 || treeIndex > contentsIndex {
		testingHandle.Fatalf("sections out of order: tree at %d, contents at %d", treeIndex, contentsIndex)
	}
}

// TestWriteDocument verifies that the artifact lands under its fixed name
// with the exact document bytes.
func TestWriteDocument(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	const document = "=== MD SNAPSHOT (0 files) ===\n"

	outputPath, writeError := snapshot.WriteDocument(rootDirectory, "md-snapshot.txt", document)
	if writeError != nil {
		testingHandle.Fatalf("WriteDocument failed: %v", writeError)
	}
	if outputPath != filepath.Join(rootDirectory, "md-snapshot.txt") {
		testingHandle.Fatalf("unexpected output path: %q", outputPath)
	}

	writtenBytes, readError := os.ReadFile(outputPath)
	if readError != nil {
		testingHandle.Fatalf("failed to read artifact: %v", readError)
	}
	if string(writtenBytes) != document {
		testingHandle.Fatalf("artifact content mismatch: got %q want %q", string(writtenBytes), document)
	}
}
