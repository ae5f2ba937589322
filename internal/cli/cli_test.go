package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/temirov/snapshot/internal/filter"
)

// TestRootCommandRunsMarkdownProfile verifies the wiring from the command
// line down to a written artifact.
func TestRootCommandRunsMarkdownProfile(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	readmePath := filepath.Join(rootDirectory, "README.md")
	if writeError := os.WriteFile(readmePath, []byte("# Project\n"), 0o644); writeError != nil {
		testingHandle.Fatalf("failed to write %s: %v", readmePath, writeError)
	}

	rootCommand := newRootCommand()
	rootCommand.SetArgs([]string{"markdown", rootDirectory})
	if executeError := rootCommand.Execute(); executeError != nil {
		testingHandle.Fatalf("Execute failed: %v", executeError)
	}

	artifactBytes, readError := os.ReadFile(filepath.Join(rootDirectory, filter.MarkdownSnapshotFileName))
	if readError != nil {
		testingHandle.Fatalf("artifact missing: %v", readError)
	}
	if !strings.Contains(string(artifactBytes), "--- README.md ---") {
		testingHandle.Fatalf("artifact lacks the collected block: %q", string(artifactBytes))
	}
}

// TestRootCommandRejectsMissingPath verifies validation of the root argument.
func TestRootCommandRejectsMissingPath(testingHandle *testing.T) {
	rootCommand := newRootCommand()
	rootCommand.SetArgs([]string{"source", filepath.Join(testingHandle.TempDir(), "absent")})
	if executeError := rootCommand.Execute(); executeError == nil {
		testingHandle.Fatal("expected an error for a missing root path")
	}
}

// TestRootCommandRejectsFileRoot verifies that a file path is refused.
func TestRootCommandRejectsFileRoot(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	filePath := filepath.Join(rootDirectory, "plain.txt")
	if writeError := os.WriteFile(filePath, []byte("text\n"), 0o644); writeError != nil {
		testingHandle.Fatalf("failed to write %s: %v", filePath, writeError)
	}

	rootCommand := newRootCommand()
	rootCommand.SetArgs([]string{"source", filePath})
	if executeError := rootCommand.Execute(); executeError == nil {
		testingHandle.Fatal("expected an error for a file root")
	}
}
