package snapshot_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/temirov/snapshot/internal/snapshot"
)

// TestReadOrSentinelText verifies that readable UTF-8 content is returned
// unchanged.
func TestReadOrSentinelText(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	filePath := filepath.Join(rootDirectory, "plain.txt")
	const fileContent = "line one\nline two\n"
	if writeError := os.WriteFile(filePath, []byte(fileContent), 0o644); writeError != nil {
		testingHandle.Fatalf("failed to write %s: %v", filePath, writeError)
	}

	actualContent := snapshot.ReadOrSentinel(filePath)
	if actualContent != fileContent {
		testingHandle.Fatalf("unexpected content: got %q want %q", actualContent, fileContent)
	}
}

// TestReadOrSentinelInvalidEncoding verifies that non-UTF-8 bytes yield the
// encoding sentinel on a single line.
func TestReadOrSentinelInvalidEncoding(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	filePath := filepath.Join(rootDirectory, "garbled.bin")
	if writeError := os.WriteFile(filePath, []byte{0xff, 0xfe, 0xfd}, 0o644); writeError != nil {
		testingHandle.Fatalf("failed to write %s: %v", filePath, writeError)
	}

	sentinelContent := snapshot.ReadOrSentinel(filePath)
	if !strings.HasPrefix(sentinelContent, "[UNREADABLE: encoding:") {
		testingHandle.Fatalf("unexpected sentinel: %q", sentinelContent)
	}
	if strings.Contains(sentinelContent, "\n") {
		testingHandle.Fatalf("sentinel must be a single line: %q", sentinelContent)
	}
}

// TestReadOrSentinelMissingFile verifies that an unreadable path yields the
// io sentinel instead of failing.
func TestReadOrSentinelMissingFile(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()

	sentinelContent := snapshot.ReadOrSentinel(filepath.Join(rootDirectory, "absent.txt"))
	if !strings.HasPrefix(sentinelContent, "[UNREADABLE: io:") {
		testingHandle.Fatalf("unexpected sentinel: %q", sentinelContent)
	}
	if strings.Contains(sentinelContent, "\n") {
		testingHandle.Fatalf("sentinel must be a single line: %q", sentinelContent)
	}
}

// TestReadOrSentinelPermission verifies the permission failure category.
func TestReadOrSentinelPermission(testingHandle *testing.T) {
	if os.Geteuid() == 0 {
		testingHandle.Skip("permission checks are bypassed when running as root")
	}

	rootDirectory := testingHandle.TempDir()
	filePath := filepath.Join(rootDirectory, "guarded.txt")
	if writeError := os.WriteFile(filePath, []byte("secret\n"), 0o000); writeError != nil {
		testingHandle.Fatalf("failed to write %s: %v", filePath, writeError)
	}

	sentinelContent := snapshot.ReadOrSentinel(filePath)
	if !strings.HasPrefix(sentinelContent, "[UNREADABLE: permission:") {
		testingHandle.Fatalf("unexpected sentinel: %q", sentinelContent)
	}
}
