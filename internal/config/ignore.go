// Package config loads the root ignore-file and the optional application
// configuration for a snapshot run.
package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/temirov/snapshot/internal/utils"
)

// GitIgnoreFileName is the ignore-file read from the snapshot root.
const GitIgnoreFileName = ".gitignore"

// commentPrefix marks ignore-file lines that carry no pattern.
const commentPrefix = "#"

// LoadIgnoreFilePatterns reads one ignore-file and returns its patterns in
// file order. Blank lines and comment lines are dropped; everything else is
// used verbatim as a glob pattern. A missing file yields no patterns and no
// error.
func LoadIgnoreFilePatterns(ignoreFilePath string) ([]string, error) {
	fileHandle, openFileError := os.Open(ignoreFilePath)
	if openFileError != nil {
		if os.IsNotExist(openFileError) {
			return nil, nil
		}
		return nil, openFileError
	}
	defer func() {
		if closeError := fileHandle.Close(); closeError != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close %s: %v\n", ignoreFilePath, closeError)
		}
	}()

	var ignorePatterns []string
	lineScanner := bufio.NewScanner(fileHandle)
	for lineScanner.Scan() {
		trimmedLine := strings.TrimSpace(lineScanner.Text())
		if trimmedLine == "" || strings.HasPrefix(trimmedLine, commentPrefix) {
			continue
		}
		ignorePatterns = append(ignorePatterns, trimmedLine)
	}
	if scanError := lineScanner.Err(); scanError != nil {
		return nil, scanError
	}
	return ignorePatterns, nil
}

// LoadRootPatterns aggregates the patterns for a snapshot of rootDirectory:
// the root .gitignore (when useGitignore is set) followed by any extra
// exclusion patterns from the application configuration. The result is
// deduplicated while preserving order.
func LoadRootPatterns(rootDirectory string, extraExclusions []string, useGitignore bool) ([]string, error) {
	var combinedPatterns []string

	if useGitignore {
		gitIgnoreFilePath := filepath.Join(rootDirectory, GitIgnoreFileName)
		gitIgnorePatterns, loadError := LoadIgnoreFilePatterns(gitIgnoreFilePath)
		if loadError != nil {
			return nil, fmt.Errorf("loading %s from %s: %w", GitIgnoreFileName, rootDirectory, loadError)
		}
		combinedPatterns = append(combinedPatterns, gitIgnorePatterns...)
	}

	for _, exclusionPattern := range extraExclusions {
		trimmedPattern := strings.TrimSpace(exclusionPattern)
		if trimmedPattern == "" {
			continue
		}
		combinedPatterns = append(combinedPatterns, trimmedPattern)
	}

	return utils.DeduplicatePatterns(combinedPatterns), nil
}
