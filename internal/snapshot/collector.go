// Package snapshot assembles and persists the textual snapshot document.
package snapshot

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

const (
	// sentinelFormat frames the substitute content of an unreadable file.
	sentinelFormat = "[UNREADABLE: %s: %s]"

	failureCategoryPermission = "permission"
	failureCategoryEncoding   = "encoding"
	failureCategoryIO         = "io"

	encodingFailureDetail = "invalid UTF-8 data"
)

// ReadOrSentinel returns the UTF-8 text content of the file at absolutePath,
// or a single-line sentinel naming the failure category when the file cannot
// be read or decoded. It never fails: an unreadable file still yields a
// content block, so the walk completes exactly once over the filtered set.
func ReadOrSentinel(absolutePath string) string {
	fileBytes, readError := os.ReadFile(absolutePath)
	if readError != nil {
		failureCategory := failureCategoryIO
		if os.IsPermission(readError) {
			failureCategory = failureCategoryPermission
		}
		return fmt.Sprintf(sentinelFormat, failureCategory, collapseWhitespace(readError.Error()))
	}
	if !utf8.Valid(fileBytes) {
		return fmt.Sprintf(sentinelFormat, failureCategoryEncoding, encodingFailureDetail)
	}
	return string(fileBytes)
}

// collapseWhitespace flattens a message onto one line.
func collapseWhitespace(message string) string {
	return strings.Join(strings.Fields(message), " ")
}
