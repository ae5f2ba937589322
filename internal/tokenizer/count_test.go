package tokenizer_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/temirov/snapshot/internal/tokenizer"
)

// wordCounter is a deterministic Counter stand-in that counts words.
type wordCounter struct{}

func (wordCounter) Name() string { return "words" }

func (wordCounter) CountString(input string) (int, error) {
	return len(strings.Fields(input)), nil
}

// failingCounter always reports an error.
type failingCounter struct{}

func (failingCounter) Name() string { return "failing" }

func (failingCounter) CountString(input string) (int, error) {
	return 0, errors.New("count unavailable")
}

// TestCountBlocks verifies that block counts are summed across all blocks.
func TestCountBlocks(testingHandle *testing.T) {
	blockContents := []string{"one two three", "four five", "", "six"}

	totalTokens, countError := tokenizer.CountBlocks(wordCounter{}, blockContents)
	if countError != nil {
		testingHandle.Fatalf("CountBlocks failed: %v", countError)
	}
	if totalTokens != 6 {
		testingHandle.Fatalf("unexpected total: got %d want 6", totalTokens)
	}
}

// TestCountBlocksNilCounter verifies the nil counter guard.
func TestCountBlocksNilCounter(testingHandle *testing.T) {
	if _, countError := tokenizer.CountBlocks(nil, []string{"text"}); countError == nil {
		testingHandle.Fatal("expected an error for a nil counter")
	}
}

// TestCountBlocksPropagatesFailure verifies that a failing block fails the
// whole estimate.
func TestCountBlocksPropagatesFailure(testingHandle *testing.T) {
	if _, countError := tokenizer.CountBlocks(failingCounter{}, []string{"text"}); countError == nil {
		testingHandle.Fatal("expected the counter failure to propagate")
	}
}
