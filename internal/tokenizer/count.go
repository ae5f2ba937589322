package tokenizer

import (
	"errors"

	"golang.org/x/sync/errgroup"
)

// CountBlocks estimates the combined token count of the provided content
// blocks. Blocks are counted concurrently; the sum is order-independent, so
// the artifact ordering guarantees are unaffected.
func CountBlocks(counter Counter, blockContents []string) (int, error) {
	if counter == nil {
		return 0, errors.New("nil tokenizer counter")
	}

	blockCounts := make([]int, len(blockContents))
	countGroup := new(errgroup.Group)
	for blockIndex, blockContent := range blockContents {
		blockIndex, blockContent := blockIndex, blockContent
		countGroup.Go(func() error {
			tokenCount, countError := counter.CountString(blockContent)
			if countError != nil {
				return countError
			}
			blockCounts[blockIndex] = tokenCount
			return nil
		})
	}
	if waitError := countGroup.Wait(); waitError != nil {
		return 0, waitError
	}

	totalTokens := 0
	for _, blockCount := range blockCounts {
		totalTokens += blockCount
	}
	return totalTokens, nil
}
