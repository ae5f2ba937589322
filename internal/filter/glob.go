// Package filter decides which filesystem entries survive a snapshot run.
package filter

import "strings"

const (
	// pathSeparator is the canonical separator for relative snapshot paths.
	pathSeparator = "/"
	// classNegationMark negates a character class when it appears first.
	classNegationMark = '!'
	// classNegationAlternate is the caret form of class negation.
	classNegationAlternate = '^'
)

// Match reports whether candidate matches the shell-style glob pattern.
// The wildcard `*` matches any run of characters including path separators,
// `?` matches exactly one character, and `[...]` matches a character class
// with optional ranges and leading `!` or `^` negation. Matching is
// case-sensitive. There is no pattern negation and no escape character; a
// malformed class is matched as the literal `[`.
func Match(patternValue string, candidateValue string) bool {
	return matchRunes([]rune(patternValue), []rune(candidateValue))
}

// MatchesAny reports whether any ignore pattern matches the relative path,
// either against the full path or against its final segment alone.
func MatchesAny(relativePath string, ignorePatterns []string) bool {
	baseName := relativePath
	if separatorIndex := strings.LastIndex(relativePath, pathSeparator); separatorIndex >= 0 {
		baseName = relativePath[separatorIndex+len(pathSeparator):]
	}
	for _, patternValue := range ignorePatterns {
		if Match(patternValue, relativePath) {
			return true
		}
		if Match(patternValue, baseName) {
			return true
		}
	}
	return false
}

// matchRunes implements glob matching with iterative star backtracking.
func matchRunes(patternRunes []rune, candidateRunes []rune) bool {
	patternIndex := 0
	candidateIndex := 0
	starPatternIndex := -1
	starCandidateIndex := 0

	for candidateIndex < len(candidateRunes) {
		if patternIndex < len(patternRunes) {
			switch patternRunes[patternIndex] {
			case '*':
				starPatternIndex = patternIndex
				starCandidateIndex = candidateIndex
				patternIndex++
				continue
			case '?':
				patternIndex++
				candidateIndex++
				continue
			case '[':
				matched, nextPatternIndex := matchClass(patternRunes, patternIndex, candidateRunes[candidateIndex])
				if matched {
					patternIndex = nextPatternIndex
					candidateIndex++
					continue
				}
			default:
				if patternRunes[patternIndex] == candidateRunes[candidateIndex] {
					patternIndex++
					candidateIndex++
					continue
				}
			}
		}
		if starPatternIndex >= 0 {
			starCandidateIndex++
			patternIndex = starPatternIndex + 1
			candidateIndex = starCandidateIndex
			continue
		}
		return false
	}

	for patternIndex < len(patternRunes) && patternRunes[patternIndex] == '*' {
		patternIndex++
	}
	return patternIndex == len(patternRunes)
}

// matchClass evaluates the character class starting at openIndex against a
// single rune. It returns whether the rune matched and the pattern index just
// past the closing bracket. An unterminated class falls back to matching the
// literal `[` character.
func matchClass(patternRunes []rune, openIndex int, candidateRune rune) (bool, int) {
	scanIndex := openIndex + 1
	negated := false
	if scanIndex < len(patternRunes) && (patternRunes[scanIndex] == classNegationMark || patternRunes[scanIndex] == classNegationAlternate) {
		negated = true
		scanIndex++
	}

	closeIndex := scanIndex
	// A `]` in the first position is a literal member of the class.
	if closeIndex < len(patternRunes) && patternRunes[closeIndex] == ']' {
		closeIndex++
	}
	for closeIndex < len(patternRunes) && patternRunes[closeIndex] != ']' {
		closeIndex++
	}
	if closeIndex >= len(patternRunes) {
		return candidateRune == '[', openIndex + 1
	}

	matched := false
	memberIndex := scanIndex
	for memberIndex < closeIndex {
		if memberIndex+2 < closeIndex && patternRunes[memberIndex+1] == '-' {
			if patternRunes[memberIndex] <= candidateRune && candidateRune <= patternRunes[memberIndex+2] {
				matched = true
			}
			memberIndex += 3
			continue
		}
		if patternRunes[memberIndex] == candidateRune {
			matched = true
		}
		memberIndex++
	}

	if negated {
		matched = !matched
	}
	return matched, closeIndex + 1
}
