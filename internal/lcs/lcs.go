// Package lcs finds the longest common word prefix of a slice of
// identifiers. It backs the trimprefix = "auto" directive option.
package lcs

import (
	"cmp"
	"slices"
	"strings"
)

// CommonWordPrefix returns the longest common prefix of the strings in ss
// based on word boundaries detected by [SplitWords]. It never cuts a word in
// half: CommonWordPrefix for "KindFile" and "KindFloat" is "Kind", not
// "KindF".
func CommonWordPrefix(ss []string) string {
	var words [][]string
	for _, s := range ss {
		words = append(words, SplitWords(s))
	}
	return strings.Join(commonPrefix(words), "")
}

// commonPrefix returns the common leading words of the word lists. The
// common prefix of the lexicographically smallest and largest lists is the
// common prefix of all of them.
func commonPrefix(words [][]string) []string {
	if len(words) == 0 {
		return nil
	}

	cmpFn := func(a, b []string) int {
		for i := 0; i < min(len(a), len(b)); i++ {
			if c := cmp.Compare(a[i], b[i]); c != 0 {
				return c
			}
		}
		return cmp.Compare(len(a), len(b))
	}

	lo := slices.MinFunc(words, cmpFn)
	hi := slices.MaxFunc(words, cmpFn)

	for i := range lo {
		if i >= len(hi) || lo[i] != hi[i] {
			return lo[:i]
		}
	}
	return lo
}

// SplitWords splits an identifier into words based on character transitions.
// It detects word boundaries at:
//   - Uppercase letter after lowercase letter: "getID" -> "get" + "ID"
//   - Uppercase letter before lowercase letter: "HTTPServer" -> "HTTP" + "Server"
//   - Around underscores: "send_nowait" -> "send" + "_" + "nowait"
//   - Around digits: "file2name" -> "file" + "2" + "name"
func SplitWords(s string) []string {
	var words []string
	i := 0
	for i < len(s) {
		split := false

		for j := i + 1; j < len(s); j++ {
			var next byte
			if j != len(s)-1 {
				next = s[j+1]
			}

			if isWordBoundary(s[j-1], s[j], next) {
				words = append(words, s[i:j])
				i = j
				split = true
				break
			}
		}

		if !split {
			words = append(words, s[i:])
			break
		}
	}
	return words
}

func isWordBoundary(prev, curr, next byte) bool {
	// camelCase transitions
	if isLower(prev) && isUpper(curr) {
		return true
	}
	if isUpper(curr) && isLower(next) {
		return true
	}

	// Around underscores
	if prev != '_' && curr == '_' {
		return true
	}
	if prev == '_' && curr != '_' {
		return true
	}

	// Around digits
	if isLetter(prev) && isDigit(curr) {
		return true
	}
	if isDigit(prev) && isLetter(curr) {
		return true
	}

	return false
}

func isLower(b byte) bool  { return 'a' <= b && b <= 'z' }
func isUpper(b byte) bool  { return 'A' <= b && b <= 'Z' }
func isDigit(b byte) bool  { return '0' <= b && b <= '9' }
func isLetter(b byte) bool { return isLower(b) || isUpper(b) }
