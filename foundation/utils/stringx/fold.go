// File: fold.go
// Title: Case Insensitive Matching
// Description: Rune-wise case folding used by the IgnoreCase variants. Index
//              results stay in rune positions of the original string, which
//              rules out searching a lower-cased copy whose length may differ.
// Author: satish049
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

package stringx

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// foldCase applies full Unicode case folding, so "Straße" and "STRASSE"
// fold to the same string.
func foldCase(s string) string {
	return cases.Fold().String(s)
}

func equalFoldRune(a, b rune) bool {
	if a == b {
		return true
	}
	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}
	return false
}

// prefixFold reports whether s starts with prefix under simple folding and
// returns the number of bytes of s the prefix covered.
func prefixFold(s, prefix string) (int, bool) {
	i := 0
	for _, pr := range prefix {
		if i >= len(s) {
			return 0, false
		}
		sr, size := utf8.DecodeRuneInString(s[i:])
		if !equalFoldRune(sr, pr) {
			return 0, false
		}
		i += size
	}
	return i, true
}

// suffixFold reports whether s ends with suffix under simple folding and
// returns the byte offset in s where the suffix starts.
func suffixFold(s, suffix string) (int, bool) {
	i, j := len(s), len(suffix)
	for j > 0 {
		if i == 0 {
			return 0, false
		}
		pr, psize := utf8.DecodeLastRuneInString(suffix[:j])
		sr, ssize := utf8.DecodeLastRuneInString(s[:i])
		if !equalFoldRune(sr, pr) {
			return 0, false
		}
		i -= ssize
		j -= psize
	}
	return i, true
}

// indexFold returns the rune position of the first case-insensitive match
// of substr in s at or after rune position from.
func indexFold(s, substr string, from int) int {
	pos := 0
	for b := range s {
		if pos >= from {
			if _, ok := prefixFold(s[b:], substr); ok {
				return pos
			}
		}
		pos++
	}
	if substr == "" && from <= pos {
		return pos
	}
	return IndexNotFound
}

// lastIndexFold returns the rune position of the last case-insensitive
// match of substr lying entirely inside s.
func lastIndexFold(s, substr string) int {
	if substr == "" {
		return utf8.RuneCountInString(s)
	}
	starts := make([]int, 0, len(s))
	for b := range s {
		starts = append(starts, b)
	}
	for pos := len(starts) - 1; pos >= 0; pos-- {
		if _, ok := prefixFold(s[starts[pos]:], substr); ok {
			return pos
		}
	}
	return IndexNotFound
}
