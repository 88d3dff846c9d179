// File: index.go
// Title: Searching and Comparison
// Description: Index, contains, prefix and difference functions. All
//              positions are rune positions; IndexNotFound signals no match.
// Author: satish049
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IndexOf returns the rune position of the first occurrence of search in s
// at or after startPos. A negative startPos is treated as 0; a startPos past
// the end of s yields IndexNotFound.
func IndexOf(s, search string, startPos int) int {
	if startPos < 0 {
		startPos = 0
	}
	if startPos > Length(s) {
		return IndexNotFound
	}
	return indexFrom(s, search, startPos)
}

// IndexOfIgnoreCase is IndexOf with case-insensitive matching.
func IndexOfIgnoreCase(s, search string, startPos int) int {
	if startPos < 0 {
		startPos = 0
	}
	if startPos > Length(s) {
		return IndexNotFound
	}
	return indexFold(s, search, startPos)
}

// LastIndexOf returns the rune position of the last occurrence of search.
func LastIndexOf(s, search string) int {
	i := strings.LastIndex(s, search)
	if i < 0 {
		return IndexNotFound
	}
	return runeOffset(s, i)
}

// LastIndexOfFrom returns the last occurrence of search that lies entirely
// within the runes [0, startPos] of s. A startPos outside s yields
// IndexNotFound.
func LastIndexOfFrom(s, search string, startPos int) int {
	if startPos < 0 || startPos > Length(s) {
		return IndexNotFound
	}
	return LastIndexOf(sliceRunes(s, 0, min(startPos+1, Length(s))), search)
}

// LastIndexOfIgnoreCase is LastIndexOf with case-insensitive matching.
func LastIndexOfIgnoreCase(s, search string) int {
	return lastIndexFold(s, search)
}

// OrdinalIndexOf returns the position of the n-th non-overlapping
// occurrence of search, counting from 1. An empty search is found at 0.
func OrdinalIndexOf(s, search string, ordinal int) int {
	if ordinal <= 0 {
		return IndexNotFound
	}
	if search == "" {
		return 0
	}
	step := Length(search)
	index := IndexNotFound
	from := 0
	for found := 0; found < ordinal; found++ {
		index = indexFrom(s, search, from)
		if index < 0 {
			return IndexNotFound
		}
		from = index + step
	}
	return index
}

// LastOrdinalIndexOf returns the position of the n-th non-overlapping
// occurrence of search counting back from the end. An empty search is found
// at Length(s).
func LastOrdinalIndexOf(s, search string, ordinal int) int {
	if ordinal <= 0 {
		return IndexNotFound
	}
	if search == "" {
		return Length(s)
	}
	index := Length(s)
	for found := 0; found < ordinal; found++ {
		index = LastIndexOf(sliceRunes(s, 0, index), search)
		if index < 0 {
			return IndexNotFound
		}
	}
	return index
}

// Contains reports whether search occurs in s.
func Contains(s, search string) bool {
	return strings.Contains(s, search)
}

// ContainsIgnoreCase reports whether search occurs in s ignoring case.
func ContainsIgnoreCase(s, search string) bool {
	return indexFold(s, search, 0) != IndexNotFound
}

// ContainsWhitespace reports whether s contains any whitespace rune.
func ContainsWhitespace(s string) bool {
	return strings.IndexFunc(s, unicode.IsSpace) >= 0
}

// IndexOfAny returns the position of the first rune of s that is one of
// chars.
func IndexOfAny(s, chars string) int {
	if s == "" || chars == "" {
		return IndexNotFound
	}
	i := strings.IndexAny(s, chars)
	if i < 0 {
		return IndexNotFound
	}
	return runeOffset(s, i)
}

// IndexOfAnyBut returns the position of the first rune of s that is not one
// of chars.
func IndexOfAnyBut(s, chars string) int {
	if s == "" || chars == "" {
		return IndexNotFound
	}
	pos := 0
	for _, r := range s {
		if !strings.ContainsRune(chars, r) {
			return pos
		}
		pos++
	}
	return IndexNotFound
}

// ContainsAny reports whether s contains any rune of chars.
func ContainsAny(s, chars string) bool {
	return IndexOfAny(s, chars) != IndexNotFound
}

// ContainsAnyString reports whether s contains any of the search strings.
// Empty search strings match nothing.
func ContainsAnyString(s string, searches ...string) bool {
	for _, search := range searches {
		if search != "" && strings.Contains(s, search) {
			return true
		}
	}
	return false
}

// ContainsOnly reports whether every rune of s is one of chars. The empty
// string contains only valid characters; an empty chars set accepts nothing
// else.
func ContainsOnly(s, chars string) bool {
	if s == "" {
		return true
	}
	if chars == "" {
		return false
	}
	return IndexOfAnyBut(s, chars) == IndexNotFound
}

// ContainsNone reports whether s contains no rune of chars.
func ContainsNone(s, chars string) bool {
	return !strings.ContainsAny(s, chars)
}

// IndexOfAnyString returns the smallest position at which any of the
// searches occurs. Empty searches are ignored.
func IndexOfAnyString(s string, searches ...string) int {
	best := IndexNotFound
	for _, search := range searches {
		if search == "" {
			continue
		}
		i := strings.Index(s, search)
		if i >= 0 && (best < 0 || i < best) {
			best = i
		}
	}
	if best < 0 {
		return IndexNotFound
	}
	return runeOffset(s, best)
}

// LastIndexOfAnyString returns the largest position at which any of the
// searches occurs. Empty searches are ignored.
func LastIndexOfAnyString(s string, searches ...string) int {
	best := IndexNotFound
	for _, search := range searches {
		if search == "" {
			continue
		}
		if i := strings.LastIndex(s, search); i > best {
			best = i
		}
	}
	if best < 0 {
		return IndexNotFound
	}
	return runeOffset(s, best)
}

// CountMatches counts non-overlapping occurrences of sub in s.
func CountMatches(s, sub string) int {
	if s == "" || sub == "" {
		return 0
	}
	return strings.Count(s, sub)
}

// CountRune counts occurrences of r in s.
func CountRune(s string, r rune) int {
	n := 0
	for _, c := range s {
		if c == r {
			n++
		}
	}
	return n
}

// StartsWith reports whether s begins with prefix, optionally ignoring case.
func StartsWith(s, prefix string, ignoreCase bool) bool {
	if ignoreCase {
		_, ok := prefixFold(s, prefix)
		return ok
	}
	return strings.HasPrefix(s, prefix)
}

// EndsWith reports whether s ends with suffix, optionally ignoring case.
func EndsWith(s, suffix string, ignoreCase bool) bool {
	if ignoreCase {
		_, ok := suffixFold(s, suffix)
		return ok
	}
	return strings.HasSuffix(s, suffix)
}

// StartsWithAny reports whether s begins with any of the prefixes. An empty
// s or an empty prefix list yields false.
func StartsWithAny(s string, ignoreCase bool, prefixes ...string) bool {
	if s == "" {
		return false
	}
	for _, p := range prefixes {
		if StartsWith(s, p, ignoreCase) {
			return true
		}
	}
	return false
}

// EndsWithAny reports whether s ends with any of the suffixes. An empty s or
// an empty suffix list yields false.
func EndsWithAny(s string, ignoreCase bool, suffixes ...string) bool {
	if s == "" {
		return false
	}
	for _, suf := range suffixes {
		if EndsWith(s, suf, ignoreCase) {
			return true
		}
	}
	return false
}

// IndexOfDifference returns the first rune position at which a and b
// differ, or IndexNotFound when they are equal.
func IndexOfDifference(a, b string) int {
	if a == b {
		return IndexNotFound
	}
	pos := 0
	for a != "" && b != "" {
		ra, na := utf8.DecodeRuneInString(a)
		rb, nb := utf8.DecodeRuneInString(b)
		if ra != rb {
			break
		}
		a, b = a[na:], b[nb:]
		pos++
	}
	return pos
}

// IndexOfDifferenceAll returns the first rune position at which any of the
// strings differ. Fewer than two strings, or all strings equal, yield
// IndexNotFound.
func IndexOfDifferenceAll(strs ...string) int {
	if len(strs) <= 1 {
		return IndexNotFound
	}
	first := strs[0]
	result := IndexNotFound
	for _, s := range strs[1:] {
		d := IndexOfDifference(first, s)
		if d != IndexNotFound && (result == IndexNotFound || d < result) {
			result = d
		}
	}
	return result
}

// Difference returns the remainder of b from the point where it differs
// from a, or "" when they are equal.
func Difference(a, b string) string {
	at := IndexOfDifference(a, b)
	if at == IndexNotFound {
		return ""
	}
	return sliceRunes(b, at, Length(b))
}

// CommonPrefix returns the longest prefix shared by all strings.
func CommonPrefix(strs ...string) string {
	if len(strs) == 0 {
		return ""
	}
	at := IndexOfDifferenceAll(strs...)
	if at == IndexNotFound {
		return strs[0]
	}
	return sliceRunes(strs[0], 0, min(at, Length(strs[0])))
}
