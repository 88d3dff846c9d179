// File: substring.go
// Title: Substring Engine
// Description: Position based and delimiter based substring extraction.
//              Out of range positions are clamped rather than reported, with
//              the single exception of SubstringRange, which signals a
//              negative start as "no result".
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
)

// normalizeStart maps a possibly negative start to a position in [0, n].
// Negative values count from the end. ok is false when start lies past n.
func normalizeStart(start, n int) (int, bool) {
	if start < 0 {
		start += n
	}
	if start < 0 {
		start = 0
	}
	if start > n {
		return 0, false
	}
	return start, true
}

// normalizeRange maps an inclusive [start, end] pair to a half-open rune
// range [lo, hi) inside a string of n runes. Both ends may be negative and
// count from the end. ok is false for an empty range.
func normalizeRange(start, end, n int) (lo, hi int, ok bool) {
	if end < 0 {
		end += n
	}
	if start < 0 {
		start += n
	}
	if end >= n {
		end = n - 1
	}
	if start > end {
		return 0, 0, false
	}
	if start < 0 {
		start = 0
	}
	if end < 0 {
		end = 0
	}
	return start, end + 1, true
}

// Substring returns s from rune position start to the end. A negative start
// counts from the end, so Substring("abc", -2) is "bc"; a start before the
// beginning is clamped to 0 and a start past the end yields "".
func Substring(s string, start int) string {
	n := Length(s)
	start, ok := normalizeStart(start, n)
	if !ok {
		return ""
	}
	return sliceRunes(s, start, n)
}

// SubstringRange returns the runes from start to end inclusive. An end past
// the string is clamped to the last rune and start > end yields "".
//
// Unlike SubstringWithNegatives, a negative start is not an offset from the
// end: it reports ok == false. A zero start with a negative end yields "".
func SubstringRange(s string, start, end int) (string, bool) {
	if start < 0 {
		return "", false
	}
	if start == 0 && end < 0 {
		return "", true
	}
	n := Length(s)
	if end >= n {
		end = n - 1
	}
	if start > end {
		return "", true
	}
	return sliceRunes(s, start, end+1), true
}

// SubstringWithNegatives returns the runes from start to end inclusive where
// either bound may be negative to count from the end:
//
//	SubstringWithNegatives("abc", -2, -1) == "bc"
//	SubstringWithNegatives("abc", -4, 2)  == "abc"
//	SubstringWithNegatives("abc", 2, 4)   == "c"
func SubstringWithNegatives(s string, start, end int) string {
	n := Length(s)
	if n == 0 {
		return ""
	}
	lo, hi, ok := normalizeRange(start, end, n)
	if !ok {
		return ""
	}
	return sliceRunes(s, lo, hi)
}

// Left returns the leftmost n runes of s. A negative n yields "" and an n
// covering the whole string returns s.
func Left(s string, n int) string {
	if n < 0 {
		return ""
	}
	if n >= Length(s) {
		return s
	}
	return sliceRunes(s, 0, n)
}

// Right returns the rightmost n runes of s. A negative n yields "" and an n
// covering the whole string returns s.
func Right(s string, n int) string {
	if n < 0 {
		return ""
	}
	l := Length(s)
	if n >= l {
		return s
	}
	return sliceRunes(s, l-n, l)
}

// Mid returns n runes of s starting at pos. A negative n or a pos past the
// end yields ""; a negative pos is treated as 0. Fewer than n runes are
// returned when the string ends first.
func Mid(s string, pos, n int) string {
	l := Length(s)
	if n < 0 || pos > l {
		return ""
	}
	if pos < 0 {
		pos = 0
	}
	if l <= pos+n {
		return sliceRunes(s, pos, l)
	}
	return sliceRunes(s, pos, pos+n)
}

// SubstringBefore returns the part of s before the first sep. If sep does
// not occur, s is returned whole; an empty sep yields "".
func SubstringBefore(s, sep string) string {
	if s == "" {
		return s
	}
	if sep == "" {
		return ""
	}
	before, _, found := strings.Cut(s, sep)
	if !found {
		return s
	}
	return before
}

// SubstringAfter returns the part of s after the first sep, or "" when sep
// does not occur. An empty sep returns s.
func SubstringAfter(s, sep string) string {
	if s == "" {
		return s
	}
	_, after, found := strings.Cut(s, sep)
	if !found {
		return ""
	}
	return after
}

// SubstringBeforeLast returns the part of s before the last sep. If sep does
// not occur, or is empty, s is returned whole.
func SubstringBeforeLast(s, sep string) string {
	if s == "" || sep == "" {
		return s
	}
	i := strings.LastIndex(s, sep)
	if i < 0 {
		return s
	}
	return s[:i]
}

// SubstringAfterLast returns the part of s after the last sep. It yields ""
// when sep is empty, does not occur, or ends the string.
func SubstringAfterLast(s, sep string) string {
	if s == "" || sep == "" {
		return ""
	}
	i := strings.LastIndex(s, sep)
	if i < 0 || i == len(s)-len(sep) {
		return ""
	}
	return s[i+len(sep):]
}

// SubstringBetween returns the text between the first open and the next
// close after it. ok is false when either delimiter is not found. Empty
// delimiters match at once, yielding "".
func SubstringBetween(s, open, close string) (string, bool) {
	start := strings.Index(s, open)
	if start < 0 {
		return "", false
	}
	start += len(open)
	end := strings.Index(s[start:], close)
	if end < 0 {
		return "", false
	}
	return s[start : start+end], true
}

// SubstringBetweenTag returns the text between the first two occurrences of
// tag: SubstringBetweenTag("tagabctag", "tag") is "abc".
func SubstringBetweenTag(s, tag string) (string, bool) {
	return SubstringBetween(s, tag, tag)
}

// SubstringsBetween returns every non-overlapping span enclosed by open and
// close, scanning left to right:
//
//	SubstringsBetween("[a][b][c]", "[", "]") == []string{"a", "b", "c"}
//
// Empty delimiters yield nil. An empty s yields an empty, non-nil slice and
// a string with no complete span yields nil.
func SubstringsBetween(s, open, close string) []string {
	if open == "" || close == "" {
		return nil
	}
	if s == "" {
		return []string{}
	}

	var spans []string
	pos := 0
	for pos < len(s)-len(close) {
		start := strings.Index(s[pos:], open)
		if start < 0 {
			break
		}
		start += pos + len(open)
		end := strings.Index(s[start:], close)
		if end < 0 {
			break
		}
		end += start
		spans = append(spans, s[start:end])
		pos = end + len(close)
	}
	return spans
}
