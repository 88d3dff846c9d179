// File: misc.go
// Title: Rearrangement and Decoration
// Description: Rotation and reversal, whitespace normalization, and
//              conditional prefixing, suffixing and wrapping.
// Author: satish049
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

package stringx

import (
	"slices"
	"strings"
)

// Rotate rotates s right by shift runes; a negative shift rotates left:
//
//	Rotate("abcdefg", 2)  == "fgabcde"
//	Rotate("abcdefg", -2) == "cdefgab"
//	Rotate("abcdefg", 9)  == "fgabcde"
func Rotate(s string, shift int) string {
	n := Length(s)
	if shift == 0 || n == 0 || shift%n == 0 {
		return s
	}
	offset := -(shift % n)
	return Substring(s, offset) + SubstringWithNegatives(s, 0, offset-1)
}

// Reverse reverses a string while preserving Unicode characters.
// Combining sequences are reversed rune by rune; see ReverseGraphemes.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// ReverseDelimited reverses the order of the sep delimited tokens of s:
//
//	ReverseDelimited("a.b.c", '.') == "c.b.a"
//
// Empty tokens are dropped.
func ReverseDelimited(s string, sep rune) string {
	tokens := SplitChar(s, sep)
	slices.Reverse(tokens)
	return Join(tokens, string(sep))
}

// NormalizeSpace trims s and collapses every inner run of whitespace,
// no-break spaces included, to a single space.
func NormalizeSpace(s string) string {
	if s == "" {
		return s
	}
	return strings.Join(strings.Fields(s), Space)
}

// AppendIfMissing appends suffix to s unless s already ends with suffix or
// with one of the alternatives. An empty suffix leaves s unchanged:
//
//	AppendIfMissing("abc", "xyz", false)          == "abcxyz"
//	AppendIfMissing("abcXYZ", "xyz", true)        == "abcXYZ"
//	AppendIfMissing("abcmno", "xyz", false, "mno") == "abcmno"
func AppendIfMissing(s, suffix string, ignoreCase bool, alternatives ...string) string {
	if suffix == "" || EndsWith(s, suffix, ignoreCase) {
		return s
	}
	for _, alt := range alternatives {
		if alt != "" && EndsWith(s, alt, ignoreCase) {
			return s
		}
	}
	return s + suffix
}

// PrependIfMissing prepends prefix to s unless s already starts with
// prefix or with one of the alternatives.
func PrependIfMissing(s, prefix string, ignoreCase bool, alternatives ...string) string {
	if prefix == "" || StartsWith(s, prefix, ignoreCase) {
		return s
	}
	for _, alt := range alternatives {
		if alt != "" && StartsWith(s, alt, ignoreCase) {
			return s
		}
	}
	return prefix + s
}

// Wrap encloses s in wrapWith on both sides. An empty s or wrapWith
// leaves s unchanged.
func Wrap(s, wrapWith string) string {
	if s == "" || wrapWith == "" {
		return s
	}
	return wrapWith + s + wrapWith
}

// WrapRune encloses s in r on both sides. An empty s or a zero r leaves s
// unchanged.
func WrapRune(s string, r rune) string {
	if s == "" || r == 0 {
		return s
	}
	w := string(r)
	return w + s + w
}
