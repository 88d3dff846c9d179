// File: strip.go
// Title: Stripping
// Description: Removal of leading and trailing whitespace or of a set of
//              characters, and accent stripping through Unicode
//              decomposition.
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

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Strip removes leading and trailing whitespace. Strip is idempotent.
func Strip(s string) string {
	return strings.TrimFunc(s, unicode.IsSpace)
}

// StripStart removes leading whitespace.
func StripStart(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}

// StripEnd removes trailing whitespace.
func StripEnd(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

// StripChars removes any of the runes in chars from both ends of s. An
// empty chars strips whitespace.
func StripChars(s, chars string) string {
	if chars == "" {
		return Strip(s)
	}
	return strings.Trim(s, chars)
}

// StripStartChars removes any of the runes in chars from the start of s. An
// empty chars strips whitespace.
func StripStartChars(s, chars string) string {
	if chars == "" {
		return StripStart(s)
	}
	return strings.TrimLeft(s, chars)
}

// StripEndChars removes any of the runes in chars from the end of s. An
// empty chars strips whitespace.
func StripEndChars(s, chars string) string {
	if chars == "" {
		return StripEnd(s)
	}
	return strings.TrimRight(s, chars)
}

// StripToEmpty strips s; a blank s yields "".
func StripToEmpty(s string) string {
	return Strip(s)
}

// StripToNull strips s and reports ok == false when nothing is left.
func StripToNull(s string) (string, bool) {
	out := Strip(s)
	return out, out != ""
}

// StripAll strips whitespace from every string. A nil input yields nil.
func StripAll(strs ...string) []string {
	return StripAllChars(strs, "")
}

// StripAllChars strips chars from every string. A nil slice yields nil and
// an empty slice an empty slice.
func StripAllChars(strs []string, chars string) []string {
	if strs == nil {
		return nil
	}
	out := make([]string, len(strs))
	for i, s := range strs {
		out[i] = StripChars(s, chars)
	}
	return out
}

// StripAccents removes diacritical marks: "éàç" becomes "eac". The string is
// decomposed, non-spacing marks are dropped and the rest is recomposed.
func StripAccents(s string) string {
	if IsBlank(s) {
		return s
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
