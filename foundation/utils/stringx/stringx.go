// File: stringx.go
// Title: Core String Predicates and Trimming
// Description: Emptiness and blankness checks, trimming, defaults and the
//              package constants. Every function accepts any string, including
//              the empty string, without panicking.
// Author: satish049
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2025-10-19 v0.2.0: Any/None variants, trim-to-null, rune length

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// Space is a single space character.
	Space = " "
	// Empty is the empty string.
	Empty = ""
	// LF is the line feed character.
	LF = '\n'
	// CR is the carriage return character.
	CR = '\r'
	// IndexNotFound is returned by the index functions when nothing matches.
	IndexNotFound = -1
	// PadLimit is the largest pad count for which single character padding
	// takes the direct path.
	PadLimit = 8192
)

// IsEmpty returns true if the string is empty (length 0).
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsNotEmpty returns true if the string is not empty.
func IsNotEmpty(s string) bool {
	return len(s) > 0
}

// IsAnyEmpty returns true if any of the strings is empty. Called with no
// arguments it returns true.
func IsAnyEmpty(strs ...string) bool {
	if len(strs) == 0 {
		return true
	}
	for _, s := range strs {
		if IsEmpty(s) {
			return true
		}
	}
	return false
}

// IsNoneEmpty returns true if none of the strings is empty.
func IsNoneEmpty(strs ...string) bool {
	return !IsAnyEmpty(strs...)
}

// IsBlank returns true if the string is empty or contains only whitespace.
// Whitespace is anything unicode.IsSpace accepts.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank returns true if the string contains a non-whitespace character.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// IsAnyBlank returns true if any of the strings is blank. Called with no
// arguments it returns true.
func IsAnyBlank(strs ...string) bool {
	if len(strs) == 0 {
		return true
	}
	for _, s := range strs {
		if IsBlank(s) {
			return true
		}
	}
	return false
}

// IsNoneBlank returns true if none of the strings is blank.
func IsNoneBlank(strs ...string) bool {
	return !IsAnyBlank(strs...)
}

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// TrimToEmpty trims s; a blank string yields "".
func TrimToEmpty(s string) string {
	return Trim(s)
}

// TrimToNull trims s. For a blank s it reports ok == false, which callers use
// to tell "no value" apart from a value.
func TrimToNull(s string) (string, bool) {
	if IsBlank(s) {
		return "", false
	}
	return Trim(s), true
}

// DefaultIfEmpty returns s, or def if s is empty.
func DefaultIfEmpty(s, def string) string {
	if IsEmpty(s) {
		return def
	}
	return s
}

// DefaultIfBlank returns s, or def if s is blank.
func DefaultIfBlank(s, def string) string {
	if IsBlank(s) {
		return def
	}
	return s
}

// FirstNonEmpty returns the first non-empty string, or "".
func FirstNonEmpty(strs ...string) string {
	for _, s := range strs {
		if IsNotEmpty(s) {
			return s
		}
	}
	return ""
}

// FirstNonBlank returns the first non-blank string, or "".
func FirstNonBlank(strs ...string) string {
	for _, s := range strs {
		if IsNotBlank(s) {
			return s
		}
	}
	return ""
}

// Length returns the number of runes in s.
func Length(s string) int {
	return utf8.RuneCountInString(s)
}

// Equals reports whether a and b are identical.
func Equals(a, b string) bool {
	return a == b
}

// EqualsIgnoreCase reports whether a and b are equal under Unicode case
// folding.
func EqualsIgnoreCase(a, b string) bool {
	return a == b || foldCase(a) == foldCase(b)
}
