// File: runes.go
// Title: Rune Position Helpers
// Description: Conversions between rune positions, which every exported
//              function uses for indexes and lengths, and the byte offsets
//              Go strings are sliced by.
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
	"unicode/utf8"
)

// isASCIIString reports whether s contains only ASCII bytes. For such
// strings rune positions and byte offsets coincide.
func isASCIIString(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func isASCIIRune(r rune) bool {
	return r < utf8.RuneSelf
}

// byteOffset returns the byte offset of rune position pos in s. Positions at
// or past the end map to len(s), negative positions to 0.
func byteOffset(s string, pos int) int {
	if pos <= 0 {
		return 0
	}
	if pos >= len(s) {
		return len(s)
	}
	n := 0
	for i := range s {
		if n == pos {
			return i
		}
		n++
	}
	return len(s)
}

// runeOffset returns the rune position of byte offset b in s.
func runeOffset(s string, b int) int {
	if b <= 0 {
		return 0
	}
	return utf8.RuneCountInString(s[:b])
}

// sliceRunes returns the runes [start, end) of s. Bounds must already be
// valid: 0 <= start <= end <= Length(s).
func sliceRunes(s string, start, end int) string {
	bs := byteOffset(s, start)
	be := bs + byteOffset(s[bs:], end-start)
	return s[bs:be]
}

// indexFrom finds substr in s starting at rune position from and returns a
// rune position, or IndexNotFound.
func indexFrom(s, substr string, from int) int {
	bs := byteOffset(s, from)
	i := strings.Index(s[bs:], substr)
	if i < 0 {
		return IndexNotFound
	}
	return from + runeOffset(s[bs:], i)
}
