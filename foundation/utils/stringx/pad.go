// File: pad.go
// Title: Padding and Repetition
// Description: Fixed width padding with a single rune or a repeating
//              pattern, centering, and repetition. A target width at or
//              below the current length never truncates.
// Author: satish049
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: PadLeft, PadRight and Center with ASCII fast path
// - 2025-10-19 v0.2.0: Pattern padding, Repeat family

package stringx

import (
	"strings"
	"unicode/utf8"
)

// PadLeft pads the string s to the specified width with the given pad character.
// If the string is already longer than width, it returns the original string.
func PadLeft(s string, width int, pad rune) string {
	if isASCIIString(s) && isASCIIRune(pad) {
		if len(s) >= width {
			return s
		}

		result := make([]byte, width)
		padCount := width - len(s)
		for i := 0; i < padCount; i++ {
			result[i] = byte(pad)
		}
		copy(result[padCount:], s)
		return string(result)
	}

	runeCount := utf8.RuneCountInString(s)
	if runeCount >= width {
		return s
	}

	var builder strings.Builder
	padCount := width - runeCount
	builder.Grow(len(s) + padCount*utf8.UTFMax)
	for i := 0; i < padCount; i++ {
		builder.WriteRune(pad)
	}
	builder.WriteString(s)
	return builder.String()
}

// PadRight pads the string s to the specified width with the given pad character.
// If the string is already longer than width, it returns the original string.
func PadRight(s string, width int, pad rune) string {
	if isASCIIString(s) && isASCIIRune(pad) {
		if len(s) >= width {
			return s
		}

		result := make([]byte, width)
		copy(result, s)
		for i := len(s); i < width; i++ {
			result[i] = byte(pad)
		}
		return string(result)
	}

	runeCount := utf8.RuneCountInString(s)
	if runeCount >= width {
		return s
	}

	var builder strings.Builder
	padCount := width - runeCount
	builder.Grow(len(s) + padCount*utf8.UTFMax)
	builder.WriteString(s)
	for i := 0; i < padCount; i++ {
		builder.WriteRune(pad)
	}
	return builder.String()
}

// Center centers the string s within the specified width using the pad character.
// When the padding is uneven the extra rune goes to the right.
func Center(s string, width int, pad rune) string {
	if isASCIIString(s) && isASCIIRune(pad) {
		if len(s) >= width {
			return s
		}

		result := make([]byte, width)
		leftPadding := (width - len(s)) / 2
		for i := 0; i < leftPadding; i++ {
			result[i] = byte(pad)
		}
		copy(result[leftPadding:], s)
		for i := leftPadding + len(s); i < width; i++ {
			result[i] = byte(pad)
		}
		return string(result)
	}

	runeCount := utf8.RuneCountInString(s)
	if runeCount >= width {
		return s
	}
	return PadRight(PadLeft(s, runeCount+(width-runeCount)/2, pad), width, pad)
}

// PadLeftString pads s on the left to width runes by cycling through pad:
//
//	PadLeftString("bat", 8, "yz") == "yzyzybat"
//
// An empty pad pads with spaces.
func PadLeftString(s string, width int, pad string) string {
	pads := width - Length(s)
	if pads <= 0 {
		return s
	}
	if pad == "" {
		pad = Space
	}
	if utf8.RuneCountInString(pad) == 1 && pads <= PadLimit {
		r, _ := utf8.DecodeRuneInString(pad)
		return PadLeft(s, width, r)
	}
	return cyclePad(pad, pads) + s
}

// PadRightString pads s on the right to width runes by cycling through pad.
// An empty pad pads with spaces.
func PadRightString(s string, width int, pad string) string {
	pads := width - Length(s)
	if pads <= 0 {
		return s
	}
	if pad == "" {
		pad = Space
	}
	if utf8.RuneCountInString(pad) == 1 && pads <= PadLimit {
		r, _ := utf8.DecodeRuneInString(pad)
		return PadRight(s, width, r)
	}
	return s + cyclePad(pad, pads)
}

// CenterString centers s within width runes using the pad pattern on both
// sides. Each side starts the pattern afresh:
//
//	CenterString("a", 4, "yz") == "yayz"
func CenterString(s string, width int, pad string) string {
	if width <= 0 {
		return s
	}
	n := Length(s)
	pads := width - n
	if pads <= 0 {
		return s
	}
	return PadRightString(PadLeftString(s, n+pads/2, pad), width, pad)
}

// cyclePad returns n runes taken from pattern, repeating it as needed.
func cyclePad(pattern string, n int) string {
	pr := []rune(pattern)
	var b strings.Builder
	b.Grow(n * utf8.UTFMax)
	for i := 0; i < n; i++ {
		b.WriteRune(pr[i%len(pr)])
	}
	return b.String()
}

// Repeat returns s repeated n times. A count of zero or less yields "".
func Repeat(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if n == 1 || s == "" {
		return s
	}
	return strings.Repeat(s, n)
}

// RepeatWithSeparator returns s repeated n times with sep in between:
//
//	RepeatWithSeparator("?", ", ", 3) == "?, ?, ?"
func RepeatWithSeparator(s, sep string, n int) string {
	if sep == "" {
		return Repeat(s, n)
	}
	return RemoveEnd(Repeat(s+sep, n), sep)
}

// RepeatRune returns a string of n copies of r.
func RepeatRune(r rune, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(string(r), n)
}
