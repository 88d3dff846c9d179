// File: abbreviate.go
// Title: Abbreviation
// Description: Ellipsis based shortening. Abbreviate and AbbreviateOffset
//              move a window over the string and mark cut text with "...";
//              AbbreviateMiddle replaces a centered span with a marker.
// Author: satish049
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Truncate with ellipsis
// - 2025-10-19 v0.2.0: Offset windowing, middle abbreviation

package stringx

import (
	"github.com/satish049/Ultimate.Utilities/foundation/core/errors"
)

const (
	ellipsis = "..."
	// MinAbbreviateWidth is the smallest width Abbreviate accepts.
	MinAbbreviateWidth = 4
	// MinAbbreviateOffsetWidth is the smallest width AbbreviateOffset accepts
	// once the window no longer starts at the beginning.
	MinAbbreviateOffsetWidth = 7
)

// Abbreviate shortens s to at most maxWidth runes, replacing the cut tail
// with "...":
//
//	Abbreviate("abcdefg", 6) == "abc..."
//	Abbreviate("abcdefg", 7) == "abcdefg"
//
// A maxWidth below 4 is an invalid argument error.
func Abbreviate(s string, maxWidth int) (string, error) {
	return AbbreviateOffset(s, 0, maxWidth)
}

// AbbreviateOffset shortens s to at most maxWidth runes so that the rune at
// offset is part of the result. Text cut on either side is replaced with
// "...":
//
//	AbbreviateOffset("abcdefghijklmno", 5, 10)  == "...fghi..."
//	AbbreviateOffset("abcdefghijklmno", 12, 10) == "...ijklmno"
//
// An offset past the end is pulled back so the window ends at the end of
// s. Offsets up to 4 keep the start of s. Leaving the start requires a
// maxWidth of at least 7.
func AbbreviateOffset(s string, offset, maxWidth int) (string, error) {
	if maxWidth < MinAbbreviateWidth {
		return "", errors.NewErrorBuilder(errors.ModuleStringx).
			Operation("abbreviate").
			Messagef("Minimum abbreviation width is %d", MinAbbreviateWidth).
			Detail("maxWidth", maxWidth).
			Build()
	}

	n := Length(s)
	if n <= maxWidth {
		return s, nil
	}
	if offset > n {
		offset = n
	}
	if n-offset < maxWidth-3 {
		offset = n - (maxWidth - 3)
	}
	if offset <= 4 {
		return sliceRunes(s, 0, maxWidth-3) + ellipsis, nil
	}
	if maxWidth < MinAbbreviateOffsetWidth {
		return "", errors.NewErrorBuilder(errors.ModuleStringx).
			Operation("abbreviate").
			Messagef("Minimum abbreviation width with offset is %d", MinAbbreviateOffsetWidth).
			Detail("maxWidth", maxWidth).
			Detail("offset", offset).
			Build()
	}
	if offset+maxWidth-3 < n {
		rest, err := AbbreviateOffset(sliceRunes(s, offset, n), 0, maxWidth-3)
		if err != nil {
			return "", err
		}
		return ellipsis + rest, nil
	}
	return ellipsis + sliceRunes(s, n-(maxWidth-3), n), nil
}

// MustAbbreviate is like Abbreviate but panics on an invalid width.
func MustAbbreviate(s string, maxWidth int) string {
	result, err := Abbreviate(s, maxWidth)
	if err != nil {
		panic(err)
	}
	return result
}

// AbbreviateMiddle shortens s to length runes by replacing its middle with
// middle:
//
//	AbbreviateMiddle("abcdef", ".", 4) == "ab.f"
//
// s is returned unchanged when it already fits, when middle is empty, or
// when length leaves no room for at least one rune on each side.
func AbbreviateMiddle(s, middle string, length int) string {
	if s == "" || middle == "" {
		return s
	}
	n := Length(s)
	m := Length(middle)
	if length >= n || length < m+2 {
		return s
	}

	target := length - m
	start := target/2 + target%2
	end := n - target/2
	return sliceRunes(s, 0, start) + middle + sliceRunes(s, end, n)
}

// Truncate truncates a string to the specified length, appending marker if truncated.
// If marker does not fit, the string is cut without one.
func Truncate(s string, maxLen int, marker string) string {
	if maxLen <= 0 {
		return ""
	}
	if Length(s) <= maxLen {
		return s
	}

	markerLen := Length(marker)
	if markerLen >= maxLen {
		return sliceRunes(s, 0, maxLen)
	}
	return sliceRunes(s, 0, maxLen-markerLen) + marker
}
