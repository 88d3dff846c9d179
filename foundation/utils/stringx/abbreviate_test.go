// File: abbreviate_test.go
// Title: Unit Tests for Abbreviation
// Description: Tests for the abbreviation window, its width validation and
//              middle abbreviation.
// Author: satish049
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Truncate tests
// - 2025-10-19 v0.2.0: Abbreviate and AbbreviateMiddle tests

package stringx

import (
	"strings"
	"testing"

	ulterror "github.com/satish049/Ultimate.Utilities/foundation/core/error"
	"github.com/satish049/Ultimate.Utilities/foundation/core/errors"
)

func TestAbbreviate(t *testing.T) {
	tests := []struct {
		input    string
		maxWidth int
		want     string
	}{
		{"", 4, ""},
		{"abcdefg", 6, "abc..."},
		{"abcdefg", 7, "abcdefg"},
		{"abcdefg", 8, "abcdefg"},
		{"abcdefg", 4, "a..."},
		{"héllo wörld", 8, "héllo..."},
	}

	for _, tt := range tests {
		got, err := Abbreviate(tt.input, tt.maxWidth)
		if err != nil {
			t.Errorf("Abbreviate(%q, %d) unexpected error: %v", tt.input, tt.maxWidth, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Abbreviate(%q, %d) = %q; want %q", tt.input, tt.maxWidth, got, tt.want)
		}
	}
}

func TestAbbreviateWidthFloor(t *testing.T) {
	for width := -1; width < 10; width++ {
		_, err := Abbreviate("abcdefg", width)
		if (err != nil) != (width < MinAbbreviateWidth) {
			t.Errorf("Abbreviate(width=%d) err = %v", width, err)
		}
	}

	_, err := Abbreviate("abcdefg", 3)
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument error, got %v", err)
	}
	if !strings.Contains(err.Error(), "Minimum abbreviation width is 4") {
		t.Errorf("unexpected message %q", err.Error())
	}
	if errors.ModuleOf(err) != errors.ModuleStringx {
		t.Errorf("module = %q", errors.ModuleOf(err))
	}
	if ulterror.GetSeverity(err) != ulterror.SeverityLow {
		t.Errorf("severity = %v; want low", ulterror.GetSeverity(err))
	}
}

func TestAbbreviateOffset(t *testing.T) {
	tests := []struct {
		offset   int
		maxWidth int
		want     string
	}{
		{-1, 10, "abcdefg..."},
		{0, 10, "abcdefg..."},
		{1, 10, "abcdefg..."},
		{4, 10, "abcdefg..."},
		{5, 10, "...fghi..."},
		{6, 10, "...ghij..."},
		{8, 10, "...ijklmno"},
		{10, 10, "...ijklmno"},
		{12, 10, "...ijklmno"},
		{100, 10, "...ijklmno"},
	}

	const s = "abcdefghijklmno"
	for _, tt := range tests {
		got, err := AbbreviateOffset(s, tt.offset, tt.maxWidth)
		if err != nil {
			t.Errorf("AbbreviateOffset(%d, %d) unexpected error: %v", tt.offset, tt.maxWidth, err)
			continue
		}
		if got != tt.want {
			t.Errorf("AbbreviateOffset(%q, %d, %d) = %q; want %q", s, tt.offset, tt.maxWidth, got, tt.want)
		}
	}
}

func TestAbbreviateOffsetNeedsWidthSeven(t *testing.T) {
	_, err := AbbreviateOffset("abcdefghij", 5, 6)
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument error, got %v", err)
	}
	if !strings.Contains(err.Error(), "with offset is 7") {
		t.Errorf("unexpected message %q", err.Error())
	}

	if _, err := AbbreviateOffset("abcdefghij", 2, 6); err != nil {
		t.Errorf("small offset should not need width 7: %v", err)
	}
}

func TestMustAbbreviate(t *testing.T) {
	if got := MustAbbreviate("abcdefg", 5); got != "ab..." {
		t.Errorf("MustAbbreviate = %q", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustAbbreviate should panic for width 3")
		}
	}()
	MustAbbreviate("abcdefg", 3)
}

func TestAbbreviateMiddle(t *testing.T) {
	tests := []struct {
		s, middle string
		length    int
		want      string
	}{
		{"", ".", 4, ""},
		{"abc", "", 2, "abc"},
		{"abc", ".", 0, "abc"},
		{"abc", ".", 3, "abc"},
		{"abcdef", ".", 4, "ab.f"},
		{"abcdef", "..", 5, "ab..f"},
		{"abcdefgh", "...", 6, "ab...h"},
		{"abcdef", "...", 4, "abcdef"},
	}

	for _, tt := range tests {
		if got := AbbreviateMiddle(tt.s, tt.middle, tt.length); got != tt.want {
			t.Errorf("AbbreviateMiddle(%q, %q, %d) = %q; want %q", tt.s, tt.middle, tt.length, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		marker   string
		expected string
	}{
		{"empty string", "", 5, "...", ""},
		{"shorter than max", "hello", 10, "...", "hello"},
		{"exact length", "hello", 5, "...", "hello"},
		{"needs truncation", "hello world", 8, "...", "hello..."},
		{"marker too long", "hello world", 2, "...", "he"},
		{"zero length", "hello", 0, "...", ""},
		{"unicode", "こんにちは世界", 5, "…", "こんにち…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxLen, tt.marker); got != tt.expected {
				t.Errorf("Truncate(%q, %d, %q) = %q; want %q", tt.input, tt.maxLen, tt.marker, got, tt.expected)
			}
		})
	}
}
