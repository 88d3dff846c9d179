// File: width_test.go
// Title: Unit Tests for Display Width and Grapheme Clusters
// Description: Tests for column width measurement, width based padding and
//              truncation, and grapheme cluster helpers.
// Author: satish049
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial test implementation

package stringx

import (
	"slices"
	"testing"
)

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"abc", 3},
		{"日本語", 6},
		{"a\u00e9", 2},
		{"e\u0301", 1},
	}

	for _, tt := range tests {
		if got := DisplayWidth(tt.input); got != tt.want {
			t.Errorf("DisplayWidth(%q) = %d; want %d", tt.input, got, tt.want)
		}
	}
}

func TestPadWidth(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"left ascii", PadLeftWidth("ab", 4, ' '), "  ab"},
		{"left wide", PadLeftWidth("日本", 6, ' '), "  日本"},
		{"right wide", PadRightWidth("日本", 5, '.'), "日本."},
		{"already wide enough", PadRightWidth("日本", 3, '.'), "日本"},
		{"wide pad", PadLeftWidth("a", 4, '日'), "日a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q; want %q", tt.got, tt.want)
			}
		})
	}
}

func TestTruncateWidth(t *testing.T) {
	tests := []struct {
		s     string
		width int
		tail  string
		want  string
	}{
		{"abc", 5, "...", "abc"},
		{"abcdefgh", 5, "...", "ab..."},
		{"日本語です", 7, "…", "日本語…"},
		{"日本語です", 6, "…", "日本…"},
		{"abc", 2, "...", ""},
		{"e\u0301e\u0301e\u0301", 2, "", "e\u0301e\u0301"},
	}

	for _, tt := range tests {
		if got := TruncateWidth(tt.s, tt.width, tt.tail); got != tt.want {
			t.Errorf("TruncateWidth(%q, %d, %q) = %q; want %q", tt.s, tt.width, tt.tail, got, tt.want)
		}
	}
}

func TestGraphemes(t *testing.T) {
	if got := Graphemes(""); got == nil || len(got) != 0 {
		t.Errorf("Graphemes(\"\") = %#v; want empty slice", got)
	}

	s := "e\u0301a\U0001F1E9\U0001F1EA"
	want := []string{"e\u0301", "a", "\U0001F1E9\U0001F1EA"}
	if got := Graphemes(s); !slices.Equal(got, want) {
		t.Errorf("Graphemes(%q) = %q; want %q", s, got, want)
	}
	if got := GraphemeCount(s); got != 3 {
		t.Errorf("GraphemeCount(%q) = %d; want 3", s, got)
	}
	if got := Length(s); got != 5 {
		t.Errorf("Length(%q) = %d; want 5", s, got)
	}
	if got := ReverseGraphemes(s); got != "\U0001F1E9\U0001F1EAae\u0301" {
		t.Errorf("ReverseGraphemes(%q) = %q", s, got)
	}
}
