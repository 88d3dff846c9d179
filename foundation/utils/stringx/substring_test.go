// File: substring_test.go
// Title: Unit Tests for the Substring Engine
// Description: Tests for position and delimiter based extraction, covering
//              negative, reversed and out of range bounds.
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

func TestSubstring(t *testing.T) {
	tests := []struct {
		s     string
		start int
		want  string
	}{
		{"", 0, ""},
		{"abc", 0, "abc"},
		{"abc", 2, "c"},
		{"abc", 4, ""},
		{"abc", 3, ""},
		{"abc", -2, "bc"},
		{"abc", -4, "abc"},
		{"héllo", 1, "éllo"},
		{"héllo", -4, "éllo"},
	}

	for _, tt := range tests {
		if got := Substring(tt.s, tt.start); got != tt.want {
			t.Errorf("Substring(%q, %d) = %q; want %q", tt.s, tt.start, got, tt.want)
		}
	}
}

func TestSubstringLengthProperty(t *testing.T) {
	s := "abcdefghij"
	n := Length(s)
	for start := -15; start <= 15; start++ {
		got := Length(Substring(s, start))
		var want int
		if start >= 0 {
			want = max(0, min(n, n-start))
		} else {
			want = min(n, -start)
		}
		if got != want {
			t.Errorf("Length(Substring(%q, %d)) = %d; want %d", s, start, got, want)
		}
	}
}

func TestSubstringRange(t *testing.T) {
	tests := []struct {
		name   string
		s      string
		start  int
		end    int
		want   string
		wantOK bool
	}{
		{"empty", "", 0, 0, "", true},
		{"inclusive end", "abcdef", 1, 3, "bcd", true},
		{"single", "abcdef", 2, 2, "c", true},
		{"end clamped", "abcdef", 2, 10, "cdef", true},
		{"start after end", "abcdef", 4, 2, "", true},
		{"zero start negative end", "abcdef", 0, -1, "", true},
		{"negative start", "abcdef", -1, 3, "", false},
		{"start past end of string", "abc", 5, 8, "", true},
		{"runes", "日本語です", 1, 2, "本語", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SubstringRange(tt.s, tt.start, tt.end)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("SubstringRange(%q, %d, %d) = (%q, %v); want (%q, %v)",
					tt.s, tt.start, tt.end, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestSubstringWithNegatives(t *testing.T) {
	tests := []struct {
		s          string
		start, end int
		want       string
	}{
		{"", 0, 0, ""},
		{"abc", -2, -1, "bc"},
		{"abc", -4, 2, "abc"},
		{"abc", 2, 4, "c"},
		{"abc", 0, 0, "a"},
		{"abc", 2, 1, ""},
		{"abc", -1, -2, ""},
		{"abcdefg", 0, -3, "abcde"},
		{"abc", -10, -8, "a"},
	}

	for _, tt := range tests {
		if got := SubstringWithNegatives(tt.s, tt.start, tt.end); got != tt.want {
			t.Errorf("SubstringWithNegatives(%q, %d, %d) = %q; want %q", tt.s, tt.start, tt.end, got, tt.want)
		}
	}
}

func TestLeftRightMid(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"left", Left("abc", 2), "ab"},
		{"left zero", Left("abc", 0), ""},
		{"left negative", Left("abc", -1), ""},
		{"left whole", Left("abc", 4), "abc"},
		{"left runes", Left("héllo", 2), "hé"},
		{"right", Right("abc", 2), "bc"},
		{"right negative", Right("abc", -1), ""},
		{"right whole", Right("abc", 3), "abc"},
		{"right runes", Right("héllo", 4), "éllo"},
		{"mid", Mid("abcdef", 2, 3), "cde"},
		{"mid from start", Mid("abc", 0, 2), "ab"},
		{"mid past end", Mid("abc", 4, 2), ""},
		{"mid clipped", Mid("abc", 2, 4), "c"},
		{"mid negative pos", Mid("abc", -2, 2), "ab"},
		{"mid negative len", Mid("abc", 0, -1), ""},
		{"mid at end", Mid("abc", 3, 1), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q; want %q", tt.got, tt.want)
			}
		})
	}
}

func TestSubstringBeforeAfter(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"before", SubstringBefore("abcba", "b"), "a"},
		{"before at start", SubstringBefore("abc", "a"), ""},
		{"before missing", SubstringBefore("abc", "d"), "abc"},
		{"before empty sep", SubstringBefore("abc", ""), ""},
		{"before empty s", SubstringBefore("", "a"), ""},
		{"after", SubstringAfter("abcba", "b"), "cba"},
		{"after at end", SubstringAfter("abc", "c"), ""},
		{"after missing", SubstringAfter("abc", "d"), ""},
		{"after empty sep", SubstringAfter("abc", ""), "abc"},
		{"before last", SubstringBeforeLast("abcba", "b"), "abc"},
		{"before last missing", SubstringBeforeLast("a", "z"), "a"},
		{"before last empty sep", SubstringBeforeLast("abc", ""), "abc"},
		{"after last", SubstringAfterLast("abcba", "b"), "a"},
		{"after last at end", SubstringAfterLast("abc", "c"), ""},
		{"after last missing", SubstringAfterLast("abc", "z"), ""},
		{"after last empty sep", SubstringAfterLast("abc", ""), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q; want %q", tt.got, tt.want)
			}
		})
	}
}

func TestSubstringBetween(t *testing.T) {
	tests := []struct {
		name        string
		s           string
		open, close string
		want        string
		wantOK      bool
	}{
		{"basic", "wx[b]yz", "[", "]", "b", true},
		{"first match only", "yabczyabcz", "y", "z", "abc", true},
		{"adjacent delimiters", "a[]b", "[", "]", "", true},
		{"empty delimiters", "abc", "", "", "", true},
		{"missing open", "abc", "[", "]", "", false},
		{"missing close", "a[bc", "[", "]", "", false},
		{"close before open", "a]b[c", "[", "]", "", false},
		{"empty s", "", "[", "]", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SubstringBetween(tt.s, tt.open, tt.close)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("SubstringBetween(%q, %q, %q) = (%q, %v); want (%q, %v)",
					tt.s, tt.open, tt.close, got, ok, tt.want, tt.wantOK)
			}
		})
	}

	if got, ok := SubstringBetweenTag("tagabctag", "tag"); !ok || got != "abc" {
		t.Errorf("SubstringBetweenTag = (%q, %v); want (\"abc\", true)", got, ok)
	}
}

func TestSubstringsBetween(t *testing.T) {
	tests := []struct {
		name        string
		s           string
		open, close string
		want        []string
	}{
		{"three spans", "[a][b][c]", "[", "]", []string{"a", "b", "c"}},
		{"with noise", "x[a]y[bc]z", "[", "]", []string{"a", "bc"}},
		{"multi char delimiters", "<<a>><<b>>", "<<", ">>", []string{"a", "b"}},
		{"unclosed tail", "[a][b", "[", "]", []string{"a"}},
		{"empty span", "[]", "[", "]", []string{""}},
		{"empty s", "", "[", "]", []string{}},
		{"no match", "abc", "[", "]", nil},
		{"empty open", "[a]", "", "]", nil},
		{"empty close", "[a]", "[", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SubstringsBetween(tt.s, tt.open, tt.close)
			if (got == nil) != (tt.want == nil) || !slices.Equal(got, tt.want) {
				t.Errorf("SubstringsBetween(%q, %q, %q) = %#v; want %#v", tt.s, tt.open, tt.close, got, tt.want)
			}
		})
	}
}
