// File: replace.go
// Title: Removal and Replacement
// Description: Prefix and suffix removal, literal, multi-target and regular
//              expression replacement, character mapping, overlay and line
//              terminator chomping.
// Author: satish049
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

package stringx

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/satish049/Ultimate.Utilities/foundation/core/errors"
)

// DeleteWhitespace removes every whitespace rune from s.
func DeleteWhitespace(s string) string {
	if s == "" {
		return s
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// RemoveStart removes remove from the start of s if it is there.
func RemoveStart(s, remove string) string {
	return strings.TrimPrefix(s, remove)
}

// RemoveStartIgnoreCase is RemoveStart with case-insensitive matching.
func RemoveStartIgnoreCase(s, remove string) string {
	if s == "" || remove == "" {
		return s
	}
	if n, ok := prefixFold(s, remove); ok {
		return s[n:]
	}
	return s
}

// RemoveEnd removes remove from the end of s if it is there.
func RemoveEnd(s, remove string) string {
	return strings.TrimSuffix(s, remove)
}

// RemoveEndIgnoreCase is RemoveEnd with case-insensitive matching.
func RemoveEndIgnoreCase(s, remove string) string {
	if s == "" || remove == "" {
		return s
	}
	if n, ok := suffixFold(s, remove); ok {
		return s[:n]
	}
	return s
}

// Remove removes every occurrence of remove from s.
func Remove(s, remove string) string {
	if s == "" || remove == "" {
		return s
	}
	return strings.ReplaceAll(s, remove, "")
}

// RemoveRune removes every occurrence of r from s.
func RemoveRune(s string, r rune) string {
	if !strings.ContainsRune(s, r) {
		return s
	}
	return strings.Map(func(c rune) rune {
		if c == r {
			return -1
		}
		return c
	}, s)
}

// Replace replaces every occurrence of search in s with repl. An empty
// search leaves s unchanged.
func Replace(s, search, repl string) string {
	return ReplaceN(s, search, repl, -1)
}

// ReplaceOnce replaces the first occurrence of search in s with repl.
func ReplaceOnce(s, search, repl string) string {
	return ReplaceN(s, search, repl, 1)
}

// ReplaceN replaces the first max occurrences of search in s with repl.
// A negative max replaces all of them, zero none.
func ReplaceN(s, search, repl string, max int) string {
	if s == "" || search == "" || max == 0 {
		return s
	}
	return strings.Replace(s, search, repl, max)
}

// ReplacePattern replaces every match of the regular expression pattern
// in s with repl. "^" and "$" match at line boundaries and repl may refer
// to groups as $1 or ${name}. An empty pattern leaves s unchanged; a
// pattern that does not compile is an invalid format error.
func ReplacePattern(s, pattern, repl string, ignoreCase bool) (string, error) {
	if s == "" || pattern == "" {
		return s, nil
	}
	flags := "(?m)"
	if ignoreCase {
		flags = "(?mi)"
	}
	re, err := regexp.Compile(flags + pattern)
	if err != nil {
		return "", errors.InvalidFormat(errors.ModuleStringx, "replace_pattern", pattern, err)
	}
	return re.ReplaceAllString(s, repl), nil
}

// RemovePattern removes every match of the regular expression pattern.
func RemovePattern(s, pattern string) (string, error) {
	return ReplacePattern(s, pattern, "", false)
}

// ReplaceEach replaces every occurrence of each search string with the
// replacement at the same index, in a single left to right pass. At each
// position the search string found earliest wins, ties going to the
// lower index:
//
//	ReplaceEach("abcde", []string{"ab", "d"}, []string{"w", "t"}) == "wcte"
//
// Replacements are not searched again. Empty search strings are ignored.
// Lists of different lengths are an invalid argument error.
func ReplaceEach(s string, search, repl []string) (string, error) {
	return replaceEach(s, search, repl, false, 0)
}

// ReplaceEachRepeatedly is ReplaceEach applied until nothing matches:
//
//	ReplaceEachRepeatedly("abcde", []string{"ab", "d"}, []string{"d", "t"}) == "tcte"
//
// A replacement that keeps producing matches is reported as an error
// after len(search) extra passes.
func ReplaceEachRepeatedly(s string, search, repl []string) (string, error) {
	return replaceEach(s, search, repl, true, len(search))
}

func replaceEach(s string, search, repl []string, repeat bool, ttl int) (string, error) {
	for {
		if s == "" || len(search) == 0 || len(repl) == 0 {
			return s, nil
		}
		if ttl < 0 {
			return "", errors.NewErrorBuilder(errors.ModuleStringx).
				Operation("replace_each").
				Message("replacement cycle detected, output of one pass matches again").
				Detail("search", search).
				Detail("replacement", repl).
				Build()
		}
		if len(search) != len(repl) {
			return "", errors.InvalidArgument(errors.ModuleStringx, "replace_each",
				"search and replacement lists differ in length")
		}

		out, changed := replaceEachPass(s, search, repl)
		if !changed || !repeat {
			return out, nil
		}
		s = out
		ttl--
	}
}

// replaceEachPass performs one earliest-match pass. exhausted[i] records
// that search[i] no longer occurs in the rest of s.
func replaceEachPass(s string, search, repl []string) (string, bool) {
	exhausted := make([]bool, len(search))

	next := func(from int) (int, int) {
		at, which := -1, -1
		for i, sub := range search {
			if exhausted[i] || sub == "" {
				continue
			}
			idx := strings.Index(s[from:], sub)
			if idx < 0 {
				exhausted[i] = true
				continue
			}
			if at < 0 || from+idx < at {
				at, which = from+idx, i
			}
		}
		return at, which
	}

	at, which := next(0)
	if at < 0 {
		return s, false
	}

	var sb strings.Builder
	sb.Grow(len(s))
	start := 0
	for at >= 0 {
		sb.WriteString(s[start:at])
		sb.WriteString(repl[which])
		start = at + len(search[which])
		at, which = next(start)
	}
	sb.WriteString(s[start:])
	return sb.String(), true
}

// ReplaceChars maps runes of s through two parallel character lists: a
// rune found at position i of search becomes the rune at position i of
// replace, or is deleted when replace is shorter:
//
//	ReplaceChars("hello", "ho", "jy") == "jelly"
//	ReplaceChars("abcba", "bc", "y")  == "ayya"
func ReplaceChars(s, search, replace string) string {
	if s == "" || search == "" {
		return s
	}
	from := []rune(search)
	to := []rune(replace)
	return strings.Map(func(r rune) rune {
		for i, f := range from {
			if f != r {
				continue
			}
			if i < len(to) {
				return to[i]
			}
			return -1
		}
		return r
	}, s)
}

// ReplaceRune replaces every occurrence of old with new.
func ReplaceRune(s string, old, new rune) string {
	if !strings.ContainsRune(s, old) {
		return s
	}
	return strings.ReplaceAll(s, string(old), string(new))
}

// Overlay replaces the runes [start, end) of s with overlay. Both bounds
// are clamped to the string and swapped when reversed:
//
//	Overlay("abcdef", "zzzz", 4, 2)  == "abzzzzef"
//	Overlay("abcdef", "zzzz", -1, 4) == "zzzzef"
func Overlay(s, overlay string, start, end int) string {
	n := Length(s)
	start = clamp(start, 0, n)
	end = clamp(end, 0, n)
	if start > end {
		start, end = end, start
	}
	return sliceRunes(s, 0, start) + overlay + sliceRunes(s, end, n)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Chomp removes one trailing line terminator ("\r\n", "\n" or "\r"):
//
//	Chomp("abc\r\n\r\n") == "abc\r\n"
//	Chomp("abc\n\r")     == "abc\n"
func Chomp(s string) string {
	switch {
	case strings.HasSuffix(s, "\r\n"):
		return s[:len(s)-2]
	case strings.HasSuffix(s, "\n"), strings.HasSuffix(s, "\r"):
		return s[:len(s)-1]
	}
	return s
}

// Chop removes the last rune of s, or the final "\r\n" pair. Strings of
// fewer than two runes become "".
func Chop(s string) string {
	if utf8.RuneCountInString(s) < 2 {
		return ""
	}
	if strings.HasSuffix(s, "\r\n") {
		return s[:len(s)-2]
	}
	_, w := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-w]
}
