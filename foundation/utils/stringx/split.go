// File: split.go
// Title: Split Engine
// Description: Tokenizers over whitespace, a single separator rune, a set
//              of separator runes or a whole separator string, each in
//              collapse or preserve-all-tokens mode with an optional token
//              limit, plus Unicode character type segmentation.
// Author: satish049
// Version: v0.1.1
// Created: 2025-10-19
// Modified: 2025-10-20
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation
// - 2025-10-20 v0.1.1: Character type segmentation slices the input bytes

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Split splits s around runs of whitespace. Adjacent separators are
// treated as one, so no empty tokens are returned:
//
//	Split(" ab  cd ") == []string{"ab", "cd"}
//
// An empty s yields an empty slice.
func Split(s string) []string {
	return splitWorker(s, unicode.IsSpace, -1, false)
}

// SplitChar splits s around sep, collapsing adjacent separators.
func SplitChar(s string, sep rune) []string {
	return splitWorker(s, runeMatcher(sep), -1, false)
}

// SplitAny splits s around any of the runes in chars, collapsing adjacent
// separators. An empty chars splits on whitespace.
func SplitAny(s, chars string) []string {
	return splitWorker(s, setMatcher(chars), -1, false)
}

// SplitAnyN is SplitAny returning at most max tokens. The last token holds
// the unsplit remainder. A max of zero or less means no limit.
func SplitAnyN(s, chars string, max int) []string {
	return splitWorker(s, setMatcher(chars), max, false)
}

// SplitPreserveAllTokens splits s around whitespace, returning an empty
// token for each pair of adjacent separators and for a leading or trailing
// separator.
func SplitPreserveAllTokens(s string) []string {
	return splitWorker(s, unicode.IsSpace, -1, true)
}

// SplitCharPreserveAllTokens splits s around sep keeping empty tokens:
//
//	SplitCharPreserveAllTokens("ab::cd:ef", ':') == []string{"ab", "", "cd", "ef"}
func SplitCharPreserveAllTokens(s string, sep rune) []string {
	return splitWorker(s, runeMatcher(sep), -1, true)
}

// SplitAnyPreserveAllTokens splits s around any of the runes in chars
// keeping empty tokens. An empty chars splits on whitespace.
func SplitAnyPreserveAllTokens(s, chars string) []string {
	return splitWorker(s, setMatcher(chars), -1, true)
}

// SplitAnyPreserveAllTokensN is SplitAnyPreserveAllTokens returning at most
// max tokens.
func SplitAnyPreserveAllTokensN(s, chars string, max int) []string {
	return splitWorker(s, setMatcher(chars), max, true)
}

// SplitByWholeSeparator splits s around every occurrence of sep, which is
// matched as a whole string. An empty sep splits on whitespace.
func SplitByWholeSeparator(s, sep string) []string {
	return splitByWholeSeparatorWorker(s, sep, -1, false)
}

// SplitByWholeSeparatorN is SplitByWholeSeparator returning at most max
// tokens.
func SplitByWholeSeparatorN(s, sep string, max int) []string {
	return splitByWholeSeparatorWorker(s, sep, max, false)
}

// SplitByWholeSeparatorPreserveAllTokens splits s around every occurrence
// of sep keeping empty tokens.
func SplitByWholeSeparatorPreserveAllTokens(s, sep string) []string {
	return splitByWholeSeparatorWorker(s, sep, -1, true)
}

// SplitByWholeSeparatorPreserveAllTokensN is
// SplitByWholeSeparatorPreserveAllTokens returning at most max tokens.
func SplitByWholeSeparatorPreserveAllTokensN(s, sep string, max int) []string {
	return splitByWholeSeparatorWorker(s, sep, max, true)
}

func runeMatcher(sep rune) func(rune) bool {
	return func(r rune) bool { return r == sep }
}

func setMatcher(chars string) func(rune) bool {
	if chars == "" {
		return unicode.IsSpace
	}
	if utf8.RuneCountInString(chars) == 1 {
		r, _ := utf8.DecodeRuneInString(chars)
		return runeMatcher(r)
	}
	return func(r rune) bool { return strings.ContainsRune(chars, r) }
}

// splitWorker scans s once. match is set while inside a token, lastMatch
// right after a separator closed one.
func splitWorker(s string, isSep func(rune) bool, max int, preserve bool) []string {
	if s == "" {
		return []string{}
	}

	list := []string{}
	tokens := 1
	start, i := 0, 0
	match, lastMatch := false, false
	for i < len(s) {
		r, w := utf8.DecodeRuneInString(s[i:])
		if !isSep(r) {
			lastMatch = false
			match = true
			i += w
			continue
		}
		if match || preserve {
			if tokens == max {
				return append(list, s[start:])
			}
			tokens++
			list = append(list, s[start:i])
			lastMatch = true
			match = false
		}
		i += w
		start = i
	}
	if match || (preserve && lastMatch) {
		list = append(list, s[start:i])
	}
	return list
}

func splitByWholeSeparatorWorker(s, sep string, max int, preserve bool) []string {
	if s == "" {
		return []string{}
	}
	if sep == "" {
		return splitWorker(s, unicode.IsSpace, max, preserve)
	}

	list := []string{}
	count := 0
	beg := 0
	for beg <= len(s) {
		idx := strings.Index(s[beg:], sep)
		if idx < 0 {
			if beg < len(s) || preserve {
				list = append(list, s[beg:])
			}
			break
		}
		end := beg + idx
		if end > beg || preserve {
			count++
			if count == max {
				return append(list, s[beg:])
			}
			list = append(list, s[beg:end])
		}
		beg = end + len(sep)
	}
	return list
}

// generalCategories lists the Unicode general categories a rune can be
// classified into. The tables are disjoint.
var generalCategories = []struct {
	name  string
	table *unicode.RangeTable
}{
	{"Lu", unicode.Lu}, {"Ll", unicode.Ll}, {"Lt", unicode.Lt},
	{"Lm", unicode.Lm}, {"Lo", unicode.Lo},
	{"Mn", unicode.Mn}, {"Mc", unicode.Mc}, {"Me", unicode.Me},
	{"Nd", unicode.Nd}, {"Nl", unicode.Nl}, {"No", unicode.No},
	{"Zs", unicode.Zs}, {"Zl", unicode.Zl}, {"Zp", unicode.Zp},
	{"Cc", unicode.Cc}, {"Cf", unicode.Cf}, {"Co", unicode.Co},
	{"Cs", unicode.Cs},
	{"Pc", unicode.Pc}, {"Pd", unicode.Pd}, {"Ps", unicode.Ps},
	{"Pe", unicode.Pe}, {"Pi", unicode.Pi}, {"Pf", unicode.Pf},
	{"Po", unicode.Po},
	{"Sm", unicode.Sm}, {"Sc", unicode.Sc}, {"Sk", unicode.Sk},
	{"So", unicode.So},
}

// generalCategory returns the two letter general category of r, "Cn" for
// unassigned code points.
func generalCategory(r rune) string {
	switch {
	case r >= 'a' && r <= 'z':
		return "Ll"
	case r >= 'A' && r <= 'Z':
		return "Lu"
	case r >= '0' && r <= '9':
		return "Nd"
	}
	for _, c := range generalCategories {
		if unicode.Is(c.table, r) {
			return c.name
		}
	}
	return "Cn"
}

// SplitByCharacterType splits s into maximal runs of runes sharing the
// same Unicode general category:
//
//	SplitByCharacterType("ab de fg")  == []string{"ab", " ", "de", " ", "fg"}
//	SplitByCharacterType("ASFRules")  == []string{"ASFR", "ules"}
//
// Joining the result always gives back s.
func SplitByCharacterType(s string) []string {
	return splitByCharacterType(s, false)
}

// SplitByCharacterTypeCamelCase is SplitByCharacterType except that an
// upper case rune directly followed by lower case runes starts a new token:
//
//	SplitByCharacterTypeCamelCase("ASFRules")  == []string{"ASF", "Rules"}
//	SplitByCharacterTypeCamelCase("foo200Bar") == []string{"foo", "200", "Bar"}
func SplitByCharacterTypeCamelCase(s string) []string {
	return splitByCharacterType(s, true)
}

func splitByCharacterType(s string, camelCase bool) []string {
	if s == "" {
		return []string{}
	}

	list := []string{}
	tokenStart := 0
	r, prevSize := utf8.DecodeRuneInString(s)
	current := generalCategory(r)
	for pos := prevSize; pos < len(s); {
		r, size := utf8.DecodeRuneInString(s[pos:])
		typ := generalCategory(r)
		if typ != current {
			if camelCase && typ == "Ll" && current == "Lu" {
				if newStart := pos - prevSize; newStart != tokenStart {
					list = append(list, s[tokenStart:newStart])
					tokenStart = newStart
				}
			} else {
				list = append(list, s[tokenStart:pos])
				tokenStart = pos
			}
			current = typ
		}
		prevSize = size
		pos += size
	}
	return append(list, s[tokenStart:])
}

// SplitLines splits s into lines. "\r\n", "\n" and "\r" all end a line and
// are not part of the returned lines. A terminator at the very end does not
// produce a trailing empty line.
func SplitLines(s string) []string {
	if s == "" {
		return []string{}
	}

	lines := []string{}
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			lines = append(lines, s[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, s[start:i])
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
