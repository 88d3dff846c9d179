// File: case.go
// Title: String Case Conversion Utilities
// Description: Case mapping of whole strings and of the first rune, case
//              swapping, naming convention conversions built on camel case
//              aware character type segmentation, and character class checks.
// Author: satish049
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with case conversion utilities
// - 2025-10-19 v0.2.0: Word splitting through SplitByCharacterTypeCamelCase,
//                      locale aware mapping, character class checks

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UpperCase returns s with all letters mapped to upper case.
func UpperCase(s string) string {
	return strings.ToUpper(s)
}

// LowerCase returns s with all letters mapped to lower case.
func LowerCase(s string) string {
	return strings.ToLower(s)
}

// UpperCaseIn maps s to upper case using the rules of tag, for example
// Turkish dotted and dotless i.
func UpperCaseIn(s string, tag language.Tag) string {
	return cases.Upper(tag).String(s)
}

// LowerCaseIn maps s to lower case using the rules of tag.
func LowerCaseIn(s string, tag language.Tag) string {
	return cases.Lower(tag).String(s)
}

// Capitalize maps the first rune of s to title case and leaves the rest
// untouched: Capitalize("cAt") == "CAt".
func Capitalize(s string) string {
	return mapFirst(s, unicode.ToTitle)
}

// Uncapitalize maps the first rune of s to lower case.
func Uncapitalize(s string) string {
	return mapFirst(s, unicode.ToLower)
}

func mapFirst(s string, fn func(rune) rune) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	mapped := fn(r)
	if mapped == r {
		return s
	}
	return string(mapped) + s[size:]
}

// SwapCase maps upper and title case runes to lower case and lower case
// runes to upper case: SwapCase("The dog has a BONE") == "tHE DOG HAS A bone".
func SwapCase(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsUpper(r), unicode.IsTitle(r):
			return unicode.ToLower(r)
		case unicode.IsLower(r):
			return unicode.ToUpper(r)
		}
		return r
	}, s)
}

// words splits s into the letter and digit runs of
// SplitByCharacterTypeCamelCase, dropping separators and punctuation.
func words(s string) []string {
	var out []string
	for _, tok := range SplitByCharacterTypeCamelCase(s) {
		r, _ := utf8.DecodeRuneInString(tok)
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			out = append(out, tok)
		}
	}
	return out
}

func joinWords(s, sep string, fn func(i int, w string) string) string {
	ws := words(s)
	for i, w := range ws {
		ws[i] = fn(i, w)
	}
	return strings.Join(ws, sep)
}

// ToSnakeCase converts a string to snake_case.
// Example: "MyVariableName" -> "my_variable_name", "HTTPServer" -> "http_server"
func ToSnakeCase(s string) string {
	return joinWords(s, "_", func(_ int, w string) string {
		return strings.ToLower(w)
	})
}

// ToKebabCase converts a string to kebab-case.
// Example: "MyVariableName" -> "my-variable-name"
func ToKebabCase(s string) string {
	return joinWords(s, "-", func(_ int, w string) string {
		return strings.ToLower(w)
	})
}

// ToCamelCase converts a string to camelCase.
// Example: "my_variable_name" -> "myVariableName"
func ToCamelCase(s string) string {
	return joinWords(s, "", func(i int, w string) string {
		w = strings.ToLower(w)
		if i == 0 {
			return w
		}
		return Capitalize(w)
	})
}

// ToPascalCase converts a string to PascalCase.
// Example: "my_variable_name" -> "MyVariableName"
func ToPascalCase(s string) string {
	return joinWords(s, "", func(_ int, w string) string {
		return Capitalize(strings.ToLower(w))
	})
}

// ToTitleCase converts a string to Title Case.
// It capitalizes the first letter of each word while preserving spaces.
// Example: "hello world" -> "Hello World"
func ToTitleCase(s string) string {
	if s == "" {
		return s
	}
	return cases.Title(language.Und).String(s)
}

func all(s string, fn func(rune) bool) bool {
	for _, r := range s {
		if !fn(r) {
			return false
		}
	}
	return true
}

func isLetterOrDigit(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// IsAlpha reports whether s is non-empty and contains only letters.
func IsAlpha(s string) bool {
	return s != "" && all(s, unicode.IsLetter)
}

// IsAlphaSpace reports whether s contains only letters and spaces. The
// empty string qualifies.
func IsAlphaSpace(s string) bool {
	return all(s, func(r rune) bool { return unicode.IsLetter(r) || r == ' ' })
}

// IsAlphanumeric reports whether s is non-empty and contains only letters
// and digits.
func IsAlphanumeric(s string) bool {
	return s != "" && all(s, isLetterOrDigit)
}

// IsAlphanumericSpace reports whether s contains only letters, digits and
// spaces. The empty string qualifies.
func IsAlphanumericSpace(s string) bool {
	return all(s, func(r rune) bool { return isLetterOrDigit(r) || r == ' ' })
}

// IsASCIIPrintable reports whether every rune of s is a printable ASCII
// character, ' ' through '~'. The empty string qualifies.
func IsASCIIPrintable(s string) bool {
	return all(s, func(r rune) bool { return r >= 32 && r < 127 })
}

// IsNumeric reports whether s is non-empty and contains only decimal
// digits. Signs and decimal points are not digits.
func IsNumeric(s string) bool {
	return s != "" && all(s, unicode.IsDigit)
}

// IsNumericSpace reports whether s is non-empty and contains only digits
// and spaces.
func IsNumericSpace(s string) bool {
	return s != "" && all(s, func(r rune) bool { return unicode.IsDigit(r) || r == ' ' })
}

// IsWhitespace reports whether s contains only whitespace. The empty
// string qualifies.
func IsWhitespace(s string) bool {
	return all(s, unicode.IsSpace)
}

// IsAllLowerCase reports whether s is non-empty and every rune is a lower
// case letter.
func IsAllLowerCase(s string) bool {
	return s != "" && all(s, unicode.IsLower)
}

// IsAllUpperCase reports whether s is non-empty and every rune is an upper
// case letter.
func IsAllUpperCase(s string) bool {
	return s != "" && all(s, unicode.IsUpper)
}
