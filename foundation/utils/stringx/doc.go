// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides null-safe string manipulation:
//              substring extraction with clamped and negative positions,
//              splitting and joining, padding, abbreviation, replacement
//              and case handling.
// Author: satish049
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2025-10-19 v0.3.0: Substring, split, join, pad and abbreviate engines

// Package stringx provides string operations that never panic on awkward
// input.
//
// # Overview
//
// Every function accepts any string, including the empty string, and any
// position or count, including negative and out of range ones. Positions
// are clamped to the string instead of being reported as errors. The only
// operations that return errors are the abbreviation width checks, the
// multi-target replacement consistency checks, regular expression
// compilation and byte decoding.
//
// # Positions
//
// All positions and lengths are counted in runes, never in bytes, so a
// multi-byte character is never cut in half:
//
//	stringx.Left("héllo", 2)        // "hé"
//	stringx.Substring("abc", -2)    // "bc"
//	stringx.Mid("abcdef", 2, 3)     // "cde"
//
// Functions whose name ends in Width count terminal columns and functions
// mentioning Graphemes count user perceived characters.
//
// # Absent values
//
// A Go string cannot be nil. Where the absence of a result carries
// information it is reported in comma-ok form:
//
//	s, ok := stringx.SubstringBetween("yabcz", "y", "z") // "abc", true
//	s, ok  = stringx.SubstringBetween("yabcz", "[", "]") // "", false
//
// Slice results use nil for "no result" and an empty slice for "no
// tokens". Separator and character set parameters treat "" as whitespace.
//
// # Architecture
//
//   - Predicates and trimming (stringx.go, strip.go)
//   - Searching (index.go, fold.go)
//   - Substring engine (substring.go)
//   - Split engine (split.go) and Join (join.go)
//   - Padding and repetition (pad.go)
//   - Abbreviation (abbreviate.go)
//   - Removal and replacement (replace.go)
//   - Case handling and character class checks (case.go)
//   - Rotation, reversal and decoration (misc.go)
//   - Display width and grapheme clusters (width.go)
//   - Byte encodings (encoding.go)
//
// # Splitting
//
// The split functions differ along three axes: what separates tokens
// (whitespace, one rune, a set of runes or a whole string), whether
// adjacent separators collapse or yield empty tokens, and an optional
// token limit after which the remainder is returned unsplit:
//
//	stringx.SplitAny("a..b", ".")                   // ["a" "b"]
//	stringx.SplitAnyPreserveAllTokens("a..b", ".")  // ["a" "" "b"]
//	stringx.SplitAnyN("a.b.c", ".", 2)              // ["a" "b.c"]
//	stringx.SplitByWholeSeparator("a::b", "::")     // ["a" "b"]
//
// SplitByCharacterTypeCamelCase groups runes by Unicode general category
// and keeps an upper case letter with the lower case run that follows it:
//
//	stringx.SplitByCharacterTypeCamelCase("ASFRules")  // ["ASF" "Rules"]
//
// # Thread Safety
//
// The package holds no mutable state. All functions are safe for
// concurrent use.
package stringx
