// File: benchmark_test.go
// Title: Performance Benchmarks for StringX Functions
// Description: Benchmarks for the substring, split, join, pad and
//              abbreviate engines, with ASCII and Unicode inputs.
// Author: satish049
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial benchmark implementation
// - 2025-10-19 v0.2.0: Engine benchmarks

package stringx

import (
	"strings"
	"testing"
)

var (
	benchASCII   = strings.Repeat("lorem ipsum dolor sit amet ", 20)
	benchUnicode = strings.Repeat("これは日本語のテキストです ", 20)
	benchCSV     = strings.Repeat("alpha,beta,,gamma,", 50)
)

func BenchmarkIsBlank(b *testing.B) {
	testStrings := []string{"", "   ", "hello", "  hello  ", "hello world with some text"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = IsBlank(testStrings[i%len(testStrings)])
	}
}

func BenchmarkSubstringASCII(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = SubstringWithNegatives(benchASCII, 10, -10)
	}
}

func BenchmarkSubstringUnicode(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = SubstringWithNegatives(benchUnicode, 10, -10)
	}
}

func BenchmarkSplitChar(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = SplitChar(benchCSV, ',')
	}
}

func BenchmarkSplitCharPreserveAllTokens(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = SplitCharPreserveAllTokens(benchCSV, ',')
	}
}

func BenchmarkSplitByWholeSeparator(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = SplitByWholeSeparator(benchCSV, ",,")
	}
}

func BenchmarkSplitByCharacterTypeCamelCase(b *testing.B) {
	s := strings.Repeat("parseHTTPRequest200OK", 10)
	for i := 0; i < b.N; i++ {
		_ = SplitByCharacterTypeCamelCase(s)
	}
}

func BenchmarkJoin(b *testing.B) {
	parts := strings.Split(benchCSV, ",")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Join(parts, ";")
	}
}

func BenchmarkJoinInts(b *testing.B) {
	nums := make([]int, 100)
	for i := range nums {
		nums[i] = i * 7
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Join(nums, ",")
	}
}

func BenchmarkPadLeft(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = PadLeft("hello", 20, ' ')
	}
}

func BenchmarkPadLeftUnicode(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = PadLeft("こんにちは", 20, '・')
	}
}

func BenchmarkPadLeftString(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = PadLeftString("hello", 40, "-=")
	}
}

func BenchmarkAbbreviateOffset(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = AbbreviateOffset(benchASCII, 100, 40)
	}
}

func BenchmarkReplaceEach(b *testing.B) {
	search := []string{"lorem", "dolor", "amet"}
	repl := []string{"L", "D", "A"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ReplaceEach(benchASCII, search, repl)
	}
}

func BenchmarkIndexOfIgnoreCase(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = IndexOfIgnoreCase(benchASCII, "SIT AMET LOREM", 50)
	}
}
