// File: benchmark_test.go
// Title: Slice Utilities Benchmarks
// Description: Performance benchmarks for the set and multiset operations.
// Author: satish049
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial benchmark implementation
// - 2025-10-19 v0.2.0: Collection algebra benchmarks

package slicex

import (
	"strconv"
	"testing"
)

func benchInput(size int) []int {
	s := make([]int, size)
	for i := range s {
		s[i] = (i * 7) % (size / 2)
	}
	return s
}

func BenchmarkUnion(b *testing.B) {
	sizes := []int{100, 1000, 10000}

	for _, size := range sizes {
		x, y := benchInput(size), benchInput(size/2)
		b.Run("size_"+strconv.Itoa(size), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				Union(x, y)
			}
		})
	}
}

func BenchmarkDisjunction(b *testing.B) {
	sizes := []int{100, 1000, 10000}

	for _, size := range sizes {
		x, y := benchInput(size), benchInput(size/2)
		b.Run("size_"+strconv.Itoa(size), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				Disjunction(x, y)
			}
		})
	}
}

func BenchmarkIsEqualCollection(b *testing.B) {
	sizes := []int{100, 1000, 10000}

	for _, size := range sizes {
		x := benchInput(size)
		y := Clone(x)
		b.Run("size_"+strconv.Itoa(size), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				IsEqualCollection(x, y)
			}
		})
	}
}

func BenchmarkCollate(b *testing.B) {
	x, y := benchInput(1000), benchInput(500)

	b.Run("with_duplicates", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			Collate(x, y, true)
		}
	})
	b.Run("without_duplicates", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			Collate(x, y, false)
		}
	})
}
