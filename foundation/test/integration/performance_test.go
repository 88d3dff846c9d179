// File: performance_test.go
// Title: Performance Integration Tests
// Description: Benchmarks for the cross-package pipelines.
// Author: satish049
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of performance tests
// - 2025-10-19 v0.2.0: Pipelines over the current packages

package integration

import (
	"strings"
	"testing"

	"github.com/satish049/Ultimate.Utilities/foundation/utils/hashx"
	"github.com/satish049/Ultimate.Utilities/foundation/utils/objectx"
	"github.com/satish049/Ultimate.Utilities/foundation/utils/slicex"
	"github.com/satish049/Ultimate.Utilities/foundation/utils/stringx"
)

func BenchmarkSplitUnionJoin(b *testing.B) {
	left := strings.Repeat("alpha,beta,gamma,", 100)
	right := strings.Repeat("gamma,delta,", 100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		u := slicex.Union(stringx.SplitChar(left, ','), stringx.SplitChar(right, ','))
		_ = stringx.Join(u, ",")
	}
}

func BenchmarkParseMapHash(b *testing.B) {
	line := "42;Ada Lovelace;ada@example.com;math,poetry"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		row, err := parseRow(line)
		if err != nil {
			b.Fatal(err)
		}
		var card contactCard
		if err := objectx.Map(&row, &card); err != nil {
			b.Fatal(err)
		}
		_ = hashx.MD5Hex(card.NAME)
	}
}

func BenchmarkConcurrentMapping(b *testing.B) {
	row := csvRow{ID: 1, Name: "x", Tags: []string{"a"}}

	b.RunParallel(func(pb *testing.PB) {
		var card contactCard
		for pb.Next() {
			_ = objectx.Map(row, &card)
		}
	})
}
