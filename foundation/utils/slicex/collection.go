// File: collection.go
// Title: Collection Algebra
// Description: Multiset comparisons, cardinality counting, ordered merging
//              and the add/insert helpers that skip zero elements.
// Author: satish049
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

package slicex

import (
	"cmp"
	"regexp"
	"slices"

	"github.com/satish049/Ultimate.Utilities/foundation/core/errors"
)

// Cloner is implemented by element types that can produce an independent
// deep copy of themselves.
type Cloner[T any] interface {
	Clone() T
}

// EmptyIfNil returns slice, or a non-nil empty slice when slice is nil.
func EmptyIfNil[T any](slice []T) []T {
	if slice == nil {
		return []T{}
	}
	return slice
}

// DefaultIfNil returns slice, or def when slice is nil.
func DefaultIfNil[T any](slice, def []T) []T {
	if slice == nil {
		return def
	}
	return slice
}

// ===============================
// Adding Elements
// ===============================

// AddAll appends elems to dst.
func AddAll[T any](dst []T, elems ...T) []T {
	return append(dst, elems...)
}

// AddAllIgnoreZero appends the elements of elems that are not the zero
// value of T. Nil pointers and empty strings are skipped this way.
func AddAllIgnoreZero[T comparable](dst []T, elems ...T) []T {
	var zero T
	for _, e := range elems {
		if e != zero {
			dst = append(dst, e)
		}
	}
	return dst
}

// AddIgnoreZero appends elem unless it is the zero value. The boolean
// reports whether dst changed.
func AddIgnoreZero[T comparable](dst []T, elem T) ([]T, bool) {
	var zero T
	if elem == zero {
		return dst, false
	}
	return append(dst, elem), true
}

// InsertAllAt inserts elems into dst starting at index, keeping their order.
// With includeZero false, zero-valued elements are left out. An index
// outside [0, len(dst)] is an error.
func InsertAllAt[T comparable](dst []T, index int, elems []T, includeZero bool) ([]T, error) {
	if index < 0 || index > len(dst) {
		return dst, errors.OutOfRange(errors.ModuleSlicex, "InsertAllAt", index, 0, len(dst))
	}
	if !includeZero {
		elems = AddAllIgnoreZero(nil, elems...)
	}
	return slices.Insert(dst, index, elems...), nil
}

// ===============================
// Ordered Merging
// ===============================

// Collate merges a and b into a new sorted slice. With includeDuplicates
// false, equal elements appear once.
func Collate[T cmp.Ordered](a, b []T, includeDuplicates bool) []T {
	merged, _ := CollateFunc(a, b, cmp.Compare[T], includeDuplicates)
	return merged
}

// CollateFunc is Collate with an explicit comparison function. Elements
// comparing equal keep their input order. A nil comparison function is an
// error.
func CollateFunc[T any](a, b []T, compare func(x, y T) int, includeDuplicates bool) ([]T, error) {
	if compare == nil {
		return nil, errors.InvalidArgument(errors.ModuleSlicex, "CollateFunc", "comparison function is nil")
	}

	merged := make([]T, 0, len(a)+len(b))
	merged = append(merged, a...)
	merged = append(merged, b...)
	slices.SortStableFunc(merged, compare)
	if !includeDuplicates {
		merged = slices.CompactFunc(merged, func(x, y T) bool {
			return compare(x, y) == 0
		})
	}
	return merged, nil
}

// ===============================
// Multiset Comparison
// ===============================

// CardinalityMap counts how many times each element occurs.
func CardinalityMap[T comparable](slice []T) map[T]int {
	counts := make(map[T]int, len(slice))
	for _, item := range slice {
		counts[item]++
	}
	return counts
}

// ContainsAll reports whether every element of want occurs in slice.
func ContainsAll[T comparable](slice, want []T) bool {
	set := toSet(slice)
	for _, item := range want {
		if !set[item] {
			return false
		}
	}
	return true
}

// ContainsAny reports whether at least one element of want occurs in slice.
func ContainsAny[T comparable](slice, want []T) bool {
	set := toSet(slice)
	for _, item := range want {
		if set[item] {
			return true
		}
	}
	return false
}

// IsSubCollection reports whether every element of a occurs in b at least
// as many times as it occurs in a.
func IsSubCollection[T comparable](a, b []T) bool {
	countB := CardinalityMap(b)
	for item, n := range CardinalityMap(a) {
		if n > countB[item] {
			return false
		}
	}
	return true
}

// IsProperSubCollection is IsSubCollection with the extra requirement that b
// holds more elements than a.
func IsProperSubCollection[T comparable](a, b []T) bool {
	return len(a) < len(b) && IsSubCollection(a, b)
}

// IsEqualCollection reports whether a and b hold the same elements with the
// same cardinalities, in any order.
func IsEqualCollection[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	countA := CardinalityMap(a)
	countB := CardinalityMap(b)
	if len(countA) != len(countB) {
		return false
	}
	for item, n := range countA {
		if countB[item] != n {
			return false
		}
	}
	return true
}

// IsEqualCollectionFunc is IsEqualCollection for element types that are not
// comparable. Each element of a must pair with a distinct element of b.
func IsEqualCollectionFunc[T any](a, b []T, equal func(x, y T) bool) bool {
	if len(a) != len(b) || equal == nil {
		return false
	}

	used := make([]bool, len(b))
	for _, x := range a {
		matched := false
		for j, y := range b {
			if !used[j] && equal(x, y) {
				used[j] = true
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

// ===============================
// Search and Copy
// ===============================

// FindWithRegex returns the elements of slice matched by pattern. The
// returned slice is empty, not nil, when nothing matches.
func FindWithRegex(slice []string, pattern string, ignoreCase bool) ([]string, error) {
	if ignoreCase {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.InvalidFormat(errors.ModuleSlicex, "FindWithRegex", pattern, err)
	}

	result := make([]string, 0)
	for _, s := range slice {
		if re.MatchString(s) {
			result = append(result, s)
		}
	}
	return result, nil
}

// CloneAll deep copies every element through its Clone method.
func CloneAll[T Cloner[T]](slice []T) []T {
	if slice == nil {
		return nil
	}
	result := make([]T, len(slice))
	for i, item := range slice {
		result[i] = item.Clone()
	}
	return result
}
