// Package slicex implements collection helpers and multiset algebra over Go slices.
//
// Package: slicex
// Title: Collection Utilities for Go
// Description: Generic set and multiset operations, ordered merging and
//              null-safe collection handling. Every function accepts a nil
//              slice and treats it as empty; functions returning a slice
//              distinguish "no input" (nil) from "no elements" ([]T{}).
// Author: satish049
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive slice operations
// - 2025-01-26 v0.1.1: Enhanced documentation with comprehensive examples
// - 2025-10-19 v0.2.0: Collection algebra, cardinality and collation
//
// # Set Operations
//
// Union, Intersect and Disjunction produce distinct elements in first
// appearance order. Difference (also RemoveAll) keeps the duplicates of its
// first argument:
//
//	slicex.Union([]int{1, 2, 2}, []int{2, 3})       // [1 2 3]
//	slicex.Disjunction([]int{1, 2, 3}, []int{3, 4}) // [1 2 4]
//	slicex.Difference([]int{1, 1, 2}, []int{2})     // [1 1]
//
// # Multiset Comparison
//
// CardinalityMap counts occurrences. IsSubCollection, IsProperSubCollection
// and IsEqualCollection compare those counts, so order never matters but
// multiplicity does:
//
//	slicex.IsEqualCollection([]string{"a", "b", "a"}, []string{"a", "a", "b"}) // true
//	slicex.IsSubCollection([]int{1, 1}, []int{1, 2})                          // false
//
// # Collation
//
// Collate merges two slices into sorted order; CollateFunc takes a
// comparison function in the cmp.Compare shape. Sorting is stable.
//
// # Zero Elements
//
// AddAllIgnoreZero, AddIgnoreZero and InsertAllAt (with includeZero false)
// skip elements equal to the zero value of their type: nil pointers, empty
// strings, zero numbers.
//
// # Thread Safety
//
// All functions are pure. They never modify their input slices except
// where they return the grown destination, as append does.
package slicex
