// File: slicex.go
// Title: Core Slice Utilities
// Description: Generic transformation, search and set operations over Go
//              slices. A nil slice is the absent collection and behaves as
//              an empty one in every function.
// Author: satish049
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive slice utilities
// - 2025-10-19 v0.2.0: Reduced to the collection helpers, fixed Union aliasing

package slicex

// ===============================
// Core Transformation Functions
// ===============================

// Filter returns a new slice containing only elements that match the predicate
func Filter[T any](slice []T, predicate func(T) bool) []T {
	if slice == nil || predicate == nil {
		return nil
	}

	result := make([]T, 0, len(slice))
	for _, item := range slice {
		if predicate(item) {
			result = append(result, item)
		}
	}
	return result
}

// Map transforms each element in the slice using the provided function
func Map[T, R any](slice []T, mapper func(T) R) []R {
	if slice == nil || mapper == nil {
		return nil
	}

	result := make([]R, len(slice))
	for i, item := range slice {
		result[i] = mapper(item)
	}
	return result
}

// ===============================
// Set Operations
// ===============================

// Unique returns a new slice with duplicate elements removed (preserves order)
func Unique[T comparable](slice []T) []T {
	if slice == nil {
		return nil
	}

	seen := make(map[T]bool)
	result := make([]T, 0, len(slice))

	for _, item := range slice {
		if !seen[item] {
			seen[item] = true
			result = append(result, item)
		}
	}
	return result
}

// Union returns the distinct elements of both slices, slice1 first.
func Union[T comparable](slice1, slice2 []T) []T {
	if slice1 == nil && slice2 == nil {
		return nil
	}
	combined := make([]T, 0, len(slice1)+len(slice2))
	combined = append(combined, slice1...)
	combined = append(combined, slice2...)
	return Unique(combined)
}

// Intersect returns the distinct elements of slice1 that are also in slice2.
func Intersect[T comparable](slice1, slice2 []T) []T {
	if slice1 == nil || slice2 == nil {
		return nil
	}

	set := toSet(slice2)
	result := make([]T, 0)
	seen := make(map[T]bool)
	for _, item := range slice1 {
		if set[item] && !seen[item] {
			seen[item] = true
			result = append(result, item)
		}
	}
	return result
}

// Difference returns the elements of slice1 that are not in slice2.
// Duplicates within slice1 are kept.
func Difference[T comparable](slice1, slice2 []T) []T {
	if slice1 == nil {
		return nil
	}

	set := toSet(slice2)
	result := make([]T, 0, len(slice1))
	for _, item := range slice1 {
		if !set[item] {
			result = append(result, item)
		}
	}
	return result
}

// RemoveAll is Difference under its collection name.
func RemoveAll[T comparable](slice, remove []T) []T {
	return Difference(slice, remove)
}

// Disjunction returns the distinct elements found in exactly one of the two
// slices: the symmetric difference.
func Disjunction[T comparable](slice1, slice2 []T) []T {
	if slice1 == nil && slice2 == nil {
		return nil
	}

	inFirst := toSet(slice1)
	inSecond := toSet(slice2)
	result := make([]T, 0)
	seen := make(map[T]bool)
	add := func(item T, other map[T]bool) {
		if !other[item] && !seen[item] {
			seen[item] = true
			result = append(result, item)
		}
	}
	for _, item := range slice1 {
		add(item, inSecond)
	}
	for _, item := range slice2 {
		add(item, inFirst)
	}
	return result
}

func toSet[T comparable](slice []T) map[T]bool {
	set := make(map[T]bool, len(slice))
	for _, item := range slice {
		set[item] = true
	}
	return set
}

// ===============================
// Search and Validation Functions
// ===============================

// Contains checks if the slice contains the specified element
func Contains[T comparable](slice []T, element T) bool {
	return IndexOf(slice, element) >= 0
}

// IndexOf returns the first index of the element, or -1 if not found
func IndexOf[T comparable](slice []T, element T) int {
	for i, item := range slice {
		if item == element {
			return i
		}
	}
	return -1
}

// IsEmpty reports whether the slice is nil or has no elements
func IsEmpty[T any](slice []T) bool {
	return len(slice) == 0
}

// IsNotEmpty is the negation of IsEmpty
func IsNotEmpty[T any](slice []T) bool {
	return len(slice) > 0
}

// Equal checks if two slices hold the same elements in the same order
func Equal[T comparable](slice1, slice2 []T) bool {
	if len(slice1) != len(slice2) {
		return false
	}

	for i, item := range slice1 {
		if item != slice2[i] {
			return false
		}
	}
	return true
}

// Clone creates a shallow copy of the slice
func Clone[T any](slice []T) []T {
	if slice == nil {
		return nil
	}

	result := make([]T, len(slice))
	copy(result, slice)
	return result
}
