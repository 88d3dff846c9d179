// File: objectx.go
// Title: Object Helpers
// Description: Package-level mapping through the Default mapper, slice
//              mapping, nil-guarded evaluation and deep cloning.
// Author: satish049
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

package objectx

import (
	"reflect"

	"github.com/satish049/Ultimate.Utilities/foundation/core/errors"
	"github.com/satish049/Ultimate.Utilities/foundation/utils/slicex"
)

// Default is the process-wide mapper used by Map and MapSlice.
var Default = NewMapper(Options{})

// Map copies common fields from src to dst using Default.
func Map(src, dst any) error {
	return Default.Map(src, dst)
}

// MapSlice maps every element of src onto a fresh TOut using Default.
func MapSlice[TIn, TOut any](src []TIn) ([]TOut, error) {
	return MapSliceWith[TIn, TOut](Default, src)
}

// MapSliceWith maps every element of src onto a fresh TOut. TOut is a
// struct or a pointer to a struct; pointers are allocated. A nil src yields
// nil.
func MapSliceWith[TIn, TOut any](m *Mapper, src []TIn) ([]TOut, error) {
	if src == nil {
		return nil, nil
	}

	outType := reflect.TypeFor[TOut]()
	isPtr := outType.Kind() == reflect.Pointer
	elemType := outType
	if isPtr {
		elemType = outType.Elem()
	}
	if elemType.Kind() != reflect.Struct {
		return nil, errors.TypeMismatch(errors.ModuleObjectx, "MapSlice", outType, "struct")
	}

	result := make([]TOut, len(src))
	for i, in := range src {
		target := reflect.New(elemType)
		if err := m.Map(in, target.Interface()); err != nil {
			return nil, err
		}
		if isPtr {
			result[i] = target.Interface().(TOut)
		} else {
			result[i] = target.Elem().Interface().(TOut)
		}
	}
	return result, nil
}

// IfNotNil returns fn(v), or the zero R when v is nil.
func IfNotNil[T, R any](v *T, fn func(*T) R) R {
	if v == nil {
		var zero R
		return zero
	}
	return fn(v)
}

// DeepClone returns an independent copy of v.
func DeepClone[T slicex.Cloner[T]](v T) T {
	return v.Clone()
}
