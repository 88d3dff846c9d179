// File: standards.go
// Title: Standard Error Constructors
// Description: Shorthand constructors for the error kinds the utility packages
//              raise, and helpers to inspect them.
// Author: satish049
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2025-10-19 v0.2.0: Reduced to argument, range, type and operation errors

package errors

import (
	"fmt"

	ulterror "github.com/satish049/Ultimate.Utilities/foundation/core/error"
)

// InvalidArgument reports an argument that cannot be used.
func InvalidArgument(module, operation, message string) *ulterror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(message).
		Code(ulterror.CodeInvalidArgument).
		Build()
}

// OutOfRange reports a value outside [min, max].
func OutOfRange(module, operation string, value, min, max interface{}) *ulterror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("value %v out of range [%v, %v]", value, min, max).
		Code(ulterror.CodeValueOutOfRange).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Build()
}

// TypeMismatch reports a value whose type does not match what was expected.
func TypeMismatch(module, operation string, got, want interface{}) *ulterror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("type mismatch: got %v, want %v", got, want).
		Code(ulterror.CodeTypeMismatch).
		Detail("got", fmt.Sprint(got)).
		Detail("want", fmt.Sprint(want)).
		Build()
}

// InvalidFormat reports input that could not be parsed.
func InvalidFormat(module, operation string, input interface{}, cause error) *ulterror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid format: %v", input).
		Cause(cause).
		Code(ulterror.CodeInvalidFormat).
		Detail("input", input).
		Build()
}

// NotFound reports a missing key or resource.
func NotFound(module, operation string, key interface{}) *ulterror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%v not found", key).
		Code(ulterror.CodeNotFound).
		Detail("key", key).
		Build()
}

// OperationFailed wraps cause as an internal failure of operation.
func OperationFailed(module, operation string, cause error) *ulterror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Cause(cause).
		Build()
}

// IsInvalidArgument reports whether err has CodeInvalidArgument.
func IsInvalidArgument(err error) bool {
	return ulterror.HasCode(err, ulterror.CodeInvalidArgument)
}

// IsTypeMismatch reports whether err has CodeTypeMismatch.
func IsTypeMismatch(err error) bool {
	return ulterror.HasCode(err, ulterror.CodeTypeMismatch)
}

// ModuleOf returns the module recorded on err, or "".
func ModuleOf(err error) string {
	e, ok := err.(*ulterror.Error)
	if !ok {
		return ""
	}
	m, _ := e.Details()["module"].(string)
	return m
}
