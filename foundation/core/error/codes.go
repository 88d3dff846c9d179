// File: codes.go
// Title: Error Code Definitions
// Description: Error codes used by the utility packages. Codes classify a
//              failure independently of its message so callers can branch on
//              them with HasCode or errors.Is.
// Author: satish049
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2025-10-19 v0.2.0: Replaced platform codes with argument and type codes

package error

// Code classifies an error.
type Code string

const (
	// Generic
	CodeUnknown     Code = "UNKNOWN"
	CodeInternal    Code = "INTERNAL"
	CodeNotFound    Code = "NOT_FOUND"
	CodeUnsupported Code = "UNSUPPORTED"

	// Arguments
	CodeInvalidInput     Code = "INVALID_INPUT"
	CodeInvalidArgument  Code = "INVALID_ARGUMENT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
	CodeInvalidLength    Code = "INVALID_LENGTH"
	CodeTypeMismatch     Code = "TYPE_MISMATCH"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValidationFailed Code = "VALIDATION_FAILED"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the code as a string.
func (c Code) String() string {
	return string(c)
}

// IsValid reports whether c is one of the declared codes.
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeUnsupported,
		CodeInvalidInput, CodeInvalidArgument, CodeValueOutOfRange, CodeInvalidLength,
		CodeTypeMismatch, CodeInvalidFormat, CodeValidationFailed,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the group a code belongs to.
func (c Code) Category() string {
	switch c {
	case CodeInvalidInput, CodeInvalidArgument, CodeValueOutOfRange, CodeInvalidLength,
		CodeTypeMismatch, CodeInvalidFormat, CodeValidationFailed:
		return "argument"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}
