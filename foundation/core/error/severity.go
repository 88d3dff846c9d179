// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels attached to errors. The logger maps them to log
//              levels when an error is reported.
// Author: satish049
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2025-10-19 v0.2.0: Severity mapping for argument and config codes

package error

// Severity ranks how serious an error is.
type Severity int

const (
	// SeverityLow marks caller mistakes such as a bad argument.
	SeverityLow Severity = iota
	// SeverityMedium is the default.
	SeverityMedium
	// SeverityHigh marks failures that stop an operation from completing.
	SeverityHigh
	// SeverityCritical marks failures that leave the process unusable.
	SeverityCritical
)

// String returns the lower-case severity name.
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert reports whether s is high or critical.
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode returns the default severity for code.
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityHigh
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return SeverityHigh
	case CodeInvalidInput, CodeInvalidArgument, CodeValueOutOfRange, CodeInvalidLength,
		CodeTypeMismatch, CodeInvalidFormat, CodeValidationFailed, CodeNotFound:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
