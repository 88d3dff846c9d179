// Package error provides the structured error type used across the
// Ultimate.Utilities packages.
//
// Package: error
// Title: Structured Errors
// Description: Errors carry a Code, a Severity, the operation that failed and
//              free-form details. The string and collection utilities return
//              these only for argument errors that cannot be clamped away,
//              for example an abbreviation width below the minimum.
// Author: satish049
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-19
//
// Usage:
//
//	import ulterror "github.com/satish049/Ultimate.Utilities/foundation/core/error"
//
//	err := ulterror.New("minimum abbreviation width is 4").
//		WithCode(ulterror.CodeInvalidArgument).
//		WithOperation("Abbreviate").
//		WithDetail("maxWidth", 3)
//
//	if ulterror.HasCode(err, ulterror.CodeInvalidArgument) {
//		// caller passed a bad width
//	}
package error
