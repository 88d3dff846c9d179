// Package errors builds the structured errors returned by the utility
// packages.
//
// Package: errors
// Title: Module Error Standards
// Description: Every package that can fail goes through NewErrorBuilder or one
//              of the standard constructors so that errors consistently carry
//              the module, the operation and a code from the core error
//              package.
// Author: satish049
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-19
//
// Usage:
//
//	err := errors.NewErrorBuilder(errors.ModuleStringx).
//		Operation("Abbreviate").
//		Message("minimum abbreviation width is 4").
//		Detail("maxWidth", maxWidth).
//		Build()
//
//	if errors.IsInvalidArgument(err) { ... }
package errors
