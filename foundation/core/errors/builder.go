// File: builder.go
// Title: Module Error Builder
// Description: Fluent builder and standard constructors that every utility
//              package uses to report argument errors. Errors built here carry
//              the module and operation both as details and on the error.
// Author: satish049
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of shared error utilities
// - 2025-10-19 v0.2.0: Codes taken from the core error package

package errors

import (
	"fmt"

	ulterror "github.com/satish049/Ultimate.Utilities/foundation/core/error"
)

// Module identifiers.
const (
	ModuleStringx = "stringx"
	ModuleSlicex  = "slicex"
	ModuleObjectx = "objectx"
	ModuleHashx   = "hashx"
	ModuleConfig  = "config"
)

// ErrorBuilder builds an *ulterror.Error for one module.
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  ulterror.Severity
	code      ulterror.Code
}

// NewErrorBuilder starts an error for module.
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: ulterror.SeverityMedium,
	}
}

// Operation sets the failing operation.
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the message.
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the message with formatting.
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the wrapped error.
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds one detail.
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity overrides the severity derived from the code.
func (eb *ErrorBuilder) Severity(severity ulterror.Severity) *ErrorBuilder {
	eb.severity = severity
	return eb
}

// Code sets the code.
func (eb *ErrorBuilder) Code(code ulterror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build returns the error. Without a code, CodeInternal is used when a cause
// is set and CodeInvalidArgument otherwise. Without a message, one is
// generated from module and operation.
func (eb *ErrorBuilder) Build() *ulterror.Error {
	code := eb.code
	if code == "" {
		code = ulterror.CodeInvalidArgument
		if eb.cause != nil {
			code = ulterror.CodeInternal
		}
	}

	msg := eb.message
	if msg == "" {
		if eb.operation != "" {
			msg = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			msg = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	var err *ulterror.Error
	if eb.cause != nil {
		err = ulterror.Wrap(eb.cause, msg)
	} else {
		err = ulterror.New(msg)
	}

	err.WithCode(code).
		WithDetails(eb.details).
		WithDetail("module", eb.module)
	if eb.operation != "" {
		err.WithOperation(eb.operation).WithDetail("operation", eb.operation)
	}
	if eb.severity != ulterror.SeverityMedium {
		err.WithSeverity(eb.severity)
	}
	return err
}
