// File: error_integration_test.go
// Title: Error Handling Integration Tests
// Description: Checks that errors from every utility package carry the
//              standard module, code and severity information.
// Author: satish049
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of error integration tests
// - 2025-10-19 v0.2.0: Errors produced by real calls into each package

package integration

import (
	"encoding/json"
	"io"
	"testing"

	ulterror "github.com/satish049/Ultimate.Utilities/foundation/core/error"
	"github.com/satish049/Ultimate.Utilities/foundation/core/errors"
	"github.com/satish049/Ultimate.Utilities/foundation/utils/hashx"
	"github.com/satish049/Ultimate.Utilities/foundation/utils/objectx"
	"github.com/satish049/Ultimate.Utilities/foundation/utils/slicex"
	"github.com/satish049/Ultimate.Utilities/foundation/utils/stringx"
)

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) { return 0, io.ErrClosedPipe }

type moduleError struct {
	name     string
	errFunc  func() error
	module   string
	code     ulterror.Code
	severity ulterror.Severity
}

func moduleErrors() []moduleError {
	return []moduleError{
		{
			name: "stringx abbreviate width",
			errFunc: func() error {
				_, err := stringx.Abbreviate("abcdefg", 3)
				return err
			},
			module:   errors.ModuleStringx,
			code:     ulterror.CodeInvalidArgument,
			severity: ulterror.SeverityLow,
		},
		{
			name: "stringx invalid pattern",
			errFunc: func() error {
				_, err := stringx.ReplacePattern("abc", "[", "", false)
				return err
			},
			module:   errors.ModuleStringx,
			code:     ulterror.CodeInvalidFormat,
			severity: ulterror.SeverityLow,
		},
		{
			name: "slicex insert out of range",
			errFunc: func() error {
				_, err := slicex.InsertAllAt([]int{1}, 5, []int{2}, true)
				return err
			},
			module:   errors.ModuleSlicex,
			code:     ulterror.CodeValueOutOfRange,
			severity: ulterror.SeverityLow,
		},
		{
			name: "objectx destination not a pointer",
			errFunc: func() error {
				return objectx.Map(struct{ A int }{1}, struct{ A int }{})
			},
			module:   errors.ModuleObjectx,
			code:     ulterror.CodeInvalidArgument,
			severity: ulterror.SeverityLow,
		},
		{
			name: "objectx source type",
			errFunc: func() error {
				var dst struct{ A int }
				return objectx.Map("text", &dst)
			},
			module:   errors.ModuleObjectx,
			code:     ulterror.CodeTypeMismatch,
			severity: ulterror.SeverityLow,
		},
		{
			name: "hashx read failure",
			errFunc: func() error {
				_, err := hashx.MD5Reader(brokenReader{})
				return err
			},
			module:   errors.ModuleHashx,
			code:     ulterror.CodeInternal,
			severity: ulterror.SeverityHigh,
		},
	}
}

// TestStandardizedErrorFormats verifies all modules use consistent error formats
func TestStandardizedErrorFormats(t *testing.T) {
	for _, tc := range moduleErrors() {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.errFunc()

			e, ok := err.(*ulterror.Error)
			if !ok {
				t.Fatalf("error should be *ulterror.Error, got %T", err)
			}
			if got := errors.ModuleOf(err); got != tc.module {
				t.Errorf("module = %q, want %q", got, tc.module)
			}
			if e.Code() != tc.code {
				t.Errorf("code = %v, want %v", e.Code(), tc.code)
			}
			if e.Severity() != tc.severity {
				t.Errorf("severity = %v, want %v", e.Severity(), tc.severity)
			}
			if e.Operation() == "" {
				t.Error("error should name the failing operation")
			}
		})
	}
}

// TestErrorJSON verifies every module error serializes with its code
func TestErrorJSON(t *testing.T) {
	for _, tc := range moduleErrors() {
		t.Run(tc.name, func(t *testing.T) {
			data, err := json.Marshal(tc.errFunc())
			if err != nil {
				t.Fatalf("json.Marshal() error = %v", err)
			}

			var decoded map[string]interface{}
			if err := json.Unmarshal(data, &decoded); err != nil {
				t.Fatalf("invalid JSON %s: %v", data, err)
			}
			if decoded["code"] != string(tc.code) {
				t.Errorf("code = %v, want %v in %s", decoded["code"], tc.code, data)
			}
		})
	}
}

// TestErrorWrappingAcrossModules verifies codes survive wrapping
func TestErrorWrappingAcrossModules(t *testing.T) {
	_, inner := stringx.Abbreviate("abcdef", 2)
	outer := ulterror.Wrap(inner, "rendering column failed").WithOperation("report.render")

	if !ulterror.HasCode(outer, ulterror.CodeInvalidArgument) {
		t.Error("code of the wrapped stringx error should be visible through the wrapper")
	}
	if !errors.IsInvalidArgument(outer) {
		t.Error("IsInvalidArgument should see through the wrapper")
	}
	if outer.RootCause() != inner {
		t.Error("RootCause should return the stringx error")
	}
}
