// File: error_test.go
// Title: Error Type Tests
// Description: Tests for error creation, wrapping, codes, severity and
//              serialization.
// Author: satish049
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2025-10-19 v0.2.0: Adjusted to the reduced error surface

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New("bad width")

	if err.Error() != "bad width" {
		t.Errorf("Error() = %q, want %q", err.Error(), "bad width")
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
	if len(err.Callers()) == 0 {
		t.Fatal("Callers() should not be empty")
	}
	if !strings.Contains(err.Callers()[0].Function, "TestNew") {
		t.Errorf("first caller = %q, want the test function", err.Callers()[0].Function)
	}
}

func TestNewf(t *testing.T) {
	err := Newf("width %d below %d", 3, 4)
	if err.Error() != "width 3 below 4" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "outer",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("inner"),
			message:  "outer",
			wantMsg:  "outer: inner",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap structured error keeps code",
			err:      New("inner").WithCode(CodeTypeMismatch),
			message:  "outer",
			wantMsg:  "outer: inner",
			wantCode: CodeTypeMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Wrap() = %v, want nil", got)
				}
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
			if got.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", got.Code(), tt.wantCode)
			}
			if !errors.Is(got, tt.err) {
				t.Error("errors.Is(wrapped, original) = false")
			}
		})
	}
}

func TestWithCodeDerivesSeverity(t *testing.T) {
	err := New("x").WithCode(CodeInvalidArgument)
	if err.Severity() != SeverityLow {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityLow)
	}

	explicit := New("x").WithSeverity(SeverityCritical).WithCode(CodeInvalidArgument)
	if explicit.Severity() != SeverityCritical {
		t.Errorf("explicit severity overwritten: %v", explicit.Severity())
	}
}

func TestDetailsAreCopied(t *testing.T) {
	err := New("x").WithDetail("a", 1).WithDetails(map[string]interface{}{"b": 2})
	d := err.Details()
	if len(d) != 2 || d["a"] != 1 || d["b"] != 2 {
		t.Fatalf("Details() = %v", d)
	}
	d["c"] = 3
	if _, ok := err.Details()["c"]; ok {
		t.Error("Details() exposed internal map")
	}
}

func TestIsMatchesByCode(t *testing.T) {
	sentinel := New("").WithCode(CodeInvalidArgument)
	err := fmt.Errorf("call failed: %w", New("width").WithCode(CodeInvalidArgument))

	if !errors.Is(err, sentinel) {
		t.Error("errors.Is() should match on code")
	}
	if errors.Is(err, New("").WithCode(CodeTypeMismatch)) {
		t.Error("errors.Is() matched a different code")
	}
	if errors.Is(New("a"), New("b")) {
		t.Error("CodeUnknown errors must not match each other")
	}
}

func TestHasCode(t *testing.T) {
	inner := New("inner").WithCode(CodeValueOutOfRange)
	outer := Wrap(inner, "outer").WithCode(CodeInternal)
	std := fmt.Errorf("std: %w", outer)

	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"direct", inner, CodeValueOutOfRange, true},
		{"outer code", outer, CodeInternal, true},
		{"inner code through chain", outer, CodeValueOutOfRange, true},
		{"through fmt wrapper", std, CodeValueOutOfRange, true},
		{"absent", inner, CodeNotFound, false},
		{"nil", nil, CodeUnknown, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasCode(tt.err, tt.code); got != tt.want {
				t.Errorf("HasCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCodeAndSeverity(t *testing.T) {
	if GetCode(errors.New("x")) != CodeUnknown {
		t.Error("GetCode(foreign) should be CodeUnknown")
	}
	if GetSeverity(errors.New("x")) != SeverityMedium {
		t.Error("GetSeverity(foreign) should be SeverityMedium")
	}
	err := New("x").WithCode(CodeInvalidConfig)
	if GetCode(err) != CodeInvalidConfig {
		t.Errorf("GetCode() = %v", GetCode(err))
	}
	if GetSeverity(err) != SeverityHigh {
		t.Errorf("GetSeverity() = %v", GetSeverity(err))
	}
}

func TestRootCause(t *testing.T) {
	root := errors.New("root")
	err := Wrap(Wrap(root, "middle"), "top")
	if err.RootCause() != root {
		t.Errorf("RootCause() = %v, want %v", err.RootCause(), root)
	}
	solo := New("solo")
	if solo.RootCause() != solo {
		t.Error("RootCause() of an unwrapped error should be itself")
	}
}

func TestString(t *testing.T) {
	err := New("bad").WithCode(CodeInvalidArgument).WithOperation("Abbreviate").
		WithDetail("b", 2).WithDetail("a", 1)
	s := err.String()
	for _, want := range []string{"Error: bad", "Code: INVALID_ARGUMENT", "Severity: low", "Operation: Abbreviate", "Details: {a=1, b=2}"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in %q", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := New("bad").WithCode(CodeTypeMismatch).WithOperation("Collate").WithDetail("type", "int")
	raw, mErr := json.Marshal(err)
	if mErr != nil {
		t.Fatalf("json.Marshal() error = %v", mErr)
	}
	var got map[string]interface{}
	if uErr := json.Unmarshal(raw, &got); uErr != nil {
		t.Fatalf("json.Unmarshal() error = %v", uErr)
	}
	if got["code"] != "TYPE_MISMATCH" || got["operation"] != "Collate" || got["severity"] != "low" {
		t.Errorf("unexpected JSON: %s", raw)
	}
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeInvalidArgument, "argument"},
		{CodeTypeMismatch, "argument"},
		{CodeMissingConfig, "configuration"},
		{CodeInternal, "generic"},
	}
	for _, tt := range tests {
		if got := tt.code.Category(); got != tt.want {
			t.Errorf("%s.Category() = %q, want %q", tt.code, got, tt.want)
		}
	}
	if Code("BOGUS").IsValid() {
		t.Error("unknown code reported valid")
	}
	if !CodeInvalidLength.IsValid() {
		t.Error("CodeInvalidLength should be valid")
	}
}

func TestSeverityString(t *testing.T) {
	tests := []struct {
		s    Severity
		want string
	}{
		{SeverityLow, "low"},
		{SeverityMedium, "medium"},
		{SeverityHigh, "high"},
		{SeverityCritical, "critical"},
		{Severity(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("Severity(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
	if SeverityMedium.ShouldAlert() || !SeverityHigh.ShouldAlert() {
		t.Error("ShouldAlert() threshold wrong")
	}
}
