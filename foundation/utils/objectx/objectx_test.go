// File: objectx_test.go
// Title: Object Helper Tests
// Description: Tests for slice mapping, the Default mapper, IfNotNil and
//              DeepClone.
// Author: satish049
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

package objectx

import (
	"testing"

	"github.com/satish049/Ultimate.Utilities/foundation/core/errors"
)

type settings struct {
	Tags  []string
	Limit int
}

func (s settings) Clone() settings {
	return settings{Tags: append([]string(nil), s.Tags...), Limit: s.Limit}
}

func TestMapSliceWith(t *testing.T) {
	m := NewMapper(Options{})
	src := []account{{Login: "a", Name: "Ann"}, {Login: "b", Name: "Bob"}}

	t.Run("struct elements", func(t *testing.T) {
		got, err := MapSliceWith[account, profile](m, src)
		if err != nil {
			t.Fatalf("MapSliceWith() error = %v", err)
		}
		if len(got) != 2 || got[0].Name != "Ann" || got[1].Name != "Bob" {
			t.Errorf("got %+v", got)
		}
	})

	t.Run("pointer elements", func(t *testing.T) {
		got, err := MapSliceWith[account, *profile](m, src)
		if err != nil {
			t.Fatalf("MapSliceWith() error = %v", err)
		}
		if len(got) != 2 || got[0] == nil || got[1].Name != "Bob" {
			t.Errorf("got %+v", got)
		}
		if got[0] == got[1] {
			t.Error("each element needs its own allocation")
		}
	})

	t.Run("nil pointer inputs", func(t *testing.T) {
		got, err := MapSliceWith[*account, profile](m, []*account{nil, {Name: "Cy"}})
		if err != nil {
			t.Fatalf("MapSliceWith() error = %v", err)
		}
		if got[0] != (profile{}) || got[1].Name != "Cy" {
			t.Errorf("got %+v", got)
		}
	})

	t.Run("nil slice", func(t *testing.T) {
		got, err := MapSliceWith[account, profile](m, nil)
		if err != nil || got != nil {
			t.Errorf("got %v, %v; want nil, nil", got, err)
		}
	})

	t.Run("empty slice", func(t *testing.T) {
		got, err := MapSliceWith[account, profile](m, []account{})
		if err != nil || got == nil || len(got) != 0 {
			t.Errorf("got %#v, %v; want empty", got, err)
		}
	})

	t.Run("non-struct output", func(t *testing.T) {
		_, err := MapSliceWith[account, string](m, src)
		if !errors.IsTypeMismatch(err) {
			t.Errorf("expected type mismatch, got %v", err)
		}
	})
}

func TestDefaultMapper(t *testing.T) {
	var dst profile
	if err := Map(account{Name: "Dee"}, &dst); err != nil {
		t.Fatal(err)
	}
	if dst.Name != "Dee" {
		t.Errorf("Name = %q", dst.Name)
	}

	got, err := MapSlice[account, profile]([]account{{Name: "Eve"}})
	if err != nil || len(got) != 1 || got[0].Name != "Eve" {
		t.Errorf("MapSlice() = %+v, %v", got, err)
	}
	if Default.Stats().Entries == 0 {
		t.Error("Default should have cached the plan")
	}
}

func TestIfNotNil(t *testing.T) {
	name := func(a *account) string { return a.Name }

	if got := IfNotNil(&account{Name: "Fay"}, name); got != "Fay" {
		t.Errorf("IfNotNil = %q", got)
	}
	if got := IfNotNil(nil, name); got != "" {
		t.Errorf("IfNotNil(nil) = %q", got)
	}
}

func TestDeepClone(t *testing.T) {
	src := settings{Tags: []string{"a"}, Limit: 3}
	dst := DeepClone(src)

	dst.Tags[0] = "changed"
	if src.Tags[0] != "a" {
		t.Error("DeepClone shares the Tags backing array")
	}
	if dst.Limit != 3 {
		t.Errorf("Limit = %d", dst.Limit)
	}
}
