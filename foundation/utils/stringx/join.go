// File: join.go
// Title: Join
// Description: Generic joining of any element type through its string
//              form. Nil and empty elements are skipped without leaving a
//              doubled separator behind.
// Author: satish049
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

package stringx

import (
	"fmt"
	"reflect"
	"strings"
)

// Join concatenates the string forms of elems with sep in between:
//
//	Join([]int{1, 2, 3}, ";")           == "1;2;3"
//	Join([]string{"a", "", "b"}, ",")   == "a,b"
//	Join([]*T{nil, &t}, ",")            == t.String()
//
// Nil elements and elements whose string form is empty are skipped, and no
// separator is written for them. A nil or empty slice yields "".
func Join[T any](elems []T, sep string) string {
	return JoinRange(elems, sep, 0, len(elems))
}

// JoinRange joins count elements of elems starting at start. The range is
// clamped to the slice; a count of zero or less yields "".
func JoinRange[T any](elems []T, sep string, start, count int) string {
	if len(elems) == 0 || count <= 0 {
		return ""
	}
	if start < 0 {
		start = 0
	}
	if start >= len(elems) {
		return ""
	}
	end := len(elems)
	if count < end-start {
		end = start + count
	}

	var sb strings.Builder
	for _, e := range elems[start:end] {
		str, ok := stringOf(e)
		if !ok || str == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(str)
	}
	return sb.String()
}

// JoinWith joins the variadic elems with sep.
func JoinWith(sep string, elems ...any) string {
	return Join(elems, sep)
}

// stringOf returns the string form of v. ok is false for nil values,
// including typed nil pointers held in an interface.
func stringOf(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		return x, true
	case []byte:
		return string(x), x != nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return "", false
		}
	}
	return fmt.Sprint(v), true
}
