// File: fieldtable.go
// Title: Explicit Field Tables
// Description: Hand-written field correspondences for type pairs whose
//              field names differ, registered on a Mapper in place of the
//              reflected plan.
// Author: satish049
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

package objectx

import (
	"reflect"
	"slices"

	"github.com/satish049/Ultimate.Utilities/foundation/core/errors"
)

// FieldTable lists source to destination field names.
type FieldTable struct {
	pairs  [][2]string
	common bool
}

// NewFieldTable returns an empty table.
func NewFieldTable() *FieldTable {
	return &FieldTable{}
}

// Field maps the source field srcName onto the destination field dstName.
// Names are exact Go field names and may refer to promoted fields.
func (t *FieldTable) Field(srcName, dstName string) *FieldTable {
	t.pairs = append(t.pairs, [2]string{srcName, dstName})
	return t
}

// WithCommonFields starts the plan from the reflected common fields. Entries
// added with Field then override the destination fields they name.
func (t *FieldTable) WithCommonFields() *FieldTable {
	t.common = true
	return t
}

// Len returns the number of explicit entries.
func (t *FieldTable) Len() int {
	return len(t.pairs)
}

func (t *FieldTable) resolve(src, dst reflect.Type) ([]fieldPair, error) {
	var plan []fieldPair
	if t.common {
		plan = commonFields(src, dst)
	} else {
		plan = make([]fieldPair, 0, len(t.pairs))
	}

	for _, p := range t.pairs {
		sf, err := lookupField(src, p[0])
		if err != nil {
			return nil, err
		}
		df, err := lookupField(dst, p[1])
		if err != nil {
			return nil, err
		}
		if sf.Type != df.Type {
			return nil, errors.TypeMismatch(errors.ModuleObjectx, "Register", sf.Type, df.Type).
				WithDetail("source_field", sf.Name).
				WithDetail("destination_field", df.Name)
		}

		plan = slices.DeleteFunc(plan, func(fp fieldPair) bool {
			return slices.Equal(fp.dst, df.Index)
		})
		plan = append(plan, fieldPair{name: sf.Name, src: sf.Index, dst: df.Index})
	}
	return plan, nil
}

func lookupField(t reflect.Type, name string) (reflect.StructField, error) {
	f, ok := t.FieldByName(name)
	if !ok || !f.IsExported() || !directPath(t, f.Index) {
		return reflect.StructField{}, errors.NotFound(errors.ModuleObjectx, "Register", t.String()+"."+name)
	}
	return f, nil
}
