// File: mapper.go
// Title: Object Property Mapper
// Description: Copies the values of common fields from one struct to
//              another. The field plan for each (source type, destination
//              type) pair is computed once by reflection and cached, or
//              registered explicitly through a FieldTable.
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
	"strings"
	"sync"
	"sync/atomic"

	"github.com/satish049/Ultimate.Utilities/foundation/core/errors"
	"github.com/satish049/Ultimate.Utilities/foundation/core/log"
)

// pairKey identifies a cached plan. Keys use the types themselves, so two
// types with the same name in different packages never share a plan.
type pairKey struct {
	src reflect.Type
	dst reflect.Type
}

// fieldPair is one assignment: dst field at dst index path gets the value
// of the src field at src index path.
type fieldPair struct {
	name string
	src  []int
	dst  []int
}

// Stats reports cache activity of a Mapper.
type Stats struct {
	Hits    uint64
	Misses  uint64
	Entries int
}

// Options configures NewMapper.
type Options struct {
	// Logger receives debug entries when plans are built or registered.
	// Nil means no logging.
	Logger *log.Logger
}

// Mapper copies common fields between structs. It is safe for concurrent use.
type Mapper struct {
	plans  map[pairKey][]fieldPair
	mutex  sync.RWMutex
	logger *log.Logger

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewMapper returns an empty Mapper.
func NewMapper(opts Options) *Mapper {
	if opts.Logger == nil {
		opts.Logger = log.Nop()
	}
	return &Mapper{
		plans:  make(map[pairKey][]fieldPair),
		logger: opts.Logger,
	}
}

// Map copies every common field of src into dst. Fields are common when
// both are exported, their names match ignoring case and their types are
// identical. Fields promoted from embedded structs take part; fields
// behind embedded pointers do not.
//
// dst must be a non-nil pointer to a struct. src may be a struct or a
// pointer to one; a nil src leaves dst untouched.
func (m *Mapper) Map(src, dst any) error {
	dv := reflect.ValueOf(dst)
	if dv.Kind() != reflect.Pointer || dv.IsNil() || dv.Elem().Kind() != reflect.Struct {
		return errors.InvalidArgument(errors.ModuleObjectx, "Map", "destination must be a non-nil pointer to a struct")
	}

	sv, ok := structValue(src)
	if !ok {
		if src == nil || isNilPointer(src) {
			return nil
		}
		return errors.TypeMismatch(errors.ModuleObjectx, "Map", reflect.TypeOf(src), "struct")
	}

	m.apply(m.plan(sv.Type(), dv.Elem().Type()), sv, dv.Elem())
	return nil
}

// Register stores an explicit plan for the (src, dst) type pair, replacing
// the reflected one. src and dst are sample values, usually zero structs
// or typed nil pointers.
func (m *Mapper) Register(src, dst any, table *FieldTable) error {
	st, ok1 := structType(src)
	dt, ok2 := structType(dst)
	if !ok1 || !ok2 {
		return errors.InvalidArgument(errors.ModuleObjectx, "Register", "source and destination must be structs or pointers to structs")
	}
	if table == nil {
		return errors.InvalidArgument(errors.ModuleObjectx, "Register", "field table is nil")
	}

	plan, err := table.resolve(st, dt)
	if err != nil {
		return err
	}

	m.mutex.Lock()
	m.plans[pairKey{st, dt}] = plan
	m.mutex.Unlock()

	m.logger.Debug("field table registered", log.Fields{
		"source":      st.String(),
		"destination": dt.String(),
		"fieldCount":  len(plan),
	})
	return nil
}

// Stats returns a snapshot of cache counters.
func (m *Mapper) Stats() Stats {
	m.mutex.RLock()
	entries := len(m.plans)
	m.mutex.RUnlock()

	return Stats{
		Hits:    m.hits.Load(),
		Misses:  m.misses.Load(),
		Entries: entries,
	}
}

// Reset drops every cached and registered plan and zeroes the counters.
func (m *Mapper) Reset() {
	m.mutex.Lock()
	m.plans = make(map[pairKey][]fieldPair)
	m.mutex.Unlock()
	m.hits.Store(0)
	m.misses.Store(0)
}

func (m *Mapper) plan(src, dst reflect.Type) []fieldPair {
	key := pairKey{src, dst}

	m.mutex.RLock()
	plan, ok := m.plans[key]
	m.mutex.RUnlock()
	if ok {
		m.hits.Add(1)
		return plan
	}

	m.misses.Add(1)
	plan = commonFields(src, dst)

	m.mutex.Lock()
	if existing, ok := m.plans[key]; ok {
		plan = existing
	} else {
		m.plans[key] = plan
	}
	m.mutex.Unlock()

	m.logger.Debug("field plan built", log.Fields{
		"source":      src.String(),
		"destination": dst.String(),
		"fieldCount":  len(plan),
	})
	return plan
}

func (m *Mapper) apply(plan []fieldPair, src, dst reflect.Value) {
	for _, p := range plan {
		dst.FieldByIndex(p.dst).Set(src.FieldByIndex(p.src))
	}
}

// commonFields pairs the exported fields of src and dst by case-insensitive
// name and identical type. When several destination fields share a folded
// name, the first visible one wins.
func commonFields(src, dst reflect.Type) []fieldPair {
	dstFields := make(map[string]reflect.StructField)
	for _, f := range mappableFields(dst) {
		name := strings.ToLower(f.Name)
		if _, taken := dstFields[name]; !taken {
			dstFields[name] = f
		}
	}

	plan := make([]fieldPair, 0)
	for _, sf := range mappableFields(src) {
		df, ok := dstFields[strings.ToLower(sf.Name)]
		if !ok || df.Type != sf.Type {
			continue
		}
		plan = append(plan, fieldPair{name: sf.Name, src: sf.Index, dst: df.Index})
	}
	return plan
}

// mappableFields lists exported, non-embedded fields of t, including those
// promoted through embedded struct values.
func mappableFields(t reflect.Type) []reflect.StructField {
	var fields []reflect.StructField
	for _, f := range reflect.VisibleFields(t) {
		if f.Anonymous || !f.IsExported() || !directPath(t, f.Index) {
			continue
		}
		fields = append(fields, f)
	}
	return fields
}

// directPath reports whether every step of index before the last is an
// embedded struct value rather than a pointer.
func directPath(t reflect.Type, index []int) bool {
	for _, i := range index[:len(index)-1] {
		t = t.Field(i).Type
		if t.Kind() != reflect.Struct {
			return false
		}
	}
	return true
}

func structValue(v any) (reflect.Value, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}
	return rv, true
}

func structType(v any) (reflect.Type, bool) {
	t := reflect.TypeOf(v)
	if t == nil {
		return nil, false
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t, t.Kind() == reflect.Struct
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
