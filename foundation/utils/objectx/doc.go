// Package objectx copies field values between struct types.
//
// Package: objectx
// Title: Object to Object Mapping
// Description: A reflection based property mapper with a per type pair plan
//              cache, explicit field tables, and small helpers for nil
//              guarded evaluation and deep cloning.
// Author: satish049
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation
//
// # Mapping
//
// A field of the source is copied to a field of the destination when both
// are exported, their names are equal ignoring case and their types are
// identical:
//
//	type UserRecord struct { ID int; Name string; Hash []byte }
//	type UserView struct { Id int; Name string }
//
//	var view UserView
//	err := objectx.Map(&record, &view) // copies ID and Name
//
// Fields promoted from embedded struct values take part. Fields reached
// through embedded pointers are skipped.
//
// # Caching
//
// The first Map for a (source type, destination type) pair computes the
// field plan; later calls reuse it. Stats reports hits, misses and the
// number of cached plans. Register installs a FieldTable for a pair, which
// is used instead of the reflected plan:
//
//	table := objectx.NewFieldTable().WithCommonFields().Field("Login", "UserName")
//	err := mapper.Register(Account{}, Profile{}, table)
//
// # Thread Safety
//
// A Mapper may be shared between goroutines. Plans are read under an
// RWMutex and counters are atomic.
package objectx
