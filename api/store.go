// File: api/store.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Capability contracts for ring buffer backing stores.
//
// A store exposes a stable position space 0..Len()-1. Optional
// capabilities (growth, deep copy) are separate interfaces and are
// capability-checked at runtime via type assertion.

package api

// Store is the minimal contract a backing store must satisfy:
// enumerate elements over a stable position space, report the
// materialized size, and overwrite slots in place.
type Store[T any] interface {
	// Len reports the number of materialized slots.
	Len() int

	// At returns the element at offset i. i must be in [0, Len()).
	At(i int) T

	// Set overwrites the element at offset i by assignment.
	Set(i int, v T)
}

// AppendStore is the optional growth capability. Append materializes
// one more slot at offset Len(). The ring buffer uses it only while
// the store is shorter than the ring's logical capacity.
type AppendStore[T any] interface {
	Store[T]

	// Append adds v as a new slot, increasing Len() by one.
	Append(v T)
}

// CloneStore is the optional deep-copy capability. Clone returns a
// store with identical contents whose position space is independent
// of the source: mutating one must never be observable through the
// other.
type CloneStore[T any] interface {
	Store[T]

	// Clone deep-copies the materialized slots.
	Clone() Store[T]
}
