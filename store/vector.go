// File: store/vector.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package store

import (
	"github.com/momentics/hioload-ring/api"
)

// Vector is a growable backing store: it starts with nothing
// materialized and grows one Append at a time until the ring's
// capacity is reached. The growable-list configuration.
type Vector[T any] struct {
	data []T
}

// Ensure compile-time interface compliance.
var (
	_ api.AppendStore[any] = (*Vector[any])(nil)
	_ api.CloneStore[any]  = (*Vector[any])(nil)
)

// NewVector returns an empty Vector store.
func NewVector[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewVectorCap returns an empty Vector store with room reserved for n
// slots, so growth up to n never reallocates.
func NewVectorCap[T any](n int) *Vector[T] {
	return &Vector[T]{data: make([]T, 0, n)}
}

// Len reports the number of materialized slots.
func (s *Vector[T]) Len() int { return len(s.data) }

// At returns the element at offset i.
func (s *Vector[T]) At(i int) T { return s.data[i] }

// Set overwrites the element at offset i.
func (s *Vector[T]) Set(i int, v T) { s.data[i] = v }

// Append materializes one more slot holding v.
func (s *Vector[T]) Append(v T) { s.data = append(s.data, v) }

// Clone deep-copies the materialized slots.
func (s *Vector[T]) Clone() api.Store[T] {
	dup := make([]T, len(s.data), cap(s.data))
	copy(dup, s.data)
	return &Vector[T]{data: dup}
}
