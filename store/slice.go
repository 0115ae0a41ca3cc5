// File: store/slice.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package store

import (
	"github.com/momentics/hioload-ring/api"
)

// Slice is a fixed backing store over a []T: every slot is materialized
// up front, so a ring over it starts overwriting from the first
// wraparound. The array-backed configuration.
type Slice[T any] struct {
	data []T
}

// Ensure compile-time interface compliance.
var _ api.CloneStore[any] = (*Slice[any])(nil)

// NewSlice returns a Slice store with n zero-valued slots.
func NewSlice[T any](n int) *Slice[T] {
	return &Slice[T]{data: make([]T, n)}
}

// WrapSlice adapts an existing slice without copying. The caller must
// not resize it while the store is in use.
func WrapSlice[T any](data []T) *Slice[T] {
	return &Slice[T]{data: data}
}

// Len reports the number of slots.
func (s *Slice[T]) Len() int { return len(s.data) }

// At returns the element at offset i.
func (s *Slice[T]) At(i int) T { return s.data[i] }

// Set overwrites the element at offset i.
func (s *Slice[T]) Set(i int, v T) { s.data[i] = v }

// Clone deep-copies the slots.
func (s *Slice[T]) Clone() api.Store[T] {
	dup := make([]T, len(s.data))
	copy(dup, s.data)
	return &Slice[T]{data: dup}
}
