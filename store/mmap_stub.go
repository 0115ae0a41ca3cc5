//go:build !linux

// File: store/mmap_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Portable fallback for the mmap-backed store: same surface, heap
// allocation instead of an mmap region.

package store

import (
	"unsafe"

	"github.com/momentics/hioload-ring/api"
)

// Mmap is the portable stand-in for the Linux mmap store. Slots live
// on the Go heap; Release just drops them.
type Mmap[T any] struct {
	data []T
}

// Ensure compile-time interface compliance.
var _ api.CloneStore[int] = (*Mmap[int])(nil)

// NewMmap allocates n zero-valued slots.
func NewMmap[T any](n int) (*Mmap[T], error) {
	if n <= 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "store: mmap slot count must be positive").
			WithContext("n", n)
	}
	// Same surface as the Linux implementation, including its layout
	// restriction, so tests behave identically on every platform.
	if unsafe.Sizeof(*new(T)) == 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "store: zero-sized element type")
	}
	return &Mmap[T]{data: make([]T, n)}, nil
}

// Len reports the number of slots; zero after Release.
func (s *Mmap[T]) Len() int { return len(s.data) }

// At returns the element at offset i.
func (s *Mmap[T]) At(i int) T { return s.data[i] }

// Set overwrites the element at offset i.
func (s *Mmap[T]) Set(i int, v T) { s.data[i] = v }

// Clone deep-copies the slots into a Slice store.
func (s *Mmap[T]) Clone() api.Store[T] {
	dup := make([]T, len(s.data))
	copy(dup, s.data)
	return WrapSlice(dup)
}

// Release drops the slots.
func (s *Mmap[T]) Release() error {
	if s.data == nil {
		return api.ErrStoreReleased
	}
	s.data = nil
	return nil
}
