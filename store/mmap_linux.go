//go:build linux

// File: store/mmap_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux mmap-backed store: slots live in an anonymous page-aligned
// region outside the Go heap.

package store

import (
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-ring/api"
)

// Mmap is a fixed backing store over an anonymous mmap region. Element
// types must be pointer-free: the garbage collector never scans the
// region. Release unmaps it; the store must not be used afterwards.
type Mmap[T any] struct {
	raw  []byte
	data []T
}

// Ensure compile-time interface compliance.
var _ api.CloneStore[int] = (*Mmap[int])(nil)

// NewMmap maps an anonymous region sized for n zero-valued slots.
func NewMmap[T any](n int) (*Mmap[T], error) {
	if n <= 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "store: mmap slot count must be positive").
			WithContext("n", n)
	}
	elemSize := int(unsafe.Sizeof(*new(T)))
	if elemSize == 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "store: zero-sized element type")
	}
	raw, err := unix.Mmap(-1, 0, elemSize*n,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, err
	}
	return &Mmap[T]{
		raw:  raw,
		data: unsafe.Slice((*T)(unsafe.Pointer(&raw[0])), n),
	}, nil
}

// Len reports the number of slots; zero after Release.
func (s *Mmap[T]) Len() int { return len(s.data) }

// At returns the element at offset i.
func (s *Mmap[T]) At(i int) T { return s.data[i] }

// Set overwrites the element at offset i.
func (s *Mmap[T]) Set(i int, v T) { s.data[i] = v }

// Clone deep-copies the slots into a heap-backed Slice store: contents
// and position space carry over, the clone just does not need a
// Release of its own.
func (s *Mmap[T]) Clone() api.Store[T] {
	dup := make([]T, len(s.data))
	copy(dup, s.data)
	return WrapSlice(dup)
}

// Release unmaps the region.
func (s *Mmap[T]) Release() error {
	if s.raw == nil {
		return api.ErrStoreReleased
	}
	raw := s.raw
	s.raw = nil
	s.data = nil
	return unix.Munmap(raw)
}
