// File: ring/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-capacity FIFO ring buffer over a pluggable backing store.
//
// Not thread-safe: callers sharing a buffer across goroutines must wrap
// every call, including cursor reads, in their own mutual exclusion.

package ring

import (
	"github.com/momentics/hioload-ring/api"
)

// emptyFront marks the empty state: no live element to point at.
const emptyFront = -1

// Buffer adapts any api.Store into a FIFO ring of fixed logical capacity.
//
// While the store is still shorter than the capacity and supports Append,
// pushes grow it by appending; once the store is fully materialized,
// pushes wrap around and overwrite the oldest element on overflow.
//
// Cursors are integer offsets into the store's position space rather
// than references into its memory, so they survive store reallocation
// and carry over to clones unchanged.
type Buffer[T any] struct {
	store    api.Store[T]
	capacity int

	front int // offset of oldest live element, emptyFront when empty
	back  int // offset of the next free slot; equals store.Len() mid-growth
	count int // live elements, 0..capacity
}

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*Buffer[any])(nil)

// New validates the store against the requested capacity and returns an
// empty buffer. The store must either already hold capacity slots or be
// able to append its way there; anything else is rejected up front
// rather than misbehaving on a later push.
func New[T any](capacity int, st api.Store[T]) (*Buffer[T], error) {
	if capacity <= 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "ring: capacity must be positive").
			WithContext("capacity", capacity)
	}
	if st == nil {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "ring: nil store")
	}
	if st.Len() > capacity {
		return nil, api.NewError(api.ErrCodeStoreMismatch, "ring: store longer than capacity").
			WithContext("capacity", capacity).
			WithContext("store_len", st.Len())
	}
	if st.Len() < capacity {
		if _, ok := st.(api.AppendStore[T]); !ok {
			return nil, api.NewError(api.ErrCodeStoreMismatch, "ring: store shorter than capacity and not appendable").
				WithContext("capacity", capacity).
				WithContext("store_len", st.Len())
		}
	}
	b := &Buffer[T]{store: st, capacity: capacity}
	b.Reset()
	return b, nil
}

// Must unwraps a (buffer, error) pair, panicking on error. For tests and
// call sites constructing from compile-time-known arguments.
func Must[T any](b *Buffer[T], err error) *Buffer[T] {
	if err != nil {
		panic(err)
	}
	return b
}

// Front returns the cursor of the oldest live element, the one PopFront
// would drop. Returns Nil() on an empty buffer; safe to call in any state.
func (b *Buffer[T]) Front() Cursor {
	if b.count == 0 {
		return b.Nil()
	}
	return Cursor{index: b.front, valid: true}
}

// Back returns the cursor of the next free slot, one past the newest
// live element. Returns Nil() when the buffer is full.
//
// The in-place write protocol: check Full(), write through the store at
// Back().Index(), then commit with AdvanceBack(). On a still-growing
// store the back slot may not be materialized yet; At reports false for
// it and AdvanceBack materializes it with a zero value.
func (b *Buffer[T]) Back() Cursor {
	if b.count == b.capacity {
		return b.Nil()
	}
	return Cursor{index: b.back, valid: true}
}

// Nil returns the distinguished invalid cursor. Compare against the
// return values of Front and Back.
func (b *Buffer[T]) Nil() Cursor {
	return Cursor{}
}

// Push inserts v as the newest element. It never fails: while the store
// is still growing the value is appended; once the store is fully
// materialized and the buffer is full, the oldest element is evicted
// first and its slot overwritten by assignment.
func (b *Buffer[T]) Push(v T) {
	if n := b.store.Len(); n < b.capacity {
		b.store.(api.AppendStore[T]).Append(v)
		if b.count == 0 {
			// Oldest live element is the one just appended, not slot 0:
			// earlier slots may hold retired values from before a Reset.
			b.front = n
		}
		b.back = b.store.Len()
		if b.back == b.capacity {
			b.back = 0
		}
		b.count++
		return
	}
	if b.count == b.capacity {
		b.AdvanceFront()
	}
	b.store.Set(b.back, v)
	b.AdvanceBack()
}

// AdvanceFront drops the oldest element without reading it. Read it
// first via Front or Peek if needed. Panics on an empty buffer: that is
// a caller bug, not a runtime condition.
func (b *Buffer[T]) AdvanceFront() {
	if b.count == 0 {
		panic("ring: advance front on empty buffer")
	}
	b.count--
	if b.count == 0 {
		b.front = emptyFront
		b.back = b.resetBack()
		return
	}
	b.front++
	if b.front >= b.store.Len() {
		b.front = 0
	}
}

// PopFront is the same as AdvanceFront.
func (b *Buffer[T]) PopFront() {
	b.AdvanceFront()
}

// AdvanceBack commits the slot at Back() as newly live, an "empty push"
// for use after writing in place through the store. Panics on a full
// buffer. If the back slot is not materialized yet (still-growing
// store), a zero-valued slot is appended first.
func (b *Buffer[T]) AdvanceBack() {
	if b.count == b.capacity {
		panic("ring: advance back on full buffer")
	}
	if b.back == b.store.Len() {
		var zero T
		b.store.(api.AppendStore[T]).Append(zero)
	}
	if b.front == emptyFront {
		b.front = b.back
	}
	b.back++
	if b.back >= b.store.Len() && b.store.Len() == b.capacity {
		b.back = 0
	}
	b.count++
}

// Peek returns the oldest live element without removing it.
func (b *Buffer[T]) Peek() (T, bool) {
	if b.count == 0 {
		var zero T
		return zero, false
	}
	return b.store.At(b.front), true
}

// At reads the element a cursor addresses. Reports false for Nil() and
// for cursors addressing slots the store has not materialized.
func (b *Buffer[T]) At(c Cursor) (T, bool) {
	if !c.valid || c.index >= b.store.Len() {
		var zero T
		return zero, false
	}
	return b.store.At(c.index), true
}

// Size returns the number of live elements.
func (b *Buffer[T]) Size() int {
	return b.count
}

// Capacity returns the fixed logical capacity.
func (b *Buffer[T]) Capacity() int {
	return b.capacity
}

// Empty reports whether no live elements remain.
func (b *Buffer[T]) Empty() bool {
	return b.count == 0
}

// Full reports whether the buffer holds capacity live elements.
func (b *Buffer[T]) Full() bool {
	return b.count == b.capacity
}

// Reset logically empties the buffer. Stored element values are not
// destroyed or zeroed; retired values remain in the store until a later
// push overwrites them. The store's physical size is retained.
func (b *Buffer[T]) Reset() {
	b.front = emptyFront
	b.back = b.resetBack()
	b.count = 0
}

// Fill resets the buffer and pushes v exactly capacity times, leaving a
// full buffer of identical values.
func (b *Buffer[T]) Fill(v T) {
	b.Reset()
	for i := 0; i < b.capacity; i++ {
		b.Push(v)
	}
}

// Store exposes the backing store for direct access, e.g. in-place
// writes at Back(). Mutating it bypasses the ring's bookkeeping.
func (b *Buffer[T]) Store() api.Store[T] {
	return b.store
}

// Clone deep-copies the buffer via the store's CloneStore capability.
// Cursor offsets are position-space values, not references into the
// source store, so they carry over unchanged; the empty sentinel
// likewise. Returns api.ErrNotSupported if the store cannot clone.
func (b *Buffer[T]) Clone() (*Buffer[T], error) {
	cl, ok := b.store.(api.CloneStore[T])
	if !ok {
		return nil, api.ErrNotSupported
	}
	return &Buffer[T]{
		store:    cl.Clone(),
		capacity: b.capacity,
		front:    b.front,
		back:     b.back,
		count:    b.count,
	}, nil
}

// Enqueue implements api.Ring. It never rejects: a full buffer evicts
// its oldest element to make room.
func (b *Buffer[T]) Enqueue(item T) bool {
	b.Push(item)
	return true
}

// Dequeue implements api.Ring, removing and returning the oldest element.
func (b *Buffer[T]) Dequeue() (T, bool) {
	v, ok := b.Peek()
	if !ok {
		return v, false
	}
	b.AdvanceFront()
	return v, true
}

// Len implements api.Ring; same as Size.
func (b *Buffer[T]) Len() int {
	return b.count
}

// Cap implements api.Ring; same as Capacity.
func (b *Buffer[T]) Cap() int {
	return b.capacity
}

// resetBack computes the free-slot offset for the empty state: the
// append slot while the store is still growing, slot 0 once the store
// is fully materialized.
func (b *Buffer[T]) resetBack() int {
	if n := b.store.Len(); n < b.capacity {
		return n
	}
	return 0
}
