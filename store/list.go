// File: store/list.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package store

import (
	"container/list"

	"github.com/momentics/hioload-ring/api"
)

// List is a linked-list backing store. Element addresses are stable
// across growth, at the price of O(n) positional access; a cached
// element pointer makes the ring's sequential cursor movement O(1)
// in the common case. The linked-list configuration.
type List[T any] struct {
	l *list.List

	// last positional lookup, reused when the next one is adjacent
	cachedIdx  int
	cachedElem *list.Element
}

// Ensure compile-time interface compliance.
var (
	_ api.AppendStore[any] = (*List[any])(nil)
	_ api.CloneStore[any]  = (*List[any])(nil)
)

// NewList returns an empty List store.
func NewList[T any]() *List[T] {
	return &List[T]{l: list.New()}
}

// Len reports the number of materialized slots.
func (s *List[T]) Len() int { return s.l.Len() }

// At returns the element at offset i.
func (s *List[T]) At(i int) T {
	return s.elem(i).Value.(T)
}

// Set overwrites the element at offset i.
func (s *List[T]) Set(i int, v T) {
	s.elem(i).Value = v
}

// Append materializes one more slot holding v.
func (s *List[T]) Append(v T) {
	e := s.l.PushBack(v)
	s.cachedIdx = s.l.Len() - 1
	s.cachedElem = e
}

// Clone deep-copies the materialized slots.
func (s *List[T]) Clone() api.Store[T] {
	dup := NewList[T]()
	for e := s.l.Front(); e != nil; e = e.Next() {
		dup.l.PushBack(e.Value)
	}
	return dup
}

func (s *List[T]) elem(i int) *list.Element {
	switch {
	case s.cachedElem != nil && i == s.cachedIdx:
		return s.cachedElem
	case s.cachedElem != nil && i == s.cachedIdx+1 && s.cachedElem.Next() != nil:
		s.cachedIdx = i
		s.cachedElem = s.cachedElem.Next()
		return s.cachedElem
	}
	e := s.l.Front()
	for n := i; n > 0; n-- {
		e = e.Next()
	}
	s.cachedIdx = i
	s.cachedElem = e
	return e
}
