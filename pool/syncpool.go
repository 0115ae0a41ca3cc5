// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package pool

import (
	"sync"

	"github.com/momentics/hioload-ring/api"
)

// SyncPool wraps sync.Pool for generic usage, pooling transient element
// payloads (e.g. slices written in place at Back()).
type SyncPool[T any] struct {
	pool *sync.Pool
}

// Ensure compile-time interface compliance.
var _ api.ObjectPool[any] = (*SyncPool[any])(nil)

// NewSyncPool creates a new SyncPool with a creator function.
func NewSyncPool[T any](creator func() T) *SyncPool[T] {
	return &SyncPool[T]{
		pool: &sync.Pool{New: func() any { return creator() }},
	}
}

// Get returns an available instance from the pool.
func (sp *SyncPool[T]) Get() T {
	return sp.pool.Get().(T)
}

// Put returns an instance for reuse.
func (sp *SyncPool[T]) Put(obj T) {
	sp.pool.Put(obj)
}
