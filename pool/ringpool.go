// File: pool/ringpool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"sync"
	"sync/atomic"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-ring/ring"
)

// RingPool recycles ring buffers between producers that would otherwise
// allocate a fresh buffer and backing store per burst. Idle buffers sit
// on an unbounded FIFO free list; Get falls back to the factory when
// the list is empty. Buffers are reset on Put, so retired element
// values may linger in their stores until overwritten.
//
// Unlike the buffers it hands out, the pool itself is shared state and
// is safe for concurrent Get/Put.
type RingPool[T any] struct {
	mu      sync.Mutex
	free    *queue.Queue
	factory func() (*ring.Buffer[T], error)

	totalAlloc atomic.Uint64
	totalReuse atomic.Uint64
}

// Stats aggregates pool accounting.
type Stats struct {
	TotalAlloc uint64 // buffers created by the factory
	TotalReuse uint64 // Gets satisfied from the free list
	Idle       int    // buffers currently parked
}

// NewRingPool creates a pool around a buffer factory.
func NewRingPool[T any](factory func() (*ring.Buffer[T], error)) *RingPool[T] {
	return &RingPool[T]{
		free:    queue.New(),
		factory: factory,
	}
}

// Get returns an empty buffer, reusing an idle one when available.
func (p *RingPool[T]) Get() (*ring.Buffer[T], error) {
	p.mu.Lock()
	if p.free.Length() > 0 {
		b := p.free.Remove().(*ring.Buffer[T])
		p.mu.Unlock()
		p.totalReuse.Add(1)
		return b, nil
	}
	p.mu.Unlock()

	b, err := p.factory()
	if err != nil {
		return nil, err
	}
	p.totalAlloc.Add(1)
	return b, nil
}

// Put parks a buffer on the free list for reuse. The buffer must not
// be used by the caller afterwards.
func (p *RingPool[T]) Put(b *ring.Buffer[T]) {
	if b == nil {
		return
	}
	b.Reset()
	p.mu.Lock()
	p.free.Add(b)
	p.mu.Unlock()
}

// PoolStats returns a snapshot of pool accounting.
func (p *RingPool[T]) PoolStats() Stats {
	p.mu.Lock()
	idle := p.free.Length()
	p.mu.Unlock()
	return Stats{
		TotalAlloc: p.totalAlloc.Load(),
		TotalReuse: p.totalReuse.Load(),
		Idle:       idle,
	}
}
