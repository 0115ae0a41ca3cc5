// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// property_ring_test.go — Property-based tests for ring.Buffer.
package tests

import (
	"math/rand"
	"testing"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/ring"
	"github.com/momentics/hioload-ring/store"
)

// TestBufferPropertyBased performs randomized push/pop/reset sequences
// against a plain slice model and checks the FIFO and capacity
// invariants after every operation.
func TestBufferPropertyBased(t *testing.T) {
	configs := map[string]func(capacity int) api.Store[int]{
		"slice":  func(c int) api.Store[int] { return store.NewSlice[int](c) },
		"vector": func(c int) api.Store[int] { return store.NewVector[int]() },
		"list":   func(c int) api.Store[int] { return store.NewList[int]() },
	}

	for name, mk := range configs {
		t.Run(name, func(t *testing.T) {
			for seed := int64(0); seed < 10; seed++ {
				rng := rand.New(rand.NewSource(seed))
				for _, capacity := range []int{1, 2, 7, 64} {
					buf, err := ring.New[int](capacity, mk(capacity))
					if err != nil {
						t.Fatal(err)
					}
					model := make([]int, 0, capacity)

					for i := 0; i < 5000; i++ {
						switch op := rng.Intn(10); {
						case op < 6: // push
							v := rng.Intn(100000)
							buf.Push(v)
							model = append(model, v)
							if len(model) > capacity {
								model = model[1:] // oldest evicted
							}
						case op < 9: // pop
							got, ok := buf.Dequeue()
							if len(model) == 0 {
								if ok {
									t.Fatalf("dequeue on empty returned %d", got)
								}
							} else {
								if !ok || got != model[0] {
									t.Fatalf("dequeue: %d (ok=%v), model front %d", got, ok, model[0])
								}
								model = model[1:]
							}
						default: // reset
							buf.Reset()
							model = model[:0]
						}

						if buf.Size() != len(model) {
							t.Fatalf("size %d, model %d", buf.Size(), len(model))
						}
						if buf.Size() > buf.Capacity() {
							t.Fatalf("size %d exceeds capacity %d", buf.Size(), buf.Capacity())
						}
						if buf.Empty() != (len(model) == 0) || buf.Full() != (len(model) == capacity) {
							t.Fatal("empty/full observers disagree with model")
						}
						if len(model) > 0 {
							if v, _ := buf.Peek(); v != model[0] {
								t.Fatalf("front %d, model front %d", v, model[0])
							}
						} else if buf.Front() != buf.Nil() {
							t.Fatal("front cursor valid on empty buffer")
						}
					}
				}
			}
		})
	}
}

// TestClonePropertyBased interleaves clones into a random workload and
// verifies clones evolve independently of their source.
func TestClonePropertyBased(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	buf, err := ring.New[int](16, store.NewVector[int]())
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 200; i++ {
		buf.Push(rng.Intn(1000))
		if rng.Intn(4) != 0 {
			continue
		}
		snap, err := buf.Clone()
		if err != nil {
			t.Fatal(err)
		}
		want, wantOK := buf.Peek()
		wantSize := buf.Size()

		for j := 0; j < 10; j++ { // churn the source
			buf.Push(rng.Intn(1000))
		}
		got, gotOK := snap.Peek()
		if gotOK != wantOK || got != want || snap.Size() != wantSize {
			t.Fatalf("clone drifted: front %d/%v size %d, want %d/%v size %d",
				got, gotOK, snap.Size(), want, wantOK, wantSize)
		}
	}
}
