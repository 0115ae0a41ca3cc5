// Package store
// Author: momentics <momentics@gmail.com>
//
// Backing store implementations for ring.Buffer: a fixed slice, a
// growable vector, a linked list, and an mmap-backed off-heap slab.
// All of them satisfy api.Store; growth and deep-copy are optional
// capabilities declared per type. See slice.go, vector.go, list.go,
// mmap_linux.go for implementation details.
package store
