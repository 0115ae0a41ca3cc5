// File: api/pool.go
// Author: momentics <momentics@gmail.com>
//
// Abstract pooling APIs for ring buffer and element reuse.

package api

// ObjectPool provides generic pooling of objects allocated transiently.
type ObjectPool[T any] interface {
	// Get returns an available instance from the pool.
	Get() T

	// Put returns an instance for reuse.
	Put(obj T)
}
