// Package api
// Author: momentics@gmail.com
//
// FIFO ring contract shared across the library.

package api

// Ring is a bounded FIFO contract.
type Ring[T any] interface {
	// Enqueue adds an item, returns false if the item was rejected.
	Enqueue(item T) bool
	// Dequeue removes the oldest item, returns false if empty.
	Dequeue() (T, bool)
	// Len returns current number of items.
	Len() int
	// Cap returns buffer capacity.
	Cap() int
}
