// Package api
// Author: momentics@gmail.com
//
// Lock-free bulk ring buffer contract shared across the pool's
// internal layers.

package api

// Ring is a bounded lock-free MPMC queue contract. Push and Pop are bulk
// operations: callers may offer or request more than one element at a
// time, and the queue fills in as many as it can without blocking.
type Ring[T any] interface {
	// Push attempts to enqueue up to len(items) elements as a single
	// atomically-visible group. Returns the number actually enqueued;
	// zero means the queue was full at the time of the attempt.
	Push(items []T) int

	// Pop attempts to dequeue up to len(out) elements into out. Returns
	// the number actually dequeued; zero means the queue was empty.
	Pop(out []T) int

	// Empty reports whether the queue currently holds no readable items.
	// The result is an approximation under concurrent access.
	Empty() bool

	// Full reports whether the queue currently has no writable slots.
	Full() bool

	// Size returns the current number of readable items.
	Size() int

	// Capacity returns the fixed number of slots the queue was built with.
	Capacity() int
}
