// Package queue exposes a bounded deque through single-ended queue views.
//
// Two views are provided over a *deque.Deque:
//   - FIFO: Push appends at the back, Pop removes from the front
//   - LIFO: Push appends at the back, Pop removes from the back
//
// Views share the deque's lock, so any number of goroutines may Push and Pop
// concurrently, and several views may wrap the same deque.
package queue

import "github.com/randomizedcoder/bounded-deque/internal/deque"

// Queue is a bounded, non-blocking queue.
//
// Push returns false if the queue is full, Pop returns false if it is empty.
// Neither waits.
type Queue[T any] interface {
	// Push adds an item to the queue.
	// Returns false if the queue is full.
	Push(T) bool

	// Pop removes and returns an item from the queue.
	// Returns false if the queue is empty.
	Pop() (T, bool)

	// Len returns the current number of items in the queue.
	Len() int

	// Cap returns the capacity of the queue.
	Cap() int
}

// Ensure compile-time interface compliance.
var (
	_ Queue[any] = (*FIFO[any])(nil)
	_ Queue[any] = (*LIFO[any])(nil)
)

// FIFO is a first-in first-out view of a deque.
type FIFO[T any] struct {
	d *deque.Deque[T]
}

// NewFIFO returns a FIFO view of d. d must be initialized before use.
func NewFIFO[T any](d *deque.Deque[T]) *FIFO[T] {
	return &FIFO[T]{d: d}
}

// Push appends v at the back of the deque.
func (q *FIFO[T]) Push(v T) bool {
	return q.d.PushBack(v) == nil
}

// Pop removes the front of the deque.
func (q *FIFO[T]) Pop() (T, bool) {
	v, err := q.d.PopFront()
	return v, err == nil
}

// Len returns the number of items in the deque.
func (q *FIFO[T]) Len() int { return q.d.Len() }

// Cap returns the capacity of the deque.
func (q *FIFO[T]) Cap() int { return q.d.Cap() }

// LIFO is a last-in first-out view of a deque.
type LIFO[T any] struct {
	d *deque.Deque[T]
}

// NewLIFO returns a LIFO view of d. d must be initialized before use.
func NewLIFO[T any](d *deque.Deque[T]) *LIFO[T] {
	return &LIFO[T]{d: d}
}

// Push appends v at the back of the deque.
func (q *LIFO[T]) Push(v T) bool {
	return q.d.PushBack(v) == nil
}

// Pop removes the back of the deque.
func (q *LIFO[T]) Pop() (T, bool) {
	v, err := q.d.PopBack()
	return v, err == nil
}

// Len returns the number of items in the deque.
func (q *LIFO[T]) Len() int { return q.d.Len() }

// Cap returns the capacity of the deque.
func (q *LIFO[T]) Cap() int { return q.d.Cap() }
