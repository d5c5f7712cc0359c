// Package queue provides the unbounded FIFO used for pending events and
// completed results. Each operation is independently atomic; no lock is
// held across handler invocations.
package queue

import "sync"

// Queue is an unbounded FIFO safe for concurrent use. The zero value is
// ready to use.
type Queue[T any] struct {
	mu    sync.Mutex
	items []T
}

// New creates an empty queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Push appends an item to the tail. It never blocks and never fails;
// capacity is bounded only by available memory.
func (q *Queue[T]) Push(item T) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.items = append(q.items, item)
}

// Pop removes and returns the head item. The second return value is false
// if the queue is empty. Pop never blocks.
func (q *Queue[T]) Pop() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		var zero T
		return zero, false
	}

	item := q.items[0]
	// Shift rather than reslice so consumed heads do not pin the backing
	// array's memory.
	copy(q.items, q.items[1:])
	q.items = q.items[:len(q.items)-1]
	return item, true
}

// Len returns the current number of queued items.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.items)
}
