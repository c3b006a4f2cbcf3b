package bounded

import "fmt"

// Queue is a fixed-capacity FIFO container backed by a circular buffer.
// The zero value is not usable; construct with NewQueue.
type Queue[T any] struct {
	data  []T
	front int
	size  int
}

// NewQueue allocates a queue able to hold exactly capacity elements.
func NewQueue[T any](capacity int) (*Queue[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadCapacity, capacity)
	}

	return &Queue[T]{data: make([]T, capacity)}, nil
}

// Size returns the number of queued elements.
func (q *Queue[T]) Size() int { return q.size }

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool { return q.size == 0 }

// Cap returns the fixed capacity.
func (q *Queue[T]) Cap() int { return len(q.data) }

// First returns the front element without removing it.
func (q *Queue[T]) First() (e T, ok bool) {
	if q.IsEmpty() {
		return e, false
	}

	return q.data[q.front], true
}

// Enqueue appends e at the back of the queue.
// Returns ErrCapacityExceeded if size already equals capacity.
func (q *Queue[T]) Enqueue(e T) error {
	if q.size == len(q.data) {
		return fmt.Errorf("%w: queue full at %d", ErrCapacityExceeded, len(q.data))
	}
	avail := (q.front + q.size) % len(q.data)
	q.data[avail] = e
	q.size++

	return nil
}

// Dequeue removes and returns the front element. ok is false if the queue is empty.
func (q *Queue[T]) Dequeue() (e T, ok bool) {
	if q.IsEmpty() {
		return e, false
	}
	e = q.data[q.front]
	var zero T
	q.data[q.front] = zero
	q.front = (q.front + 1) % len(q.data)
	q.size--

	return e, true
}
