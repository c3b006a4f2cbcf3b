package bounded

import "fmt"

// Stack is a fixed-capacity LIFO container.
// The zero value is not usable; construct with NewStack.
type Stack[T any] struct {
	data []T
	top  int // index of the top element, -1 when empty
}

// NewStack allocates a stack able to hold exactly capacity elements.
func NewStack[T any](capacity int) (*Stack[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadCapacity, capacity)
	}

	return &Stack[T]{data: make([]T, capacity), top: -1}, nil
}

// Size returns the number of elements on the stack.
func (s *Stack[T]) Size() int { return s.top + 1 }

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool { return s.top == -1 }

// Cap returns the fixed capacity.
func (s *Stack[T]) Cap() int { return len(s.data) }

// Top returns the element at the logical top without removing it.
func (s *Stack[T]) Top() (T, error) {
	if s.IsEmpty() {
		var zero T
		return zero, ErrEmptyAccess
	}

	return s.data[s.top], nil
}

// Push places e on top of the stack.
// Returns ErrCapacityExceeded if the stack is already full.
func (s *Stack[T]) Push(e T) error {
	if s.top == len(s.data)-1 {
		return fmt.Errorf("%w: stack full at %d", ErrCapacityExceeded, len(s.data))
	}
	s.top++
	s.data[s.top] = e

	return nil
}

// Pop removes and returns the top element. ok is false if the stack is empty.
func (s *Stack[T]) Pop() (e T, ok bool) {
	if s.IsEmpty() {
		return e, false
	}
	e = s.data[s.top]
	var zero T
	s.data[s.top] = zero // drop the reference
	s.top--

	return e, true
}
