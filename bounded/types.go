package bounded

import "errors"

// Sentinel errors for bounded containers.
var (
	// ErrBadCapacity is returned when a container is constructed with capacity <= 0.
	ErrBadCapacity = errors.New("bounded: capacity must be positive")

	// ErrCapacityExceeded is returned by Push/Enqueue when the container is full.
	ErrCapacityExceeded = errors.New("bounded: capacity exceeded")

	// ErrEmptyAccess is returned when reading the top of an empty container.
	ErrEmptyAccess = errors.New("bounded: access on empty container")
)
