package container

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty indicates that an operation requiring at least one item was
	// invoked on an empty container.
	//
	// It is the errors.Is target for EmptyError.
	ErrEmpty = errors.New("container is empty")

	// ErrFull indicates that a push was attempted on a container that has
	// reached its capacity.
	//
	// It is the errors.Is target for FullError.
	ErrFull = errors.New("container is full")

	// ErrNonPositiveCapacity indicates that a bounded container was
	// constructed with a zero or negative capacity.
	ErrNonPositiveCapacity = errors.New("capacity must be a positive integer")
)

// EmptyError reports a dequeue, pop or peek attempted on an empty container.
//
// The container is left in its prior empty state and remains usable.
type EmptyError struct {
	// Name is the display name of the container.
	Name string
	// Op is the operation that failed, e.g. "dequeue".
	Op string
}

func (e *EmptyError) Error() string {
	return fmt.Sprintf("cannot %s from %s: %s", e.Op, e.Name, ErrEmpty)
}

func (e *EmptyError) Unwrap() error {
	return ErrEmpty
}

// FullError reports a push attempted on a container at capacity.
//
// The container contents are left completely unchanged and the container
// remains usable.
type FullError struct {
	// Name is the display name of the container.
	Name string
	// Op is the operation that failed, e.g. "push".
	Op string
	// Capacity is the fixed capacity of the container.
	Capacity int
}

func (e *FullError) Error() string {
	return fmt.Sprintf("cannot %s to %s: %s, capacity is %d", e.Op, e.Name, ErrFull, e.Capacity)
}

func (e *FullError) Unwrap() error {
	return ErrFull
}
