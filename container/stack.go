package container

import (
	"fmt"

	"github.com/arloliu/go-containers/logger"
)

// Stack is a LIFO container with a fixed capacity set at construction.
//
// Items leave the stack in exactly the reverse of the order they entered.
// Pop and Peek on an empty stack fail with an EmptyError; Push on a full
// stack fails with a FullError. A failed operation never changes the stack
// contents.
//
// Stack is not safe for concurrent use.
type Stack[T any] struct {
	name     string
	capacity int
	items    []T
	logger   logger.Logger
}

var _ Container[any] = (*Stack[any])(nil)
var _ fmt.Stringer = (*Stack[any])(nil)

// NewStack creates a new empty Stack with the given display name and fixed
// capacity, and applies the provided options.
//
// It returns ErrNonPositiveCapacity if capacity is zero or negative.
func NewStack[T any](name string, capacity int, opts ...Option) (*Stack[T], error) {
	if capacity <= 0 {
		return nil, ErrNonPositiveCapacity
	}
	cfg := newConfig(name, opts...)
	return &Stack[T]{
		name:     cfg.name,
		capacity: capacity,
		items:    make([]T, 0, capacity),
		logger:   cfg.logger,
	}, nil
}

// Push adds an item to the top of the stack.
//
// It returns a FullError if the stack has reached its capacity, leaving the
// contents completely unchanged.
func (s *Stack[T]) Push(item T) error {
	// >= guards against a capacity overrun even if the invariant is broken.
	if len(s.items) >= s.capacity {
		return &FullError{Name: s.name, Op: "push", Capacity: s.capacity}
	}
	s.items = append(s.items, item)
	return nil
}

// Pop removes and returns the item at the top of the stack.
//
// It returns an EmptyError if the stack is empty.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if len(s.items) == 0 {
		return zero, &EmptyError{Name: s.name, Op: "pop"}
	}
	last := len(s.items) - 1
	item := s.items[last]
	s.items[last] = zero // release the reference for GC
	s.items = s.items[:last]
	return item, nil
}

// Peek returns the item at the top of the stack without removing it.
//
// It returns an EmptyError if the stack is empty.
func (s *Stack[T]) Peek() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, &EmptyError{Name: s.name, Op: "peek"}
	}
	return s.items[len(s.items)-1], nil
}

// IsEmpty returns true if the stack holds no items.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// IsFull returns true if the stack has reached its capacity.
func (s *Stack[T]) IsFull() bool {
	return len(s.items) >= s.capacity
}

// Size returns the number of items currently in the stack.
func (s *Stack[T]) Size() int {
	return len(s.items)
}

// Capacity returns the fixed capacity of the stack.
func (s *Stack[T]) Capacity() int {
	return s.capacity
}

// Clear removes all items from the stack. The stack remains usable afterward.
func (s *Stack[T]) Clear() {
	clear(s.items)
	s.items = s.items[:0]
}

// Items returns an independent copy of the current contents in bottom-to-top
// order. Mutating the returned slice does not affect the stack.
func (s *Stack[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Name returns the display name of the stack.
func (s *Stack[T]) Name() string {
	return s.name
}

// SetName replaces the display name of the stack.
func (s *Stack[T]) SetName(name string) {
	s.name = name
}

// String implements fmt.Stringer. It renders the current contents in
// bottom-to-top order, derived solely from a snapshot of the items.
func (s *Stack[T]) String() string {
	return fmt.Sprintf("%v", s.Items())
}

// Show logs the stack name, size, capacity and contents through the
// configured logger. It is a diagnostic aid and has no effect on stack state.
func (s *Stack[T]) Show() {
	s.logger.Info("stack contents",
		"name", s.name, "size", s.Size(), "capacity", s.capacity, "items", s.Items())
}
