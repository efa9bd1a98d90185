package container

import (
	"fmt"

	"github.com/arloliu/go-containers/internal/ring"
	"github.com/arloliu/go-containers/logger"
)

// Queue is an unbounded FIFO container.
//
// Items leave the queue in exactly the order they entered. Dequeue and Peek
// on an empty queue fail with an EmptyError; the queue is left unchanged and
// remains usable.
//
// Queue is not safe for concurrent use.
type Queue[T any] struct {
	name   string
	items  *ring.Buffer[T]
	logger logger.Logger
}

var _ Container[any] = (*Queue[any])(nil)
var _ fmt.Stringer = (*Queue[any])(nil)

// NewQueue creates a new empty Queue and applies the provided options.
//
// The display name defaults to "Queue", use WithName to override it.
func NewQueue[T any](opts ...Option) *Queue[T] {
	cfg := newConfig("Queue", opts...)
	return &Queue[T]{
		name:   cfg.name,
		items:  ring.New[T](cfg.prealloc),
		logger: cfg.logger,
	}
}

// Enqueue adds an item to the rear of the queue. It always succeeds.
func (q *Queue[T]) Enqueue(item T) {
	q.items.PushBack(item)
}

// Dequeue removes and returns the item at the front of the queue.
//
// It returns an EmptyError if the queue is empty.
func (q *Queue[T]) Dequeue() (T, error) {
	item, ok := q.items.PopFront()
	if !ok {
		return item, &EmptyError{Name: q.name, Op: "dequeue"}
	}
	return item, nil
}

// Peek returns the item at the front of the queue without removing it.
//
// It returns an EmptyError if the queue is empty.
func (q *Queue[T]) Peek() (T, error) {
	item, ok := q.items.Front()
	if !ok {
		return item, &EmptyError{Name: q.name, Op: "peek"}
	}
	return item, nil
}

// IsEmpty returns true if the queue holds no items.
func (q *Queue[T]) IsEmpty() bool {
	return q.items.Len() == 0
}

// Size returns the number of items currently in the queue.
func (q *Queue[T]) Size() int {
	return q.items.Len()
}

// Clear removes all items from the queue. The queue remains usable afterward.
func (q *Queue[T]) Clear() {
	q.items.Reset()
}

// Items returns an independent copy of the current contents in front-to-rear
// order. Mutating the returned slice does not affect the queue.
func (q *Queue[T]) Items() []T {
	return q.items.Snapshot()
}

// Name returns the display name of the queue.
func (q *Queue[T]) Name() string {
	return q.name
}

// SetName replaces the display name of the queue.
func (q *Queue[T]) SetName(name string) {
	q.name = name
}

// String implements fmt.Stringer. It renders the current contents in
// front-to-rear order, derived solely from a snapshot of the items.
func (q *Queue[T]) String() string {
	return fmt.Sprintf("%v", q.Items())
}

// Show logs the queue name, size and contents through the configured logger.
// It is a diagnostic aid and has no effect on queue state.
func (q *Queue[T]) Show() {
	q.logger.Info("queue contents", "name", q.name, "size", q.Size(), "items", q.Items())
}
