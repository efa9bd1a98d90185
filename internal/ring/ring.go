// Package ring provides a growable circular buffer used as the backing
// store for FIFO containers, giving O(1) amortized removal from the front.
package ring

const minCapacity = 8

// Buffer is a growable circular buffer of T.
//
// The zero value is not usable, create instances with New.
type Buffer[T any] struct {
	buf   []T
	head  int // index of the front element
	count int
}

// New creates a new Buffer with at least the given initial capacity.
// The capacity is rounded up to the next power of two.
func New[T any](capacity int) *Buffer[T] {
	if capacity < minCapacity {
		capacity = minCapacity
	}
	return &Buffer[T]{buf: make([]T, ceilPowOfTwo(capacity))}
}

// Len returns the number of elements currently stored.
func (b *Buffer[T]) Len() int {
	return b.count
}

// PushBack appends an element behind the current back element,
// growing the buffer when it is full.
func (b *Buffer[T]) PushBack(v T) {
	if b.count == len(b.buf) {
		b.grow()
	}
	b.buf[b.wrap(b.head+b.count)] = v
	b.count++
}

// PopFront removes and returns the front element.
// It reports false if the buffer is empty.
func (b *Buffer[T]) PopFront() (T, bool) {
	var zero T
	if b.count == 0 {
		return zero, false
	}
	v := b.buf[b.head]
	b.buf[b.head] = zero // release the reference for GC
	b.head = b.wrap(b.head + 1)
	b.count--
	return v, true
}

// Front returns the front element without removing it.
// It reports false if the buffer is empty.
func (b *Buffer[T]) Front() (T, bool) {
	if b.count == 0 {
		var zero T
		return zero, false
	}
	return b.buf[b.head], true
}

// Reset removes all elements. The underlying storage is retained for reuse.
func (b *Buffer[T]) Reset() {
	clear(b.buf)
	b.head = 0
	b.count = 0
}

// Snapshot returns a newly allocated slice holding the elements
// in front-to-back order.
func (b *Buffer[T]) Snapshot() []T {
	out := make([]T, b.count)
	for i := 0; i < b.count; i++ {
		out[i] = b.buf[b.wrap(b.head+i)]
	}
	return out
}

// wrap normalizes an index into the buffer bounds.
// len(b.buf) is always a power of two.
func (b *Buffer[T]) wrap(i int) int {
	return i & (len(b.buf) - 1)
}

// grow doubles the storage and linearizes the elements to the start.
func (b *Buffer[T]) grow() {
	newBuf := make([]T, len(b.buf)*2)
	n := copy(newBuf, b.buf[b.head:])
	copy(newBuf[n:], b.buf[:b.head])
	b.buf = newBuf
	b.head = 0
}

// ceilPowOfTwo rounds n up to the nearest power of two.
func ceilPowOfTwo(n int) int {
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	n++
	return n
}
