package container

import (
	"bytes"
	"testing"
)

// FuzzQueueFIFO verifies the strict FIFO contract under arbitrary item
// sequences: dequeuing must reproduce the exact enqueue order, and draining
// the queue must leave it empty and reusable.
func FuzzQueueFIFO(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte("a"))
	f.Add([]byte("abc"))
	f.Add(bytes.Repeat([]byte{0xFF}, 100))

	f.Fuzz(func(t *testing.T, data []byte) {
		q := NewQueue[byte]()
		for _, v := range data {
			q.Enqueue(v)
		}
		if q.Size() != len(data) {
			t.Fatalf("size = %d, want %d", q.Size(), len(data))
		}

		got := make([]byte, 0, len(data))
		for !q.IsEmpty() {
			v, err := q.Dequeue()
			if err != nil {
				t.Fatalf("dequeue failed with %d items left: %v", q.Size(), err)
			}
			got = append(got, v)
		}
		if !bytes.Equal(got, data) {
			t.Fatalf("dequeue order = %v, want %v", got, data)
		}

		if _, err := q.Dequeue(); err == nil {
			t.Fatal("dequeue on drained queue succeeded")
		}
	})
}

// FuzzStackLIFO verifies the strict LIFO contract and the capacity bound:
// pushes beyond capacity must fail without mutation, and pops must reproduce
// the exact reverse push order.
func FuzzStackLIFO(f *testing.F) {
	f.Add([]byte{}, uint8(1))
	f.Add([]byte("abc"), uint8(2))
	f.Add([]byte("abc"), uint8(10))
	f.Add(bytes.Repeat([]byte{0x7F}, 64), uint8(255))

	f.Fuzz(func(t *testing.T, data []byte, capacity uint8) {
		if capacity == 0 {
			capacity = 1
		}
		s, err := NewStack[byte]("fuzz", int(capacity))
		if err != nil {
			t.Fatalf("constructing stack: %v", err)
		}

		accepted := 0
		for _, v := range data {
			err := s.Push(v)
			if accepted < int(capacity) {
				if err != nil {
					t.Fatalf("push %d of %d failed: %v", accepted+1, capacity, err)
				}
				accepted++
			} else if err == nil {
				t.Fatalf("push beyond capacity %d succeeded", capacity)
			}
		}
		if s.Size() != accepted {
			t.Fatalf("size = %d, want %d", s.Size(), accepted)
		}

		for i := accepted - 1; i >= 0; i-- {
			v, err := s.Pop()
			if err != nil {
				t.Fatalf("pop failed with %d items left: %v", s.Size(), err)
			}
			if v != data[i] {
				t.Fatalf("pop = %v, want %v", v, data[i])
			}
		}
		if !s.IsEmpty() {
			t.Fatalf("stack not empty after draining, size = %d", s.Size())
		}
	})
}
