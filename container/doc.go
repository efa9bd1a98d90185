// Package container provides small, single-owner linear containers for
// tracking ordered work items: an unbounded FIFO Queue and a
// capacity-bounded LIFO Stack.
//
// Key Features:
//   - Strict ordering contracts: Queue dequeues items in exact enqueue order,
//     Stack pops items in exact reverse push order.
//   - Typed failure modes: operations on an empty container fail with an
//     EmptyError, pushing onto a full Stack fails with a FullError. Both
//     carry the container name and operation, and match the ErrEmpty and
//     ErrFull sentinels via errors.Is.
//   - All-or-nothing mutation: a failed operation never changes container
//     contents.
//   - Snapshotting: Items returns an independent copy of current contents, so
//     callers can inspect state without aliasing internal storage.
//
// The containers are not safe for concurrent use. A caller sharing an
// instance across goroutines must guard every operation with external
// mutual exclusion.
//
// Usage Example:
//
//	orders := container.NewQueue[string](container.WithName("orders"))
//	orders.Enqueue("burger")
//	orders.Enqueue("fries")
//
//	next, _ := orders.Dequeue() // "burger"
//
//	plates, err := container.NewStack[string]("plates", 8)
//	if err != nil {
//	    // non-positive capacity
//	}
//	_ = plates.Push("plate-1")
package container
