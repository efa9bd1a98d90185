package container

// Container defines the operations shared by every container in this package.
// It enables consumers to inspect and reset a Queue or Stack uniformly,
// regardless of its ordering discipline.
type Container[T any] interface {
	// IsEmpty returns true if the container holds no items.
	IsEmpty() bool
	// Size returns the number of items currently held.
	Size() int
	// Clear removes all items. The container remains usable afterward.
	Clear()
	// Items returns an independent copy of the current contents in the
	// container's canonical order.
	Items() []T
	// Name returns the display name of the container.
	Name() string
	// SetName replaces the display name of the container.
	SetName(name string)
}
