package list

import (
	"github.com/sarchlab/arraylist/naming"
)

// Builder can build ArrayLists.
type Builder[T any] struct {
	initialCapacity int
	maxCapacity     int
	guard           MemoryGuard
}

// MakeBuilder creates a builder with the default settings.
func MakeBuilder[T any]() Builder[T] {
	return Builder[T]{
		initialCapacity: DefaultCapacity,
		maxCapacity:     SoftMaxArrayLength,
	}
}

// WithInitialCapacity sets the capacity of the storage allocated by Build.
// A capacity of 0 defers the allocation to the first Add or Insert, which
// then allocates DefaultCapacity elements.
func (b Builder[T]) WithInitialCapacity(capacity int) Builder[T] {
	b.initialCapacity = capacity
	return b
}

// WithMaxCapacity sets the largest capacity the list may grow to. Adding
// beyond it fails with ErrAllocationFailure.
func (b Builder[T]) WithMaxCapacity(capacity int) Builder[T] {
	b.maxCapacity = capacity
	return b
}

// WithMemoryGuard sets the guard consulted before every allocation.
func (b Builder[T]) WithMemoryGuard(guard MemoryGuard) Builder[T] {
	b.guard = guard
	return b
}

// Build creates a list with the given name.
func (b Builder[T]) Build(name string) *ArrayList[T] {
	naming.NameMustBeValid(name)
	b.configurationMustBeValid()

	l := &ArrayList[T]{
		NamedBase:   naming.MakeNamedBase(name),
		maxCapacity: b.maxCapacity,
		guard:       b.guard,
	}

	storage, err := l.allocate(b.initialCapacity)
	if err != nil {
		panic(err)
	}

	l.storage = storage

	return l
}

func (b Builder[T]) configurationMustBeValid() {
	if b.initialCapacity < 0 {
		panic("initial capacity must not be negative")
	}

	if b.maxCapacity <= 0 {
		panic("max capacity must be positive")
	}

	if b.initialCapacity > b.maxCapacity {
		panic("initial capacity must not exceed max capacity")
	}
}
