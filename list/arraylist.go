package list

import (
	"iter"

	"github.com/sarchlab/arraylist/hooking"
	"github.com/sarchlab/arraylist/naming"
)

// ArrayList is a List backed by a single buffer that grows by half of its
// capacity whenever it is full.
type ArrayList[T any] struct {
	naming.NamedBase
	hooking.HookableBase

	storage     []T
	size        int
	maxCapacity int
	guard       MemoryGuard
}

// NewArrayList creates an empty list named "ArrayList" with room for
// DefaultCapacity elements.
func NewArrayList[T any]() *ArrayList[T] {
	return MakeBuilder[T]().Build("ArrayList")
}

// Add appends the element at the end of the list.
func (l *ArrayList[T]) Add(element T) (bool, error) {
	if l.size == len(l.storage) {
		err := l.grow(l.size + 1)
		if err != nil {
			return false, err
		}
	}

	l.storage[l.size] = element
	l.size++

	return true, nil
}

// Insert puts the element at index, shifting the elements at and after index
// one position to the right.
func (l *ArrayList[T]) Insert(index int, element T) error {
	if index < 0 || index > l.size {
		return l.indexError(index)
	}

	if l.size == len(l.storage) {
		err := l.grow(l.size + 1)
		if err != nil {
			return err
		}
	}

	copy(l.storage[index+1:l.size+1], l.storage[index:l.size])
	l.storage[index] = element
	l.size++

	return nil
}

// Get returns the element at index.
func (l *ArrayList[T]) Get(index int) (T, error) {
	if index < 0 || index >= l.size {
		var zero T
		return zero, l.indexError(index)
	}

	return l.storage[index], nil
}

// Remove deletes the element at index, shifting the elements after it one
// position to the left.
func (l *ArrayList[T]) Remove(index int) error {
	if index < 0 || index >= l.size {
		return l.indexError(index)
	}

	copy(l.storage[index:], l.storage[index+1:l.size])
	l.size--

	var zero T
	l.storage[l.size] = zero

	return nil
}

// Clear removes all the elements but keeps the storage.
func (l *ArrayList[T]) Clear() {
	clear(l.storage[:l.size])
	l.size = 0
}

// Size returns the number of elements.
func (l *ArrayList[T]) Size() int {
	return l.size
}

// Capacity returns the length of the storage.
func (l *ArrayList[T]) Capacity() int {
	return len(l.storage)
}

// ToSlice returns a copy of the elements.
func (l *ArrayList[T]) ToSlice() []T {
	s := make([]T, l.size)
	copy(s, l.storage[:l.size])

	return s
}

// All iterates over the index and value of every element. The list must not
// be modified during the iteration.
func (l *ArrayList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < l.size; i++ {
			if !yield(i, l.storage[i]) {
				return
			}
		}
	}
}

func (l *ArrayList[T]) indexError(index int) error {
	return &IndexOutOfRangeError{Index: index, Size: l.size}
}
