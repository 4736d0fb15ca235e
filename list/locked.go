package list

import (
	"sync"

	"github.com/sarchlab/arraylist/naming"
)

// Locked guards a List with a mutex so that it can be shared between
// goroutines. Every method holds the lock for the whole call. Do holds it
// across several calls.
type Locked[T any] struct {
	sync.Mutex

	inner List[T]
}

// NewLocked wraps a list.
func NewLocked[T any](inner List[T]) *Locked[T] {
	return &Locked[T]{inner: inner}
}

// Name returns the name of the wrapped list, if it has one.
func (l *Locked[T]) Name() string {
	if named, ok := l.inner.(naming.Named); ok {
		return named.Name()
	}

	return "Locked"
}

// Do runs f with exclusive access to the wrapped list.
func (l *Locked[T]) Do(f func(inner List[T])) {
	l.Lock()
	defer l.Unlock()

	f(l.inner)
}

func (l *Locked[T]) Add(element T) (bool, error) {
	l.Lock()
	defer l.Unlock()

	return l.inner.Add(element)
}

func (l *Locked[T]) Insert(index int, element T) error {
	l.Lock()
	defer l.Unlock()

	return l.inner.Insert(index, element)
}

func (l *Locked[T]) Get(index int) (T, error) {
	l.Lock()
	defer l.Unlock()

	return l.inner.Get(index)
}

func (l *Locked[T]) Remove(index int) error {
	l.Lock()
	defer l.Unlock()

	return l.inner.Remove(index)
}

func (l *Locked[T]) Clear() {
	l.Lock()
	defer l.Unlock()

	l.inner.Clear()
}

func (l *Locked[T]) Sort(cmp Comparator[T]) {
	l.Lock()
	defer l.Unlock()

	l.inner.Sort(cmp)
}

func (l *Locked[T]) QuickSort(cmp Comparator[T]) {
	l.Lock()
	defer l.Unlock()

	l.inner.QuickSort(cmp)
}

func (l *Locked[T]) Size() int {
	l.Lock()
	defer l.Unlock()

	return l.inner.Size()
}

func (l *Locked[T]) Capacity() int {
	l.Lock()
	defer l.Unlock()

	return l.inner.Capacity()
}
