// Package list provides ArrayList, a growable, indexable list backed by one
// contiguous buffer, with a library sort and a last-element-pivot quicksort.
//
// An ArrayList is not safe for concurrent use. Wrap it in a Locked when more
// than one goroutine needs it.
package list

// Comparator orders two elements. It returns a negative number when a goes
// before b, zero when they are equivalent, and a positive number when a goes
// after b. It must be a strict weak ordering.
type Comparator[T any] func(a, b T) int

// List is an ordered sequence of elements that can be accessed by index.
type List[T any] interface {
	// Add appends the element at the end of the list. It returns true unless
	// the list cannot grow, in which case the error matches
	// ErrAllocationFailure.
	Add(element T) (bool, error)

	// Insert puts the element at index and shifts the elements from index on
	// one position to the right. index may equal Size().
	Insert(index int, element T) error

	// Get returns the element at index.
	Get(index int) (T, error)

	// Remove deletes the element at index and shifts the elements after it
	// one position to the left.
	Remove(index int) error

	// Clear removes all the elements. The capacity is kept.
	Clear()

	// Sort sorts the elements with the library sort.
	Sort(cmp Comparator[T])

	// QuickSort sorts the elements with a recursive quicksort that uses the
	// last element of every range as the pivot.
	QuickSort(cmp Comparator[T])

	// Size returns the number of elements.
	Size() int

	// Capacity returns the number of elements the list can hold before it
	// has to grow.
	Capacity() int
}

var (
	_ List[int] = (*ArrayList[int])(nil)
	_ List[int] = (*Locked[int])(nil)
)
