package list

import (
	"slices"

	"github.com/sarchlab/arraylist/hooking"
	"github.com/sarchlab/arraylist/id"
)

// Names of the sort algorithms as reported to hooks.
const (
	AlgorithmLibrary = "library"
	AlgorithmQuick   = "quick"
)

// Sort sorts the elements with the standard library's stable sort.
func (l *ArrayList[T]) Sort(cmp Comparator[T]) {
	sortID := l.startSort(AlgorithmLibrary)

	slices.SortStableFunc(l.storage[:l.size], cmp)

	l.endSort(sortID)
}

// QuickSort sorts the elements with a recursive Lomuto quicksort. The last
// element of every range is the pivot, so sorted and reverse-sorted input
// take quadratic time.
func (l *ArrayList[T]) QuickSort(cmp Comparator[T]) {
	sortID := l.startSort(AlgorithmQuick)

	s := quickSorter[T]{
		data: l.storage[:l.size],
		cmp:  cmp,
	}

	if l.NumHooks() > 0 {
		s.onPartition = func(low, high, pivotIndex int) {
			l.InvokeHook(hooking.HookCtx{
				Domain: l,
				Pos:    hooking.HookPosPartition,
				Item: hooking.PartitionStep{
					SortID:     sortID,
					Low:        low,
					High:       high,
					PivotIndex: pivotIndex,
				},
			})
		}
	}

	s.sort(0, l.size-1)

	l.endSort(sortID)
}

func (l *ArrayList[T]) startSort(algorithm string) string {
	if l.NumHooks() == 0 {
		return ""
	}

	sortID := id.GetIDGenerator().Generate()

	l.InvokeHook(hooking.HookCtx{
		Domain: l,
		Pos:    hooking.HookPosSortStart,
		Item: hooking.SortStart{
			ID:        sortID,
			Algorithm: algorithm,
			Size:      l.size,
		},
	})

	return sortID
}

func (l *ArrayList[T]) endSort(sortID string) {
	if l.NumHooks() == 0 {
		return
	}

	l.InvokeHook(hooking.HookCtx{
		Domain: l,
		Pos:    hooking.HookPosSortEnd,
		Item:   hooking.SortEnd{ID: sortID},
	})
}

// QuickSortFunc sorts data in place with the same quicksort as
// ArrayList.QuickSort.
func QuickSortFunc[T any](data []T, cmp Comparator[T]) {
	s := quickSorter[T]{data: data, cmp: cmp}
	s.sort(0, len(data)-1)
}

type quickSorter[T any] struct {
	data        []T
	cmp         Comparator[T]
	onPartition func(low, high, pivotIndex int)
}

func (s *quickSorter[T]) sort(low, high int) {
	if low >= high {
		return
	}

	pi := s.partition(low, high)

	if s.onPartition != nil {
		s.onPartition(low, high, pi)
	}

	s.sort(low, pi-1)
	s.sort(pi+1, high)
}

// partition moves every element that orders before data[high] to the front
// of [low, high], puts data[high] right after them and returns its index.
func (s *quickSorter[T]) partition(low, high int) int {
	data := s.data
	pivot := data[high]

	i := low - 1
	for j := low; j < high; j++ {
		if s.cmp(data[j], pivot) < 0 {
			i++
			data[i], data[j] = data[j], data[i]
		}
	}

	data[i+1], data[high] = data[high], data[i+1]

	return i + 1
}
