package list

import (
	"math"
	"runtime"
	"unsafe"

	"github.com/sarchlab/arraylist/hooking"
)

const (
	// DefaultCapacity is the capacity of a new list and of the first
	// allocation of a list built with zero capacity.
	DefaultCapacity = 10

	// SoftMaxArrayLength is the largest capacity the growth policy prefers.
	// Above it, lists only grow by what is strictly required.
	SoftMaxArrayLength = math.MaxInt - 8

	// maxAllocBytes mirrors the largest heap object the Go runtime can
	// address: 1<<48 on 64-bit platforms, 1<<31 on 32-bit ones.
	maxAllocBytes = uint64(1) << (31 + 17*(uint64(^uintptr(0))>>63))
)

// grow replaces the storage with one that can hold at least minCapacity
// elements. The list is unchanged if it returns an error.
func (l *ArrayList[T]) grow(minCapacity int) error {
	oldCapacity := len(l.storage)

	if minCapacity < 0 {
		return l.allocationError(minCapacity, "capacity overflows int")
	}

	var newCapacity int
	if oldCapacity > 0 {
		newCapacity = newLength(
			oldCapacity,
			minCapacity-oldCapacity,
			oldCapacity>>1,
		)
	} else {
		newCapacity = max(DefaultCapacity, minCapacity)
	}

	if newCapacity > l.maxCapacity {
		if minCapacity > l.maxCapacity {
			return l.allocationError(minCapacity, "exceeds max capacity")
		}

		newCapacity = l.maxCapacity
	}

	storage, err := l.allocate(newCapacity)
	if err != nil {
		return err
	}

	copy(storage, l.storage[:l.size])
	l.storage = storage

	if l.NumHooks() > 0 {
		l.InvokeHook(hooking.HookCtx{
			Domain: l,
			Pos:    hooking.HookPosGrow,
			Item: hooking.Growth{
				OldCapacity: oldCapacity,
				NewCapacity: newCapacity,
				Size:        l.size,
			},
		})
	}

	return nil
}

// newLength adds the larger of minGrowth and prefGrowth to oldLength, unless
// that overflows or passes SoftMaxArrayLength, in which case only minGrowth
// is added.
func newLength(oldLength, minGrowth, prefGrowth int) int {
	prefLength := oldLength + max(minGrowth, prefGrowth)
	if 0 < prefLength && prefLength <= SoftMaxArrayLength {
		return prefLength
	}

	return oldLength + minGrowth
}

func (l *ArrayList[T]) allocate(capacity int) (storage []T, err error) {
	var zero T
	elemSize := uint64(unsafe.Sizeof(zero))

	if elemSize > 0 && uint64(capacity) > maxAllocBytes/elemSize {
		return nil, l.allocationError(capacity, "exceeds addressable memory")
	}

	if l.guard != nil && !l.guard.CanAllocate(uint64(capacity)*elemSize) {
		return nil, l.allocationError(capacity, "refused by memory guard")
	}

	defer func() {
		if r := recover(); r != nil {
			rErr, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}

			storage = nil
			err = l.allocationError(capacity, rErr.Error())
		}
	}()

	return make([]T, capacity), nil
}

func (l *ArrayList[T]) allocationError(capacity int, reason string) error {
	var zero T

	return &AllocationError{
		Requested: capacity,
		ElemSize:  unsafe.Sizeof(zero),
		Reason:    reason,
	}
}
