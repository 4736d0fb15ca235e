package list

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is matched by every error caused by an index
	// outside the valid bounds.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrAllocationFailure is matched by every error caused by a storage
	// request that cannot be satisfied.
	ErrAllocationFailure = errors.New("allocation failure")
)

// IndexOutOfRangeError reports the offending index and the size of the list
// at the time of the call.
type IndexOutOfRangeError struct {
	Index int
	Size  int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of bounds for size %d", e.Index, e.Size)
}

// Is makes errors.Is(err, ErrIndexOutOfRange) true.
func (e *IndexOutOfRangeError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// AllocationError reports a storage request that could not be satisfied.
type AllocationError struct {
	Requested int
	ElemSize  uintptr
	Reason    string
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("cannot allocate storage for %d elements of %d bytes: %s",
		e.Requested, e.ElemSize, e.Reason)
}

// Is makes errors.Is(err, ErrAllocationFailure) true.
func (e *AllocationError) Is(target error) bool {
	return target == ErrAllocationFailure
}
