package list

import (
	"github.com/shirou/gopsutil/mem"
)

// A MemoryGuard decides whether a list may allocate a new storage buffer.
type MemoryGuard interface {
	// CanAllocate returns false if a buffer of the given number of bytes
	// should not be allocated.
	CanAllocate(bytes uint64) bool
}

// SystemMemoryGuard refuses allocations that would leave less than Headroom
// bytes of system memory available.
type SystemMemoryGuard struct {
	Headroom uint64
}

// NewSystemMemoryGuard creates a SystemMemoryGuard.
func NewSystemMemoryGuard(headroom uint64) *SystemMemoryGuard {
	return &SystemMemoryGuard{Headroom: headroom}
}

// CanAllocate checks the request against the available system memory.
func (g *SystemMemoryGuard) CanAllocate(bytes uint64) bool {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return false
	}

	if vm.Available < g.Headroom {
		return false
	}

	return bytes <= vm.Available-g.Headroom
}
