package hooking

// A list of hook poses that lists invoke hooks at.
var (
	HookPosGrow      = &HookPos{Name: "HookPosGrow"}
	HookPosSortStart = &HookPos{Name: "HookPosSortStart"}
	HookPosPartition = &HookPos{Name: "HookPosPartition"}
	HookPosSortEnd   = &HookPos{Name: "HookPosSortEnd"}
)

// Growth is passed to the hook after a list replaced its storage.
type Growth struct {
	OldCapacity int
	NewCapacity int
	Size        int
}

// SortStart is passed to the hook when a sort begins.
type SortStart struct {
	ID        string
	Algorithm string
	Size      int
}

// PartitionStep is passed to the hook every time a quicksort partition
// places a pivot. Low and High bound the partitioned range inclusively.
type PartitionStep struct {
	SortID     string
	Low        int
	High       int
	PivotIndex int
}

// SortEnd is passed to the hook when a sort finishes.
type SortEnd struct {
	ID string
}

// A TimeTeller can tell the current time in seconds.
type TimeTeller interface {
	Now() float64
}
