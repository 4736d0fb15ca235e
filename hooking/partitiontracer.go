package hooking

import (
	"sync"
)

// PartitionTracer records the partition steps of every quicksort run on the
// lists it is attached to, in the order the pivots were placed.
type PartitionTracer struct {
	lock  sync.Mutex
	steps []PartitionStep
	sorts map[string]int
}

// NewPartitionTracer creates a new PartitionTracer.
func NewPartitionTracer() *PartitionTracer {
	return &PartitionTracer{
		sorts: make(map[string]int),
	}
}

// Func records partition steps.
func (t *PartitionTracer) Func(ctx HookCtx) {
	switch ctx.Pos {
	case HookPosPartition:
		t.RecordStep(ctx.Item.(PartitionStep))
	}
}

// RecordStep appends a step.
func (t *PartitionTracer) RecordStep(step PartitionStep) {
	t.lock.Lock()
	defer t.lock.Unlock()

	t.steps = append(t.steps, step)
	t.sorts[step.SortID]++
}

// Steps returns a copy of all the recorded steps.
func (t *PartitionTracer) Steps() []PartitionStep {
	t.lock.Lock()
	defer t.lock.Unlock()

	steps := make([]PartitionStep, len(t.steps))
	copy(steps, t.steps)

	return steps
}

// StepsOf returns the steps of one sort run.
func (t *PartitionTracer) StepsOf(sortID string) []PartitionStep {
	t.lock.Lock()
	defer t.lock.Unlock()

	var steps []PartitionStep
	for _, s := range t.steps {
		if s.SortID == sortID {
			steps = append(steps, s)
		}
	}

	return steps
}

// Count returns the number of partitions performed by a sort run.
func (t *PartitionTracer) Count(sortID string) int {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.sorts[sortID]
}

// Reset forgets everything recorded so far.
func (t *PartitionTracer) Reset() {
	t.lock.Lock()
	defer t.lock.Unlock()

	t.steps = nil
	t.sorts = make(map[string]int)
}
