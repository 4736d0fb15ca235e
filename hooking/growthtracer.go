package hooking

import "sync"

// GrowthTracer collects every storage replacement of the lists it observes.
type GrowthTracer struct {
	lock    sync.Mutex
	growths []Growth
}

// NewGrowthTracer creates a new GrowthTracer.
func NewGrowthTracer() *GrowthTracer {
	return &GrowthTracer{}
}

// Func records growths.
func (t *GrowthTracer) Func(ctx HookCtx) {
	if ctx.Pos != HookPosGrow {
		return
	}

	t.lock.Lock()
	t.growths = append(t.growths, ctx.Item.(Growth))
	t.lock.Unlock()
}

// Growths returns a copy of the recorded growths.
func (t *GrowthTracer) Growths() []Growth {
	t.lock.Lock()
	defer t.lock.Unlock()

	growths := make([]Growth, len(t.growths))
	copy(growths, t.growths)

	return growths
}

// Capacities returns the capacity sequence, starting from the capacity before
// the first growth.
func (t *GrowthTracer) Capacities() []int {
	t.lock.Lock()
	defer t.lock.Unlock()

	if len(t.growths) == 0 {
		return nil
	}

	caps := []int{t.growths[0].OldCapacity}
	for _, g := range t.growths {
		caps = append(caps, g.NewCapacity)
	}

	return caps
}
