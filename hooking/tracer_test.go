package hooking

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("PartitionTracer", func() {
	var t *PartitionTracer

	BeforeEach(func() {
		t = NewPartitionTracer()
	})

	It("should record steps in order", func() {
		t.Func(HookCtx{Pos: HookPosPartition,
			Item: PartitionStep{SortID: "1", Low: 0, High: 3, PivotIndex: 1}})
		t.Func(HookCtx{Pos: HookPosPartition,
			Item: PartitionStep{SortID: "1", Low: 2, High: 3, PivotIndex: 3}})
		t.Func(HookCtx{Pos: HookPosPartition,
			Item: PartitionStep{SortID: "2", Low: 0, High: 1, PivotIndex: 0}})

		Expect(t.Steps()).To(HaveLen(3))
		Expect(t.Count("1")).To(Equal(2))
		Expect(t.Count("2")).To(Equal(1))
		Expect(t.StepsOf("1")).To(Equal([]PartitionStep{
			{SortID: "1", Low: 0, High: 3, PivotIndex: 1},
			{SortID: "1", Low: 2, High: 3, PivotIndex: 3},
		}))
	})

	It("should ignore other positions", func() {
		t.Func(HookCtx{Pos: HookPosGrow, Item: Growth{}})

		Expect(t.Steps()).To(BeEmpty())
	})

	It("should reset", func() {
		t.RecordStep(PartitionStep{SortID: "1"})
		t.Reset()

		Expect(t.Steps()).To(BeEmpty())
		Expect(t.Count("1")).To(Equal(0))
	})
})

var _ = Describe("GrowthTracer", func() {
	It("should record capacities", func() {
		t := NewGrowthTracer()

		t.Func(HookCtx{Pos: HookPosGrow,
			Item: Growth{OldCapacity: 10, NewCapacity: 15, Size: 10}})
		t.Func(HookCtx{Pos: HookPosGrow,
			Item: Growth{OldCapacity: 15, NewCapacity: 22, Size: 15}})
		t.Func(HookCtx{Pos: HookPosSortStart, Item: SortStart{}})

		Expect(t.Growths()).To(HaveLen(2))
		Expect(t.Capacities()).To(Equal([]int{10, 15, 22}))
	})

	It("should return no capacities before growing", func() {
		Expect(NewGrowthTracer().Capacities()).To(BeNil())
	})
})
