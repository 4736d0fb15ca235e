package list

import (
	"cmp"
	"math/rand"
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	gomock "go.uber.org/mock/gomock"

	"github.com/sarchlab/arraylist/hooking"
	"github.com/sarchlab/arraylist/model"
)

var _ = Describe("Sorting", func() {
	It("should sort integers with the library sort", func() {
		numbers := NewArrayList[int]()
		mustAdd(numbers, 2, 5, -12, -4, 8, 100, 0, 45)

		numbers.Sort(cmp.Compare[int])

		Expect(numbers.ToSlice()).To(Equal(
			[]int{-12, -4, 0, 2, 5, 8, 45, 100}))
	})

	It("should quicksort integers", func() {
		numbers := NewArrayList[int]()
		mustAdd(numbers, 2, 5, -12, -4, 8, 100, 0, 45)

		numbers.QuickSort(cmp.Compare[int])

		Expect(numbers.ToSlice()).To(Equal(
			[]int{-12, -4, 0, 2, 5, 8, 45, 100}))
	})

	It("should only sort the elements, not the spare storage", func() {
		numbers := NewArrayList[int]()
		mustAdd(numbers, 3, 1, 2)

		numbers.QuickSort(cmp.Compare[int])
		numbers.Sort(func(a, b int) int { return b - a })

		Expect(numbers.ToSlice()).To(Equal([]int{3, 2, 1}))
		Expect(numbers.storage[3:]).To(HaveEach(0))
	})

	It("should keep equal elements in order with the library sort", func() {
		users := NewArrayList[model.User]()
		mustAdd(users,
			model.NewUser("Bo", 2, "b1@mail.ru"),
			model.NewUser("Al", 1, "a1@mail.ru"),
			model.NewUser("Bo", 3, "b2@mail.ru"),
			model.NewUser("Al", 0, "a2@mail.ru"),
		)

		users.Sort(func(a, b model.User) int {
			return cmp.Compare(a.Name, b.Name)
		})

		ids := []int{}
		for _, u := range users.All() {
			ids = append(ids, u.ID)
		}

		Expect(ids).To(Equal([]int{1, 0, 2, 3}))
	})

	It("should handle empty and single-element lists", func() {
		numbers := NewArrayList[int]()
		numbers.QuickSort(cmp.Compare[int])
		numbers.Sort(cmp.Compare[int])
		Expect(numbers.Size()).To(Equal(0))

		mustAdd(numbers, 1)
		numbers.QuickSort(cmp.Compare[int])
		Expect(numbers.ToSlice()).To(Equal([]int{1}))
	})

	DescribeTable("should agree with the library sort",
		func(input []int) {
			a := NewArrayList[int]()
			b := NewArrayList[int]()
			mustAdd(a, input...)
			mustAdd(b, input...)

			a.Sort(cmp.Compare[int])
			b.QuickSort(cmp.Compare[int])

			Expect(b.ToSlice()).To(Equal(a.ToSlice()))
			Expect(slices.IsSorted(b.ToSlice())).To(BeTrue())
		},
		Entry("random", rand.Perm(500)),
		Entry("with duplicates", []int{5, 1, 5, 3, 1, 5, 0, 0, 3}),
		Entry("sorted", []int{1, 2, 3, 4, 5, 6, 7, 8, 9}),
		Entry("reversed", []int{9, 8, 7, 6, 5, 4, 3, 2, 1}),
		Entry("all equal", []int{4, 4, 4, 4, 4}),
	)

	It("should order equal keys the same way for both sorts", func() {
		users := model.SampleUsers()
		users = append(users, model.NewUser("Max", 1, "max@mail.ru"))

		a := NewArrayList[model.User]()
		b := NewArrayList[model.User]()
		mustAdd(a, users...)
		mustAdd(b, users...)

		a.Sort(model.CompareByID)
		b.QuickSort(model.CompareByID)

		for i := 0; i < a.Size(); i++ {
			Expect(mustGet(b, i).ID).To(Equal(mustGet(a, i).ID))
		}
	})

	It("should keep equal elements in order in the library sort", func() {
		users := NewArrayList[model.User]()
		mustAdd(users,
			model.NewUser("B", 1, ""),
			model.NewUser("A", 0, ""),
			model.NewUser("C", 1, ""),
		)

		users.Sort(model.CompareByID)

		Expect(mustGet(users, 1).Name).To(Equal("B"))
		Expect(mustGet(users, 2).Name).To(Equal("C"))
	})

	It("should sort plain slices", func() {
		data := []int{3, 0, 2, 1}

		QuickSortFunc(data, cmp.Compare[int])

		Expect(data).To(Equal([]int{0, 1, 2, 3}))
	})
})

var _ = Describe("Partition", func() {
	It("should use the last element as the pivot", func() {
		s := quickSorter[int]{data: []int{0, 3, 1, 2}, cmp: cmp.Compare[int]}

		pi := s.partition(0, 3)

		Expect(pi).To(Equal(2))
		Expect(s.data).To(Equal([]int{0, 1, 2, 3}))
	})

	It("should place a smallest pivot first", func() {
		s := quickSorter[int]{data: []int{5, 4, 3, 0}, cmp: cmp.Compare[int]}

		pi := s.partition(0, 3)

		Expect(pi).To(Equal(0))
		Expect(s.data).To(Equal([]int{0, 4, 3, 5}))
	})

	It("should report every partition", func() {
		users := NewArrayList[model.User]()
		mustAdd(users, model.SampleUsers()...)
		tracer := hooking.NewPartitionTracer()
		users.AcceptHook(tracer)

		users.QuickSort(model.CompareByID)

		steps := tracer.Steps()
		Expect(steps).To(HaveLen(2))
		sortID := steps[0].SortID
		Expect(steps).To(Equal([]hooking.PartitionStep{
			{SortID: sortID, Low: 0, High: 3, PivotIndex: 2},
			{SortID: sortID, Low: 0, High: 1, PivotIndex: 1},
		}))
	})

	It("should degrade on sorted input", func() {
		numbers := NewArrayList[int]()
		for i := 0; i < 20; i++ {
			mustAdd(numbers, i)
		}
		tracer := hooking.NewPartitionTracer()
		numbers.AcceptHook(tracer)

		numbers.QuickSort(cmp.Compare[int])

		steps := tracer.Steps()
		Expect(steps).To(HaveLen(19))
		for i, step := range steps {
			Expect(step.Low).To(Equal(0))
			Expect(step.High).To(Equal(19 - i))
			Expect(step.PivotIndex).To(Equal(19 - i))
		}
	})
})

var _ = Describe("Sort hooks", func() {
	var (
		mockCtrl *gomock.Controller
		hook     *MockHook
		numbers  *ArrayList[int]
		captured []hooking.HookCtx
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		hook = NewMockHook(mockCtrl)
		numbers = NewArrayList[int]()
		mustAdd(numbers, 2, 1)
		numbers.AcceptHook(hook)
		captured = nil
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should invoke hooks around a quicksort", func() {
		hook.EXPECT().Func(gomock.Any()).
			Do(func(ctx hooking.HookCtx) { captured = append(captured, ctx) }).
			Times(3)

		numbers.QuickSort(cmp.Compare[int])

		Expect(captured[0].Pos).To(BeIdenticalTo(hooking.HookPosSortStart))
		Expect(captured[1].Pos).To(BeIdenticalTo(hooking.HookPosPartition))
		Expect(captured[2].Pos).To(BeIdenticalTo(hooking.HookPosSortEnd))
		Expect(captured[0].Domain).To(BeIdenticalTo(numbers))

		start := captured[0].Item.(hooking.SortStart)
		Expect(start.Algorithm).To(Equal(AlgorithmQuick))
		Expect(start.Size).To(Equal(2))
		Expect(captured[1].Item.(hooking.PartitionStep).SortID).
			To(Equal(start.ID))
		Expect(captured[2].Item).To(Equal(hooking.SortEnd{ID: start.ID}))
	})

	It("should invoke hooks around a library sort", func() {
		hook.EXPECT().Func(gomock.Any()).
			Do(func(ctx hooking.HookCtx) { captured = append(captured, ctx) }).
			Times(2)

		numbers.Sort(cmp.Compare[int])

		Expect(captured[0].Item.(hooking.SortStart).Algorithm).
			To(Equal(AlgorithmLibrary))
		Expect(captured[1].Pos).To(BeIdenticalTo(hooking.HookPosSortEnd))
	})

	It("should invoke hooks on growth", func() {
		hook.EXPECT().Func(gomock.Any()).
			Do(func(ctx hooking.HookCtx) { captured = append(captured, ctx) })

		for i := 0; i < DefaultCapacity-1; i++ {
			mustAdd(numbers, i)
		}

		Expect(captured).To(HaveLen(1))
		Expect(captured[0].Pos).To(BeIdenticalTo(hooking.HookPosGrow))
		Expect(captured[0].Item).To(Equal(hooking.Growth{
			OldCapacity: 10,
			NewCapacity: 15,
			Size:        10,
		}))
	})
})
