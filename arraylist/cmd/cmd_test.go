package cmd

import (
	"errors"

	"github.com/sarchlab/arraylist/list"
	"github.com/sarchlab/arraylist/model"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("parseInts", func() {
	It("should parse integers", func() {
		values, err := parseInts([]string{"3", "-1", "0"})

		Expect(err).NotTo(HaveOccurred())
		Expect(values).To(Equal([]int{3, -1, 0}))
	})

	It("should reject non integers", func() {
		_, err := parseInts([]string{"3", "x"})

		Expect(err).To(MatchError(ContainSubstring(`"x"`)))
	})
})

var _ = Describe("fill", func() {
	It("should stop at the first failure", func() {
		l := list.MakeBuilder[int]().
			WithInitialCapacity(0).
			WithMaxCapacity(2).
			Build("Small")

		err := fill[int](l, []int{1, 2, 3})

		Expect(errors.Is(err, list.ErrAllocationFailure)).To(BeTrue())
		Expect(l.ToSlice()).To(Equal([]int{1, 2}))
	})
})

var _ = Describe("sortWith", func() {
	It("should sort users with both algorithms", func() {
		for _, algo := range []string{
			list.AlgorithmLibrary, list.AlgorithmQuick,
		} {
			l := list.NewArrayList[model.User]()
			Expect(fill[model.User](l, model.SampleUsers())).To(Succeed())

			sortWith[model.User](l, algo, model.CompareByID)

			names := []string{}
			for _, u := range l.All() {
				names = append(names, u.Name)
			}

			Expect(names).To(Equal(
				[]string{"Mike", "Ashlie", "Nikola", "Alex"}))
		}
	})
})

var _ = Describe("benchInputs", func() {
	It("should build random, sorted, and reversed inputs", func() {
		inputs := benchInputs(50, 7)

		Expect(inputs).To(HaveLen(3))
		Expect(inputs[0].values).To(HaveLen(50))
		Expect(inputs[1].values).To(ConsistOf(inputs[0].values))
		Expect(inputs[2].values[0]).To(Equal(inputs[1].values[49]))
	})

	It("should let both algorithms agree", func() {
		for _, input := range benchInputs(200, 3) {
			_, lib := timeSort(input.values, list.AlgorithmLibrary)
			_, quick := timeSort(input.values, list.AlgorithmQuick)

			Expect(quick).To(Equal(lib))
		}
	})
})
