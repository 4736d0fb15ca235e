package cmd

import (
	"cmp"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/sarchlab/arraylist/list"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Compare the library sort and the quicksort.",
	Long: "`bench --n 2000 --seed 1` times Sort and QuickSort on random, " +
		"sorted, and reversed inputs and checks that they agree.",
	Run: func(cmd *cobra.Command, _ []string) {
		n, _ := cmd.Flags().GetInt("n")
		seed, _ := cmd.Flags().GetUint64("seed")

		if n < 0 {
			log.Fatalf("n must not be negative, got %d", n)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "input\tn\tlibrary\tquick\tagree")

		for _, input := range benchInputs(n, seed) {
			libTime, libResult := timeSort(input.values, list.AlgorithmLibrary)
			quickTime, quickResult := timeSort(input.values, list.AlgorithmQuick)

			agree := slices.Equal(libResult, quickResult)
			fmt.Fprintf(w, "%s\t%d\t%v\t%v\t%v\n",
				input.name, n, libTime, quickTime, agree)

			if !agree {
				w.Flush()
				log.Fatalf("Sort and QuickSort disagree on %s input",
					input.name)
			}
		}

		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().Int("n", 2000, "The number of elements to sort.")
	benchCmd.Flags().Uint64("seed", 1, "The seed of the random input.")
}

type benchInput struct {
	name   string
	values []int
}

func benchInputs(n int, seed uint64) []benchInput {
	r := rand.New(rand.NewPCG(seed, seed))

	random := make([]int, n)
	for i := range random {
		random[i] = r.IntN(n + 1)
	}

	sorted := slices.Clone(random)
	slices.Sort(sorted)

	reversed := slices.Clone(sorted)
	slices.Reverse(reversed)

	return []benchInput{
		{name: "random", values: random},
		{name: "sorted", values: sorted},
		{name: "reversed", values: reversed},
	}
}

func timeSort(values []int, algo string) (time.Duration, []int) {
	l := list.MakeBuilder[int]().
		WithInitialCapacity(len(values)).
		Build("Bench")
	if err := fill(l, values); err != nil {
		log.Fatalf("Error filling the list: %v", err)
	}

	start := time.Now()
	sortWith(l, algo, cmp.Compare[int])

	return time.Since(start), l.ToSlice()
}
