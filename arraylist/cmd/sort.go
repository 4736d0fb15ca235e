package cmd

import (
	"cmp"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/sarchlab/arraylist/list"
	"github.com/sarchlab/arraylist/model"
)

var sortCmd = &cobra.Command{
	Use:   "sort [integers...]",
	Short: "Sort integers, or the sample users, with an ArrayList.",
	Long: "`sort 5 3 1` prints 1 3 5. Without arguments, the sample users " +
		"are sorted by ID.",
	Run: func(cmd *cobra.Command, args []string) {
		algo, _ := cmd.Flags().GetString("algo")
		if algo != list.AlgorithmLibrary && algo != list.AlgorithmQuick {
			log.Fatalf("Unknown algorithm %q. Use %q or %q.",
				algo, list.AlgorithmLibrary, list.AlgorithmQuick)
		}

		if len(args) == 0 {
			sortUsers(algo)
			return
		}

		values, err := parseInts(args)
		if err != nil {
			log.Fatalf("Error: %v", err)
		}

		l := list.NewArrayList[int]()
		if err := fill(l, values); err != nil {
			log.Fatalf("Error filling the list: %v", err)
		}

		sortWith(l, algo, cmp.Compare[int])

		for i, v := range l.All() {
			if i > 0 {
				fmt.Print(" ")
			}

			fmt.Print(v)
		}

		fmt.Println()
	},
}

func init() {
	rootCmd.AddCommand(sortCmd)
	sortCmd.Flags().String("algo", list.AlgorithmQuick,
		"The sort algorithm, library or quick.")
}

func sortUsers(algo string) {
	l := list.NewArrayList[model.User]()
	if err := fill(l, model.SampleUsers()); err != nil {
		log.Fatalf("Error filling the list: %v", err)
	}

	sortWith(l, algo, model.CompareByID)

	for _, u := range l.All() {
		fmt.Println(u)
	}
}

func sortWith[T any](l list.List[T], algo string, order list.Comparator[T]) {
	if algo == list.AlgorithmLibrary {
		l.Sort(order)
		return
	}

	l.QuickSort(order)
}
