package cmd

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/sarchlab/arraylist/hooking"
	"github.com/sarchlab/arraylist/list"
)

var stressCmd = &cobra.Command{
	Use:   "stress",
	Short: "Append until the list cannot grow any further.",
	Long: "`stress --max-capacity 1000000` appends integers until the list " +
		"reports an allocation failure, either because it reached the " +
		"maximum capacity or because the system ran low on memory.",
	Run: func(cmd *cobra.Command, _ []string) {
		c := mustLoadConfig(cmd)
		if cmd.Flags().Changed("max-capacity") {
			c.MaxCapacity, _ = cmd.Flags().GetInt("max-capacity")
		}

		if cmd.Flags().Changed("headroom") {
			c.MemoryHeadroom, _ = cmd.Flags().GetUint64("headroom")
		}

		growths := hooking.NewGrowthTracer()

		l := list.MakeBuilder[int64]().
			WithInitialCapacity(0).
			WithMaxCapacity(c.MaxCapacity).
			WithMemoryGuard(list.NewSystemMemoryGuard(c.MemoryHeadroom)).
			Build("Stress")
		l.AcceptHook(growths)

		var err error
		for i := int64(0); err == nil; i++ {
			_, err = l.Add(i)
		}

		if !errors.Is(err, list.ErrAllocationFailure) {
			log.Fatalf("Unexpected error: %v", err)
		}

		fmt.Printf("stopped at size %d, capacity %d after %d growths\n",
			l.Size(), l.Capacity(), len(growths.Growths()))
		fmt.Printf("reason: %v\n", err)
	},
}

func init() {
	rootCmd.AddCommand(stressCmd)
	stressCmd.Flags().Int("max-capacity", list.SoftMaxArrayLength,
		"The largest capacity the list may grow to.")
	stressCmd.Flags().Uint64("headroom", 0,
		"The bytes of system memory to keep free.")
}
