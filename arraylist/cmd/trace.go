package cmd

import (
	"cmp"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/sarchlab/arraylist/datarecording"
	"github.com/sarchlab/arraylist/hooking"
	"github.com/sarchlab/arraylist/list"
)

var traceCmd = &cobra.Command{
	Use:   "trace [integers...]",
	Short: "QuickSort integers and record every partition step.",
	Long: "`trace --db out 5 3 1` quicksorts the integers and writes the " +
		"growth and partition steps into out.sqlite3.",
	Run: func(cmd *cobra.Command, args []string) {
		c := mustLoadConfig(cmd)
		if cmd.Flags().Changed("db") {
			c.DBPath, _ = cmd.Flags().GetString("db")
		}

		values, err := parseInts(args)
		if err != nil {
			log.Fatalf("Error: %v", err)
		}

		recorder := datarecording.New(c.DBPath)
		exec := datarecording.NewExecRecorder(recorder)
		exec.Start()

		dbTracer := hooking.NewDBTracer(hooking.NewWallClock(), recorder)
		steps := hooking.NewPartitionTracer()
		growths := hooking.NewGrowthTracer()

		l := list.MakeBuilder[int]().
			WithInitialCapacity(0).
			WithMaxCapacity(c.MaxCapacity).
			Build("Traced")
		l.AcceptHook(dbTracer)
		l.AcceptHook(steps)
		l.AcceptHook(growths)

		if err := fill(l, values); err != nil {
			log.Fatalf("Error filling the list: %v", err)
		}

		l.QuickSort(cmp.Compare[int])

		dbTracer.Terminate()
		exec.End()

		if err := recorder.Close(); err != nil {
			log.Fatalf("Error closing the trace: %v", err)
		}

		fmt.Printf("sorted: %v\n", l.ToSlice())
		fmt.Printf("capacities: %v\n", growths.Capacities())

		for _, s := range steps.Steps() {
			fmt.Printf("partition low=%d high=%d pivot=%d\n",
				s.Low, s.High, s.PivotIndex)
		}
	},
}

func init() {
	rootCmd.AddCommand(traceCmd)
	traceCmd.Flags().String("db", "",
		"The trace database path without the .sqlite3 extension.")
}
