package cmd

import (
	"cmp"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sarchlab/arraylist/list"
	"github.com/sarchlab/arraylist/model"
	"github.com/sarchlab/arraylist/monitoring"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a monitor over demo lists.",
	Long: "`serve --n 100000 --open` fills a list of integers and a list of " +
		"users, sorts them, and serves their state until interrupted.",
	Run: func(cmd *cobra.Command, _ []string) {
		c := mustLoadConfig(cmd)
		if cmd.Flags().Changed("port") {
			c.Port, _ = cmd.Flags().GetInt("port")
		}

		n, _ := cmd.Flags().GetInt("n")
		open, _ := cmd.Flags().GetBool("open")

		monitor := monitoring.NewMonitor().WithPortNumber(c.Port)

		ints := list.NewLocked[int](list.MakeBuilder[int]().
			WithMaxCapacity(max(c.MaxCapacity, list.DefaultCapacity)).
			Build("Ints"))
		users := list.NewLocked[model.User](
			list.MakeBuilder[model.User]().Build("Users"))

		monitor.RegisterList(ints)
		monitor.RegisterList(users)

		url := monitor.StartServer()
		if open {
			if err := monitor.OpenInBrowser(url + "/api/lists"); err != nil {
				log.Printf("Cannot open the browser: %v", err)
			}
		}

		if err := fill(users, model.SampleUsers()); err != nil {
			log.Fatalf("Error filling the users: %v", err)
		}

		users.QuickSort(model.CompareByID)

		go fillAndSort(monitor, ints, n)

		waitForInterrupt()

		if err := monitor.StopServer(); err != nil {
			log.Printf("Error stopping the monitor: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().Int("port", 0,
		"The port of the monitor. 0 picks a random port.")
	serveCmd.Flags().Bool("open", false, "Open the monitor in a browser.")
	serveCmd.Flags().Int("n", 100000,
		"The number of integers in the demo list.")
}

func fillAndSort(monitor *monitoring.Monitor, l *list.Locked[int], n int) {
	bar := monitor.CreateProgressBar("Fill Ints", uint64(n))
	defer monitor.CompleteProgressBar(bar)

	r := rand.New(rand.NewPCG(uint64(n), 0))

	for i := 0; i < n; i++ {
		bar.IncrementInProgress(1)

		if _, err := l.Add(r.IntN(n + 1)); err != nil {
			fmt.Fprintf(os.Stderr, "Stopped filling Ints: %v\n", err)
			return
		}

		bar.MoveInProgressToFinished(1)
	}

	l.Sort(cmp.Compare[int])
}

func waitForInterrupt() {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
}
