// Package cmd provides the command-line interface for exercising ArrayLists.
package cmd

import (
	"fmt"
	"log"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/arraylist/config"
	"github.com/sarchlab/arraylist/list"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "arraylist",
	Short: "arraylist sorts, traces, stresses, and monitors ArrayLists.",
	Long: `arraylist sorts, traces, stresses, and monitors ArrayLists. ` +
		`Settings are read from ARRAYLIST_* environment variables and ` +
		`.env files. Flags override them.`,
}

func init() {
	rootCmd.PersistentFlags().StringSlice("env", nil,
		"The .env files to load. Defaults to ./.env if it exists.")
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}

func mustLoadConfig(cmd *cobra.Command) config.Config {
	files, _ := cmd.Flags().GetStringSlice("env")

	c, err := config.Load(files...)
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	return c
}

func parseInts(args []string) ([]int, error) {
	values := make([]int, 0, len(args))

	for _, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", arg)
		}

		values = append(values, v)
	}

	return values, nil
}

func fill[T any](l list.List[T], values []T) error {
	for _, v := range values {
		if _, err := l.Add(v); err != nil {
			return err
		}
	}

	return nil
}
