package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sessim",
		Short: "Monte Carlo simulator for session ID brute-forcing",
		Long: `sessim estimates how many guesses an attacker needs to hit a valid
session ID, by simulating many independent attacks in parallel and
comparing the observed average against the closed-form expectation.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: error, warn, info, debug, trace (default from SESSIM_LOG_LEVEL or info)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newSimulateCmd(),
		newExpectedCmd(),
		newInitConfigCmd(),
	)
	return rootCmd
}
