package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "strcalc",
	Short: "strcalc sums numbers encoded in a string",
	Long: `strcalc adds integers separated by commas, newlines or custom delimiters
declared in a "//" header, e.g. "//[*][%]\n1*2%3".`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "strcalc.yaml", "Path to the YAML config file")
	rootCmd.PersistentFlags().Int64("upper-bound", 0, "Exclude numbers greater than this from the sum (0 = no bound)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
}
