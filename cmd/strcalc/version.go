package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/strcalc"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of strcalc",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "strcalc version %s\n", strings.TrimSpace(strcalc.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
