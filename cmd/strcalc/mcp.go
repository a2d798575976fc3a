package main

import (
	"log"
	"os"

	"github.com/aretw0/strcalc/internal/logging"
	"github.com/aretw0/strcalc/pkg/adapters/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Serves the calculator as an MCP tool ("add") over stdio, together with the
"strcalc://syntax" resource describing the input format.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		level, err := logging.ParseLevel(cfg.Log.Level)
		if err != nil {
			return err
		}

		// Stdout carries JSON-RPC; logs go to stderr.
		log.SetOutput(os.Stderr)
		logger := logging.NewJSONTo(os.Stderr, level)

		calc, cleanup, err := buildCalculator(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer cleanup()

		logger.Info("Starting strcalc MCP server (stdio)")
		return mcp.NewServer(calc, logger).ServeStdio()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
