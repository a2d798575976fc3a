package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"

	"github.com/aretw0/strcalc"
	"github.com/aretw0/strcalc/internal/cli"
	"github.com/aretw0/strcalc/internal/presentation/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Evaluate inputs line by line",
	Long: `Reads one input per line and prints its sum. Inside a line "\n" stands for a
newline, so '//;\n1;2' declares ";" as the delimiter.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		calc, cleanup, err := buildCalculator(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer cleanup()

		opts := cli.REPLOptions{Version: strings.TrimSpace(strcalc.Version)}
		if term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) {
			opts.Interactive = true
			opts.Render = tui.NewRenderer()
		}

		err = cli.NewREPL(calc, cmd.InOrStdin(), cmd.OutOrStdout(), opts).Run(ctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
