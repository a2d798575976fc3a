package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aretw0/strcalc/internal/config"
	"github.com/aretw0/strcalc/pkg/domain"
	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the result cache",
}

var cachePurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Drop every cached result",
	Long:  `Empties the result cache configured under "cache". Useful for the shared redis backend.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}

		if err := purgeCache(cmd.Context(), cfg, logger); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "result cache cleared")
		return nil
	},
}

func purgeCache(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	calc, cleanup, err := buildCalculator(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := calc.PurgeCache(ctx); err != nil {
		if errors.Is(err, domain.ErrNoCache) {
			return fmt.Errorf("cache.backend is %q: nothing to purge", cfg.Cache.Backend)
		}
		return err
	}
	return nil
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cachePurgeCmd)
}
