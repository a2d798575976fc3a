package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/strcalc"
	"github.com/aretw0/strcalc/internal/config"
	"github.com/aretw0/strcalc/internal/logging"
	"github.com/aretw0/strcalc/pkg/adapters/memory"
	"github.com/aretw0/strcalc/pkg/adapters/redis"
	"github.com/spf13/cobra"
)

// loadConfig reads the config file and applies persistent flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	if cmd.Flags().Changed("upper-bound") {
		cfg.Policy.UpperBound, _ = cmd.Flags().GetInt64("upper-bound")
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level, _ = cmd.Flags().GetString("log-level")
	}
	return cfg, cfg.Validate()
}

func newLogger(cfg config.Config) (*slog.Logger, error) {
	return logging.FromConfig(cfg.Log.Level, cfg.Log.Format)
}

// buildCalculator wires the cache backend selected in cfg.
// The returned cleanup releases the backend.
func buildCalculator(ctx context.Context, cfg config.Config, logger *slog.Logger, extra ...strcalc.Option) (*strcalc.Calculator, func(), error) {
	opts := []strcalc.Option{
		strcalc.WithLogger(logger),
		strcalc.WithUpperBound(cfg.Policy.UpperBound),
	}
	cleanup := func() {}

	switch cfg.Cache.Backend {
	case config.CacheMemory:
		cache, err := memory.NewCache(cfg.Cache.Size)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, strcalc.WithCache(cache))
	case config.CacheRedis:
		cache := redis.New(cfg.Cache.RedisAddr, cfg.Cache.RedisPassword, cfg.Cache.RedisDB, redis.WithTTL(cfg.Cache.TTL))
		if err := cache.Ping(ctx); err != nil {
			cache.Close()
			return nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Cache.RedisAddr, err)
		}
		logger.Info("Result cache enabled", "backend", "redis", "addr", cfg.Cache.RedisAddr, "ttl", cfg.Cache.TTL)
		opts = append(opts, strcalc.WithCache(cache))
		cleanup = func() {
			if err := cache.Close(); err != nil {
				logger.Warn("Failed to close redis client", "error", err)
			}
		}
	}

	opts = append(opts, extra...)
	return strcalc.New(opts...), cleanup, nil
}
