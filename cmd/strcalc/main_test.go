package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/strcalc/internal/config"
	"github.com/aretw0/strcalc/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCalculator(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{name: "no cache", mutate: func(c *config.Config) {}},
		{name: "memory", mutate: func(c *config.Config) { c.Cache.Backend = config.CacheMemory }},
		{name: "redis", mutate: func(c *config.Config) {
			c.Cache.Backend = config.CacheRedis
			c.Cache.RedisAddr = mr.Addr()
		}},
		{name: "redis unreachable", wantErr: true, mutate: func(c *config.Config) {
			c.Cache.Backend = config.CacheRedis
			c.Cache.RedisAddr = "127.0.0.1:1"
		}},
		{name: "upper bound", mutate: func(c *config.Config) { c.Policy.UpperBound = 1000 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)

			calc, cleanup, err := buildCalculator(ctx, cfg, logging.NewNop())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			defer cleanup()

			sum, err := calc.Add(ctx, "1,2\n3")
			require.NoError(t, err)
			assert.Equal(t, int64(6), sum)
			assert.Equal(t, cfg.Policy.UpperBound, calc.Policy().UpperBound)
		})
	}

	// The redis case stored its result under the adapter prefix.
	assert.NotEmpty(t, mr.Keys())
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	versionCmd.Run(versionCmd, nil)

	assert.True(t, strings.HasPrefix(out.String(), "strcalc version "))
	assert.NotContains(t, strings.TrimSuffix(out.String(), "\n"), "\n")
}

func TestReadInput(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		stdin string
		want  string
	}{
		{name: "argument unescaped", args: []string{`//;\n1;2`}, want: "//;\n1;2"},
		{name: "echo newline dropped", stdin: "1,2\n", want: "1,2"},
		{name: "crlf dropped", stdin: "1,2\r\n", want: "1,2"},
		{name: "only one newline dropped", stdin: "1,2\n\n", want: "1,2\n"},
		{name: "no newline", stdin: "1,2", want: "1,2"},
		{name: "multi-line body", stdin: "//;\n1;2\n", want: "//;\n1;2"},
		{name: "header line keeps its newline", stdin: "//;\n", want: "//;\n"},
		{name: "empty", stdin: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readInput(tt.args, strings.NewReader(tt.stdin))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPurgeCache(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	cfg := config.Default()
	cfg.Cache.Backend = config.CacheRedis
	cfg.Cache.RedisAddr = mr.Addr()

	calc, cleanup, err := buildCalculator(ctx, cfg, logging.NewNop())
	require.NoError(t, err)
	_, err = calc.Add(ctx, "1,2")
	require.NoError(t, err)
	cleanup()
	require.NotEmpty(t, mr.Keys())

	require.NoError(t, purgeCache(ctx, cfg, logging.NewNop()))
	assert.Empty(t, mr.Keys())

	err = purgeCache(ctx, config.Default(), logging.NewNop())
	assert.ErrorContains(t, err, "nothing to purge")
}
