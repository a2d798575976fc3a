package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/strcalc/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunResultCacheContract runs a suite of tests to verify that a ResultCache implementation
// adheres to the defined interface contract.
func RunResultCacheContract(t *testing.T, cache ResultCache) {
	ctx := context.Background()
	key := "contract-test-" + time.Now().Format("20060102150405")

	t.Run("Set and Get", func(t *testing.T) {
		err := cache.Set(ctx, key, 42)
		require.NoError(t, err, "Set should not return error")

		got, err := cache.Get(ctx, key)
		require.NoError(t, err, "Get should not return error")
		assert.Equal(t, int64(42), got)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, key, 1))
		require.NoError(t, cache.Set(ctx, key, 2))

		got, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, int64(2), got)
	})

	t.Run("Negative and zero values", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, key+"-zero", 0))
		got, err := cache.Get(ctx, key+"-zero")
		require.NoError(t, err)
		assert.Equal(t, int64(0), got)
	})

	t.Run("Get Non-Existent", func(t *testing.T) {
		_, err := cache.Get(ctx, "non-existent-"+key)
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
	})

	t.Run("Purge", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, key, 7))
		require.NoError(t, cache.Purge(ctx))

		_, err := cache.Get(ctx, key)
		assert.ErrorIs(t, err, domain.ErrCacheMiss, "Get after Purge should return ErrCacheMiss")
	})
}
