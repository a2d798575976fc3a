package ports

import "context"

// ResultCache memoizes successful calculation results.
// Only successes are stored; failures are always recomputed.
type ResultCache interface {
	// Get returns the cached sum for key.
	// Returns domain.ErrCacheMiss if nothing is stored.
	Get(ctx context.Context, key string) (int64, error)

	// Set stores sum under key, replacing any previous value.
	Set(ctx context.Context, key string, sum int64) error

	// Purge removes every entry owned by the cache.
	Purge(ctx context.Context) error
}
