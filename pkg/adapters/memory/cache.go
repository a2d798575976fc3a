package memory

import (
	"context"
	"fmt"

	"github.com/aretw0/strcalc/pkg/domain"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize bounds the cache when no size is given.
const DefaultCacheSize = 1024

// Cache implements ports.ResultCache with an in-process LRU.
// Safe for concurrent use.
type Cache struct {
	entries *lru.Cache[string, int64]
}

// NewCache creates an LRU cache holding at most size entries.
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	entries, err := lru.New[string, int64](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create lru cache: %w", err)
	}
	return &Cache{entries: entries}, nil
}

// Get returns the cached sum for key.
func (c *Cache) Get(ctx context.Context, key string) (int64, error) {
	sum, ok := c.entries.Get(key)
	if !ok {
		return 0, domain.ErrCacheMiss
	}
	return sum, nil
}

// Set stores sum under key, evicting the least recently used entry when full.
func (c *Cache) Set(ctx context.Context, key string, sum int64) error {
	c.entries.Add(key, sum)
	return nil
}

// Purge drops every entry.
func (c *Cache) Purge(ctx context.Context) error {
	c.entries.Purge()
	return nil
}
