package strcalc

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/aretw0/strcalc/internal/calc"
	"github.com/aretw0/strcalc/pkg/domain"
	"github.com/aretw0/strcalc/pkg/ports"
)

// Calculator is the high-level entry point for the library.
// It wraps the pure calculation core with optional caching, logging and hooks.
// A Calculator is safe for concurrent use.
type Calculator struct {
	policy domain.Policy
	cache  ports.ResultCache
	hooks  domain.LifecycleHooks
	logger *slog.Logger
}

// Option defines a functional option for configuring the Calculator.
type Option func(*Calculator)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Calculator) {
		c.logger = logger
	}
}

// WithPolicy replaces the evaluation policy.
func WithPolicy(policy domain.Policy) Option {
	return func(c *Calculator) {
		c.policy = policy
	}
}

// WithUpperBound excludes values greater than bound from the sum.
// A bound of zero disables the rule (the default).
func WithUpperBound(bound int64) Option {
	return func(c *Calculator) {
		c.policy.UpperBound = bound
	}
}

// WithCache memoizes successful results in cache.
func WithCache(cache ports.ResultCache) Option {
	return func(c *Calculator) {
		c.cache = cache
	}
}

// WithLifecycleHooks registers observability hooks. Repeated use merges hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(c *Calculator) {
		c.hooks = c.hooks.Merge(hooks)
	}
}

// New initializes a Calculator.
func New(opts ...Option) *Calculator {
	c := &Calculator{}
	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return c
}

// Policy returns the evaluation policy in effect.
func (c *Calculator) Policy() domain.Policy {
	return c.policy
}

// Add sums the numbers encoded in raw.
//
// Errors are *domain.MalformedHeaderError, *domain.InvalidNumberError or
// *domain.NegativeNumberError; use errors.Is with the domain sentinels or domain.KindOf.
func (c *Calculator) Add(ctx context.Context, raw string) (int64, error) {
	start := time.Now()
	event := &domain.CalculationEvent{Timestamp: start, InputBytes: len(raw)}
	defer func() {
		event.Duration = time.Since(start)
		c.emit(ctx, event)
	}()

	key := c.cacheKey(raw)
	if sum, ok := c.lookup(ctx, key); ok {
		event.Cached = true
		return sum, nil
	}

	out, err := calc.Run(raw, c.policy)
	event.Tokens = out.Tokens
	event.Custom = out.Spec.Custom
	if err != nil {
		event.Kind = domain.KindOf(err)
		event.Err = err
		return 0, err
	}

	c.store(ctx, key, out.Sum)
	return out.Sum, nil
}

// Calculate is Add expressed as the boundary envelope
// {success, result} / {success: false, error}.
func (c *Calculator) Calculate(ctx context.Context, raw string) domain.Result {
	sum, err := c.Add(ctx, raw)
	if err != nil {
		return domain.Failed(raw, err)
	}
	return domain.Succeeded(raw, sum)
}

// PurgeCache empties the result cache. It returns domain.ErrNoCache when
// the Calculator was built without WithCache.
func (c *Calculator) PurgeCache(ctx context.Context) error {
	if c.cache == nil {
		return domain.ErrNoCache
	}
	if err := c.cache.Purge(ctx); err != nil {
		return fmt.Errorf("failed to purge result cache: %w", err)
	}
	c.logger.Info("result cache purged")
	return nil
}

func (c *Calculator) lookup(ctx context.Context, key string) (int64, bool) {
	if c.cache == nil {
		return 0, false
	}
	sum, err := c.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			c.logger.Warn("cache lookup failed", "error", err)
		}
		return 0, false
	}
	return sum, true
}

func (c *Calculator) store(ctx context.Context, key string, sum int64) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Set(ctx, key, sum); err != nil {
		c.logger.Warn("cache store failed", "error", err)
	}
}

func (c *Calculator) emit(ctx context.Context, e *domain.CalculationEvent) {
	c.logger.Debug("calculation",
		"input_len", e.InputBytes,
		"tokens", e.Tokens,
		"cached", e.Cached,
		"outcome", e.Outcome(),
		"duration", e.Duration,
	)
	if c.hooks.OnCalculate != nil {
		c.hooks.OnCalculate(ctx, e)
	}
}

// cacheKey binds the key to the policy so different bounds never share entries.
func (c *Calculator) cacheKey(raw string) string {
	h := sha256.New()
	h.Write([]byte(strconv.FormatInt(c.policy.UpperBound, 10)))
	h.Write([]byte{0})
	h.Write([]byte(raw))
	return hex.EncodeToString(h.Sum(nil))
}
