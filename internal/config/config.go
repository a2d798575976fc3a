// Package config loads runtime settings for the strcalc binaries from a YAML
// file with STRCALC_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// EnvPrefix namespaces environment overrides.
const EnvPrefix = "STRCALC_"

// Cache backends.
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Policy PolicyConfig `mapstructure:"policy"`
	Cache  CacheConfig  `mapstructure:"cache"`
	Log    LogConfig    `mapstructure:"log"`
}

type ServerConfig struct {
	Port         string          `mapstructure:"port"`
	ReadTimeout  time.Duration   `mapstructure:"read_timeout"`
	WriteTimeout time.Duration   `mapstructure:"write_timeout"`
	RateLimit    RateLimitConfig `mapstructure:"rate_limit"`
}

type RateLimitConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	RPS     float64 `mapstructure:"rps"`
	Burst   int     `mapstructure:"burst"`
}

type PolicyConfig struct {
	// UpperBound of 0 disables the rule.
	UpperBound int64 `mapstructure:"upper_bound"`
}

type CacheConfig struct {
	Backend       string        `mapstructure:"backend"`
	Size          int           `mapstructure:"size"`
	RedisAddr     string        `mapstructure:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"`
	TTL           time.Duration `mapstructure:"ttl"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled: false,
				RPS:     30,
				Burst:   60,
			},
		},
		Cache: CacheConfig{
			Backend:   CacheNone,
			Size:      1024,
			RedisAddr: "localhost:6379",
			TTL:       10 * time.Minute,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// envKeys maps environment variables (without prefix) to config paths.
var envKeys = map[string][]string{
	"PORT":             {"server", "port"},
	"READ_TIMEOUT":     {"server", "read_timeout"},
	"WRITE_TIMEOUT":    {"server", "write_timeout"},
	"RATE_LIMIT":       {"server", "rate_limit", "enabled"},
	"RATE_LIMIT_RPS":   {"server", "rate_limit", "rps"},
	"RATE_LIMIT_BURST": {"server", "rate_limit", "burst"},
	"UPPER_BOUND":      {"policy", "upper_bound"},
	"CACHE":            {"cache", "backend"},
	"CACHE_SIZE":       {"cache", "size"},
	"CACHE_TTL":        {"cache", "ttl"},
	"REDIS_ADDR":       {"cache", "redis_addr"},
	"REDIS_PASSWORD":   {"cache", "redis_password"},
	"REDIS_DB":         {"cache", "redis_db"},
	"LOG_LEVEL":        {"log", "level"},
	"LOG_FORMAT":       {"log", "format"},
}

// Load reads the YAML file at path (skipped when empty or missing), applies
// environment overrides and validates the result.
func Load(path string) (Config, error) {
	raw := map[string]any{}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &raw); err != nil {
				return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
			}
			if raw == nil {
				raw = map[string]any{}
			}
		case errors.Is(err, os.ErrNotExist):
			// No file: defaults plus environment.
		default:
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	applyEnv(raw, os.LookupEnv)

	cfg := Default()
	if err := decode(raw, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Server.Port) == "" {
		return errors.New("server.port must not be empty")
	}
	switch c.Cache.Backend {
	case CacheNone, CacheMemory, CacheRedis:
	default:
		return fmt.Errorf("cache.backend: unknown backend %q", c.Cache.Backend)
	}
	if c.Cache.Size < 0 {
		return fmt.Errorf("cache.size must not be negative, got %d", c.Cache.Size)
	}
	if c.Server.RateLimit.Enabled && (c.Server.RateLimit.RPS <= 0 || c.Server.RateLimit.Burst <= 0) {
		return errors.New("server.rate_limit: rps and burst must be positive when enabled")
	}
	if c.Policy.UpperBound < 0 {
		return fmt.Errorf("policy.upper_bound must not be negative, got %d", c.Policy.UpperBound)
	}
	return nil
}

func decode(raw map[string]any, out *Config) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to build config decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func applyEnv(raw map[string]any, lookup func(string) (string, bool)) {
	for name, path := range envKeys {
		val, ok := lookup(EnvPrefix + name)
		if !ok {
			continue
		}
		setPath(raw, path, val)
	}
}

func setPath(m map[string]any, path []string, val any) {
	for _, key := range path[:len(path)-1] {
		next, ok := m[key].(map[string]any)
		if !ok {
			next = map[string]any{}
			m[key] = next
		}
		m = next
	}
	m[path[len(path)-1]] = val
}
