package ratelimit

import (
	"os"
	"strconv"
	"time"
)

// Config holds rate limiting configuration.
type Config struct {
	Enabled bool
	Limit   int           // requests per window
	Window  time.Duration // refill window
	Burst   int           // bucket capacity
}

// DefaultConfig returns the default limits: 30 analyses per minute per client
// with a burst of 10.
func DefaultConfig() *Config {
	return &Config{
		Enabled: true,
		Limit:   30,
		Window:  time.Minute,
		Burst:   10,
	}
}

// LoadConfig builds a Config from RATE_LIMIT_* environment variables,
// falling back to defaults for anything unset or unparseable.
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Enabled = enabled
		}
	}
	if v := os.Getenv("RATE_LIMIT_PER_MINUTE"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil && limit > 0 {
			cfg.Limit = limit
		}
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		if burst, err := strconv.Atoi(v); err == nil && burst > 0 {
			cfg.Burst = burst
		}
	}

	return cfg
}
