package life

import (
	"strconv"
	"time"

	"lifegrid/internal/core"
)

// Config controls the engine's dimensions and play speed.
type Config struct {
	// Rows and Cols are the visible grid dimensions.
	Rows int
	Cols int

	// Backing multiplies the allocated grid around the visible window. 1 gives
	// a plain bounded grid; 3 keeps a hidden margin of one window on each side.
	Backing int

	Interval time.Duration
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Rows: 50, Cols: 50, Backing: 1, Interval: core.DefaultInterval}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	c.Apply(cfg)
	return c
}

// Apply overrides fields present in cfg. Unparseable or out-of-range values
// are ignored.
func (c *Config) Apply(cfg map[string]string) {
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Cols = parsed
		}
	}
	if v, ok := cfg["backing"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 && parsed%2 == 1 {
			c.Backing = parsed
		}
	}
	if v, ok := cfg["interval_ms"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Interval = time.Duration(parsed) * time.Millisecond
		}
	}
}

func (c Config) normalized() Config {
	if c.Rows <= 0 {
		c.Rows = 1
	}
	if c.Cols <= 0 {
		c.Cols = 1
	}
	// Even factors cannot centre the window.
	if c.Backing < 1 || c.Backing%2 == 0 {
		c.Backing = 1
	}
	if c.Interval <= 0 {
		c.Interval = core.DefaultInterval
	}
	return c
}
