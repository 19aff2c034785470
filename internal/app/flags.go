package app

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"lifegrid/internal/life"
)

// RandomPreset selects a seeded random soup instead of a bundled pattern.
const RandomPreset = "random"

// Config represents the command-line parameters for the front ends.
type Config struct {
	Width    int
	Height   int
	CellSize int
	Backing  int
	HUDWidth int
	Interval time.Duration
	Preset   string
	Seed     int64
	Density  float64
	Play     bool

	Overrides KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:    500,
		Height:   500,
		CellSize: 10,
		Backing:  1,
		HUDWidth: 220,
		Interval: 100 * time.Millisecond,
		Seed:     42,
		Density:  0.25,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "drawing surface width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "drawing surface height in pixels")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.Backing, "backing", c.Backing, "backing grid multiplier (1 or 3)")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels, 0 hides it")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "time between generations while playing")
	fs.StringVar(&c.Preset, "preset", c.Preset, "preset to load at start ("+RandomPreset+" for a soup)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random soup")
	fs.Float64Var(&c.Density, "density", c.Density, "live cell probability for the random soup")
	fs.BoolVar(&c.Play, "play", c.Play, "start playing immediately")
	fs.Var(&c.Overrides, "set", "engine override in key=value form (repeatable); in a terminal rows and cols only shrink the board")
}

// Validate rejects values the front ends cannot start with.
func (c *Config) Validate() error {
	if c.CellSize <= 0 {
		return fmt.Errorf("cell size must be positive, got %d", c.CellSize)
	}
	if c.Width < c.CellSize || c.Height < c.CellSize {
		return fmt.Errorf("surface %dx%d is smaller than one %dpx cell", c.Width, c.Height, c.CellSize)
	}
	if c.Preset != "" && c.Preset != RandomPreset {
		if _, err := life.Preset(c.Preset); err != nil {
			return err
		}
	}
	return nil
}

// Life derives the engine configuration: the visible grid is the surface
// divided into cells, then -set overrides apply.
func (c *Config) Life() life.Config {
	lc := life.DefaultConfig()
	lc.Rows = c.Height / c.CellSize
	lc.Cols = c.Width / c.CellSize
	lc.Backing = c.Backing
	lc.Interval = c.Interval
	lc.Apply(c.Overrides.Map())
	return lc
}

// Populate fills a fresh engine with the configured start pattern.
func (c *Config) Populate(e *life.Engine) error {
	switch c.Preset {
	case "":
		return nil
	case RandomPreset:
		e.Randomize(c.Seed, c.Density)
		return nil
	default:
		return e.LoadPreset(c.Preset)
	}
}

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set appends one key=value pair.
func (l *KVList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// Map returns the pairs as a map; later keys win.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		out[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return out
}
