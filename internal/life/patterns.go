package life

import (
	"fmt"
	"sort"
)

// Pattern is a rectangular stamp of live (1) and dead (0) cells, indexed
// [row][col].
type Pattern [][]uint8

// Width returns the number of columns, taken from the first row.
func (p Pattern) Width() int {
	if len(p) == 0 {
		return 0
	}
	return len(p[0])
}

// Height returns the number of rows.
func (p Pattern) Height() int { return len(p) }

var presets = map[string]Pattern{
	"galaxy": {
		{1, 1, 0, 1, 1, 1, 1, 1, 1},
		{1, 1, 0, 1, 1, 1, 1, 1, 1},
		{1, 1, 0, 0, 0, 0, 0, 0, 0},
		{1, 1, 0, 0, 0, 0, 0, 1, 1},
		{1, 1, 0, 0, 0, 0, 0, 1, 1},
		{1, 1, 0, 0, 0, 0, 0, 1, 1},
		{0, 0, 0, 0, 0, 0, 0, 1, 1},
		{1, 1, 1, 1, 1, 1, 0, 1, 1},
		{1, 1, 1, 1, 1, 1, 0, 1, 1},
	},
	"rPentomino": {
		{0, 1, 1},
		{1, 1, 0},
		{0, 1, 0},
	},
	"blinker": {
		{1, 1, 1},
	},
	"toad": {
		{0, 1, 1, 1},
		{1, 1, 1, 0},
	},
	"pulser": {
		{0, 0, 1, 1, 1, 0, 0, 0, 1, 1, 1, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{1, 0, 0, 0, 0, 1, 0, 1, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 1, 0, 1, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 1, 0, 1, 0, 0, 0, 0, 1},
		{0, 0, 1, 1, 1, 0, 0, 0, 1, 1, 1, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 1, 1, 1, 0, 0, 0, 1, 1, 1, 0, 0},
		{1, 0, 0, 0, 0, 1, 0, 1, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 1, 0, 1, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 1, 0, 1, 0, 0, 0, 0, 1},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 1, 1, 1, 0, 0, 0, 1, 1, 1, 0, 0},
	},
	"pentadecathlon": {
		{0, 1, 0},
		{0, 1, 0},
		{1, 0, 1},
		{0, 1, 0},
		{0, 1, 0},
		{0, 1, 0},
		{0, 1, 0},
		{1, 0, 1},
		{0, 1, 0},
		{0, 1, 0},
	},
	"glider": {
		{1, 1, 1},
		{1, 0, 0},
		{0, 1, 0},
	},
	"lightweightSpaceship": {
		{0, 1, 0, 0, 1},
		{1, 0, 0, 0, 0},
		{1, 0, 0, 0, 1},
		{1, 1, 1, 1, 0},
	},
	"middleweightSpaceship": {
		{0, 0, 0, 1, 0, 0},
		{0, 1, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0},
		{1, 0, 0, 0, 0, 1},
		{1, 1, 1, 1, 1, 0},
	},
	"heavyweightSpaceship": {
		{0, 0, 0, 1, 1, 0, 0},
		{0, 1, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0},
		{1, 0, 0, 0, 0, 0, 1},
		{1, 1, 1, 1, 1, 1, 0},
	},
	"acorn": {
		{0, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 0, 0, 0},
		{1, 1, 0, 0, 1, 1, 1},
	},
	"dieHard": {
		{0, 0, 0, 0, 0, 0, 1, 0},
		{1, 1, 0, 0, 0, 0, 0, 0},
		{0, 1, 0, 0, 0, 1, 1, 1},
	},
}

// Preset returns the named pattern.
func Preset(name string) (Pattern, error) {
	p, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("preset %q: %w", name, ErrUnknownPreset)
	}
	return p, nil
}

// PresetNames lists the bundled presets in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
