// Package survey runs presets headlessly and reports how they evolve.
package survey

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"lifegrid/internal/life"

	"golang.org/x/sync/errgroup"
)

// Result summarizes one preset run.
type Result struct {
	Preset     string
	Steps      int
	Generation int
	Population int
	Peak       int
	Extinct    bool
	// Period is the oscillation period detected at the end of the run, or 0
	// when the final state was not seen within the look-back window.
	Period int
}

func (r Result) String() string {
	status := "alive"
	switch {
	case r.Extinct:
		status = "extinct"
	case r.Period == 1:
		status = "still life"
	case r.Period > 1:
		status = fmt.Sprintf("period %d", r.Period)
	}
	return fmt.Sprintf("%-22s gen %-5d pop %-5d peak %-5d %s", r.Preset, r.Generation, r.Population, r.Peak, status)
}

// Options controls a survey.
type Options struct {
	Config   life.Config
	Steps    int
	Workers  int
	LookBack int
}

// Run simulates every named preset concurrently, each on its own engine, and
// returns results in the order of names.
func Run(ctx context.Context, names []string, opts Options) ([]Result, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := make([]Result, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, name := range names {
		g.Go(func() error {
			r, err := One(ctx, name, opts)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// All surveys every bundled preset.
func All(ctx context.Context, opts Options) ([]Result, error) {
	return Run(ctx, life.PresetNames(), opts)
}

// One runs a single preset until it dies out or opts.Steps steps were taken.
func One(ctx context.Context, name string, opts Options) (Result, error) {
	e := life.New(opts.Config, life.Hooks{})
	if err := e.LoadPreset(name); err != nil {
		return Result{}, err
	}
	lookBack := opts.LookBack
	if lookBack <= 0 {
		lookBack = 32
	}

	r := Result{Preset: name, Population: e.Population()}
	r.Peak = r.Population
	history := []*life.Grid{e.Snapshot()}
	for r.Steps < opts.Steps {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		e.Step()
		r.Steps++
		pop := e.Population()
		if pop > r.Peak {
			r.Peak = pop
		}
		if pop == 0 {
			r.Extinct = true
			break
		}
		history = append(history, e.Snapshot())
		if len(history) > lookBack+1 {
			history = history[1:]
		}
	}
	r.Generation = e.Generation()
	r.Population = e.Population()
	if !r.Extinct {
		r.Period = period(history)
	}
	return r, nil
}

func period(history []*life.Grid) int {
	last := len(history) - 1
	for p := 1; p <= last; p++ {
		if sameAlive(history[last], history[last-p]) {
			return p
		}
	}
	return 0
}

func sameAlive(a, b *life.Grid) bool {
	for r := 0; r < a.Rows(); r++ {
		for c := 0; c < a.Cols(); c++ {
			if a.At(r, c).Alive != b.At(r, c).Alive {
				return false
			}
		}
	}
	return true
}

// SortByPeak orders results by descending peak population, then name.
func SortByPeak(rs []Result) {
	sort.SliceStable(rs, func(i, j int) bool {
		if rs[i].Peak != rs[j].Peak {
			return rs[i].Peak > rs[j].Peak
		}
		return rs[i].Preset < rs[j].Preset
	})
}
