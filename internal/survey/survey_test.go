package survey

import (
	"context"
	"errors"
	"testing"

	"lifegrid/internal/life"
)

func testOptions(steps int) Options {
	cfg := life.DefaultConfig()
	cfg.Rows, cfg.Cols = 30, 30
	return Options{Config: cfg, Steps: steps, Workers: 2}
}

func TestOscillatorsReportPeriod(t *testing.T) {
	cases := map[string]int{
		"blinker": 2,
		"toad":    2,
		"pulser":  3,
	}
	for name, want := range cases {
		r, err := One(context.Background(), name, testOptions(20))
		if err != nil {
			t.Fatal(err)
		}
		if r.Extinct {
			t.Fatalf("%s went extinct", name)
		}
		if r.Period != want {
			t.Fatalf("%s period = %d, want %d", name, r.Period, want)
		}
		if r.Generation != 21 {
			t.Fatalf("%s generation = %d, want 21", name, r.Generation)
		}
	}
}

func TestExtinctionStopsEarly(t *testing.T) {
	opts := testOptions(50)
	opts.Config.Rows, opts.Config.Cols = 1, 3
	r, err := One(context.Background(), "blinker", opts)
	if err != nil {
		t.Fatal(err)
	}
	if !r.Extinct || r.Steps != 2 || r.Generation != 2 {
		t.Fatalf("blinker on a 1x3 strip should die after two steps: %+v", r)
	}
}

func TestBoxedGliderSettlesIntoBlock(t *testing.T) {
	opts := testOptions(10)
	opts.Config.Rows, opts.Config.Cols = 3, 3
	r, err := One(context.Background(), "glider", opts)
	if err != nil {
		t.Fatal(err)
	}
	if r.Extinct || r.Period != 1 || r.Population != 4 {
		t.Fatalf("glider in a 3x3 box should become a block: %+v", r)
	}
}

func TestRunKeepsOrderAndPropagatesErrors(t *testing.T) {
	names := []string{"toad", "blinker", "glider"}
	rs, err := Run(context.Background(), names, testOptions(5))
	if err != nil {
		t.Fatal(err)
	}
	for i, r := range rs {
		if r.Preset != names[i] {
			t.Fatalf("result %d is %s, want %s", i, r.Preset, names[i])
		}
	}

	_, err = Run(context.Background(), []string{"blinker", "nope"}, testOptions(5))
	if !errors.Is(err, life.ErrUnknownPreset) {
		t.Fatalf("err = %v, want ErrUnknownPreset", err)
	}
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := One(ctx, "acorn", testOptions(10)); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestAllCoversEveryPreset(t *testing.T) {
	opts := testOptions(3)
	opts.Config.Rows, opts.Config.Cols = 40, 40
	rs, err := All(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(rs) != len(life.PresetNames()) {
		t.Fatalf("got %d results", len(rs))
	}
	SortByPeak(rs)
	for i := 1; i < len(rs); i++ {
		if rs[i-1].Peak < rs[i].Peak {
			t.Fatal("results not sorted by peak")
		}
	}
}
