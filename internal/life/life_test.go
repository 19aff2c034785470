package life

import (
	"errors"
	"strings"
	"testing"
	"time"

	"lifegrid/internal/core"
)

type manualScheduler struct {
	fn        func()
	interval  time.Duration
	scheduled int
	cancelled int
}

func (s *manualScheduler) Schedule(interval time.Duration, fn func()) func() {
	s.fn = fn
	s.interval = interval
	s.scheduled++
	return func() {
		s.cancelled++
		s.fn = nil
	}
}

func (s *manualScheduler) fire() {
	if s.fn != nil {
		s.fn()
	}
}

func newEngine(rows, cols int) *Engine {
	cfg := DefaultConfig()
	cfg.Rows = rows
	cfg.Cols = cols
	return New(cfg, Hooks{})
}

func mustSet(t *testing.T, e *Engine, row, col int) {
	t.Helper()
	if err := e.SetCell(row, col, true, true); err != nil {
		t.Fatalf("SetCell(%d,%d): %v", row, col, err)
	}
}

func aliveSet(g *Grid) map[[2]int]bool {
	out := map[[2]int]bool{}
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if g.At(r, c).Alive {
				out[[2]int{r, c}] = true
			}
		}
	}
	return out
}

func expectAlive(t *testing.T, g *Grid, want ...[2]int) {
	t.Helper()
	got := aliveSet(g)
	if len(got) != len(want) {
		t.Fatalf("alive cells = %v, want %v", got, want)
	}
	for _, w := range want {
		if !got[w] {
			t.Fatalf("cell %v should be alive; alive = %v", w, got)
		}
	}
}

func TestInitializeStartsEmptyAndPaused(t *testing.T) {
	e := newEngine(4, 6)
	if got := e.Generation(); got != 1 {
		t.Fatalf("generation = %d, want 1", got)
	}
	if e.State() != Paused {
		t.Fatalf("state = %v, want paused", e.State())
	}
	if got := e.Size(); got != (core.Size{Rows: 4, Cols: 6}) {
		t.Fatalf("size = %+v", got)
	}
	if e.Population() != 0 {
		t.Fatal("fresh grid must be empty")
	}
}

func TestNeighborCountingIsClippedAtEdges(t *testing.T) {
	e := newEngine(4, 5)
	for r := 0; r < 4; r++ {
		for c := 0; c < 5; c++ {
			mustSet(t, e, r, c)
		}
	}
	cases := []struct {
		row, col, want int
	}{
		{0, 0, 3},
		{3, 4, 3},
		{0, 2, 5},
		{2, 0, 5},
		{1, 1, 8},
		{2, 3, 8},
	}
	for _, tc := range cases {
		if got := e.CountLiveNeighbors(tc.row, tc.col); got != tc.want {
			t.Fatalf("neighbors(%d,%d) = %d, want %d", tc.row, tc.col, got, tc.want)
		}
	}
}

func TestNeighborCountingIgnoresDeadAndSelf(t *testing.T) {
	e := newEngine(3, 3)
	mustSet(t, e, 1, 1)
	mustSet(t, e, 0, 0)
	if got := e.CountLiveNeighbors(1, 1); got != 1 {
		t.Fatalf("neighbors = %d, want 1", got)
	}
	if got := e.CountLiveNeighbors(2, 2); got != 1 {
		t.Fatalf("neighbors = %d, want 1", got)
	}
}

func TestBirthRule(t *testing.T) {
	cases := []struct {
		name      string
		neighbors [][2]int
		born      bool
	}{
		{"two", [][2]int{{0, 0}, {0, 2}}, false},
		{"three", [][2]int{{0, 0}, {0, 2}, {2, 1}}, true},
		{"four", [][2]int{{0, 0}, {0, 2}, {2, 0}, {2, 2}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := newEngine(3, 3)
			for _, n := range tc.neighbors {
				mustSet(t, e, n[0], n[1])
			}
			e.Step()
			c, err := e.Cell(1, 1)
			if err != nil {
				t.Fatal(err)
			}
			if c.Alive != tc.born {
				t.Fatalf("centre alive = %v, want %v", c.Alive, tc.born)
			}
		})
	}
}

func TestSurvivalAndDeathRules(t *testing.T) {
	for n := 0; n <= 8; n++ {
		want := n == 2 || n == 3
		if got := nextState(true, n); got != want {
			t.Fatalf("live cell with %d neighbors -> %v, want %v", n, got, want)
		}
		if got := nextState(false, n); got != (n == 3) {
			t.Fatalf("dead cell with %d neighbors -> %v", n, got)
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	e := newEngine(5, 5)
	mustSet(t, e, 2, 1)
	mustSet(t, e, 2, 2)
	mustSet(t, e, 2, 3)

	e.Step()
	expectAlive(t, e.Snapshot(), [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})

	e.Step()
	expectAlive(t, e.Snapshot(), [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})

	prev := e.Snapshot()
	for i := 0; i < 6; i++ {
		e.Step()
		e.Step()
		cur := e.Snapshot()
		if !aliveEqual(prev, cur) {
			t.Fatalf("period-2 broken after %d double steps", i+1)
		}
		prev = cur
	}
	if got := e.Generation(); got != 15 {
		t.Fatalf("generation = %d, want 15", got)
	}
}

func aliveEqual(a, b *Grid) bool {
	x, y := aliveSet(a), aliveSet(b)
	if len(x) != len(y) {
		return false
	}
	for k := range x {
		if !y[k] {
			return false
		}
	}
	return true
}

func TestStepIsDeterministic(t *testing.T) {
	a := newEngine(12, 12)
	b := newEngine(12, 12)
	a.Randomize(42, 0.4)
	b.Randomize(42, 0.4)
	if !a.Snapshot().Equal(b.Snapshot()) {
		t.Fatal("same seed should give the same soup")
	}
	for i := 0; i < 10; i++ {
		a.Step()
		b.Step()
		if !a.Snapshot().Equal(b.Snapshot()) {
			t.Fatalf("engines diverged at step %d", i+1)
		}
	}
}

func TestStepReadsOnlyPreviousGeneration(t *testing.T) {
	// An L-tromino becomes a block. In-place updates would let the newly
	// born corner feed back into its neighbors within the same pass.
	e := newEngine(4, 4)
	mustSet(t, e, 1, 1)
	mustSet(t, e, 1, 2)
	mustSet(t, e, 2, 1)
	e.Step()
	expectAlive(t, e.Snapshot(), [2]int{1, 1}, [2]int{1, 2}, [2]int{2, 1}, [2]int{2, 2})
}

func TestExtinctionPausesWithoutIncrement(t *testing.T) {
	sched := &manualScheduler{}
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols = 5, 5
	e := New(cfg, Hooks{Scheduler: sched})
	mustSet(t, e, 2, 2)

	e.Play(0)
	if e.State() != Playing {
		t.Fatal("expected playing")
	}
	sched.fire()

	if e.State() != Paused {
		t.Fatalf("state = %v, want paused after extinction", e.State())
	}
	if got := e.Generation(); got != 1 {
		t.Fatalf("generation = %d, want 1", got)
	}
	if sched.cancelled != 1 {
		t.Fatalf("timer cancelled %d times, want 1", sched.cancelled)
	}
	if e.Population() != 0 {
		t.Fatal("isolated cell must die")
	}
}

func TestPlayPauseIdempotent(t *testing.T) {
	sched := &manualScheduler{}
	var shown []int
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols = 5, 5
	e := New(cfg, Hooks{Scheduler: sched, Display: core.DisplayFunc(func(gen int) { shown = append(shown, gen) })})
	mustSet(t, e, 2, 1)
	mustSet(t, e, 2, 2)
	mustSet(t, e, 2, 3)

	e.Pause()
	if sched.cancelled != 0 {
		t.Fatal("pause while paused must not touch the timer")
	}

	e.Play(250 * time.Millisecond)
	e.Play(10 * time.Millisecond)
	if sched.scheduled != 1 {
		t.Fatalf("scheduled %d times, want 1", sched.scheduled)
	}
	if sched.interval != 250*time.Millisecond {
		t.Fatalf("interval = %v", sched.interval)
	}

	sched.fire()
	sched.fire()
	if got := e.Generation(); got != 3 {
		t.Fatalf("generation = %d, want 3", got)
	}
	if len(shown) < 2 || shown[len(shown)-2] != 2 || shown[len(shown)-1] != 3 {
		t.Fatalf("display updates = %v", shown)
	}

	e.Pause()
	e.Pause()
	if sched.cancelled != 1 {
		t.Fatalf("cancelled %d times, want 1", sched.cancelled)
	}
	e.Tick()
	if got := e.Generation(); got != 3 {
		t.Fatal("Tick must not step while paused")
	}
}

func TestStaleTickIsIgnored(t *testing.T) {
	sched := &manualScheduler{}
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols = 5, 5
	e := New(cfg, Hooks{Scheduler: sched})
	mustSet(t, e, 2, 1)
	mustSet(t, e, 2, 2)
	mustSet(t, e, 2, 3)

	e.Play(0)
	stale := sched.fn
	e.Pause()
	e.Play(0)
	stale()
	if got := e.Generation(); got != 1 {
		t.Fatalf("stale callback advanced generation to %d", got)
	}
}

func TestSetIntervalRearmsWhilePlaying(t *testing.T) {
	sched := &manualScheduler{}
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols = 5, 5
	e := New(cfg, Hooks{Scheduler: sched})
	e.SetInterval(50 * time.Millisecond)
	if sched.scheduled != 0 {
		t.Fatal("paused engine must not arm the timer")
	}
	e.Play(0)
	if sched.interval != 50*time.Millisecond {
		t.Fatalf("interval = %v", sched.interval)
	}
	if !e.SetIntParameter("interval_ms", 5) {
		t.Fatal("interval should be adjustable")
	}
	if sched.scheduled != 2 || sched.cancelled != 1 {
		t.Fatalf("scheduled=%d cancelled=%d", sched.scheduled, sched.cancelled)
	}
	if got := e.Interval(); got != 10*time.Millisecond {
		t.Fatalf("interval = %v, want clamped 10ms", got)
	}
	if e.SetIntParameter("nope", 1) {
		t.Fatal("unknown key must be rejected")
	}
}

func TestExistenceLatchIsMonotonic(t *testing.T) {
	e := newEngine(5, 5)
	mustSet(t, e, 2, 2)
	c, _ := e.Cell(2, 2)
	if !c.HasExisted {
		t.Fatal("latch not set")
	}
	if err := e.SetCell(2, 2, false, true); err != nil {
		t.Fatal(err)
	}
	e.Step()
	c, _ = e.Cell(2, 2)
	if c.Alive || !c.HasExisted {
		t.Fatalf("cell = %+v, want dead ghost", c)
	}

	e.Reset()
	c, _ = e.Cell(2, 2)
	if c.HasExisted {
		t.Fatal("reset must clear the latch")
	}
}

func TestExistenceLatchNeverClearsDuringRun(t *testing.T) {
	e := newEngine(16, 16)
	e.Randomize(9, 0.35)
	seen := make([]bool, 16*16)
	for i := 0; i < 30; i++ {
		e.Step()
		g := e.Snapshot()
		for r := 0; r < 16; r++ {
			for c := 0; c < 16; c++ {
				has := g.At(r, c).HasExisted
				if seen[r*16+c] && !has {
					t.Fatalf("latch cleared at (%d,%d) step %d", r, c, i+1)
				}
				seen[r*16+c] = has
			}
		}
	}
}

func TestToggleDoesNotLatch(t *testing.T) {
	e := newEngine(3, 3)
	if err := e.Toggle(1, 1); err != nil {
		t.Fatal(err)
	}
	c, _ := e.Cell(1, 1)
	if !c.Alive || c.HasExisted {
		t.Fatalf("cell = %+v, want alive without latch", c)
	}
	if err := e.Toggle(1, 1); err != nil {
		t.Fatal(err)
	}
	c, _ = e.Cell(1, 1)
	if c.Alive {
		t.Fatal("second toggle should kill the cell")
	}
}

func TestInvalidCoordinates(t *testing.T) {
	e := newEngine(3, 4)
	bad := [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 4}}
	for _, b := range bad {
		if err := e.SetCell(b[0], b[1], true, true); !errors.Is(err, ErrInvalidCoordinate) {
			t.Fatalf("SetCell%v err = %v", b, err)
		}
		if err := e.Toggle(b[0], b[1]); !errors.Is(err, ErrInvalidCoordinate) {
			t.Fatalf("Toggle%v err = %v", b, err)
		}
		if _, err := e.Cell(b[0], b[1]); !errors.Is(err, ErrInvalidCoordinate) {
			t.Fatalf("Cell%v err = %v", b, err)
		}
	}
	if e.Population() != 0 {
		t.Fatal("failed calls must not change the grid")
	}
	if err := e.Toggle(9, 9); err == nil || !strings.HasPrefix(err.Error(), "toggle: ") {
		t.Fatalf("Toggle error = %v, want toggle context", err)
	}
}

func TestRendererSeesEveryVisibleCell(t *testing.T) {
	buf := core.NewByteGrid(6, 4)
	draws := 0
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols = 4, 6
	e := New(cfg, Hooks{Renderer: core.RendererFunc(func(row, col int, c core.Cell) {
		draws++
		buf.DrawCell(row, col, c)
	})})
	if draws != 24 {
		t.Fatalf("initialize drew %d cells, want 24", draws)
	}

	draws = 0
	mustSet(t, e, 1, 2)
	if draws != 1 {
		t.Fatalf("SetCell drew %d cells, want 1", draws)
	}
	if buf.At(2, 1) != core.CellLive {
		t.Fatal("live cell not drawn")
	}
	e.Step()
	if buf.At(2, 1) != core.CellGhost {
		t.Fatal("dead cell that lived should be drawn as ghost")
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"rows": "20", "cols": "x", "backing": "2", "interval_ms": "250"})
	if c.Rows != 20 || c.Cols != 50 || c.Backing != 1 || c.Interval != 250*time.Millisecond {
		t.Fatalf("config = %+v", c)
	}
	if FromMap(nil) != DefaultConfig() {
		t.Fatal("nil map should give defaults")
	}
}

func TestParametersSnapshot(t *testing.T) {
	e := newEngine(5, 5)
	if err := e.LoadPreset("blinker"); err != nil {
		t.Fatal(err)
	}
	snap := e.Parameters()
	if p, ok := snap.Lookup("population"); !ok || p.Value != "3" {
		t.Fatalf("population = %+v", p)
	}
	if p, ok := snap.Lookup("preset"); !ok || p.Value != "blinker" {
		t.Fatalf("preset = %+v", p)
	}
	if p, ok := snap.Lookup("state"); !ok || p.Value != "paused" {
		t.Fatalf("state = %+v", p)
	}
}

func TestRedrawCoversViewportOnly(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols, cfg.Backing = 2, 3, 3
	var cells [][2]int
	e := New(cfg, Hooks{Renderer: core.RendererFunc(func(row, col int, c core.Cell) {
		cells = append(cells, [2]int{row, col})
	})})
	cells = nil
	e.Redraw()
	if len(cells) != 6 {
		t.Fatalf("redraw drew %d cells, want 6", len(cells))
	}
	for _, c := range cells {
		if c[0] < 0 || c[0] >= 2 || c[1] < 0 || c[1] >= 3 {
			t.Fatalf("cell %v outside viewport", c)
		}
	}
}

func TestRandomizeIsSeededAndStaysInViewport(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols, cfg.Backing = 8, 8, 3
	a := New(cfg, Hooks{})
	b := New(cfg, Hooks{})
	a.Randomize(7, 0.5)
	b.Randomize(7, 0.5)
	if !a.Snapshot().Equal(b.Snapshot()) {
		t.Fatal("same seed should give the same board")
	}
	if a.State() != Paused || a.Generation() != 1 {
		t.Fatalf("state = %v gen = %d after randomize", a.State(), a.Generation())
	}
	for cell := range aliveSet(a.Snapshot()) {
		if cell[0] < 8 || cell[0] >= 16 || cell[1] < 8 || cell[1] >= 16 {
			t.Fatalf("random cell %v outside the visible window", cell)
		}
	}

	a.Randomize(7, 1)
	if got := a.Population(); got != 64 {
		t.Fatalf("population = %d at density 1, want 64", got)
	}
}
