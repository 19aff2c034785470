package life

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"lifegrid/internal/core"
)

var (
	// ErrInvalidCoordinate is returned for a row or column outside the grid.
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	// ErrUnknownPreset is returned when a preset name is not in the table.
	ErrUnknownPreset = errors.New("unknown preset")
)

// State is the run state of the engine.
type State int

const (
	Paused State = iota
	Playing
)

func (s State) String() string {
	if s == Playing {
		return "playing"
	}
	return "paused"
}

// Hooks are the collaborators the engine notifies. Any of them may be nil.
// Scheduler callbacks must run asynchronously from Schedule.
type Hooks struct {
	Renderer  core.Renderer
	Display   core.GenerationDisplay
	Scheduler core.Scheduler
}

// Engine owns the grid, the generation counter and the play state. All
// methods are safe for concurrent use; collaborators are called with the
// engine lock held and must not call back into the engine.
type Engine struct {
	mu sync.Mutex

	cfg    Config
	grid   *Grid
	next   *Grid
	margin core.Size

	generation int
	state      State
	interval   time.Duration
	cancel     func()
	armed      uint64
	preset     string

	hooks Hooks
}

// New returns an initialized engine.
func New(cfg Config, hooks Hooks) *Engine {
	cfg = cfg.normalized()
	e := &Engine{cfg: cfg, interval: cfg.Interval, hooks: hooks}
	e.Initialize(cfg.Rows, cfg.Cols)
	return e
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "life" }

// Initialize discards all state and allocates an all-dead grid with the given
// visible dimensions. It runs one evaluation pass over the empty grid, which
// redraws every cell and leaves the engine paused at generation 1.
func (e *Engine) Initialize(rows, cols int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.initializeLocked(rows, cols)
}

// Reset reinitializes the grid with its current dimensions.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.initializeLocked(e.cfg.Rows, e.cfg.Cols)
}

func (e *Engine) initializeLocked(rows, cols int) {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	e.cfg.Rows, e.cfg.Cols = rows, cols
	k := e.cfg.Backing
	e.margin = core.Size{Rows: rows * (k - 1) / 2, Cols: cols * (k - 1) / 2}
	e.grid = NewGrid(rows*k, cols*k)
	e.next = NewGrid(rows*k, cols*k)
	e.preset = ""
	e.stepLocked()
	e.generation = 1
	e.showGeneration()
}

// Size returns the dimensions of the allocated grid.
func (e *Engine) Size() core.Size {
	e.mu.Lock()
	defer e.mu.Unlock()
	return core.Size{Rows: e.grid.rows, Cols: e.grid.cols}
}

// Viewport returns the visible dimensions and the grid coordinate of the
// visible window's top-left cell.
func (e *Engine) Viewport() (size, origin core.Size) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return core.Size{Rows: e.cfg.Rows, Cols: e.cfg.Cols}, e.margin
}

// SetCell sets the alive flag of (row, col). With updateExistence the
// existence latch is set when alive is true; it is never cleared.
func (e *Engine) SetCell(row, col int, alive, updateExistence bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.setCellLocked(e.grid, row, col, alive, updateExistence)
}

func (e *Engine) setCellLocked(g *Grid, row, col int, alive, updateExistence bool) error {
	if !g.InBounds(row, col) {
		return fmt.Errorf("set cell (%d,%d) on %dx%d grid: %w", row, col, g.rows, g.cols, ErrInvalidCoordinate)
	}
	c := g.set(row, col, alive, updateExistence)
	e.draw(row, col, c)
	return nil
}

// Toggle flips (row, col) as interactive placement does. The existence latch
// is left untouched.
func (e *Engine) Toggle(row, col int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.setCellLocked(e.grid, row, col, !e.grid.Alive(row, col), false); err != nil {
		return fmt.Errorf("toggle: %w", err)
	}
	return nil
}

// Cell returns the cell at (row, col).
func (e *Engine) Cell(row, col int) (core.Cell, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.grid.InBounds(row, col) {
		return core.Cell{}, fmt.Errorf("cell (%d,%d): %w", row, col, ErrInvalidCoordinate)
	}
	return e.grid.At(row, col), nil
}

// CountLiveNeighbors counts live cells around (row, col), clipped at the
// grid edges.
func (e *Engine) CountLiveNeighbors(row, col int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.grid.LiveNeighbors(row, col)
}

// Step advances the grid by one generation. Every cell of the new generation
// is computed from the previous one only. When the result is empty the engine
// pauses and the counter is left unchanged.
func (e *Engine) Step() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stepLocked()
}

func (e *Engine) stepLocked() {
	cur, nxt := e.grid, e.next
	copy(nxt.cells, cur.cells)

	survive := false
	for row := 0; row < cur.rows; row++ {
		for col := 0; col < cur.cols; col++ {
			alive := nextState(cur.At(row, col).Alive, cur.LiveNeighbors(row, col))
			c := nxt.set(row, col, alive, true)
			e.draw(row, col, c)
			if alive {
				survive = true
			}
		}
	}
	e.grid, e.next = nxt, cur

	if survive {
		e.generation++
		return
	}
	e.pauseLocked()
}

// Tick is the scheduler callback: one step followed by a display update.
// It does nothing while paused.
func (e *Engine) Tick() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tickLocked()
}

func (e *Engine) tickLocked() {
	if e.state != Playing {
		return
	}
	e.stepLocked()
	e.showGeneration()
}

// Play starts automatic progression. A non-positive interval keeps the
// current one. It is a no-op when already playing.
func (e *Engine) Play(interval time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == Playing {
		return
	}
	if interval > 0 {
		e.interval = interval
	}
	e.state = Playing
	e.arm()
}

// Pause halts automatic progression. It is a no-op when already paused.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pauseLocked()
}

func (e *Engine) pauseLocked() {
	if e.state == Paused {
		return
	}
	e.state = Paused
	e.disarm()
}

// SetInterval changes the play interval, re-arming the timer when playing.
func (e *Engine) SetInterval(interval time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if interval <= 0 {
		return
	}
	e.interval = interval
	if e.state == Playing {
		e.disarm()
		e.arm()
	}
}

// Interval returns the current play interval.
func (e *Engine) Interval() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.interval
}

// arm registers a tick callback bound to the current arming, so a callback
// already in flight when the timer is disarmed does not step a later run.
func (e *Engine) arm() {
	e.armed++
	if e.hooks.Scheduler == nil {
		return
	}
	id := e.armed
	e.cancel = e.hooks.Scheduler.Schedule(e.interval, func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		if e.armed != id {
			return
		}
		e.tickLocked()
	})
}

func (e *Engine) disarm() {
	e.armed++
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
}

// State returns the run state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Generation returns the generation counter.
func (e *Engine) Generation() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.generation
}

// Population returns the number of live cells.
func (e *Engine) Population() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.grid.Population()
}

// Snapshot returns a copy of the current grid.
func (e *Engine) Snapshot() *Grid {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.grid.Clone()
}

// Preset returns the name of the last loaded preset, or "" after a reset.
func (e *Engine) Preset() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.preset
}

// Randomize reinitializes the grid and brings each visible cell to life with
// probability density, using a deterministic sequence for seed.
func (e *Engine) Randomize(seed int64, density float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.initializeLocked(e.cfg.Rows, e.cfg.Cols)
	rng := core.NewRNG(seed)
	for row := 0; row < e.cfg.Rows; row++ {
		for col := 0; col < e.cfg.Cols; col++ {
			if !rng.Chance(density) {
				continue
			}
			r, c := e.margin.Rows+row, e.margin.Cols+col
			e.draw(r, c, e.grid.set(r, c, true, false))
		}
	}
}

// Redraw sends every visible cell to the renderer again, e.g. after the
// drawing surface was cleared.
func (e *Engine) Redraw() {
	e.mu.Lock()
	defer e.mu.Unlock()
	for row := 0; row < e.cfg.Rows; row++ {
		for col := 0; col < e.cfg.Cols; col++ {
			r, c := e.margin.Rows+row, e.margin.Cols+col
			e.draw(r, c, e.grid.At(r, c))
		}
	}
}

func (e *Engine) draw(row, col int, c core.Cell) {
	if e.hooks.Renderer == nil {
		return
	}
	vr, vc := row-e.margin.Rows, col-e.margin.Cols
	if vr < 0 || vr >= e.cfg.Rows || vc < 0 || vc >= e.cfg.Cols {
		return
	}
	e.hooks.Renderer.DrawCell(vr, vc, c)
}

func (e *Engine) showGeneration() {
	if e.hooks.Display != nil {
		e.hooks.Display.ShowGeneration(e.generation)
	}
}
