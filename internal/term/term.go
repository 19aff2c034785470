// Package term runs the engine in a terminal using tcell. Each cell is two
// columns wide so the board keeps a roughly square aspect.
package term

import (
	"context"
	"fmt"
	"time"

	"lifegrid/internal/app"
	"lifegrid/internal/core"
	"lifegrid/internal/life"

	"github.com/gdamore/tcell/v2"
)

const cellWidth = 2

var (
	liveStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	ghostStyle  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(253, 203, 110))
	emptyStyle  = tcell.StyleDefault
	statusStyle = tcell.StyleDefault.Reverse(true)
)

// generationEvent carries a display update from the engine to the event loop.
type generationEvent struct{ gen int }

type quitEvent struct{}

// UI owns the screen and wires keyboard and mouse input to the engine.
type UI struct {
	screen  tcell.Screen
	engine  *life.Engine
	cfg     *app.Config
	view    core.Size
	origin  core.Size
	presets []string
	idx     int
	message string
	buttons tcell.ButtonMask
}

// New sizes the engine to the initialized screen, leaving the bottom row for
// the status line, and loads the configured start pattern. The rows and cols
// overrides may shrink the board but never grow it past the screen.
func New(screen tcell.Screen, cfg *app.Config, sched core.Scheduler) (*UI, error) {
	w, h := screen.Size()
	lc := cfg.Life()
	lc.Rows = h - 1
	lc.Cols = w / cellWidth
	lc.Apply(cfg.Overrides.Map())
	lc.Rows = min(lc.Rows, h-1)
	lc.Cols = min(lc.Cols, w/cellWidth)
	if lc.Rows < 1 || lc.Cols < 1 {
		return nil, fmt.Errorf("terminal %dx%d is too small", w, h)
	}
	if sched == nil {
		sched = core.TickerScheduler{}
	}

	u := &UI{screen: screen, cfg: cfg, presets: life.PresetNames(), idx: -1}
	u.engine = life.New(lc, life.Hooks{
		Renderer:  core.RendererFunc(u.drawCell),
		Scheduler: sched,
		Display: core.DisplayFunc(func(gen int) {
			// Runs under the engine lock; defer the status redraw to the event loop.
			_ = screen.PostEvent(tcell.NewEventInterrupt(generationEvent{gen: gen}))
		}),
	})
	u.view, u.origin = u.engine.Viewport()
	screen.EnableMouse()

	if err := cfg.Populate(u.engine); err != nil {
		return nil, err
	}
	for i, name := range u.presets {
		if name == cfg.Preset {
			u.idx = i
		}
	}
	if cfg.Play {
		u.engine.Play(0)
	}
	u.drawStatus()
	screen.Show()
	return u, nil
}

// Engine exposes the underlying simulation.
func (u *UI) Engine() *life.Engine { return u.engine }

// Run processes events until the user quits or ctx is cancelled.
func (u *UI) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		_ = u.screen.PostEvent(tcell.NewEventInterrupt(quitEvent{}))
	})
	defer stop()
	defer u.engine.Pause()

	for {
		ev := u.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if u.HandleEvent(ev) {
			return ctx.Err()
		}
	}
}

// HandleEvent applies one event and reports whether the UI should exit.
func (u *UI) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventInterrupt:
		switch ev.Data().(type) {
		case quitEvent:
			return true
		case generationEvent:
			u.drawStatus()
		}
	case *tcell.EventResize:
		u.screen.Clear()
		u.engine.Redraw()
		u.drawStatus()
		u.screen.Sync()
		return false
	case *tcell.EventMouse:
		pressed := ev.Buttons()&tcell.Button1 != 0 && u.buttons&tcell.Button1 == 0
		u.buttons = ev.Buttons()
		if !pressed {
			return false
		}
		x, y := ev.Position()
		if row, col, ok := app.CellAt(x/cellWidth, y, 1, u.view, u.origin); ok {
			u.report(u.engine.Toggle(row, col))
			u.drawStatus()
		}
	case *tcell.EventKey:
		if u.handleKey(ev) {
			return true
		}
		u.drawStatus()
	}
	u.screen.Show()
	return false
}

func (u *UI) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
	default:
		return false
	}
	switch ev.Rune() {
	case 'q':
		return true
	case ' ':
		if u.engine.State() == life.Playing {
			u.engine.Pause()
		} else {
			u.engine.Play(0)
		}
	case 'n':
		if u.engine.State() == life.Paused {
			u.engine.Step()
		}
	case 'r':
		u.engine.Reset()
		u.message = ""
	case 's':
		u.engine.Randomize(time.Now().UnixNano(), u.cfg.Density)
	case 'p':
		u.cyclePreset(1)
	case 'P':
		u.cyclePreset(-1)
	}
	return false
}

func (u *UI) cyclePreset(dir int) {
	n := len(u.presets)
	if n == 0 {
		return
	}
	u.idx = ((u.idx+dir)%n + n) % n
	u.report(u.engine.LoadPreset(u.presets[u.idx]))
}

func (u *UI) report(err error) {
	if err != nil {
		u.message = err.Error()
		return
	}
	u.message = ""
}

func (u *UI) drawCell(row, col int, c core.Cell) {
	r, style := ' ', emptyStyle
	switch {
	case c.Alive:
		r, style = '█', liveStyle
	case c.HasExisted:
		r, style = '░', ghostStyle
	}
	for i := 0; i < cellWidth; i++ {
		u.screen.SetContent(col*cellWidth+i, row, r, nil, style)
	}
}

func (u *UI) drawStatus() {
	w, _ := u.screen.Size()
	preset := u.engine.Preset()
	if preset == "" {
		preset = "-"
	}
	line := fmt.Sprintf(" gen %d  pop %d  %s  %s  [space] play/pause [n] step [r] reset [p] preset [q] quit",
		u.engine.Generation(), u.engine.Population(), u.engine.State(), preset)
	if u.message != "" {
		line = " " + u.message
	}
	y := u.view.Rows
	runes := []rune(line)
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		u.screen.SetContent(x, y, r, nil, statusStyle)
	}
}
