//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/life"
	"lifegrid/internal/render"
	"lifegrid/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the life engine to the ebiten.Game interface.
type Game struct {
	cfg     *Config
	engine  *life.Engine
	cells   *core.ByteGrid
	sched   *core.FrameScheduler
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	view, origin core.Size
	background   color.Color

	presets   []string
	presetIdx int
}

// New constructs a Game from the configuration and loads the start pattern.
func New(cfg *Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	lc := cfg.Life()
	g := &Game{
		cfg:        cfg,
		cells:      core.NewByteGrid(lc.Cols, lc.Rows),
		sched:      core.NewFrameScheduler(),
		background: render.DefaultPalette[core.CellEmpty],
		presets:    life.PresetNames(),
		presetIdx:  -1,
	}
	g.engine = life.New(lc, life.Hooks{
		Renderer:  g.cells,
		Scheduler: g.sched,
		Display:   core.DisplayFunc(showGeneration),
	})
	g.view, g.origin = g.engine.Viewport()
	g.painter = render.NewGridPainter(g.view.Cols, g.view.Rows, render.DefaultPalette)
	g.overlay = ui.NewOverlay(g.view.Rows, g.view.Cols, cfg.CellSize)
	g.hud = ui.NewHUD(g.engine, cfg.HUDWidth)

	if err := cfg.Populate(g.engine); err != nil {
		return nil, err
	}
	for i, name := range g.presets {
		if name == cfg.Preset {
			g.presetIdx = i
		}
	}
	if cfg.Play {
		g.engine.Play(0)
	}
	return g, nil
}

// Engine exposes the underlying simulation.
func (g *Game) Engine() *life.Engine { return g.engine }

func showGeneration(gen int) {
	ebiten.SetWindowTitle(fmt.Sprintf("life - generation %d", gen))
}

// Update handles per-frame input and advances the simulation when its
// interval has elapsed.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.engine.State() == life.Playing {
			g.engine.Pause()
		} else {
			g.engine.Play(0)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && g.engine.State() == life.Paused {
		g.engine.Step()
		showGeneration(g.engine.Generation())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.engine.Reset()
		g.hud.SetMessage("")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.engine.Randomize(time.Now().UnixNano(), g.cfg.Density)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		dir := 1
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			dir = -1
		}
		g.cyclePreset(dir)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if row, col, ok := CellAt(x, y, g.cfg.CellSize, g.view, g.origin); ok {
			if err := g.engine.Toggle(row, col); err != nil {
				g.hud.SetMessage(err.Error())
			}
		}
	}

	g.overlay.Update()
	g.hud.Update(g.gridWidth())
	g.sched.Advance()
	return nil
}

func (g *Game) cyclePreset(dir int) {
	n := len(g.presets)
	if n == 0 {
		return
	}
	g.presetIdx = ((g.presetIdx+dir)%n + n) % n
	if err := g.engine.LoadPreset(g.presets[g.presetIdx]); err != nil {
		g.hud.SetMessage(err.Error())
		return
	}
	g.hud.SetMessage("")
}

// Draw renders the current grid, overlay and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	g.painter.Blit(screen, g.cells.Cells(), g.cfg.CellSize)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.gridWidth(), g.gridHeight())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.gridWidth() + g.hud.Width(), g.gridHeight()
}

func (g *Game) gridWidth() int  { return g.view.Cols * g.cfg.CellSize }
func (g *Game) gridHeight() int { return g.view.Rows * g.cfg.CellSize }
