//go:build ebiten

package ui

import (
	"image/color"

	"lifegrid/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws optional visuals on top of the grid.
type Overlay struct {
	cols, rows int
	cellSize   int
	showGrid   bool
	lineColor  color.Color
}

// NewOverlay constructs an overlay for a rows*cols grid with grid lines on.
func NewOverlay(rows, cols, cellSize int) *Overlay {
	return &Overlay{
		rows:      rows,
		cols:      cols,
		cellSize:  cellSize,
		showGrid:  true,
		lineColor: color.RGBA{R: 150, G: 150, B: 150, A: 255},
	}
}

// Update toggles the grid lines with G.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showGrid || o.cellSize < 3 {
		return
	}
	render.DrawGridLines(screen, o.cols, o.rows, o.cellSize, o.lineColor)
}
