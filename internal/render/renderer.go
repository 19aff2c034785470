//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridPainter uploads a cell buffer into an image and draws it scaled up to
// the cell size.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	palette []color.RGBA
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int, palette []color.RGBA) *GridPainter {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h), palette: palette}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the provided cells into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, cellSize int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillPaletteRGBA(gp.buf, cells, gp.palette)
	gp.img.ReplacePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cellSize), float64(cellSize))
	dst.DrawImage(gp.img, op)
}

// DrawGridLines strokes the cell borders over a w*h grid.
func DrawGridLines(dst *ebiten.Image, w, h, cellSize int, clr color.Color) {
	width := float32(w * cellSize)
	height := float32(h * cellSize)
	for i := 0; i <= w; i++ {
		x := float32(i*cellSize) + 0.5
		vector.StrokeLine(dst, x, 0, x, height, 1, clr, false)
	}
	for i := 0; i <= h; i++ {
		y := float32(i*cellSize) + 0.5
		vector.StrokeLine(dst, 0, y, width, y, 1, clr, false)
	}
}
