package app

import "lifegrid/internal/core"

// CellAt translates a pointer position on the drawing surface into a grid
// coordinate. origin is the grid position of the visible window's top-left
// cell. ok is false when the pointer is outside the visible grid.
func CellAt(x, y, cellSize int, view, origin core.Size) (row, col int, ok bool) {
	if cellSize <= 0 || x < 0 || y < 0 {
		return 0, 0, false
	}
	vr, vc := y/cellSize, x/cellSize
	if vr >= view.Rows || vc >= view.Cols {
		return 0, 0, false
	}
	return origin.Rows + vr, origin.Cols + vc, true
}
