package core

import "time"

// Size describes the dimensions of a grid in cells.
type Size struct {
	Rows int
	Cols int
}

// Cell is one grid position. HasExisted latches the first time the cell
// becomes alive and is only used to tell "never lived" apart from "lived
// before" when drawing.
type Cell struct {
	Alive      bool
	HasExisted bool
}

// Renderer redraws a single cell. Coordinates are relative to the visible
// window of the grid.
type Renderer interface {
	DrawCell(row, col int, c Cell)
}

// GenerationDisplay shows the current generation counter.
type GenerationDisplay interface {
	ShowGeneration(gen int)
}

// Scheduler arms a repeating callback. The returned cancel function disarms
// it and must not block, since it may be invoked from inside fn.
type Scheduler interface {
	Schedule(interval time.Duration, fn func()) (cancel func())
}

// RendererFunc adapts a plain function to the Renderer interface.
type RendererFunc func(row, col int, c Cell)

// DrawCell calls f(row, col, c).
func (f RendererFunc) DrawCell(row, col int, c Cell) { f(row, col, c) }

// DisplayFunc adapts a plain function to the GenerationDisplay interface.
type DisplayFunc func(gen int)

// ShowGeneration calls f(gen).
func (f DisplayFunc) ShowGeneration(gen int) { f(gen) }
