package core

// Render buffer values stored by ByteGrid.
const (
	CellEmpty uint8 = iota
	CellLive
	CellGhost
)

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order. It
// implements Renderer so front ends can keep a cheap copy of what is on screen.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// At returns the value at (x, y), or CellEmpty outside the grid.
func (g *ByteGrid) At(x, y int) uint8 {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		return CellEmpty
	}
	return g.data[g.Index(x, y)]
}

// DrawCell records the display value for the cell. Cells outside the buffer
// are ignored.
func (g *ByteGrid) DrawCell(row, col int, c Cell) {
	if col < 0 || col >= g.W || row < 0 || row >= g.H {
		return
	}
	g.data[g.Index(col, row)] = Encode(c)
}

// Encode maps a cell to its render buffer value.
func Encode(c Cell) uint8 {
	switch {
	case c.Alive:
		return CellLive
	case c.HasExisted:
		return CellGhost
	default:
		return CellEmpty
	}
}
