package life

import "lifegrid/internal/core"

// Grid is a fixed-size matrix of cells indexed by (row, col).
type Grid struct {
	rows, cols int
	cells      []core.Cell
}

// NewGrid allocates an all-dead grid.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &Grid{rows: rows, cols: cols, cells: make([]core.Cell, rows*cols)}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (row, col) lies inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At returns the cell at (row, col). The coordinates must be in bounds.
func (g *Grid) At(row, col int) core.Cell { return g.cells[row*g.cols+col] }

// Alive reports whether (row, col) is in bounds and alive.
func (g *Grid) Alive(row, col int) bool {
	return g.InBounds(row, col) && g.cells[row*g.cols+col].Alive
}

func (g *Grid) set(row, col int, alive, updateExistence bool) core.Cell {
	c := &g.cells[row*g.cols+col]
	c.Alive = alive
	if alive && updateExistence {
		c.HasExisted = true
	}
	return *c
}

// Population counts live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		if c.Alive {
			n++
		}
	}
	return n
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	out := &Grid{rows: g.rows, cols: g.cols, cells: make([]core.Cell, len(g.cells))}
	copy(out.cells, g.cells)
	return out
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// LiveNeighbors counts live cells among the up to eight cells surrounding
// (row, col). Positions outside the grid do not count.
func (g *Grid) LiveNeighbors(row, col int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		ny := row + dy
		if ny < 0 || ny >= g.rows {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := col + dx
			if nx < 0 || nx >= g.cols {
				continue
			}
			if g.cells[ny*g.cols+nx].Alive {
				n++
			}
		}
	}
	return n
}

// nextState applies the birth and survival rule.
func nextState(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}
