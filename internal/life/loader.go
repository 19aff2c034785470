package life

import "fmt"

// LoadPreset resets the grid and stamps the named preset centred in the
// visible window.
func (e *Engine) LoadPreset(name string) error {
	p, err := Preset(name)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.loadLocked(p); err != nil {
		return err
	}
	e.preset = name
	return nil
}

// LoadPattern resets the grid and stamps p centred in the visible window.
func (e *Engine) LoadPattern(p Pattern) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.loadLocked(p)
}

// PatternOrigin returns the grid coordinate where the top-left cell of a
// pattern of the given size lands.
func (e *Engine) PatternOrigin(height, width int) (row, col int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.originLocked(height, width)
}

func (e *Engine) originLocked(height, width int) (row, col int) {
	row = e.margin.Rows + floorDiv(e.cfg.Rows-height, 2)
	col = e.margin.Cols + floorDiv(e.cfg.Cols-width, 2)
	return row, col
}

func (e *Engine) loadLocked(p Pattern) error {
	h, w := p.Height(), p.Width()
	oy, ox := e.originLocked(h, w)
	// Refuse before touching the grid so a failed load leaves the board intact.
	if h > 0 && w > 0 && (!e.grid.InBounds(oy, ox) || !e.grid.InBounds(oy+h-1, ox+w-1)) {
		return fmt.Errorf("pattern %dx%d does not fit %dx%d grid: %w", h, w, e.grid.rows, e.grid.cols, ErrInvalidCoordinate)
	}

	e.initializeLocked(e.cfg.Rows, e.cfg.Cols)
	for py := 0; py < h; py++ {
		for px := 0; px < w; px++ {
			alive := px < len(p[py]) && p[py][px] != 0
			if err := e.setCellLocked(e.grid, oy+py, ox+px, alive, false); err != nil {
				return err
			}
		}
	}
	return nil
}

// floorDiv divides rounding towards negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
