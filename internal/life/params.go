package life

import (
	"time"

	"lifegrid/internal/core"
)

const intervalKey = "interval_ms"

// Parameters reports the engine's current values for the HUD.
func (e *Engine) Parameters() core.ParameterSnapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	preset := e.preset
	if preset == "" {
		preset = "-"
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Run",
			Params: []core.Parameter{
				core.IntParam("generation", "Generation", e.generation),
				core.IntParam("population", "Population", e.grid.Population()),
				core.StringParam("state", "State", e.state.String()),
				core.IntParam(intervalKey, "Interval ms", int(e.interval/time.Millisecond)),
			},
		},
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("rows", "Rows", e.cfg.Rows),
				core.IntParam("cols", "Cols", e.cfg.Cols),
				core.IntParam("backing", "Backing", e.cfg.Backing),
				core.StringParam("preset", "Preset", preset),
			},
		},
	}}
}

// ParameterControls lists the values adjustable from the HUD.
func (e *Engine) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{
		Key:    intervalKey,
		Label:  "Interval ms",
		Step:   10,
		Min:    10,
		Max:    2000,
		HasMin: true,
		HasMax: true,
	}}
}

// SetIntParameter applies a HUD adjustment. Unknown keys report false.
func (e *Engine) SetIntParameter(key string, value int) bool {
	switch key {
	case intervalKey:
		ctrl := e.ParameterControls()[0]
		e.SetInterval(time.Duration(ctrl.Clamp(value)) * time.Millisecond)
		return true
	}
	return false
}
