package automaton

import (
	"strconv"

	"seat-ca/internal/core"
)

var (
	_ core.Sim                 = (*Seating)(nil)
	_ core.ParameterProvider   = (*Seating)(nil)
	_ core.ConvergenceReporter = (*Seating)(nil)
)

// Seating steps a layout one tick at a time for interactive display.
type Seating struct {
	engine  *Engine
	initial *core.Grid
	cur     *core.Grid

	cells   []core.Cell
	display []uint8

	ticks     int
	converged bool
}

// NewSeating returns a Seating sim that starts from initial.
func NewSeating(e *Engine, initial *core.Grid) *Seating {
	s := &Seating{
		engine:  e,
		initial: initial,
		cur:     initial,
		cells:   make([]core.Cell, initial.Len()),
		display: make([]uint8, initial.Len()),
	}
	s.refresh()
	return s
}

// Name returns the simulation identifier.
func (s *Seating) Name() string { return "seats-" + s.engine.Strategy().String() }

// Size returns the grid dimensions.
func (s *Seating) Size() core.Size {
	rows, cols := s.cur.Dimensions()
	return core.Size{W: cols, H: rows}
}

// Cells exposes one value per tile: 0 floor, 1 empty seat, 2 occupied seat.
func (s *Seating) Cells() []uint8 { return s.display }

// Grid returns the current grid.
func (s *Seating) Grid() *core.Grid { return s.cur }

// Ticks returns the number of ticks applied since the last reset.
func (s *Seating) Ticks() int { return s.ticks }

// Converged reports whether the last tick changed nothing.
func (s *Seating) Converged() bool { return s.converged }

// Occupied returns the current number of occupied seats.
func (s *Seating) Occupied() int { return OccupiedCount(s.cur) }

// Reset restores the loaded layout when seed is zero. Any other seed installs
// a random layout with the same dimensions and floor density.
func (s *Seating) Reset(seed int64) {
	s.ticks = 0
	s.converged = false
	if seed == 0 {
		s.cur = s.initial
		s.refresh()
		return
	}
	rows, cols := s.initial.Dimensions()
	floors := s.initial.Count(func(c core.Cell) bool { return c == core.Floor })
	g, err := core.RandomLayout(seed, core.LayoutOptions{
		Rows:        rows,
		Cols:        cols,
		FloorChance: float64(floors) / float64(s.initial.Len()),
	})
	if err != nil {
		s.cur = s.initial
	} else {
		s.cur = g
	}
	s.refresh()
}

// Step advances the layout by one tick. It does nothing once converged.
func (s *Seating) Step() {
	if s.converged {
		return
	}
	next, changed := s.engine.Tick(s.cur)
	s.ticks++
	if changed == 0 {
		s.converged = true
	}
	s.cur = next
	s.refresh()
}

func (s *Seating) refresh() {
	s.cur.CopyCells(s.cells)
	for i, c := range s.cells {
		s.display[i] = uint8(c)
	}
}

// Parameters reports the rule settings and progress for the HUD.
func (s *Seating) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Rule",
			Params: []core.Parameter{
				{Key: "strategy", Label: "Strategy", Type: core.ParamTypeString, Value: s.engine.Strategy().String()},
				{Key: "threshold", Label: "Threshold", Type: core.ParamTypeInt, Value: strconv.Itoa(s.engine.Threshold())},
			},
		},
		{
			Name: "Progress",
			Params: []core.Parameter{
				{Key: "ticks", Label: "Ticks", Type: core.ParamTypeInt, Value: strconv.Itoa(s.ticks)},
				{Key: "occupied", Label: "Occupied", Type: core.ParamTypeInt, Value: strconv.Itoa(s.Occupied())},
				{Key: "converged", Label: "Converged", Type: core.ParamTypeBool, Value: strconv.FormatBool(s.converged)},
			},
		},
	}}
}
