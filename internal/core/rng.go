package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance returns true with probability p.
func (r *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	return r.r.Float64() < p
}

// LayoutOptions controls random layout generation.
type LayoutOptions struct {
	Rows, Cols int
	// FloorChance is the probability that a tile is floor.
	FloorChance float64
	// OccupiedChance is the probability that a seat starts occupied.
	OccupiedChance float64
}

// RandomLayout builds a grid with the requested dimensions. Equal seeds give
// equal layouts.
func RandomLayout(seed int64, opts LayoutOptions) (*Grid, error) {
	if opts.Rows <= 0 || opts.Cols <= 0 {
		return nil, ErrEmptyInput
	}
	rng := NewRNG(seed)
	cells := make([]Cell, opts.Rows*opts.Cols)
	for i := range cells {
		switch {
		case rng.Chance(opts.FloorChance):
			cells[i] = Floor
		case rng.Chance(opts.OccupiedChance):
			cells[i] = OccupiedSeat
		default:
			cells[i] = EmptySeat
		}
	}
	return FromCells(opts.Rows, opts.Cols, cells)
}
