// Package neighbor decides which cells influence a seat during a tick.
package neighbor

import (
	"errors"
	"fmt"
	"strings"

	"seat-ca/internal/core"
)

// Strategy selects how neighbors are discovered.
type Strategy uint8

const (
	// Adjacent uses the eight touching cells that lie inside the grid.
	Adjacent Strategy = iota
	// Visible uses the first seat seen along each of the eight rays.
	Visible
)

// ErrUnknownStrategy is returned by ParseStrategy for unrecognised names.
var ErrUnknownStrategy = errors.New("unknown neighbor strategy")

// directions lists the eight compass offsets as (dRow, dCol).
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// ParseStrategy maps a strategy name to its value.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "adjacent":
		return Adjacent, nil
	case "visible":
		return Visible, nil
	}
	return Adjacent, fmt.Errorf("%w: %q (valid: adjacent, visible)", ErrUnknownStrategy, name)
}

// String returns the strategy name accepted by ParseStrategy.
func (s Strategy) String() string {
	switch s {
	case Adjacent:
		return "adjacent"
	case Visible:
		return "visible"
	default:
		return fmt.Sprintf("strategy(%d)", uint8(s))
	}
}

// DefaultThreshold is the occupied-neighbor count at which an occupied seat
// empties under this strategy.
func (s Strategy) DefaultThreshold() int {
	if s == Visible {
		return 5
	}
	return 4
}

// Neighbors returns the cells relevant to the occupancy rule at pos, at most
// one per direction.
func (s Strategy) Neighbors(g *core.Grid, pos core.Position) []core.Cell {
	return s.AppendNeighbors(make([]core.Cell, 0, len(directions)), g, pos)
}

// AppendNeighbors appends the neighbors of pos to dst and returns the
// extended slice.
func (s Strategy) AppendNeighbors(dst []core.Cell, g *core.Grid, pos core.Position) []core.Cell {
	for _, d := range directions {
		if c, ok := s.look(g, pos.Row, pos.Col, d[0], d[1]); ok {
			dst = append(dst, c)
		}
	}
	return dst
}

// CountOccupied returns how many neighbors of (row, col) are occupied seats.
// It stops early once limit is reached; pass a limit of 8 or more to count
// every neighbor.
func (s Strategy) CountOccupied(g *core.Grid, row, col, limit int) int {
	n := 0
	for _, d := range directions {
		if c, ok := s.look(g, row, col, d[0], d[1]); ok && c == core.OccupiedSeat {
			n++
			if n >= limit {
				return n
			}
		}
	}
	return n
}

func (s Strategy) look(g *core.Grid, row, col, dr, dc int) (core.Cell, bool) {
	if s == Visible {
		return castRay(g, row, col, dr, dc)
	}
	r, c := row+dr, col+dc
	if !g.InBounds(r, c) {
		return core.Floor, false
	}
	return g.At(r, c), true
}

// castRay walks from (row, col) along (dr, dc), skipping floor, and returns
// the first seat before the boundary.
func castRay(g *core.Grid, row, col, dr, dc int) (core.Cell, bool) {
	r, c := row+dr, col+dc
	for g.InBounds(r, c) {
		if cell := g.At(r, c); cell != core.Floor {
			return cell, true
		}
		r += dr
		c += dc
	}
	return core.Floor, false
}
