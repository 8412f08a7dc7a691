package core

import (
	"fmt"
	"strings"
)

// Cell is the state of a single tile in the waiting area.
type Cell uint8

const (
	Floor Cell = iota
	EmptySeat
	OccupiedSeat
)

// Symbol returns the input alphabet character for the cell.
func (c Cell) Symbol() byte {
	switch c {
	case EmptySeat:
		return 'L'
	case OccupiedSeat:
		return '#'
	default:
		return '.'
	}
}

// String implements fmt.Stringer.
func (c Cell) String() string {
	switch c {
	case Floor:
		return "floor"
	case EmptySeat:
		return "empty"
	case OccupiedSeat:
		return "occupied"
	default:
		return fmt.Sprintf("cell(%d)", uint8(c))
	}
}

// IsSeat reports whether the cell is a seat, occupied or not.
func (c Cell) IsSeat() bool { return c == EmptySeat || c == OccupiedSeat }

// ParseCell maps an input symbol to its cell value.
func ParseCell(b byte) (Cell, bool) {
	switch b {
	case '.':
		return Floor, true
	case 'L':
		return EmptySeat, true
	case '#':
		return OccupiedSeat, true
	}
	return Floor, false
}

// Position addresses a cell by row and column.
type Position struct {
	Row, Col int
}

// Grid stores a rectangular layout of cells in row-major order. A Grid is
// never modified after construction.
type Grid struct {
	rows, cols int
	data       []Cell
}

// Load parses a layout from its text lines.
func Load(lines []string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyInput
	}
	rows, cols := len(lines), len(lines[0])
	data := make([]Cell, 0, rows*cols)
	for r, line := range lines {
		if len(line) != cols {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", ErrRaggedGrid, r, len(line), cols)
		}
		for c := 0; c < len(line); c++ {
			cell, ok := ParseCell(line[c])
			if !ok {
				return nil, fmt.Errorf("%w: %q at row %d col %d", ErrInvalidCellSymbol, line[c], r, c)
			}
			data = append(data, cell)
		}
	}
	return &Grid{rows: rows, cols: cols, data: data}, nil
}

// FromCells builds a grid that takes ownership of cells. The caller must not
// modify the slice afterwards.
func FromCells(rows, cols int, cells []Cell) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyInput
	}
	if len(cells) != rows*cols {
		return nil, fmt.Errorf("%w: %d cells for %dx%d grid", ErrRaggedGrid, len(cells), rows, cols)
	}
	return &Grid{rows: rows, cols: cols, data: cells}, nil
}

// Dimensions returns the row and column counts.
func (g *Grid) Dimensions() (rows, cols int) { return g.rows, g.cols }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.data) }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Get returns the cell at pos.
func (g *Grid) Get(pos Position) (Cell, error) {
	if !g.InBounds(pos.Row, pos.Col) {
		return Floor, fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, pos.Row, pos.Col, g.rows, g.cols)
	}
	return g.data[pos.Row*g.cols+pos.Col], nil
}

// At returns the cell at (row, col) without bounds checking beyond the slice
// access itself. Callers check InBounds first.
func (g *Grid) At(row, col int) Cell { return g.data[row*g.cols+col] }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.cols + col }

// Count returns how many cells satisfy match.
func (g *Grid) Count(match func(Cell) bool) int {
	n := 0
	for _, c := range g.data {
		if match(c) {
			n++
		}
	}
	return n
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i, c := range g.data {
		if other.data[i] != c {
			return false
		}
	}
	return true
}

// CopyCells writes the cell values into dst, which must hold Len() entries.
func (g *Grid) CopyCells(dst []Cell) int { return copy(dst, g.data) }

// Lines renders the grid back into its text form.
func (g *Grid) Lines() []string {
	lines := make([]string, g.rows)
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		sb.Reset()
		sb.Grow(g.cols)
		for _, c := range g.data[r*g.cols : (r+1)*g.cols] {
			sb.WriteByte(c.Symbol())
		}
		lines[r] = sb.String()
	}
	return lines
}

// String renders the grid as newline separated rows.
func (g *Grid) String() string { return strings.Join(g.Lines(), "\n") }
