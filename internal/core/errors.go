package core

import "errors"

// Load errors. They are wrapped with position details, so compare with
// errors.Is.
var (
	// ErrInvalidCellSymbol is returned when a line holds a character outside
	// the '.', 'L', '#' alphabet.
	ErrInvalidCellSymbol = errors.New("invalid cell symbol")

	// ErrEmptyInput is returned for no lines or a zero-width first line.
	ErrEmptyInput = errors.New("empty input")

	// ErrRaggedGrid is returned when rows differ in width.
	ErrRaggedGrid = errors.New("ragged grid")

	// ErrOutOfBounds is returned by Grid.Get for a position outside the grid.
	ErrOutOfBounds = errors.New("position out of bounds")
)
