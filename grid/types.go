// Package grid defines the Grid type and sentinel errors
// for the grid subpackage of github.com/marbello1973/gridpath.
package grid

import (
	"errors"
)

// Sentinel errors for grid construction.
var (
	// ErrDegenerateGrid indicates a side length below 1; such a grid has
	// no start or goal cell.
	ErrDegenerateGrid = errors.New("grid: side length must be at least 1")
	// ErrInvalidDimensions indicates the flat cell sequence length does
	// not equal side².
	ErrInvalidDimensions = errors.New("grid: cell count must equal side squared")
)

// FreeCell is the single byte value marking a traversable cell.
// Any other value — including bytes outside {0,1} — is blocked.
const FreeCell byte = 1

// Grid is an immutable square board of side×side cells stored row-major
// as a flat byte sequence. The cells slice is deep-copied during
// construction and never mutated afterwards, so a Grid is safe for
// concurrent readers.
type Grid struct {
	side  int
	cells []byte
}
