package grid

// New constructs a Grid from a flat row-major cell sequence and a side
// length. It deep-copies the input to ensure immutability.
// Returns ErrDegenerateGrid if side < 1,
// ErrInvalidDimensions if len(cells) != side*side.
// Algorithmic complexity: O(n²) time and memory.
func New(cells []byte, side int) (*Grid, error) {
	if side < 1 {
		return nil, ErrDegenerateGrid
	}
	if len(cells) != side*side {
		return nil, ErrInvalidDimensions
	}
	// Deep copy to prevent external mutation
	own := make([]byte, len(cells))
	copy(own, cells)

	return &Grid{side: side, cells: own}, nil
}

// Side returns the side length n of the n×n grid.
// Complexity: O(1).
func (g *Grid) Side() int {
	return g.side
}

// InBounds reports whether (row,col) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.side && col >= 0 && col < g.side
}

// At returns the stored byte at (row,col). Callers must ensure the
// coordinate is in bounds.
// Complexity: O(1).
func (g *Grid) At(row, col int) byte {
	return g.cells[g.Index(row, col)]
}

// Free reports whether the cell at (row,col) is traversable, i.e. holds
// exactly FreeCell. Bytes outside {0,1} count as blocked rather than
// being rejected; see the package documentation.
// Complexity: O(1).
func (g *Grid) Free(row, col int) bool {
	return g.cells[g.Index(row, col)] == FreeCell
}

// Index maps (row,col) to a row-major index: row*side + col.
// Complexity: O(1).
func (g *Grid) Index(row, col int) int {
	return row*g.side + col
}

// Coordinate converts a row-major index back to (row,col).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (row, col int) {
	return idx / g.side, idx % g.side
}
