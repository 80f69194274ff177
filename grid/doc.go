// Package grid represents a square free/blocked board as a flat byte
// sequence and provides the primitives path search is built on.
//
// What:
//
//   - Grid wraps a row-major []byte of length side², deep-copied on
//     construction and immutable afterwards.
//   - Cell value 1 (FreeCell) is traversable; every other byte value is
//     treated as blocked. This leniency is deliberate: inputs are not
//     validated against {0,1}.
//   - Bounds checks, (row,col)↔flat-index mapping, and free-cell region
//     detection under 4-directional connectivity.
//
// Why:
//
//   - Callers hand over grids produced elsewhere (generators, host
//     environments); the flat byte form is the cheapest faithful exchange
//     format and maps 1:1 onto the row-major index space BFS works in.
//   - Regions answers "which free cells are mutually reachable" without
//     running a corner-to-corner search.
//
// Complexity:
//
//   - New:       O(n²) time and memory (deep copy).
//   - At, Free, InBounds, Index, Coordinate: O(1).
//   - Regions:   O(n²·4) time, O(n²) memory.
//
// Errors:
//
//   - ErrDegenerateGrid: side < 1 — no start or goal cell can exist.
//   - ErrInvalidDimensions: cell count does not equal side².
package grid
