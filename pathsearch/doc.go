// Package pathsearch provides a production-grade breadth-first search
// from the top-left to the bottom-right corner of a square free/blocked
// grid, returning the shortest 4-directional path.
//
// What
//
//   - Validates a flat row-major byte grid (via package grid) and runs
//     BFS entirely inside New; the returned PathSearch is immutable.
//   - Queries on the solved value:
//   - HasPath: whether a corner-to-corner route exists
//   - Path:    the route as a flat [r1, c1, r2, c2, …] sequence
//   - Coords:  the route as (row,col) coordinates
//   - Steps:   the number of moves along the route
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a cell is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0), and
//     context cancellation via WithContext.
//
// Why
//
//   - Compute unweighted shortest corner-to-corner routes in O(n²) time.
//   - Because every edge is unweighted, BFS discovery order guarantees
//     the first route found is a shortest one.
//
// Determinism
//
//	Neighbors are expanded in the fixed order up, down, left, right —
//	(row,col) offsets (-1,0), (1,0), (0,-1), (0,1). When several
//	shortest routes tie, this order decides which one is returned, so
//	results are fully reproducible across runs and instances.
//
// Cell values
//
//	Only the byte value 1 is traversable. Any other value — 0 or
//	otherwise — is treated as blocked rather than rejected; inputs are
//	deliberately not validated against {0,1}.
//
// Complexity (n = grid side length)
//
//   - Time:   O(n²)   (each cell enqueued at most once, 4 edge checks per visit)
//   - Memory: O(n²) during the search; only the final path is retained
//
// Errors
//
//   - grid.ErrDegenerateGrid: side length below 1.
//   - grid.ErrInvalidDimensions: cell count ≠ side².
//   - ErrGridNil: nil grid passed to NewFromGrid.
//   - ErrOptionViolation: invalid option (negative MaxDepth).
//
// A blocked start or goal, a fully blocked grid, or unexpected byte
// values are never errors — they are ordinary no-path outcomes.
package pathsearch
