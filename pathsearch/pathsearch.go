// Package pathsearch runs breadth-first search over a grid.Grid from the
// top-left corner to the bottom-right corner, returning the shortest
// 4-directional path if one exists.
//
// The search runs to completion during construction; a PathSearch value
// is immutable afterwards and every query is a pure read.
package pathsearch

import (
	"fmt"

	"github.com/marbello1973/gridpath/grid"
)

// PathSearch holds the outcome of one corner-to-corner search: the
// shortest path from (0,0) to (n-1,n-1), or no path at all. All working
// state of the traversal (queue, visited flags, predecessor map) is
// discarded once the path is computed, so a solved PathSearch is cheap
// to retain and safe for concurrent readers.
type PathSearch struct {
	path []Coord
}

// queueItem pairs a cell with its BFS depth from the start corner.
type queueItem struct {
	cell  Coord
	depth int
}

// walker encapsulates mutable BFS state for a single search.
type walker struct {
	grid    *grid.Grid
	opts    Options
	goal    Coord
	queue   []queueItem
	visited []bool
	parent  map[Coord]Coord
}

// New validates the flat cell sequence against the side length, runs the
// search, and returns the solved PathSearch.
// Returns grid.ErrDegenerateGrid or grid.ErrInvalidDimensions for invalid
// input shape, ErrOptionViolation for bad options, the context error on
// cancellation, or any user-supplied OnVisit error.
func New(cells []byte, side int, opts ...Option) (*PathSearch, error) {
	g, err := grid.New(cells, side)
	if err != nil {
		return nil, err
	}

	return NewFromGrid(g, opts...)
}

// NewFromGrid runs the search on an already-constructed grid,
// applying any number of functional Options.
// Returns ErrGridNil for a nil grid; otherwise as New.
func NewFromGrid(g *grid.Grid, opts ...Option) (*PathSearch, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Prepare walker
	n := g.Side()
	w := &walker{
		grid:    g,
		opts:    o,
		goal:    Coord{Row: n - 1, Col: n - 1},
		queue:   make([]queueItem, 0, n*n),
		visited: make([]bool, n*n),
		parent:  make(map[Coord]Coord, n*n),
	}

	path, err := w.run()
	if err != nil {
		return nil, err
	}

	return &PathSearch{path: path}, nil
}

// run drives the traversal to completion and returns the reconstructed
// path, or nil when the goal is unreachable.
func (w *walker) run() ([]Coord, error) {
	start := Coord{Row: 0, Col: 0}
	// A blocked start or goal corner makes the search unwinnable; skip it.
	if !w.grid.Free(start.Row, start.Col) || !w.grid.Free(w.goal.Row, w.goal.Col) {
		return nil, nil
	}

	// Seed queue with the start corner (no predecessor)
	w.enqueue(start, 0)
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return nil, w.opts.Ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return nil, err
		}
		if item.cell == w.goal {
			return w.reconstruct(), nil
		}
		w.enqueueNeighbors(item)
	}

	return nil, nil
}

// enqueue marks c visited at depth d, calls OnEnqueue, and adds it to
// the queue. Predecessors are recorded by the caller before enqueueing,
// so the first (shortest) discovery of a cell wins.
func (w *walker) enqueue(c Coord, d int) {
	w.visited[w.grid.Index(c.Row, c.Col)] = true
	w.opts.OnEnqueue(c, d)
	w.queue = append(w.queue, queueItem{cell: c, depth: d})
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.cell, item.depth)
	return item
}

// visit calls OnVisit; it fires for every dequeued cell, the goal included.
func (w *walker) visit(item queueItem) error {
	if err := w.opts.OnVisit(item.cell, item.depth); err != nil {
		return fmt.Errorf("pathsearch: OnVisit error at (%d,%d): %w", item.cell.Row, item.cell.Col, err)
	}
	return nil
}

// enqueueNeighbors expands item's 4-directional neighbors in the fixed
// order up, down, left, right, skipping out-of-bounds, blocked, seen,
// and over-depth cells. The expansion order is the externally observable
// tie-break among equal-length shortest paths.
func (w *walker) enqueueNeighbors(item queueItem) {
	for _, d := range w.grid.NeighborOffsets() {
		nr, nc := item.cell.Row+d[0], item.cell.Col+d[1]
		if !w.grid.InBounds(nr, nc) || !w.grid.Free(nr, nc) {
			continue
		}
		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}

		// first time seen?
		if !w.visited[w.grid.Index(nr, nc)] {
			next := Coord{Row: nr, Col: nc}
			w.parent[next] = item.cell
			w.enqueue(next, nextDepth)
		}
	}
}

// reconstruct walks the predecessor map backward from the goal to the
// start, then reverses in place to yield start→goal order.
func (w *walker) reconstruct() []Coord {
	// build reversed path
	path := []Coord{}
	for cur := w.goal; ; {
		path = append(path, cur)
		prev, ok := w.parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// HasPath reports whether a corner-to-corner path was found.
func (ps *PathSearch) HasPath() bool {
	return len(ps.path) > 0
}

// Path returns the found path as a flat sequence of coordinate
// components [r1, c1, r2, c2, …] in start-to-goal order. The result is
// empty (never nil) when no path exists.
func (ps *PathSearch) Path() []int {
	flat := make([]int, 0, 2*len(ps.path))
	for _, c := range ps.path {
		flat = append(flat, c.Row, c.Col)
	}

	return flat
}

// Coords returns a copy of the found path as coordinates in
// start-to-goal order; empty when no path exists.
func (ps *PathSearch) Coords() []Coord {
	out := make([]Coord, len(ps.path))
	copy(out, ps.path)

	return out
}

// Steps returns the number of moves along the found path
// (cells minus one), or -1 when no path exists.
func (ps *PathSearch) Steps() int {
	if len(ps.path) == 0 {
		return -1
	}

	return len(ps.path) - 1
}
