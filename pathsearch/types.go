// Package pathsearch provides tunable options and error definitions
// for corner-to-corner breadth-first search over a grid.Grid.
package pathsearch

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for path search construction.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("pathsearch: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathsearch: invalid option supplied")
)

// Coord identifies a single grid cell by zero-based row and column.
type Coord struct {
	Row, Col int
}

// Option configures the search via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation when New is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize search execution.
// Hooks observe the traversal; they never alter its order or outcome
// (except OnVisit returning an error, which aborts construction).
type Options struct {
	// Ctx allows cancellation and deadlines. A cancelled search fails
	// construction with the context error; no partial result is exposed.
	Ctx context.Context

	// OnEnqueue is called when a cell is enqueued, before visiting.
	// Receives the cell and its depth (in steps) from the start corner.
	OnEnqueue func(c Coord, depth int)

	// OnDequeue is called immediately before visiting a cell.
	OnDequeue func(c Coord, depth int)

	// OnVisit is called when visiting a cell, including the goal cell.
	// If it returns an error, the search aborts and New propagates it.
	OnVisit func(c Coord, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth; a goal deeper
	// than the limit is an ordinary no-path outcome, never an error.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an Options with sane defaults:
//   - context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
//   - error channel clear.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(Coord, int) {},
		OnDequeue: func(Coord, int) {},
		OnVisit:   func(Coord, int) error { return nil },
		MaxDepth:  0,
		err:       nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(c Coord, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(c Coord, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(c Coord, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (exclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}
