// Package search provides tunable options, directions and error definitions
// for the frontier search over a grid.Grid.
package search

import (
	"context"
	"errors"

	"github.com/katalvlaran/pathery/grid"
)

// ErrGridNil is returned if a nil grid pointer is passed.
var ErrGridNil = errors.New("search: grid is nil")

// Direction is a single orthogonal move.
type Direction uint8

const (
	// Up decreases the row.
	Up Direction = iota
	// Right increases the column.
	Right
	// Down increases the row.
	Down
	// Left decreases the column.
	Left

	// none marks a queue item with no forced direction.
	none Direction = 0xff
)

// Directions lists the moves in preference order.
var Directions = [4]Direction{Up, Right, Down, Left}

var deltas = [4][2]int{Up: {-1, 0}, Right: {0, 1}, Down: {1, 0}, Left: {0, -1}}

// Delta returns the (row, col) offset of d.
func (d Direction) Delta() (dr, dc int) {
	return deltas[d][0], deltas[d][1]
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	}
	return "None"
}

// Option configures Search behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines. It is checked once per dequeue.
	Ctx context.Context

	// OnEnqueue is called when a cell is scheduled, with its depth
	// (steps from the nearest source).
	OnEnqueue func(p grid.Position, depth int)

	// OnDequeue is called immediately before a cell is examined.
	OnDequeue func(p grid.Position, depth int)
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - no-op hooks (OnEnqueue, OnDequeue)
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(grid.Position, int) {},
		OnDequeue: func(grid.Position, int) {},
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

// WithOnEnqueue registers a callback to run when a cell is scheduled.
func WithOnEnqueue(fn func(p grid.Position, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run when a cell is dequeued.
func WithOnDequeue(fn func(p grid.Position, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}
