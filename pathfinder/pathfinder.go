package pathfinder

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pathery/grid"
	"github.com/katalvlaran/pathery/search"
	"github.com/katalvlaran/pathery/teleport"
)

// Pathfinder answers shortest-path queries for one grid.
type Pathfinder struct {
	g    *grid.Grid
	opts Options
}

// New returns a Pathfinder for g. Returns ErrGridNil for a nil grid.
func New(g *grid.Grid, opts ...Option) (*Pathfinder, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Pathfinder{g: g, opts: o}, nil
}

// Grid returns the grid the Pathfinder was built for.
func (pf *Pathfinder) Grid() *grid.Grid { return pf.g }

// Stages returns the targets in the order they must be reached.
func (pf *Pathfinder) Stages() []grid.Cell {
	n := pf.g.CheckpointCount()
	stages := make([]grid.Cell, 0, n+1)
	for i := 0; i < n; i++ {
		stages = append(stages, grid.CheckpointCell(i))
	}
	return append(stages, grid.GoalCell())
}

// ShortestPath returns the full path from the starts through every checkpoint
// to the goal, or an empty path if any stage is unreachable.
// Errors come only from ctx.
func (pf *Pathfinder) ShortestPath(ctx context.Context) (grid.Path, error) {
	route, err := pf.Solve(ctx)
	if err != nil {
		return nil, err
	}
	return route.Path, nil
}

// Solve runs every stage and returns the Route. An unreachable query is a
// Route with an empty Path and Blocked set, not an error.
// Errors come only from ctx.
func (pf *Pathfinder) Solve(ctx context.Context) (*Route, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	sopts := append(append([]search.Option(nil), pf.opts.Search...), search.WithContext(ctx))

	var (
		debug   = debugEnabled(pf.opts.Logger)
		used    teleport.Ledger
		route   = &Route{Blocked: -1}
		sources = pf.g.Starts()
	)
	for i, target := range pf.Stages() {
		steps, err := search.Search(pf.g, sources, target, sopts...)
		if err != nil {
			return nil, err
		}
		steps, used, err = teleport.Splice(pf.g, target, used, steps, sopts...)
		if err != nil {
			return nil, err
		}

		if debug {
			entry := pf.opts.Logger.WithFields(logrus.Fields{
				"stage":       i,
				"target":      target.String(),
				"steps":       len(steps),
				"teleporters": used.Len(),
			})
			if steps.Reachable() {
				entry.Debug("stage reached")
			} else {
				entry.Debug("stage unreachable")
			}
		}
		if !steps.Reachable() {
			return &Route{Blocked: i}, nil
		}

		route.Segments = append(route.Segments, Segment{Target: target, Steps: steps})
		route.Path = append(route.Path, steps...)
		sources = []grid.Position{steps.Last()}
	}
	route.Teleporters = used.Order()

	return route, nil
}

// debugEnabled reports whether l would emit Debug entries. Loggers that
// expose no level are assumed to.
func debugEnabled(l logrus.FieldLogger) bool {
	switch l := l.(type) {
	case interface{ IsLevelEnabled(logrus.Level) bool }:
		return l.IsLevelEnabled(logrus.DebugLevel)
	case *logrus.Entry:
		return l.Logger.IsLevelEnabled(logrus.DebugLevel)
	}
	return true
}
