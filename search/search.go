// Package search provides the multi-source breadth-first frontier search,
// honoring ice-forced movement and obstacle blocking.
package search

import (
	"context"

	"github.com/katalvlaran/pathery/grid"
)

// queueItem pairs a cell index with its depth and the direction it is
// forced to continue in (none unless the cell is Ice).
type queueItem struct {
	idx    int
	depth  int
	forced Direction
}

// walker encapsulates mutable search state.
type walker struct {
	g      *grid.Grid
	opts   Options
	ctx    context.Context
	target grid.Cell
	queue  []queueItem
	// scheduled marks every cell ever enqueued; a cell is never enqueued twice.
	scheduled []bool
	// prev holds the predecessor index of each scheduled cell, -1 for sources.
	prev []int32
}

// Search runs a breadth-first search from every position in sources to the
// nearest cell decoding to target, applying any number of functional Options.
// Sources outside the grid and duplicate sources are ignored.
//
// Returns the shortest path (excluding the originating source), or an empty
// path if no cell matching target is reachable. A source that itself matches
// target also yields an empty path. Returns ErrGridNil for a nil grid or the
// context error if the search is cancelled.
func Search(g *grid.Grid, sources []grid.Position, target grid.Cell, opts ...Option) (grid.Path, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.Len()
	w := &walker{
		g:         g,
		opts:      o,
		ctx:       o.Ctx,
		target:    target,
		queue:     make([]queueItem, 0, len(sources)),
		scheduled: make([]bool, n),
		prev:      make([]int32, n),
	}
	for i := range w.prev {
		w.prev[i] = -1
	}

	// Seed every source at depth 0.
	for _, s := range sources {
		if !g.InBounds(s.Row, s.Col) {
			continue
		}
		i := g.Index(s.Row, s.Col)
		if w.scheduled[i] {
			continue
		}
		w.enqueue(i, 0, none, -1)
	}

	return w.loop()
}

// enqueue marks idx scheduled, records its predecessor, calls OnEnqueue,
// and appends it to the frontier.
func (w *walker) enqueue(idx, depth int, forced Direction, parent int) {
	w.scheduled[idx] = true
	w.prev[idx] = int32(parent)
	w.opts.OnEnqueue(w.g.Coordinate(idx), depth)
	w.queue = append(w.queue, queueItem{idx: idx, depth: depth, forced: forced})
}

// loop processes the frontier until the target is found, the frontier
// empties, or the context is cancelled.
func (w *walker) loop() (grid.Path, error) {
	for len(w.queue) > 0 {
		// cancellation check (once per dequeue)
		select {
		case <-w.ctx.Done():
			return nil, w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if w.g.AtIndex(item.idx) == w.target {
			return w.pathTo(item.idx), nil
		}
		w.expand(item)
	}

	return nil, nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(w.g.Coordinate(item.idx), item.depth)
	return item
}

// expand schedules every legal, unscheduled neighbor of item in
// Up, Right, Down, Left order. A forced item only tries its own direction.
func (w *walker) expand(item queueItem) {
	from := w.g.Coordinate(item.idx)
	for _, d := range Directions {
		if item.forced != none && item.forced != d {
			continue
		}
		dr, dc := d.Delta()
		r, c := from.Row+dr, from.Col+dc
		if !w.g.InBounds(r, c) {
			continue
		}
		next := w.g.Index(r, c)
		if !w.g.Passable(next) || w.scheduled[next] {
			continue
		}
		forced := none
		if w.g.AtIndex(next).Kind == grid.Ice {
			forced = d
		}
		w.enqueue(next, item.depth+1, forced, item.idx)
	}
}

// pathTo follows predecessors from idx back to its source and returns the
// steps in travel order, excluding the source.
func (w *walker) pathTo(idx int) grid.Path {
	var path grid.Path
	for at := idx; w.prev[at] >= 0; at = int(w.prev[at]) {
		path = append(path, w.g.Coordinate(at))
	}
	// reverse to get source → target
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
