package teleport

import (
	"github.com/katalvlaran/pathery/grid"
	"github.com/katalvlaran/pathery/search"
)

// Splice reroutes path through every unused teleporter it reaches, searching
// from each teleporter's OUT set to target. It returns the rewritten path and
// the ledger extended with the consumed teleporters. The input path is not
// modified. opts are forwarded to every search.
//
// An empty path is returned unchanged; an unreachable tail after a teleporter
// yields an empty path. Errors come only from search (nil grid, cancellation).
func Splice(g *grid.Grid, target grid.Cell, used Ledger, path grid.Path, opts ...search.Option) (grid.Path, Ledger, error) {
	if g == nil {
		return nil, used, search.ErrGridNil
	}

	var out grid.Path
	for {
		tp, at, ok := firstEntry(g.Teleporters(), used, path)
		if !ok {
			return append(out, path...), used, nil
		}
		used = used.With(tp.Index)
		out = append(out, path[:at+1]...)

		tail, err := search.Search(g, tp.Out, target, opts...)
		if err != nil {
			return nil, used, err
		}
		if !tail.Reachable() {
			return nil, used, nil
		}
		path = tail
	}
}

// firstEntry finds the highest-priority unused teleporter entrance on path:
// lowest teleporter index, then IN position order, then earliest path index.
// Returns the teleporter and the path index of its IN position.
func firstEntry(tps []grid.Portal, used Ledger, path grid.Path) (grid.Portal, int, bool) {
	for _, tp := range tps {
		if used.Used(tp.Index) {
			continue
		}
		for _, in := range tp.In {
			for i, p := range path {
				if p == in {
					return tp, i, true
				}
			}
		}
	}

	return grid.Portal{}, -1, false
}
