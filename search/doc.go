// Package search provides the multi-source breadth-first frontier search over a
// grid.Grid, returning the shortest path to the nearest cell matching a target.
//
// What
//
//   - Seeds every source position at depth 0; all sources share one scheduled
//     set and one FIFO frontier, so the result is the globally shortest path
//     from the nearest source.
//   - Expands cells in the fixed preference order Up, Right, Down, Left.
//   - Rejects moves that leave the grid or land on Rock or Wall.
//   - Ice: a move landing on Ice carries its direction; expanding that cell
//     only tries the same direction, so the traveler keeps sliding.
//   - Stops the instant a dequeued cell decodes to the target grid.Cell.
//   - Supports functional hooks at two stages:
//   - OnEnqueue (when a cell is scheduled)
//   - OnDequeue (immediately before a cell is examined)
//
// Determinism
//
//	Direction order and FIFO discipline are fixed, so among several shortest
//	paths the one preferring Up over Right over Down over Left at the first
//	point of divergence is returned, and repeated calls yield identical paths.
//
// Result
//
//	The grid.Path runs from the first step after the originating source to
//	the target inclusive. An empty path means the target is unreachable;
//	that is a normal result, not an error.
//
// Complexity (N = W×H)
//
//   - Time:   O(N)   (each cell scheduled at most once, 4 probes each)
//   - Memory: O(N)   (flat predecessor array and scheduled flags)
//
// Usage
//
//	path, err := search.Search(g, g.Starts(), grid.GoalCell())
//	if err != nil {
//		// ErrGridNil or a context error
//	}
//	if !path.Reachable() {
//		// no legal route
//	}
//
// Errors
//
//   - ErrGridNil         if the grid pointer is nil.
//   - ctx.Err()          if the context passed via WithContext is done.
package search
