// Package pathfinder computes the full Pathery path: from the starts through
// every checkpoint in order to the goal, splicing teleporters along the way.
//
// What:
//
//   - Stages are Checkpoint(0), …, Checkpoint(n-1), Goal, or just Goal when the
//     board has no checkpoints.
//   - The first stage searches from every Start cell; each later stage searches
//     from the last position of the path so far.
//   - Each stage's path is passed through teleport.Splice with one Ledger
//     threaded across all stages, so a teleporter is used at most once per
//     query.
//   - If any stage is unreachable the whole query is unreachable, even if
//     later stages could be reached directly. A checkpoint missing from the
//     board is unreachable.
//
// Result:
//
//	ShortestPath returns the concatenated grid.Path (empty when unreachable).
//	Solve returns a Route with the per-stage Segments and the teleporters
//	consumed, in order.
//
// Concurrency:
//
//	A Pathfinder holds only the immutable grid and its options; all search
//	state is per call. Solve may run concurrently on one Pathfinder.
//
// Logging:
//
//	Each stage is logged at Debug level through the configured
//	logrus.FieldLogger (logrus.StandardLogger by default).
package pathfinder
