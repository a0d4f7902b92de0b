// Package teleport reroutes a path through the first unused teleporter it
// enters, following chains of teleporters until the path is stable.
//
// What
//
//   - Splice scans a path for the entrance of an unused teleporter under a
//     strict priority: lowest teleporter index first, then that teleporter's
//     IN positions in row-major order, then the earliest path index.
//   - On a match the teleporter is marked used, the path is truncated right
//     after the IN position, and a fresh search from the teleporter's full
//     OUT set to the same target supplies the rest of the path.
//   - The new tail is scanned again, so a tail that enters another unused
//     teleporter is spliced too. Each pass consumes one teleporter, so the
//     number of passes is bounded by the number of teleporters.
//
// Ledger
//
//	The set of used teleporters is a Ledger value. Splice takes the caller's
//	Ledger and returns the updated one alongside the path; no state is shared
//	between calls.
//
// Unreachable
//
//	An empty input path stays empty. If the search after a teleporter exit
//	finds nothing, the whole result is empty: entering the teleporter is not
//	optional.
package teleport
