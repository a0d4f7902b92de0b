// Package grid decodes a Pathery board into typed cell semantics.
//
// What:
//
//   - Grid wraps a row-major []int32 of cell codes with its dimensions and the
//     configured checkpoint and teleporter counts.
//   - Every code is decoded once, at construction, into a Cell (Kind, Index, Port);
//     downstream packages compare Cells and never touch raw codes.
//   - Start positions and teleporters (IN/OUT position sets per index) are
//     collected in the same single scan.
//   - ParseMapCode builds a Grid from a Pathery map code string.
//   - Render draws a Grid with an optional path overlaid.
//
// Cell codes:
//
//	0 Empty   1 Start   2 Rock   3 Wall   4 Ice   5 Goal
//	Base (6) .. Base+checkpointCount-1             checkpoints 0..n-1
//	code >= Base+checkpointCount                   teleporters
//	    index = (code - Base - checkpointCount) / 2
//	    port  = IN when the offset is even, OUT when odd
//
// Determinism:
//
//	Start positions and teleporter IN/OUT sets are stored in row-major order,
//	which is the lexicographic (row, col) order. Teleporters are stored in
//	ascending index order.
//
// Complexity:
//
//   - New:  O(W×H) time and memory.
//   - At:   O(1).
//
// Errors:
//
//   - ErrEmptyGrid: a dimension is not positive.
//   - ErrSizeMismatch: len(codes) != height*width.
//   - ErrNonRectangular: FromRows got rows of differing lengths.
//   - ErrMapCode: a map code string could not be parsed.
//
// Codes outside the documented scheme are a caller error and are not
// validated.
package grid
