// Package grid provides the decoded, immutable board used by the search,
// teleport and pathfinder packages.
package grid

import (
	"fmt"
	"sort"
)

// Grid is an immutable decoded board. Cells are stored row-major:
// the cell at (row, col) lives at index row*Width + col.
type Grid struct {
	height, width   int
	checkpointCount int
	teleporterCount int
	codes           []int32
	cells           []Cell
	starts          []Position
	teleporters     []Portal
}

// New decodes a row-major slice of cell codes. The input is copied.
// Returns ErrEmptyGrid if a dimension is not positive and ErrSizeMismatch
// if len(codes) != height*width.
// Complexity: O(W×H) time and memory.
func New(codes []int32, height, width, checkpointCount, teleporterCount int) (*Grid, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrEmptyGrid, height, width)
	}
	if len(codes) != height*width {
		return nil, fmt.Errorf("%w: %d codes for %dx%d", ErrSizeMismatch, len(codes), height, width)
	}

	g := &Grid{
		height:          height,
		width:           width,
		checkpointCount: checkpointCount,
		teleporterCount: teleporterCount,
		codes:           make([]int32, len(codes)),
		cells:           make([]Cell, len(codes)),
	}
	copy(g.codes, codes)

	// Single row-major scan: positions land in (row, col) order.
	byIndex := make(map[int]*Portal)
	for i, code := range g.codes {
		c := Decode(code, checkpointCount)
		g.cells[i] = c
		switch c.Kind {
		case Start:
			g.starts = append(g.starts, g.Coordinate(i))
		case Teleporter:
			tp, ok := byIndex[c.Index]
			if !ok {
				tp = &Portal{Index: c.Index}
				byIndex[c.Index] = tp
			}
			if c.Port == In {
				tp.In = append(tp.In, g.Coordinate(i))
			} else {
				tp.Out = append(tp.Out, g.Coordinate(i))
			}
		}
	}

	g.teleporters = make([]Portal, 0, len(byIndex))
	for _, tp := range byIndex {
		g.teleporters = append(g.teleporters, *tp)
	}
	sort.Slice(g.teleporters, func(a, b int) bool {
		return g.teleporters[a].Index < g.teleporters[b].Index
	})

	return g, nil
}

// FromRows builds a Grid from a rectangular [][]int32, row by row.
// Returns ErrEmptyGrid for no rows or no columns and ErrNonRectangular
// if any row length differs.
func FromRows(rows [][]int32, checkpointCount, teleporterCount int) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	codes := make([]int32, 0, h*w)
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		codes = append(codes, row...)
	}

	return New(codes, h, w, checkpointCount, teleporterCount)
}

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Len returns Height*Width.
func (g *Grid) Len() int { return len(g.cells) }

// CheckpointCount returns the configured number of checkpoints.
func (g *Grid) CheckpointCount() int { return g.checkpointCount }

// TeleporterCount returns the configured number of teleporters.
func (g *Grid) TeleporterCount() int { return g.teleporterCount }

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// Index maps (row, col) to its row-major index.
// Complexity: O(1).
func (g *Grid) Index(row, col int) int {
	return row*g.width + col
}

// Coordinate converts a row-major index back to a Position.
// Complexity: O(1).
func (g *Grid) Coordinate(i int) Position {
	return Position{Row: i / g.width, Col: i % g.width}
}

// At returns the decoded cell at (row, col). The position must be in bounds.
func (g *Grid) At(row, col int) Cell {
	return g.cells[g.Index(row, col)]
}

// AtIndex returns the decoded cell at a row-major index.
func (g *Grid) AtIndex(i int) Cell {
	return g.cells[i]
}

// Passable reports whether the cell at index i may be entered.
func (g *Grid) Passable(i int) bool {
	return !g.cells[i].Kind.Blocking()
}

// Starts returns the Start positions in row-major order.
// The returned slice must not be modified.
func (g *Grid) Starts() []Position {
	return g.starts
}

// Teleporters returns the teleporters present on the board in ascending
// index order. The returned slice must not be modified.
func (g *Grid) Teleporters() []Portal {
	return g.teleporters
}

// Codes returns a copy of the raw cell codes.
func (g *Grid) Codes() []int32 {
	out := make([]int32, len(g.codes))
	copy(out, g.codes)
	return out
}
