// Package gridtest builds grids from compact ASCII art for tests.
//
// Legend:
//
//	.  Empty      S  Start      R  Rock      #  Wall      ~  Ice      G  Goal
//	A-Z           checkpoint 0-25
//	0-9           teleporter 0-9 IN
//	a-j           teleporter 0-9 OUT
package gridtest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathery/grid"
)

// Cell decodes one art character. It panics on an unknown character.
func Cell(ch rune) grid.Cell {
	switch {
	case ch == '.':
		return grid.Cell{Kind: grid.Empty}
	case ch == 'S':
		return grid.Cell{Kind: grid.Start}
	case ch == 'R':
		return grid.Cell{Kind: grid.Rock}
	case ch == '#':
		return grid.Cell{Kind: grid.Wall}
	case ch == '~':
		return grid.Cell{Kind: grid.Ice}
	case ch == 'G':
		return grid.GoalCell()
	case ch >= 'A' && ch <= 'Z':
		return grid.CheckpointCell(int(ch - 'A'))
	case ch >= '0' && ch <= '9':
		return grid.TeleporterCell(int(ch-'0'), grid.In)
	case ch >= 'a' && ch <= 'j':
		return grid.TeleporterCell(int(ch-'a'), grid.Out)
	}
	panic("gridtest: unknown cell " + string(ch))
}

// Codes encodes art rows into row-major cell codes.
func Codes(checkpoints int, rows ...string) []int32 {
	var codes []int32
	for _, row := range rows {
		for _, ch := range row {
			codes = append(codes, grid.Encode(Cell(ch), checkpoints))
		}
	}
	return codes
}

// FromArt builds a grid from equal-length art rows.
func FromArt(tb testing.TB, checkpoints, teleporters int, rows ...string) *grid.Grid {
	tb.Helper()
	require.NotEmpty(tb, rows)
	g, err := grid.New(Codes(checkpoints, rows...), len(rows), len(rows[0]), checkpoints, teleporters)
	require.NoError(tb, err)
	return g
}

// Open builds an h×w board of Empty cells with the given Start and Goal.
func Open(tb testing.TB, h, w int, start, goal grid.Position) *grid.Grid {
	tb.Helper()
	codes := make([]int32, h*w)
	codes[start.Row*w+start.Col] = grid.CodeStart
	codes[goal.Row*w+goal.Col] = grid.CodeGoal
	g, err := grid.New(codes, h, w, 0, 0)
	require.NoError(tb, err)
	return g
}

// AssertWellFormed checks that every step of path is orthogonally adjacent to
// the previous one (or, right after a teleporter IN, adjacent to one of its
// OUT positions) and never lands on Rock or Wall. from is the source of the
// first step.
func AssertWellFormed(tb testing.TB, g *grid.Grid, from grid.Position, path grid.Path) {
	tb.Helper()
	prev := from
	for i, p := range path {
		require.True(tb, g.InBounds(p.Row, p.Col), "step %d %v out of bounds", i, p)
		c := g.At(p.Row, p.Col)
		require.False(tb, c.Kind.Blocking(), "step %d %v on %v", i, p, c)
		if !prev.Adjacent(p) {
			require.True(tb, teleportsTo(g, prev, p),
				"step %d %v -> %v is neither adjacent nor a teleport", i, prev, p)
		}
		prev = p
	}
}

// teleportsTo reports whether in is a teleporter IN and p is one step from
// one of that teleporter's OUT positions.
func teleportsTo(g *grid.Grid, in, p grid.Position) bool {
	c := g.At(in.Row, in.Col)
	if c.Kind != grid.Teleporter || c.Port != grid.In {
		return false
	}
	for _, tp := range g.Teleporters() {
		if tp.Index != c.Index {
			continue
		}
		for _, out := range tp.Out {
			if out.Adjacent(p) {
				return true
			}
		}
	}
	return false
}
