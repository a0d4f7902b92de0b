package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathery/grid"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects bad dimensions and size mismatches.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		codes []int32
		h, w  int
		err   error
	}{
		{"ZeroHeight", nil, 0, 3, grid.ErrEmptyGrid},
		{"NegativeWidth", nil, 2, -1, grid.ErrEmptyGrid},
		{"TooFew", []int32{0, 0, 0}, 2, 2, grid.ErrSizeMismatch},
		{"TooMany", []int32{0, 0, 0, 0, 0}, 2, 2, grid.ErrSizeMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.New(tc.codes, tc.h, tc.w, 0, 0)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestFromRows_Errors(t *testing.T) {
	_, err := grid.FromRows(nil, 0, 0)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
	_, err = grid.FromRows([][]int32{{}}, 0, 0)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
	_, err = grid.FromRows([][]int32{{0, 1}, {0}}, 0, 0)
	assert.ErrorIs(t, err, grid.ErrNonRectangular)
}

// TestNew_CopiesInput ensures later mutation of the caller's slice is not observed.
func TestNew_CopiesInput(t *testing.T) {
	codes := []int32{grid.CodeStart, grid.CodeGoal}
	g, err := grid.New(codes, 1, 2, 0, 0)
	require.NoError(t, err)
	codes[1] = grid.CodeWall
	assert.Equal(t, grid.GoalCell(), g.At(0, 1))
	assert.Equal(t, []int32{grid.CodeStart, grid.CodeGoal}, g.Codes())
}

//----------------------------------------------------------------------------//
// Decoding
//----------------------------------------------------------------------------//

func TestDecode_BasicKinds(t *testing.T) {
	want := map[int32]grid.Kind{
		grid.CodeEmpty: grid.Empty,
		grid.CodeStart: grid.Start,
		grid.CodeRock:  grid.Rock,
		grid.CodeWall:  grid.Wall,
		grid.CodeIce:   grid.Ice,
		grid.CodeGoal:  grid.Goal,
	}
	for code, kind := range want {
		assert.Equal(t, grid.Cell{Kind: kind}, grid.Decode(code, 3), "code %d", code)
	}
	assert.Equal(t, grid.Cell{Kind: grid.Empty}, grid.Decode(-7, 3))
}

// TestDecode_CheckpointsAndTeleporters walks the code range past Base for
// two checkpoints: 6,7 are checkpoints, 8.. alternate IN/OUT.
func TestDecode_CheckpointsAndTeleporters(t *testing.T) {
	const cc = 2
	assert.Equal(t, grid.CheckpointCell(0), grid.Decode(6, cc))
	assert.Equal(t, grid.CheckpointCell(1), grid.Decode(7, cc))
	assert.Equal(t, grid.TeleporterCell(0, grid.In), grid.Decode(8, cc))
	assert.Equal(t, grid.TeleporterCell(0, grid.Out), grid.Decode(9, cc))
	assert.Equal(t, grid.TeleporterCell(1, grid.In), grid.Decode(10, cc))
	assert.Equal(t, grid.TeleporterCell(1, grid.Out), grid.Decode(11, cc))

	// Without checkpoints the teleporter range starts at Base.
	assert.Equal(t, grid.TeleporterCell(0, grid.In), grid.Decode(grid.Base, 0))
}

func TestEncode_RoundTrip(t *testing.T) {
	const cc = 3
	for code := int32(0); code < 20; code++ {
		c := grid.Decode(code, cc)
		assert.Equal(t, code, grid.Encode(c, cc), "cell %v", c)
	}
}

//----------------------------------------------------------------------------//
// Lookups
//----------------------------------------------------------------------------//

// TestGrid_StartsAndTeleporters checks the single-scan collections on a 3×4 board:
//
//	S . t0 .
//	u0 # t1 S
//	u1 . t0 u0
func TestGrid_StartsAndTeleporters(t *testing.T) {
	in0 := grid.Encode(grid.TeleporterCell(0, grid.In), 0)
	out0 := grid.Encode(grid.TeleporterCell(0, grid.Out), 0)
	in1 := grid.Encode(grid.TeleporterCell(1, grid.In), 0)
	out1 := grid.Encode(grid.TeleporterCell(1, grid.Out), 0)
	g, err := grid.FromRows([][]int32{
		{grid.CodeStart, 0, in0, 0},
		{out0, grid.CodeWall, in1, grid.CodeStart},
		{out1, 0, in0, out0},
	}, 0, 2)
	require.NoError(t, err)

	assert.Equal(t, 3, g.Height())
	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 12, g.Len())
	assert.Equal(t, 2, g.TeleporterCount())
	assert.Equal(t, []grid.Position{{0, 0}, {1, 3}}, g.Starts())

	tps := g.Teleporters()
	require.Len(t, tps, 2)
	assert.Equal(t, grid.Portal{
		Index: 0,
		In:    []grid.Position{{0, 2}, {2, 2}},
		Out:   []grid.Position{{1, 0}, {2, 3}},
	}, tps[0])
	assert.Equal(t, grid.Portal{
		Index: 1,
		In:    []grid.Position{{1, 2}},
		Out:   []grid.Position{{2, 0}},
	}, tps[1])

	assert.False(t, g.Passable(g.Index(1, 1)))
	assert.True(t, g.Passable(g.Index(1, 2)))
}

func TestGrid_IndexCoordinate(t *testing.T) {
	g, err := grid.New(make([]int32, 6), 2, 3, 0, 0)
	require.NoError(t, err)
	for i := 0; i < g.Len(); i++ {
		p := g.Coordinate(i)
		assert.Equal(t, i, g.Index(p.Row, p.Col))
	}
	assert.True(t, g.InBounds(1, 2))
	assert.False(t, g.InBounds(2, 0))
	assert.False(t, g.InBounds(0, -1))
	assert.False(t, g.InBounds(0, 3))
}

func TestPosition_OrderingAndAdjacency(t *testing.T) {
	assert.True(t, grid.Position{0, 5}.Less(grid.Position{1, 0}))
	assert.True(t, grid.Position{1, 0}.Less(grid.Position{1, 1}))
	assert.False(t, grid.Position{1, 1}.Less(grid.Position{1, 1}))

	p := grid.Position{2, 2}
	assert.True(t, p.Adjacent(grid.Position{1, 2}))
	assert.True(t, p.Adjacent(grid.Position{2, 3}))
	assert.False(t, p.Adjacent(grid.Position{3, 3}))
	assert.False(t, p.Adjacent(p))
	assert.Equal(t, "(2,2)", p.String())
}

func TestCell_String(t *testing.T) {
	assert.Equal(t, "Goal", grid.GoalCell().String())
	assert.Equal(t, "Checkpoint(1)", grid.CheckpointCell(1).String())
	assert.Equal(t, "Teleporter(0,OUT)", grid.TeleporterCell(0, grid.Out).String())
}
