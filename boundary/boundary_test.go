package boundary_test

import (
	"errors"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathery/boundary"
	"github.com/katalvlaran/pathery/grid"
	"github.com/katalvlaran/pathery/internal/gridtest"
	"github.com/katalvlaran/pathery/pathfinder"
)

func quiet() pathfinder.Option {
	l, _ := logtest.NewNullLogger()
	return pathfinder.WithLogger(l)
}

func TestSerialize(t *testing.T) {
	out := make([]int32, 7)
	err := boundary.Serialize(grid.Path{{Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 2}}, out)
	require.NoError(t, err)
	assert.Equal(t, []int32{3, 0, 1, 0, 2, 1, 2}, out)
}

func TestSerialize_Empty(t *testing.T) {
	out := []int32{9, 9}
	require.NoError(t, boundary.Serialize(nil, out))
	assert.Equal(t, []int32{0, 9}, out)
}

// TestSerialize_Capacity verifies the hard failure leaves the buffer untouched.
func TestSerialize_Capacity(t *testing.T) {
	out := []int32{-1, -1, -1, -1, -1, -1}
	err := boundary.Serialize(grid.Path{{Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 2}}, out)
	require.ErrorIs(t, err, boundary.ErrCapacity)

	var ce *boundary.CapacityError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, 3, ce.Steps)
	assert.Equal(t, 7, ce.Required)
	assert.Equal(t, 6, ce.Available)
	assert.Contains(t, err.Error(), "path length is 3")
	assert.Contains(t, err.Error(), "holds 2 steps")
	assert.Equal(t, []int32{-1, -1, -1, -1, -1, -1}, out)

	assert.ErrorIs(t, boundary.Serialize(nil, nil), boundary.ErrCapacity)
}

func TestDeserialize(t *testing.T) {
	path := grid.Path{{Row: 2, Col: 3}, {Row: 2, Col: 4}}
	buf := make([]int32, boundary.Required(len(path))+3)
	require.NoError(t, boundary.Serialize(path, buf))
	got, err := boundary.Deserialize(buf)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	_, err = boundary.Deserialize([]int32{4, 0, 0})
	assert.ErrorIs(t, err, boundary.ErrCapacity)
	_, err = boundary.Deserialize(nil)
	assert.ErrorIs(t, err, boundary.ErrCapacity)
}

func TestCompute(t *testing.T) {
	codes := gridtest.Codes(1, "S.A.G")
	path, err := boundary.Compute(codes, 1, 5, 1, 0, quiet())
	require.NoError(t, err)
	assert.Equal(t, grid.Path{{Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3}, {Row: 0, Col: 4}}, path)
}

func TestCompute_BadDimensions(t *testing.T) {
	_, err := boundary.Compute([]int32{1, 5}, 0, 2, 0, 0)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
	_, err = boundary.Compute([]int32{1, 5}, 2, 2, 0, 0)
	assert.ErrorIs(t, err, grid.ErrSizeMismatch)
}

func TestComputeInto(t *testing.T) {
	codes := gridtest.Codes(0, "S.", ".G")
	out := make([]int32, 16)
	require.NoError(t, boundary.ComputeInto(codes, 2, 2, 0, 0, out, quiet()))
	assert.Equal(t, []int32{2, 0, 1, 1, 1}, out[:5])

	err := boundary.ComputeInto(codes, 2, 2, 0, 0, make([]int32, 4), quiet())
	assert.ErrorIs(t, err, boundary.ErrCapacity)
}

func TestComputeInto_Unreachable(t *testing.T) {
	codes := gridtest.Codes(0, "S#G")
	out := []int32{7}
	require.NoError(t, boundary.ComputeInto(codes, 1, 3, 0, 0, out, quiet()))
	assert.Equal(t, []int32{0}, out)
}
