// Package boundary adapts the pathfinder to the flat int32 buffers used by
// foreign callers: a row-major grid in, a serialized path out.
//
// Output layout:
//
//	out[0]       path length n (steps, excluding the start)
//	out[1+2*i]   row of step i
//	out[2+2*i]   col of step i
//
// A buffer shorter than 1+2n is a caller contract violation: Serialize
// reports a *CapacityError and writes nothing.
package boundary

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/pathery/grid"
	"github.com/katalvlaran/pathery/pathfinder"
)

// ErrCapacity is wrapped by every CapacityError.
var ErrCapacity = errors.New("boundary: output buffer too small")

// CapacityError reports the buffer size a path needs versus what was given.
type CapacityError struct {
	// Steps is the path length.
	Steps int
	// Required and Available count int32 slots.
	Required, Available int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("boundary: output buffer too small: path length is %d, needs %d slots, buffer has %d (holds %d steps)",
		e.Steps, e.Required, e.Available, max(e.Available-1, 0)/2)
}

// Unwrap lets errors.Is match ErrCapacity.
func (e *CapacityError) Unwrap() error { return ErrCapacity }

// Required returns the number of int32 slots needed to serialize n steps.
func Required(n int) int { return 1 + 2*n }

// Serialize writes path into out. It checks capacity before writing, so a
// short buffer is left untouched.
func Serialize(path grid.Path, out []int32) error {
	need := Required(len(path))
	if len(out) < need {
		return &CapacityError{Steps: len(path), Required: need, Available: len(out)}
	}
	out[0] = int32(len(path))
	for i, p := range path {
		out[1+2*i] = int32(p.Row)
		out[2+2*i] = int32(p.Col)
	}
	return nil
}

// Deserialize reads a path written by Serialize.
func Deserialize(in []int32) (grid.Path, error) {
	if len(in) == 0 {
		return nil, &CapacityError{Required: 1}
	}
	n := int(in[0])
	if need := Required(n); n < 0 || len(in) < need {
		return nil, &CapacityError{Steps: n, Required: need, Available: len(in)}
	}
	var path grid.Path
	for i := 0; i < n; i++ {
		path = append(path, grid.Position{Row: int(in[1+2*i]), Col: int(in[2+2*i])})
	}
	return path, nil
}

// Compute decodes a row-major grid and returns its shortest path.
// An unreachable goal yields an empty path and a nil error.
func Compute(codes []int32, height, width, checkpointCount, teleporterCount int32, opts ...pathfinder.Option) (grid.Path, error) {
	g, err := grid.New(codes, int(height), int(width), int(checkpointCount), int(teleporterCount))
	if err != nil {
		return nil, err
	}
	pf, err := pathfinder.New(g, opts...)
	if err != nil {
		return nil, err
	}
	return pf.ShortestPath(context.Background())
}

// ComputeInto runs Compute and serializes the result into out.
func ComputeInto(codes []int32, height, width, checkpointCount, teleporterCount int32, out []int32, opts ...pathfinder.Option) error {
	path, err := Compute(codes, height, width, checkpointCount, teleporterCount, opts...)
	if err != nil {
		return err
	}
	return Serialize(path, out)
}
