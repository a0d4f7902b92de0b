// Package grid defines cell kinds, positions, paths, and sentinel errors
// for the grid package of github.com/katalvlaran/pathery.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates a non-positive height or width.
	ErrEmptyGrid = errors.New("grid: height and width must be positive")
	// ErrSizeMismatch indicates the code slice does not hold height*width cells.
	ErrSizeMismatch = errors.New("grid: code count does not match dimensions")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrMapCode indicates a malformed Pathery map code.
	ErrMapCode = errors.New("grid: malformed map code")
)

// Kind is the decoded movement semantic of a cell.
type Kind uint8

const (
	// Empty is an open, passable cell.
	Empty Kind = iota
	// Start is a path origin.
	Start
	// Rock is a pre-placed impassable cell.
	Rock
	// Wall is a player-placed impassable cell.
	Wall
	// Ice is passable but forces the traveler to keep moving in the entry direction.
	Ice
	// Goal is the final destination.
	Goal
	// Checkpoint is an ordered waypoint; Cell.Index holds its order.
	Checkpoint
	// Teleporter is one port of a teleporter; Cell.Index and Cell.Port identify it.
	Teleporter
)

var kindNames = [...]string{"Empty", "Start", "Rock", "Wall", "Ice", "Goal", "Checkpoint", "Teleporter"}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Blocking reports whether the kind can never be entered.
func (k Kind) Blocking() bool {
	return k == Rock || k == Wall
}

// Port distinguishes the entrance and exit of a teleporter.
type Port uint8

const (
	// In is a teleporter entrance.
	In Port = iota
	// Out is a teleporter exit.
	Out
)

// String returns "IN" or "OUT".
func (p Port) String() string {
	if p == Out {
		return "OUT"
	}
	return "IN"
}

// Cell is a decoded cell. Index and Port are meaningful only for
// Checkpoint (Index) and Teleporter (Index, Port); they are zero otherwise,
// so two Cells compare equal exactly when they denote the same semantic.
type Cell struct {
	Kind  Kind
	Index int
	Port  Port
}

// GoalCell is the search target for the goal.
func GoalCell() Cell { return Cell{Kind: Goal} }

// CheckpointCell is the search target for checkpoint i.
func CheckpointCell(i int) Cell { return Cell{Kind: Checkpoint, Index: i} }

// TeleporterCell is the cell for port p of teleporter i.
func TeleporterCell(i int, p Port) Cell { return Cell{Kind: Teleporter, Index: i, Port: p} }

// String formats the cell, e.g. "Checkpoint(1)" or "Teleporter(0,OUT)".
func (c Cell) String() string {
	switch c.Kind {
	case Checkpoint:
		return fmt.Sprintf("Checkpoint(%d)", c.Index)
	case Teleporter:
		return fmt.Sprintf("Teleporter(%d,%s)", c.Index, c.Port)
	default:
		return c.Kind.String()
	}
}

// Position is a 0-indexed (row, col) coordinate.
type Position struct {
	Row, Col int
}

// Less orders positions by row, then column.
func (p Position) Less(q Position) bool {
	if p.Row == q.Row {
		return p.Col < q.Col
	}
	return p.Row < q.Row
}

// Adjacent reports whether q is one orthogonal step from p.
func (p Position) Adjacent(q Position) bool {
	dr, dc := p.Row-q.Row, p.Col-q.Col
	return dr*dr+dc*dc == 1
}

// String formats the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Path is an ordered sequence of steps. It starts with the first step after
// the source and ends at the destination; the source itself is never included.
// An empty Path means the destination is unreachable.
type Path []Position

// Reachable reports whether the path is non-empty.
func (p Path) Reachable() bool { return len(p) > 0 }

// Last returns the final position of a non-empty path.
func (p Path) Last() Position { return p[len(p)-1] }

// Portal groups every IN and OUT position of the teleporter with one index.
// In and Out are in row-major order.
type Portal struct {
	Index int
	In    []Position
	Out   []Position
}
