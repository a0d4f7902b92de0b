package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// MapCode is a parsed Pathery map code.
type MapCode struct {
	Width, Height int
	// Walls is the number of walls a player may place.
	Walls int
	Name  string
	Grid  *Grid
}

// ParseMapCode parses a Pathery map code of the form
//
//	W.H.walls.name...:<skip>,<type>.<skip>,<type>. ...
//
// Each body item places <type> after skipping <skip> open cells (an empty
// skip means 0), walking the board row-major. Types:
//
//	s  Start          f  Goal          r  Rock (r1, r2, r3)
//	w  Wall           z  Ice
//	cN checkpoint N-1 tN teleporter N-1 IN   uN teleporter N-1 OUT
//
// The checkpoint and teleporter counts are the highest index seen plus one.
// Returns ErrMapCode (wrapped with detail) on any malformed input.
func ParseMapCode(code string) (*MapCode, error) {
	mc, body, err := parseHeader(code)
	if err != nil {
		return nil, err
	}

	cells := make([]Cell, mc.Width*mc.Height)
	checkpoints, teleporters := 0, 0
	cursor := -1
	for _, item := range strings.Split(body, ".") {
		if item == "" {
			continue
		}
		skipStr, typ, ok := strings.Cut(item, ",")
		if !ok || typ == "" {
			return nil, fmt.Errorf("%w: item %q", ErrMapCode, item)
		}
		skip := 0
		if skipStr != "" {
			n, err := strconv.Atoi(skipStr)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w: skip in item %q", ErrMapCode, item)
			}
			skip = n
		}
		cursor += skip + 1
		if cursor >= len(cells) {
			return nil, fmt.Errorf("%w: item %q lands outside the %dx%d board", ErrMapCode, item, mc.Width, mc.Height)
		}

		c, err := parseItemType(typ)
		if err != nil {
			return nil, err
		}
		switch c.Kind {
		case Checkpoint:
			checkpoints = max(checkpoints, c.Index+1)
		case Teleporter:
			teleporters = max(teleporters, c.Index+1)
		}
		cells[cursor] = c
	}

	codes := make([]int32, len(cells))
	for i, c := range cells {
		codes[i] = Encode(c, checkpoints)
	}
	g, err := New(codes, mc.Height, mc.Width, checkpoints, teleporters)
	if err != nil {
		return nil, err
	}
	mc.Grid = g

	return mc, nil
}

// MapCodeHeader parses only the header of a map code and returns it with a
// nil Grid. It allocates nothing proportional to the board, so callers can
// check Width and Height before calling ParseMapCode.
func MapCodeHeader(code string) (*MapCode, error) {
	mc, _, err := parseHeader(code)
	return mc, err
}

// parseHeader splits code at ':' and decodes the "W.H.walls.name" header.
func parseHeader(code string) (*MapCode, string, error) {
	head, body, ok := strings.Cut(strings.TrimSpace(code), ":")
	if !ok {
		return nil, "", fmt.Errorf("%w: missing ':' separator", ErrMapCode)
	}

	fields := strings.Split(head, ".")
	if len(fields) < 3 {
		return nil, "", fmt.Errorf("%w: header %q needs width.height.walls", ErrMapCode, head)
	}
	var dims [3]int
	for i := range dims {
		n, err := strconv.Atoi(fields[i])
		if err != nil || n < 0 {
			return nil, "", fmt.Errorf("%w: header field %d %q", ErrMapCode, i, fields[i])
		}
		dims[i] = n
	}
	mc := &MapCode{Width: dims[0], Height: dims[1], Walls: dims[2]}
	if len(fields) > 3 {
		mc.Name = fields[3]
	}
	if mc.Width == 0 || mc.Height == 0 {
		return nil, "", fmt.Errorf("%w: %w", ErrMapCode, ErrEmptyGrid)
	}

	return mc, body, nil
}

// parseItemType decodes a body type token such as "r1", "c2" or "u1".
func parseItemType(typ string) (Cell, error) {
	n := 1
	if len(typ) > 1 {
		v, err := strconv.Atoi(typ[1:])
		if err != nil || v < 1 {
			return Cell{}, fmt.Errorf("%w: type %q", ErrMapCode, typ)
		}
		n = v
	}
	switch typ[0] {
	case 's':
		return Cell{Kind: Start}, nil
	case 'f':
		return GoalCell(), nil
	case 'r':
		return Cell{Kind: Rock}, nil
	case 'w':
		return Cell{Kind: Wall}, nil
	case 'z':
		return Cell{Kind: Ice}, nil
	case 'c':
		return CheckpointCell(n - 1), nil
	case 't':
		return TeleporterCell(n-1, In), nil
	case 'u':
		return TeleporterCell(n-1, Out), nil
	}
	return Cell{}, fmt.Errorf("%w: unknown type %q", ErrMapCode, typ)
}
