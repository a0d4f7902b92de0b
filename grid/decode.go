package grid

// Raw codes of the basic kinds. Base is the first checkpoint code.
const (
	CodeEmpty int32 = 0
	CodeStart int32 = 1
	CodeRock  int32 = 2
	CodeWall  int32 = 3
	CodeIce   int32 = 4
	CodeGoal  int32 = 5
	Base      int32 = 6
)

var basicKinds = [Base]Kind{Empty, Start, Rock, Wall, Ice, Goal}

// Decode maps a raw cell code to its Cell. It is total: negative codes decode
// as Empty, and teleporter codes beyond the configured teleporter count still
// decode by the index arithmetic.
func Decode(code int32, checkpointCount int) Cell {
	switch {
	case code < 0:
		return Cell{Kind: Empty}
	case code < Base:
		return Cell{Kind: basicKinds[code]}
	case code < Base+int32(checkpointCount):
		return CheckpointCell(int(code - Base))
	}
	off := int(code - Base - int32(checkpointCount))
	return TeleporterCell(off/2, Port(off%2))
}

// Encode is the inverse of Decode.
func Encode(c Cell, checkpointCount int) int32 {
	switch c.Kind {
	case Checkpoint:
		return Base + int32(c.Index)
	case Teleporter:
		return Base + int32(checkpointCount) + int32(2*c.Index) + int32(c.Port)
	default:
		return int32(c.Kind)
	}
}
