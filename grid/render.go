package grid

import "strings"

// PathGlyph marks Empty or Ice cells that lie on a rendered path.
const PathGlyph = '•'

// Glyph returns the rune used to draw a cell.
// Checkpoints are drawn as letters from 'A'; teleporter ports as 't' (IN)
// and 'u' (OUT), matching map code type letters.
func Glyph(c Cell) rune {
	switch c.Kind {
	case Start:
		return 'S'
	case Rock:
		return '█'
	case Wall:
		return '#'
	case Ice:
		return '~'
	case Goal:
		return 'G'
	case Checkpoint:
		if c.Index < 26 {
			return rune('A' + c.Index)
		}
		return '?'
	case Teleporter:
		if c.Port == In {
			return 't'
		}
		return 'u'
	default:
		return '░'
	}
}

// Render draws the grid one row per line, cells separated by '|'.
// Empty and Ice cells visited by path are drawn with PathGlyph.
// path may be nil.
func Render(g *Grid, path Path) string {
	onPath := make([]bool, g.Len())
	for _, p := range path {
		if g.InBounds(p.Row, p.Col) {
			onPath[g.Index(p.Row, p.Col)] = true
		}
	}

	var sb strings.Builder
	for r := 0; r < g.height; r++ {
		sb.WriteByte('|')
		for c := 0; c < g.width; c++ {
			i := g.Index(r, c)
			cell := g.cells[i]
			if onPath[i] && (cell.Kind == Empty || cell.Kind == Ice) {
				sb.WriteRune(PathGlyph)
			} else {
				sb.WriteRune(Glyph(cell))
			}
			sb.WriteByte('|')
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
