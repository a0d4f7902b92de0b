// Package viewer draws a board and its route in the terminal.
package viewer

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/pathery/grid"
	"github.com/katalvlaran/pathery/pathfinder"
)

// Layout rows.
const (
	titleRow = 0
	boardRow = 2
)

var (
	styleTitle  = tcell.StyleDefault.Bold(true)
	stylePath   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleFail   = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// Viewer renders one solved board on a tcell.Screen.
type Viewer struct {
	screen tcell.Screen
	g      *grid.Grid
	route  *pathfinder.Route
	title  string
	onPath map[grid.Position]bool
}

// New returns a Viewer for g and route. route may be nil.
func New(screen tcell.Screen, g *grid.Grid, route *pathfinder.Route, title string) *Viewer {
	if route == nil {
		route = &pathfinder.Route{Blocked: -1}
	}
	onPath := make(map[grid.Position]bool, len(route.Path))
	for _, p := range route.Path {
		onPath[p] = true
	}
	return &Viewer{screen: screen, g: g, route: route, title: title, onPath: onPath}
}

// Draw paints the title, the board and a status line, then shows the screen.
// Path cells that hold no item are drawn with grid.PathGlyph.
func (v *Viewer) Draw() {
	v.screen.Clear()
	v.text(0, titleRow, v.title, styleTitle)

	for row := 0; row < v.g.Height(); row++ {
		for col := 0; col < v.g.Width(); col++ {
			c := v.g.At(row, col)
			r, style := grid.Glyph(c), styleFor(c)
			if v.onPath[grid.Position{Row: row, Col: col}] {
				if c.Kind == grid.Empty || c.Kind == grid.Ice {
					r = grid.PathGlyph
				}
				style = stylePath
			}
			v.screen.SetContent(col, boardRow+row, r, nil, style)
		}
	}

	statusRow := boardRow + v.g.Height() + 1
	if v.route.Reachable() {
		status := fmt.Sprintf("steps: %d", len(v.route.Path))
		if len(v.route.Teleporters) > 0 {
			status += fmt.Sprintf("  teleporters: %v", v.route.Teleporters)
		}
		v.text(0, statusRow, status, styleStatus)
	} else {
		v.text(0, statusRow, fmt.Sprintf("unreachable (stage %d)", v.route.Blocked), styleFail)
	}
	v.text(0, statusRow+1, "q / Esc to quit", styleStatus)

	v.screen.Show()
}

// Run draws the board and blocks until the user quits or ctx ends.
// The caller owns the screen and must Init and Fini it.
func (v *Viewer) Run(ctx context.Context) error {
	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				v.screen.Sync()
				v.Draw()
			case *tcell.EventKey:
				if quits(ev) {
					return nil
				}
			}
		}
	}
}

func quits(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

func (v *Viewer) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func styleFor(c grid.Cell) tcell.Style {
	switch c.Kind {
	case grid.Start:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case grid.Goal:
		return tcell.StyleDefault.Foreground(tcell.ColorRed)
	case grid.Checkpoint:
		return tcell.StyleDefault.Foreground(tcell.ColorPurple)
	case grid.Teleporter:
		return tcell.StyleDefault.Foreground(tcell.ColorBlue)
	case grid.Ice:
		return tcell.StyleDefault.Foreground(tcell.ColorAqua)
	case grid.Rock, grid.Wall:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	}
	return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
}
