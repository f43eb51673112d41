package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/VictorJude046/A-Path-finding-project/core"
	"github.com/VictorJude046/A-Path-finding-project/occupancy"
	"github.com/VictorJude046/A-Path-finding-project/world"
)

// Grid origin on screen, leaves room for the border
const (
	originX = 1
	originY = 1
)

var (
	styleBorder   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleFree     = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	styleObstacle = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleRoute    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleDest     = tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleError    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleHint     = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

var shapeGlyph = map[occupancy.Shape]rune{
	occupancy.ShapeSquare:   '■',
	occupancy.ShapeCircle:   '●',
	occupancy.ShapeTriangle: '▲',
	occupancy.ShapeDiamond:  '◆',
}

// cellAt maps a screen position to a grid cell
func (a *app) cellAt(x, y int) (core.Point, bool) {
	p := core.Point{X: (x - originX) / a.cellSize, Y: y - originY}
	if x < originX || y < originY {
		return p, false
	}
	return p, p.Within(a.world.Cols(), a.world.Rows())
}

func (a *app) putCell(p core.Point, r rune, style tcell.Style) {
	sx := originX + p.X*a.cellSize
	a.screen.SetContent(sx, originY+p.Y, r, nil, style)
	fill := ' '
	if r == '█' {
		fill = r
	}
	for i := 1; i < a.cellSize; i++ {
		a.screen.SetContent(sx+i, originY+p.Y, fill, nil, style)
	}
}

func (a *app) draw() {
	a.screen.Clear()
	v := a.world.View()

	a.drawBorder(v)

	for y := 0; y < v.Rows; y++ {
		for x := 0; x < v.Cols; x++ {
			a.putCell(core.Point{X: x, Y: y}, '·', styleFree)
		}
	}
	for _, p := range v.Obstacles {
		a.putCell(p, '█', styleObstacle)
	}
	for _, p := range v.Route {
		a.putCell(p, '•', styleRoute)
	}
	if v.HasDestination {
		a.putCell(v.Destination, 'X', styleDest)
	}
	for _, e := range v.Entities {
		style := tcell.StyleDefault.Foreground(tcell.GetColor(e.Look.Color))
		if e.ID == a.dragging {
			style = style.Reverse(true)
		}
		a.putCell(e.Pos, shapeGlyph[e.Look.Shape], style)
	}

	a.drawStatus(v)
	a.screen.Show()
}

func (a *app) drawBorder(v world.View) {
	w := v.Cols*a.cellSize + 1
	h := v.Rows + 1
	for x := 0; x <= w; x++ {
		a.screen.SetContent(x, 0, '─', nil, styleBorder)
		a.screen.SetContent(x, h, '─', nil, styleBorder)
	}
	for y := 0; y <= h; y++ {
		a.screen.SetContent(0, y, '│', nil, styleBorder)
		a.screen.SetContent(w, y, '│', nil, styleBorder)
	}
	a.screen.SetContent(0, 0, '┌', nil, styleBorder)
	a.screen.SetContent(w, 0, '┐', nil, styleBorder)
	a.screen.SetContent(0, h, '└', nil, styleBorder)
	a.screen.SetContent(w, h, '┘', nil, styleBorder)
}

func (a *app) drawStatus(v world.View) {
	y := v.Rows + 2

	mode := fmt.Sprintf("[%s] objects:%d obstacles:%d", a.mode, len(v.Entities)-boolInt(v.HasAgent), len(v.Obstacles))
	if a.walking {
		mode += fmt.Sprintf(" walking:%d", len(v.Route))
	}
	a.text(0, y, mode, styleStatus)

	style := styleStatus
	if a.failed {
		style = styleError
	}
	a.text(0, y+1, a.status, style)

	if a.mode == modeDestination && a.hovering && v.HasAgent {
		hint := "unreachable"
		if a.world.ReachableFromAgent(a.hover) {
			hint = "reachable"
		}
		a.text(0, y+2, fmt.Sprintf("(%d,%d) %s", a.hover.X, a.hover.Y, hint), styleHint)
	}
}

func (a *app) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		a.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
