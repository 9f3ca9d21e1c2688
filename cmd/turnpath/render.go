package main

import (
	"strings"

	"github.com/katalvlaran/turnpath/gridgraph"
)

// Map glyphs. Later layers overwrite earlier ones; S and G always win.
const (
	glyphFree     = '.'
	glyphBlocked  = '#'
	glyphVisited  = 'x'
	glyphFrontier = 'o'
	glyphPath     = '*'
	glyphStart    = 'S'
	glyphGoal     = 'G'
)

// layer paints one set of cells with one glyph.
type layer struct {
	cells []gridgraph.Coordinate
	glyph rune
}

// renderMap draws g row by row with the layers painted in order.
func renderMap(g *gridgraph.Grid, start, goal gridgraph.Coordinate, layers ...layer) string {
	w, h := g.Width(), g.Height()
	canvas := make([][]rune, h)
	for y := range canvas {
		canvas[y] = make([]rune, w)
		for x := range canvas[y] {
			canvas[y][x] = glyphFree
			if g.IsBlocked(gridgraph.Coordinate{X: x, Y: y}) {
				canvas[y][x] = glyphBlocked
			}
		}
	}
	for _, l := range layers {
		for _, c := range l.cells {
			if g.InBounds(c) {
				canvas[c.Y][c.X] = l.glyph
			}
		}
	}
	canvas[start.Y][start.X] = glyphStart
	canvas[goal.Y][goal.X] = glyphGoal

	var b strings.Builder
	for _, row := range canvas {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}
