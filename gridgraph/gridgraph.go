// Package gridgraph provides the grid model used by the turnpath search:
// bounds checks, blocked-cell queries and the legal moves out of a cell.
//
// Cells outside the grid behave as blocked for every query.
package gridgraph

import (
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// blockedRune marks a blocked cell in FromRows input.
const blockedRune = '#'

// MaxCells bounds width×height so that row-major indices and per-cell
// tables stay addressable.
const MaxCells = 1 << 28

// New constructs a width×height Grid with the given blocked cells.
// Duplicate blocked coordinates are collapsed.
// Returns ErrEmptyGrid if width or height is below one,
// ErrGridTooLarge if width×height exceeds MaxCells,
// ErrOutOfBounds if any blocked coordinate lies outside the grid.
// Complexity: O(len(blocked)) time and memory.
func New(width, height int, blocked []Coordinate, opts GridOptions) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, ErrEmptyGrid
	}
	if width > MaxCells/height {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrGridTooLarge, width, height, MaxCells)
	}
	g := newGrid(width, height, opts)
	for _, c := range blocked {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("%w: blocked cell %v in %dx%d grid", ErrOutOfBounds, c, width, height)
		}
		g.blocked.Put(c)
	}

	return g, nil
}

// FromRows builds a Grid from an ASCII map: row y is rows[y], column x is
// the x-th rune of that row. '#' marks a blocked cell, any other rune is free.
// Returns ErrEmptyGrid for no rows or empty rows, ErrNonRectangular if row
// lengths differ.
func FromRows(rows []string, opts GridOptions) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len([]rune(rows[0]))
	var blocked []Coordinate
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(runes), w)
		}
		for x, r := range runes {
			if r == blockedRune {
				blocked = append(blocked, Coordinate{X: x, Y: y})
			}
		}
	}

	return New(w, len(rows), blocked, opts)
}

// newGrid allocates an empty grid and precomputes its move list.
func newGrid(width, height int, opts GridOptions) *Grid {
	moves := compass[:]
	if opts.Conn == Conn4 {
		moves = orthogonal[:]
	}
	return &Grid{
		width:   width,
		height:  height,
		blocked: mapset.New[Coordinate](),
		opts:    opts,
		moves:   moves,
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Options returns the move rules the grid was built with.
func (g *Grid) Options() GridOptions { return g.opts }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// IsBlocked reports whether c is blocked. Out-of-bounds cells count as blocked.
// Complexity: O(1).
func (g *Grid) IsBlocked(c Coordinate) bool {
	return !g.InBounds(c) || g.blocked.Has(c)
}

// IsFree reports whether c is in bounds and traversable.
func (g *Grid) IsFree(c Coordinate) bool {
	return !g.IsBlocked(c)
}

// BlockedCount returns the number of blocked cells.
func (g *Grid) BlockedCount() int {
	return g.blocked.Size()
}

// BlockedCells returns a row-major sorted copy of the blocked set.
func (g *Grid) BlockedCells() []Coordinate {
	out := make([]Coordinate, 0, g.blocked.Size())
	g.blocked.Each(func(c Coordinate) {
		out = append(out, c)
	})
	SortRowMajor(out)

	return out
}

// WithBlocked returns a copy of g with the extra cells blocked.
// The receiver is left untouched.
func (g *Grid) WithBlocked(cells ...Coordinate) (*Grid, error) {
	return New(g.width, g.height, append(g.BlockedCells(), cells...), g.opts)
}

// WithoutBlocked returns a copy of g with the given cells freed.
// Cells that were not blocked are ignored.
func (g *Grid) WithoutBlocked(cells ...Coordinate) (*Grid, error) {
	drop := mapset.New[Coordinate]()
	for _, c := range cells {
		drop.Put(c)
	}
	keep := make([]Coordinate, 0, g.blocked.Size())
	for _, c := range g.BlockedCells() {
		if !drop.Has(c) {
			keep = append(keep, c)
		}
	}

	return New(g.width, g.height, keep, g.opts)
}

// Neighbor is one legal move out of a cell.
type Neighbor struct {
	To  Coordinate
	Dir Direction
}

// Neighbors returns the legal moves out of c in compass order
// (N, NE, E, SE, S, SW, W, NW; orthogonal only under Conn4).
// A blocked or out-of-bounds c has no neighbors.
// Complexity: O(d).
func (g *Grid) Neighbors(c Coordinate) []Neighbor {
	if g.IsBlocked(c) {
		return nil
	}
	out := make([]Neighbor, 0, len(g.moves))
	for _, d := range g.moves {
		n := c.Add(d)
		if g.IsBlocked(n) {
			continue
		}
		if d.IsDiagonal() && !g.cornerOK(c, d) {
			continue
		}
		out = append(out, Neighbor{To: n, Dir: d})
	}

	return out
}

// IsStep reports whether b is a legal single move from a, and in which direction.
func (g *Grid) IsStep(a, b Coordinate) (Direction, bool) {
	d, ok := DirectionBetween(a, b)
	if !ok {
		return None, false
	}
	if g.opts.Conn == Conn4 && d.IsDiagonal() {
		return None, false
	}
	if g.IsBlocked(a) || g.IsBlocked(b) {
		return None, false
	}
	if d.IsDiagonal() && !g.cornerOK(a, d) {
		return None, false
	}

	return d, true
}

// cornerOK applies the grid's CornerRule to the diagonal move d out of c.
// The two flanks are the orthogonal cells sharing an edge with both c and c+d.
func (g *Grid) cornerOK(c Coordinate, d Direction) bool {
	dx, dy := d.Delta()
	flankA := g.IsBlocked(Coordinate{X: c.X + dx, Y: c.Y})
	flankB := g.IsBlocked(Coordinate{X: c.X, Y: c.Y + dy})
	switch g.opts.Corner {
	case CornerAllow:
		return true
	case CornerStrict:
		return !flankA && !flankB
	default:
		return !(flankA && flankB)
	}
}

// Index maps c to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(c Coordinate) int {
	return c.Y*g.width + c.X
}

// Coordinate converts a row-major index back to a Coordinate.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coordinate {
	return Coordinate{X: idx % g.width, Y: idx / g.width}
}

// SortRowMajor sorts cs in place by row, then column.
func SortRowMajor(cs []Coordinate) {
	sort.Slice(cs, func(i, j int) bool { return cs[i].Less(cs[j]) })
}
