// Package gridgraph defines core types, options, and sentinel errors
// for the grid model of github.com/katalvlaran/turnpath.
package gridgraph

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside [0,width)×[0,height).
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
	// ErrGridTooLarge indicates width×height above MaxCells.
	ErrGridTooLarge = errors.New("gridgraph: grid has too many cells")
)

// Coordinate identifies a grid cell by column (X) and row (Y).
// Equality and map hashing are by value.
type Coordinate struct {
	X, Y int
}

// Add returns c moved one step in direction d.
func (c Coordinate) Add(d Direction) Coordinate {
	dx, dy := d.Delta()
	return Coordinate{X: c.X + dx, Y: c.Y + dy}
}

// String renders c as "(x,y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Less orders coordinates row-major: by Y, then by X.
func (c Coordinate) Less(o Coordinate) bool {
	if c.Y != o.Y {
		return c.Y < o.Y
	}
	return c.X < o.X
}

// Direction is one of the eight compass moves, or None for "no move yet".
type Direction int

const (
	// None marks the start node, which was not entered by any move.
	None Direction = iota
	North
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// compass lists the eight moves in neighbour order.
var compass = [...]Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

// orthogonal lists the four non-diagonal moves in neighbour order.
var orthogonal = [...]Direction{North, East, South, West}

// deltas[d] is the (dx,dy) offset of direction d. Y grows downward.
var deltas = [...][2]int{
	None:      {0, 0},
	North:     {0, -1},
	NorthEast: {1, -1},
	East:      {1, 0},
	SouthEast: {1, 1},
	South:     {0, 1},
	SouthWest: {-1, 1},
	West:      {-1, 0},
	NorthWest: {-1, -1},
}

var directionNames = [...]string{
	None:      "None",
	North:     "N",
	NorthEast: "NE",
	East:      "E",
	SouthEast: "SE",
	South:     "S",
	SouthWest: "SW",
	West:      "W",
	NorthWest: "NW",
}

// Delta returns the column and row offsets of d.
func (d Direction) Delta() (dx, dy int) {
	if d < None || d > NorthWest {
		return 0, 0
	}
	return deltas[d][0], deltas[d][1]
}

// IsDiagonal reports whether d changes both column and row.
func (d Direction) IsDiagonal() bool {
	dx, dy := d.Delta()
	return dx != 0 && dy != 0
}

func (d Direction) String() string {
	if d < None || d > NorthWest {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// DirectionBetween returns the single-step direction leading from a to b.
// ok is false when b is not one of the eight cells around a.
func DirectionBetween(a, b Coordinate) (d Direction, ok bool) {
	dx, dy := b.X-a.X, b.Y-a.Y
	for _, d = range compass {
		if deltas[d][0] == dx && deltas[d][1] == dy {
			return d, true
		}
	}
	return None, false
}

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8 Connectivity = iota
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4
)

func (c Connectivity) String() string {
	if c == Conn4 {
		return "4"
	}
	return "8"
}

// CornerRule decides when a diagonal move may pass its two orthogonal flanks.
type CornerRule int

const (
	// CornerNoSqueeze forbids a diagonal only when both flanking cells are blocked.
	CornerNoSqueeze CornerRule = iota
	// CornerStrict forbids a diagonal when either flanking cell is blocked.
	CornerStrict
	// CornerAllow never restricts diagonal moves.
	CornerAllow
)

func (r CornerRule) String() string {
	switch r {
	case CornerStrict:
		return "strict"
	case CornerAllow:
		return "allow"
	default:
		return "no-squeeze"
	}
}

// GridOptions contains tunable move rules for a Grid.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// Corner restricts diagonal moves around blocked cells.
	Corner CornerRule
}

// DefaultGridOptions returns GridOptions with default settings:
// Conn=Conn8, Corner=CornerNoSqueeze.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Conn:   Conn8,
		Corner: CornerNoSqueeze,
	}
}

// Grid is a Width×Height map of free and blocked cells. It is immutable once
// built and safe for concurrent readers.
type Grid struct {
	width, height int
	blocked       mapset.Set[Coordinate]
	opts          GridOptions
	moves         []Direction
}
