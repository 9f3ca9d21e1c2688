package astar

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/turnpath/gridgraph"
)

// Path is an ordered sequence of coordinates from start to goal.
type Path []gridgraph.Coordinate

// Steps returns the number of moves, len(p)-1 (0 for an empty path).
func (p Path) Steps() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Start returns the first coordinate. ok is false for an empty path.
func (p Path) Start() (c gridgraph.Coordinate, ok bool) {
	if len(p) == 0 {
		return c, false
	}
	return p[0], true
}

// Goal returns the last coordinate. ok is false for an empty path.
func (p Path) Goal() (c gridgraph.Coordinate, ok bool) {
	if len(p) == 0 {
		return c, false
	}
	return p[len(p)-1], true
}

// Directions returns the move taken between each consecutive pair.
// Pairs that are not one step apart yield gridgraph.None.
func (p Path) Directions() []gridgraph.Direction {
	if len(p) < 2 {
		return nil
	}
	dirs := make([]gridgraph.Direction, len(p)-1)
	for i := 1; i < len(p); i++ {
		dirs[i-1], _ = gridgraph.DirectionBetween(p[i-1], p[i])
	}
	return dirs
}

// Turns counts the direction changes along the path.
func (p Path) Turns() int {
	dirs := p.Directions()
	turns := 0
	for i := 1; i < len(dirs); i++ {
		if dirs[i] != dirs[i-1] {
			turns++
		}
	}
	return turns
}

// Validate checks p against grid: non-empty, every cell free and every
// consecutive pair a legal move under the grid's options.
func (p Path) Validate(grid *gridgraph.Grid) error {
	if len(p) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	for i, c := range p {
		if grid.IsBlocked(c) {
			return fmt.Errorf("%w: cell %d %v is blocked or out of bounds", ErrInvalidPath, i, c)
		}
		if i > 0 {
			if _, ok := grid.IsStep(p[i-1], c); !ok {
				return fmt.Errorf("%w: %v→%v is not a legal move", ErrInvalidPath, p[i-1], c)
			}
		}
	}
	return nil
}

// String renders the path as "(0,0) → (1,1) → ...".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = c.String()
	}
	return strings.Join(parts, " → ")
}

// Path returns a fresh copy of the start→goal path. Only valid in Found.
func (e *Engine) Path() (Path, error) {
	if e.state != Found {
		return nil, fmt.Errorf("%w: Path in state %v", ErrInvalidState, e.state)
	}
	return e.reconstruct()
}

// Cost returns G of the goal. Only valid in Found.
func (e *Engine) Cost() (float64, error) {
	if e.state != Found {
		return 0, fmt.Errorf("%w: Cost in state %v", ErrInvalidState, e.state)
	}
	return e.nodes[e.goal].G, nil
}

// reconstruct walks parent links from the goal and reverses in place.
// A chain longer than the node table, or one that stops short of the
// start, is reported as ErrBrokenChain.
func (e *Engine) reconstruct() (Path, error) {
	path := make(Path, 0, 16)
	cur := e.goal
	for {
		if len(path) > len(e.nodes) {
			return nil, fmt.Errorf("%w: cycle through %v", ErrBrokenChain, cur)
		}
		node, ok := e.nodes[cur]
		if !ok {
			return nil, fmt.Errorf("%w: no node for %v", ErrBrokenChain, cur)
		}
		path = append(path, cur)
		if node.Parent == nil {
			break
		}
		cur = *node.Parent
	}
	if cur != e.start {
		return nil, fmt.Errorf("%w: chain ends at %v, not start %v", ErrBrokenChain, cur, e.start)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
