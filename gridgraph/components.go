package gridgraph

import "github.com/zyedidia/generic/mapset"

// ConnectedComponents finds all contiguous regions of free cells, using the
// same move rules as Neighbors. Regions are returned in row-major order of
// their first cell; cells inside a region are in BFS discovery order.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) ConnectedComponents() [][]Coordinate {
	total := g.width * g.height
	seen := make([]bool, total)
	var comps [][]Coordinate

	for i := 0; i < total; i++ {
		c := g.Coordinate(i)
		if seen[i] || g.IsBlocked(c) {
			continue
		}
		comps = append(comps, g.flood(c, seen))
	}

	return comps
}

// Connected reports whether b can be reached from a. Both cells must be free.
// The BFS returns as soon as b is discovered.
// Complexity: O(R·d) worst case, R = cells in a's region.
func (g *Grid) Connected(a, b Coordinate) bool {
	if g.IsBlocked(a) || g.IsBlocked(b) {
		return false
	}
	if a == b {
		return true
	}
	seen := mapset.New[Coordinate]()
	seen.Put(a)
	queue := []Coordinate{a}
	for qi := 0; qi < len(queue); qi++ {
		for _, n := range g.Neighbors(queue[qi]) {
			if n.To == b {
				return true
			}
			if !seen.Has(n.To) {
				seen.Put(n.To)
				queue = append(queue, n.To)
			}
		}
	}

	return false
}

// flood collects every cell reachable from start that is not yet seen,
// marking each one in seen. BFS over Neighbors.
func (g *Grid) flood(start Coordinate, seen []bool) []Coordinate {
	seen[g.Index(start)] = true
	queue := []Coordinate{start}
	for qi := 0; qi < len(queue); qi++ {
		for _, n := range g.Neighbors(queue[qi]) {
			vi := g.Index(n.To)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, n.To)
			}
		}
	}

	return queue
}
