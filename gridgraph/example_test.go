// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/turnpath/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Neighbors
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Neighbors lists the legal moves out of a cell next to a wall.
// Scenario:
//
//   - 3×3 grid, wall at (1,0) and (1,1)
//   - Default rules: Conn8, no squeezing between two blocked flanks
//   - From (0,1): N, S and the SE diagonal (flank (1,1) is blocked but
//     flank (0,2) is free); NE and E land on the wall.
func ExampleGrid_Neighbors() {
	g, _ := gridgraph.FromRows([]string{
		".#.",
		".#.",
		"...",
	}, gridgraph.DefaultGridOptions())

	for _, n := range g.Neighbors(gridgraph.Coordinate{X: 0, Y: 1}) {
		fmt.Printf("%s -> %v\n", n.Dir, n.To)
	}
	// Output:
	// N -> (0,0)
	// SE -> (1,2)
	// S -> (0,2)
}

////////////////////////////////////////////////////////////////////////////////
// Example: ConnectedComponents
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_ConnectedComponents identifies regions separated by a wall.
//
// Complexity: O(W·H·8), Memory: O(W·H)
func ExampleGrid_ConnectedComponents() {
	g, _ := gridgraph.FromRows([]string{
		"..#..",
		"..#..",
		"..#..",
	}, gridgraph.DefaultGridOptions())

	comps := g.ConnectedComponents()
	fmt.Println("regions:", len(comps))
	for i, comp := range comps {
		fmt.Printf("region %d: %d cells, first %v\n", i, len(comp), comp[0])
	}
	// Output:
	// regions: 2
	// region 0: 6 cells, first (0,0)
	// region 1: 6 cells, first (3,0)
}
