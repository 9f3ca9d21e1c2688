package astar_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/turnpath/astar"
	"github.com/katalvlaran/turnpath/gridgraph"
)

// benchGrid returns an n×n grid with roughly density of its cells blocked,
// keeping the two corners free.
func benchGrid(b *testing.B, n int, density float64) *gridgraph.Grid {
	b.Helper()
	rng := rand.New(rand.NewSource(7))
	var blocked []gridgraph.Coordinate
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if (x == 0 && y == 0) || (x == n-1 && y == n-1) {
				continue
			}
			if rng.Float64() < density {
				blocked = append(blocked, gridgraph.Coordinate{X: x, Y: y})
			}
		}
	}
	g, err := gridgraph.New(n, n, blocked, gridgraph.DefaultGridOptions())
	if err != nil {
		b.Fatal(err)
	}
	return g
}

func benchmarkRun(b *testing.B, n int, density float64) {
	g := benchGrid(b, n, density)
	eng, err := astar.New(g, gridgraph.Coordinate{X: 0, Y: 0}, gridgraph.Coordinate{X: n - 1, Y: n - 1})
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		eng.Restart()
		if _, err := eng.RunToCompletion(ctx, 0); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRunOpen64(b *testing.B)       { benchmarkRun(b, 64, 0) }
func BenchmarkRunScattered64(b *testing.B)  { benchmarkRun(b, 64, 0.25) }
func BenchmarkRunScattered256(b *testing.B) { benchmarkRun(b, 256, 0.25) }
