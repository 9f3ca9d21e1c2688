package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/turnpath/gridgraph"
)

// c is a short constructor for coordinates in table tests.
func c(x, y int) gridgraph.Coordinate { return gridgraph.Coordinate{X: x, Y: y} }

//----------------------------------------------------------------------------//
// New, FromRows and InBounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty or oversized grids and stray blockers.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name    string
		w, h    int
		blocked []gridgraph.Coordinate
		err     error
	}{
		{"ZeroWidth", 0, 3, nil, gridgraph.ErrEmptyGrid},
		{"ZeroHeight", 3, 0, nil, gridgraph.ErrEmptyGrid},
		{"BlockedOutside", 3, 3, []gridgraph.Coordinate{c(3, 0)}, gridgraph.ErrOutOfBounds},
		{"BlockedNegative", 3, 3, []gridgraph.Coordinate{c(0, -1)}, gridgraph.ErrOutOfBounds},
		{"ProductOverflows", 1 << 32, 1 << 32, nil, gridgraph.ErrGridTooLarge},
		{"AboveMaxCells", 100000, 100000, nil, gridgraph.ErrGridTooLarge},
		{"OneRowTooWide", gridgraph.MaxCells + 1, 1, nil, gridgraph.ErrGridTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.New(tc.w, tc.h, tc.blocked, gridgraph.DefaultGridOptions())
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%d,%d,%v) error = %v; want %v", tc.w, tc.h, tc.blocked, err, tc.err)
			}
		})
	}
}

// TestNew_AtMaxCells accepts a grid of exactly MaxCells cells without
// allocating per-cell storage.
func TestNew_AtMaxCells(t *testing.T) {
	g, err := gridgraph.New(gridgraph.MaxCells, 1, nil, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	assert.Equal(t, gridgraph.MaxCells-1, g.Index(c(gridgraph.MaxCells-1, 0)))
}

// TestFromRows_Errors verifies that FromRows rejects empty or ragged inputs.
func TestFromRows_Errors(t *testing.T) {
	_, err := gridgraph.FromRows(nil, gridgraph.DefaultGridOptions())
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)

	_, err = gridgraph.FromRows([]string{""}, gridgraph.DefaultGridOptions())
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)

	_, err = gridgraph.FromRows([]string{"...", ".."}, gridgraph.DefaultGridOptions())
	assert.ErrorIs(t, err, gridgraph.ErrNonRectangular)
}

// TestFromRows_Blocked checks dimensions and blocked cells parsed from ASCII.
func TestFromRows_Blocked(t *testing.T) {
	g, err := gridgraph.FromRows([]string{
		"..#",
		"#S.",
	}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, []gridgraph.Coordinate{c(2, 0), c(0, 1)}, g.BlockedCells())
	assert.Equal(t, 2, g.BlockedCount())
	assert.True(t, g.IsFree(c(1, 1)), "marker runes other than '#' are free")
}

// TestInBounds checks InBounds and the out-of-bounds-is-blocked rule on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, err := gridgraph.New(3, 2, nil, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	for _, xy := range []gridgraph.Coordinate{c(0, 0), c(2, 1), c(1, 1)} {
		assert.True(t, g.InBounds(xy), "InBounds(%v)", xy)
		assert.False(t, g.IsBlocked(xy), "IsBlocked(%v)", xy)
	}
	for _, xy := range []gridgraph.Coordinate{c(-1, 0), c(3, 0), c(1, 2), c(2, -1)} {
		assert.False(t, g.InBounds(xy), "InBounds(%v)", xy)
		assert.True(t, g.IsBlocked(xy), "IsBlocked(%v)", xy)
	}
}

// TestWithBlocked_Immutable verifies edits return new grids and leave the original alone.
func TestWithBlocked_Immutable(t *testing.T) {
	g, err := gridgraph.New(3, 3, []gridgraph.Coordinate{c(1, 1)}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	more, err := g.WithBlocked(c(0, 0), c(1, 1))
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Coordinate{c(0, 0), c(1, 1)}, more.BlockedCells())
	assert.Equal(t, []gridgraph.Coordinate{c(1, 1)}, g.BlockedCells())

	fewer, err := more.WithoutBlocked(c(1, 1), c(2, 2))
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Coordinate{c(0, 0)}, fewer.BlockedCells())

	_, err = g.WithBlocked(c(5, 5))
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
}

//----------------------------------------------------------------------------//
// Neighbors and IsStep Tests
//----------------------------------------------------------------------------//

// TestNeighbors_OpenCenter checks compass order for an interior cell under Conn8.
func TestNeighbors_OpenCenter(t *testing.T) {
	g, err := gridgraph.New(3, 3, nil, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	var dirs []gridgraph.Direction
	for _, n := range g.Neighbors(c(1, 1)) {
		dirs = append(dirs, n.Dir)
		assert.Equal(t, c(1, 1).Add(n.Dir), n.To)
	}
	assert.Equal(t, []gridgraph.Direction{
		gridgraph.North, gridgraph.NorthEast, gridgraph.East, gridgraph.SouthEast,
		gridgraph.South, gridgraph.SouthWest, gridgraph.West, gridgraph.NorthWest,
	}, dirs)
}

// TestNeighbors_Conn4 verifies only orthogonal moves exist under Conn4.
func TestNeighbors_Conn4(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn4
	g, err := gridgraph.New(3, 3, nil, opts)
	require.NoError(t, err)

	got := g.Neighbors(c(1, 1))
	require.Len(t, got, 4)
	for _, n := range got {
		assert.False(t, n.Dir.IsDiagonal(), "unexpected diagonal %v under Conn4", n.Dir)
	}
	_, ok := g.IsStep(c(0, 0), c(1, 1))
	assert.False(t, ok)
}

// TestNeighbors_CornerBoundsAndBlocked checks corner cells and blocked sources.
func TestNeighbors_CornerBoundsAndBlocked(t *testing.T) {
	g, err := gridgraph.FromRows([]string{
		"..",
		".#",
	}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	// (0,0) → E and S; the SE diagonal lands on the blocker.
	got := g.Neighbors(c(0, 0))
	assert.Equal(t, []gridgraph.Neighbor{
		{To: c(1, 0), Dir: gridgraph.East},
		{To: c(0, 1), Dir: gridgraph.South},
	}, got)
	assert.Empty(t, g.Neighbors(c(1, 1)), "blocked cell has no neighbors")
	assert.Empty(t, g.Neighbors(c(9, 9)), "out-of-bounds cell has no neighbors")
}

// TestCornerRules walks the three diagonal policies across one squeeze and one half-open corner.
//
//	Squeeze:      Half-open:
//	  . #           . #
//	  # .           . .
func TestCornerRules(t *testing.T) {
	squeeze := []string{".#", "#."}
	halfOpen := []string{".#", ".."}
	cases := []struct {
		rule     gridgraph.CornerRule
		rows     []string
		wantStep bool
	}{
		{gridgraph.CornerNoSqueeze, squeeze, false},
		{gridgraph.CornerNoSqueeze, halfOpen, true},
		{gridgraph.CornerStrict, squeeze, false},
		{gridgraph.CornerStrict, halfOpen, false},
		{gridgraph.CornerAllow, squeeze, true},
		{gridgraph.CornerAllow, halfOpen, true},
	}
	for _, tc := range cases {
		t.Run(tc.rule.String(), func(t *testing.T) {
			opts := gridgraph.DefaultGridOptions()
			opts.Corner = tc.rule
			g, err := gridgraph.FromRows(tc.rows, opts)
			require.NoError(t, err)

			d, ok := g.IsStep(c(0, 0), c(1, 1))
			assert.Equal(t, tc.wantStep, ok)
			if ok {
				assert.Equal(t, gridgraph.SouthEast, d)
			}
			// Neighbors and IsStep must agree.
			found := false
			for _, n := range g.Neighbors(c(0, 0)) {
				found = found || n.To == c(1, 1)
			}
			assert.Equal(t, tc.wantStep, found)
			// The rule is symmetric.
			_, back := g.IsStep(c(1, 1), c(0, 0))
			assert.Equal(t, tc.wantStep, back)
		})
	}
}

// TestIsStep_Rejects covers non-adjacent, self and blocked-endpoint pairs.
func TestIsStep_Rejects(t *testing.T) {
	g, err := gridgraph.FromRows([]string{"..#"}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	_, ok := g.IsStep(c(0, 0), c(2, 0))
	assert.False(t, ok, "two columns apart")
	_, ok = g.IsStep(c(0, 0), c(0, 0))
	assert.False(t, ok, "staying put is not a move")
	_, ok = g.IsStep(c(1, 0), c(2, 0))
	assert.False(t, ok, "into a blocker")
	d, ok := g.IsStep(c(1, 0), c(0, 0))
	assert.True(t, ok)
	assert.Equal(t, gridgraph.West, d)
}

//----------------------------------------------------------------------------//
// Direction and index helpers
//----------------------------------------------------------------------------//

func TestDirectionBetween(t *testing.T) {
	d, ok := gridgraph.DirectionBetween(c(2, 2), c(3, 1))
	assert.True(t, ok)
	assert.Equal(t, gridgraph.NorthEast, d)
	assert.True(t, d.IsDiagonal())
	assert.Equal(t, "NE", d.String())

	_, ok = gridgraph.DirectionBetween(c(2, 2), c(4, 2))
	assert.False(t, ok)

	assert.False(t, gridgraph.None.IsDiagonal())
	assert.Equal(t, "None", gridgraph.None.String())
	assert.Equal(t, "Direction(42)", gridgraph.Direction(42).String())
}

func TestIndexRoundTrip(t *testing.T) {
	g, err := gridgraph.New(4, 3, nil, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	assert.Equal(t, 6, g.Index(c(2, 1)))
	for i := 0; i < 12; i++ {
		assert.Equal(t, i, g.Index(g.Coordinate(i)))
	}
}
