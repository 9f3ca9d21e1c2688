package frontier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/turnpath/frontier"
	"github.com/katalvlaran/turnpath/gridgraph"
)

func c(x, y int) gridgraph.Coordinate { return gridgraph.Coordinate{X: x, Y: y} }

func popAll(t *testing.T, f *frontier.Frontier) []gridgraph.Coordinate {
	t.Helper()
	var out []gridgraph.Coordinate
	for !f.IsEmpty() {
		e, ok := f.PopMin()
		require.True(t, ok)
		out = append(out, e.Coord)
	}
	return out
}

func TestPopMin_PriorityOrder(t *testing.T) {
	f := frontier.New(frontier.TieLIFO)
	f.Push(c(0, 0), 3)
	f.Push(c(1, 0), 1)
	f.Push(c(2, 0), 2.5)
	f.Push(c(3, 0), 0.5)

	assert.Equal(t, []gridgraph.Coordinate{c(3, 0), c(1, 0), c(2, 0), c(0, 0)}, popAll(t, f))

	_, ok := f.PopMin()
	assert.False(t, ok, "empty frontier pops nothing")
}

// TestTieBreak_Pinned fixes the order of equal-priority entries for both
// policies; the engine's path shape depends on it.
func TestTieBreak_Pinned(t *testing.T) {
	push := func(f *frontier.Frontier) {
		f.Push(c(0, 0), 5)
		f.Push(c(1, 0), 5)
		f.Push(c(2, 0), 4)
		f.Push(c(3, 0), 5)
	}

	lifo := frontier.New(frontier.TieLIFO)
	push(lifo)
	assert.Equal(t, []gridgraph.Coordinate{c(2, 0), c(3, 0), c(1, 0), c(0, 0)}, popAll(t, lifo))

	fifo := frontier.New(frontier.TieFIFO)
	push(fifo)
	assert.Equal(t, []gridgraph.Coordinate{c(2, 0), c(0, 0), c(1, 0), c(3, 0)}, popAll(t, fifo))
}

func TestNew_UnknownPolicyFallsBack(t *testing.T) {
	f := frontier.New(frontier.TieBreak(42))
	assert.Equal(t, frontier.TieLIFO, f.Policy())
}

func TestDuplicates_LenContainsSnapshot(t *testing.T) {
	f := frontier.New(frontier.TieLIFO)
	f.Push(c(2, 1), 4)
	f.Push(c(0, 1), 6)
	f.Push(c(2, 1), 3) // improved priority, old entry goes stale

	assert.Equal(t, 3, f.Len(), "Len counts raw entries")
	assert.Equal(t, []gridgraph.Coordinate{c(0, 1), c(2, 1)}, f.Snapshot())

	e, ok := f.PopMin()
	require.True(t, ok)
	assert.Equal(t, c(2, 1), e.Coord)
	assert.Equal(t, 3.0, e.Priority)
	assert.Equal(t, uint64(3), e.Seq)
	assert.True(t, f.Contains(c(2, 1)), "the stale entry is still pending")

	e, _ = f.PopMin()
	assert.Equal(t, c(2, 1), e.Coord)
	assert.Equal(t, 4.0, e.Priority)
	assert.False(t, f.Contains(c(2, 1)))
	assert.True(t, f.Contains(c(0, 1)))
	assert.Equal(t, 1, f.Len())
}

func TestPeek(t *testing.T) {
	f := frontier.New(frontier.TieFIFO)
	_, ok := f.Peek()
	assert.False(t, ok)

	f.Push(c(1, 1), 2)
	f.Push(c(0, 0), 1)
	e, ok := f.Peek()
	require.True(t, ok)
	assert.Equal(t, c(0, 0), e.Coord)
	assert.Equal(t, 2, f.Len(), "Peek does not remove")
}

func TestReset(t *testing.T) {
	f := frontier.New(frontier.TieLIFO)
	f.Push(c(0, 0), 1)
	f.Push(c(1, 0), 1)
	f.Reset()

	assert.True(t, f.IsEmpty())
	assert.Zero(t, f.Len())
	assert.Empty(t, f.Snapshot())
	assert.False(t, f.Contains(c(0, 0)))

	f.Push(c(5, 5), 9)
	e, _ := f.PopMin()
	assert.Equal(t, uint64(1), e.Seq, "sequence restarts after Reset")
}

func TestSnapshot_IsCopy(t *testing.T) {
	f := frontier.New(frontier.TieLIFO)
	f.Push(c(0, 0), 1)
	snap := f.Snapshot()
	snap[0] = c(9, 9)
	assert.Equal(t, []gridgraph.Coordinate{c(0, 0)}, f.Snapshot())
}

func TestParseTieBreak(t *testing.T) {
	for in, want := range map[string]frontier.TieBreak{
		"lifo": frontier.TieLIFO,
		"LIFO": frontier.TieLIFO,
		"":     frontier.TieLIFO,
		"fifo": frontier.TieFIFO,
		"Fifo": frontier.TieFIFO,
	} {
		got, err := frontier.ParseTieBreak(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := frontier.ParseTieBreak("random")
	assert.ErrorIs(t, err, frontier.ErrUnknownTieBreak)
	assert.Equal(t, "fifo", frontier.TieFIFO.String())
	assert.Equal(t, "TieBreak(7)", frontier.TieBreak(7).String())
}
