package frontier

import (
	"github.com/zyedidia/generic/heap"

	"github.com/katalvlaran/turnpath/gridgraph"
)

// Frontier is a min-priority queue of coordinates. The zero value is not
// usable; call New. A Frontier is not safe for concurrent use.
type Frontier struct {
	policy  TieBreak
	h       *heap.Heap[Entry]
	pending map[gridgraph.Coordinate]int // raw entries per coordinate
	seq     uint64
}

// New returns an empty Frontier ordered by the given tie-break policy.
// Unknown policies fall back to TieLIFO.
func New(policy TieBreak) *Frontier {
	if policy != TieFIFO {
		policy = TieLIFO
	}
	f := &Frontier{policy: policy}
	f.Reset()
	return f
}

// less orders by priority, then by sequence according to the policy.
func (f *Frontier) less(a, b Entry) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	if f.policy == TieFIFO {
		return a.Seq < b.Seq
	}
	return a.Seq > b.Seq
}

// Policy returns the tie-break policy f was built with.
func (f *Frontier) Policy() TieBreak { return f.policy }

// Push adds c with the given priority. Earlier entries for c are kept.
func (f *Frontier) Push(c gridgraph.Coordinate, priority float64) {
	f.seq++
	f.h.Push(Entry{Coord: c, Priority: priority, Seq: f.seq})
	f.pending[c]++
}

// PopMin removes and returns the entry with the smallest priority.
// ok is false when the frontier is empty.
func (f *Frontier) PopMin() (e Entry, ok bool) {
	e, ok = f.h.Pop()
	if !ok {
		return Entry{}, false
	}
	if n := f.pending[e.Coord]; n <= 1 {
		delete(f.pending, e.Coord)
	} else {
		f.pending[e.Coord] = n - 1
	}
	return e, true
}

// Peek returns the entry PopMin would return, without removing it.
func (f *Frontier) Peek() (Entry, bool) {
	return f.h.Peek()
}

// IsEmpty reports whether no entries remain.
func (f *Frontier) IsEmpty() bool { return f.h.Size() == 0 }

// Len returns the number of raw entries, stale ones included.
func (f *Frontier) Len() int { return f.h.Size() }

// Contains reports whether at least one entry for c is pending.
func (f *Frontier) Contains(c gridgraph.Coordinate) bool {
	return f.pending[c] > 0
}

// Snapshot returns the distinct pending coordinates in row-major order.
// The slice is a fresh copy.
func (f *Frontier) Snapshot() []gridgraph.Coordinate {
	out := make([]gridgraph.Coordinate, 0, len(f.pending))
	for c := range f.pending {
		out = append(out, c)
	}
	gridgraph.SortRowMajor(out)
	return out
}

// Reset drops every entry and restarts the sequence counter.
func (f *Frontier) Reset() {
	f.h = heap.New[Entry](f.less)
	f.pending = make(map[gridgraph.Coordinate]int)
	f.seq = 0
}
