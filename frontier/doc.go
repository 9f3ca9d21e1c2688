// Package frontier implements the open list of the turnpath search: a
// min-priority queue of grid coordinates with a deterministic tie-break.
//
// Entries are ordered by (priority, sequence). Every Push stamps the entry
// with a monotonically increasing sequence number, so two entries with the
// same priority always pop in a well-defined order:
//
//	– TieLIFO (default): the most recently pushed entry first. A search that
//	  keeps extending the cell it just expanded finishes straight runs before
//	  opening siblings, which keeps the number of turns low.
//	– TieFIFO: insertion order.
//
// The queue does not support decrease-key. A coordinate whose priority
// improves is simply pushed again; the old entry stays behind and is
// recognised as stale by the caller when it is popped ("lazy decrease-key").
// Len therefore counts raw entries, stale ones included, while Snapshot and
// Contains speak about coordinates.
//
// Complexity:
//
//	– Push, PopMin: O(log N), N = raw entries.
//	– Contains:     O(1).
//	– Snapshot:     O(K log K), K = distinct pending coordinates.
package frontier
