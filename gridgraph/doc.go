// Package gridgraph treats a rectangular map of free and blocked cells as a
// graph, answering the bounds, blocking and adjacency queries a grid search
// needs on every expansion.
//
// What:
//
//   - Grid holds a fixed Width×Height and a set of blocked Coordinates. It is
//     immutable once built; WithBlocked / WithoutBlocked return fresh copies.
//   - Neighbors yields the legal single moves out of a cell in fixed compass
//     order N, NE, E, SE, S, SW, W, NW.
//   - ConnectedComponents / Connected group free cells into regions that are
//     mutually reachable under the same move rules.
//
// Why:
//
//   - Game maps: the search engine asks "can I step from here to there?"
//     thousands of times per route; every answer is O(1).
//   - Visual debugging: a cheap reachability verdict can be shown next to an
//     incremental search before it has finished.
//
// Move rules:
//
//   - GridOptions.Conn: Conn8 (default, diagonals allowed) or Conn4.
//   - GridOptions.Corner decides whether a diagonal may pass between its two
//     orthogonal flanking cells:
//     CornerNoSqueeze (default) forbids it only when both flanks are blocked,
//     CornerStrict forbids it when either flank is blocked,
//     CornerAllow never forbids it.
//
// Coordinates:
//
//   - X is the column, Y is the row; Y grows downward, so North is (0,-1).
//   - Index / Coordinate convert to and from row-major indices.
//
// Complexity:
//
//   - InBounds, IsBlocked, IsStep: O(1).
//   - Neighbors: O(d), d = 4 or 8.
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: width or height below one.
//   - ErrNonRectangular: FromRows rows of differing lengths.
//   - ErrOutOfBounds: a blocked coordinate outside the grid.
package gridgraph
