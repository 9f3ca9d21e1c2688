// Package turnpath finds grid paths that favour long straight runs.
//
// 🚀 What is turnpath?
//
//	A small, step-driven A* for blocked rectangular grids:
//		• Grid model: 8- or 4-connected cells, configurable corner rule
//		• Cost model: equal diagonal and orthogonal steps, plus a turn penalty
//		• Frontier: min-heap with deterministic LIFO/FIFO tie-break
//		• Engine: Idle → Running → Found/Exhausted, one pop per Step
//		• CLI: solve a scenario, or step through it and watch the frontier
//
// ✨ Why turnpath?
//
//   - Owned engines – no globals; run as many independent searches as you like
//   - Pull, don't push – the engine returns step results and snapshots, callers draw
//   - Cooperative – RunToCompletion yields to a context and a step cap
//
// Packages:
//
//	gridgraph/        — Coordinate, Direction, Grid, neighbours and regions
//	cost/             — step costs, turn penalty, octile/manhattan/zero heuristics
//	frontier/         — the open list
//	astar/            — the search engine and path reconstruction
//	internal/config/  — YAML config and scenario files
//	internal/logger/  — zap + lumberjack logger construction
//	cmd/turnpath/     — the command-line tool
//
// Quick ASCII example (5×5, wall in column 2, S at (0,0), G at (4,4)):
//
//	S.#..
//	.*#..
//	.*#..
//	.*#..
//	..**G
//
//	go install github.com/katalvlaran/turnpath/cmd/turnpath@latest
package turnpath
