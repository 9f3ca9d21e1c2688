// Package astar implements the turnpath search engine: a step-driven A*
// over a gridgraph.Grid that prefers straight runs.
//
// The engine is an explicit, owned value. It never starts goroutines and
// never draws anything; callers drive it one Step at a time (or in a bounded
// loop with RunToCompletion) and read snapshots between steps.
//
// State machine:
//
//	Idle ──Step──▶ Running ──Step──▶ Found      (goal popped)
//	                  │
//	                  └────Step────▶ Exhausted  (frontier empty)
//
//	Restart:     any state ──▶ Idle (Found when start == goal)
//	Reconfigure: any state ──▶ Idle with a new grid and endpoints
//
// Each Step pops exactly one frontier entry. A popped entry that has been
// superseded by a cheaper discovery (lazy decrease-key) is reported as
// StepStale and nothing else happens, so step counts shown to a user are
// counts of pops.
//
// Costs and optimality:
//
//	Edge cost is cost.Model.StepCost: the base move cost plus TurnPenalty when
//	the move changes direction. The octile heuristic stays admissible because
//	the penalty only raises the true cost. Nodes are keyed by coordinate alone,
//	not by (coordinate, heading), so the search is turn-preferring rather than
//	turn-optimal; see package cost for when step count stays exactly minimal.
//
// Complexity:
//
//	– Time:  O(E log E) over a full run, E ≤ 8·W·H pushes.
//	– Space: O(W·H) nodes plus O(E) frontier entries.
//
// Errors (sentinel):
//
//	– ErrConfig          wraps every construction failure (nil grid,
//	                     out-of-bounds or blocked endpoint, bad cost model,
//	                     bad option).
//	– ErrNilGrid         New or Reconfigure was given a nil grid.
//	– ErrInvalidState    Step after Found/Exhausted, Path before Found.
//	– ErrNoPath          Search found the goal unreachable.
//	– ErrStepLimit       Search stopped at its step cap.
//	– ErrBrokenChain     parent links do not lead back to the start.
//	– ErrInvalidPath     Path.Validate rejected a path.
//
// Example usage:
//
//	eng, err := astar.Configure(5, 5, blocked, start, goal,
//	    astar.WithTieBreak(frontier.TieLIFO),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := eng.RunToCompletion(ctx, 0)
//	if err == nil && res.Outcome == astar.RunFound {
//	    fmt.Println(res.Path)
//	}
package astar
