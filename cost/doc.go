// Package cost defines the movement cost and heuristic model of the turnpath
// search: what one step costs, what a change of direction adds, and how far
// the goal is estimated to be.
//
// Overview:
//
//   - Orthogonal and diagonal steps cost the same by default (1 and 1), not
//     the Euclidean 1 and √2.
//   - A step whose direction differs from the step before it pays an extra
//     TurnPenalty. The penalty breaks ties between equally long routes in
//     favour of the one with fewer, longer straight runs.
//   - Heuristics: Octile (D·max + (D2−D)·min, which is max(|dx|,|dy|) under
//     equal costs), Manhattan, and Zero (uniform-cost / Dijkstra mode).
//     Estimate multiplies the raw heuristic by Weight.
//
// Admissibility and the turn penalty:
//
//   - The turn penalty only ever adds non-negative cost to edges, so a
//     heuristic that lower-bounds the base cost still lower-bounds the
//     penalised cost. Octile stays admissible and consistent.
//   - What the penalty does break is optimality of a search keyed on
//     coordinates alone. A cell closed with its cheapest G may have been
//     entered from a direction that forces an extra turn later, while a
//     slightly dearer arrival would have continued straight. Routes are
//     therefore turn-preferring, not provably turn-optimal: a satisficing
//     refinement layered on a length-optimal search.
//   - Under unit step costs the step count itself stays exactly minimal as
//     long as TurnPenalty·L* < 1, where L* is the optimal step count. Each
//     closed cell satisfies G ≤ (1+TurnPenalty)·depth, so the integer length
//     of the returned route cannot exceed L*. DefaultTurnPenalty keeps that
//     bound for routes shorter than 1000 steps.
//   - Weight > 1 turns the search into weighted A*: faster, explicitly
//     satisficing. Admissible reports false for such models.
//
// Errors (sentinel):
//
//   - ErrBadCost          step cost not positive and finite.
//   - ErrBadPenalty       TurnPenalty negative or not finite.
//   - ErrBadWeight        Weight below 1 or not finite.
//   - ErrUnknownHeuristic unrecognised heuristic name or value.
package cost
