package cost

import (
	"fmt"
	"math"

	"github.com/katalvlaran/turnpath/gridgraph"
)

// Validate checks every field of m and returns the first violation,
// wrapped with the offending value.
func (m Model) Validate() error {
	if !positiveFinite(m.Orthogonal) {
		return fmt.Errorf("%w: orthogonal=%v", ErrBadCost, m.Orthogonal)
	}
	if !positiveFinite(m.Diagonal) {
		return fmt.Errorf("%w: diagonal=%v", ErrBadCost, m.Diagonal)
	}
	if m.TurnPenalty < 0 || math.IsNaN(m.TurnPenalty) || math.IsInf(m.TurnPenalty, 0) {
		return fmt.Errorf("%w: turn penalty=%v", ErrBadPenalty, m.TurnPenalty)
	}
	if !(m.Weight >= 1) || math.IsInf(m.Weight, 0) {
		return fmt.Errorf("%w: weight=%v", ErrBadWeight, m.Weight)
	}
	if _, ok := heuristicNames[m.Heuristic]; !ok {
		return fmt.Errorf("%w: %v", ErrUnknownHeuristic, m.Heuristic)
	}

	return nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// BaseCost returns the cost of one step in direction d, without any penalty.
func (m Model) BaseCost(d gridgraph.Direction) float64 {
	if d.IsDiagonal() {
		return m.Diagonal
	}
	return m.Orthogonal
}

// StepCost returns the cost of stepping in direction out after having
// arrived in direction in. The start node arrives with gridgraph.None and
// never pays a turn penalty.
func (m Model) StepCost(in, out gridgraph.Direction) float64 {
	c := m.BaseCost(out)
	if IsTurn(in, out) {
		c += m.TurnPenalty
	}
	return c
}

// IsTurn reports whether moving in out after in changes direction.
func IsTurn(in, out gridgraph.Direction) bool {
	return in != gridgraph.None && in != out
}

// Raw returns the unweighted heuristic estimate from a to b.
func (m Model) Raw(a, b gridgraph.Coordinate) float64 {
	dx := math.Abs(float64(a.X - b.X))
	dy := math.Abs(float64(a.Y - b.Y))
	switch m.Heuristic {
	case Manhattan:
		return m.Orthogonal * (dx + dy)
	case Zero:
		return 0
	default:
		return m.Orthogonal*math.Max(dx, dy) + (m.Diagonal-m.Orthogonal)*math.Min(dx, dy)
	}
}

// Estimate returns the weighted heuristic Weight·Raw(a, b), the h term of f = g + h.
func (m Model) Estimate(a, b gridgraph.Coordinate) float64 {
	return m.Weight * m.Raw(a, b)
}

// Admissible reports whether Estimate never over-estimates the true
// remaining base cost under the given connectivity. Turn penalties are not
// considered here: they can only raise the true cost. See the package doc for
// what they do to optimality.
func (m Model) Admissible(conn gridgraph.Connectivity) bool {
	if m.Weight != 1 {
		return false
	}
	switch m.Heuristic {
	case Zero:
		return true
	case Manhattan:
		// Exact under Conn4; under Conn8 only when a diagonal is never cheaper
		// than two orthogonal steps.
		return conn == gridgraph.Conn4 || m.Diagonal >= 2*m.Orthogonal
	default:
		// Under Conn4 the diagonal term must not exceed the two orthogonal
		// steps it stands for; under Conn8 it is exact for D ≤ D2 ≤ 2D.
		if conn == gridgraph.Conn4 {
			return m.Diagonal <= 2*m.Orthogonal
		}
		return m.Diagonal >= m.Orthogonal && m.Diagonal <= 2*m.Orthogonal
	}
}
