package cost

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by Model.Validate and ParseHeuristic.
var (
	// ErrBadCost indicates a non-positive or non-finite step cost.
	ErrBadCost = errors.New("cost: step cost must be positive and finite")

	// ErrBadPenalty indicates a negative or non-finite turn penalty.
	ErrBadPenalty = errors.New("cost: turn penalty must be non-negative and finite")

	// ErrBadWeight indicates a heuristic weight below one.
	ErrBadWeight = errors.New("cost: heuristic weight must be at least 1")

	// ErrUnknownHeuristic indicates an unrecognised heuristic.
	ErrUnknownHeuristic = errors.New("cost: unknown heuristic")
)

// Default model constants.
const (
	DefaultOrthogonal  = 1.0
	DefaultDiagonal    = 1.0
	DefaultTurnPenalty = 0.001
	DefaultWeight      = 1.0
)

// Heuristic selects the remaining-cost estimate.
type Heuristic int

const (
	// Octile is D·max(|dx|,|dy|) + (D2−D)·min(|dx|,|dy|).
	Octile Heuristic = iota
	// Manhattan is D·(|dx|+|dy|). Exact for Conn4, over-estimates diagonals.
	Manhattan
	// Zero estimates nothing; the search degrades to uniform-cost (Dijkstra).
	Zero
)

var heuristicNames = map[Heuristic]string{
	Octile:    "octile",
	Manhattan: "manhattan",
	Zero:      "zero",
}

func (h Heuristic) String() string {
	if name, ok := heuristicNames[h]; ok {
		return name
	}
	return fmt.Sprintf("Heuristic(%d)", int(h))
}

// ParseHeuristic maps a case-insensitive name to a Heuristic.
// "dijkstra" is accepted as an alias of "zero".
func ParseHeuristic(s string) (Heuristic, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "octile", "diagonal", "":
		return Octile, nil
	case "manhattan":
		return Manhattan, nil
	case "zero", "dijkstra":
		return Zero, nil
	}
	return Octile, fmt.Errorf("%w: %q", ErrUnknownHeuristic, s)
}

// Model is the complete cost configuration of a search.
//
// Orthogonal – cost of an N/E/S/W step.
// Diagonal   – cost of an NE/SE/SW/NW step.
// TurnPenalty – added when a step's direction differs from the previous one.
// Weight     – multiplier applied to the heuristic (1 = plain A*).
// Heuristic  – which estimate to use.
type Model struct {
	Orthogonal  float64
	Diagonal    float64
	TurnPenalty float64
	Weight      float64
	Heuristic   Heuristic
}

// Default returns the equal-cost, lightly turn-penalised octile model.
func Default() Model {
	return Model{
		Orthogonal:  DefaultOrthogonal,
		Diagonal:    DefaultDiagonal,
		TurnPenalty: DefaultTurnPenalty,
		Weight:      DefaultWeight,
		Heuristic:   Octile,
	}
}
