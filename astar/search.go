package astar

import (
	"context"
	"fmt"

	"github.com/katalvlaran/turnpath/gridgraph"
)

// Search runs a fresh engine from start to goal to completion and returns
// the path and its cost.
//
// Returns ErrConfig-wrapped errors for bad input, ErrNoPath when the goal is
// unreachable and ErrStepLimit when WithDefaultMaxSteps stopped the run.
func Search(grid *gridgraph.Grid, start, goal gridgraph.Coordinate, opts ...Option) (Path, float64, error) {
	e, err := New(grid, start, goal, opts...)
	if err != nil {
		return nil, 0, err
	}
	res, err := e.RunToCompletion(context.Background(), 0)
	if err != nil {
		return nil, 0, err
	}

	switch res.Outcome {
	case RunFound:
		return res.Path, res.Cost, nil
	case RunExhausted:
		return nil, 0, fmt.Errorf("%w: %v → %v after %d steps", ErrNoPath, start, goal, res.Steps)
	default:
		return nil, 0, fmt.Errorf("%w: %d", ErrStepLimit, res.Steps)
	}
}
