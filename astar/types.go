package astar

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/turnpath/cost"
	"github.com/katalvlaran/turnpath/frontier"
	"github.com/katalvlaran/turnpath/gridgraph"
)

// Sentinel errors returned by the engine.
var (
	// ErrConfig is the category of every construction failure. The concrete
	// cause is wrapped alongside it, so errors.Is matches both.
	ErrConfig = errors.New("astar: invalid configuration")

	// ErrNilGrid indicates a nil *gridgraph.Grid.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrBlockedEndpoint indicates that start or goal lies on a blocked cell.
	ErrBlockedEndpoint = errors.New("astar: start or goal is blocked")

	// ErrOptionViolation is recorded by an Option given an invalid argument
	// and surfaced by New or Configure.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrInvalidState indicates an operation not allowed in the current state.
	ErrInvalidState = errors.New("astar: operation not valid in current state")

	// ErrNoPath is returned by Search when the goal is unreachable.
	ErrNoPath = errors.New("astar: no path to goal")

	// ErrStepLimit is returned by Search when its step cap ran out first.
	ErrStepLimit = errors.New("astar: step limit reached")

	// ErrBrokenChain indicates parent links that do not lead back to the start.
	ErrBrokenChain = errors.New("astar: broken parent chain")

	// ErrInvalidPath is returned by Path.Validate.
	ErrInvalidPath = errors.New("astar: invalid path")
)

// State is the engine's position in its lifecycle.
type State int

const (
	// Idle: no search started, or just restarted.
	Idle State = iota
	// Running: the frontier holds entries and the goal has not been popped.
	Running
	// Found: the goal was popped; Path and Cost are available.
	Found
	// Exhausted: the frontier ran dry without reaching the goal.
	Exhausted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Running:
		return "Running"
	case Found:
		return "Found"
	case Exhausted:
		return "Exhausted"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Terminal reports whether Step is no longer allowed in s.
func (s State) Terminal() bool { return s == Found || s == Exhausted }

// StepKind tags the outcome of a single Step.
type StepKind int

const (
	// StepExpanded: a node was closed and its neighbours relaxed.
	StepExpanded StepKind = iota
	// StepGoalReached: the goal was popped; the engine is now Found.
	StepGoalReached
	// StepStale: the popped entry was superseded; nothing changed.
	StepStale
	// StepExhausted: the frontier was empty; the engine is now Exhausted.
	StepExhausted
)

func (k StepKind) String() string {
	switch k {
	case StepExpanded:
		return "Expanded"
	case StepGoalReached:
		return "GoalReached"
	case StepStale:
		return "Stale"
	case StepExhausted:
		return "Exhausted"
	}
	return fmt.Sprintf("StepKind(%d)", int(k))
}

// StepResult describes what one Step did.
//
// Current is the popped coordinate (zero for StepExhausted). Updated lists,
// in neighbour order, the coordinates whose node was created or improved by
// this step; it is non-nil only for StepExpanded. Index is the 1-based count
// of Step calls since the last reset.
type StepResult struct {
	Kind    StepKind
	Current gridgraph.Coordinate
	Updated []gridgraph.Coordinate
	Index   int
}

// RunOutcome tags the result of RunToCompletion.
type RunOutcome int

const (
	// RunFound: the goal was reached; RunResult.Path is set.
	RunFound RunOutcome = iota
	// RunExhausted: no path exists.
	RunExhausted
	// RunCancelled: the context was done or the step cap was hit. The engine
	// stays Running and a later call resumes where this one stopped.
	RunCancelled
)

func (o RunOutcome) String() string {
	switch o {
	case RunFound:
		return "Found"
	case RunExhausted:
		return "Exhausted"
	case RunCancelled:
		return "Cancelled"
	}
	return fmt.Sprintf("RunOutcome(%d)", int(o))
}

// RunResult is returned by RunToCompletion. Steps counts the Step calls made
// by this call only; Engine.Steps has the running total.
type RunResult struct {
	Outcome RunOutcome
	Path    Path
	Cost    float64
	Steps   int
}

// SearchNode is the per-coordinate search record.
//
// G is the best known cost from start, H the heuristic estimate, F = G + H.
// Parent is nil for the start. Dir is the direction of the move that
// entered the node (gridgraph.None for the start). Closed is set once the
// node has been popped and expanded.
type SearchNode struct {
	G, H, F float64
	Parent  *gridgraph.Coordinate
	Dir     gridgraph.Direction
	Closed  bool
}

// Options configures an Engine.
//
// Cost            – step costs, turn penalty, heuristic and its weight.
// TieBreak        – frontier order among equal F.
// Grid            – connectivity and corner rule; used by Configure only.
// Logger          – debug tracing of state transitions.
// DefaultMaxSteps – cap RunToCompletion applies when called with 0. 0 = none.
type Options struct {
	Cost            cost.Model
	TieBreak        frontier.TieBreak
	Grid            gridgraph.GridOptions
	Logger          *zap.Logger
	DefaultMaxSteps int

	err error // first violation recorded by an Option
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// DefaultOptions returns the default configuration: cost.Default(),
// TieLIFO, gridgraph.DefaultGridOptions(), a no-op logger and no step cap.
func DefaultOptions() Options {
	return Options{
		Cost:     cost.Default(),
		TieBreak: frontier.TieLIFO,
		Grid:     gridgraph.DefaultGridOptions(),
		Logger:   zap.NewNop(),
	}
}

// WithCostModel sets the cost model. It is validated by New.
func WithCostModel(m cost.Model) Option {
	return func(o *Options) {
		o.Cost = m
	}
}

// WithTieBreak sets the frontier tie-break policy.
func WithTieBreak(t frontier.TieBreak) Option {
	return func(o *Options) {
		if t != frontier.TieLIFO && t != frontier.TieFIFO {
			o.fail(fmt.Errorf("%w: tie-break %v", ErrOptionViolation, t))
			return
		}
		o.TieBreak = t
	}
}

// WithGridOptions sets the connectivity and corner rule of the grid built by
// Configure. New takes the grid as given and ignores it.
func WithGridOptions(g gridgraph.GridOptions) Option {
	return func(o *Options) {
		o.Grid = g
	}
}

// WithLogger routes debug tracing to l. A nil logger is a violation.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			o.fail(fmt.Errorf("%w: nil logger", ErrOptionViolation))
			return
		}
		o.Logger = l
	}
}

// WithDefaultMaxSteps sets the cap RunToCompletion uses when called with
// maxSteps == 0. n == 0 disables the cap; n < 0 is a violation.
func WithDefaultMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.fail(fmt.Errorf("%w: default max steps cannot be negative (%d)", ErrOptionViolation, n))
			return
		}
		o.DefaultMaxSteps = n
	}
}

func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}
