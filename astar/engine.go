package astar

import (
	"context"
	"fmt"

	"github.com/zyedidia/generic/mapset"
	"go.uber.org/zap"

	"github.com/katalvlaran/turnpath/frontier"
	"github.com/katalvlaran/turnpath/gridgraph"
)

// Engine owns one search: its grid, endpoints, node table and frontier.
// An Engine is not safe for concurrent use; independent engines may share
// the same immutable Grid.
type Engine struct {
	grid        *gridgraph.Grid
	start, goal gridgraph.Coordinate
	opts        Options
	log         *zap.Logger

	state  State
	nodes  map[gridgraph.Coordinate]*SearchNode
	closed mapset.Set[gridgraph.Coordinate]
	open   *frontier.Frontier
	steps  int
}

// Configure builds a width×height grid with the given blocked cells (using
// WithGridOptions, or the defaults) and returns a fresh Idle engine on it.
// Every failure is wrapped in ErrConfig.
func Configure(width, height int, blocked []gridgraph.Coordinate, start, goal gridgraph.Coordinate, opts ...Option) (*Engine, error) {
	cfg := buildOptions(opts)
	if cfg.err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, cfg.err)
	}
	g, err := gridgraph.New(width, height, blocked, cfg.Grid)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return New(g, start, goal, opts...)
}

// New returns an engine searching grid from start to goal.
//
// Validation (in order), each failure wrapped in ErrConfig:
//  1. every Option accepted its argument (ErrOptionViolation).
//  2. the cost model is valid (cost.Err*).
//  3. grid is non-nil (ErrNilGrid).
//  4. start and goal are in bounds (gridgraph.ErrOutOfBounds).
//  5. start and goal are free (ErrBlockedEndpoint).
//
// The engine starts Idle, or Found when start == goal.
func New(grid *gridgraph.Grid, start, goal gridgraph.Coordinate, opts ...Option) (*Engine, error) {
	cfg := buildOptions(opts)
	if cfg.err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, cfg.err)
	}
	if err := cfg.Cost.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if err := validateInputs(grid, start, goal); err != nil {
		return nil, err
	}

	e := &Engine{
		grid:  grid,
		start: start,
		goal:  goal,
		opts:  cfg,
		log:   cfg.Logger,
		open:  frontier.New(cfg.TieBreak),
	}
	if !cfg.Cost.Admissible(grid.Options().Conn) {
		e.log.Debug("heuristic may over-estimate; search is satisficing",
			zap.Stringer("heuristic", cfg.Cost.Heuristic),
			zap.Float64("weight", cfg.Cost.Weight),
		)
	}
	e.reset()
	return e, nil
}

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func validateInputs(grid *gridgraph.Grid, start, goal gridgraph.Coordinate) error {
	if grid == nil {
		return fmt.Errorf("%w: %w", ErrConfig, ErrNilGrid)
	}
	for _, p := range [...]struct {
		name string
		c    gridgraph.Coordinate
	}{{"start", start}, {"goal", goal}} {
		if !grid.InBounds(p.c) {
			return fmt.Errorf("%w: %w: %s %v", ErrConfig, gridgraph.ErrOutOfBounds, p.name, p.c)
		}
		if grid.IsBlocked(p.c) {
			return fmt.Errorf("%w: %w: %s %v", ErrConfig, ErrBlockedEndpoint, p.name, p.c)
		}
	}
	return nil
}

// Reconfigure validates grid, start and goal like New and, on success,
// swaps them in and returns the engine to Idle (Found when start == goal).
// Options are kept. On error the engine is left untouched.
func (e *Engine) Reconfigure(grid *gridgraph.Grid, start, goal gridgraph.Coordinate) error {
	if err := validateInputs(grid, start, goal); err != nil {
		return err
	}
	e.grid, e.start, e.goal = grid, start, goal
	e.log.Debug("reconfigured",
		zap.Stringer("start", start),
		zap.Stringer("goal", goal),
		zap.Int("width", grid.Width()),
		zap.Int("height", grid.Height()),
	)
	e.reset()
	return nil
}

// Restart drops every node and frontier entry. The grid, endpoints and
// options are retained. The engine is left in Idle, or in Found with a
// zero-step path when start == goal, matching a fresh New.
func (e *Engine) Restart() {
	e.reset()
}

func (e *Engine) reset() {
	e.nodes = make(map[gridgraph.Coordinate]*SearchNode)
	e.closed = mapset.New[gridgraph.Coordinate]()
	e.open.Reset()
	e.steps = 0
	e.setState(Idle)

	if e.start == e.goal {
		e.nodes[e.start] = &SearchNode{Closed: true}
		e.closed.Put(e.start)
		e.setState(Found)
	}
}

func (e *Engine) setState(s State) {
	if e.state != s {
		e.log.Debug("state transition",
			zap.Stringer("from", e.state),
			zap.Stringer("to", s),
			zap.Int("steps", e.steps),
		)
	}
	e.state = s
}

// seed records the start node and pushes it.
func (e *Engine) seed() {
	h := e.opts.Cost.Estimate(e.start, e.goal)
	e.nodes[e.start] = &SearchNode{G: 0, H: h, F: h, Dir: gridgraph.None}
	e.open.Push(e.start, h)
	e.setState(Running)
}

// Step advances the search by one frontier pop.
//
// From Idle it first seeds the start node. Then:
//  1. empty frontier → Exhausted, StepExhausted.
//  2. superseded entry → StepStale, no other change.
//  3. goal popped → Found, StepGoalReached.
//  4. otherwise close the node, relax its neighbours, StepExpanded.
//
// Step in Found or Exhausted returns ErrInvalidState.
func (e *Engine) Step() (StepResult, error) {
	if e.state.Terminal() {
		return StepResult{}, fmt.Errorf("%w: Step in state %v", ErrInvalidState, e.state)
	}
	if e.state == Idle {
		e.seed()
	}
	e.steps++
	res := StepResult{Index: e.steps}

	// 1) Nothing left to explore.
	entry, ok := e.open.PopMin()
	if !ok {
		res.Kind = StepExhausted
		e.setState(Exhausted)
		return res, nil
	}
	res.Current = entry.Coord
	node := e.nodes[entry.Coord]

	// 2) Lazy decrease-key: a cheaper entry for this coordinate was pushed
	//    after this one, or the coordinate is already closed.
	if node.Closed || entry.Priority > node.F {
		res.Kind = StepStale
		return res, nil
	}

	node.Closed = true
	e.closed.Put(entry.Coord)

	// 3) Goal finalised.
	if entry.Coord == e.goal {
		res.Kind = StepGoalReached
		e.setState(Found)
		return res, nil
	}

	// 4) Expand.
	res.Kind = StepExpanded
	res.Updated = e.relax(entry.Coord, node)
	return res, nil
}

// relax offers every neighbour of c a path through c and returns the
// coordinates whose node was created or improved.
func (e *Engine) relax(c gridgraph.Coordinate, node *SearchNode) []gridgraph.Coordinate {
	updated := make([]gridgraph.Coordinate, 0, 8)
	for _, nb := range e.grid.Neighbors(c) {
		g := node.G + e.opts.Cost.StepCost(node.Dir, nb.Dir)

		next, seen := e.nodes[nb.To]
		if seen && (next.Closed || g >= next.G) {
			continue
		}
		if !seen {
			h := e.opts.Cost.Estimate(nb.To, e.goal)
			next = &SearchNode{H: h}
			e.nodes[nb.To] = next
		}
		parent := c
		next.G = g
		next.F = g + next.H
		next.Parent = &parent
		next.Dir = nb.Dir

		e.open.Push(nb.To, next.F)
		updated = append(updated, nb.To)
	}
	return updated
}

// RunToCompletion calls Step until the engine is Found or Exhausted.
//
// ctx is checked before every step. maxSteps > 0 caps the number of steps
// taken by this call; maxSteps == 0 uses the engine's default cap, if any.
// Either stop yields RunCancelled with a nil error; the engine stays
// Running and a later call resumes. A negative maxSteps is ErrOptionViolation.
//
// In Found the call returns RunFound at once; in Exhausted, RunExhausted.
func (e *Engine) RunToCompletion(ctx context.Context, maxSteps int) (RunResult, error) {
	if maxSteps < 0 {
		return RunResult{}, fmt.Errorf("%w: maxSteps cannot be negative (%d)", ErrOptionViolation, maxSteps)
	}
	if maxSteps == 0 {
		maxSteps = e.opts.DefaultMaxSteps
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var taken int
	for !e.state.Terminal() {
		select {
		case <-ctx.Done():
			e.log.Debug("run cancelled", zap.Error(ctx.Err()), zap.Int("steps", taken))
			return RunResult{Outcome: RunCancelled, Steps: taken}, nil
		default:
		}
		if maxSteps > 0 && taken >= maxSteps {
			e.log.Debug("run hit step cap", zap.Int("max_steps", maxSteps))
			return RunResult{Outcome: RunCancelled, Steps: taken}, nil
		}
		if _, err := e.Step(); err != nil {
			return RunResult{Steps: taken}, err
		}
		taken++
	}

	if e.state == Exhausted {
		return RunResult{Outcome: RunExhausted, Steps: taken}, nil
	}
	path, err := e.reconstruct()
	if err != nil {
		return RunResult{Steps: taken}, err
	}
	return RunResult{
		Outcome: RunFound,
		Path:    path,
		Cost:    e.nodes[e.goal].G,
		Steps:   taken,
	}, nil
}

// State returns the current lifecycle state.
func (e *Engine) State() State { return e.state }

// Start returns the start coordinate.
func (e *Engine) Start() gridgraph.Coordinate { return e.start }

// Goal returns the goal coordinate.
func (e *Engine) Goal() gridgraph.Coordinate { return e.goal }

// Grid returns the grid being searched.
func (e *Engine) Grid() *gridgraph.Grid { return e.grid }

// Options returns the engine's resolved options.
func (e *Engine) Options() Options { return e.opts }

// Steps returns the number of Step calls since the last reset.
func (e *Engine) Steps() int { return e.steps }

// FrontierSnapshot returns the coordinates with a pending frontier entry,
// row-major. Stale entries for closed coordinates are left out.
func (e *Engine) FrontierSnapshot() []gridgraph.Coordinate {
	all := e.open.Snapshot()
	out := all[:0]
	for _, c := range all {
		if !e.closed.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// VisitedSnapshot returns the closed coordinates, row-major.
func (e *Engine) VisitedSnapshot() []gridgraph.Coordinate {
	out := make([]gridgraph.Coordinate, 0, e.closed.Size())
	e.closed.Each(func(c gridgraph.Coordinate) {
		out = append(out, c)
	})
	gridgraph.SortRowMajor(out)
	return out
}

// DiscoveredSnapshot returns every coordinate that has a node, row-major.
func (e *Engine) DiscoveredSnapshot() []gridgraph.Coordinate {
	out := make([]gridgraph.Coordinate, 0, len(e.nodes))
	for c := range e.nodes {
		out = append(out, c)
	}
	gridgraph.SortRowMajor(out)
	return out
}

// Node returns a copy of the node recorded for c.
func (e *Engine) Node(c gridgraph.Coordinate) (SearchNode, bool) {
	n, ok := e.nodes[c]
	if !ok {
		return SearchNode{}, false
	}
	cp := *n
	if n.Parent != nil {
		p := *n.Parent
		cp.Parent = &p
	}
	return cp, true
}
