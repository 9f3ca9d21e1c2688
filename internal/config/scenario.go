package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/turnpath/gridgraph"
)

// ErrScenario indicates a malformed scenario file.
var ErrScenario = errors.New("config: invalid scenario")

// Scenario describes one search problem. It is given either as Rows, an
// ASCII map where '#' is blocked and 'S'/'G' mark the endpoints, or as
// explicit Width/Height/Blocked/Start/Goal with cells as [x, y] pairs.
type Scenario struct {
	Rows    []string `yaml:"rows,omitempty"`
	Width   int      `yaml:"width,omitempty"`
	Height  int      `yaml:"height,omitempty"`
	Blocked [][2]int `yaml:"blocked,omitempty"`
	Start   *[2]int  `yaml:"start,omitempty"`
	Goal    *[2]int  `yaml:"goal,omitempty"`
}

// LoadScenario reads and parses the scenario file at path.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading scenario from %s: %w", path, err)
	}
	return ParseScenario(data)
}

// ParseScenario parses a YAML scenario.
func ParseScenario(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScenario, err)
	}
	return &s, nil
}

// Build turns the scenario into a grid and its endpoints.
//
// In Rows form an explicit Start or Goal overrides the 'S'/'G' markers.
// Returns ErrScenario when both forms are mixed or an endpoint is missing,
// and the gridgraph errors for malformed dimensions.
func (s *Scenario) Build(opts gridgraph.GridOptions) (*gridgraph.Grid, gridgraph.Coordinate, gridgraph.Coordinate, error) {
	var (
		grid        *gridgraph.Grid
		start, goal *gridgraph.Coordinate
		err         error
	)

	if len(s.Rows) > 0 {
		if s.Width != 0 || s.Height != 0 || len(s.Blocked) > 0 {
			return nil, gridgraph.Coordinate{}, gridgraph.Coordinate{}, fmt.Errorf("%w: rows and width/height/blocked are exclusive", ErrScenario)
		}
		grid, start, goal, err = s.fromRows(opts)
	} else {
		grid, err = s.fromDims(opts)
	}
	if err != nil {
		return nil, gridgraph.Coordinate{}, gridgraph.Coordinate{}, err
	}

	if s.Start != nil {
		start = &gridgraph.Coordinate{X: s.Start[0], Y: s.Start[1]}
	}
	if s.Goal != nil {
		goal = &gridgraph.Coordinate{X: s.Goal[0], Y: s.Goal[1]}
	}
	if start == nil || goal == nil {
		return nil, gridgraph.Coordinate{}, gridgraph.Coordinate{}, fmt.Errorf("%w: start and goal are required", ErrScenario)
	}

	return grid, *start, *goal, nil
}

func (s *Scenario) fromRows(opts gridgraph.GridOptions) (*gridgraph.Grid, *gridgraph.Coordinate, *gridgraph.Coordinate, error) {
	var start, goal *gridgraph.Coordinate
	for y, row := range s.Rows {
		for x, r := range []rune(row) {
			c := gridgraph.Coordinate{X: x, Y: y}
			switch r {
			case 'S', 's':
				if start != nil {
					return nil, nil, nil, fmt.Errorf("%w: second start marker at %v", ErrScenario, c)
				}
				start = &c
			case 'G', 'g':
				if goal != nil {
					return nil, nil, nil, fmt.Errorf("%w: second goal marker at %v", ErrScenario, c)
				}
				goal = &c
			}
		}
	}

	grid, err := gridgraph.FromRows(s.Rows, opts)
	if err != nil {
		return nil, nil, nil, err
	}
	return grid, start, goal, nil
}

func (s *Scenario) fromDims(opts gridgraph.GridOptions) (*gridgraph.Grid, error) {
	blocked := make([]gridgraph.Coordinate, len(s.Blocked))
	for i, b := range s.Blocked {
		blocked[i] = gridgraph.Coordinate{X: b[0], Y: b[1]}
	}
	return gridgraph.New(s.Width, s.Height, blocked, opts)
}
