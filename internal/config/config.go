// Package config handles turnpath configuration and scenario files.
//
// Settings are resolved with priority defaults < config file < CLI flags.
// The file layer is YAML; the flag layer lives in cmd/turnpath.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/turnpath/cost"
	"github.com/katalvlaran/turnpath/frontier"
	"github.com/katalvlaran/turnpath/gridgraph"
)

// ErrValue indicates a setting with an unrecognised value.
var ErrValue = errors.New("config: invalid value")

// Config holds all turnpath settings.
type Config struct {
	Search  SearchConfig  `yaml:"search"`
	Logging LoggingConfig `yaml:"logging"`
}

// SearchConfig holds the engine settings.
type SearchConfig struct {
	OrthogonalCost float64 `yaml:"orthogonal_cost"`
	DiagonalCost   float64 `yaml:"diagonal_cost"`
	TurnPenalty    float64 `yaml:"turn_penalty"`
	Weight         float64 `yaml:"weight"`
	Heuristic      string  `yaml:"heuristic"`    // octile, manhattan, zero
	TieBreak       string  `yaml:"tie_break"`    // lifo, fifo
	Corner         string  `yaml:"corner"`       // no-squeeze, strict, allow
	Connectivity   int     `yaml:"connectivity"` // 8 or 4
	MaxSteps       int     `yaml:"max_steps"`    // 0 = no cap
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the engine defaults.
func Default() *Config {
	return &Config{
		Search: SearchConfig{
			OrthogonalCost: cost.DefaultOrthogonal,
			DiagonalCost:   cost.DefaultDiagonal,
			TurnPenalty:    cost.DefaultTurnPenalty,
			Weight:         cost.DefaultWeight,
			Heuristic:      cost.Octile.String(),
			TieBreak:       frontier.TieLIFO.String(),
			Corner:         gridgraph.CornerNoSqueeze.String(),
			Connectivity:   8,
			MaxSteps:       0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// CostModel converts the search settings into a validated cost.Model.
func (s SearchConfig) CostModel() (cost.Model, error) {
	h, err := cost.ParseHeuristic(s.Heuristic)
	if err != nil {
		return cost.Model{}, err
	}
	m := cost.Model{
		Orthogonal:  s.OrthogonalCost,
		Diagonal:    s.DiagonalCost,
		TurnPenalty: s.TurnPenalty,
		Weight:      s.Weight,
		Heuristic:   h,
	}
	if err := m.Validate(); err != nil {
		return cost.Model{}, err
	}
	return m, nil
}

// TieBreakPolicy parses the tie-break setting.
func (s SearchConfig) TieBreakPolicy() (frontier.TieBreak, error) {
	return frontier.ParseTieBreak(s.TieBreak)
}

// GridOptions parses the corner rule and connectivity settings.
func (s SearchConfig) GridOptions() (gridgraph.GridOptions, error) {
	opts := gridgraph.DefaultGridOptions()

	switch strings.ToLower(strings.TrimSpace(s.Corner)) {
	case "no-squeeze", "nosqueeze", "":
		opts.Corner = gridgraph.CornerNoSqueeze
	case "strict":
		opts.Corner = gridgraph.CornerStrict
	case "allow":
		opts.Corner = gridgraph.CornerAllow
	default:
		return opts, fmt.Errorf("%w: corner %q", ErrValue, s.Corner)
	}

	switch s.Connectivity {
	case 8, 0:
		opts.Conn = gridgraph.Conn8
	case 4:
		opts.Conn = gridgraph.Conn4
	default:
		return opts, fmt.Errorf("%w: connectivity %d", ErrValue, s.Connectivity)
	}

	return opts, nil
}
