package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/turnpath/astar"
	"github.com/katalvlaran/turnpath/internal/config"
	"github.com/katalvlaran/turnpath/internal/logger"
)

// app carries the resolved configuration and logger between the root
// command's pre-run and its subcommands.
type app struct {
	configPath string
	logLevel   string
	logFile    string

	cfg *config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "turnpath",
		Short:         "Turn-preferring A* on blocked grids",
		Long:          `turnpath finds short grid paths that favour long straight runs. Diagonal and orthogonal steps cost the same and every change of direction pays a small penalty.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to a YAML config file.")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "Log level: debug, info, warn or error.")
	root.PersistentFlags().StringVar(&a.logFile, "log-file", "", "Also write logs to this file, rotated.")

	root.AddCommand(newSolveCmd(a), newStepCmd(a))
	return root
}

// setup resolves configuration (defaults < file < flags) and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level = a.logLevel
	}
	if flags.Changed("log-file") {
		cfg.Logging.LogFile = a.logFile
	}

	var fileCfg logger.FileConfig
	if cfg.Logging.LogFile != "" {
		fileCfg = logger.DefaultFileConfig(cfg.Logging.LogFile)
	}
	log, err := logger.New(cfg.Logging.Level, fileCfg, true)
	if err != nil {
		return err
	}

	a.cfg, a.log = cfg, log
	return nil
}

// searchFlags are the per-run overrides shared by solve and step.
type searchFlags struct {
	scenario    string
	maxSteps    int
	tie         string
	turnPenalty float64
	heuristic   string
	corner      string
	conn        int
}

func (f *searchFlags) register(cmd *cobra.Command) {
	def := config.Default().Search
	fs := cmd.Flags()
	fs.StringVar(&f.scenario, "scenario", "", "Path to the scenario YAML file (required).")
	fs.IntVar(&f.maxSteps, "max-steps", def.MaxSteps, "Stop after this many steps; 0 means no cap.")
	fs.StringVar(&f.tie, "tie", def.TieBreak, "Frontier tie-break: lifo or fifo.")
	fs.Float64Var(&f.turnPenalty, "turn-penalty", def.TurnPenalty, "Extra cost per change of direction.")
	fs.StringVar(&f.heuristic, "heuristic", def.Heuristic, "Heuristic: octile, manhattan or zero.")
	fs.StringVar(&f.corner, "corner", def.Corner, "Diagonal corner rule: no-squeeze, strict or allow.")
	fs.IntVar(&f.conn, "conn", def.Connectivity, "Connectivity: 8 or 4.")
	_ = cmd.MarkFlagRequired("scenario")
}

// apply overlays the flags the user actually set onto s.
func (f *searchFlags) apply(cmd *cobra.Command, s *config.SearchConfig) {
	fs := cmd.Flags()
	if fs.Changed("max-steps") {
		s.MaxSteps = f.maxSteps
	}
	if fs.Changed("tie") {
		s.TieBreak = f.tie
	}
	if fs.Changed("turn-penalty") {
		s.TurnPenalty = f.turnPenalty
	}
	if fs.Changed("heuristic") {
		s.Heuristic = f.heuristic
	}
	if fs.Changed("corner") {
		s.Corner = f.corner
	}
	if fs.Changed("conn") {
		s.Connectivity = f.conn
	}
}

// buildEngine loads the scenario and returns an Idle (or Found) engine for it.
func (a *app) buildEngine(cmd *cobra.Command, f *searchFlags) (*astar.Engine, error) {
	s := a.cfg.Search
	f.apply(cmd, &s)

	gridOpts, err := s.GridOptions()
	if err != nil {
		return nil, err
	}
	model, err := s.CostModel()
	if err != nil {
		return nil, err
	}
	tie, err := s.TieBreakPolicy()
	if err != nil {
		return nil, err
	}

	sc, err := config.LoadScenario(f.scenario)
	if err != nil {
		return nil, err
	}
	grid, start, goal, err := sc.Build(gridOpts)
	if err != nil {
		return nil, err
	}

	a.log.Debug("scenario loaded",
		zap.String("path", f.scenario),
		zap.Int("width", grid.Width()),
		zap.Int("height", grid.Height()),
		zap.Int("blocked", grid.BlockedCount()),
		zap.Stringer("start", start),
		zap.Stringer("goal", goal),
	)

	eng, err := astar.New(grid, start, goal,
		astar.WithCostModel(model),
		astar.WithTieBreak(tie),
		astar.WithLogger(a.log),
		astar.WithDefaultMaxSteps(s.MaxSteps),
	)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", f.scenario, err)
	}
	return eng, nil
}

// reachable reports whether start and goal share a region, independent of
// how far the search got.
func reachable(eng *astar.Engine) bool {
	return eng.Grid().Connected(eng.Start(), eng.Goal())
}
