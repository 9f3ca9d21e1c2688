package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/turnpath/astar"
)

func newSolveCmd(a *app) *cobra.Command {
	f := &searchFlags{}
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Run the search to completion and print the path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := a.buildEngine(cmd, f)
			if err != nil {
				return err
			}

			res, err := eng.RunToCompletion(cmd.Context(), 0)
			if err != nil {
				return err
			}
			a.log.Info("search finished",
				zap.Stringer("outcome", res.Outcome),
				zap.Int("steps", res.Steps),
			)

			out := cmd.OutOrStdout()
			var overlay []layer
			if res.Outcome == astar.RunFound {
				overlay = append(overlay, layer{cells: res.Path, glyph: glyphPath})
			} else {
				overlay = append(overlay,
					layer{cells: eng.VisitedSnapshot(), glyph: glyphVisited},
					layer{cells: eng.FrontierSnapshot(), glyph: glyphFrontier},
				)
			}
			fmt.Fprint(out, renderMap(eng.Grid(), eng.Start(), eng.Goal(), overlay...))

			fmt.Fprintf(out, "outcome: %s\n", res.Outcome)
			fmt.Fprintf(out, "steps: %d\n", res.Steps)
			if res.Outcome == astar.RunFound {
				fmt.Fprintf(out, "path: %s\n", res.Path)
				fmt.Fprintf(out, "moves: %d\n", res.Path.Steps())
				fmt.Fprintf(out, "turns: %d\n", res.Path.Turns())
				fmt.Fprintf(out, "cost: %.3f\n", res.Cost)
			}
			fmt.Fprintf(out, "connected: %t\n", reachable(eng))
			return nil
		},
	}
	f.register(cmd)
	return cmd
}
