package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/turnpath/astar"
)

func newStepCmd(a *app) *cobra.Command {
	f := &searchFlags{}
	var count int
	cmd := &cobra.Command{
		Use:   "step",
		Short: "Take single search steps and print the frontier after them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be at least 1, got %d", count)
			}
			eng, err := a.buildEngine(cmd, f)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i := 0; i < count && !eng.State().Terminal(); i++ {
				r, err := eng.Step()
				if err != nil {
					return err
				}
				switch r.Kind {
				case astar.StepExpanded:
					fmt.Fprintf(out, "step %d: %s %v updated=%v\n", r.Index, r.Kind, r.Current, r.Updated)
				case astar.StepExhausted:
					fmt.Fprintf(out, "step %d: %s\n", r.Index, r.Kind)
				default:
					fmt.Fprintf(out, "step %d: %s %v\n", r.Index, r.Kind, r.Current)
				}
			}

			overlay := []layer{
				{cells: eng.VisitedSnapshot(), glyph: glyphVisited},
				{cells: eng.FrontierSnapshot(), glyph: glyphFrontier},
			}
			if eng.State() == astar.Found {
				path, err := eng.Path()
				if err != nil {
					return err
				}
				overlay = append(overlay, layer{cells: path, glyph: glyphPath})
			}
			fmt.Fprint(out, renderMap(eng.Grid(), eng.Start(), eng.Goal(), overlay...))
			fmt.Fprintf(out, "state: %s\n", eng.State())
			fmt.Fprintf(out, "frontier: %d visited: %d discovered: %d\n",
				len(eng.FrontierSnapshot()), len(eng.VisitedSnapshot()), len(eng.DiscoveredSnapshot()))
			return nil
		},
	}
	f.register(cmd)
	cmd.Flags().IntVar(&count, "count", 1, "Number of steps to take.")
	return cmd
}
