package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newComponentsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "components",
		Short: "Report the connected passable regions of the scenario grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sc, err := a.scenario()
			if err != nil {
				return err
			}
			gg, err := sc.GridGraph()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			comps := gg.ConnectedComponents()
			fmt.Fprintf(out, "components: %d\n", len(comps))
			for i, comp := range comps {
				fmt.Fprintf(out, "  #%d: %d cells, first %v\n", i, len(comp), gg.Coordinate(comp[0]))
			}
			fmt.Fprintf(out, "start and goal connected: %t\n", gg.SameComponent(sc.StartCell(), sc.GoalCell()))
			return nil
		},
	}
}
