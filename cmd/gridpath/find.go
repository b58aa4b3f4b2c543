package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

var (
	goalPolicies = map[string]astar.GoalPolicy{
		"eager":  astar.GoalOnDiscovery,
		"expand": astar.GoalOnExpansion,
	}
	frontiers = map[string]astar.Frontier{
		"heap": astar.FrontierHeap,
		"scan": astar.FrontierLinearScan,
	}
	heuristics = map[string]astar.Heuristic{
		"euclidean": astar.Euclidean,
		"manhattan": astar.Manhattan,
	}
)

func newFindCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find",
		Short: "Search the scenario for a route from start to goal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runFind(cmd)
		},
	}
	cmd.Flags().String("goal-policy", "eager", "stop on goal discovery (eager) or goal expansion (expand)")
	cmd.Flags().String("frontier", "heap", "open set: heap or scan")
	cmd.Flags().String("heuristic", "euclidean", "euclidean or manhattan")
	cmd.Flags().Int("max-expansions", 0, "abort after this many expansions (0 = unlimited)")
	cmd.Flags().Bool("reachability-check", false, "reject disconnected endpoints before searching")
	return cmd
}

func (a *app) searchOptions() ([]astar.Option, error) {
	policy, ok := goalPolicies[a.v.GetString("goal-policy")]
	if !ok {
		return nil, fmt.Errorf("unknown goal-policy %q", a.v.GetString("goal-policy"))
	}
	frontier, ok := frontiers[a.v.GetString("frontier")]
	if !ok {
		return nil, fmt.Errorf("unknown frontier %q", a.v.GetString("frontier"))
	}
	h, ok := heuristics[a.v.GetString("heuristic")]
	if !ok {
		return nil, fmt.Errorf("unknown heuristic %q", a.v.GetString("heuristic"))
	}
	maxExp := a.v.GetInt("max-expansions")
	if maxExp < 0 {
		return nil, astar.ErrBadMaxExpansions
	}

	opts := []astar.Option{
		astar.WithGoalPolicy(policy),
		astar.WithFrontier(frontier),
		astar.WithHeuristic(h),
		astar.WithMaxExpansions(maxExp),
	}
	if a.v.GetBool("reachability-check") {
		opts = append(opts, astar.WithReachabilityCheck())
	}
	return opts, nil
}

func (a *app) runFind(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	log, err := a.logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	opts, err := a.searchOptions()
	if err != nil {
		return err
	}
	sc, err := a.scenario()
	if err != nil {
		return err
	}
	gg, err := sc.GridGraph()
	if err != nil {
		return err
	}
	start, goal := sc.StartCell(), sc.GoalCell()

	fmt.Fprintf(out, "scenario: %s (%dx%d) start %v goal %v\n", sc.Name, gg.Rows, gg.Cols, start, goal)
	fmt.Fprintf(out, "policy: %s  frontier: %s  heuristic: %s\n",
		a.v.GetString("goal-policy"), a.v.GetString("frontier"), a.v.GetString("heuristic"))

	res, err := astar.FindPath(gg, start, goal, append(opts, astar.WithLogger(log))...)
	if err != nil {
		renderGrid(out, gg, nil, start, goal)
		fmt.Fprintf(out, "no route (%s): expanded %d\n", res.Status, res.Expanded)
		return err
	}

	renderGrid(out, gg, res.Path, start, goal)
	fmt.Fprintf(out, "route: %s\n", joinCells(res.Path))
	fmt.Fprintf(out, "moves: %g  expanded: %d  pushed: %d  stale: %d\n",
		res.Cost, res.Expanded, res.Pushed, res.Stale)
	return nil
}

func joinCells(path []gridgraph.Cell) string {
	parts := make([]string, len(path))
	for i, c := range path {
		parts[i] = c.String()
	}
	return strings.Join(parts, " -> ")
}
