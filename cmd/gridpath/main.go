// Command gridpath runs A* route searches over occupancy-grid scenarios.
//
//	gridpath find                                # built-in 8×8 reference map
//	gridpath find --scenario maze.hcl --frontier scan --goal-policy expand
//	gridpath components --scenario maze.yaml
//
// Every flag can also be set through a GRIDPATH_* environment variable
// (GRIDPATH_GOAL_POLICY=expand) or a --config file.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
