// Package main provides the routelab CLI.
//
// Usage:
//
//	routelab [flags] <command>
//
// Commands:
//
//	tasks        - run all three searches on one query
//	ucs          - shortest route, budget ignored
//	constrained  - shortest route within the cost budget
//	astar        - constrained search guided by straight-line distance
//	instances    - list the built-in road networks
//
// Queries come from flags or from a YAML/JSON file given with -f; flags win.
package main

import (
	"fmt"
	"os"

	"github.com/paingkl/routelab/cmd/routelab/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
