package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// globalFlags holds the persistent flags shared by every subcommand.
type globalFlags struct {
	verbose  bool
	json     bool
	file     string
	instance string
	start    string
	goal     string
	budget   float64
	near     string
}

// Execute runs the root command against the process streams.
func Execute() error {
	return newRootCmd(os.Stdout, os.Stderr).Execute()
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "routelab",
		Short: "Shortest routes under a cost budget",
		Long: `routelab - shortest-route search over road networks whose roads
carry a distance and an energy cost.

Three searches are available:
  ucs          shortest distance, cost reported but not limited
  constrained  shortest distance among routes within the budget
  astar        constrained, guided by straight-line distance to the goal

Queries come from flags or from a YAML/JSON file; flags override the file.

Examples:
  # Run all three searches on the built-in toy network
  routelab tasks

  # Constrained search with a tighter budget
  routelab constrained --budget 7

  # Start from the vertex closest to a point, on the grid network
  routelab astar -i grid --near 4.2,3.9

  # Read the query from a file and print JSON
  routelab tasks -f query.yaml --json`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "debug logging on stderr")
	pf.BoolVar(&flags.json, "json", false, "print results as JSON")
	pf.StringVarP(&flags.file, "file", "f", "", "query file (YAML or JSON)")
	pf.StringVarP(&flags.instance, "instance", "i", "", "built-in network (default "+defaultInstance+")")
	pf.StringVar(&flags.start, "start", "", "start vertex ID (default: the network's own)")
	pf.StringVar(&flags.goal, "goal", "", "goal vertex ID (default: the network's own)")
	pf.Float64Var(&flags.budget, "budget", 0, "energy budget (default: the network's own)")
	pf.StringVar(&flags.near, "near", "", "start from the vertex nearest to x,y")

	root.AddCommand(
		newTasksCmd(flags),
		newSearchCmd(flags, taskUnconstrained),
		newSearchCmd(flags, taskConstrained),
		newSearchCmd(flags, taskAStar),
		newInstancesCmd(flags),
	)

	return root
}

// newLogger returns a text logger on w: debug level with --verbose, warnings
// only otherwise.
func newLogger(flags *globalFlags, w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if flags.verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
