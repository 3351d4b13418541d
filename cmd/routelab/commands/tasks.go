package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/paingkl/routelab/core"
	"github.com/paingkl/routelab/search"
)

// task is one of the three searches the CLI can run.
type task struct {
	number  int
	use     string
	short   string
	title   string
	budgets bool // whether the budget applies
	run     func(g *core.Graph, start, goal string, budget float64, opts ...search.Option) (search.Result, error)
}

var (
	taskUnconstrained = task{
		number:  1,
		use:     "ucs",
		short:   "Shortest route, budget ignored",
		title:   "uniform-cost search, no energy constraint",
		budgets: false,
		run: func(g *core.Graph, start, goal string, _ float64, opts ...search.Option) (search.Result, error) {
			return search.Unconstrained(g, start, goal, opts...)
		},
	}
	taskConstrained = task{
		number:  2,
		use:     "constrained",
		short:   "Shortest route within the energy budget",
		title:   "uniform-cost search within the energy budget",
		budgets: true,
		run:     search.Constrained,
	}
	taskAStar = task{
		number:  3,
		use:     "astar",
		short:   "Budgeted search guided by straight-line distance",
		title:   "A* search within the energy budget",
		budgets: true,
		run:     search.AStar,
	}

	allTasks = []task{taskUnconstrained, taskConstrained, taskAStar}
)

// errUnknownAlgorithm reports a query file naming no known search.
var errUnknownAlgorithm = errors.New("unknown algorithm (want ucs, constrained or astar)")

// No-route explanations.
const (
	reasonUnreachable = "unreachable"
	reasonOverBudget  = "over budget"
)

// outcome is the result of one task on one plan.
type outcome struct {
	task   task
	result search.Result
	reason string // empty when found
}

func newTasksCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "Run all three searches on one query",
		Long: `Run the unconstrained, constrained and A* searches on the same
network and query, printing one block per search.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTasks(cmd, flags, allTasks)
		},
	}
}

func newSearchCmd(flags *globalFlags, t task) *cobra.Command {
	return &cobra.Command{
		Use:   t.use,
		Short: t.short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTasks(cmd, flags, []task{t})
		},
	}
}

func runTasks(cmd *cobra.Command, flags *globalFlags, tasks []task) error {
	logger := newLogger(flags, cmd.ErrOrStderr())
	p, err := resolve(cmd, flags, logger)
	if err != nil {
		return err
	}
	if len(tasks) > 1 && p.algorithm != "" {
		if tasks, err = pickTask(p.algorithm); err != nil {
			return err
		}
	}

	outcomes := make([]outcome, 0, len(tasks))
	for _, t := range tasks {
		o, err := runTask(p, t, logger)
		if err != nil {
			return fmt.Errorf("%s: %w", t.use, err)
		}
		outcomes = append(outcomes, o)
	}

	if flags.json {
		return writeJSON(cmd.OutOrStdout(), p, outcomes)
	}

	return writeText(cmd.OutOrStdout(), p, outcomes)
}

// pickTask selects the task a query file names.
func pickTask(name string) ([]task, error) {
	for _, t := range allTasks {
		if t.use == name {
			return []task{t}, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", errUnknownAlgorithm, name)
}

func runTask(p plan, t task, logger *slog.Logger) (outcome, error) {
	res, err := t.run(p.inst.Graph, p.start, p.goal, p.budget, search.WithLogger(logger))
	if err != nil {
		return outcome{}, err
	}
	o := outcome{task: t, result: res}
	if !res.Found {
		if o.reason, err = explain(p.inst.Graph, p.start, p.goal); err != nil {
			return outcome{}, err
		}
	}

	return o, nil
}

// explain tells apart a goal no arc sequence reaches from one that only the
// budget keeps out of reach.
func explain(g *core.Graph, start, goal string) (string, error) {
	seen, err := core.Reachable(g, start)
	if err != nil {
		return "", err
	}
	if !seen[goal] {
		return reasonUnreachable, nil
	}

	return reasonOverBudget, nil
}
