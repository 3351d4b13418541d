package search

import (
	"fmt"
	"math"

	"github.com/paingkl/routelab/core"
)

// AStar is Constrained with the frontier ordered by
//
//	cumulative distance + h(vertex, goal)
//
// where h defaults to the straight-line distance between vertex points
// (Euclidean). Relaxation and budget pruning are exactly those of
// Constrained. With an admissible h the returned distance matches
// Constrained on the same inputs, typically after far fewer expansions.
//
// Every vertex the search pushes must carry a point when the default
// heuristic is used; otherwise the call fails with ErrConfiguration wrapping
// core.ErrMissingPoint and naming the vertex. The goal's point is checked up
// front.
//
// h is evaluated once per vertex and cached for the duration of the call.
// A negative or NaN estimate is a configuration error.
func AStar(g *core.Graph, start, goal string, budget float64, opts ...Option) (Result, error) {
	cfg := buildOptions(opts)
	if err := validate(g, start, goal); err != nil {
		return Result{}, err
	}
	if err := validateBudget(budget); err != nil {
		return Result{}, err
	}

	h := cfg.Heuristic
	if h == nil {
		if _, ok := g.Point(goal); !ok {
			err := fmt.Errorf("%w: %w: goal %q", ErrConfiguration, core.ErrMissingPoint, goal)
			logResult(&cfg, nameAStar, start, goal, Result{}, err)
			return Result{}, err
		}
		h = Euclidean(g)
	}

	cache := make(map[string]float64)
	estimate := func(id string) (float64, error) {
		if v, ok := cache[id]; ok {
			return v, nil
		}
		v, err := h(id, goal)
		if err != nil {
			return 0, err
		}
		if math.IsNaN(v) || v < 0 {
			return 0, fmt.Errorf("%w: heuristic(%q, %q) = %g", ErrConfiguration, id, goal, v)
		}
		cache[id] = v

		return v, nil
	}

	r := newLabelRunner(g, &cfg, start, goal, budget, estimate)
	res, err := r.run()
	logResult(&cfg, nameAStar, start, goal, res, err)

	return res, err
}
