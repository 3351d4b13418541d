package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/paingkl/routelab/core"
)

// algorithm names used in log records and errors.
const (
	nameUnconstrained = "ucs-noconstraint"
	nameConstrained   = "ucs"
	nameAStar         = "astar"
)

// buildOptions applies opts over the defaults.
func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	return cfg
}

// validate checks the inputs common to every variant, in order:
//  1. g must be non-nil (ErrNilGraph).
//  2. start and goal must be non-empty (ErrEmptyVertexID).
//  3. start and goal must exist in g (ErrVertexNotFound).
func validate(g *core.Graph, start, goal string) error {
	if g == nil {
		return ErrNilGraph
	}
	if start == "" || goal == "" {
		return ErrEmptyVertexID
	}
	if !g.HasVertex(start) {
		return fmt.Errorf("%w: start %q", ErrVertexNotFound, start)
	}
	if !g.HasVertex(goal) {
		return fmt.Errorf("%w: goal %q", ErrVertexNotFound, goal)
	}

	return nil
}

// validateBudget rejects negative and NaN budgets. +Inf is accepted.
func validateBudget(budget float64) error {
	if math.IsNaN(budget) || budget < 0 {
		return fmt.Errorf("%w: %g", ErrBadBudget, budget)
	}

	return nil
}

// outEdges fetches the arcs of u, lifting weight inconsistencies into the
// configuration error family.
func outEdges(g *core.Graph, u string) ([]core.Edge, error) {
	out, err := g.OutEdges(u)
	if err == nil {
		return out, nil
	}
	if errors.Is(err, core.ErrMissingWeight) {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	return nil, fmt.Errorf("search: neighbors of %q: %w", u, err)
}

// tally tracks Stats plus the distinct-vertex set behind Visited.
type tally struct {
	Stats
	seen map[string]struct{}
}

func newTally() tally {
	return tally{seen: make(map[string]struct{})}
}

// expand records one processed entry for id and enforces MaxExpansions.
func (t *tally) expand(cfg *Options, id string, distance, cost float64) error {
	if cfg.MaxExpansions > 0 && t.Expanded >= cfg.MaxExpansions {
		return fmt.Errorf("%w: %d entries processed", ErrExpansionLimit, t.Expanded)
	}
	t.Expanded++
	if _, ok := t.seen[id]; !ok {
		t.seen[id] = struct{}{}
		t.Visited++
	}
	if cfg.OnExpand != nil {
		cfg.OnExpand(id, distance, cost)
	}

	return nil
}

// logResult emits the per-search debug record.
func logResult(cfg *Options, algo, start, goal string, res Result, err error) {
	if cfg.Logger == nil {
		return
	}
	attrs := []slog.Attr{
		slog.String("algorithm", algo),
		slog.String("start", start),
		slog.String("goal", goal),
		slog.Bool("found", res.Found),
		slog.Int("expanded", res.Stats.Expanded),
		slog.Int("visited", res.Stats.Visited),
		slog.Int("pushed", res.Stats.Pushed),
		slog.Int("pruned", res.Stats.Pruned),
	}
	if res.Found {
		attrs = append(attrs,
			slog.Float64("distance", res.Distance),
			slog.Float64("cost", res.Cost),
			slog.Int("hops", len(res.Path)-1),
		)
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	cfg.Logger.LogAttrs(context.Background(), slog.LevelDebug, "search finished", attrs...)
}
