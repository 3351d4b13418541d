// SPDX-License-Identifier: MIT
// Package: routelab/builder
//
// impl_random_dag.go - implementation of RandomDAG(n, p).
//
// Model:
//   - Vertices cfg.idFn(0..n-1); arc i→j for i<j included independently with
//     probability p, so index order is a topological order.
//   - Distance from cfg.distanceFn, cost from cfg.costFn.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - A mirrored graph cannot be acyclic (ErrUnsupportedGraphMode).
//
// Determinism:
//   - Trials run for i asc, j asc; fixed seed ⇒ identical graph.
//
// Complexity: O(n²) Bernoulli trials.

package builder

import (
	"fmt"

	"github.com/paingkl/routelab/core"
)

const (
	methodRandomDAG      = "RandomDAG"
	minRandomDAGVertices = 1
	probMin              = 0.0
	probMax              = 1.0
)

// RandomDAG returns a Constructor sampling a random directed acyclic graph.
func RandomDAG(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomDAGVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomDAG, n, minRandomDAGVertices, ErrTooFewVertices)
		}
		if !(p >= probMin && p <= probMax) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomDAG, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomDAG, ErrNeedRandSource)
		}
		if g.Mirrored() {
			return fmt.Errorf("%s: mirrored graph: %w", methodRandomDAG, ErrUnsupportedGraphMode)
		}

		for i := 0; i < n; i++ {
			if err := g.AddVertex(cfg.idFn(i)); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodRandomDAG, cfg.idFn(i), err)
			}
		}

		var (
			i, j int
			u, v string
			keep bool
		)
		for i = 0; i < n; i++ {
			u = cfg.idFn(i)
			for j = i + 1; j < n; j++ {
				if cfg.rng == nil {
					keep = p == probMax
				} else {
					keep = cfg.rng.Float64() < p || p == probMax
				}
				if !keep {
					continue
				}
				v = cfg.idFn(j)
				d, c := cfg.distanceFn(cfg.rng), cfg.costFn(cfg.rng)
				if err := g.AddEdge(u, v, d, c); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, d=%g, c=%g): %w",
						methodRandomDAG, u, v, d, c, err)
				}
			}
		}

		return nil
	}
}
