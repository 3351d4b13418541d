// SPDX-License-Identifier: MIT
// Package: routelab/builder
//
// impl_random_geometric.go - implementation of RandomGeometric(n, radius).
//
// Model:
//   - n points drawn uniformly from the unit square, vertex i at point i.
//   - A road joins i and j (i<j) when their straight-line distance is at
//     most radius. Its distance is euclid × (1 + U[0, cfg.maxStretch)), so
//     the Euclidean heuristic never overestimates; its cost comes from
//     cfg.costFn.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - radius > 0 (else ErrInvalidRadius).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//
// Determinism:
//   - Points are drawn for i asc, then pairs visited for i asc, j asc.
//
// Complexity: O(n²) pair checks.

package builder

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/paingkl/routelab/core"
)

const (
	methodRandomGeometric      = "RandomGeometric"
	minRandomGeometricVertices = 1
)

// RandomGeometric returns a Constructor sampling a random geometric road
// network in the unit square.
func RandomGeometric(n int, radius float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomGeometricVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomGeometric, n, minRandomGeometricVertices, ErrTooFewVertices)
		}
		if !(radius > 0) || math.IsInf(radius, 0) {
			return fmt.Errorf("%s: radius=%g: %w", methodRandomGeometric, radius, ErrInvalidRadius)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomGeometric, ErrNeedRandSource)
		}

		pts := make([]orb.Point, n)
		for i := range pts {
			pts[i] = orb.Point{cfg.rng.Float64(), cfg.rng.Float64()}
			if err := g.SetPoint(cfg.idFn(i), pts[i].X(), pts[i].Y()); err != nil {
				return fmt.Errorf("%s: SetPoint(%s): %w", methodRandomGeometric, cfg.idFn(i), err)
			}
		}

		var (
			i, j     int
			straight float64
			u, v     string
		)
		for i = 0; i < n; i++ {
			u = cfg.idFn(i)
			for j = i + 1; j < n; j++ {
				straight = planar.Distance(pts[i], pts[j])
				if straight > radius {
					continue
				}
				v = cfg.idFn(j)
				d := straight * (1 + cfg.rng.Float64()*cfg.maxStretch)
				c := cfg.costFn(cfg.rng)
				if err := road(g, u, v, d, c); err != nil {
					return fmt.Errorf("%s: road(%s→%s): %w", methodRandomGeometric, u, v, err)
				}
			}
		}

		return nil
	}
}
