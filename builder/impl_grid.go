// SPDX-License-Identifier: MIT
// Package: routelab/builder
//
// impl_grid.go - implementation of Grid(rows, cols).
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Vertex IDs are GridID(r, c) = "r<r>c<c>", placed at point (c, r).
//   - 4-neighbourhood roads, each road in both directions, distance 1
//     (equal to the straight-line length), cost from cfg.costFn.
//   - Emission order: row-major; per cell the right road, then the down road.
//
// Complexity: O(rows·cols) vertices and roads.

package builder

import (
	"fmt"
	"strconv"

	"github.com/paingkl/routelab/core"
)

const (
	methodGrid     = "Grid"
	minGridSide    = 1
	gridRoadLength = 1.0
	gridRowPrefix  = "r"
	gridColInfix   = "c"
)

// GridID returns the vertex ID of the cell at row r, column c.
func GridID(r, c int) string {
	return gridRowPrefix + strconv.Itoa(r) + gridColInfix + strconv.Itoa(c)
}

// Grid returns a Constructor for a rows×cols grid with coordinates.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridSide || cols < minGridSide {
			return fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w",
				methodGrid, rows, cols, minGridSide, ErrTooFewVertices)
		}

		var r, c int
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				if err := g.SetPoint(GridID(r, c), float64(c), float64(r)); err != nil {
					return fmt.Errorf("%s: SetPoint(%s): %w", methodGrid, GridID(r, c), err)
				}
			}
		}

		var u, v string
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				u = GridID(r, c)
				if c+1 < cols {
					v = GridID(r, c+1)
					if err := road(g, u, v, gridRoadLength, cfg.costFn(cfg.rng)); err != nil {
						return fmt.Errorf("%s: road(%s→%s): %w", methodGrid, u, v, err)
					}
				}
				if r+1 < rows {
					v = GridID(r+1, c)
					if err := road(g, u, v, gridRoadLength, cfg.costFn(cfg.rng)); err != nil {
						return fmt.Errorf("%s: road(%s→%s): %w", methodGrid, u, v, err)
					}
				}
			}
		}

		return nil
	}
}
