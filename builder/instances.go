// SPDX-License-Identifier: MIT
// Package: routelab/builder
//
// instances.go - fixed road networks and the named instance registry.
//
// Toy and TwoLane are exact, hand-checked networks: every road is listed
// in a fixed order so neighbour order (and with it tie-breaking) never
// changes between runs. Their coordinates satisfy straight line ≤ road
// distance on every road, so the Euclidean estimate stays consistent.
//
// Named resolves a registered name into a ready-to-search Instance.

package builder

import (
	"fmt"
	"sort"

	"github.com/paingkl/routelab/core"
)

const (
	methodToy     = "Toy"
	methodTwoLane = "TwoLane"
)

// fixedRoad is one two-way road of a fixed network.
type fixedRoad struct {
	u, v           string
	distance, cost float64
}

// fixedSite is one vertex placement of a fixed network.
type fixedSite struct {
	id   string
	x, y float64
}

var toySites = []fixedSite{
	{"S", 0, 8},
	{"1", 3, 6},
	{"2", 0, 6},
	{"3", -3, 6},
	{"T", 0, 0},
}

var toyRoads = []fixedRoad{
	{"S", "1", 4, 7},
	{"S", "2", 2, 6},
	{"S", "3", 4, 3},
	{"1", "T", 8, 3},
	{"2", "T", 8, 6},
	{"3", "T", 12, 2},
}

var twoLaneSites = []fixedSite{
	{"1", -1, 0},
	{"2", 0, 0},
	{"3", 0, 1},
	{"4", 1, 0},
	{"5", 1, -1},
	{"6", 2, 0},
}

var twoLaneRoads = []fixedRoad{
	{"1", "2", 1, 10},
	{"1", "3", 10, 3},
	{"2", "3", 1, 2},
	{"2", "4", 1, 1},
	{"2", "5", 2, 3},
	{"3", "4", 5, 7},
	{"3", "5", 12, 3},
	{"4", "5", 10, 1},
	{"4", "6", 1, 7},
	{"5", "6", 2, 2},
}

// Toy returns a Constructor for the five-vertex network S,1,2,3,T.
//
// The short road S→2→T is expensive (distance 10, cost 12); S→1→T costs
// 10 at distance 12 and S→3→T costs 5 at distance 16.
func Toy() Constructor {
	return fixedNetwork(methodToy, toySites, toyRoads)
}

// TwoLane returns a Constructor for the six-vertex network 1..6, in which
// the shortest route 1→2→4→6 (distance 3, cost 18) is too expensive for a
// budget of 17.
func TwoLane() Constructor {
	return fixedNetwork(methodTwoLane, twoLaneSites, twoLaneRoads)
}

func fixedNetwork(method string, sites []fixedSite, roads []fixedRoad) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for _, s := range sites {
			if err := g.SetPoint(s.id, s.x, s.y); err != nil {
				return fmt.Errorf("%s: SetPoint(%s): %w", method, s.id, err)
			}
		}
		for _, r := range roads {
			if err := road(g, r.u, r.v, r.distance, r.cost); err != nil {
				return fmt.Errorf("%s: road(%s→%s): %w", method, r.u, r.v, err)
			}
		}

		return nil
	}
}

// Instance is a graph together with a default query on it.
type Instance struct {
	Name        string
	Description string
	Graph       *core.Graph
	Start       string
	Goal        string
	Budget      float64
}

// recipe describes how a named instance is built.
type recipe struct {
	description string
	gopts       []core.GraphOption
	bopts       []BuilderOption
	cons        []Constructor
	start, goal string
	budget      float64
}

const (
	gridSide         = 10
	geometricSize    = 60
	geometricRadius  = 0.3
	geometricSeed    = 7
	gridSeed         = 1
	gridBudget       = 45
	geometricBudget  = 30
	gridCostLo       = 1
	gridCostHi       = 5
	geometricCostLo  = 1
	geometricCostHi  = 9
	geometricLastIdx = geometricSize - 1
)

var registry = map[string]recipe{
	"toy": {
		description: "five-vertex network S,1,2,3,T",
		gopts:       []core.GraphOption{core.WithMirrored()},
		cons:        []Constructor{Toy()},
		start:       "S",
		goal:        "T",
		budget:      11,
	},
	"six": {
		description: "six-vertex network 1..6",
		gopts:       []core.GraphOption{core.WithMirrored()},
		cons:        []Constructor{TwoLane()},
		start:       "1",
		goal:        "6",
		budget:      17,
	},
	"grid": {
		description: "10x10 coordinate grid, integer costs 1..5",
		bopts:       []BuilderOption{WithSeed(gridSeed), WithCostFn(IntWeight(gridCostLo, gridCostHi))},
		cons:        []Constructor{Grid(gridSide, gridSide)},
		start:       GridID(0, 0),
		goal:        GridID(gridSide-1, gridSide-1),
		budget:      gridBudget,
	},
	"geometric": {
		description: "60 random points in the unit square, integer costs 1..9",
		bopts:       []BuilderOption{WithSeed(geometricSeed), WithCostFn(IntWeight(geometricCostLo, geometricCostHi))},
		cons:        []Constructor{RandomGeometric(geometricSize, geometricRadius)},
		start:       prefixedID(0),
		goal:        prefixedID(geometricLastIdx),
		budget:      geometricBudget,
	},
}

// Names returns the registered instance names in ascending order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Named builds the registered instance called name. Every call returns a
// fresh graph.
func Named(name string) (Instance, error) {
	rc, ok := registry[name]
	if !ok {
		return Instance{}, fmt.Errorf("Named(%q): %w", name, ErrUnknownInstance)
	}
	g, err := BuildGraph(rc.gopts, rc.bopts, rc.cons...)
	if err != nil {
		return Instance{}, fmt.Errorf("Named(%q): %w", name, err)
	}

	return Instance{
		Name:        name,
		Description: rc.description,
		Graph:       g,
		Start:       rc.start,
		Goal:        rc.goal,
		Budget:      rc.budget,
	}, nil
}
