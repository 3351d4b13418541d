// Package builder provides deterministic, functional-options-style
// constructors for road networks used to exercise the search package.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:       creates a core.Graph and applies Constructors in order.
//     – Constructor:      func(*core.Graph, builderConfig) error.
//   - Constructors:
//     – Toy:              five-vertex network S,1,2,3,T with fixed weights.
//     – TwoLane:          six-vertex network 1..6 with fixed weights.
//     – Grid:             rows×cols coordinate grid, IDs "r<row>c<col>".
//     – RandomDAG:        seeded random DAG over "v0".."v<n-1>".
//     – RandomGeometric:  seeded random points in the unit square with roads
//     between close pairs; distance never below the straight line.
//   - Options (BuilderOption):
//     – WithIDScheme, WithSeed, WithRand.
//     – WithDistanceFn, WithCostFn, WithMaxStretch.
//     – UniformWeight, IntWeight: ready-made weight generators.
//   - Registry:
//     – Named / Names:    ready-to-search Instances (graph, start, goal, budget).
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical graph.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors return sentinel errors wrapped with the constructor name.
//   - Undirected constructors add both directions themselves, so they work on
//     plain and mirrored graphs alike.
package builder
