// Package search_test provides runnable examples for the search variants.
package search_test

import (
	"fmt"
	"strings"

	"github.com/paingkl/routelab/core"
	"github.com/paingkl/routelab/search"
)

// exampleGraph is the five-vertex network S,1,2,3,T.
func exampleGraph() *core.Graph {
	g := core.NewGraph(core.WithMirrored())
	_ = g.AddEdge("S", "1", 4, 7)
	_ = g.AddEdge("S", "2", 2, 6)
	_ = g.AddEdge("S", "3", 4, 3)
	_ = g.AddEdge("1", "T", 8, 3)
	_ = g.AddEdge("2", "T", 8, 6)
	_ = g.AddEdge("3", "T", 12, 2)

	return g
}

// ExampleUnconstrained finds the shortest route and reports its cost.
func ExampleUnconstrained() {
	res, err := search.Unconstrained(exampleGraph(), "S", "T")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(strings.Join(res.Path, "->"), res.Distance, res.Cost)
	// Output: S->2->T 10 12
}

// ExampleConstrained shows the budget steering the route away from the
// expensive shortcut.
func ExampleConstrained() {
	g := exampleGraph()
	for _, budget := range []float64{4, 5, 11, 12} {
		res, err := search.Constrained(g, "S", "T", budget)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		if !res.Found {
			fmt.Printf("budget %g: no path\n", budget)
			continue
		}
		fmt.Printf("budget %g: %s distance=%g cost=%g\n",
			budget, strings.Join(res.Path, "->"), res.Distance, res.Cost)
	}
	// Output:
	// budget 4: no path
	// budget 5: S->3->T distance=16 cost=5
	// budget 11: S->1->T distance=12 cost=10
	// budget 12: S->2->T distance=10 cost=12
}

// ExampleAStar attaches coordinates so the default Euclidean estimate can
// guide the search.
func ExampleAStar() {
	g := exampleGraph()
	for id, p := range map[string][2]float64{
		"S": {0, 8}, "1": {3, 6}, "2": {0, 6}, "3": {-3, 6}, "T": {0, 0},
	} {
		_ = g.SetPoint(id, p[0], p[1])
	}

	res, err := search.AStar(g, "S", "T", 11)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(strings.Join(res.Path, "->"), res.Distance, res.Cost)
	// Output: S->1->T 12 10
}

// ExampleReconstruct rebuilds a path from a predecessor map.
func ExampleReconstruct() {
	pred := map[string]string{"b": "a", "c": "b"}
	path, _ := search.Reconstruct(pred, "a", "c")
	fmt.Println(path)
	// Output: [a b c]
}
