// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/paingkl/routelab/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls are safe and
// every arc appears.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			require.NoError(t, g.AddEdge("X", fmt.Sprintf("V%d", id), float64(id), 1))
		}(i)
	}
	wg.Wait()

	nbs, err := g.Neighbors("X")
	require.NoError(t, err)
	require.Len(t, nbs, num)
}

// TestConcurrentReads runs readers alongside a writer; the race detector is
// the real assertion here.
func TestConcurrentReads(t *testing.T) {
	g := core.NewGraph(core.WithMirrored())
	require.NoError(t, g.AddEdge("A", "B", 1, 1))

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			_ = g.AddEdge("A", fmt.Sprintf("W%d", i), 1, 1)
		}
	}()
	for r := 0; r < 2; r++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				_, _ = g.OutEdges("A")
				_ = g.Vertices()
				_, _ = core.Reachable(g, "B")
			}
		}()
	}
	wg.Wait()
	require.Equal(t, 101, len(mustNeighbors(t, g, "A")))
}

func mustNeighbors(t *testing.T, g *core.Graph, id string) []string {
	t.Helper()
	nbs, err := g.Neighbors(id)
	require.NoError(t, err)

	return nbs
}
