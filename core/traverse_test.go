package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paingkl/routelab/core"
)

func TestReachable(t *testing.T) {
	// A→B→C, D→A, isolated E
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1, 1))
	require.NoError(t, g.AddEdge("B", "C", 1, 1))
	require.NoError(t, g.AddEdge("D", "A", 1, 1))
	require.NoError(t, g.AddVertex("E"))

	seen, err := core.Reachable(g, "A")
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"A": true, "B": true, "C": true}, seen)

	seen, err = core.Reachable(g, "E")
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"E": true}, seen)

	_, err = core.Reachable(g, "Z")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestReachable_Cycle(t *testing.T) {
	g := core.NewGraph(core.WithMirrored())
	require.NoError(t, g.AddEdge("A", "B", 1, 1))
	require.NoError(t, g.AddEdge("B", "C", 1, 1))
	require.NoError(t, g.AddEdge("C", "A", 1, 1))

	seen, err := core.Reachable(g, "C")
	require.NoError(t, err)
	assert.Len(t, seen, 3)
}
