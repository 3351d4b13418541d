package builder_test

import (
	"testing"

	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paingkl/routelab/builder"
	"github.com/paingkl/routelab/core"
)

func TestToy_Tables(t *testing.T) {
	t.Parallel()
	g, err := builder.BuildGraph([]core.GraphOption{core.WithMirrored()}, nil, builder.Toy())
	require.NoError(t, err)

	tb := g.Tables()
	assert.Equal(t, []string{"1", "2", "3"}, tb.Adjacency["S"])
	assert.Equal(t, []string{"S", "T"}, tb.Adjacency["1"])
	assert.Equal(t, []string{"1", "2", "3"}, tb.Adjacency["T"])

	want := map[string][2]float64{
		"S,1": {4, 7}, "S,2": {2, 6}, "S,3": {4, 3},
		"1,T": {8, 3}, "2,T": {8, 6}, "3,T": {12, 2},
	}
	for key, w := range want {
		u, v, err := core.SplitPairKey(key)
		require.NoError(t, err)
		assert.Equal(t, w[0], tb.Distance[core.PairKey(u, v)], key)
		assert.Equal(t, w[1], tb.Cost[core.PairKey(u, v)], key)
		assert.Equal(t, w[0], tb.Distance[core.PairKey(v, u)], "reverse of "+key)
		assert.Equal(t, w[1], tb.Cost[core.PairKey(v, u)], "reverse of "+key)
	}
	assert.Equal(t, 12, g.EdgeCount())
}

func TestTwoLane_Adjacency(t *testing.T) {
	t.Parallel()
	g, err := builder.BuildGraph(nil, nil, builder.TwoLane())
	require.NoError(t, err)

	want := map[string][]string{
		"1": {"2", "3"},
		"2": {"1", "3", "4", "5"},
		"3": {"1", "2", "4", "5"},
		"4": {"2", "3", "5", "6"},
		"5": {"2", "3", "4", "6"},
		"6": {"4", "5"},
	}
	for id, nbrs := range want {
		got, err := g.Neighbors(id)
		require.NoError(t, err)
		assert.Equal(t, nbrs, got, id)
	}
}

// Every fixed network keeps straight lines no longer than roads.
func TestFixedNetworks_PointsBelowRoads(t *testing.T) {
	t.Parallel()
	for _, ctor := range []builder.Constructor{builder.Toy(), builder.TwoLane()} {
		g, err := builder.BuildGraph(nil, nil, ctor)
		require.NoError(t, err)
		for _, e := range g.Edges() {
			pu, ok := g.Point(e.From)
			require.True(t, ok, e.From)
			pv, ok := g.Point(e.To)
			require.True(t, ok, e.To)
			assert.LessOrEqual(t, planar.Distance(pu, pv), e.Distance, "%s→%s", e.From, e.To)
		}
	}
}

func TestNamed(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"geometric", "grid", "six", "toy"}, builder.Names())

	for _, name := range builder.Names() {
		inst, err := builder.Named(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, inst.Name)
		assert.NotEmpty(t, inst.Description)
		require.NotNil(t, inst.Graph)
		assert.True(t, inst.Graph.HasVertex(inst.Start), name)
		assert.True(t, inst.Graph.HasVertex(inst.Goal), name)
		assert.Positive(t, inst.Budget)
		assert.True(t, inst.Graph.HasPoints(), name)
	}

	toy, err := builder.Named("toy")
	require.NoError(t, err)
	assert.Equal(t, "S", toy.Start)
	assert.Equal(t, "T", toy.Goal)
	assert.Equal(t, 11.0, toy.Budget)
	assert.True(t, toy.Graph.Mirrored())
}

func TestNamed_FreshGraphs(t *testing.T) {
	t.Parallel()
	a, err := builder.Named("geometric")
	require.NoError(t, err)
	b, err := builder.Named("geometric")
	require.NoError(t, err)

	assert.NotSame(t, a.Graph, b.Graph)
	assert.Equal(t, a.Graph.Edges(), b.Graph.Edges())
}

func TestNamed_Unknown(t *testing.T) {
	t.Parallel()
	_, err := builder.Named("atlantis")
	require.ErrorIs(t, err, builder.ErrUnknownInstance)
}
