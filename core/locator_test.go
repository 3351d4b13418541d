package core_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paingkl/routelab/core"
)

func TestNewLocator_NoPoints(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	_, err := core.NewLocator(g)
	require.ErrorIs(t, err, core.ErrNoPoints)
}

func TestLocator_Nearest(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.SetPoint("origin", 0, 0))
	require.NoError(t, g.SetPoint("east", 10, 0))
	require.NoError(t, g.SetPoint("north", 0, 10))
	require.NoError(t, g.AddVertex("nowhere")) // not indexed

	loc, err := core.NewLocator(g)
	require.NoError(t, err)
	assert.Equal(t, 3, loc.Len())

	id, err := loc.Nearest(8, 1)
	require.NoError(t, err)
	assert.Equal(t, "east", id)

	id, err = loc.Nearest(-3, 2)
	require.NoError(t, err)
	assert.Equal(t, "origin", id)
}

func TestLocator_NearestN(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 10; i++ {
		require.NoError(t, g.SetPoint(fmt.Sprintf("p%d", i), float64(i), 0))
	}
	loc, err := core.NewLocator(g)
	require.NoError(t, err)

	ids, err := loc.NearestN(2.1, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"p2", "p3", "p1"}, ids)

	ids, err = loc.NearestN(0, 0, 50)
	require.NoError(t, err)
	assert.Len(t, ids, 10, "k is capped at the index size")

	ids, err = loc.NearestN(0, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, ids)
}
