package search_test

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paingkl/routelab/core"
	"github.com/paingkl/routelab/search"
)

// ------------------------------------------------------------------------
// 1. Heuristic and configuration errors.
// ------------------------------------------------------------------------

func TestAStar_GoalWithoutPoint(t *testing.T) {
	t.Parallel()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("a", "b", 1, 1))
	require.NoError(t, g.SetPoint("a", 0, 0))

	_, err := search.AStar(g, "a", "b", 10)
	require.ErrorIs(t, err, search.ErrConfiguration)
	require.ErrorIs(t, err, core.ErrMissingPoint)
	assert.Contains(t, err.Error(), `goal "b"`)
}

func TestAStar_IntermediateWithoutPoint(t *testing.T) {
	t.Parallel()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("a", "m", 1, 1))
	require.NoError(t, g.AddEdge("m", "z", 1, 1))
	require.NoError(t, g.SetPoint("a", 0, 0))
	require.NoError(t, g.SetPoint("z", 2, 0))

	_, err := search.AStar(g, "a", "z", math.Inf(1))
	require.ErrorIs(t, err, search.ErrConfiguration)
	require.ErrorIs(t, err, core.ErrMissingPoint)
	assert.Contains(t, err.Error(), `vertex "m"`)

	// A custom heuristic does not need points at all.
	res, err := search.AStar(g, "a", "z", math.Inf(1), search.WithHeuristic(search.Zero))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "m", "z"}, res.Path)
}

func TestAStar_BadHeuristicValues(t *testing.T) {
	t.Parallel()
	g := toy(t)
	for _, v := range []float64{-1, math.NaN()} {
		v := v
		h := func(id, goal string) (float64, error) {
			if id == goal {
				return 0, nil
			}
			return v, nil
		}
		_, err := search.AStar(g, "S", "T", 11, search.WithHeuristic(h))
		assert.ErrorIs(t, err, search.ErrConfiguration, "estimate %g", v)
	}
}

func TestAStar_HeuristicErrorPropagates(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	_, err := search.AStar(toy(t), "S", "T", 11,
		search.WithHeuristic(func(string, string) (float64, error) { return 0, boom }))
	assert.ErrorIs(t, err, boom)
}

func TestAStar_HeuristicCached(t *testing.T) {
	t.Parallel()
	calls := map[string]int{}
	h := func(id, goal string) (float64, error) {
		calls[id]++
		return 0, nil
	}
	_, err := search.AStar(toy(t), "S", "T", math.Inf(1), search.WithHeuristic(h))
	require.NoError(t, err)
	for id, n := range calls {
		assert.Equal(t, 1, n, id)
	}
}

func TestEuclidean(t *testing.T) {
	t.Parallel()
	g := toy(t)
	h := search.Euclidean(g)

	v, err := h("S", "T")
	require.NoError(t, err)
	assert.Equal(t, 8.0, v)

	v, err = h("1", "T")
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(45), v, 1e-12)

	require.NoError(t, g.AddVertex("bare"))
	_, err = h("bare", "T")
	assert.ErrorIs(t, err, core.ErrMissingPoint)
	_, err = h("S", "bare")
	assert.ErrorIs(t, err, search.ErrConfiguration)
}

// ------------------------------------------------------------------------
// 2. Options: expansion limit, hook, logger.
// ------------------------------------------------------------------------

func TestMaxExpansions(t *testing.T) {
	t.Parallel()
	g := toy(t)

	// Unconstrained pops S, 2, 1, 3 and then T.
	res, err := search.Unconstrained(g, "S", "T", search.WithMaxExpansions(5))
	require.NoError(t, err)
	assert.True(t, res.Found)

	res, err = search.Unconstrained(g, "S", "T", search.WithMaxExpansions(4))
	require.ErrorIs(t, err, search.ErrExpansionLimit)
	assert.False(t, res.Found)
	assert.Equal(t, 4, res.Stats.Expanded)

	_, err = search.Constrained(g, "S", "T", 11, search.WithMaxExpansions(1))
	assert.ErrorIs(t, err, search.ErrExpansionLimit)
	_, err = search.AStar(g, "S", "T", 11, search.WithMaxExpansions(1))
	assert.ErrorIs(t, err, search.ErrExpansionLimit)
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()
	assert.PanicsWithValue(t, search.ErrBadMaxExpansions.Error(), func() { search.WithMaxExpansions(0) })
	assert.Panics(t, func() { search.WithHeuristic(nil) })
}

func TestOnExpand(t *testing.T) {
	t.Parallel()
	type visit struct {
		id   string
		d, c float64
	}
	var got []visit
	hook := search.WithOnExpand(func(id string, d, c float64) {
		got = append(got, visit{id, d, c})
	})

	_, err := search.Unconstrained(toy(t), "S", "T", hook)
	require.NoError(t, err)
	assert.Equal(t, []visit{
		{"S", 0, 0}, {"2", 2, 6}, {"1", 4, 7}, {"3", 4, 3}, {"T", 10, 12},
	}, got)

	got = nil
	_, err = search.Constrained(toy(t), "S", "T", 11, hook)
	require.NoError(t, err)
	assert.Equal(t, []visit{
		{"S", 0, 0}, {"2", 2, 6}, {"1", 4, 7}, {"3", 4, 3}, {"T", 12, 10},
	}, got)
}

func TestLogger(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := search.Constrained(toy(t), "S", "T", 11, search.WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `msg="search finished"`)
	assert.Contains(t, out, "algorithm=ucs")
	assert.Contains(t, out, "found=true")
	assert.Contains(t, out, "distance=12")
	assert.Contains(t, out, "cost=10")
	assert.Contains(t, out, "pruned=3")

	// Info level filters the debug record out.
	buf.Reset()
	quiet := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	_, err = search.AStar(toy(t), "S", "T", 11, search.WithLogger(quiet))
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestLogger_RecordsErrors(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := search.Unconstrained(toy(t), "S", "T", search.WithLogger(logger), search.WithMaxExpansions(2))
	require.Error(t, err)
	assert.Contains(t, buf.String(), "algorithm=ucs-noconstraint")
	assert.Contains(t, buf.String(), "expansion limit")
}

// ------------------------------------------------------------------------
// 3. Concurrency: searches share a graph read-only.
// ------------------------------------------------------------------------

func TestConcurrentSearches(t *testing.T) {
	t.Parallel()
	g := toy(t)

	const workers = 16
	var wg sync.WaitGroup
	results := make([]search.Result, workers)
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			switch i % 3 {
			case 0:
				results[i], errs[i] = search.Unconstrained(g, "S", "T")
			case 1:
				results[i], errs[i] = search.Constrained(g, "S", "T", 11)
			default:
				results[i], errs[i] = search.AStar(g, "S", "T", 11)
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		if i%3 == 0 {
			assert.Equal(t, []string{"S", "2", "T"}, results[i].Path)
		} else {
			assert.Equal(t, []string{"S", "1", "T"}, results[i].Path)
		}
	}
}
