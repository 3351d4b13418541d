package frontier_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paingkl/routelab/frontier"
)

type entry struct {
	id  string
	key float64
}

func byKey() *frontier.Queue[entry] {
	return frontier.ByKey(func(e entry) float64 { return e.key })
}

func TestQueue_Empty(t *testing.T) {
	q := byKey()
	assert.Zero(t, q.Len())
	_, ok := q.Pop()
	assert.False(t, ok)
	_, ok = q.Peek()
	assert.False(t, ok)
}

func TestQueue_Ordering(t *testing.T) {
	q := byKey()
	for _, e := range []entry{{"c", 3}, {"a", 1}, {"d", 4}, {"b", 2}} {
		q.Push(e)
	}
	top, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, "a", top.id)
	assert.Equal(t, 4, q.Len(), "Peek must not remove")

	var got []string
	for q.Len() > 0 {
		e, _ := q.Pop()
		got = append(got, e.id)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, got)
}

func TestQueue_TiesAreFIFO(t *testing.T) {
	q := byKey()
	q.Push(entry{"1", 4})
	q.Push(entry{"x", 2})
	q.Push(entry{"3", 4})
	q.Push(entry{"2", 4})

	var got []string
	for q.Len() > 0 {
		e, _ := q.Pop()
		got = append(got, e.id)
	}
	assert.Equal(t, []string{"x", "1", "3", "2"}, got)
}

func TestQueue_RandomAgainstSort(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	q := frontier.New(func(a, b int) bool { return a < b })
	want := make([]int, 500)
	for i := range want {
		want[i] = rng.Intn(100)
		q.Push(want[i])
	}
	sort.Ints(want)

	got := make([]int, 0, len(want))
	for {
		v, ok := q.Pop()
		if !ok {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, want, got)
}

func TestQueue_Interleaved(t *testing.T) {
	q := byKey()
	q.Push(entry{"b", 2})
	q.Push(entry{"d", 4})
	e, _ := q.Pop()
	assert.Equal(t, "b", e.id)
	q.Push(entry{"a", 1})
	q.Push(entry{"c", 3})
	e, _ = q.Pop()
	assert.Equal(t, "a", e.id)
	e, _ = q.Pop()
	assert.Equal(t, "c", e.id)
	e, _ = q.Pop()
	assert.Equal(t, "d", e.id)
}

func TestQueue_Reset(t *testing.T) {
	q := byKey()
	q.Push(entry{"a", 1})
	q.Push(entry{"b", 2})
	q.Reset()
	assert.Zero(t, q.Len())

	q.Push(entry{"z", 9})
	e, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, "z", e.id)
}

func TestNew_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { frontier.New[int](nil) })
	assert.Panics(t, func() { frontier.ByKey[int](nil) })
}
