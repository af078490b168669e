package obstacle_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridnav/gridgraph"
	"github.com/katalvlaran/gridnav/obstacle"
)

var (
	a = gridgraph.Cell{Row: 0, Col: 0}
	b = gridgraph.Cell{Row: 0, Col: 1}
	c = gridgraph.Cell{Row: 0, Col: 2}
)

// TestNone always reports safe, and OrNone substitutes it for nil.
func TestNone(t *testing.T) {
	require.True(t, obstacle.None{}.IsSafe(a, 0))
	require.True(t, obstacle.OrNone(nil).IsSafe(a, 123))

	tb := obstacle.NewTable().Occupy(a, 1)
	require.Same(t, tb, obstacle.OrNone(tb))
}

// TestTable checks explicit occupancy by cell and time.
func TestTable(t *testing.T) {
	var tb obstacle.Table // zero value must work
	tb.Occupy(b, 1, 3)

	require.Equal(t, 2, tb.Len())
	require.True(t, tb.IsSafe(b, 0))
	require.False(t, tb.IsSafe(b, 1))
	require.True(t, tb.IsSafe(b, 2))
	require.False(t, tb.IsSafe(b, 3))
	require.True(t, tb.IsSafe(a, 1))
}

// TestMover_At covers looping, parking and empty routes.
func TestMover_At(t *testing.T) {
	loop := obstacle.Mover{Route: []gridgraph.Cell{a, b, c}, Loop: true}
	park := obstacle.Mover{Route: []gridgraph.Cell{a, b, c}}

	cases := []struct {
		name string
		m    obstacle.Mover
		t    int
		want gridgraph.Cell
	}{
		{"LoopStart", loop, 0, a},
		{"LoopWrap", loop, 4, b},
		{"ParkInside", park, 2, c},
		{"ParkAfter", park, 10, c},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.m.At(tc.t)
			require.True(t, ok)
			require.Equal(t, tc.want, got)
		})
	}

	_, ok := obstacle.Mover{}.At(0)
	require.False(t, ok)
	_, ok = loop.At(-1)
	require.False(t, ok)
}

// TestMovers reports a cell unsafe whenever any mover stands on it.
func TestMovers(t *testing.T) {
	ms := obstacle.Movers{
		{Route: []gridgraph.Cell{a, b}, Loop: true},
		{Route: []gridgraph.Cell{c}},
	}
	require.False(t, ms.IsSafe(a, 0))
	require.True(t, ms.IsSafe(b, 0))
	require.False(t, ms.IsSafe(b, 1))
	require.False(t, ms.IsSafe(a, 2))
	require.False(t, ms.IsSafe(c, 99))
}

// TestUnion combines schedules and skips nil members.
func TestUnion(t *testing.T) {
	u := obstacle.Union{
		obstacle.NewTable().Occupy(a, 0),
		nil,
		obstacle.Movers{{Route: []gridgraph.Cell{b}}},
	}
	require.False(t, u.IsSafe(a, 0))
	require.True(t, u.IsSafe(a, 1))
	require.False(t, u.IsSafe(b, 5))
	require.True(t, u.IsSafe(c, 0))
}

// TestForecasts compares Exact and Horizon views of the same table.
func TestForecasts(t *testing.T) {
	tb := obstacle.NewTable().Occupy(b, 1, 5)

	exact := obstacle.Exact(tb)(0)
	require.False(t, exact.IsSafe(b, 1))
	require.False(t, exact.IsSafe(b, 5))

	blind := obstacle.Horizon(tb, 0)(0)
	require.True(t, blind.IsSafe(b, 1), "k=0 hides the next step")

	near := obstacle.Horizon(tb, 1)(0)
	require.False(t, near.IsSafe(b, 1))
	require.True(t, near.IsSafe(b, 5))

	later := obstacle.Horizon(tb, 1)(4)
	require.False(t, later.IsSafe(b, 5))

	require.Equal(t, obstacle.Horizon(tb, -3)(0).IsSafe(b, 1), blind.IsSafe(b, 1))
	require.True(t, obstacle.Exact(nil)(7).IsSafe(a, 7))
}
