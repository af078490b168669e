package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridnav/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGridGraph and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGridGraph_Errors verifies that NewGridGraph rejects empty or ragged inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid, gridgraph.DefaultGridOptions())
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGridGraph(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestNewGridGraph_DeepCopy ensures later edits to the input do not leak in.
func TestNewGridGraph_DeepCopy(t *testing.T) {
	in := [][]int{{1, 2}, {3, 4}}
	gg, err := gridgraph.NewGridGraph(in, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	in[0][0] = 0
	require.True(t, gg.IsValidMove(gridgraph.Cell{Row: 0, Col: 0}))
	require.Equal(t, int64(1), gg.TerrainCost(gridgraph.Cell{Row: 0, Col: 0}))
}

// TestInBounds checks InBounds on a 2×3 grid.
func TestInBounds(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{
		{0, 1, 0},
		{1, 0, 1},
	}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	for _, c := range []gridgraph.Cell{{0, 0}, {1, 2}, {1, 1}} {
		if !gg.InBounds(c) {
			t.Errorf("InBounds(%v)=false; want true", c)
		}
	}
	for _, c := range []gridgraph.Cell{{-1, 0}, {0, 3}, {2, 1}, {1, -1}} {
		if gg.InBounds(c) {
			t.Errorf("InBounds(%v)=true; want false", c)
		}
	}
}

// TestIsValidMove checks bounds and the LandThreshold obstacle rule.
func TestIsValidMove(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.LandThreshold = 2
	gg, err := gridgraph.NewGridGraph([][]int{{1, 2, 0, 9}}, opts)
	require.NoError(t, err)

	require.False(t, gg.IsValidMove(gridgraph.Cell{Row: 0, Col: 0}), "below threshold")
	require.True(t, gg.IsValidMove(gridgraph.Cell{Row: 0, Col: 1}))
	require.False(t, gg.IsValidMove(gridgraph.Cell{Row: 0, Col: 2}), "zero is always blocked at threshold 2")
	require.True(t, gg.IsValidMove(gridgraph.Cell{Row: 0, Col: 3}))
	require.False(t, gg.IsValidMove(gridgraph.Cell{Row: 0, Col: 4}), "out of bounds")
	require.Equal(t, int64(9), gg.TerrainCost(gridgraph.Cell{Row: 0, Col: 3}))
}

//----------------------------------------------------------------------------//
// Neighbors Tests
//----------------------------------------------------------------------------//

// TestNeighbors_Conn4Order pins the up, down, left, right order.
func TestNeighbors_Order(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	got := gg.Neighbors(gridgraph.Cell{Row: 1, Col: 1})
	want := []gridgraph.Cell{{0, 1}, {2, 1}, {1, 0}, {1, 2}}
	require.Equal(t, want, got)

	// Corner neighbors are reported unfiltered.
	corner := gg.Neighbors(gridgraph.Cell{Row: 0, Col: 0})
	require.Len(t, corner, 4)
	require.Equal(t, gridgraph.Cell{Row: -1, Col: 0}, corner[0])
}

// TestNeighbors_NoDiagonals: every neighbor is one orthogonal step away, so
// each move costs at least one unit of Manhattan distance.
func TestNeighbors_NoDiagonals(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{{1, 1, 1}, {1, 1, 1}}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	for _, c := range gg.Cells() {
		nbrs := gg.Neighbors(c)
		require.Len(t, nbrs, 4)
		for _, v := range nbrs {
			dr, dc := v.Row-c.Row, v.Col-c.Col
			require.Equal(t, 1, dr*dr+dc*dc, "%v -> %v", c, v)
		}
	}
}

//----------------------------------------------------------------------------//
// Cell and Path Tests
//----------------------------------------------------------------------------//

// TestCell_Compare checks the row-then-column ordering.
func TestCell_Compare(t *testing.T) {
	a := gridgraph.Cell{Row: 0, Col: 5}
	b := gridgraph.Cell{Row: 1, Col: 0}
	c := gridgraph.Cell{Row: 1, Col: 2}

	require.Equal(t, -1, a.Compare(b))
	require.Equal(t, 1, c.Compare(b))
	require.Equal(t, 0, b.Compare(b))
	require.Equal(t, "(1,2)", c.String())
}

// TestPath_CostAndEdges sums entered cells only.
func TestPath_CostAndEdges(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{{5, 2, 3}}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	p := gridgraph.Path{{0, 0}, {0, 1}, {0, 2}}
	require.Equal(t, 2, p.Edges())
	require.Equal(t, int64(5), p.Cost(gg))
	require.Equal(t, "(0,0) -> (0,1) -> (0,2)", p.String())

	var empty gridgraph.Path
	require.Equal(t, 0, empty.Edges())
	require.Equal(t, int64(0), empty.Cost(gg))
}

// TestCheck reports out-of-bounds cells with ErrOutOfBounds.
func TestCheck(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{{1, 0}}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	require.NoError(t, gg.Check(gridgraph.Cell{Row: 0, Col: 1}))
	require.ErrorIs(t, gg.Check(gridgraph.Cell{Row: 1, Col: 0}), gridgraph.ErrOutOfBounds)
	require.ErrorIs(t, gg.Check(gridgraph.Cell{Row: 0, Col: -1}), gridgraph.ErrOutOfBounds)
}

//----------------------------------------------------------------------------//
// Render Tests
//----------------------------------------------------------------------------//

// TestRender marks start, goal, path, obstacles and costs.
func TestRender(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{
		{1, 1, 0},
		{3, 12, 1},
	}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	path := gridgraph.Path{{0, 0}, {0, 1}, {1, 1}, {1, 2}}
	got := gg.Render(path, gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 1, Col: 2})
	want := "S * #\n3 * G\n"
	require.Equal(t, want, got)

	bare := gg.Render(nil, gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 1, Col: 2})
	require.Equal(t, "S 1 #\n3 + G\n", bare)
}
