package astar

import "github.com/katalvlaran/gridnav/gridgraph"

// Manhattan returns |Δrow| + |Δcol| between a and b.
// It is admissible and consistent for 4-directional moves of cost ≥ 1.
func Manhattan(a, b gridgraph.Cell) int64 {
	return int64(abs(a.Row-b.Row) + abs(a.Col-b.Col))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
