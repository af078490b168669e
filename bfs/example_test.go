package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/gridnav/bfs"
	"github.com/katalvlaran/gridnav/gridgraph"
)

// ExampleSearch demonstrates BFS on a 3×3 grid with a wall in the middle
// column. Moves are tried up, down, left, right.
func ExampleSearch() {
	g, _ := gridgraph.NewGridGraph([][]int{
		{1, 0, 1},
		{1, 0, 1},
		{1, 1, 1},
	}, gridgraph.DefaultGridOptions())

	res, err := bfs.Search(g, gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 0, Col: 2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path)
	fmt.Println("moves:", res.Path.Edges(), "expanded:", res.Expanded)
	// Output:
	// (0,0) -> (1,0) -> (2,0) -> (2,1) -> (2,2) -> (1,2) -> (0,2)
	// moves: 6 expanded: 7
}
