// Package gridnav plans paths for a single agent on a 2D terrain grid.
//
// The module is split into small packages, leaves first:
//
//	gridgraph/   grid model: cells, terrain costs, static walls, neighbours, rendering
//	obstacle/    schedules of moving obstacles and planner forecasts
//	frontier/    parent-pointer path tree and the ordered priority queue
//	bfs/         breadth-first search, fewest moves
//	ucs/         uniform-cost search, cheapest path
//	astar/       A* with Manhattan heuristic and time-indexed obstacle checks
//	replan/      closed-loop replanning: plan, commit one step, repeat
//	scenario/    YAML scenario files
//	metrics/     Prometheus collectors
//	cmd/gridnav  command line driver
//
// Quick example:
//
//	g, _ := gridgraph.NewGridGraph([][]int{
//		{1, 1, 1},
//		{1, 9, 1},
//		{1, 1, 1},
//	}, gridgraph.DefaultGridOptions())
//	res, _ := astar.Search(g, gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 2, Col: 2}, nil)
//	fmt.Println(res.Path, res.Cost)
//
// "No path" is always a result (Found == false), never an error. Errors are
// reserved for nil inputs, invalid options, failing hooks and malformed
// scenario files.
package gridnav
