// Package bfs provides breadth-first search from a start cell to a goal cell
// on a gridgraph.Terrain, ignoring terrain costs.
//
// What
//
//   - Explores cells in non-decreasing distance (move count) from the start.
//   - A cell is marked visited the moment it is enqueued, so no cell is ever
//     queued twice.
//   - Every dequeue counts as one expansion, the goal's included.
//   - Returns a Result containing:
//   - Path: start → goal, or nil when the goal is unreachable
//   - Expanded: number of dequeued cells
//   - Found: whether Path is set
//   - Order: cells in dequeue order
//   - Supports functional hooks:
//   - OnEnqueue (after a cell is enqueued)
//   - OnVisit   (when a cell is dequeued; may abort with an error)
//
// Why
//
//   - Shortest paths in number of moves in O(W·H) time.
//   - On a grid of uniform cost 1 its path cost equals the uniform-cost result.
//
// Determinism
//
//	Neighbors are enqueued in the order gridgraph.Terrain.Neighbors reports
//	them, so the visit sequence and the returned path are fully reproducible.
//
// Complexity (N = number of cells)
//
//   - Time:   O(N·d)
//   - Memory: O(N)   (queue, visited set, parent links)
//
// Usage
//
//	res, err := bfs.Search(grid, start, goal)
//	if err != nil {
//	    // only ErrNilTerrain or a wrapped hook error
//	}
//	if !res.Found {
//	    // goal unreachable; res.Expanded still reports the work done
//	}
//
// Preconditions
//
//	start must be a valid cell of the terrain. This is not re-validated here.
package bfs
