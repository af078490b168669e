// Package gridgraph treats a 2D grid of terrain costs as a graph an agent
// can walk on.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid; each value is the cost of
//     entering that cell.
//   - Cells whose value is below LandThreshold are static obstacles.
//   - Neighbors enumerates grid-adjacent cells in a fixed order, so every
//     search built on top of it breaks ties reproducibly.
//   - ConnectedComponents and Reachable answer static reachability questions.
//   - Render draws the grid and a path as ASCII.
//
// Why:
//
//   - Searches (bfs, ucs, astar, replan) only need the Terrain interface:
//     "is this a legal position?", "what does entering it cost?" and
//     "what is next to it?".
//
// Complexity:
//
//   - IsValidMove, TerrainCost, Neighbors: O(1).
//   - ConnectedComponents: O(W×H), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered passable (default 1).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a cell lies outside the grid.
//
// Preconditions: terrain costs of passable cells must be >= 1 for the
// Manhattan heuristic used by astar to stay admissible. The default
// LandThreshold of 1 guarantees this.
package gridgraph
