// Package ucs implements uniform-cost search from a start cell to a goal cell
// on a gridgraph.Terrain with positive terrain costs.
//
// Uniform-cost search is Dijkstra's algorithm stopped at the goal. Entering a
// cell costs gridgraph.Terrain.TerrainCost of that cell; the start costs nothing.
//
// Algorithm:
//
//  1. Seed the frontier with (0, start, [start]).
//  2. Pop the minimum entry by (cost, cell, path) and count it as an expansion.
//  3. If its cell is already visited, the entry is stale: skip it.
//  4. Otherwise mark the cell visited; if it is the goal, return its path and cost.
//  5. Push every valid, unvisited neighbor with cost + TerrainCost(neighbor).
//
// Notes on implementation choices:
//
//   - We use a “lazy” decrease-key strategy: duplicates go on the heap and
//     stale entries are ignored when popped. Stale pops are counted in
//     Result.Expanded.
//   - Paths live in a frontier.Tree; each entry stores one node, and the
//     winning path is materialized once.
//   - Ties are broken by cell order, then by path order, so results do not
//     depend on heap internals.
//
// Complexity:
//
//   - Time:  O(E log E) with E ≤ 4·N pushes for N cells.
//   - Space: O(E) for heap entries and path nodes.
//
// Preconditions (not re-validated):
//
//	start is a valid cell and every passable cell costs at least 1.
package ucs
