// Package frontier holds the priority frontier shared by the ucs and astar
// searches.
//
// What:
//
//   - Tree is an arena of parent-pointer nodes. Every frontier entry owns one
//     node, so a path is stored once per entry as a single (cell, parent) pair
//     instead of a full copy, and materialized only for the winning entry.
//   - Queue is a binary min-heap of Entry values ordered lexicographically by
//     (Priority, Cost, Cell, path). The path component compares the cell
//     sequences from the start, shorter prefix first, which makes pop order a
//     total order and therefore reproducible.
//
// Complexity:
//
//   - Push/Pop: O(log N). Path comparison, only reached when priority, cost and
//     cell all tie, costs O(depth).
//   - Memory: O(E) entries and nodes under lazy deletion.
package frontier
