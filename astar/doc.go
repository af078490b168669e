// Package astar implements A* search on a gridgraph.Terrain whose cells may be
// blocked at certain times by moving obstacles (obstacle.Schedule).
//
// The frontier discipline is the one of package ucs: lazy deletion, stale pops
// counted as expansions, cells finalized on first pop. Only the ordering key
// and the neighbor filter differ:
//
//   - Priority: cost + Manhattan(cell, goal), then cost, then cell, then path.
//   - Time: a neighbor reached from a path of n cells is entered at time
//     (n-1) + offset + 1. A neighbor is eligible only if the schedule reports
//     it safe at that time.
//
// WithTimeOffset anchors the plan at an absolute time, which is how package
// replan re-plans mid-simulation.
//
// Admissibility: Manhattan distance never overestimates the remaining cost on
// a 4-connected grid whose passable cells all cost at least 1. That is a
// precondition on the terrain, not checked here.
//
// The visited set is keyed by cell, not by (cell, time): once a cell is
// finalized, later arrivals at it are discarded even if they would enter it at
// a safe time. Waiting in place is not a move A* considers; package replan
// decides when to wait.
package astar
