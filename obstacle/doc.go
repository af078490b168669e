// Package obstacle describes when grid cells are occupied by moving obstacles.
//
// A Schedule answers one question: is cell c free of moving obstacles at the
// discrete time index t (t ≥ 0)? Searches only ever read a Schedule; nothing in
// this module mutates one while a search runs.
//
// Implementations:
//
//   - None:   no moving obstacles at all. A nil Schedule means the same.
//   - Table:  an explicit set of occupied (cell, time) pairs.
//   - Movers: obstacles that follow routes, one cell per time step,
//     either looping or parking on their last cell.
//
// Forecasts:
//
//	A Forecast is what a planner believes at a given "now". Exact hands back
//	the true schedule; Horizon reveals occupancy only up to now+k steps ahead,
//	so a replanner can be surprised by an obstacle at commit time.
package obstacle
