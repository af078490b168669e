// Package replan moves a single agent across a grid with moving obstacles by
// re-planning with A* at every time step.
//
// Each iteration of Run is one discrete time step:
//
//  1. Plan: A* from the current cell to the goal, anchored at the current
//     step (astar.WithTimeOffset). Its expansions are added to the total.
//  2. No plan: the agent is stuck for good. Run returns a nil path, the
//     cost spent so far and the expansions.
//  3. Commit check: the first move of the plan is re-validated against the
//     schedule at step+1. If the cell is busy the agent waits one step.
//  4. Otherwise the agent moves, paying the terrain cost of the new cell.
//
// Only one move of every plan is ever executed, so the agent reacts to an
// obstacle appearing in the very next cell.
//
// The planner sees the schedule through a Forecast (WithForecast). By default
// it sees the exact schedule, in which case A* already refuses a busy first
// move and waiting never happens; a short obstacle.Horizon makes the planner
// optimistic and lets the commit check catch what it could not foresee.
//
// Every decision is reported as a Step: appended to Result.Steps, passed to
// the OnStep hook (whose error aborts the run) and logged at debug or info
// level on the configured *slog.Logger.
//
// Run does not bound the number of steps. A caller that wants a budget
// returns an error from OnStep.
package replan
