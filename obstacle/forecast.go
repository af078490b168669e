package obstacle

import "github.com/katalvlaran/gridnav/gridgraph"

// Forecast returns the schedule a planner should believe at time now.
type Forecast func(now int) Schedule

// Exact forecasts the true schedule at every instant.
func Exact(s Schedule) Forecast {
	s = OrNone(s)
	return func(int) Schedule { return s }
}

// Horizon forecasts s only up to k steps past now; later instants look free.
// With k = 0 the planner is blind to every future step, including the next one.
// A negative k is treated as 0.
func Horizon(s Schedule, k int) Forecast {
	s = OrNone(s)
	if k < 0 {
		k = 0
	}
	return func(now int) Schedule {
		return window{inner: s, until: now + k}
	}
}

// window hides occupancy after until.
type window struct {
	inner Schedule
	until int
}

func (w window) IsSafe(c gridgraph.Cell, t int) bool {
	if t > w.until {
		return true
	}
	return w.inner.IsSafe(c, t)
}
