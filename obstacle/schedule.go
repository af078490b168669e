package obstacle

import (
	"github.com/katalvlaran/gridnav/gridgraph"
)

// Schedule reports whether a cell is free of moving obstacles at time t.
type Schedule interface {
	IsSafe(c gridgraph.Cell, t int) bool
}

// None is a Schedule without moving obstacles.
type None struct{}

// IsSafe always reports true.
func (None) IsSafe(gridgraph.Cell, int) bool { return true }

// OrNone returns s, or None when s is nil.
func OrNone(s Schedule) Schedule {
	if s == nil {
		return None{}
	}
	return s
}

// key identifies one occupied cell at one instant.
type key struct {
	cell gridgraph.Cell
	t    int
}

// Table is an explicit occupancy table. The zero value is empty and ready to use.
type Table struct {
	occupied map[key]struct{}
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{occupied: make(map[key]struct{})}
}

// Occupy marks c as occupied at each of the given times.
func (tb *Table) Occupy(c gridgraph.Cell, times ...int) *Table {
	if tb.occupied == nil {
		tb.occupied = make(map[key]struct{})
	}
	for _, t := range times {
		tb.occupied[key{cell: c, t: t}] = struct{}{}
	}
	return tb
}

// Len returns the number of occupied (cell, time) pairs.
func (tb *Table) Len() int { return len(tb.occupied) }

// IsSafe reports whether c is not occupied at t.
func (tb *Table) IsSafe(c gridgraph.Cell, t int) bool {
	_, busy := tb.occupied[key{cell: c, t: t}]
	return !busy
}

// Mover is an obstacle that occupies Route[t] at time t.
// Past the end of the route it either starts over (Loop) or stays on the last cell.
type Mover struct {
	Route []gridgraph.Cell
	Loop  bool
}

// At returns the mover's cell at time t and false if the route is empty.
func (m Mover) At(t int) (gridgraph.Cell, bool) {
	n := len(m.Route)
	if n == 0 || t < 0 {
		return gridgraph.Cell{}, false
	}
	if t >= n {
		if m.Loop {
			t %= n
		} else {
			t = n - 1
		}
	}
	return m.Route[t], true
}

// Movers is a Schedule made of independent movers.
type Movers []Mover

// IsSafe reports whether no mover stands on c at t.
func (ms Movers) IsSafe(c gridgraph.Cell, t int) bool {
	for _, m := range ms {
		if at, ok := m.At(t); ok && at == c {
			return false
		}
	}
	return true
}

// Union is a Schedule that is safe only where every member is safe.
type Union []Schedule

// IsSafe reports whether every non-nil member reports c safe at t.
func (u Union) IsSafe(c gridgraph.Cell, t int) bool {
	for _, s := range u {
		if s != nil && !s.IsSafe(c, t) {
			return false
		}
	}
	return true
}
