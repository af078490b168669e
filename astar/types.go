package astar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridnav/gridgraph"
)

// Sentinel errors returned by Search.
var (
	// ErrNilTerrain indicates that a nil terrain was passed to Search.
	ErrNilTerrain = errors.New("astar: terrain is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Options configures A*.
type Options struct {
	// TimeOffset is the absolute time at which the agent stands on start.
	TimeOffset int

	// OnExpand is called for every popped entry, stale ones included.
	// Returning an error aborts the search.
	OnExpand func(c gridgraph.Cell, cost, priority int64, stale bool) error

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns Options anchored at time 0 with a no-op hook.
func DefaultOptions() Options {
	return Options{
		TimeOffset: 0,
		OnExpand:   func(gridgraph.Cell, int64, int64, bool) error { return nil },
	}
}

// WithTimeOffset anchors the search at absolute time t.
//
//	t ≥ 0: the first move is checked against the schedule at t+1
//	t < 0: invalid option → ErrOptionViolation
func WithTimeOffset(t int) Option {
	return func(o *Options) {
		if t < 0 {
			o.err = fmt.Errorf("%w: TimeOffset cannot be negative (%d)", ErrOptionViolation, t)
			return
		}
		o.TimeOffset = t
	}
}

// WithOnExpand registers a callback to run on every pop.
func WithOnExpand(fn func(c gridgraph.Cell, cost, priority int64, stale bool) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Result holds the outcome of a search.
type Result struct {
	Path     gridgraph.Path // start → goal; nil if not found
	Cost     int64          // total terrain cost of Path; 0 if not found
	Expanded int            // frontier pops, stale entries included
	Found    bool
}
