// Package bfs provides tunable options and error definitions
// for breadth‐first search over a gridgraph.Terrain.
package bfs

import (
	"errors"

	"github.com/katalvlaran/gridnav/gridgraph"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilTerrain is returned if a nil terrain is passed.
	ErrNilTerrain = errors.New("bfs: terrain is nil")
)

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds callbacks to customize BFS execution.
type Options struct {
	// OnEnqueue is called right after a cell is enqueued,
	// with its distance in moves from the start.
	OnEnqueue func(c gridgraph.Cell, depth int)

	// OnVisit is called when a cell is dequeued, after it has been counted.
	// If it returns an error, BFS aborts and propagates that error.
	OnVisit func(c gridgraph.Cell, depth int) error
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(gridgraph.Cell, int) {},
		OnVisit:   func(gridgraph.Cell, int) error { return nil },
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(c gridgraph.Cell, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on every dequeue; returning an
// error from this callback stops the BFS.
func WithOnVisit(fn func(c gridgraph.Cell, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a BFS search.
type Result struct {
	Path     gridgraph.Path // start → goal; nil if not found
	Expanded int            // cells dequeued, goal included
	Found    bool
	Order    []gridgraph.Cell // dequeue order
}
