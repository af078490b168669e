// Package ucs defines the result type and configuration options
// for uniform-cost search.
package ucs

import (
	"errors"

	"github.com/katalvlaran/gridnav/gridgraph"
)

// Sentinel errors returned by the uniform-cost search implementation.
var (
	// ErrNilTerrain indicates that a nil terrain was passed to Search.
	ErrNilTerrain = errors.New("ucs: terrain is nil")
)

// Options configures the behavior of the search.
type Options struct {
	// OnExpand is called for every popped entry, stale ones included, after it
	// has been counted. stale reports whether the cell was already finalized.
	// Returning an error aborts the search.
	OnExpand func(c gridgraph.Cell, cost int64, stale bool) error
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithOnExpand registers a callback to run on every pop.
func WithOnExpand(fn func(c gridgraph.Cell, cost int64, stale bool) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// DefaultOptions returns Options with a no-op OnExpand hook.
func DefaultOptions() Options {
	return Options{
		OnExpand: func(gridgraph.Cell, int64, bool) error { return nil },
	}
}

// Result holds the outcome of a search.
type Result struct {
	Path     gridgraph.Path // start → goal; nil if not found
	Cost     int64          // total terrain cost of Path; 0 if not found
	Expanded int            // frontier pops, stale entries included
	Found    bool
}
