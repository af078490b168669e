package replan

import (
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/gridnav/gridgraph"
	"github.com/katalvlaran/gridnav/obstacle"
)

// ErrNilTerrain is returned if a nil terrain is passed to Run.
var ErrNilTerrain = errors.New("replan: terrain is nil")

// Kind classifies one decision of the replanner.
type Kind int

const (
	// Move means the agent advanced to the next cell of its plan.
	Move Kind = iota
	// Wait means the next cell was busy at commit time and the agent stayed put.
	Wait
	// Stuck means A* found no plan from the current cell.
	Stuck
)

// String returns the lower-case name of k.
func (k Kind) String() string {
	switch k {
	case Move:
		return "move"
	case Wait:
		return "wait"
	case Stuck:
		return "stuck"
	default:
		return "unknown"
	}
}

// Outcome is the terminal state of a run.
type Outcome int

const (
	// Aborted means an OnStep hook stopped the run.
	Aborted Outcome = iota
	// Reached means the agent stands on the goal.
	Reached
	// GaveUp means A* found no plan and the agent stopped.
	GaveUp
)

func (o Outcome) String() string {
	switch o {
	case Reached:
		return "reached"
	case GaveUp:
		return "stuck"
	default:
		return "aborted"
	}
}

// Step records one decision.
type Step struct {
	Time     int            // time step at which the decision was taken
	Kind     Kind           // Move, Wait or Stuck
	From     gridgraph.Cell // agent position before the decision
	To       gridgraph.Cell // planned next cell; equals From when Stuck
	Cost     int64          // accumulated cost after the decision
	Expanded int            // nodes expanded by this step's plan
}

// Options configures Run.
type Options struct {
	// Forecast is the view of the schedule the planner gets at each step.
	// nil means the exact schedule.
	Forecast obstacle.Forecast

	// OnStep is called after every decision. Returning an error aborts Run.
	OnStep func(Step) error

	// Logger receives one record per decision.
	Logger *slog.Logger
}

// Option represents a functional option for configuring Run.
type Option func(*Options)

// DefaultOptions returns Options with the exact forecast, a no-op hook and a
// logger that discards everything.
func DefaultOptions() Options {
	return Options{
		OnStep: func(Step) error { return nil },
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithForecast sets the planning view of the schedule.
func WithForecast(f obstacle.Forecast) Option {
	return func(o *Options) {
		o.Forecast = f
	}
}

// WithOnStep registers a callback to run after every decision.
func WithOnStep(fn func(Step) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithLogger routes decision records to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result holds the outcome of a run.
type Result struct {
	Path     gridgraph.Path // cells actually occupied, waits excluded; nil unless Reached
	Cost     int64          // terrain cost paid so far
	Expanded int            // expansions summed over every plan
	Found    bool           // Outcome == Reached
	Outcome  Outcome
	Steps    []Step
}
