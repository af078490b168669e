// Command gridnav runs one path-planning algorithm on a scenario file and
// prints the path, its cost, the search effort and the map with the path drawn.
//
// Usage:
//
//	gridnav -scenario patrol.yaml -algo dynamic -lookahead 0
//	gridnav -scenario patrol.yaml -gen        # write an example scenario and exit
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridnav/astar"
	"github.com/katalvlaran/gridnav/bfs"
	"github.com/katalvlaran/gridnav/gridgraph"
	"github.com/katalvlaran/gridnav/metrics"
	"github.com/katalvlaran/gridnav/obstacle"
	"github.com/katalvlaran/gridnav/replan"
	"github.com/katalvlaran/gridnav/scenario"
	"github.com/katalvlaran/gridnav/ucs"
)

// Algorithm names accepted by -algo.
const (
	algoBFS     = "bfs"
	algoUCS     = "ucs"
	algoAStar   = "astar"
	algoDynamic = "dynamic"
)

var errStepBudget = errors.New("step budget exhausted")

type cliArgs struct {
	scenarioFile string
	algorithm    string
	lookahead    int
	maxSteps     int
	gen          bool
	metricsOut   string
	verbose      bool
}

func parseArgs(args []string, stderr io.Writer) (cliArgs, error) {
	fs := flag.NewFlagSet("gridnav", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var a cliArgs
	fs.StringVar(&a.scenarioFile, "scenario", "scenario.yaml", "Scenario file to run; use -gen to produce an example")
	fs.StringVar(&a.algorithm, "algo", algoAStar, "Algorithm: bfs, ucs, astar or dynamic")
	fs.IntVar(&a.lookahead, "lookahead", -1, "Steps of the obstacle schedule the dynamic planner can foresee; -1 sees everything")
	fs.IntVar(&a.maxSteps, "max-steps", 10000, "Abort a dynamic run after this many decisions; 0 means no limit")
	fs.BoolVar(&a.gen, "gen", false, "Write an example scenario to -scenario, then exit")
	fs.StringVar(&a.metricsOut, "metrics-out", "", "Write Prometheus metrics in text format to this file")
	fs.BoolVar(&a.verbose, "v", false, "Log every replanning decision")
	if err := fs.Parse(args); err != nil {
		return a, err
	}

	switch a.algorithm {
	case algoBFS, algoUCS, algoAStar, algoDynamic:
	default:
		return a, fmt.Errorf("unknown algorithm %q", a.algorithm)
	}
	return a, nil
}

// outcome is what every algorithm reports back to the driver.
type outcome struct {
	path     gridgraph.Path
	cost     int64
	expanded int
	found    bool
	label    string // metrics outcome label
	steps    []replan.Step
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "gridnav:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	a, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})).
		With(slog.String("run_id", uuid.New().String()))

	if a.gen {
		return genScenario(a.scenarioFile)
	}

	sc, err := scenario.Load(a.scenarioFile)
	if err != nil {
		return err
	}
	w, err := sc.Build()
	if err != nil {
		return fmt.Errorf("%s: %w", a.scenarioFile, err)
	}

	fmt.Fprintf(stdout, "scenario: %s\n", a.scenarioFile)
	fmt.Fprintf(stdout, "start: %v\n", w.Start)
	fmt.Fprintf(stdout, "goal: %v\n", w.Goal)
	fmt.Fprintf(stdout, "algo: %s\n", strings.ToUpper(a.algorithm))
	fmt.Fprintln(stdout, strings.Repeat("*", 20))

	if !w.Grid.Reachable(w.Start, w.Goal) {
		logger.Warn("goal statically unreachable",
			slog.String("start", w.Start.String()),
			slog.String("goal", w.Goal.String()),
		)
	}

	began := time.Now()
	out, searchErr := solve(w, a, logger)
	elapsed := time.Since(began)
	if searchErr != nil && out.label == "" {
		return searchErr
	}
	logger.Info("search finished",
		slog.String("algorithm", a.algorithm),
		slog.String("outcome", out.label),
		slog.Int("expanded", out.expanded),
		slog.Duration("elapsed", elapsed),
	)

	fmt.Fprintln(stdout, "results:")
	if searchErr != nil {
		fmt.Fprintf(stdout, "run aborted: %v\n", searchErr)
		fmt.Fprintf(stdout, "cost so far: %d\n", out.cost)
		fmt.Fprintf(stdout, "nodes expanded: %d\n", out.expanded)
		fmt.Fprintf(stdout, "time taken: %.6f seconds\n", elapsed.Seconds())
	} else if out.found {
		fmt.Fprintf(stdout, "path: %v\n", out.path)
		fmt.Fprintf(stdout, "cost: %d\n", out.cost)
		fmt.Fprintf(stdout, "nodes expanded: %d\n", out.expanded)
		fmt.Fprintf(stdout, "time taken: %.6f seconds\n", elapsed.Seconds())
		fmt.Fprintln(stdout, "\npath on grid:")
		fmt.Fprint(stdout, w.Grid.Render(out.path, w.Start, w.Goal))
	} else {
		fmt.Fprintln(stdout, "no path found")
		fmt.Fprintf(stdout, "nodes expanded: %d\n", out.expanded)
		fmt.Fprintf(stdout, "time taken: %.6f seconds\n", elapsed.Seconds())
	}
	fmt.Fprintln(stdout, strings.Repeat("=", 50))

	if a.metricsOut != "" {
		rec := metrics.New()
		rec.ObserveSearch(a.algorithm, out.label, out.expanded, elapsed)
		rec.ObserveSteps(out.steps)
		if err := rec.WriteTextfile(a.metricsOut); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}
	return searchErr
}

// solve dispatches to the selected algorithm. When a dynamic run is aborted by
// its hook, the partial outcome is returned together with the error.
func solve(w *scenario.World, a cliArgs, logger *slog.Logger) (outcome, error) {
	switch a.algorithm {
	case algoBFS:
		res, err := bfs.Search(w.Grid, w.Start, w.Goal)
		if err != nil {
			return outcome{}, err
		}
		// BFS reports its cost in moves
		return outcome{
			path:     res.Path,
			cost:     int64(res.Path.Edges()),
			expanded: res.Expanded,
			found:    res.Found,
			label:    metrics.Outcome(res.Found),
		}, nil

	case algoUCS:
		res, err := ucs.Search(w.Grid, w.Start, w.Goal)
		if err != nil {
			return outcome{}, err
		}
		return outcome{res.Path, res.Cost, res.Expanded, res.Found, metrics.Outcome(res.Found), nil}, nil

	case algoAStar:
		res, err := astar.Search(w.Grid, w.Start, w.Goal, w.Schedule)
		if err != nil {
			return outcome{}, err
		}
		return outcome{res.Path, res.Cost, res.Expanded, res.Found, metrics.Outcome(res.Found), nil}, nil

	default:
		if !w.Dynamic {
			logger.Warn("map has no dynamic obstacles, still proceeding")
		}
		forecast := obstacle.Exact(w.Schedule)
		if a.lookahead >= 0 {
			forecast = obstacle.Horizon(w.Schedule, a.lookahead)
		}
		res, err := replan.Run(w.Grid, w.Start, w.Goal, w.Schedule,
			replan.WithForecast(forecast),
			replan.WithLogger(logger),
			replan.WithOnStep(budget(a.maxSteps)),
		)
		if res == nil {
			return outcome{}, err
		}
		return outcome{
			path:     res.Path,
			cost:     res.Cost,
			expanded: res.Expanded,
			found:    res.Found,
			label:    metrics.ReplanOutcome(res.Outcome),
			steps:    res.Steps,
		}, err
	}
}

// budget returns an OnStep hook that fails on decision limit+1, so a run that
// reaches the goal in exactly limit decisions completes.
func budget(limit int) func(replan.Step) error {
	if limit <= 0 {
		return nil
	}
	n := 0
	return func(replan.Step) error {
		n++
		if n > limit {
			return fmt.Errorf("%w after %d decisions", errStepBudget, n)
		}
		return nil
	}
}

func genScenario(filename string) error {
	out, err := scenario.Marshal(scenario.Example())
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, out, 0o644); err != nil {
		return fmt.Errorf("os.WriteFile(%q): %w", filename, err)
	}
	return nil
}
