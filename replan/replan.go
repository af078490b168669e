package replan

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/gridnav/astar"
	"github.com/katalvlaran/gridnav/gridgraph"
	"github.com/katalvlaran/gridnav/obstacle"
)

// Run walks an agent from start to goal on g, re-planning every step against
// sched. A nil sched means no moving obstacles.
//
// A run that gets stuck is not an error: Result.Outcome is GaveUp and
// Result.Path is nil. Errors come only from a nil terrain or a failing hook;
// in the latter case the partial Result is returned alongside the error.
func Run(g gridgraph.Terrain, start, goal gridgraph.Cell, sched obstacle.Schedule, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilTerrain
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	sched = obstacle.OrNone(sched)
	if cfg.Forecast == nil {
		cfg.Forecast = obstacle.Exact(sched)
	}

	s := &sim{
		g:       g,
		goal:    goal,
		sched:   sched,
		options: cfg,
		log:     cfg.Logger.With(slog.String("component", "replan")),
		pos:     start,
		taken:   gridgraph.Path{start},
		res:     &Result{},
	}

	return s.res, s.loop()
}

// sim is the simulation state of one run.
type sim struct {
	g       gridgraph.Terrain
	goal    gridgraph.Cell
	sched   obstacle.Schedule
	options Options
	log     *slog.Logger

	pos   gridgraph.Cell
	taken gridgraph.Path
	cost  int64
	now   int

	res *Result
}

// loop runs plan/commit cycles until the goal is reached or no plan exists.
func (s *sim) loop() error {
	for s.pos != s.goal {
		plan, err := astar.Search(s.g, s.pos, s.goal, s.options.Forecast(s.now), astar.WithTimeOffset(s.now))
		if err != nil {
			return fmt.Errorf("replan: planning at t=%d: %w", s.now, err)
		}
		s.res.Expanded += plan.Expanded

		if !plan.Found {
			s.log.Warn("no path to goal, agent is stuck",
				slog.Int("t", s.now),
				slog.String("at", s.pos.String()),
			)
			s.res.Outcome = GaveUp
			s.res.Cost = s.cost
			return s.record(Step{Time: s.now, Kind: Stuck, From: s.pos, To: s.pos, Cost: s.cost, Expanded: plan.Expanded})
		}

		next := plan.Path[1]
		if !s.sched.IsSafe(next, s.now+1) {
			s.log.Info("obstacle ahead, waiting",
				slog.Int("t", s.now),
				slog.String("at", s.pos.String()),
				slog.String("blocked", next.String()),
			)
			step := Step{Time: s.now, Kind: Wait, From: s.pos, To: next, Cost: s.cost, Expanded: plan.Expanded}
			s.now++
			if err := s.record(step); err != nil {
				return err
			}
			continue
		}

		from := s.pos
		s.now++
		s.cost += s.g.TerrainCost(next)
		s.pos = next
		s.taken = append(s.taken, next)
		s.log.Debug("moved",
			slog.Int("t", s.now),
			slog.String("to", next.String()),
			slog.Int64("cost", s.cost),
		)
		if err := s.record(Step{Time: s.now - 1, Kind: Move, From: from, To: next, Cost: s.cost, Expanded: plan.Expanded}); err != nil {
			return err
		}
	}

	s.log.Info("goal reached",
		slog.Int("t", s.now),
		slog.Int64("cost", s.cost),
		slog.Int("expanded", s.res.Expanded),
	)
	s.res.Path = s.taken
	s.res.Cost = s.cost
	s.res.Found = true
	s.res.Outcome = Reached
	return nil
}

// record stores step and runs the hook. On a hook error the run is marked
// Aborted with the cost paid so far.
func (s *sim) record(step Step) error {
	s.res.Steps = append(s.res.Steps, step)
	if err := s.options.OnStep(step); err != nil {
		s.res.Outcome = Aborted
		s.res.Cost = s.cost
		return fmt.Errorf("replan: OnStep error at t=%d: %w", step.Time, err)
	}
	return nil
}
