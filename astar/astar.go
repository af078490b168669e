package astar

import (
	"fmt"

	"github.com/katalvlaran/gridnav/frontier"
	"github.com/katalvlaran/gridnav/gridgraph"
	"github.com/katalvlaran/gridnav/obstacle"
)

// Search computes a minimum-cost path from start to goal on g that avoids
// every cell sched reports unsafe at the time it would be entered.
// A nil sched means no moving obstacles. An unreachable goal is reported
// through Result.Found, never as an error.
//
// Returns ErrNilTerrain, ErrOptionViolation, or a wrapped hook error.
func Search(g gridgraph.Terrain, start, goal gridgraph.Cell, sched obstacle.Schedule, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilTerrain
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	tree := frontier.NewTree(64)
	r := &runner{
		g:       g,
		sched:   obstacle.OrNone(sched),
		options: cfg,
		goal:    goal,
		tree:    tree,
		pq:      frontier.NewQueue(tree, 64),
		visited: make(map[gridgraph.Cell]bool),
		res:     &Result{},
	}
	r.pq.Push(frontier.Entry{
		Priority: Manhattan(start, goal),
		Cost:     0,
		Cell:     start,
		Node:     tree.Root(start),
	})

	return r.res, r.process()
}

// runner holds the mutable state for a single search.
type runner struct {
	g       gridgraph.Terrain
	sched   obstacle.Schedule
	options Options
	goal    gridgraph.Cell
	tree    *frontier.Tree
	pq      *frontier.Queue
	visited map[gridgraph.Cell]bool
	res     *Result
}

// process pops entries until the goal is finalized or the frontier is empty.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := r.pq.Pop()
		r.res.Expanded++

		stale := r.visited[item.Cell]
		if err := r.options.OnExpand(item.Cell, item.Cost, item.Priority, stale); err != nil {
			return fmt.Errorf("astar: OnExpand error at %v: %w", item.Cell, err)
		}
		if stale {
			continue
		}
		r.visited[item.Cell] = true

		if item.Cell == r.goal {
			r.res.Path = r.tree.Path(item.Node)
			r.res.Cost = item.Cost
			r.res.Found = true
			return nil
		}
		r.relax(item)
	}

	return nil
}

// relax pushes every valid, unvisited neighbor that is safe at the time the
// agent would enter it.
func (r *runner) relax(item frontier.Entry) {
	// time at which the agent stands on item.Cell
	now := r.tree.Depth(item.Node) + r.options.TimeOffset
	for _, v := range r.g.Neighbors(item.Cell) {
		if !r.g.IsValidMove(v) || r.visited[v] || !r.sched.IsSafe(v, now+1) {
			continue
		}
		cost := item.Cost + r.g.TerrainCost(v)
		r.pq.Push(frontier.Entry{
			Priority: cost + Manhattan(v, r.goal),
			Cost:     cost,
			Cell:     v,
			Node:     r.tree.Extend(item.Node, v),
		})
	}
}
