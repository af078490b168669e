package ucs

import (
	"fmt"

	"github.com/katalvlaran/gridnav/frontier"
	"github.com/katalvlaran/gridnav/gridgraph"
)

// Search computes a minimum-cost path from start to goal on g.
// An unreachable goal is reported through Result.Found, never as an error.
//
// Returns:
//
//   - the Result (also when a hook aborts, reflecting the work done so far).
//   - err: ErrNilTerrain, or a wrapped hook error.
func Search(g gridgraph.Terrain, start, goal gridgraph.Cell, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilTerrain
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	tree := frontier.NewTree(64)
	r := &runner{
		g:       g,
		options: cfg,
		goal:    goal,
		tree:    tree,
		pq:      frontier.NewQueue(tree, 64),
		visited: make(map[gridgraph.Cell]bool),
		res:     &Result{},
	}
	r.pq.Push(frontier.Entry{Priority: 0, Cost: 0, Cell: start, Node: tree.Root(start)})

	return r.res, r.process()
}

// runner holds the mutable state for a single search.
type runner struct {
	g       gridgraph.Terrain
	options Options
	goal    gridgraph.Cell
	tree    *frontier.Tree
	pq      *frontier.Queue
	visited map[gridgraph.Cell]bool // cells whose cost is final
	res     *Result
}

// process is the core loop: pop, skip stale, finalize, stop at goal, relax.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := r.pq.Pop()
		r.res.Expanded++

		stale := r.visited[item.Cell]
		if err := r.options.OnExpand(item.Cell, item.Cost, stale); err != nil {
			return fmt.Errorf("ucs: OnExpand error at %v: %w", item.Cell, err)
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

// relax pushes an entry for every valid, unvisited neighbor of item.
func (r *runner) relax(item frontier.Entry) {
	for _, v := range r.g.Neighbors(item.Cell) {
		if !r.g.IsValidMove(v) || r.visited[v] {
			continue
		}
		cost := item.Cost + r.g.TerrainCost(v)
		r.pq.Push(frontier.Entry{
			Priority: cost,
			Cost:     cost,
			Cell:     v,
			Node:     r.tree.Extend(item.Node, v),
		})
	}
}
