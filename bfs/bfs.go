package bfs

import (
	"fmt"

	"github.com/katalvlaran/gridnav/gridgraph"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	cell  gridgraph.Cell
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	terrain gridgraph.Terrain
	opts    Options
	goal    gridgraph.Cell
	queue   []queueItem
	visited map[gridgraph.Cell]bool
	parent  map[gridgraph.Cell]gridgraph.Cell
	res     *Result
}

// Search runs breadth-first search on g from start until goal is dequeued
// or the queue is exhausted. An unreachable goal is not an error: the result
// has Found=false and a nil Path.
// Returns ErrNilTerrain for a nil terrain or any user-supplied hook error.
func Search(g gridgraph.Terrain, start, goal gridgraph.Cell, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilTerrain
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w := &walker{
		terrain: g,
		opts:    o,
		goal:    goal,
		visited: make(map[gridgraph.Cell]bool),
		parent:  make(map[gridgraph.Cell]gridgraph.Cell),
		res:     &Result{},
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(start, 0)
	return w.res, w.loop()
}

// enqueue marks c visited at depth d, adds it to the queue and calls OnEnqueue.
func (w *walker) enqueue(c gridgraph.Cell, d int) {
	w.visited[c] = true
	w.queue = append(w.queue, queueItem{cell: c, depth: d})
	w.opts.OnEnqueue(c, d)
}

// loop processes the queue until the goal is dequeued, the queue empties,
// or a hook fails.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Expanded++
		w.res.Order = append(w.res.Order, item.cell)
		if err := w.opts.OnVisit(item.cell, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.cell, err)
		}

		if item.cell == w.goal {
			w.res.Path = w.pathTo(item.cell)
			w.res.Found = true
			return nil
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// enqueueNeighbors enqueues each valid, unseen neighbor of item.
func (w *walker) enqueueNeighbors(item queueItem) {
	for _, nbr := range w.terrain.Neighbors(item.cell) {
		if !w.terrain.IsValidMove(nbr) || w.visited[nbr] {
			continue
		}
		w.parent[nbr] = item.cell
		w.enqueue(nbr, item.depth+1)
	}
}

// pathTo reconstructs the path from the start cell to dest by walking parent links.
func (w *walker) pathTo(dest gridgraph.Cell) gridgraph.Path {
	path := gridgraph.Path{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := w.parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
