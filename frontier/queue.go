package frontier

import (
	"container/heap"

	"github.com/katalvlaran/gridnav/gridgraph"
)

// Entry is one candidate path on the frontier.
type Entry struct {
	Priority int64          // ordering key: cost for UCS, cost+h for A*
	Cost     int64          // accumulated cost from the start
	Cell     gridgraph.Cell // last cell of the path
	Node     int            // path node in the owning Tree
}

// Queue is a min-heap of Entry ordered by (Priority, Cost, Cell, path).
// We use the “lazy-decrease-key” approach: a better path to a cell is pushed
// as a new entry and stale entries are skipped by the caller once popped.
type Queue struct {
	tree  *Tree
	items entryHeap
}

// NewQueue returns an empty queue whose path tie-break reads from tree.
func NewQueue(tree *Tree, capacity int) *Queue {
	q := &Queue{tree: tree}
	q.items = entryHeap{q: q, entries: make([]Entry, 0, capacity)}
	return q
}

// Len returns the number of entries, stale ones included.
func (q *Queue) Len() int { return len(q.items.entries) }

// Push adds e.
func (q *Queue) Push(e Entry) { heap.Push(&q.items, e) }

// Pop removes and returns the minimum entry. The queue must not be empty.
func (q *Queue) Pop() Entry { return heap.Pop(&q.items).(Entry) }

// Less reports whether a orders before b.
func (q *Queue) Less(a, b Entry) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	if a.Cost != b.Cost {
		return a.Cost < b.Cost
	}
	if c := a.Cell.Compare(b.Cell); c != 0 {
		return c < 0
	}
	return q.tree.Compare(a.Node, b.Node) < 0
}

// entryHeap adapts Queue to heap.Interface.
type entryHeap struct {
	q       *Queue
	entries []Entry
}

func (h entryHeap) Len() int           { return len(h.entries) }
func (h entryHeap) Less(i, j int) bool { return h.q.Less(h.entries[i], h.entries[j]) }
func (h entryHeap) Swap(i, j int)      { h.entries[i], h.entries[j] = h.entries[j], h.entries[i] }

func (h *entryHeap) Push(x interface{}) { h.entries = append(h.entries, x.(Entry)) }

func (h *entryHeap) Pop() interface{} {
	old := h.entries
	n := len(old)
	item := old[n-1]
	h.entries = old[:n-1]

	return item
}
