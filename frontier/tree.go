package frontier

import (
	"slices"

	"github.com/katalvlaran/gridnav/gridgraph"
)

// NoParent marks a root node.
const NoParent = -1

// node is one step of a path: the cell reached and the node it was reached from.
type node struct {
	cell   gridgraph.Cell
	parent int
	depth  int
}

// Tree is an append-only arena of path nodes.
type Tree struct {
	nodes []node
}

// NewTree returns a Tree with room for capacity nodes.
func NewTree(capacity int) *Tree {
	return &Tree{nodes: make([]node, 0, capacity)}
}

// Root adds a path consisting of c alone and returns its node id.
func (t *Tree) Root(c gridgraph.Cell) int {
	t.nodes = append(t.nodes, node{cell: c, parent: NoParent})
	return len(t.nodes) - 1
}

// Extend adds the path parent+[c] and returns its node id.
func (t *Tree) Extend(parent int, c gridgraph.Cell) int {
	t.nodes = append(t.nodes, node{cell: c, parent: parent, depth: t.nodes[parent].depth + 1})
	return len(t.nodes) - 1
}

// Cell returns the last cell of the path ending at id.
func (t *Tree) Cell(id int) gridgraph.Cell { return t.nodes[id].cell }

// Depth returns the number of moves on the path ending at id (len(path)-1).
func (t *Tree) Depth(id int) int { return t.nodes[id].depth }

// Len returns the number of nodes stored.
func (t *Tree) Len() int { return len(t.nodes) }

// Path materializes the cells from the root to id.
func (t *Tree) Path(id int) gridgraph.Path {
	path := make(gridgraph.Path, t.nodes[id].depth+1)
	for i := len(path) - 1; id != NoParent; i, id = i-1, t.nodes[id].parent {
		path[i] = t.nodes[id].cell
	}
	return path
}

// Compare orders the paths ending at a and b element-wise from the root,
// a strict prefix ordering first.
func (t *Tree) Compare(a, b int) int {
	if a == b {
		return 0
	}
	return slices.CompareFunc(t.Path(a), t.Path(b), gridgraph.Cell.Compare)
}
