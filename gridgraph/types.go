// Package gridgraph defines core types and options
// for the gridgraph package of github.com/katalvlaran/gridnav.
package gridgraph

import (
	"fmt"
	"strings"
)

// Cell is a discrete grid position. Cells compare by Row, then Col.
type Cell struct {
	Row, Col int
}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Compare returns -1, 0 or +1 ordering c before, equal to, or after o.
func (c Cell) Compare(o Cell) int {
	switch {
	case c.Row < o.Row:
		return -1
	case c.Row > o.Row:
		return 1
	case c.Col < o.Col:
		return -1
	case c.Col > o.Col:
		return 1
	}
	return 0
}

// Path is an ordered sequence of cells from a start to the cell reached so far.
type Path []Cell

// Edges returns the number of moves in p (0 for an empty path).
func (p Path) Edges() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Cost sums the terrain cost of every cell entered along p.
// The first cell is where the agent stands and costs nothing.
func (p Path) Cost(t Terrain) int64 {
	var total int64
	for i := 1; i < len(p); i++ {
		total += t.TerrainCost(p[i])
	}
	return total
}

// String joins the cells with " -> ".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = c.String()
	}
	return strings.Join(parts, " -> ")
}

// Terrain is everything a search needs from a grid.
type Terrain interface {
	// IsValidMove reports whether c is in bounds and not a static obstacle.
	IsValidMove(c Cell) bool
	// TerrainCost is the cost of entering c. Only meaningful for valid cells.
	TerrainCost(c Cell) int64
	// Neighbors lists the grid-adjacent cells of c in a fixed order,
	// without filtering for validity.
	Neighbors(c Cell) []Cell
}

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// LandThreshold specifies the minimum cell value considered passable.
	LandThreshold int
}

// DefaultGridOptions returns a GridOptions with default settings:
// LandThreshold=1 (values ≥1 are passable).
func DefaultGridOptions() GridOptions {
	return GridOptions{
		LandThreshold: 1,
	}
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built.
// Rows and Cols define dimensions; CellValues[row][col] holds the original input value.
// LandThreshold is set from GridOptions during construction.
// Moves are 4-directional only; the Manhattan heuristic used by astar relies on it.
type GridGraph struct {
	Rows, Cols    int
	CellValues    [][]int
	LandThreshold int
}
