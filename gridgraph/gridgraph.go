package gridgraph

import "fmt"

// offsets in the order Neighbors reports them: up, down, left, right.
var offsets = [4]Cell{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]int, w)
		copy(cells[r], values[r])
	}

	return &GridGraph{
		Rows:          h,
		Cols:          w,
		CellValues:    cells,
		LandThreshold: opts.LandThreshold,
	}, nil
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < gg.Rows && c.Col >= 0 && c.Col < gg.Cols
}

// IsObstacle reports whether an in-bounds cell is a static obstacle.
func (gg *GridGraph) IsObstacle(c Cell) bool {
	return gg.CellValues[c.Row][c.Col] < gg.LandThreshold
}

// IsValidMove reports whether c is in bounds and passable.
// Complexity: O(1).
func (gg *GridGraph) IsValidMove(c Cell) bool {
	return gg.InBounds(c) && !gg.IsObstacle(c)
}

// TerrainCost returns the cost of entering c.
// The caller must ensure c is in bounds.
func (gg *GridGraph) TerrainCost(c Cell) int64 {
	return int64(gg.CellValues[c.Row][c.Col])
}

// Neighbors returns the four cells orthogonally adjacent to c, in a fixed order,
// including out-of-bounds and obstacle cells. Filtering is left to the caller
// through IsValidMove, mirroring how a search checks each candidate move.
// Complexity: O(d).
func (gg *GridGraph) Neighbors(c Cell) []Cell {
	out := make([]Cell, len(offsets))
	for i, d := range offsets {
		out[i] = Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
	}
	return out
}

// Check returns ErrOutOfBounds, wrapped with c and the grid size, if c lies
// outside the grid.
func (gg *GridGraph) Check(c Cell) error {
	if !gg.InBounds(c) {
		return fmt.Errorf("%w: %v not in %dx%d grid", ErrOutOfBounds, c, gg.Rows, gg.Cols)
	}
	return nil
}

// Cells returns every cell in row-major order.
func (gg *GridGraph) Cells() []Cell {
	out := make([]Cell, 0, gg.Rows*gg.Cols)
	for r := 0; r < gg.Rows; r++ {
		for c := 0; c < gg.Cols; c++ {
			out = append(out, Cell{Row: r, Col: c})
		}
	}
	return out
}

// index maps c to a row‑major index: Row*Cols + Col.
// Complexity: O(1).
func (gg *GridGraph) index(c Cell) int {
	return c.Row*gg.Cols + c.Col
}

