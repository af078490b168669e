package gridgraph

import (
	"strconv"
	"strings"
)

// Render symbols.
const (
	SymbolStart    = 'S'
	SymbolGoal     = 'G'
	SymbolPath     = '*'
	SymbolObstacle = '#'
	SymbolCostly   = '+' // terrain cost above 9
)

// Render draws the grid one row per line with cells separated by a space.
// Start and goal are marked S and G, other cells on path are marked '*',
// obstacles '#', and every remaining cell shows its terrain cost.
// A nil path renders the bare map with only S and G marked.
func (gg *GridGraph) Render(path Path, start, goal Cell) string {
	onPath := make(map[Cell]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}

	var sb strings.Builder
	for r := 0; r < gg.Rows; r++ {
		for col := 0; col < gg.Cols; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			c := Cell{Row: r, Col: col}
			switch {
			case c == start:
				sb.WriteByte(SymbolStart)
			case c == goal:
				sb.WriteByte(SymbolGoal)
			case gg.IsObstacle(c):
				sb.WriteByte(SymbolObstacle)
			case onPath[c]:
				sb.WriteByte(SymbolPath)
			case gg.CellValues[r][col] > 9:
				sb.WriteByte(SymbolCostly)
			default:
				sb.WriteString(strconv.Itoa(gg.CellValues[r][col]))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
