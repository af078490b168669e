package gridgraph

// ConnectedComponents finds all 4-connected regions of passable cells.
// Components are discovered in row-major order of their first cell and each
// lists its cells in BFS discovery order.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]Cell {
	seen := make([]bool, gg.Rows*gg.Cols)
	var comps [][]Cell

	for _, start := range gg.Cells() {
		if gg.IsObstacle(start) || seen[gg.index(start)] {
			continue
		}
		// BFS to collect component
		queue := []Cell{start}
		seen[gg.index(start)] = true

		for qi := 0; qi < len(queue); qi++ {
			for _, v := range gg.Neighbors(queue[qi]) {
				if !gg.IsValidMove(v) {
					continue
				}
				vi := gg.index(v)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}

// Reachable reports whether b can be reached from a over passable cells,
// ignoring any time-varying obstacles. Invalid endpoints are unreachable.
func (gg *GridGraph) Reachable(a, b Cell) bool {
	if !gg.IsValidMove(a) || !gg.IsValidMove(b) {
		return false
	}
	for _, comp := range gg.ConnectedComponents() {
		found := 0
		for _, c := range comp {
			if c == a {
				found++
			}
			if c == b {
				found++
			}
		}
		if found > 0 {
			return found == 2
		}
	}
	return false
}
