package gridgraph

// ConnectedComponents finds all 4-connected regions ("islands") of Passable
// cells. Each component is a slice of row-major cell indices in BFS order;
// components are ordered by their first cell in row-major scan.
//
// Time:   O(R·C·4).
// Memory: O(R·C) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, gg.Size())
	var comps [][]int

	for r := 0; r < gg.Rows; r++ {
		for c := 0; c < gg.Cols; c++ {
			origin := Cell{Row: r, Col: c}
			if !gg.IsPassable(origin) {
				continue // blocked
			}
			i0 := gg.Index(origin)
			if seen[i0] {
				continue
			}
			queue := []int{i0}
			seen[i0] = true
			var comp []int

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				comp = append(comp, u)
				for _, v := range gg.Neighbors(gg.Coordinate(u)) {
					if !gg.IsPassable(v) {
						continue
					}
					vi := gg.Index(v)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, comp)
		}
	}
	return comps
}

// ComponentOf labels every cell with the index of its component in
// ConnectedComponents order, or -1 for Blocked cells.
func (gg *GridGraph) ComponentOf() []int {
	labels := make([]int, gg.Size())
	for i := range labels {
		labels[i] = -1
	}
	for id, comp := range gg.ConnectedComponents() {
		for _, idx := range comp {
			labels[idx] = id
		}
	}
	return labels
}

// SameComponent reports whether a and b are Passable cells joined by a
// 4-connected path of Passable cells. Out-of-bounds cells report false.
func (gg *GridGraph) SameComponent(a, b Cell) bool {
	if !gg.Open(a) || !gg.Open(b) {
		return false
	}
	labels := gg.ComponentOf()
	return labels[gg.Index(a)] == labels[gg.Index(b)]
}
