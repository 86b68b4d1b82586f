package gridgraph

// ConnectedComponents finds all contiguous regions ("islands") of land cells
// (CellValues[y][x] ≥ LandThreshold), according to gg.Conn connectivity.
// Components are ordered by their first cell in row-major order; cells
// within a component are in BFS order from that cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]Point {
	total := gg.Width * gg.Height
	seen := make([]bool, total)
	var comps [][]Point

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.IsLand(x, y) {
				continue // water
			}
			i0 := gg.index(x, y)
			if seen[i0] {
				continue
			}
			// BFS to collect component
			queue := []int{i0}
			seen[i0] = true
			var comp []Point

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				comp = append(comp, gg.point(u))
				ux, uy := gg.Coordinate(u)
				for _, d := range gg.neighborOffsets {
					vx, vy := ux+d[0], uy+d[1]
					if !gg.InBounds(vx, vy) || !gg.IsLand(vx, vy) {
						continue
					}
					vi := gg.index(vx, vy)
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
