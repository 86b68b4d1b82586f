package gridgraph

// FloodFill repaints, in place, the 4-connected region of cells that share
// the value of grid[row][col], setting each to newValue. It returns the
// number of cells changed.
//
// The grid is an implicit graph: a cell is a vertex and each orthogonal
// neighbour holding the same original value is an edge. Rows may differ in
// length; bounds are checked per row. Nothing happens (0 is returned) when
// (row, col) is out of bounds or the start already holds newValue, so a
// second identical call is always a no-op.
//
// Time: O(R) for a region of R cells. Memory: O(R) for the explicit stack.
func FloodFill(grid [][]int, row, col, newValue int) int {
	return FloodFillConn(grid, row, col, newValue, Conn4)
}

// FloodFillConn is FloodFill with a selectable neighbourhood; Conn8 also
// follows diagonals.
func FloodFillConn(grid [][]int, row, col, newValue int, conn Connectivity) int {
	if !cellInBounds(grid, row, col) {
		return 0
	}
	old := grid[row][col]
	if old == newValue {
		return 0
	}

	offsets := conn.offsets()
	// Cells are painted when pushed, so a painted cell never matches old
	// again and is never pushed twice.
	stack := [][2]int{{row, col}}
	grid[row][col] = newValue
	changed := 1
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range offsets {
			r, c := top[0]+d[1], top[1]+d[0]
			if !cellInBounds(grid, r, c) || grid[r][c] != old {
				continue
			}
			grid[r][c] = newValue
			changed++
			stack = append(stack, [2]int{r, c})
		}
	}

	return changed
}

// cellInBounds checks (row, col) against the row count and that row's own length.
func cellInBounds(grid [][]int, row, col int) bool {
	return row >= 0 && row < len(grid) && col >= 0 && col < len(grid[row])
}
