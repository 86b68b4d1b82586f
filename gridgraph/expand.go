package gridgraph

import (
	"container/list"
)

// ExpandIsland finds a minimum-conversion path of water cells
// (CellValues < LandThreshold) that connects any cell of component srcComp
// to any cell of component dstComp, as numbered by ConnectedComponents().
// Each water-cell conversion costs 1.
// Returns the cells of the path (including the start and end land cells)
// and the total conversion cost.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi-source 0-1 BFS from all srcComp cells:
//     • Moving into an existing land cell   → cost 0
//     • Moving into a water cell            → cost 1
//  3. Stop when any dstComp cell is reached.
//  4. Reconstruct path via predecessors.
//
// Complexity: O(W·H·d) time, O(W·H) memory.
func (gg *GridGraph) ExpandIsland(srcComp, dstComp int) ([]Point, int, error) {
	comps := gg.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}
	dstSet := make(map[Point]struct{}, len(comps[dstComp]))
	for _, p := range comps[dstComp] {
		dstSet[p] = struct{}{}
	}

	n := gg.Width * gg.Height
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0-1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	for _, p := range comps[srcComp] {
		i := gg.index(p.X, p.Y)
		dist[i] = 0
		dq.PushFront(i)
	}

	target := -1
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if _, ok := dstSet[gg.point(u)]; ok {
			target = u
			break
		}
		ux, uy := gg.Coordinate(u)
		for _, d := range gg.neighborOffsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.InBounds(vx, vy) {
				continue
			}
			v := gg.index(vx, vy)
			step := 0
			if !gg.IsLand(vx, vy) {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, ErrNoPath
	}
	var path []Point
	for at := target; at >= 0; at = prev[at] {
		path = append(path, gg.point(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[target], nil
}
