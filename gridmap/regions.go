package gridmap

import "github.com/katalvlaran/gridpath/core"

// Regions finds all contiguous regions of passable tiles according to
// tm.Conn connectivity. Returns one slice of row‑major cell indices per
// region, in scan order. Walls belong to no region.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (tm *TileMap) Regions() [][]int {
	labels, n := tm.label()
	regions := make([][]int, n)
	for i, id := range labels {
		if id >= 0 {
			regions[id] = append(regions[id], i)
		}
	}

	return regions
}

// Connected reports whether a and b are passable and lie in the same region.
// Every neighbour relation of a TileMap is symmetric, so this is exactly
// "a path from a to b exists".
func (tm *TileMap) Connected(a, b core.Point) bool {
	if !tm.InBounds(a.X, a.Y) || !tm.InBounds(b.X, b.Y) {
		return false
	}
	labels, _ := tm.label()
	la, lb := labels[tm.index(a.X, a.Y)], labels[tm.index(b.X, b.Y)]

	return la >= 0 && la == lb
}

// label assigns each passable cell the id of its region (BFS flood fill)
// and walls -1. It returns the labels and the number of regions.
func (tm *TileMap) label() ([]int, int) {
	total := tm.Width * tm.Length
	labels := make([]int, total)
	for i := range labels {
		labels[i] = -1
	}
	next := 0

	for i0 := 0; i0 < total; i0++ {
		if labels[i0] >= 0 || core.Impassable(tm.costs[i0]) {
			continue
		}
		// BFS to collect region
		queue := []int{i0}
		labels[i0] = next
		for qi := 0; qi < len(queue); qi++ {
			ux, uy := tm.Coordinate(queue[qi])
			for _, d := range tm.neighborOffsets {
				vx, vy := ux+d[0], uy+d[1]
				if !tm.InBounds(vx, vy) {
					continue
				}
				vi := tm.index(vx, vy)
				if labels[vi] < 0 && !core.Impassable(tm.costs[vi]) {
					labels[vi] = next
					queue = append(queue, vi)
				}
			}
		}
		next++
	}

	return labels, next
}
