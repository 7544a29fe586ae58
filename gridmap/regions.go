package gridmap

// Regions finds all 4-connected regions of traversable cells.
// Regions are returned in row-major order of their first cell; the cells of
// each region are listed in breadth-first discovery order from that cell.
// Two points share a region iff a path exists between them.
//
// Time:   O(W·H).
// Memory: O(W·H) for seen flags and output.
func (g *Grid) Regions() [][]Point {
	seen := make([]bool, len(g.cells))
	var regions [][]Point
	buf := make([]Point, 0, len(neighborOffsets))

	for i0, open := range g.cells {
		if !open || seen[i0] {
			continue
		}
		seen[i0] = true
		queue := []Point{g.Coordinate(i0)}

		for qi := 0; qi < len(queue); qi++ {
			buf = g.AppendNeighbors(buf[:0], queue[qi])
			for _, n := range buf {
				ni := g.index(n.X, n.Y)
				if !seen[ni] {
					seen[ni] = true
					queue = append(queue, n)
				}
			}
		}
		regions = append(regions, queue)
	}
	return regions
}

// RegionLabels returns, for every cell in row-major order, the index of its
// region in Regions(), or -1 for blocked cells.
func (g *Grid) RegionLabels() []int {
	labels := make([]int, len(g.cells))
	for i := range labels {
		labels[i] = -1
	}
	for id, region := range g.Regions() {
		for _, p := range region {
			labels[g.index(p.X, p.Y)] = id
		}
	}
	return labels
}
