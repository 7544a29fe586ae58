package gridmap

// Neighbors returns the traversable 4-neighbors of p in the order
// East, West, South, North. Bounds are checked before traversability, so
// no point outside the grid is ever looked up.
func (g *Grid) Neighbors(p Point) []Point {
	return g.AppendNeighbors(make([]Point, 0, len(neighborOffsets)), p)
}

// AppendNeighbors appends the neighbors of p to dst and returns the
// extended slice. Search loops reuse dst to avoid per-step allocation.
func (g *Grid) AppendNeighbors(dst []Point, p Point) []Point {
	for _, d := range neighborOffsets {
		n := p.Add(d)
		if !g.InBounds(n.X, n.Y) {
			continue
		}
		if g.cells[g.index(n.X, n.Y)] {
			dst = append(dst, n)
		}
	}
	return dst
}
