package pathfind_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maprobot/gridmap"
	"github.com/katalvlaran/maprobot/pathfind"
)

// randomMap builds a w×h map with roughly one wall in four cells.
func randomMap(w, h int, seed int64) string {
	r := rand.New(rand.NewSource(seed))
	var sb strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if r.Intn(4) == 0 {
				sb.WriteByte('@')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func openCells(g *gridmap.Grid) []gridmap.Point {
	var out []gridmap.Point
	for i, open := range g.Cells() {
		if open {
			out = append(out, g.Coordinate(i))
		}
	}
	return out
}

func firstOpen(g *gridmap.Grid) gridmap.Point {
	return openCells(g)[0]
}

func lastOpen(g *gridmap.Grid) gridmap.Point {
	cells := openCells(g)
	return cells[len(cells)-1]
}

// oracleHops is a plain map-based BFS used as an independent reference.
func oracleHops(g *gridmap.Grid, start, goal gridmap.Point) (int, bool) {
	dist := map[gridmap.Point]int{start: 0}
	queue := []gridmap.Point{start}
	dirs := []gridmap.Point{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == goal {
			return dist[cur], true
		}
		for _, d := range dirs {
			n := gridmap.Point{X: cur.X + d.X, Y: cur.Y + d.Y}
			if _, seen := dist[n]; seen || !g.IsTraversable(n.X, n.Y) {
				continue
			}
			dist[n] = dist[cur] + 1
			queue = append(queue, n)
		}
	}
	return 0, false
}

// assertValidPath checks endpoints, unit steps and traversability.
func assertValidPath(t *testing.T, g *gridmap.Grid, p pathfind.Path, start, goal gridmap.Point) {
	t.Helper()
	require.Equal(t, start, p[0], "path must begin at start")
	require.Equal(t, goal, p[len(p)-1], "path must end at goal")
	for i, c := range p {
		require.Truef(t, g.IsTraversable(c.X, c.Y), "step %d %v is blocked", i, c)
		if i == 0 {
			continue
		}
		dx, dy := c.X-p[i-1].X, c.Y-p[i-1].Y
		if dx*dx+dy*dy != 1 {
			t.Fatalf("step %d %v -> %v is not a unit move", i, p[i-1], c)
		}
	}
}
