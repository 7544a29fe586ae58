package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maprobot/gridmap"
	"github.com/katalvlaran/maprobot/pathfind"
	"github.com/katalvlaran/maprobot/render"
)

func TestText_Legend(t *testing.T) {
	g, err := gridmap.NewGrid("...\n.@.\n...", 3, 3)
	require.NoError(t, err)
	start, goal := gridmap.Pt(0, 0), gridmap.Pt(2, 2)
	path, err := pathfind.FindPath(g, start, goal)
	require.NoError(t, err)

	want := "#..\n*@.\n**#\n"
	assert.Equal(t, want, render.Text(g, start, goal, path))
}

func TestText_NoPath(t *testing.T) {
	g, _ := gridmap.NewGrid(".@.", 3, 1)
	got := render.Text(g, gridmap.Pt(0, 0), gridmap.Pt(2, 0), pathfind.Path{})
	assert.Equal(t, "#@#\n", got)
}

func TestMap(t *testing.T) {
	g, _ := gridmap.NewGrid("..x\n.", 3, 2)
	assert.Equal(t, "..@\n.@@\n", render.Map(g))
}

// TestText_LeavesGridIntact renders twice; the second rendering without a
// path must not show marks from the first.
func TestText_LeavesGridIntact(t *testing.T) {
	g, _ := gridmap.NewGrid(".....", 5, 1)
	start, goal := gridmap.Pt(0, 0), gridmap.Pt(4, 0)
	path, _ := pathfind.FindPath(g, start, goal)

	assert.Equal(t, "#***#\n", render.Text(g, start, goal, path))
	assert.Equal(t, ".....\n", render.Map(g))
	for x := 0; x < 5; x++ {
		assert.True(t, g.IsTraversable(x, 0))
	}
}

// TestRoundTrip re-parses a rendering and expects the same traversability,
// with the path cells marked distinctly.
func TestRoundTrip(t *testing.T) {
	text := strings.Join([]string{
		"..........",
		".@@@@@@@@.",
		".@......@.",
		".@.@@@@.@.",
		"...@..@...",
	}, "\n")
	g, err := gridmap.NewGrid(text, 10, 5)
	require.NoError(t, err)
	start, goal := gridmap.Pt(2, 2), gridmap.Pt(9, 4)
	path, err := pathfind.FindPath(g, start, goal)
	require.NoError(t, err)
	require.NotEmpty(t, path)

	drawn := render.Text(g, start, goal, path)
	back, err := gridmap.NewGrid(drawn, g.Width(), g.Height(), gridmap.WithOpenRunes(render.Open, render.OnPath, render.Endpoint))
	require.NoError(t, err)
	assert.Equal(t, g.Cells(), back.Cells())

	ov := render.NewOverlay(g, start, goal, path)
	for _, p := range path[1 : len(path)-1] {
		c, err := ov.At(p.X, p.Y)
		require.NoError(t, err)
		assert.Equal(t, render.CellPath, c)
	}
	for _, p := range []gridmap.Point{start, goal} {
		c, err := ov.At(p.X, p.Y)
		require.NoError(t, err)
		assert.Equal(t, render.CellEndpoint, c)
	}
}

// TestOverlay_At checks that At never reads across a row boundary.
func TestOverlay_At(t *testing.T) {
	g, err := gridmap.NewGrid("..@\n@..", 3, 2)
	require.NoError(t, err)
	ov := render.NewOverlay(g, gridmap.Pt(0, 0), gridmap.Pt(2, 1), nil)

	c, err := ov.At(2, 0)
	require.NoError(t, err)
	assert.Equal(t, render.CellBlocked, c)
	c, err = ov.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, render.CellBlocked, c)

	for _, xy := range [][2]int{{3, 0}, {-1, 0}, {0, 2}, {0, -1}} {
		_, err := ov.At(xy[0], xy[1])
		assert.ErrorIs(t, err, gridmap.ErrOutOfBounds, "At(%d,%d)", xy[0], xy[1])
	}
}

func TestReport(t *testing.T) {
	g, _ := gridmap.NewGrid(".....", 5, 1)
	start, goal := gridmap.Pt(0, 0), gridmap.Pt(4, 0)
	path, _ := pathfind.FindPath(g, start, goal)

	var buf bytes.Buffer
	require.NoError(t, render.Report(&buf, g, start, goal, path, false))
	assert.Equal(t, "Width: 5\nHeight: 1\nPath Length: 5\n#***#\n", buf.String())
}

// TestStyled only checks structure; the color profile depends on the terminal.
func TestStyled(t *testing.T) {
	g, _ := gridmap.NewGrid("..\n..", 2, 2)
	out := render.Styled(g, gridmap.Pt(0, 0), gridmap.Pt(1, 1), nil)
	assert.Equal(t, 2, strings.Count(out, "\n"))
	assert.Equal(t, 2, strings.Count(out, "#"))
}
