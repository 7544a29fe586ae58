package render_test

import (
	"os"

	"github.com/katalvlaran/maprobot/gridmap"
	"github.com/katalvlaran/maprobot/pathfind"
	"github.com/katalvlaran/maprobot/render"
)

// ExampleReport prints the classic report for a detour around a wall.
func ExampleReport() {
	g, _ := gridmap.NewGrid("....\n.@@.\n....", 4, 3)
	start, goal := gridmap.Pt(0, 1), gridmap.Pt(3, 1)
	path, _ := pathfind.FindPath(g, start, goal)
	_ = render.Report(os.Stdout, g, start, goal, path, false)
	// Output:
	// Width: 4
	// Height: 3
	// Path Length: 6
	// ....
	// #@@#
	// ****
}
