// File: gridmap/example_test.go
package gridmap_test

import (
	"fmt"

	"github.com/katalvlaran/maprobot/gridmap"
)

////////////////////////////////////////////////////////////////////////////////
// Example: NewGrid
////////////////////////////////////////////////////////////////////////////////

// ExampleNewGrid parses a 3×3 map with a blocked center and lists the
// neighbors of the top-middle cell. Order is East, West, South, North.
func ExampleNewGrid() {
	g, err := gridmap.NewGrid("...\n.@.\n...", 3, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.IsTraversable(1, 1), g.IsTraversable(1, 0))
	fmt.Println(g.Neighbors(gridmap.Pt(1, 0)))
	// Output:
	// false true
	// [(2,0) (0,0)]
}

////////////////////////////////////////////////////////////////////////////////
// Example: Regions
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Regions splits a map into islands separated by a wall column.
func ExampleGrid_Regions() {
	g, _ := gridmap.NewGrid("..@.\n..@.", 4, 2)
	for i, region := range g.Regions() {
		fmt.Printf("region %d: %v\n", i, region)
	}
	// Output:
	// region 0: [(0,0) (1,0) (0,1) (1,1)]
	// region 1: [(3,0) (3,1)]
}
