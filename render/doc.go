// Package render draws a gridmap.Grid and a path as text.
//
// Legend:
//
//	@  blocked cell
//	.  open cell
//	*  cell on the path
//	#  start or goal
//
// Rendering works on an overlay built from a copy of the grid cells, so
// the Grid itself is never modified. Re-parsing a rendering with
// gridmap.WithOpenRunes('.', '*', '#') yields the source grid's traversability.
package render
