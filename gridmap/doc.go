// Package gridmap turns a text map into an immutable traversability grid
// and answers constant-time point queries over it.
//
// What:
//
//   - Grid parses row-delimited text; a cell is traversable iff its rune is
//     an open marker ('.' by default), every other rune is blocked.
//   - Storage is a flat row-major slice indexed y*Width+x.
//   - Neighbors expands a point to its 4-connected traversable neighbors in
//     the fixed order East, West, South, North.
//   - Regions labels 4-connected components of traversable cells.
//
// Ragged input:
//
//	Rows shorter than the declared width and rows missing at the bottom
//	leave their cells blocked. Runes past the width and rows past the
//	height are ignored; they never spill into a neighboring row.
//
// Complexity:
//
//   - NewGrid:   O(W×H) time and memory.
//   - Queries:   O(1).
//   - Regions:   O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrDimensions:  width or height is not positive (wraps ErrParse).
//   - ErrEmptyMap:    text is empty after trimming (wraps ErrParse).
//   - ErrOutOfBounds: strict query outside the grid.
package gridmap
