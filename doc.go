// Package maprobot finds shortest routes across text maps.
//
// A map is plain text, one row per line, where '.' is open floor and every
// other character is a wall:
//
//	@@@@@@@
//	@..@..@
//	@.....@
//	@@@@@@@
//
// Under the hood, everything is organized under three packages:
//
//	gridmap/  - parse text into an immutable traversability Grid, neighbor
//	            expansion (East, West, South, North) and region labelling
//	pathfind/ - breadth-first FindPath with hooks, limits and cancellation,
//	            plus FindAll for concurrent batches over one shared Grid
//	render/   - draw a grid and a path back as text ('@', '.', '*', '#')
//
// The maprobot command (cmd/maprobot) wraps them with YAML configuration
// and structured logging:
//
//	maprobot find --map minimap.map --width 20 --height 8 --start 5,5 --goal 13,5
package maprobot
