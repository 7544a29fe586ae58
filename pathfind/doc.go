// Package pathfind computes fewest-hop paths on a gridmap.Grid with
// unweighted breadth-first search over 4-connected cells.
//
// What
//
//   - FindPath returns the shortest path from start to goal, both inclusive,
//     or an empty Path when the goal is unreachable.
//   - Find returns the same path plus search diagnostics (cells expanded).
//   - FindAll runs many independent searches over one shared Grid
//     concurrently.
//
// Algorithm
//
//	Each call owns a distance map sized Width×Height where 0 means
//	unvisited, 1 is the start and N means N-1 hops from it. Neighbors are
//	expanded East, West, South, North from a FIFO queue; the first time the
//	goal is discovered the search stops and the path is rebuilt by walking
//	backwards, always stepping to the first neighbor whose distance is one
//	less. Because the expansion order is fixed, results are reproducible.
//
//	A search whose start equals its goal still runs (the goal is already
//	visited, so it exhausts the start's region) and yields [start].
//
// Complexity (V = Width×Height)
//
//   - Time:   O(V)   (each cell enqueued at most once, 4 probes each)
//   - Memory: O(V)   (distance map and queue)
//
// Options
//
//   - WithContext(ctx):        cancellation, checked once per dequeue.
//   - WithMaxExpansions(n):    abort with ErrExpansionLimit after n dequeues.
//   - WithOnEnqueue(fn):       hook when a cell is first discovered.
//   - WithOnVisit(fn):         hook when a cell is dequeued; an error aborts.
//
// Errors
//
//   - ErrGridNil            if the grid pointer is nil.
//   - ErrInvalidCoordinate  if start or goal is out of bounds or blocked.
//   - ErrOptionViolation    if an Option is invalid.
//   - ErrExpansionLimit     if WithMaxExpansions was exceeded.
//   - context errors and wrapped OnVisit errors.
//
// An unreachable goal is not an error.
package pathfind
