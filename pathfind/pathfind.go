package pathfind

import (
	"context"
	"fmt"

	"github.com/katalvlaran/maprobot/gridmap"
)

// walker encapsulates the per-call search state. It is never shared
// between calls, which is what makes concurrent searches over one Grid safe.
type walker struct {
	grid     *gridmap.Grid
	opts     Options
	ctx      context.Context
	dist     []int // 0 = unvisited, 1 = start, N = N-1 hops
	queue    []gridmap.Point
	head     int
	nbuf     []gridmap.Point
	expanded int
}

// FindPath returns the fewest-hop path from start to goal on g, both ends
// inclusive. An unreachable goal yields an empty Path and a nil error.
// Returns ErrGridNil, ErrInvalidCoordinate, ErrOptionViolation,
// ErrExpansionLimit, a context error, or a wrapped OnVisit error.
func FindPath(g *gridmap.Grid, start, goal gridmap.Point, opts ...Option) (Path, error) {
	res, err := Find(g, start, goal, opts...)
	if err != nil {
		return nil, err
	}
	return res.Path, nil
}

// Find runs the same search as FindPath and also reports how many cells
// were expanded and whether the goal was reached.
func Find(g *gridmap.Grid, start, goal gridmap.Point, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := checkPoint(g, "start", start); err != nil {
		return nil, err
	}
	if err := checkPoint(g, "goal", goal); err != nil {
		return nil, err
	}

	w := &walker{
		grid:  g,
		opts:  o,
		ctx:   o.Ctx,
		dist:  make([]int, g.Len()),
		queue: make([]gridmap.Point, 0, 64),
		nbuf:  make([]gridmap.Point, 0, 4),
	}
	return w.search(start, goal)
}

// checkPoint rejects points outside the grid or on a blocked cell.
func checkPoint(g *gridmap.Grid, role string, p gridmap.Point) error {
	if !g.Contains(p) {
		return fmt.Errorf("%w: %s %v outside %dx%d grid", ErrInvalidCoordinate, role, p, g.Width(), g.Height())
	}
	if !g.Open(p) {
		return fmt.Errorf("%w: %s %v is blocked", ErrInvalidCoordinate, role, p)
	}
	return nil
}

// search expands cells in FIFO order until the goal is discovered or the
// queue runs dry.
func (w *walker) search(start, goal gridmap.Point) (*Result, error) {
	w.dist[w.grid.Index(start)] = 1
	w.opts.OnEnqueue(start, 0)
	w.queue = append(w.queue, start)

	for w.head < len(w.queue) {
		// cancellation check (once per dequeue)
		select {
		case <-w.ctx.Done():
			return nil, w.ctx.Err()
		default:
		}
		if w.opts.MaxExpansions > 0 && w.expanded >= w.opts.MaxExpansions {
			return nil, fmt.Errorf("%w: %d cells expanded", ErrExpansionLimit, w.expanded)
		}

		cur := w.dequeue()
		curDist := w.dist[w.grid.Index(cur)]
		if err := w.opts.OnVisit(cur, curDist-1); err != nil {
			return nil, fmt.Errorf("pathfind: OnVisit error at %v: %w", cur, err)
		}

		w.nbuf = w.grid.AppendNeighbors(w.nbuf[:0], cur)
		for _, succ := range w.nbuf {
			si := w.grid.Index(succ)
			// first visit wins
			if w.dist[si] != 0 {
				continue
			}
			w.dist[si] = curDist + 1
			w.opts.OnEnqueue(succ, curDist)
			if succ == goal {
				return w.result(w.extractPath(goal), true), nil
			}
			w.queue = append(w.queue, succ)
		}
	}

	// The goal is only ever "discovered" as a fresh neighbor, so a
	// start==goal search exhausts the region and lands here.
	if start == goal {
		return w.result(w.extractPath(goal), true), nil
	}
	return w.result(Path{}, false), nil
}

// dequeue pops the front of the queue.
func (w *walker) dequeue() gridmap.Point {
	p := w.queue[w.head]
	w.head++
	w.expanded++
	return p
}

// extractPath walks back from goal, each step moving to the first neighbor
// (East, West, South, North) whose distance is one less, then reverses.
func (w *walker) extractPath(goal gridmap.Point) Path {
	cost := w.dist[w.grid.Index(goal)]
	path := make(Path, 0, cost)
	path = append(path, goal)
	buf := make([]gridmap.Point, 0, 4)

	for cost > 1 {
		buf = w.grid.AppendNeighbors(buf[:0], path[len(path)-1])
		stepped := false
		for _, n := range buf {
			if w.dist[w.grid.Index(n)] == cost-1 {
				path = append(path, n)
				cost--
				stepped = true
				break
			}
		}
		if !stepped {
			// a predecessor at cost-1 always exists after a forward pass
			break
		}
	}

	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func (w *walker) result(p Path, reached bool) *Result {
	return &Result{Path: p, Expanded: w.expanded, Reached: reached}
}
