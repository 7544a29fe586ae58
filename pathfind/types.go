// Package pathfind provides tunable options, results and error definitions
// for breadth-first path search.
package pathfind

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/maprobot/gridmap"
)

// Sentinel errors for path search.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("pathfind: grid is nil")

	// ErrInvalidCoordinate is returned when start or goal is outside the
	// grid or on a blocked cell.
	ErrInvalidCoordinate = errors.New("pathfind: invalid coordinate")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathfind: invalid option supplied")

	// ErrExpansionLimit is returned when the search dequeues more cells
	// than WithMaxExpansions allows.
	ErrExpansionLimit = errors.New("pathfind: expansion limit reached")
)

// Option configures search behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when
// the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks for one search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxExpansions, if > 0, caps the number of dequeued cells.
	// 0 means no limit.
	MaxExpansions int

	// OnEnqueue is called when a cell is first discovered, with its
	// hop distance from the start.
	OnEnqueue func(p gridmap.Point, hops int)

	// OnVisit is called when a cell is dequeued. A non-nil error aborts
	// the search.
	OnVisit func(p gridmap.Point, hops int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, no limit
// and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(gridmap.Point, int) {},
		OnVisit:   func(gridmap.Point, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions aborts the search after n dequeues.
//
//	n > 0: limit to n expansions
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnEnqueue registers a callback to run when a cell is discovered.
func WithOnEnqueue(fn func(p gridmap.Point, hops int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on dequeue; returning an error
// stops the search.
func WithOnVisit(fn func(p gridmap.Point, hops int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Path is an ordered sequence of cells from start to goal inclusive.
// An empty Path means no route exists.
type Path []gridmap.Point

// Hops returns the number of moves along the path (len-1, or 0 if empty).
func (p Path) Hops() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Contains reports whether q lies on the path.
func (p Path) Contains(q gridmap.Point) bool {
	for _, c := range p {
		if c == q {
			return true
		}
	}
	return false
}

// String renders the path as "(x,y) -> (x,y) -> ...".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = c.String()
	}
	return strings.Join(parts, " -> ")
}

// Result holds the outcome of one search:
//   - Path: start → goal, empty when unreachable.
//   - Expanded: number of cells dequeued.
//   - Reached: whether the goal was found.
type Result struct {
	Path     Path
	Expanded int
	Reached  bool
}

// Query is one start/goal pair for FindAll.
type Query struct {
	Start gridmap.Point
	Goal  gridmap.Point
}
