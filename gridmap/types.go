// Package gridmap defines core types, options, and sentinel errors
// for text-map grids.
package gridmap

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridmap operations.
var (
	// ErrParse is the parent of every construction-time error.
	ErrParse = errors.New("gridmap: cannot parse map")
	// ErrDimensions indicates a non-positive width or height.
	ErrDimensions = fmt.Errorf("%w: width and height must be positive", ErrParse)
	// ErrEmptyMap indicates the map text holds nothing but whitespace.
	ErrEmptyMap = fmt.Errorf("%w: map text is empty", ErrParse)
	// ErrOutOfBounds indicates a query outside [0,Width)×[0,Height).
	ErrOutOfBounds = errors.New("gridmap: point out of bounds")
)

// DefaultOpen is the rune that marks a traversable cell.
const DefaultOpen = '.'

// Point is a cell coordinate. X grows east, Y grows south.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// String renders the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Direction offsets in expansion order. The order fixes tie-breaking
// between equal-length paths and must not change.
var (
	East  = Point{X: 1, Y: 0}
	West  = Point{X: -1, Y: 0}
	South = Point{X: 0, Y: 1}
	North = Point{X: 0, Y: -1}
)

// neighborOffsets is the East, West, South, North expansion order.
var neighborOffsets = [4]Point{East, West, South, North}

// Option configures map parsing.
type Option func(*Options)

// Options holds parsing parameters.
type Options struct {
	// Open lists the runes treated as traversable.
	Open []rune
}

// DefaultOptions returns Options with only DefaultOpen traversable.
func DefaultOptions() Options {
	return Options{Open: []rune{DefaultOpen}}
}

// WithOpenRunes replaces the set of traversable runes. An empty call is
// ignored so the default marker survives.
func WithOpenRunes(open ...rune) Option {
	return func(o *Options) {
		if len(open) > 0 {
			o.Open = append([]rune(nil), open...)
		}
	}
}

// isOpen reports whether r is one of the configured open runes.
func (o Options) isOpen(r rune) bool {
	for _, c := range o.Open {
		if c == r {
			return true
		}
	}
	return false
}

// Grid is an immutable traversability map. Once built, it is safe for
// unlimited concurrent reads.
type Grid struct {
	width, height int
	cells         []bool // row-major, len == width*height
}
