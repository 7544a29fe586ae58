package gridmap

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// NewGrid parses text into a width×height Grid.
// The text is trimmed of surrounding whitespace and split into rows on '\n'
// (a trailing '\r' is dropped from each row). Rune x of row y sets cell
// (x,y) traversable iff it is an open rune.
// Returns ErrDimensions for a non-positive width or height, or when
// width×height overflows int, and ErrEmptyMap for blank text; both wrap
// ErrParse.
// Complexity: O(W×H) time and memory.
func NewGrid(text string, width, height int, opts ...Option) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrDimensions
	}
	if width > math.MaxInt/height {
		return nil, fmt.Errorf("%w: %dx%d cells overflow", ErrDimensions, width, height)
	}
	body := strings.TrimSpace(text)
	if body == "" {
		return nil, ErrEmptyMap
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}
	for y, row := range splitRows(body) {
		if y >= height {
			break // extra rows are ignored
		}
		x := 0
		for _, r := range row {
			if x >= width {
				break // overlong row must not spill into the next one
			}
			g.cells[g.index(x, y)] = o.isOpen(r)
			x++
		}
	}

	return g, nil
}

// Measure infers dimensions from map text: the rune length of the longest
// row and the number of rows. Blank text measures 0×0.
func Measure(text string) (width, height int) {
	body := strings.TrimSpace(text)
	if body == "" {
		return 0, 0
	}
	rows := splitRows(body)
	for _, row := range rows {
		if n := utf8.RuneCountInString(row); n > width {
			width = n
		}
	}
	return width, len(rows)
}

// splitRows splits on '\n' and drops one trailing '\r' per row.
func splitRows(body string) []string {
	rows := strings.Split(body, "\n")
	for i, row := range rows {
		rows[i] = strings.TrimSuffix(row, "\r")
	}
	return rows
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns Width×Height.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsTraversable reports whether (x,y) may be entered.
// Out-of-bounds points are never traversable; the call does not panic.
// Complexity: O(1).
func (g *Grid) IsTraversable(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.cells[g.index(x, y)]
}

// At is the strict form of IsTraversable: it returns ErrOutOfBounds for
// points outside the grid instead of false.
func (g *Grid) At(x, y int) (bool, error) {
	if !g.InBounds(x, y) {
		return false, ErrOutOfBounds
	}
	return g.cells[g.index(x, y)], nil
}

// Contains reports whether p lies within the grid.
func (g *Grid) Contains(p Point) bool {
	return g.InBounds(p.X, p.Y)
}

// Open reports whether p is in bounds and traversable.
func (g *Grid) Open(p Point) bool {
	return g.IsTraversable(p.X, p.Y)
}

// Index maps p to its row-major index y*Width+x.
// The result is meaningless for points outside the grid.
func (g *Grid) Index(p Point) int {
	return g.index(p.X, p.Y)
}

// Coordinate converts a row-major index back to a Point.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Point {
	return Point{X: idx % g.width, Y: idx / g.width}
}

// Cells returns a copy of the traversability flags in row-major order.
// Callers may mutate the copy freely; the Grid is unaffected.
func (g *Grid) Cells() []bool {
	out := make([]bool, len(g.cells))
	copy(out, g.cells)
	return out
}

// index maps (x,y) to a row-major index: y*Width + x.
func (g *Grid) index(x, y int) int {
	return y*g.width + x
}
