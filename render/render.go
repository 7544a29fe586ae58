package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/maprobot/gridmap"
	"github.com/katalvlaran/maprobot/pathfind"
)

// Glyphs used in the text rendering.
const (
	Blocked  = '@'
	Open     = '.'
	OnPath   = '*'
	Endpoint = '#'
)

// Cell is the overlay value of one grid cell.
type Cell uint8

const (
	CellBlocked Cell = iota
	CellOpen
	CellPath
	CellEndpoint
)

// glyph maps a Cell to its rune.
func (c Cell) glyph() rune {
	switch c {
	case CellBlocked:
		return Blocked
	case CellPath:
		return OnPath
	case CellEndpoint:
		return Endpoint
	default:
		return Open
	}
}

// Overlay is a scratch copy of a grid with the path and endpoints marked.
type Overlay struct {
	Width, Height int
	Cells         []Cell // row-major
}

// NewOverlay copies g and marks path cells, then start and goal, on top.
// Points outside the grid are ignored.
func NewOverlay(g *gridmap.Grid, start, goal gridmap.Point, path pathfind.Path) *Overlay {
	flags := g.Cells()
	ov := &Overlay{
		Width:  g.Width(),
		Height: g.Height(),
		Cells:  make([]Cell, len(flags)),
	}
	for i, open := range flags {
		if open {
			ov.Cells[i] = CellOpen
		}
	}
	for _, p := range path {
		ov.set(g, p, CellPath)
	}
	ov.set(g, start, CellEndpoint)
	ov.set(g, goal, CellEndpoint)
	return ov
}

func (ov *Overlay) set(g *gridmap.Grid, p gridmap.Point, c Cell) {
	if g.Contains(p) {
		ov.Cells[g.Index(p)] = c
	}
}

// At returns the overlay value at (x,y), or gridmap.ErrOutOfBounds when
// (x,y) lies outside the overlay.
func (ov *Overlay) At(x, y int) (Cell, error) {
	if x < 0 || x >= ov.Width || y < 0 || y >= ov.Height {
		return CellBlocked, fmt.Errorf("%w: (%d,%d) outside %dx%d overlay", gridmap.ErrOutOfBounds, x, y, ov.Width, ov.Height)
	}
	return ov.Cells[y*ov.Width+x], nil
}

// Text renders the overlay, one '\n'-terminated line per row.
func (ov *Overlay) Text() string {
	return ov.draw(func(c Cell) string { return string(c.glyph()) })
}

// Styled renders the overlay with terminal colors.
func (ov *Overlay) Styled() string {
	return ov.draw(func(c Cell) string { return styleFor(c).Render(string(c.glyph())) })
}

func (ov *Overlay) draw(cell func(Cell) string) string {
	var sb strings.Builder
	sb.Grow((ov.Width + 1) * ov.Height)
	for y := 0; y < ov.Height; y++ {
		for x := 0; x < ov.Width; x++ {
			sb.WriteString(cell(ov.Cells[y*ov.Width+x]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Text renders g with path and endpoints marked.
func Text(g *gridmap.Grid, start, goal gridmap.Point, path pathfind.Path) string {
	return NewOverlay(g, start, goal, path).Text()
}

// Map renders g alone: '@' for blocked and '.' for open cells.
func Map(g *gridmap.Grid) string {
	ov := NewOverlay(g, gridmap.Pt(-1, -1), gridmap.Pt(-1, -1), nil)
	return ov.Text()
}

// Styled renders g like Text but colored for a terminal.
func Styled(g *gridmap.Grid, start, goal gridmap.Point, path pathfind.Path) string {
	return NewOverlay(g, start, goal, path).Styled()
}

// Report writes the dimensions, the path length and the rendered map.
// Path Length counts cells, so an unreachable goal reports 0.
func Report(w io.Writer, g *gridmap.Grid, start, goal gridmap.Point, path pathfind.Path, styled bool) error {
	ov := NewOverlay(g, start, goal, path)
	body := ov.Text()
	if styled {
		body = ov.Styled()
	}
	_, err := fmt.Fprintf(w, "Width: %d\nHeight: %d\nPath Length: %d\n%s",
		g.Width(), g.Height(), len(path), body)
	return err
}

// Palette for styled output.
var (
	colorWall  = lipgloss.Color("#2C4A54")
	colorFloor = lipgloss.Color("#16858E")
	colorPath  = lipgloss.Color("#F4D03F")
	colorEnd   = lipgloss.Color("#E74C3C")
)

var styles = map[Cell]lipgloss.Style{
	CellBlocked:  lipgloss.NewStyle().Foreground(colorWall),
	CellOpen:     lipgloss.NewStyle().Foreground(colorFloor),
	CellPath:     lipgloss.NewStyle().Foreground(colorPath).Bold(true),
	CellEndpoint: lipgloss.NewStyle().Foreground(colorEnd).Bold(true),
}

func styleFor(c Cell) lipgloss.Style {
	return styles[c]
}
