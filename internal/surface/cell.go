package surface

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Style identifies how a cell is coloured when the screen is flushed.
// The mapping to real colours lives in a Palette.
type Style int

const (
	StyleNormal  Style = iota // default text
	StyleBorder               // unfocused pane border
	StyleFocused              // focused pane border
	StyleBar                  // header and footer bars
	StyleBarBold              // emphasised text on a bar
)

// String returns the style name, used in log output.
func (s Style) String() string {
	switch s {
	case StyleNormal:
		return "normal"
	case StyleBorder:
		return "border"
	case StyleFocused:
		return "focused"
	case StyleBar:
		return "bar"
	case StyleBarBold:
		return "bar-bold"
	default:
		return "unknown"
	}
}

// Cell is one character position holding a grapheme cluster: Rune is its
// first rune and Tail the rest (modifiers, joiners). A zero Rune marks a
// cell covered by the wide cluster to its left and is skipped when rendering.
type Cell struct {
	Rune  rune
	Tail  string
	Style Style
}

// Text returns the cluster stored in the cell, or "" for a continuation cell.
func (c Cell) Text() string {
	if c.Rune == 0 {
		return ""
	}
	return string(c.Rune) + c.Tail
}

// Width returns the number of columns the cell's cluster covers.
func (c Cell) Width() int {
	if c.Rune == 0 {
		return 0
	}
	if c.Tail == "" {
		return runewidth.RuneWidth(c.Rune)
	}
	return runewidth.StringWidth(c.Text())
}

// Blank returns an empty cell in the given style.
func Blank(style Style) Cell {
	return Cell{Rune: ' ', Style: style}
}

// Point is a cell coordinate.
type Point struct {
	Row int
	Col int
}

// Size is a cell extent.
type Size struct {
	Rows int
	Cols int
}

// Rect is a positioned extent.
type Rect struct {
	Row  int
	Col  int
	Rows int
	Cols int
}

// Origin returns the top-left corner of the rectangle.
func (r Rect) Origin() Point {
	return Point{Row: r.Row, Col: r.Col}
}

// Size returns the extent of the rectangle.
func (r Rect) Size() Size {
	return Size{Rows: r.Rows, Cols: r.Cols}
}

// Inner returns the rectangle inset by one cell on every side.
func (r Rect) Inner() Rect {
	inner := Rect{Row: r.Row + 1, Col: r.Col + 1, Rows: r.Rows - 2, Cols: r.Cols - 2}
	if inner.Rows < 0 {
		inner.Rows = 0
	}
	if inner.Cols < 0 {
		inner.Cols = 0
	}
	return inner
}

// TextWidth returns the number of cells text occupies.
func TextWidth(text string) int {
	return runewidth.StringWidth(text)
}

// putRunes lays text out as cells starting at col, calling set for every cell.
// Each grapheme cluster takes one cell plus a continuation cell for every
// extra column, measured the same way TextWidth measures the whole string.
func putRunes(col int, text string, style Style, set func(col int, c Cell)) {
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		cluster := g.Str()
		w := runewidth.StringWidth(cluster)
		if w == 0 {
			continue
		}
		runes := g.Runes()
		set(col, Cell{Rune: runes[0], Tail: string(runes[1:]), Style: style})
		for i := 1; i < w; i++ {
			set(col+i, Cell{Rune: 0, Style: style})
		}
		col += w
	}
}
