// Package layout arranges labelled items into a grid under a width limit.
package layout

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// ItemPadding is the number of cells added to the longest label to form a
// column, and the left margin before the first column.
const ItemPadding = 4

// Item is one labelled entry. ID is opaque to the layout.
type Item struct {
	Label string
	ID    int
}

// Position is an Item with its computed place in the grid. Row and Col are
// grid coordinates; Y and X are the cell coordinates of the label.
type Position struct {
	Item
	Row int
	Col int
	Y   int
	X   int
}

// Grid is the result of a layout pass.
type Grid struct {
	Columns int
	Rows    int
	Longest int
	Items   []Position
}

// LayoutError reports that not even one column fits.
type LayoutError struct {
	Width   int
	Longest int
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("layout: too narrow: %d cells cannot hold a column of %d", e.Width, e.Longest+ItemPadding)
}

// Compute lays items out left-to-right, top-to-bottom with every column sized
// to the longest label. An empty item list yields an empty grid.
func Compute(items []Item, width int) (Grid, error) {
	if len(items) == 0 {
		return Grid{}, nil
	}

	longest := 0
	for _, it := range items {
		if w := runewidth.StringWidth(it.Label); w > longest {
			longest = w
		}
	}

	columns := floorDiv(width-ItemPadding, longest+ItemPadding)
	if columns < 1 {
		return Grid{}, &LayoutError{Width: width, Longest: longest}
	}

	g := Grid{
		Columns: columns,
		Rows:    (len(items) + columns - 1) / columns,
		Longest: longest,
		Items:   make([]Position, len(items)),
	}
	for i, it := range items {
		row, col := i/columns, i%columns
		g.Items[i] = Position{
			Item: it,
			Row:  row,
			Col:  col,
			Y:    row,
			X:    col*(longest+ItemPadding) + ItemPadding,
		}
	}
	return g, nil
}

// CellWidth is the width of one column.
func (g Grid) CellWidth() int {
	return g.Longest + ItemPadding
}

// Width is the number of cells needed to hold every column.
func (g Grid) Width() int {
	return g.Columns * g.CellWidth()
}

// Len returns the number of items.
func (g Grid) Len() int {
	return len(g.Items)
}

// IndexOf returns the index of the item with the given ID.
func (g Grid) IndexOf(id int) (int, bool) {
	for i, p := range g.Items {
		if p.ID == id {
			return i, true
		}
	}
	return 0, false
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
