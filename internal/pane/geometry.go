package pane

import "github.com/muurk/paddyterm/internal/surface"

const (
	// bodyTop is the first row below the header.
	bodyTop = 1
	// tabStripRows is the height of the tab strip border.
	tabStripRows = 4
	// navChrome is the border and margin around the menu surface.
	navChrome = 4
	// selectionMarker marks the selected entry of a list.
	selectionMarker = ">"
)

// Geometry is the screen rectangle of every pane for one terminal size.
type Geometry struct {
	Header  surface.Rect
	Footer  surface.Rect
	Nav     surface.Rect
	Tabs    surface.Rect
	Content surface.Rect
}

// Compute places the panes: header and footer bars on the first and last
// rows, the menu down the left, the tab strip across the top of the remaining
// width and the content list below it.
func Compute(size surface.Size, navCols int) Geometry {
	rows, cols := size.Rows, size.Cols
	contentTop := bodyTop + tabStripRows
	return Geometry{
		Header:  rect(0, 0, 1, cols),
		Footer:  rect(rows-1, 0, 1, cols),
		Nav:     rect(bodyTop, 0, rows-2, navCols),
		Tabs:    rect(bodyTop, navCols, tabStripRows, cols-navCols),
		Content: rect(contentTop, navCols+1, rows-contentTop-1, cols-navCols-2),
	}
}

func rect(row, col, rows, cols int) surface.Rect {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	if row < 0 {
		row = 0
	}
	return surface.Rect{Row: row, Col: col, Rows: rows, Cols: cols}
}

// selection is an index into a list that may be empty, plus the index whose
// marker is currently drawn.
type selection struct {
	cur  int
	prev int
}

func noSelection() selection {
	return selection{cur: -1, prev: -1}
}

func (s selection) current() (int, bool) {
	return s.cur, s.cur >= 0
}
