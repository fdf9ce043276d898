package surface

import (
	"errors"
	"fmt"
	"strings"
)

// ErrOutOfBounds is returned when a write does not fit inside a surface.
var ErrOutOfBounds = errors.New("surface: write out of bounds")

// Surface is a virtual canvas of fixed dimensions with a scroll offset.
type Surface struct {
	cells []Cell
	rows  int
	cols  int
	top   int
	dirty bool
}

// New allocates a blank surface. Negative dimensions are treated as zero.
func New(rows, cols int) *Surface {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	s := &Surface{
		cells: make([]Cell, rows*cols),
		rows:  rows,
		cols:  cols,
		dirty: true,
	}
	s.Erase()
	return s
}

// Rows returns the allocated row count.
func (s *Surface) Rows() int { return s.rows }

// Cols returns the allocated column count.
func (s *Surface) Cols() int { return s.cols }

// Size returns the allocated extent.
func (s *Surface) Size() Size { return Size{Rows: s.rows, Cols: s.cols} }

// Top returns the first visible row.
func (s *Surface) Top() int { return s.top }

// Dirty reports whether the surface changed since it was last blitted.
func (s *Surface) Dirty() bool { return s.dirty }

// MarkDirty forces the next Blit to copy the surface.
func (s *Surface) MarkDirty() { s.dirty = true }

// Erase blanks every cell. The scroll offset is kept.
func (s *Surface) Erase() {
	s.Fill(StyleNormal)
}

// Fill blanks every cell using style as the background.
func (s *Surface) Fill(style Style) {
	for i := range s.cells {
		s.cells[i] = Blank(style)
	}
	s.dirty = true
}

// Write places text at (row, col). The whole text must fit; nothing is
// written otherwise.
func (s *Surface) Write(row, col int, text string, style Style) error {
	width := TextWidth(text)
	if row < 0 || row >= s.rows || col < 0 || col+width > s.cols || (width == 0 && col >= s.cols) {
		return fmt.Errorf("%w: %q at (%d,%d) on %dx%d surface", ErrOutOfBounds, text, row, col, s.rows, s.cols)
	}
	putRunes(col, text, style, func(c int, cell Cell) {
		if c < s.cols {
			s.cells[row*s.cols+c] = cell
		}
	})
	s.dirty = true
	return nil
}

// Cell returns the cell at (row, col), or a blank cell outside the surface.
func (s *Surface) Cell(row, col int) Cell {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return Blank(StyleNormal)
	}
	return s.cells[row*s.cols+col]
}

// Line returns the text of one row with trailing spaces removed.
func (s *Surface) Line(row int) string {
	if row < 0 || row >= s.rows {
		return ""
	}
	var b strings.Builder
	for col := 0; col < s.cols; col++ {
		b.WriteString(s.cells[row*s.cols+col].Text())
	}
	return strings.TrimRight(b.String(), " ")
}

// ScrollToRow moves the window the minimum distance needed for target to be
// visible in a viewport of viewportRows rows. It reports whether the window
// moved.
func (s *Surface) ScrollToRow(target, viewportRows int) bool {
	if viewportRows < 1 {
		return false
	}
	before := s.top
	switch {
	case target < s.top:
		s.top = target
	case target > s.top+viewportRows-1:
		s.top = target - viewportRows + 1
	}
	s.clamp(viewportRows)
	if s.top != before {
		s.dirty = true
		return true
	}
	return false
}

// ScrollBy moves the window by delta rows, bounded by the surface extent.
func (s *Surface) ScrollBy(delta, viewportRows int) bool {
	before := s.top
	s.top += delta
	s.clamp(viewportRows)
	if s.top != before {
		s.dirty = true
		return true
	}
	return false
}

// Clamp re-applies the scroll bounds for a new viewport height, as needed
// after a resize.
func (s *Surface) Clamp(viewportRows int) {
	before := s.top
	s.clamp(viewportRows)
	if s.top != before {
		s.dirty = true
	}
}

func (s *Surface) clamp(viewportRows int) {
	if viewportRows < 1 {
		viewportRows = 1
	}
	limit := s.rows - viewportRows
	if limit < 0 {
		limit = 0
	}
	if s.top > limit {
		s.top = limit
	}
	if s.top < 0 {
		s.top = 0
	}
}

// Blit copies the visible window onto dst at origin. The window is viewport
// cells large; parts of it beyond the surface are blanked. A clean surface is
// left alone and Blit returns false.
func (s *Surface) Blit(dst *Screen, origin Point, viewport Size) bool {
	if !s.dirty {
		return false
	}
	for r := 0; r < viewport.Rows; r++ {
		for c := 0; c < viewport.Cols; c++ {
			dst.Set(origin.Row+r, origin.Col+c, s.Cell(s.top+r, c))
		}
	}
	dst.Touch()
	s.dirty = false
	return true
}
