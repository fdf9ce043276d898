package surface

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Palette maps cell styles to lipgloss styles. Styles without an entry are
// rendered as plain text.
type Palette map[Style]lipgloss.Style

// Box drawing characters used for pane borders.
const (
	boxTopLeft     = '┌'
	boxTopRight    = '┐'
	boxBottomLeft  = '└'
	boxBottomRight = '┘'
	boxHorizontal  = '─'
	boxVertical    = '│'
)

// Screen is the physical terminal image. Drawing goes to a staging buffer;
// Flush turns the staging buffer into the visible frame in one step.
type Screen struct {
	staged  []Cell
	visible []Cell
	size    Size
	pending bool
	frame   string
	flushes int
	palette Palette
}

// NewScreen creates a blank screen of the given size.
func NewScreen(size Size, palette Palette) *Screen {
	s := &Screen{palette: palette}
	s.Resize(size)
	return s
}

// Size returns the screen extent.
func (s *Screen) Size() Size { return s.size }

// Resize reallocates the screen and erases it. The visible frame is kept
// until the next flush.
func (s *Screen) Resize(size Size) {
	if size.Rows < 0 {
		size.Rows = 0
	}
	if size.Cols < 0 {
		size.Cols = 0
	}
	s.size = size
	s.staged = make([]Cell, size.Rows*size.Cols)
	s.Erase()
}

// Erase blanks the staging buffer.
func (s *Screen) Erase() {
	for i := range s.staged {
		s.staged[i] = Blank(StyleNormal)
	}
	s.pending = true
}

// Touch marks the staging buffer as changed.
func (s *Screen) Touch() { s.pending = true }

// Pending reports whether anything was staged since the last flush.
func (s *Screen) Pending() bool { return s.pending }

// Set stages one cell. Coordinates outside the screen are ignored.
func (s *Screen) Set(row, col int, c Cell) {
	if row < 0 || row >= s.size.Rows || col < 0 || col >= s.size.Cols {
		return
	}
	s.staged[row*s.size.Cols+col] = c
}

// Fill stages blank cells of the given style over rect.
func (s *Screen) Fill(rect Rect, style Style) {
	for r := 0; r < rect.Rows; r++ {
		for c := 0; c < rect.Cols; c++ {
			s.Set(rect.Row+r, rect.Col+c, Blank(style))
		}
	}
	s.pending = true
}

// WriteString stages text at (row, col), clipped to the screen edge.
func (s *Screen) WriteString(row, col int, text string, style Style) {
	putRunes(col, text, style, func(c int, cell Cell) {
		s.Set(row, c, cell)
	})
	s.pending = true
}

// Box stages a single-line border around rect with title at column 3 of the
// top edge. The interior is not touched.
func (s *Screen) Box(rect Rect, title string, style Style) {
	if rect.Rows < 2 || rect.Cols < 2 {
		return
	}
	bottom := rect.Row + rect.Rows - 1
	right := rect.Col + rect.Cols - 1
	for c := rect.Col + 1; c < right; c++ {
		s.Set(rect.Row, c, Cell{Rune: boxHorizontal, Style: style})
		s.Set(bottom, c, Cell{Rune: boxHorizontal, Style: style})
	}
	for r := rect.Row + 1; r < bottom; r++ {
		s.Set(r, rect.Col, Cell{Rune: boxVertical, Style: style})
		s.Set(r, right, Cell{Rune: boxVertical, Style: style})
	}
	s.Set(rect.Row, rect.Col, Cell{Rune: boxTopLeft, Style: style})
	s.Set(rect.Row, right, Cell{Rune: boxTopRight, Style: style})
	s.Set(bottom, rect.Col, Cell{Rune: boxBottomLeft, Style: style})
	s.Set(bottom, right, Cell{Rune: boxBottomRight, Style: style})

	if title != "" && rect.Cols > 4 {
		room := rect.Cols - 4
		if TextWidth(title) > room {
			title = runewidth.Truncate(title, room, "")
		}
		putRunes(rect.Col+3, title, style, func(c int, cell Cell) {
			if c < right {
				s.Set(rect.Row, c, cell)
			}
		})
	}
	s.pending = true
}

// Flush makes the staged image visible and returns the rendered frame. When
// nothing was staged the previous frame is returned unchanged.
func (s *Screen) Flush() string {
	if !s.pending {
		return s.frame
	}
	s.visible = append(s.visible[:0], s.staged...)
	s.frame = s.render()
	s.pending = false
	s.flushes++
	return s.frame
}

// Frame returns the last flushed frame.
func (s *Screen) Frame() string { return s.frame }

// Flushes returns how many frames have been produced.
func (s *Screen) Flushes() int { return s.flushes }

// Line returns the plain text of one visible row, trailing spaces removed.
func (s *Screen) Line(row int) string {
	return strings.TrimRight(s.rowText(s.visible, row), " ")
}

// Text returns the plain text of the visible frame.
func (s *Screen) Text() string {
	lines := make([]string, s.size.Rows)
	for r := range lines {
		lines[r] = s.Line(r)
	}
	return strings.Join(lines, "\n")
}

// StyleAt returns the style of a visible cell.
func (s *Screen) StyleAt(row, col int) Style {
	i := row*s.size.Cols + col
	if row < 0 || col < 0 || col >= s.size.Cols || i >= len(s.visible) {
		return StyleNormal
	}
	return s.visible[i].Style
}

func (s *Screen) rowText(cells []Cell, row int) string {
	if row < 0 || (row+1)*s.size.Cols > len(cells) {
		return ""
	}
	var b strings.Builder
	covered := 0
	for _, c := range cells[row*s.size.Cols : (row+1)*s.size.Cols] {
		switch {
		case c.Rune == 0 && covered > 0:
			covered--
			continue
		case c.Rune == 0:
			b.WriteByte(' ')
		default:
			b.WriteString(c.Text())
		}
		covered = max(c.Width()-1, 0)
	}
	return b.String()
}

// render groups each row into runs of equal style and styles each run once.
func (s *Screen) render() string {
	lines := make([]string, s.size.Rows)
	for r := 0; r < s.size.Rows; r++ {
		row := s.visible[r*s.size.Cols : (r+1)*s.size.Cols]
		var b strings.Builder
		var run strings.Builder
		runStyle := StyleNormal
		covered := 0
		emit := func() {
			if run.Len() == 0 {
				return
			}
			if st, ok := s.palette[runStyle]; ok {
				b.WriteString(st.Render(run.String()))
			} else {
				b.WriteString(run.String())
			}
			run.Reset()
		}
		for _, c := range row {
			if c.Rune == 0 && covered > 0 {
				covered--
				continue
			}
			if c.Style != runStyle {
				emit()
				runStyle = c.Style
			}
			if c.Rune == 0 {
				run.WriteByte(' ')
			} else {
				run.WriteString(c.Text())
			}
			covered = max(c.Width()-1, 0)
		}
		emit()
		lines[r] = b.String()
	}
	return strings.Join(lines, "\n")
}
