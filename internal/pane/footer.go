package pane

import (
	"github.com/mattn/go-runewidth"

	"github.com/muurk/paddyterm/internal/surface"
)

// Footer is the status bar on the last row: key hints on the left and a
// status message on the right.
type Footer struct {
	hints  string
	status string
	bar    *surface.Surface
	rect   surface.Rect
	stale  bool
}

// NewFooter builds the status bar.
func NewFooter(hints string, size surface.Size) *Footer {
	return &Footer{hints: hints, rect: Compute(size, 0).Footer, stale: true}
}

// Name implements Pane.
func (f *Footer) Name() string { return FooterName }

// Status returns the status message.
func (f *Footer) Status() string { return f.status }

// SetStatus replaces the status message. An empty message clears it.
func (f *Footer) SetStatus(msg string) {
	if msg != f.status {
		f.status = msg
		f.stale = true
	}
}

// Line returns the text of the bar as last drawn.
func (f *Footer) Line() string {
	f.redraw()
	return f.bar.Line(0)
}

func (f *Footer) redraw() {
	if !f.stale && f.bar != nil {
		return
	}
	cols := f.rect.Cols
	bar := surface.New(1, cols)
	bar.Fill(surface.StyleBar)

	hints := runewidth.Truncate(f.hints, max(cols-1, 0), "")
	_ = bar.Write(0, 1, hints, surface.StyleBar)

	if f.status != "" {
		room := cols - surface.TextWidth(hints) - 3
		if room > 0 {
			status := runewidth.Truncate(f.status, room, "")
			_ = bar.Write(0, cols-surface.TextWidth(status)-1, status, surface.StyleBarBold)
		}
	}
	f.bar = bar
	f.stale = false
}

// FullRender implements Pane.
func (f *Footer) FullRender(scr *surface.Screen, size surface.Size, _ bool) int {
	f.redraw()
	f.bar.MarkDirty()
	return f.UpdateRender(scr, size)
}

// UpdateRender implements Pane.
func (f *Footer) UpdateRender(scr *surface.Screen, _ surface.Size) int {
	f.redraw()
	if f.bar.Blit(scr, f.rect.Origin(), f.rect.Size()) {
		return 1
	}
	return 0
}

// ChangeFocus implements Pane. The footer never holds focus.
func (f *Footer) ChangeFocus(bool) {}

// Resize implements Pane.
func (f *Footer) Resize(size surface.Size, _ bool) error {
	f.rect = Compute(size, 0).Footer
	f.stale = true
	return nil
}

// HandleKey implements Pane.
func (f *Footer) HandleKey(Key) error { return nil }
