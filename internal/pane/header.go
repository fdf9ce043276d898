package pane

import (
	"github.com/mattn/go-runewidth"

	"github.com/muurk/paddyterm/internal/surface"
)

const (
	headerTitle = "PaddyCurses"
	headerLogin = "Login [^L]"
)

// Header is the title bar on the first row.
type Header struct {
	bar  *surface.Surface
	rect surface.Rect
}

// NewHeader builds the title bar for a terminal size.
func NewHeader(size surface.Size) *Header {
	h := &Header{}
	h.layout(size)
	return h
}

// Name implements Pane.
func (h *Header) Name() string { return HeaderName }

func (h *Header) layout(size surface.Size) {
	h.rect = Compute(size, 0).Header
	cols := h.rect.Cols
	bar := surface.New(1, cols)
	bar.Fill(surface.StyleBar)

	title := runewidth.Truncate(headerTitle, cols, "")
	_ = bar.Write(0, (cols-surface.TextWidth(title))/2, title, surface.StyleBarBold)

	// The login hint is dropped rather than drawn over the title.
	loginCol := cols - surface.TextWidth(headerLogin) - 2
	titleEnd := (cols + surface.TextWidth(title)) / 2
	if loginCol > titleEnd {
		_ = bar.Write(0, loginCol, headerLogin, surface.StyleBar)
	}
	h.bar = bar
}

// Line returns the text of the bar.
func (h *Header) Line() string { return h.bar.Line(0) }

// FullRender implements Pane.
func (h *Header) FullRender(scr *surface.Screen, size surface.Size, _ bool) int {
	h.bar.MarkDirty()
	return h.UpdateRender(scr, size)
}

// UpdateRender implements Pane.
func (h *Header) UpdateRender(scr *surface.Screen, _ surface.Size) int {
	if h.bar.Blit(scr, h.rect.Origin(), h.rect.Size()) {
		return 1
	}
	return 0
}

// ChangeFocus implements Pane. The header never holds focus.
func (h *Header) ChangeFocus(bool) {}

// Resize implements Pane.
func (h *Header) Resize(size surface.Size, _ bool) error {
	h.layout(size)
	return nil
}

// HandleKey implements Pane.
func (h *Header) HandleKey(Key) error { return nil }
