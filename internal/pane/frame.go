package pane

import "github.com/muurk/paddyterm/internal/surface"

// State is the focus state of a bordered pane.
type State int

const (
	StateIdle State = iota
	StateFocused
)

func (s State) String() string {
	if s == StateFocused {
		return "focused"
	}
	return "idle"
}

// border is the titled frame around a pane. It remembers the focus state it
// was last drawn in so a repeated notification does not cause a redraw.
type border struct {
	title   string
	focused bool
	dirty   bool
}

func newBorder(title string) border {
	return border{title: title, dirty: true}
}

// setFocus records the focus state and reports whether a redraw is due.
func (b *border) setFocus(focused, always bool) bool {
	if !always && b.focused == focused {
		return false
	}
	b.focused = focused
	b.dirty = true
	return true
}

func (b *border) setTitle(title string) {
	if b.title != title {
		b.title = title
		b.dirty = true
	}
}

func (b *border) state() State {
	if b.focused {
		return StateFocused
	}
	return StateIdle
}

// stage draws the frame when it changed. It reports whether it drew.
func (b *border) stage(scr *surface.Screen, r surface.Rect) bool {
	if !b.dirty {
		return false
	}
	style := surface.StyleBorder
	if b.focused {
		style = surface.StyleFocused
	}
	scr.Box(r, b.title, style)
	b.dirty = false
	return true
}
