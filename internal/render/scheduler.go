// Package render drives the two-phase frame cycle: panes stage changes onto
// the screen's staging buffer, then one flush makes them visible together.
package render

import (
	"fmt"

	"github.com/muurk/paddyterm/internal/focus"
	"github.com/muurk/paddyterm/internal/logging"
	"github.com/muurk/paddyterm/internal/pane"
	"github.com/muurk/paddyterm/internal/surface"
)

// Frame kinds, as logged.
const (
	KindFull   = "full"
	KindUpdate = "update"
)

// Scheduler owns the screen and renders the registered panes onto it.
type Scheduler struct {
	screen   *surface.Screen
	registry *pane.Registry
	ring     *focus.Ring
}

// NewScheduler creates a scheduler. Every focus ring member must be a
// registered pane.
func NewScheduler(screen *surface.Screen, registry *pane.Registry, ring *focus.Ring) *Scheduler {
	for _, name := range ring.Members() {
		if _, ok := registry.Get(name); !ok {
			panic(fmt.Sprintf("render: focus member %q is not a registered pane", name))
		}
	}
	return &Scheduler{screen: screen, registry: registry, ring: ring}
}

// Screen returns the screen being drawn.
func (s *Scheduler) Screen() *surface.Screen { return s.screen }

// Size returns the current terminal size.
func (s *Scheduler) Size() surface.Size { return s.screen.Size() }

// Focused returns the focused pane.
func (s *Scheduler) Focused() pane.Pane {
	p, _ := s.registry.Get(s.ring.Current())
	return p
}

// FullRender redraws every pane unconditionally and flushes.
func (s *Scheduler) FullRender() string {
	size := s.screen.Size()
	s.screen.Erase()
	blits := 0
	for _, p := range s.registry.All() {
		blits += p.FullRender(s.screen, size, s.ring.IsFocused(p.Name()))
	}
	return s.flush(KindFull, blits)
}

// UpdateRender stages only what changed and flushes. When nothing changed
// the previous frame is returned and no flush is counted.
func (s *Scheduler) UpdateRender() string {
	size := s.screen.Size()
	blits := 0
	for _, p := range s.registry.All() {
		blits += p.UpdateRender(s.screen, size)
	}
	return s.flush(KindUpdate, blits)
}

func (s *Scheduler) flush(kind string, blits int) string {
	before := s.screen.Flushes()
	frame := s.screen.Flush()
	if s.screen.Flushes() != before {
		logging.LogFlush(kind, blits, s.screen.Flushes())
	}
	return frame
}

// Resize applies a new terminal size. Every pane is checked first; if any
// cannot lay itself out the resize is rejected and nothing changes.
// Otherwise all geometry is recomputed and a full render follows.
func (s *Scheduler) Resize(size surface.Size) error {
	err := s.resize(size)
	logging.LogResize(size.Rows, size.Cols, err)
	return err
}

func (s *Scheduler) resize(size surface.Size) error {
	for _, p := range s.registry.All() {
		if c, ok := p.(pane.ResizeChecker); ok {
			if err := c.CheckResize(size); err != nil {
				return err
			}
		}
	}
	s.screen.Resize(size)
	for _, p := range s.registry.All() {
		if err := p.Resize(size, s.ring.IsFocused(p.Name())); err != nil {
			// CheckResize passed, so this is a pane bug.
			return fmt.Errorf("render: resize %s: %w", p.Name(), err)
		}
	}
	s.FullRender()
	return nil
}

// AdvanceFocus moves focus to the next ring member and tells the two panes
// involved.
func (s *Scheduler) AdvanceFocus() string {
	from := s.ring.Current()
	to := s.ring.Advance()
	if p, ok := s.registry.Get(from); ok {
		p.ChangeFocus(false)
	}
	if p, ok := s.registry.Get(to); ok {
		p.ChangeFocus(true)
	}
	logging.LogFocus(from, to)
	return to
}

// HandleKey routes a navigation key to the focused pane.
func (s *Scheduler) HandleKey(k pane.Key) error {
	p := s.Focused()
	logging.LogKey(k.String(), p.Name())
	return p.HandleKey(k)
}
