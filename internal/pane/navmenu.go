package pane

import (
	"github.com/muurk/paddyterm/internal/catalog"
	"github.com/muurk/paddyterm/internal/command"
	"github.com/muurk/paddyterm/internal/surface"
)

const (
	navTitle     = "A-Z Sports"
	navMarkerCol = 2
	navTextCol   = 4
)

// NavMenu is the single-column list of catalog entries down the left edge.
// Confirming an entry emits LOAD_PAGE for its page.
type NavMenu struct {
	cat    *catalog.Catalog
	bus    command.Dispatcher
	border border
	menu   *surface.Surface
	rect   surface.Rect
	sel    selection
}

// NavCols returns the width of the menu pane for a catalog.
func NavCols(cat *catalog.Catalog) int {
	return cat.Longest() + navTextCol + navChrome
}

// NewNavMenu builds the menu with the home entry selected.
func NewNavMenu(cat *catalog.Catalog, bus command.Dispatcher, size surface.Size) *NavMenu {
	m := &NavMenu{
		cat:    cat,
		bus:    bus,
		border: newBorder(navTitle),
		menu:   surface.New(cat.Rows(), cat.Longest()+navTextCol),
		sel:    noSelection(),
	}
	if cat.Len() > 0 {
		m.sel.cur = 0
		if i, ok := cat.IndexOf("Home"); ok {
			m.sel.cur = i
		}
	}
	for _, e := range cat.Entries() {
		// The surface is sized from the catalog, so every label fits.
		_ = m.menu.Write(e.Row, navTextCol, e.Label, surface.StyleNormal)
	}
	m.rect = Compute(size, NavCols(cat)).Nav
	return m
}

// Name implements Pane.
func (m *NavMenu) Name() string { return NavMenuName }

// State returns the focus state the border was last drawn in.
func (m *NavMenu) State() State { return m.border.state() }

// Selected returns the selected entry.
func (m *NavMenu) Selected() (catalog.Entry, bool) {
	i, ok := m.sel.current()
	if !ok {
		return catalog.Entry{}, false
	}
	return m.cat.Entry(i), true
}

// Top returns the first visible menu row.
func (m *NavMenu) Top() int { return m.menu.Top() }

// ViewportRows returns how many menu rows are visible.
func (m *NavMenu) ViewportRows() int { return m.viewport().Rows }

func (m *NavMenu) viewport() surface.Rect {
	v := m.rect.Inner()
	v.Col = m.rect.Col + navMarkerCol
	v.Cols = m.menu.Cols()
	return v
}

// FullRender implements Pane.
func (m *NavMenu) FullRender(scr *surface.Screen, size surface.Size, focused bool) int {
	scr.Fill(m.rect, surface.StyleNormal)
	m.border.setFocus(focused, true)
	m.menu.MarkDirty()
	m.sel.prev = -1
	return m.UpdateRender(scr, size)
}

// UpdateRender implements Pane.
func (m *NavMenu) UpdateRender(scr *surface.Screen, _ surface.Size) int {
	m.updateMarker()
	blits := 0
	if m.border.stage(scr, m.rect) {
		blits++
	}
	v := m.viewport()
	if m.menu.Blit(scr, v.Origin(), v.Size()) {
		blits++
	}
	return blits
}

// updateMarker moves the selection marker, erasing only the stale one.
func (m *NavMenu) updateMarker() {
	cur, ok := m.sel.current()
	if !ok || cur == m.sel.prev {
		return
	}
	if m.sel.prev >= 0 {
		_ = m.menu.Write(m.cat.Entry(m.sel.prev).Row, navMarkerCol, " ", surface.StyleNormal)
	}
	_ = m.menu.Write(m.cat.Entry(cur).Row, navMarkerCol, selectionMarker, surface.StyleNormal)
	m.sel.prev = cur
}

// ChangeFocus implements Pane.
func (m *NavMenu) ChangeFocus(focused bool) {
	if m.border.setFocus(focused, false) {
		m.scroll()
	}
}

// Resize implements Pane.
func (m *NavMenu) Resize(size surface.Size, _ bool) error {
	m.rect = Compute(size, NavCols(m.cat)).Nav
	m.menu.Clamp(m.ViewportRows())
	m.scroll()
	m.menu.MarkDirty()
	m.border.dirty = true
	return nil
}

// HandleKey implements Pane. Up and Down stop at the ends of the list.
func (m *NavMenu) HandleKey(k Key) error {
	cur, ok := m.sel.current()
	if !ok {
		return nil
	}
	switch k {
	case KeyDown:
		m.sel.cur = min(cur+1, m.cat.Len()-1)
		m.scroll()
	case KeyUp:
		m.sel.cur = max(cur-1, 0)
		m.scroll()
	case KeyConfirm:
		label := m.cat.Entry(cur).Label
		return m.bus.Dispatch(command.LoadPage{Page: m.cat.MustPageID(label)})
	}
	return nil
}

func (m *NavMenu) scroll() {
	cur, ok := m.sel.current()
	if !ok {
		return
	}
	m.menu.ScrollToRow(m.cat.Entry(cur).Row, m.ViewportRows())
}
