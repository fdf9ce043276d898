package pane

import (
	"github.com/muurk/paddyterm/internal/catalog"
	"github.com/muurk/paddyterm/internal/command"
	"github.com/muurk/paddyterm/internal/content"
	"github.com/muurk/paddyterm/internal/layout"
	"github.com/muurk/paddyterm/internal/surface"
)

const (
	markerOffset = 2
	loadingTitle = "Loading..."
)

// TabTitle returns the display title of a tab.
func TabTitle(title string) string {
	if title == "IN_PLAY" {
		return "In-Play"
	}
	return title
}

// TabItems projects a page's tabs to the labels shown in the strip.
func TabItems(page *content.Page) []layout.Item {
	items := make([]layout.Item, len(page.Tabs))
	for i, t := range page.Tabs {
		items[i] = layout.Item{Label: TabTitle(t.Title), ID: t.ID}
	}
	return items
}

// TabStrip shows the current page's tabs as a grid across the top of the
// screen. Confirming a tab emits LOAD_TAB.
type TabStrip struct {
	cat     *catalog.Catalog
	bus     command.Dispatcher
	border  border
	rect    surface.Rect
	navCols int

	pageID string
	info   content.PageInfo
	items  []layout.Item
	grid   layout.Grid
	strip  *surface.Surface
	sel    selection
}

// NewTabStrip builds the strip showing a single placeholder tab with nothing
// selected. It fails when the terminal leaves no room for the strip.
func NewTabStrip(cat *catalog.Catalog, bus command.Dispatcher, size surface.Size) (*TabStrip, error) {
	navCols := NavCols(cat)
	t := &TabStrip{
		cat:     cat,
		bus:     bus,
		border:  newBorder(""),
		navCols: navCols,
		rect:    Compute(size, navCols).Tabs,
		strip:   surface.New(0, 0),
		sel:     noSelection(),
	}
	if t.rect.Cols < 2 {
		return nil, &layout.LayoutError{Width: t.rect.Cols}
	}
	if err := t.SetTabs("", content.PageInfo{}, []layout.Item{{Label: loadingTitle}}, 0, false); err != nil {
		return nil, err
	}
	return t, nil
}

// Name implements Pane.
func (t *TabStrip) Name() string { return TabStripName }

// State returns the focus state the border was last drawn in.
func (t *TabStrip) State() State { return t.border.state() }

// Grid returns the current layout.
func (t *TabStrip) Grid() layout.Grid { return t.grid }

// PageID returns the page whose tabs are shown.
func (t *TabStrip) PageID() string { return t.pageID }

// Selected returns the selected tab.
func (t *TabStrip) Selected() (layout.Position, bool) {
	i, ok := t.sel.current()
	if !ok {
		return layout.Position{}, false
	}
	return t.grid.Items[i], true
}

// Top returns the first visible grid row.
func (t *TabStrip) Top() int { return t.strip.Top() }

// ViewportRows returns how many grid rows are visible.
func (t *TabStrip) ViewportRows() int { return t.rect.Inner().Rows }

// SetTabs replaces the tab list. The layout is computed before anything is
// changed, so a LayoutError leaves the previous tabs in place. The tab with
// defaultTab as ID is selected when hasDefault is set and it exists.
func (t *TabStrip) SetTabs(pageID string, info content.PageInfo, items []layout.Item, defaultTab int, hasDefault bool) error {
	grid, err := layout.Compute(items, t.rect.Cols)
	if err != nil {
		return err
	}

	t.pageID = pageID
	t.info = info
	t.items = items
	title, _ := t.cat.Label(pageID)
	t.border.setTitle(title)
	t.border.dirty = true

	t.sel = noSelection()
	if hasDefault {
		if i, ok := grid.IndexOf(defaultTab); ok {
			t.sel.cur = i
		}
	}
	t.install(grid)
	return nil
}

// install replaces the grid and its surface and redraws every label.
func (t *TabStrip) install(grid layout.Grid) {
	t.grid = grid
	cols := 0
	if grid.Len() > 0 {
		cols = grid.Width() + 1
	}
	t.strip = surface.New(grid.Rows, cols)
	for _, p := range grid.Items {
		// The surface is sized from the grid, so every label fits.
		_ = t.strip.Write(p.Y, p.X, p.Label, surface.StyleNormal)
	}
	t.sel.prev = -1
	t.updateMarker()
	t.scroll()
}

func (t *TabStrip) viewport() surface.Rect {
	return t.rect.Inner()
}

// FullRender implements Pane.
func (t *TabStrip) FullRender(scr *surface.Screen, size surface.Size, focused bool) int {
	scr.Fill(t.rect, surface.StyleNormal)
	t.border.setFocus(focused, true)
	t.strip.MarkDirty()
	return t.UpdateRender(scr, size)
}

// UpdateRender implements Pane.
func (t *TabStrip) UpdateRender(scr *surface.Screen, _ surface.Size) int {
	t.updateMarker()
	blits := 0
	if t.border.stage(scr, t.rect) {
		blits++
	}
	v := t.viewport()
	if t.strip.Blit(scr, v.Origin(), v.Size()) {
		blits++
	}
	return blits
}

func (t *TabStrip) updateMarker() {
	cur, ok := t.sel.current()
	if !ok || cur == t.sel.prev {
		return
	}
	if t.sel.prev >= 0 {
		p := t.grid.Items[t.sel.prev]
		_ = t.strip.Write(p.Y, p.X-markerOffset, " ", surface.StyleNormal)
	}
	p := t.grid.Items[cur]
	_ = t.strip.Write(p.Y, p.X-markerOffset, selectionMarker, surface.StyleNormal)
	t.sel.prev = cur
}

// ChangeFocus implements Pane.
func (t *TabStrip) ChangeFocus(focused bool) {
	if t.border.setFocus(focused, false) {
		t.scroll()
	}
}

// CheckResize implements ResizeChecker.
func (t *TabStrip) CheckResize(size surface.Size) error {
	_, err := t.layoutFor(size)
	return err
}

func (t *TabStrip) layoutFor(size surface.Size) (layout.Grid, error) {
	r := Compute(size, t.navCols).Tabs
	if r.Cols < 2 {
		return layout.Grid{}, &layout.LayoutError{Width: r.Cols}
	}
	return layout.Compute(t.items, r.Cols)
}

// Resize implements Pane. The grid is recomputed for the new width; when it
// does not fit the previous geometry is kept and the error returned.
func (t *TabStrip) Resize(size surface.Size, _ bool) error {
	grid, err := t.layoutFor(size)
	if err != nil {
		return err
	}
	t.rect = Compute(size, t.navCols).Tabs
	t.border.dirty = true
	t.install(grid)
	return nil
}

// HandleKey implements Pane.
//
// Up and Down move a whole row and are ignored when that would leave the
// list, even if a shorter last row has an item further left. Left and Right
// never cross a row boundary.
func (t *TabStrip) HandleKey(k Key) error {
	cur, ok := t.sel.current()
	if !ok {
		return nil
	}
	cols := t.grid.Columns
	switch k {
	case KeyDown:
		if next := cur + cols; next < t.grid.Len() {
			t.sel.cur = next
		}
	case KeyUp:
		if next := cur - cols; next >= 0 {
			t.sel.cur = next
		}
	case KeyLeft:
		if cur%cols != 0 {
			t.sel.cur = cur - 1
		}
	case KeyRight:
		if cur%cols != cols-1 && cur != t.grid.Len()-1 {
			t.sel.cur = cur + 1
		}
	case KeyConfirm:
		return t.bus.Dispatch(command.LoadTab{TabID: t.grid.Items[cur].ID, PageInfo: t.info})
	}
	t.scroll()
	return nil
}

func (t *TabStrip) scroll() {
	cur, ok := t.sel.current()
	if !ok {
		return
	}
	t.strip.ScrollToRow(t.grid.Items[cur].Y, t.ViewportRows())
}
