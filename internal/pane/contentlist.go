package pane

import (
	"fmt"

	"github.com/muurk/paddyterm/internal/content"
	"github.com/muurk/paddyterm/internal/surface"
)

const (
	contentTitle = "Cards & Coupons"
	cardIndent   = "  "
	couponIndent = "    "
)

// FlattenTab turns a tab into display lines: one line per card title, each
// followed by one line per coupon.
func FlattenTab(tab content.Tab) []string {
	var lines []string
	for _, card := range tab.Cards {
		lines = append(lines, cardIndent+card.Title)
		for _, c := range card.Coupons {
			lines = append(lines, couponIndent+CouponLine(c))
		}
	}
	return lines
}

// CouponLine is the text shown for a coupon.
func CouponLine(c content.Coupon) string {
	if c.Title != "" {
		return c.Title
	}
	return fmt.Sprintf("%s for event %d", c.Type, c.EventID)
}

// ContentList shows the cards and coupons of the selected tab. It has no
// selection; Up and Down scroll the view.
type ContentList struct {
	border  border
	rect    surface.Rect
	navCols int

	page  *content.Page
	info  content.PageInfo
	tabID int
	lines []string
	list  *surface.Surface
}

// NewContentList builds the list showing a loading placeholder.
func NewContentList(navCols int, size surface.Size) *ContentList {
	c := &ContentList{
		border:  newBorder(contentTitle),
		navCols: navCols,
		rect:    Compute(size, navCols).Content,
	}
	c.setLines([]string{cardIndent + loadingTitle})
	return c
}

// Name implements Pane.
func (c *ContentList) Name() string { return ContentListName }

// State returns the focus state the border was last drawn in.
func (c *ContentList) State() State { return c.border.state() }

// Lines returns the lines currently displayed.
func (c *ContentList) Lines() []string {
	return append([]string(nil), c.lines...)
}

// Page returns the loaded page, or nil before the first load.
func (c *ContentList) Page() *content.Page { return c.page }

// TabID returns the tab being shown.
func (c *ContentList) TabID() int { return c.tabID }

// Top returns the first visible line.
func (c *ContentList) Top() int { return c.list.Top() }

// ViewportRows returns how many lines are visible.
func (c *ContentList) ViewportRows() int { return c.rect.Inner().Rows }

// SetPage hands the list a newly loaded page. Nothing is displayed until a
// tab is shown.
func (c *ContentList) SetPage(page *content.Page) {
	c.page = page
	c.info = page.Info
}

// ShowTab replaces the display with the given tab of the loaded page. A tab
// the page does not have shows as empty and is reported as false.
func (c *ContentList) ShowTab(tabID int, info content.PageInfo) bool {
	c.tabID = tabID
	c.info = info
	var tab content.Tab
	ok := false
	if c.page != nil {
		tab, ok = c.page.Tab(tabID)
	}
	c.setLines(FlattenTab(tab))
	return ok
}

func (c *ContentList) setLines(lines []string) {
	cols := 0
	for _, l := range lines {
		cols = max(cols, surface.TextWidth(l))
	}
	list := surface.New(len(lines), cols)
	for i, l := range lines {
		_ = list.Write(i, 0, l, surface.StyleNormal)
	}
	c.lines = lines
	c.list = list
}

// FullRender implements Pane.
func (c *ContentList) FullRender(scr *surface.Screen, size surface.Size, focused bool) int {
	scr.Fill(c.rect, surface.StyleNormal)
	c.border.setFocus(focused, true)
	c.list.MarkDirty()
	return c.UpdateRender(scr, size)
}

// UpdateRender implements Pane.
func (c *ContentList) UpdateRender(scr *surface.Screen, _ surface.Size) int {
	blits := 0
	if c.border.stage(scr, c.rect) {
		blits++
	}
	v := c.rect.Inner()
	if c.list.Blit(scr, v.Origin(), v.Size()) {
		blits++
	}
	return blits
}

// ChangeFocus implements Pane.
func (c *ContentList) ChangeFocus(focused bool) {
	c.border.setFocus(focused, false)
}

// Resize implements Pane.
func (c *ContentList) Resize(size surface.Size, _ bool) error {
	c.rect = Compute(size, c.navCols).Content
	c.list.Clamp(c.ViewportRows())
	c.list.MarkDirty()
	c.border.dirty = true
	return nil
}

// HandleKey implements Pane.
func (c *ContentList) HandleKey(k Key) error {
	switch k {
	case KeyDown:
		c.list.ScrollBy(1, c.ViewportRows())
	case KeyUp:
		c.list.ScrollBy(-1, c.ViewportRows())
	}
	return nil
}
