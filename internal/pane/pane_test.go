package pane

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/muurk/paddyterm/internal/catalog"
	"github.com/muurk/paddyterm/internal/command"
	"github.com/muurk/paddyterm/internal/content"
	"github.com/muurk/paddyterm/internal/layout"
	"github.com/muurk/paddyterm/internal/surface"
)

var std = surface.Size{Rows: 24, Cols: 80}

type recorder struct {
	cmds []command.Command
}

func (r *recorder) Dispatch(cmd command.Command) error {
	r.cmds = append(r.cmds, cmd)
	return nil
}

// span returns the cells [from, to) of a screen line.
func span(line string, from, to int) string {
	r := []rune(line)
	return string(r[from:to])
}

func items(labels ...string) []layout.Item {
	out := make([]layout.Item, len(labels))
	for i, l := range labels {
		out[i] = layout.Item{Label: l, ID: 100 + i}
	}
	return out
}

func TestGeometry(t *testing.T) {
	g := Compute(std, 26)
	want := Geometry{
		Header:  surface.Rect{Row: 0, Col: 0, Rows: 1, Cols: 80},
		Footer:  surface.Rect{Row: 23, Col: 0, Rows: 1, Cols: 80},
		Nav:     surface.Rect{Row: 1, Col: 0, Rows: 22, Cols: 26},
		Tabs:    surface.Rect{Row: 1, Col: 26, Rows: 4, Cols: 54},
		Content: surface.Rect{Row: 5, Col: 27, Rows: 18, Cols: 52},
	}
	if g != want {
		t.Errorf("Compute() = %+v, want %+v", g, want)
	}
}

func TestNavMenuSelectAndConfirm(t *testing.T) {
	rec := &recorder{}
	m := NewNavMenu(catalog.Default(), rec, std)

	for i := 0; i < 3; i++ {
		if err := m.HandleKey(KeyDown); err != nil {
			t.Fatalf("HandleKey(down) error = %v", err)
		}
	}
	e, ok := m.Selected()
	if !ok || e.Label != "American Football" {
		t.Fatalf("Selected() = %q, %v, want American Football", e.Label, ok)
	}

	if err := m.HandleKey(KeyConfirm); err != nil {
		t.Fatalf("HandleKey(confirm) error = %v", err)
	}
	want := []command.Command{command.LoadPage{Page: "AMERICAN FOOTBALL"}}
	if !reflect.DeepEqual(rec.cmds, want) {
		t.Errorf("dispatched %v, want %v", rec.cmds, want)
	}
}

func TestNavMenuClamps(t *testing.T) {
	cat := catalog.Default()
	m := NewNavMenu(cat, &recorder{}, std)

	_ = m.HandleKey(KeyUp)
	if e, _ := m.Selected(); e.Label != "Home" {
		t.Errorf("Up at first entry selected %q, want Home", e.Label)
	}

	for i := 0; i < cat.Len()+5; i++ {
		_ = m.HandleKey(KeyDown)
	}
	if e, _ := m.Selected(); e.Label != "Winter Sports" {
		t.Errorf("Down past the end selected %q, want Winter Sports", e.Label)
	}
}

func TestNavMenuScrollKeepsSelectionVisible(t *testing.T) {
	cat := catalog.Default()
	size := surface.Size{Rows: 10, Cols: 80}
	m := NewNavMenu(cat, &recorder{}, size)
	vp := m.ViewportRows()
	if vp != 6 {
		t.Fatalf("ViewportRows() = %d, want 6", vp)
	}

	check := func(step string) {
		t.Helper()
		e, _ := m.Selected()
		if top := m.Top(); e.Row < top || e.Row >= top+vp {
			t.Fatalf("%s: row %d outside window [%d,%d)", step, e.Row, top, top+vp)
		}
		if top := m.Top(); top < 0 || top > cat.Rows()-vp {
			t.Fatalf("%s: top %d out of range", step, top)
		}
	}
	for i := 0; i < cat.Len(); i++ {
		_ = m.HandleKey(KeyDown)
		check("down")
	}
	if got, want := m.Top(), cat.Rows()-vp; got != want {
		t.Errorf("Top() at end = %d, want %d", got, want)
	}
	for i := 0; i < cat.Len(); i++ {
		_ = m.HandleKey(KeyUp)
		check("up")
	}
	if m.Top() != 0 {
		t.Errorf("Top() back at start = %d, want 0", m.Top())
	}
}

func TestNavMenuMinimalScroll(t *testing.T) {
	m := NewNavMenu(catalog.Default(), &recorder{}, surface.Size{Rows: 10, Cols: 80})
	// Rows 0..5 are visible; moving within them must not scroll.
	for i := 0; i < 4; i++ {
		_ = m.HandleKey(KeyDown)
	}
	if m.Top() != 0 {
		t.Fatalf("Top() = %d, want 0", m.Top())
	}
	_ = m.HandleKey(KeyDown)
	_ = m.HandleKey(KeyDown)
	e, _ := m.Selected()
	if got, want := m.Top(), e.Row-5; got != want {
		t.Errorf("Top() = %d, want %d", got, want)
	}
}

func TestNavMenuRender(t *testing.T) {
	scr := surface.NewScreen(std, nil)
	m := NewNavMenu(catalog.Default(), &recorder{}, std)

	if n := m.FullRender(scr, std, true); n != 2 {
		t.Errorf("FullRender() blits = %d, want 2", n)
	}
	scr.Flush()
	if got := span(scr.Line(1), 0, 14); got != "┌──A-Z Sports─" {
		t.Errorf("border = %q", got)
	}
	if got := span(scr.Line(2), 0, 10); got != "│   > Home" {
		t.Errorf("first row = %q", got)
	}
	if scr.StyleAt(1, 0) != surface.StyleFocused {
		t.Errorf("border style = %v, want focused", scr.StyleAt(1, 0))
	}

	if n := m.UpdateRender(scr, std); n != 0 {
		t.Errorf("UpdateRender() with no change blits = %d, want 0", n)
	}
	_ = m.HandleKey(KeyDown)
	if n := m.UpdateRender(scr, std); n != 1 {
		t.Errorf("UpdateRender() after move blits = %d, want 1", n)
	}
	scr.Flush()
	if got := span(scr.Line(2), 0, 10); got != "│     Home" {
		t.Errorf("stale marker left: %q", got)
	}
	if got := span(scr.Line(3), 0, 12); got != "│   > Search" {
		t.Errorf("second row = %q", got)
	}
}

func TestFocusChangeIsIdempotent(t *testing.T) {
	scr := surface.NewScreen(std, nil)
	m := NewNavMenu(catalog.Default(), &recorder{}, std)
	m.FullRender(scr, std, false)

	m.ChangeFocus(false)
	if n := m.UpdateRender(scr, std); n != 0 {
		t.Errorf("repeated unfocus blits = %d, want 0", n)
	}
	m.ChangeFocus(true)
	if m.State() != StateFocused {
		t.Fatalf("State() = %v, want focused", m.State())
	}
	if n := m.UpdateRender(scr, std); n != 1 {
		t.Errorf("focus transition blits = %d, want 1", n)
	}
	m.ChangeFocus(true)
	if n := m.UpdateRender(scr, std); n != 0 {
		t.Errorf("repeated focus blits = %d, want 0", n)
	}
}

func newStrip(t *testing.T, rec *recorder, labels ...string) *TabStrip {
	t.Helper()
	s, err := NewTabStrip(catalog.Default(), rec, std)
	if err != nil {
		t.Fatalf("NewTabStrip() error = %v", err)
	}
	info := content.PageInfo{Type: "HOMEPAGE", Name: "Home"}
	if err := s.SetTabs(catalog.HomePageID, info, items(labels...), 100, true); err != nil {
		t.Fatalf("SetTabs() error = %v", err)
	}
	return s
}

func TestTabStripPlaceholder(t *testing.T) {
	s, err := NewTabStrip(catalog.Default(), &recorder{}, std)
	if err != nil {
		t.Fatalf("NewTabStrip() error = %v", err)
	}
	if _, ok := s.Selected(); ok {
		t.Error("placeholder has a selection")
	}
	if g := s.Grid(); g.Len() != 1 || g.Items[0].Label != "Loading..." {
		t.Errorf("Grid() = %+v", g)
	}
	if err := s.HandleKey(KeyConfirm); err != nil {
		t.Errorf("HandleKey() error = %v", err)
	}
}

func TestTabStripGridNavigation(t *testing.T) {
	// 54 cells hold four columns of 8-wide labels.
	s := newStrip(t, &recorder{}, "Today", "Tomorrow", "Future", "Racing", "Coupons", "Specials")
	if c := s.Grid().Columns; c != 4 {
		t.Fatalf("Columns = %d, want 4", c)
	}

	tests := []struct {
		name  string
		start int
		key   Key
		want  int
	}{
		{"down one row", 0, KeyDown, 4},
		{"down past the end", 4, KeyDown, 4},
		// The short last row has no item below index 2, so the move is
		// discarded rather than clamped to the final item.
		{"down into short row", 2, KeyDown, 2},
		{"up one row", 5, KeyUp, 1},
		{"up from first row", 1, KeyUp, 1},
		{"left", 2, KeyLeft, 1},
		{"left at column zero", 4, KeyLeft, 4},
		{"right", 0, KeyRight, 1},
		{"right at last column", 3, KeyRight, 3},
		{"right at final item", 5, KeyRight, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.sel.cur = tt.start
			if err := s.HandleKey(tt.key); err != nil {
				t.Fatalf("HandleKey() error = %v", err)
			}
			p, _ := s.Selected()
			if got := s.sel.cur; got != tt.want {
				t.Errorf("selection = %d (%s), want %d", got, p.Label, tt.want)
			}
		})
	}
}

func TestTabStripScrollKeepsSelectionVisible(t *testing.T) {
	// Sixteen 8-wide labels make four rows of four; two rows are visible.
	labels := make([]string, 16)
	for i := range labels {
		labels[i] = fmt.Sprintf("Tab %04d", i)
	}
	s := newStrip(t, &recorder{}, labels...)
	if c := s.Grid().Columns; c != 4 {
		t.Fatalf("Columns = %d, want 4", c)
	}
	if v := s.ViewportRows(); v != 2 {
		t.Fatalf("ViewportRows() = %d, want 2", v)
	}

	steps := []struct {
		key     Key
		wantSel int
		wantTop int
	}{
		{KeyDown, 4, 0},
		{KeyDown, 8, 1},
		{KeyDown, 12, 2},
		{KeyDown, 12, 2},
		{KeyRight, 13, 2},
		{KeyUp, 9, 2},
		{KeyUp, 5, 1},
		{KeyUp, 1, 0},
		{KeyUp, 1, 0},
	}
	for i, st := range steps {
		if err := s.HandleKey(st.key); err != nil {
			t.Fatalf("step %d: HandleKey() error = %v", i, err)
		}
		p, _ := s.Selected()
		if s.sel.cur != st.wantSel || s.Top() != st.wantTop {
			t.Errorf("step %d: selection = %d, Top() = %d, want %d, %d", i, s.sel.cur, s.Top(), st.wantSel, st.wantTop)
		}
		if p.Y < s.Top() || p.Y > s.Top()+s.ViewportRows()-1 {
			t.Errorf("step %d: selected row %d outside [%d, %d]", i, p.Y, s.Top(), s.Top()+s.ViewportRows()-1)
		}
	}
}

func TestTabStripConfirm(t *testing.T) {
	rec := &recorder{}
	s := newStrip(t, rec, "Today", "Tomorrow")
	_ = s.HandleKey(KeyRight)
	if err := s.HandleKey(KeyConfirm); err != nil {
		t.Fatalf("HandleKey() error = %v", err)
	}
	want := []command.Command{command.LoadTab{
		TabID:    101,
		PageInfo: content.PageInfo{Type: "HOMEPAGE", Name: "Home"},
	}}
	if !reflect.DeepEqual(rec.cmds, want) {
		t.Errorf("dispatched %v, want %v", rec.cmds, want)
	}
}

func TestTabStripDefaultSelection(t *testing.T) {
	s, _ := NewTabStrip(catalog.Default(), &recorder{}, std)
	if err := s.SetTabs("FOOTBALL", content.PageInfo{}, items("A", "B", "C"), 102, true); err != nil {
		t.Fatal(err)
	}
	if p, _ := s.Selected(); p.ID != 102 {
		t.Errorf("selected %d, want 102", p.ID)
	}
	if err := s.SetTabs("FOOTBALL", content.PageInfo{}, items("A"), 999, true); err != nil {
		t.Fatal(err)
	}
	if _, ok := s.Selected(); ok {
		t.Error("missing default tab selected something")
	}
	if err := s.SetTabs("FOOTBALL", content.PageInfo{}, nil, 0, false); err != nil {
		t.Fatal(err)
	}
	if _, ok := s.Selected(); ok {
		t.Error("empty list has a selection")
	}
	if err := s.HandleKey(KeyDown); err != nil {
		t.Errorf("HandleKey() on empty list error = %v", err)
	}
}

func TestTabStripSetTabsTooNarrow(t *testing.T) {
	s := newStrip(t, &recorder{}, "Today", "Tomorrow")
	long := items("A label far too long to fit anywhere in a fifty cell strip")
	err := s.SetTabs("FOOTBALL", content.PageInfo{}, long, 100, true)

	var le *layout.LayoutError
	if !errors.As(err, &le) {
		t.Fatalf("SetTabs() error = %v, want LayoutError", err)
	}
	if s.PageID() != catalog.HomePageID || s.Grid().Len() != 2 {
		t.Errorf("failed SetTabs changed state: page %q, %d items", s.PageID(), s.Grid().Len())
	}
}

func TestTabStripResizeRejected(t *testing.T) {
	s := newStrip(t, &recorder{}, "Today", "Tomorrow", "Future")
	before := s.Grid()
	narrow := surface.Size{Rows: 24, Cols: 30}

	if err := s.CheckResize(narrow); err == nil {
		t.Fatal("CheckResize() succeeded on a 4-cell strip")
	}
	if err := s.Resize(narrow, false); err == nil {
		t.Fatal("Resize() succeeded on a 4-cell strip")
	}
	if !reflect.DeepEqual(s.Grid(), before) {
		t.Errorf("grid changed after rejected resize")
	}

	wide := surface.Size{Rows: 24, Cols: 120}
	if err := s.Resize(wide, false); err != nil {
		t.Fatalf("Resize() error = %v", err)
	}
	if s.Grid().Columns <= before.Columns {
		t.Errorf("Columns = %d after widening, want more than %d", s.Grid().Columns, before.Columns)
	}
	if p, _ := s.Selected(); p.ID != 100 {
		t.Errorf("selection lost on resize: %d", p.ID)
	}
}

func TestTabStripRender(t *testing.T) {
	scr := surface.NewScreen(std, nil)
	s := newStrip(t, &recorder{}, "Today", "IN_PLAY")
	s.FullRender(scr, std, false)
	scr.Flush()

	if got := span(scr.Line(1), 26, 33); got != "┌──Home" {
		t.Errorf("title = %q", got)
	}
	want := "  > Today      IN_PLAY"
	if row := span(scr.Line(2), 27, 27+len(want)); row != want {
		t.Errorf("tab row = %q", row)
	}
}

func TestTabItems(t *testing.T) {
	page := &content.Page{Tabs: []content.Tab{{ID: 1, Title: "Today"}, {ID: 4, Title: "IN_PLAY"}}}
	want := []layout.Item{{Label: "Today", ID: 1}, {Label: "In-Play", ID: 4}}
	if got := TabItems(page); !reflect.DeepEqual(got, want) {
		t.Errorf("TabItems() = %v, want %v", got, want)
	}
}

func premierLeague() content.Tab {
	return content.Tab{ID: 1, Title: "Today", Cards: []content.Card{{
		ID:    10,
		Title: "Premier League",
		Coupons: []content.Coupon{
			{ID: 1, Title: "Man Utd vs Chelsea"},
			{ID: 2, Type: "MATCH_ODDS", EventID: 12345},
		},
	}}}
}

func TestFlattenTab(t *testing.T) {
	want := []string{
		"  Premier League",
		"    Man Utd vs Chelsea",
		"    MATCH_ODDS for event 12345",
	}
	if got := FlattenTab(premierLeague()); !reflect.DeepEqual(got, want) {
		t.Errorf("FlattenTab() = %q, want %q", got, want)
	}
	if got := FlattenTab(content.Tab{}); len(got) != 0 {
		t.Errorf("FlattenTab(empty) = %q", got)
	}
}

func TestContentListShowTab(t *testing.T) {
	c := NewContentList(26, std)
	if got := c.Lines(); !reflect.DeepEqual(got, []string{"  Loading..."}) {
		t.Errorf("initial Lines() = %q", got)
	}

	page := &content.Page{ID: catalog.HomePageID, Tabs: []content.Tab{premierLeague()}, DefaultTab: 1}
	c.SetPage(page)
	if !c.ShowTab(1, page.Info) {
		t.Fatal("ShowTab(1) = false")
	}
	if n := len(c.Lines()); n != 3 {
		t.Fatalf("len(Lines()) = %d, want 3", n)
	}

	scr := surface.NewScreen(std, nil)
	c.FullRender(scr, std, false)
	scr.Flush()
	if got := span(scr.Line(6), 28, 44); got != "  Premier League" {
		t.Errorf("first content row = %q", got)
	}
	if got := span(scr.Line(8), 28, 59); got != "    MATCH_ODDS for event 12345 " {
		t.Errorf("third content row = %q", got)
	}

	if c.ShowTab(7, page.Info) {
		t.Error("ShowTab(7) = true for a missing tab")
	}
	if n := len(c.Lines()); n != 0 {
		t.Errorf("missing tab shows %d lines", n)
	}
}

func TestContentListClusterTitles(t *testing.T) {
	tab := content.Tab{ID: 1, Cards: []content.Card{{
		Title:   "Premier League",
		Coupons: []content.Coupon{{Title: "Arsenal 👍🏽"}, {Title: "Family 👨‍👩‍👧 day"}},
	}}}
	page := &content.Page{Tabs: []content.Tab{tab}}
	c := NewContentList(26, std)
	c.SetPage(page)
	if !c.ShowTab(1, page.Info) {
		t.Fatal("ShowTab(1) = false")
	}

	scr := surface.NewScreen(std, nil)
	c.FullRender(scr, std, false)
	scr.Flush()
	if got := scr.Line(7); !strings.Contains(got, "    Arsenal 👍🏽") {
		t.Errorf("coupon row = %q", got)
	}
	if got := scr.Line(8); !strings.Contains(got, "    Family 👨‍👩‍👧 day") {
		t.Errorf("coupon row = %q", got)
	}
	if got := span(scr.Line(9), 27, 79); strings.TrimSpace(got) != "" {
		t.Errorf("row after the list = %q, want blank", got)
	}
}

func TestContentListScroll(t *testing.T) {
	lines := make([]content.Coupon, 40)
	for i := range lines {
		lines[i] = content.Coupon{Title: "coupon"}
	}
	page := &content.Page{Tabs: []content.Tab{{ID: 1, Cards: []content.Card{{Title: "card", Coupons: lines}}}}}
	c := NewContentList(26, std)
	c.SetPage(page)
	c.ShowTab(1, page.Info)

	_ = c.HandleKey(KeyUp)
	if c.Top() != 0 {
		t.Errorf("Top() after Up at start = %d", c.Top())
	}
	for i := 0; i < 100; i++ {
		_ = c.HandleKey(KeyDown)
	}
	if got, want := c.Top(), 41-c.ViewportRows(); got != want {
		t.Errorf("Top() at end = %d, want %d", got, want)
	}
}

func TestHeader(t *testing.T) {
	h := NewHeader(std)
	line := h.Line()
	if got := line[34:45]; got != "PaddyCurses" {
		t.Errorf("title at %q", line)
	}
	if got := line[68:78]; got != "Login [^L]" {
		t.Errorf("login at %q", line)
	}

	narrow := surface.Size{Rows: 24, Cols: 20}
	_ = h.Resize(narrow, false)
	if got := h.Line(); got != "    PaddyCurses" {
		t.Errorf("narrow header = %q", got)
	}
}

func TestFooter(t *testing.T) {
	f := NewFooter("tab focus  q quit", std)
	if got := f.Line(); got != " tab focus  q quit" {
		t.Errorf("Line() = %q", got)
	}
	f.SetStatus("terminal too narrow")
	line := f.Line()
	if got := line[60:79]; got != "terminal too narrow" {
		t.Errorf("status in %q", line)
	}

	scr := surface.NewScreen(std, nil)
	f.FullRender(scr, std, false)
	if n := f.UpdateRender(scr, std); n != 0 {
		t.Errorf("UpdateRender() without change = %d", n)
	}
	f.SetStatus("")
	if n := f.UpdateRender(scr, std); n != 1 {
		t.Errorf("UpdateRender() after status change = %d", n)
	}
}

func TestRegistry(t *testing.T) {
	cat := catalog.Default()
	rec := &recorder{}
	s, _ := NewTabStrip(cat, rec, std)
	r := NewRegistry(NewHeader(std), NewFooter("", std), NewNavMenu(cat, rec, std), s, NewContentList(NavCols(cat), std))

	if r.TabStrip() != s {
		t.Error("TabStrip() returned another pane")
	}
	if len(r.All()) != 5 {
		t.Errorf("len(All()) = %d", len(r.All()))
	}

	defer func() {
		if recover() == nil {
			t.Error("duplicate registration did not panic")
		}
	}()
	NewRegistry(NewHeader(std), NewHeader(std))
}
