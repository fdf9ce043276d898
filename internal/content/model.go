package content

// PageInfo is the page metadata carried alongside a page's tabs.
type PageInfo struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	EventTypeID int    `json:"eventTypeId,omitempty"`
}

// Coupon is one market listing. It is displayed by Title when present,
// otherwise by its Type and EventID.
type Coupon struct {
	ID      int
	Title   string
	Type    string
	EventID int64
}

// Card is a titled group of coupons.
type Card struct {
	ID      int
	Title   string
	Coupons []Coupon
}

// Tab is one selectable section of a page.
type Tab struct {
	ID    int
	Title string
	Cards []Card
}

// Page is a complete page layout. A Page is never modified after it is
// built; a new load replaces it wholesale.
type Page struct {
	ID         string
	Info       PageInfo
	Tabs       []Tab
	DefaultTab int
}

// Tab returns the tab with the given identifier.
func (p *Page) Tab(id int) (Tab, bool) {
	for _, t := range p.Tabs {
		if t.ID == id {
			return t, true
		}
	}
	return Tab{}, false
}

// InitialTab returns the identifier of the tab to show first: the default tab
// when the page has it, otherwise the first tab. It reports false for a page
// without tabs.
func (p *Page) InitialTab() (int, bool) {
	if _, ok := p.Tab(p.DefaultTab); ok {
		return p.DefaultTab, true
	}
	if len(p.Tabs) > 0 {
		return p.Tabs[0].ID, true
	}
	return 0, false
}
