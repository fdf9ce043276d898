package content

import (
	"errors"
	"testing"
)

const sampleLayout = `{
  "layout": {
    "page": {"type": "SPORT", "name": "Sample", "eventTypeId": 7},
    "defaultTab": 2,
    "tabsDisplayOrder": [2, 1, 3],
    "tabs": {
      "1": {"id": 1, "title": "First", "cards": [{"id": 10}, {"id": 99}, {"id": "text"}]},
      "2": {"id": "2", "title": "Second", "type": "TAB", "cards": [{"id": 11}]},
      "3": {"id": 3, "title": "Link", "type": "LINK", "cards": []}
    },
    "cards": {
      "10": {"type": "COUPON", "title": "Card Ten", "coupons": [{"id": 100}, {"id": 101}]},
      "11": {"type": "COUPON", "title": "Card Eleven", "coupons": []},
      "99": {"type": "STATIC", "title": "Banner"}
    },
    "coupons": {
      "100": {"title": "Man Utd vs Chelsea"},
      "101": {"type": "MATCH_ODDS", "eventId": 12345}
    }
  }
}`

func TestDecode(t *testing.T) {
	page, err := Decode("SAMPLE", []byte(sampleLayout))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if page.ID != "SAMPLE" || page.Info.Name != "Sample" || page.Info.EventTypeID != 7 {
		t.Errorf("page header = %+v", page)
	}
	if page.DefaultTab != 2 {
		t.Errorf("DefaultTab = %d, want 2", page.DefaultTab)
	}

	if len(page.Tabs) != 2 {
		t.Fatalf("got %d tabs, want 2 (LINK tab skipped)", len(page.Tabs))
	}
	if page.Tabs[0].ID != 2 || page.Tabs[1].ID != 1 {
		t.Errorf("tabs not in display order: %d, %d", page.Tabs[0].ID, page.Tabs[1].ID)
	}

	first := page.Tabs[1]
	if len(first.Cards) != 1 {
		t.Fatalf("tab First has %d cards, want 1 (static and non-numeric refs dropped)", len(first.Cards))
	}
	card := first.Cards[0]
	if card.Title != "Card Ten" || len(card.Coupons) != 2 {
		t.Fatalf("card = %+v", card)
	}
	if card.Coupons[0].Title != "Man Utd vs Chelsea" {
		t.Errorf("coupon 0 = %+v", card.Coupons[0])
	}
	if c := card.Coupons[1]; c.Title != "" || c.Type != "MATCH_ODDS" || c.EventID != 12345 {
		t.Errorf("coupon 1 = %+v", c)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{"layout": `},
		{"missing coupon", `{"layout": {"tabsDisplayOrder": [1], "tabs": {"1": {"id": 1, "cards": [{"id": 5}]}},
			"cards": {"5": {"type": "COUPON", "coupons": [{"id": 9}]}}, "coupons": {}}}`},
		{"undefined tab", `{"layout": {"tabsDisplayOrder": [4], "tabs": {}}}`},
		{"bad tab id", `{"layout": {"tabsDisplayOrder": ["four"], "tabs": {}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := Decode("X", []byte(tt.data))
			if err == nil {
				t.Fatal("Decode() expected error")
			}
			if page != nil {
				t.Error("Decode() returned a partial page alongside an error")
			}
			var se *SourceError
			if !errors.As(err, &se) || se.Op != "decode" {
				t.Errorf("Decode() error = %v, want decode SourceError", err)
			}
		})
	}
}

func TestInitialTab(t *testing.T) {
	page := &Page{Tabs: []Tab{{ID: 4}, {ID: 9}}, DefaultTab: 9}
	if id, ok := page.InitialTab(); !ok || id != 9 {
		t.Errorf("InitialTab() = %d, %v; want 9", id, ok)
	}

	page.DefaultTab = 77
	if id, ok := page.InitialTab(); !ok || id != 4 {
		t.Errorf("InitialTab() with missing default = %d, %v; want 4", id, ok)
	}

	empty := &Page{DefaultTab: 1}
	if _, ok := empty.InitialTab(); ok {
		t.Error("InitialTab() on empty page reported a tab")
	}
}
