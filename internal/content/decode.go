package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Wire format of a page layout document.
type layoutDoc struct {
	Layout struct {
		Page             PageInfo              `json:"page"`
		DefaultTab       flexInt               `json:"defaultTab"`
		TabsDisplayOrder []flexInt             `json:"tabsDisplayOrder"`
		Tabs             map[string]wireTab    `json:"tabs"`
		Cards            map[string]wireCard   `json:"cards"`
		Coupons          map[string]wireCoupon `json:"coupons"`
	} `json:"layout"`
}

type wireTab struct {
	ID    flexInt   `json:"id"`
	Title string    `json:"title"`
	Type  string    `json:"type"`
	Cards []wireRef `json:"cards"`
}

type wireCard struct {
	Type    string    `json:"type"`
	Title   string    `json:"title"`
	Coupons []wireRef `json:"coupons"`
}

type wireCoupon struct {
	Title   string `json:"title"`
	Type    string `json:"type"`
	EventID int64  `json:"eventId"`
}

// wireRef is a reference by id. Only numeric ids resolve.
type wireRef struct {
	ID json.RawMessage `json:"id"`
}

func (r wireRef) intID() (int, bool) {
	var n int
	if err := json.Unmarshal(r.ID, &n); err != nil {
		return 0, false
	}
	return n, true
}

// flexInt accepts a JSON number or a numeric string.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("invalid id %s: %w", data, err)
	}
	*f = flexInt(n)
	return nil
}

// Decode builds a Page from a layout document. Only cards of type COUPON are
// kept, tab references to other cards are dropped, and tabs with a type other
// than TAB are skipped. A coupon reference that does not resolve makes the
// whole document invalid.
func Decode(pageID string, data []byte) (*Page, error) {
	var doc layoutDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &SourceError{PageID: pageID, Op: "decode", Err: err}
	}
	l := doc.Layout

	cards := make(map[int]wireCard, len(l.Cards))
	for key, c := range l.Cards {
		if c.Type != "COUPON" {
			continue
		}
		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, &SourceError{PageID: pageID, Op: "decode", Err: fmt.Errorf("card key %q: %w", key, err)}
		}
		cards[id] = c
	}

	page := &Page{
		ID:         pageID,
		Info:       l.Page,
		DefaultTab: int(l.DefaultTab),
	}

	for _, tabID := range l.TabsDisplayOrder {
		wt, ok := l.Tabs[strconv.Itoa(int(tabID))]
		if !ok {
			return nil, &SourceError{PageID: pageID, Op: "decode", Err: fmt.Errorf("tab %d listed but not defined", tabID)}
		}
		if wt.Type != "" && wt.Type != "TAB" {
			continue
		}
		tab := Tab{ID: int(wt.ID), Title: wt.Title}
		for _, ref := range wt.Cards {
			cardID, ok := ref.intID()
			if !ok {
				continue
			}
			wc, ok := cards[cardID]
			if !ok {
				continue
			}
			card := Card{ID: cardID, Title: wc.Title}
			for _, cref := range wc.Coupons {
				couponID, ok := cref.intID()
				if !ok {
					return nil, &SourceError{PageID: pageID, Op: "decode", Err: fmt.Errorf("card %d: coupon id %s is not numeric", cardID, cref.ID)}
				}
				wcp, ok := l.Coupons[strconv.Itoa(couponID)]
				if !ok {
					return nil, &SourceError{PageID: pageID, Op: "decode", Err: fmt.Errorf("card %d: coupon %d not defined", cardID, couponID)}
				}
				card.Coupons = append(card.Coupons, Coupon{
					ID:      couponID,
					Title:   wcp.Title,
					Type:    wcp.Type,
					EventID: wcp.EventID,
				})
			}
			tab.Cards = append(tab.Cards, card)
		}
		page.Tabs = append(page.Tabs, tab)
	}

	return page, nil
}
