// Package catalog holds the fixed navigation menu: the labels shown in the
// sports menu and the page identifier each one loads.
//
// A Catalog is built once at startup and never modified, so it can be shared
// by every pane and command handler that needs it.
package catalog

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// HomePageID is the page shown at startup.
const HomePageID = "HOMEPAGE"

var primaryItems = []string{"Home", "Search", "In-Play"}

var sports = []string{
	"American Football", "Australian Rules", "Baseball", "Basketball", "Boxing",
	"Cricket", "Current Affairs", "Cycling", "Darts", "Esports", "Football",
	"Gaelic Games", "Golf", "Greyhound Racing", "Handball", "Horse Racing",
	"Ice Hockey", "Lotteries", "Mixed Martial Arts", "Motor Sport", "Politics",
	"Pool", "Rugby League", "Rugby Union", "Snooker", "Special Bets",
	"Table Tennis", "Tennis", "Virtual Sports", "Volleyball", "Winter Sports",
}

// Entry is one menu line. Row is the line it occupies in the menu, which
// differs from its index because a blank separator follows the primary items.
type Entry struct {
	Label  string
	PageID string
	Row    int
}

// Catalog is an immutable list of menu entries with lookups in both
// directions.
type Catalog struct {
	entries []Entry
	byLabel map[string]int
	byID    map[string]int
	longest int
	rows    int
}

// Default returns the standard menu: Home, Search and In-Play, a separator,
// then every sport. Home maps to HOMEPAGE; everything else maps to its
// upper-cased label.
func Default() *Catalog {
	return New(primaryItems, sports, map[string]string{"Home": HomePageID})
}

// New builds a catalog from two groups of labels separated by a blank row.
// Labels without an override map to their upper-cased text.
func New(primary, secondary []string, overrides map[string]string) *Catalog {
	c := &Catalog{
		byLabel: make(map[string]int),
		byID:    make(map[string]int),
	}
	add := func(label string, row int) {
		id, ok := overrides[label]
		if !ok {
			id = strings.ToUpper(label)
		}
		c.byLabel[label] = len(c.entries)
		c.byID[id] = len(c.entries)
		c.entries = append(c.entries, Entry{Label: label, PageID: id, Row: row})
		if w := runewidth.StringWidth(label); w > c.longest {
			c.longest = w
		}
	}
	for i, l := range primary {
		add(l, i)
	}
	offset := len(primary)
	if len(primary) > 0 && len(secondary) > 0 {
		offset++
	}
	for i, l := range secondary {
		add(l, i+offset)
	}
	c.rows = offset + len(secondary)
	return c
}

// Len returns the number of entries.
func (c *Catalog) Len() int { return len(c.entries) }

// Entry returns the entry at index i.
func (c *Catalog) Entry(i int) Entry { return c.entries[i] }

// Entries returns a copy of every entry in menu order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Rows returns the number of lines the menu occupies, separator included.
func (c *Catalog) Rows() int { return c.rows }

// Longest returns the display width of the longest label.
func (c *Catalog) Longest() int { return c.longest }

// IndexOf returns the position of the entry with the given label.
func (c *Catalog) IndexOf(label string) (int, bool) {
	i, ok := c.byLabel[label]
	return i, ok
}

// PageID returns the page identifier for a label.
func (c *Catalog) PageID(label string) (string, bool) {
	i, ok := c.byLabel[label]
	if !ok {
		return "", false
	}
	return c.entries[i].PageID, true
}

// MustPageID is PageID for labels known to be in the catalog. An unknown
// label is a programming error.
func (c *Catalog) MustPageID(label string) string {
	id, ok := c.PageID(label)
	if !ok {
		panic(fmt.Sprintf("catalog: no page for label %q", label))
	}
	return id
}

// Label returns the menu label for a page identifier.
func (c *Catalog) Label(pageID string) (string, bool) {
	i, ok := c.byID[pageID]
	if !ok {
		return "", false
	}
	return c.entries[i].Label, true
}

// Contains reports whether pageID belongs to the catalog.
func (c *Catalog) Contains(pageID string) bool {
	_, ok := c.byID[pageID]
	return ok
}
