package catalog

import "testing"

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	if c.Len() != 34 {
		t.Errorf("Len() = %d, want 34", c.Len())
	}
	if c.Rows() != 35 {
		t.Errorf("Rows() = %d, want 35 (separator included)", c.Rows())
	}
	if c.Longest() != len("Mixed Martial Arts") {
		t.Errorf("Longest() = %d, want %d", c.Longest(), len("Mixed Martial Arts"))
	}

	first := c.Entry(0)
	if first.Label != "Home" || first.PageID != HomePageID || first.Row != 0 {
		t.Errorf("Entry(0) = %+v", first)
	}

	fourth := c.Entry(3)
	if fourth.Label != "American Football" || fourth.Row != 4 {
		t.Errorf("Entry(3) = %+v, want American Football on row 4", fourth)
	}
}

func TestLookups(t *testing.T) {
	c := Default()

	tests := []struct {
		label string
		id    string
	}{
		{"Home", "HOMEPAGE"},
		{"In-Play", "IN-PLAY"},
		{"Football", "FOOTBALL"},
		{"Mixed Martial Arts", "MIXED MARTIAL ARTS"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			id, ok := c.PageID(tt.label)
			if !ok || id != tt.id {
				t.Errorf("PageID(%q) = %q, %v; want %q", tt.label, id, ok, tt.id)
			}
			label, ok := c.Label(tt.id)
			if !ok || label != tt.label {
				t.Errorf("Label(%q) = %q, %v; want %q", tt.id, label, ok, tt.label)
			}
			if !c.Contains(tt.id) {
				t.Errorf("Contains(%q) = false", tt.id)
			}
		})
	}

	if c.Contains("NOT A PAGE") {
		t.Error("Contains() accepted an unknown page")
	}
}

func TestMustPageIDPanicsOnUnknownLabel(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustPageID() did not panic for an unknown label")
		}
	}()
	Default().MustPageID("Quidditch")
}

func TestEntriesReturnsCopy(t *testing.T) {
	c := Default()
	entries := c.Entries()
	entries[0].Label = "changed"
	if c.Entry(0).Label != "Home" {
		t.Error("Entries() exposed internal state")
	}
}
