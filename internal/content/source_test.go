package content

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
)

func knownPages(ids ...string) Known {
	set := make(map[string]bool)
	for _, id := range ids {
		set[id] = true
	}
	return func(id string) bool { return set[id] }
}

func TestFixtureSourceEmbedded(t *testing.T) {
	src := NewFixtureSource(knownPages("HOMEPAGE", "IN-PLAY", "FOOTBALL", "DARTS"))

	for _, id := range []string{"HOMEPAGE", "IN-PLAY", "FOOTBALL"} {
		t.Run(id, func(t *testing.T) {
			page, err := src.LoadPage(id)
			if err != nil {
				t.Fatalf("LoadPage(%q) error = %v", id, err)
			}
			if len(page.Tabs) == 0 {
				t.Errorf("LoadPage(%q) returned no tabs", id)
			}
			if _, ok := page.InitialTab(); !ok {
				t.Errorf("LoadPage(%q) has no initial tab", id)
			}
		})
	}
}

func TestFixtureSourceHomepageScenario(t *testing.T) {
	page, err := NewFixtureSource(nil).LoadPage("HOMEPAGE")
	if err != nil {
		t.Fatal(err)
	}
	tab, ok := page.Tab(page.DefaultTab)
	if !ok {
		t.Fatal("default tab missing")
	}
	if tab.Title != "Today" || len(tab.Cards) != 2 {
		t.Errorf("default tab = %q with %d cards", tab.Title, len(tab.Cards))
	}
	for _, tb := range page.Tabs {
		if tb.Title == "Promotions" {
			t.Error("LINK tab should have been skipped")
		}
	}
}

func TestFixtureSourceCatalogPageWithoutFixture(t *testing.T) {
	src := NewFixtureSource(knownPages("DARTS"))
	page, err := src.LoadPage("DARTS")
	if err != nil {
		t.Fatalf("LoadPage(DARTS) error = %v", err)
	}
	if page.ID != "DARTS" || len(page.Tabs) != 0 {
		t.Errorf("LoadPage(DARTS) = %+v, want empty page", page)
	}
}

func TestFixtureSourceUnknownPage(t *testing.T) {
	_, err := NewFixtureSource(knownPages()).LoadPage("NOWHERE")
	var upe *UnknownPageError
	if !errors.As(err, &upe) || upe.PageID != "NOWHERE" {
		t.Errorf("LoadPage(NOWHERE) error = %v, want UnknownPageError", err)
	}
}

func TestFixtureSourceFSMalformed(t *testing.T) {
	fsys := fstest.MapFS{
		"homepage.json": {Data: []byte(`{"layout": [`)},
	}
	_, err := NewFixtureSourceFS(fsys, nil).LoadPage("HOMEPAGE")
	var se *SourceError
	if !errors.As(err, &se) {
		t.Errorf("LoadPage() error = %v, want SourceError", err)
	}
}

func TestStrandsSourceURL(t *testing.T) {
	src := NewStrandsSource("https://example.test/sdspp/", DefaultStrandsOptions())

	u, err := src.URL("IN-PLAY")
	if err != nil {
		t.Fatalf("URL() error = %v", err)
	}
	if !strings.HasPrefix(u, "https://example.test/sdspp/in-play/v3?") {
		t.Errorf("URL() = %s", u)
	}
	for _, want := range []string{"_ak=vsd0Rm5ph2sS2uaK", "includeTabs=true", "currencyCode=GBP", "comingUpTimeRange=360000"} {
		if !strings.Contains(u, want) {
			t.Errorf("URL() missing %s: %s", want, u)
		}
	}

	if _, err := src.URL("DARTS"); err == nil {
		t.Error("URL(DARTS) should be unknown to the strands source")
	}
}

func TestStrandsSourceLoadPage(t *testing.T) {
	var gotPath, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleLayout))
	}))
	defer server.Close()

	src := NewStrandsSource(server.URL, DefaultStrandsOptions())
	page, err := src.LoadPage("FOOTBALL")
	if err != nil {
		t.Fatalf("LoadPage() error = %v", err)
	}
	if gotPath != "/content-managed-page/v3" {
		t.Errorf("request path = %s", gotPath)
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept = %q", gotAccept)
	}
	if page.ID != "FOOTBALL" || len(page.Tabs) != 2 {
		t.Errorf("page = %+v", page)
	}
}

func TestStrandsSourceHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := NewStrandsSource(server.URL, DefaultStrandsOptions()).LoadPage("HOMEPAGE")
	var se *SourceError
	if !errors.As(err, &se) || se.Op != "fetch" {
		t.Errorf("LoadPage() error = %v, want fetch SourceError", err)
	}
}

func TestStrandsSourcePageWithoutEndpoint(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	src := NewStrandsSource(server.URL, DefaultStrandsOptions())
	var unknown *UnknownPageError
	if _, err := src.LoadPage("DARTS"); !errors.As(err, &unknown) {
		t.Fatalf("LoadPage(DARTS) error = %v, want UnknownPageError", err)
	}

	src.Known = knownPages("DARTS")
	page, err := src.LoadPage("DARTS")
	if err != nil {
		t.Fatalf("LoadPage(DARTS) error = %v", err)
	}
	if page.ID != "DARTS" || len(page.Tabs) != 0 {
		t.Errorf("page = %+v, want empty", page)
	}
	if requests != 0 {
		t.Errorf("%d requests sent for a page without endpoint", requests)
	}
}
