package content

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/muurk/paddyterm/internal/logging"
	"go.uber.org/zap"
)

// Source loads page layouts. LoadPage either returns the complete page or an
// error; it never returns a partially built page.
type Source interface {
	LoadPage(pageID string) (*Page, error)
}

//go:embed fixtures/*.json
var embeddedFixtures embed.FS

// fixtureFiles maps page identifiers to fixture file names.
var fixtureFiles = map[string]string{
	"HOMEPAGE": "homepage.json",
	"IN-PLAY":  "in-play.json",
	"FOOTBALL": "football.json",
}

// Known reports whether a page identifier is acceptable to a source.
type Known func(pageID string) bool

// FixtureSource serves pages from JSON fixture files.
type FixtureSource struct {
	fsys  fs.FS
	known Known
}

// NewFixtureSource returns a source backed by the fixtures built into the
// binary. Pages accepted by known but without a fixture load as empty pages;
// anything else is an UnknownPageError.
func NewFixtureSource(known Known) *FixtureSource {
	sub, err := fs.Sub(embeddedFixtures, "fixtures")
	if err != nil {
		panic(fmt.Sprintf("content: embedded fixtures: %v", err))
	}
	return &FixtureSource{fsys: sub, known: known}
}

// NewFixtureSourceFS is NewFixtureSource reading fixtures from fsys instead.
func NewFixtureSourceFS(fsys fs.FS, known Known) *FixtureSource {
	return &FixtureSource{fsys: fsys, known: known}
}

// LoadPage implements Source.
func (s *FixtureSource) LoadPage(pageID string) (*Page, error) {
	name, ok := fixtureFiles[pageID]
	if !ok {
		if s.known != nil && s.known(pageID) {
			logging.Debug("No fixture for page, serving empty page", zap.String("page", pageID))
			return &Page{ID: pageID}, nil
		}
		return nil, &UnknownPageError{PageID: pageID}
	}

	data, err := fs.ReadFile(s.fsys, name)
	if errors.Is(err, fs.ErrNotExist) && s.known != nil && s.known(pageID) {
		return &Page{ID: pageID}, nil
	}
	if err != nil {
		return nil, &SourceError{PageID: pageID, Op: "fetch", Err: err}
	}

	page, err := Decode(pageID, data)
	if err != nil {
		return nil, err
	}
	logging.Debug("Loaded fixture page",
		zap.String("page", pageID),
		zap.String("file", name),
		zap.Int("tabs", len(page.Tabs)),
	)
	return page, nil
}
