package content

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/muurk/paddyterm/internal/logging"
	"go.uber.org/zap"
)

const (
	// DefaultStrandsURL is the base URL of the strands content API
	DefaultStrandsURL = "https://strands.paddypower.com/sdspp"

	// DefaultTimeout is the default HTTP request timeout
	DefaultTimeout = 10 * time.Second

	// maxBodySize caps how much of a response is read
	maxBodySize = 16 << 20
)

// StrandsOptions are the query parameters sent with every request.
type StrandsOptions struct {
	AppKey       string
	BetexRegion  string
	Jurisdiction string
	Currency     string
	Locale       string
	Language     string
	Region       string
	Timezone     string
}

// DefaultStrandsOptions returns the options used by the public UK site.
func DefaultStrandsOptions() StrandsOptions {
	return StrandsOptions{
		AppKey:       "vsd0Rm5ph2sS2uaK",
		BetexRegion:  "GBR",
		Jurisdiction: "intl",
		Currency:     "GBP",
		Locale:       "en_GB",
		Language:     "en",
		Region:       "UK",
		Timezone:     "Europe/London",
	}
}

func (o StrandsOptions) values() url.Values {
	v := url.Values{}
	v.Set("_ak", o.AppKey)
	v.Set("betexRegion", o.BetexRegion)
	v.Set("capiJurisdiction", o.Jurisdiction)
	v.Set("currencyCode", o.Currency)
	v.Set("language", o.Language)
	v.Set("regionCode", o.Region)
	v.Set("timezone", o.Timezone)
	v.Set("exchangeLocale", o.Locale)
	return v
}

// strandsRequest is the endpoint slug and extra query for one page.
type strandsRequest struct {
	slug  string
	query map[string]string
}

var strandsPages = map[string]strandsRequest{
	"HOMEPAGE": {
		slug: "content-managed-page",
		query: map[string]string{
			"cardsLimit":            "1",
			"includeMarketBlurbs":   "true",
			"includePrices":         "true",
			"includeRaceCards":      "true",
			"includeStaticCards":    "true",
			"nextRacesMarketsLimit": "3",
			"page":                  "HOMEPAGE",
			"priceHistory":          "3",
		},
	},
	"IN-PLAY": {
		slug: "in-play",
		query: map[string]string{
			"comingUpTimeRange":  "360000",
			"includeStaticCards": "true",
			"includeTabs":        "true",
		},
	},
	"FOOTBALL": {
		slug: "content-managed-page",
		query: map[string]string{
			"cardsLimit":            "1",
			"eventTypeId":           "1",
			"includeMarketBlurbs":   "true",
			"includePrices":         "true",
			"includeRaceCards":      "true",
			"includeStaticCards":    "true",
			"nextRacesMarketsLimit": "3",
			"page":                  "SPORT",
			"priceHistory":          "3",
		},
	},
}

// StrandsSource fetches live page layouts over HTTP.
type StrandsSource struct {
	// BaseURL is the API root (e.g., "https://strands.paddypower.com/sdspp")
	BaseURL string

	// Options are sent as query parameters on every request
	Options StrandsOptions

	// HTTPClient is the underlying HTTP client
	HTTPClient *http.Client

	// Known accepts page identifiers that have no endpoint; they load as
	// empty pages. Nil accepts none.
	Known Known
}

// NewStrandsSource creates a source for the given base URL.
func NewStrandsSource(baseURL string, opts StrandsOptions) *StrandsSource {
	if baseURL == "" {
		baseURL = DefaultStrandsURL
	}
	return &StrandsSource{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Options:    opts,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// SetTimeout sets the HTTP request timeout
func (s *StrandsSource) SetTimeout(timeout time.Duration) {
	s.HTTPClient.Timeout = timeout
}

// URL returns the request URL for a page.
func (s *StrandsSource) URL(pageID string) (string, error) {
	req, ok := strandsPages[pageID]
	if !ok {
		return "", &UnknownPageError{PageID: pageID}
	}
	q := s.Options.values()
	for k, v := range req.query {
		q.Set(k, v)
	}
	return fmt.Sprintf("%s/%s/v3?%s", s.BaseURL, req.slug, q.Encode()), nil
}

// LoadPage implements Source.
func (s *StrandsSource) LoadPage(pageID string) (*Page, error) {
	if _, ok := strandsPages[pageID]; !ok && s.Known != nil && s.Known(pageID) {
		logging.Debug("No strands endpoint for page, serving empty page", zap.String("page", pageID))
		return &Page{ID: pageID}, nil
	}
	endpoint, err := s.URL(pageID)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &SourceError{PageID: pageID, Op: "fetch", Err: err}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return nil, &SourceError{PageID: pageID, Op: "fetch", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &SourceError{PageID: pageID, Op: "fetch", Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &SourceError{PageID: pageID, Op: "fetch", Err: err}
	}

	logging.Debug("Fetched strands page",
		zap.String("page", pageID),
		zap.Int("bytes", len(body)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return Decode(pageID, body)
}
