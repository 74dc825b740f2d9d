package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/katalvlaran/epiflows/epidata"
)

// Column names written onto LocationRecord.Numeric by AddCoordinates.
const (
	LatColumn = "lat"
	LonColumn = "lon"
)

// defaultBaseURL is a Nominatim-style search endpoint.
const defaultBaseURL = "https://nominatim.openstreetmap.org/search"

// requestTimeout bounds a single geocoding request.
const requestTimeout = 10 * time.Second

// Sentinel errors for geocoding failures.
var (
	// ErrNoResult indicates the service returned zero matches for a query.
	ErrNoResult = errors.New("geocode: no result for query")

	// ErrBadStatus indicates a non-200 HTTP response.
	ErrBadStatus = errors.New("geocode: unexpected HTTP status")
)

// Coordinates is a WGS84 latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Lat, Lon float64
}

// Geocoder queries a Nominatim-style geocoding endpoint.
type Geocoder struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

// Option configures a Geocoder.
type Option func(*Geocoder)

// WithBaseURL points the Geocoder at a different search endpoint
// (self-hosted Nominatim, test server, ...).
func WithBaseURL(u string) Option {
	return func(g *Geocoder) { g.baseURL = u }
}

// WithHTTPClient substitutes the HTTP client, e.g. to tune timeouts.
func WithHTTPClient(c *http.Client) Option {
	return func(g *Geocoder) { g.client = c }
}

// WithUserAgent sets the User-Agent header sent with every request.
// Public endpoints reject anonymous clients; set something descriptive.
func WithUserAgent(ua string) Option {
	return func(g *Geocoder) { g.userAgent = ua }
}

// New returns a Geocoder with the public Nominatim endpoint, a 10s
// request timeout, and a generic User-Agent, adjusted by opts.
func New(opts ...Option) *Geocoder {
	g := &Geocoder{
		baseURL:   defaultBaseURL,
		userAgent: "epiflows-geocode",
		client:    &http.Client{Timeout: requestTimeout},
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// nominatimHit is the subset of the service's JSON we consume.
// Nominatim serializes coordinates as strings.
type nominatimHit struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Lookup geocodes a free-form query and returns the first match.
func (g *Geocoder) Lookup(ctx context.Context, query string) (Coordinates, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("format", "json")
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return Coordinates{}, fmt.Errorf("geocode: Lookup(%q): %w", query, err)
	}
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return Coordinates{}, fmt.Errorf("geocode: Lookup(%q): %w", query, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Coordinates{}, fmt.Errorf("geocode: Lookup(%q): status %d: %w",
			query, resp.StatusCode, ErrBadStatus)
	}

	var hits []nominatimHit
	if err = json.NewDecoder(resp.Body).Decode(&hits); err != nil {
		return Coordinates{}, fmt.Errorf("geocode: Lookup(%q): decode: %w", query, err)
	}
	if len(hits) == 0 {
		return Coordinates{}, fmt.Errorf("geocode: Lookup(%q): %w", query, ErrNoResult)
	}

	lat, err := strconv.ParseFloat(hits[0].Lat, 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("geocode: Lookup(%q): parse lat: %w", query, err)
	}
	lon, err := strconv.ParseFloat(hits[0].Lon, 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("geocode: Lookup(%q): parse lon: %w", query, err)
	}

	return Coordinates{Lat: lat, Lon: lon}, nil
}

// AddCoordinates geocodes every location row and writes the result into
// the rows' "lat"/"lon" numeric columns, in place.
//
// queries optionally maps location IDs to free-form query strings; rows
// without an entry are queried by their ID. Rows that already carry
// both coordinate columns are skipped (no overwrite). The first failure
// aborts the pass; rows enriched before it keep their new columns.
func (g *Geocoder) AddCoordinates(ctx context.Context, locs []epidata.LocationRecord, queries map[string]string) error {
	for i := range locs {
		loc := &locs[i]
		if loc.Numeric != nil {
			_, hasLat := loc.Numeric[LatColumn]
			_, hasLon := loc.Numeric[LonColumn]
			if hasLat && hasLon {
				continue
			}
		}

		query := loc.ID
		if q, ok := queries[loc.ID]; ok {
			query = q
		}

		c, err := g.Lookup(ctx, query)
		if err != nil {
			return fmt.Errorf("geocode: AddCoordinates: location %q: %w", loc.ID, err)
		}

		if loc.Numeric == nil {
			loc.Numeric = make(map[string]float64, 2)
		}
		loc.Numeric[LatColumn] = c.Lat
		loc.Numeric[LonColumn] = c.Lon
	}

	return nil
}
