package geocode_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epiflows/epidata"
	"github.com/katalvlaran/epiflows/geocode"
)

const testBaseURL = "https://geocode.test/search"

// responderURL matches testBaseURL with any query string.
const responderURL = `=~^https://geocode\.test/search`

// newTestGeocoder returns a Geocoder whose HTTP client is intercepted
// by httpmock for the duration of the test.
func newTestGeocoder(t *testing.T) *geocode.Geocoder {
	t.Helper()

	client := &http.Client{}
	httpmock.ActivateNonDefault(client)
	t.Cleanup(httpmock.DeactivateAndReset)

	return geocode.New(
		geocode.WithBaseURL(testBaseURL),
		geocode.WithHTTPClient(client),
		geocode.WithUserAgent("epiflows-test"),
	)
}

func TestLookup_Success(t *testing.T) {
	g := newTestGeocoder(t)

	httpmock.RegisterResponder(http.MethodGet, responderURL,
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "Recife", req.URL.Query().Get("q"))
			assert.Equal(t, "json", req.URL.Query().Get("format"))
			assert.Equal(t, "epiflows-test", req.Header.Get("User-Agent"))

			return httpmock.NewStringResponse(http.StatusOK,
				`[{"lat":"-8.0522","lon":"-34.9286"}]`), nil
		})

	c, err := g.Lookup(context.Background(), "Recife")
	require.NoError(t, err)
	assert.InDelta(t, -8.0522, c.Lat, 1e-9)
	assert.InDelta(t, -34.9286, c.Lon, 1e-9)
}

func TestLookup_NoResult(t *testing.T) {
	g := newTestGeocoder(t)

	httpmock.RegisterResponder(http.MethodGet, responderURL,
		httpmock.NewStringResponder(http.StatusOK, `[]`))

	_, err := g.Lookup(context.Background(), "Atlantis")
	assert.ErrorIs(t, err, geocode.ErrNoResult)
}

func TestLookup_BadStatus(t *testing.T) {
	g := newTestGeocoder(t)

	httpmock.RegisterResponder(http.MethodGet, responderURL,
		httpmock.NewStringResponder(http.StatusTooManyRequests, "slow down"))

	_, err := g.Lookup(context.Background(), "Recife")
	assert.ErrorIs(t, err, geocode.ErrBadStatus)
}

func TestAddCoordinates(t *testing.T) {
	g := newTestGeocoder(t)

	// Serve one fixed coordinate pair per query string.
	coords := map[string]string{
		"BRA":             `[{"lat":"-14.2350","lon":"-51.9253"}]`,
		"Buenos Aires AR": `[{"lat":"-34.6037","lon":"-58.3816"}]`,
	}
	httpmock.RegisterResponder(http.MethodGet, responderURL,
		func(req *http.Request) (*http.Response, error) {
			body, ok := coords[req.URL.Query().Get("q")]
			if !ok {
				return httpmock.NewStringResponse(http.StatusOK, `[]`), nil
			}

			return httpmock.NewStringResponse(http.StatusOK, body), nil
		})

	locs := []epidata.LocationRecord{
		{ID: "BRA", Numeric: map[string]float64{"location_population": 209e6}},
		{ID: "ARG"}, // queried through the queries map, nil Numeric
		{ID: "CHL", Numeric: map[string]float64{"lat": 1, "lon": 2}}, // already enriched
	}

	err := g.AddCoordinates(context.Background(), locs,
		map[string]string{"ARG": "Buenos Aires AR"})
	require.NoError(t, err)

	assert.InDelta(t, -14.2350, locs[0].Numeric["lat"], 1e-9, "BRA lat")
	assert.InDelta(t, -51.9253, locs[0].Numeric["lon"], 1e-9, "BRA lon")
	assert.Equal(t, 209e6, locs[0].Numeric["location_population"], "existing columns kept")

	assert.InDelta(t, -34.6037, locs[1].Numeric["lat"], 1e-9, "ARG via queries map")

	assert.Equal(t, 1.0, locs[2].Numeric["lat"], "already-enriched row untouched")
	assert.Equal(t, 2.0, locs[2].Numeric["lon"], "already-enriched row untouched")

	assert.Equal(t, 2, httpmock.GetTotalCallCount(), "one request per un-enriched row")
}

func TestAddCoordinates_FailureAborts(t *testing.T) {
	g := newTestGeocoder(t)

	httpmock.RegisterResponder(http.MethodGet, responderURL,
		httpmock.NewStringResponder(http.StatusOK, `[]`))

	locs := []epidata.LocationRecord{{ID: "Atlantis"}}
	err := g.AddCoordinates(context.Background(), locs, nil)
	assert.ErrorIs(t, err, geocode.ErrNoResult)
	assert.Nil(t, locs[0].Numeric, "failed row gains no columns")
}
