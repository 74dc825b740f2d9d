// Package geocode enriches location rows with geographic coordinates
// fetched from an external geocoding web service.
//
// 🚀 What is geocode?
//
//	Mapping and downstream visualization want a lat/lon pair per
//	location, but flow datasets usually ship without them. geocode
//	fills the gap: it queries a Nominatim-style JSON endpoint and
//	writes two numeric columns ("lat", "lon") onto epidata
//	LocationRecord rows before the container is built.
//
// The estimator never consults these columns; enrichment is a strictly
// optional, side-band concern. Run it before epidata.New — the
// container's tables are immutable afterwards.
//
// ⚙️ Usage:
//
//	g := geocode.New(geocode.WithUserAgent("epiflows-demo/1.0"))
//	if err := g.AddCoordinates(ctx, locs, nil); err != nil { ... }
//	f, err := epidata.New(flows, locs)
//
// Failures (HTTP errors, empty result sets) are reported per location
// with wrapped sentinels (ErrBadStatus, ErrNoResult) and stop the
// enrichment pass; rows already carrying both coordinate columns are
// left untouched.
//
// Be a good citizen: public geocoding services require a descriptive
// User-Agent and modest request rates.
package geocode
