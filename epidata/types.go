// Package epidata declares FlowRecord, LocationRecord, VarKey,
// sentinel errors, and the canonical variable-dictionary defaults.
//
// Errors:
//
//	ErrNoLocations       - location table is empty.
//	ErrEmptyLocationID   - a location row has an empty ID.
//	ErrDuplicateLocation - two location rows share the same ID.
//	ErrUnknownLocation   - a referenced location ID does not exist.
//	ErrNegativeCases     - a flow row carries a negative case count.
//	ErrUnknownVarKey     - the dictionary holds no entry for a key.
//	ErrEmptyVarKey       - an empty key or column name was supplied.
//	ErrColumnNotFound    - a resolved column is absent from a location row.
package epidata

import (
	"errors"
	"time"
)

// Sentinel errors for container construction and dictionary resolution.
var (
	// ErrNoLocations indicates the location table was empty.
	ErrNoLocations = errors.New("epidata: location table is empty")

	// ErrEmptyLocationID indicates a location row with an empty ID.
	ErrEmptyLocationID = errors.New("epidata: location ID is empty")

	// ErrDuplicateLocation indicates two location rows with the same ID.
	ErrDuplicateLocation = errors.New("epidata: duplicate location ID")

	// ErrUnknownLocation indicates a referenced location ID that is not
	// present in the location table.
	ErrUnknownLocation = errors.New("epidata: location not found")

	// ErrNegativeCases indicates a flow row with NumCases < 0.
	ErrNegativeCases = errors.New("epidata: negative case count")

	// ErrUnknownVarKey indicates a dictionary lookup for an unset key.
	ErrUnknownVarKey = errors.New("epidata: variable key not set")

	// ErrEmptyVarKey indicates an empty key or column name passed to Set.
	ErrEmptyVarKey = errors.New("epidata: empty variable key or column")

	// ErrColumnNotFound indicates the column a dictionary key resolves to
	// is absent from the location row being read.
	ErrColumnNotFound = errors.New("epidata: column not found")
)

// FlowRecord is one row of the flow table: an estimated number of case
// movements From one location To another over the observation window.
//
// NumCases is an estimate and may be fractional; it must be ≥ 0.
type FlowRecord struct {
	// From is the origin location ID.
	From string

	// To is the destination location ID.
	To string

	// NumCases is the (possibly fractional) case volume on this edge.
	NumCases float64
}

// LocationRecord is one row of the location table.
//
// Numeric and Dates hold the row's columns keyed by their original
// source column names, so the VariableDictionary indirection keeps
// working after normalization into structured records. Maps are shared
// shallowly by the container, mirroring how graph metadata is shared
// on clone elsewhere in this family of libraries.
type LocationRecord struct {
	// ID uniquely identifies this location within its table.
	ID string

	// Numeric holds numeric columns (population, mean stay, case counts,
	// coordinates, ...) by source column name.
	Numeric map[string]float64

	// Dates holds date columns (observation window bounds, ...) by
	// source column name.
	Dates map[string]time.Time
}

// VarKey is a semantic variable name resolved through the
// VariableDictionary into an actual column name.
type VarKey string

// Canonical variable keys understood by the estimator.
const (
	// KeyPopSize names the population-size column (positive number).
	KeyPopSize VarKey = "pop_size"

	// KeyDurationStay names the mean duration-of-stay column, in days.
	KeyDurationStay VarKey = "duration_stay"

	// KeyNumCases names the case-count-in-window column (≥ 0).
	KeyNumCases VarKey = "num_cases"

	// KeyFirstDate names the first observation date column.
	KeyFirstDate VarKey = "first_date"

	// KeyLastDate names the last observation date column.
	KeyLastDate VarKey = "last_date"
)

// defaultVariables is the fixed built-in mapping from canonical keys to
// the column names used by the reference datasets.
func defaultVariables() map[VarKey]string {
	return map[VarKey]string{
		KeyPopSize:      "location_population",
		KeyDurationStay: "length_of_stay",
		KeyNumCases:     "num_cases_time_window",
		KeyFirstDate:    "first_date_cases",
		KeyLastDate:     "last_date_cases",
	}
}
