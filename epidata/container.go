package epidata

import (
	"fmt"
	"time"
)

// Flows is the validated container pairing one flow table, one location
// table, and one variable dictionary. It is the only object the
// risk-of-spread estimator consumes.
//
// After construction the tables are immutable; the single sanctioned
// mutation is a dictionary override through Vars().Set, which never
// touches the tables.
type Flows struct {
	flows     []FlowRecord
	locations []LocationRecord
	index     map[string]int // location ID → row position
	dict      *VariableDictionary
}

// Option configures column naming at container construction.
type Option func(d *VariableDictionary) error

// WithVariable points an arbitrary dictionary key at a source column.
func WithVariable(key VarKey, column string) Option {
	return func(d *VariableDictionary) error { return d.Set(key, column) }
}

// WithPopSizeColumn names the population-size column.
func WithPopSizeColumn(column string) Option {
	return WithVariable(KeyPopSize, column)
}

// WithDurationStayColumn names the mean duration-of-stay column.
func WithDurationStayColumn(column string) Option {
	return WithVariable(KeyDurationStay, column)
}

// WithNumCasesColumn names the case-count-in-window column.
func WithNumCasesColumn(column string) Option {
	return WithVariable(KeyNumCases, column)
}

// WithFirstDateColumn names the first observation date column.
func WithFirstDateColumn(column string) Option {
	return WithVariable(KeyFirstDate, column)
}

// WithLastDateColumn names the last observation date column.
func WithLastDateColumn(column string) Option {
	return WithVariable(KeyLastDate, column)
}

// New builds a Flows container from a flow table and a location table,
// applying the column-naming options on top of the built-in defaults.
//
// Validation performed here (all-or-nothing, first failure wins):
//   - the location table must be non-empty, with non-empty, unique IDs;
//   - every flow endpoint must reference an existing location;
//   - every flow must carry NumCases ≥ 0.
//
// Dictionary entries are NOT validated here; resolution is lazy.
//
// The input slices are copied; row maps are shared shallowly. Callers
// must not mutate the Numeric or Dates maps after construction, or the
// container's rows change underneath it.
// Complexity: O(L + F) time, O(L + F) memory.
func New(flows []FlowRecord, locations []LocationRecord, opts ...Option) (*Flows, error) {
	if len(locations) == 0 {
		return nil, fmt.Errorf("epidata: New: %w", ErrNoLocations)
	}

	// Index locations, rejecting empty and duplicate IDs.
	index := make(map[string]int, len(locations))
	locs := make([]LocationRecord, len(locations))
	for i, loc := range locations {
		if loc.ID == "" {
			return nil, fmt.Errorf("epidata: New: row %d: %w", i, ErrEmptyLocationID)
		}
		if _, dup := index[loc.ID]; dup {
			return nil, fmt.Errorf("epidata: New: %q: %w", loc.ID, ErrDuplicateLocation)
		}
		index[loc.ID] = i
		locs[i] = loc
	}

	// Check flow rows against the indexed location table.
	rows := make([]FlowRecord, len(flows))
	for i, fr := range flows {
		if fr.NumCases < 0 {
			return nil, fmt.Errorf("epidata: New: flow %q→%q (%g): %w",
				fr.From, fr.To, fr.NumCases, ErrNegativeCases)
		}
		if _, ok := index[fr.From]; !ok {
			return nil, fmt.Errorf("epidata: New: flow origin %q: %w", fr.From, ErrUnknownLocation)
		}
		if _, ok := index[fr.To]; !ok {
			return nil, fmt.Errorf("epidata: New: flow destination %q: %w", fr.To, ErrUnknownLocation)
		}
		rows[i] = fr
	}

	// Resolve column naming on top of the defaults.
	dict := NewVariableDictionary()
	for _, opt := range opts {
		if err := opt(dict); err != nil {
			return nil, fmt.Errorf("epidata: New: %w", err)
		}
	}

	return &Flows{flows: rows, locations: locs, index: index, dict: dict}, nil
}

// Flows returns a copy of the flow table in input order.
func (f *Flows) Flows() []FlowRecord {
	out := make([]FlowRecord, len(f.flows))
	copy(out, f.flows)

	return out
}

// Locations returns a copy of the location table in input order.
func (f *Flows) Locations() []LocationRecord {
	out := make([]LocationRecord, len(f.locations))
	copy(out, f.locations)

	return out
}

// Location returns the row for id and whether it exists.
func (f *Flows) Location(id string) (LocationRecord, bool) {
	i, ok := f.index[id]
	if !ok {
		return LocationRecord{}, false
	}

	return f.locations[i], true
}

// HasLocation reports whether id exists in the location table.
func (f *Flows) HasLocation(id string) bool {
	_, ok := f.index[id]

	return ok
}

// FlowsFrom returns all flow rows with origin source, preserving their
// order of appearance in the flow table.
func (f *Flows) FlowsFrom(source string) []FlowRecord {
	var out []FlowRecord
	for _, fr := range f.flows {
		if fr.From == source {
			out = append(out, fr)
		}
	}

	return out
}

// FlowsTo returns all flow rows with destination dest, preserving their
// order of appearance in the flow table.
func (f *Flows) FlowsTo(dest string) []FlowRecord {
	var out []FlowRecord
	for _, fr := range f.flows {
		if fr.To == dest {
			out = append(out, fr)
		}
	}

	return out
}

// Vars returns the container's variable dictionary. Overrides taken out
// through it mutate only the dictionary, never the tables.
func (f *Flows) Vars() *VariableDictionary {
	return f.dict
}

// ResolveNumeric resolves key through the dictionary and reads the
// numeric value of the resulting column on location id.
//
// Errors: ErrUnknownVarKey (key unset), ErrUnknownLocation (bad id),
// ErrColumnNotFound (column absent from the row).
func (f *Flows) ResolveNumeric(id string, key VarKey) (float64, error) {
	col, err := f.dict.Get(key)
	if err != nil {
		return 0, err
	}

	loc, ok := f.Location(id)
	if !ok {
		return 0, fmt.Errorf("epidata: ResolveNumeric(%q, %q): %w", id, key, ErrUnknownLocation)
	}

	v, ok := loc.Numeric[col]
	if !ok {
		return 0, fmt.Errorf("epidata: ResolveNumeric(%q, %q): column %q: %w",
			id, key, col, ErrColumnNotFound)
	}

	return v, nil
}

// ResolveDate resolves key through the dictionary and reads the date
// value of the resulting column on location id.
//
// Errors mirror ResolveNumeric.
func (f *Flows) ResolveDate(id string, key VarKey) (time.Time, error) {
	col, err := f.dict.Get(key)
	if err != nil {
		return time.Time{}, err
	}

	loc, ok := f.Location(id)
	if !ok {
		return time.Time{}, fmt.Errorf("epidata: ResolveDate(%q, %q): %w", id, key, ErrUnknownLocation)
	}

	v, ok := loc.Dates[col]
	if !ok {
		return time.Time{}, fmt.Errorf("epidata: ResolveDate(%q, %q): column %q: %w",
			id, key, col, ErrColumnNotFound)
	}

	return v, nil
}
