package epidata

import (
	"fmt"
	"sync"
)

// VariableDictionary maps semantic variable keys (KeyPopSize, ...) to
// the actual column names of a location table.
//
// The dictionary is deliberately lazy: Set never checks that the column
// exists — a key may be pointed at a column before the column does —
// and resolution (Flows.ResolveNumeric / ResolveDate) validates against
// the location row at use time instead.
//
// All methods are safe for concurrent use; an override taken out while
// an estimation run is in flight never corrupts the mapping, though
// which value the run observes depends on ordering as usual.
type VariableDictionary struct {
	mu   sync.RWMutex
	vars map[VarKey]string
}

// NewVariableDictionary returns a dictionary pre-populated with the
// built-in defaults (see Defaults).
// Complexity: O(1)
func NewVariableDictionary() *VariableDictionary {
	return &VariableDictionary{vars: defaultVariables()}
}

// Defaults returns the fixed built-in key → column mapping. The result
// is a fresh copy; mutating it has no effect on any dictionary.
// Pure read, no side effects.
func Defaults() map[VarKey]string {
	return defaultVariables()
}

// Get returns the column name key currently resolves to, or
// ErrUnknownVarKey if the key has never been set.
func (d *VariableDictionary) Get(key VarKey) (string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	col, ok := d.vars[key]
	if !ok {
		return "", fmt.Errorf("epidata: Get(%q): %w", key, ErrUnknownVarKey)
	}

	return col, nil
}

// Set points key at column. Custom keys beyond the canonical set are
// permitted. No validation against any table happens here; a dangling
// column name only surfaces as ErrColumnNotFound at resolution time.
func (d *VariableDictionary) Set(key VarKey, column string) error {
	if key == "" || column == "" {
		return fmt.Errorf("epidata: Set(%q, %q): %w", key, column, ErrEmptyVarKey)
	}

	d.mu.Lock()
	d.vars[key] = column
	d.mu.Unlock()

	return nil
}

// Vars returns a snapshot copy of the current key → column mapping.
func (d *VariableDictionary) Vars() map[VarKey]string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make(map[VarKey]string, len(d.vars))
	for k, v := range d.vars {
		out[k] = v
	}

	return out
}
