package epidata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epiflows/epidata"
)

// TestDefaults verifies the built-in mapping and that the returned map
// is a defensive copy.
func TestDefaults(t *testing.T) {
	d := epidata.Defaults()
	assert.Equal(t, "location_population", d[epidata.KeyPopSize], "pop_size default")
	assert.Equal(t, "length_of_stay", d[epidata.KeyDurationStay], "duration_stay default")
	assert.Equal(t, "num_cases_time_window", d[epidata.KeyNumCases], "num_cases default")
	assert.Equal(t, "first_date_cases", d[epidata.KeyFirstDate], "first_date default")
	assert.Equal(t, "last_date_cases", d[epidata.KeyLastDate], "last_date default")

	// Mutating the copy must not leak into a fresh dictionary.
	d[epidata.KeyPopSize] = "mutated"
	col, err := epidata.NewVariableDictionary().Get(epidata.KeyPopSize)
	require.NoError(t, err)
	assert.Equal(t, "location_population", col, "Defaults() must return a copy")
}

// TestVariableDictionary_GetSet covers lookups, overrides, and the
// lazy-validation contract: Set never checks columns exist.
func TestVariableDictionary_GetSet(t *testing.T) {
	vd := epidata.NewVariableDictionary()

	col, err := vd.Get(epidata.KeyNumCases)
	require.NoError(t, err)
	assert.Equal(t, "num_cases_time_window", col)

	// Override to a column that exists nowhere; Set must succeed.
	require.NoError(t, vd.Set(epidata.KeyNumCases, "cases_2016"))
	col, err = vd.Get(epidata.KeyNumCases)
	require.NoError(t, err)
	assert.Equal(t, "cases_2016", col, "override must take effect")

	// Custom keys beyond the canonical set are permitted.
	require.NoError(t, vd.Set("attack_rate", "ar_column"))
	col, err = vd.Get("attack_rate")
	require.NoError(t, err)
	assert.Equal(t, "ar_column", col)
}

// TestVariableDictionary_Errors checks unknown-key and empty-argument
// sentinels via errors.Is branching.
func TestVariableDictionary_Errors(t *testing.T) {
	vd := epidata.NewVariableDictionary()

	_, err := vd.Get("no_such_key")
	assert.ErrorIs(t, err, epidata.ErrUnknownVarKey, "unset key must error")

	assert.ErrorIs(t, vd.Set("", "col"), epidata.ErrEmptyVarKey, "empty key must error")
	assert.ErrorIs(t, vd.Set(epidata.KeyPopSize, ""), epidata.ErrEmptyVarKey, "empty column must error")
}

// TestVariableDictionary_VarsSnapshot verifies Vars returns a snapshot
// that does not alias internal state.
func TestVariableDictionary_VarsSnapshot(t *testing.T) {
	vd := epidata.NewVariableDictionary()

	snap := vd.Vars()
	snap[epidata.KeyPopSize] = "hijacked"

	col, err := vd.Get(epidata.KeyPopSize)
	require.NoError(t, err)
	assert.Equal(t, "location_population", col, "snapshot mutation must not leak")
}
