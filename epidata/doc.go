// Package epidata defines the typed data model consumed by the
// risk-of-spread estimator: flow records, location metadata rows, the
// variable dictionary, and the Flows container that binds them.
//
// 🚀 What is epidata?
//
//	Case flows between locations rarely arrive with tidy column names.
//	One dataset calls its population column "location_population",
//	another "pop2015". epidata normalizes both worlds:
//
//	  • FlowRecord          — (From, To, NumCases) triples
//	  • LocationRecord      — one row per location; numeric and date
//	    columns keyed by their original source names
//	  • VariableDictionary  — semantic key → column name indirection
//	    ("pop_size" → "location_population"), overridable at any time
//	  • Flows               — the validated, immutable container that
//	    the estimator consumes
//
// ✨ Key guarantees:
//
//   - Referential integrity — every flow endpoint exists in the
//     location table, checked at construction
//   - Unique location IDs — duplicate rows are rejected outright
//   - Lazy column resolution — dictionary entries may point at columns
//     that do not exist yet; usage fails, setting never does
//   - Safe overrides — dictionary mutation is guarded by an RWMutex and
//     never touches the tables, so a concurrent estimation run only
//     ever sees a consistent mapping
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/epiflows/epidata"
//
//	f, err := epidata.New(flows, locations,
//	    epidata.WithPopSizeColumn("pop2015"),
//	    epidata.WithDurationStayColumn("mean_stay_days"),
//	)
//	if err != nil { ... }
//
//	pop, err := f.ResolveNumeric("BRA", epidata.KeyPopSize)
//
// See examples in example_test.go for the full construction walkthrough.
package epidata
