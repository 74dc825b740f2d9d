// Package riskspread declares the Sampler and CombineFunc strategies,
// run Options, Result types, and sentinel errors.
//
// Errors:
//
//	ErrNilFlows          - nil container.
//	ErrUnknownSource     - source location absent from the location table.
//	ErrNoFlowsFromSource - source has no outbound flow records.
//	ErrBadSimCount       - number of simulations < 1.
//	ErrNilSampler        - nil incubation or infectious sampler.
//	ErrSamplerOutput     - sampler returned wrong length, NaN or negative draws.
//	ErrBadOverride       - override vector of invalid length or value.
//	ErrBadMetadata       - resolved metadata out of domain (pop ≤ 0, cases < 0, stay < 0).
//	ErrBadDateWindow     - first observation date after the last.
package riskspread

import "errors"

// Sentinel errors for estimator input validation and resolution.
var (
	// ErrNilFlows indicates a nil Flows container.
	ErrNilFlows = errors.New("riskspread: nil Flows container")

	// ErrUnknownSource indicates the source location does not exist.
	ErrUnknownSource = errors.New("riskspread: source location not found")

	// ErrNoFlowsFromSource indicates the source has no outbound flows.
	ErrNoFlowsFromSource = errors.New("riskspread: source has no outbound flows")

	// ErrBadSimCount indicates a non-positive number of simulations.
	ErrBadSimCount = errors.New("riskspread: number of simulations must be >= 1")

	// ErrNilSampler indicates a nil incubation or infectious sampler.
	ErrNilSampler = errors.New("riskspread: nil sampler")

	// ErrSamplerOutput indicates a sampler returned the wrong number of
	// draws, or a draw that is NaN or negative.
	ErrSamplerOutput = errors.New("riskspread: malformed sampler output")

	// ErrBadOverride indicates an override vector whose length is neither
	// 1 nor the number of simulations, or which holds a negative value.
	ErrBadOverride = errors.New("riskspread: malformed override")

	// ErrBadMetadata indicates resolved location metadata out of domain.
	ErrBadMetadata = errors.New("riskspread: invalid location metadata")

	// ErrBadDateWindow indicates first_date after last_date.
	ErrBadDateWindow = errors.New("riskspread: first date after last date")
)

// Sampler draws n independent non-negative durations (days) from some
// distribution. The estimator treats the distribution as opaque: any
// function honoring the contract — exactly n draws, each ≥ 0 and not
// NaN — can be supplied. See the samplers package for ready-made ones.
type Sampler func(n int) []float64

// TrialParams carries every resolved quantity available to one
// simulation trial for one destination. All durations are in days.
type TrialParams struct {
	// FlowVolume is the summed case volume on source→destination rows.
	FlowVolume float64

	// WindowDays is the source observation window length.
	WindowDays float64

	// PopSource and CasesSource are the source location's population
	// size and observed case count in the window.
	PopSource, CasesSource float64

	// PopDest, CasesDest and WindowDaysDest are the destination's
	// resolved metadata. DefaultCombine does not consume them; they are
	// resolved and validated so alternative rules can.
	PopDest, CasesDest, WindowDaysDest float64

	// Stay is this trial's duration of stay at the destination.
	Stay float64

	// Incubation and Infectious are this trial's sampled periods.
	Incubation, Infectious float64
}

// CombineFunc is the per-trial arithmetic rule turning TrialParams into
// an expected number of undetected infectious arrivals (≥ 0). It is
// injectable so the literal formula can be validated against reference
// output, or swapped for a different traveler model, without touching
// the estimator. Implementations must be pure and must not return
// negative values or NaN; the estimator does not police this.
type CombineFunc func(p TrialParams) float64

// daysPerYear converts annual flow volumes to the observation window.
const daysPerYear = 365.0

// DefaultCombine is the reference combination rule:
//
//	scale = (CasesSource / PopSource) · (WindowDays / 365)
//	pInf  = min(1, (Incubation + Infectious) / Stay)
//	value = FlowVolume · scale · pInf
//
// scale is the deterministic reported→present case scaling (per-capita
// incidence at the source over the window); pInf is the probability
// mass of an individual remaining infectious relative to the stay
// duration. A non-positive Stay means the whole infectious period
// lands on arrival, so pInf = 1.
func DefaultCombine(p TrialParams) float64 {
	pInf := 1.0
	if p.Stay > 0 {
		pInf = (p.Incubation + p.Infectious) / p.Stay
		if pInf > 1 {
			pInf = 1
		}
	}

	scale := p.CasesSource / p.PopSource * (p.WindowDays / daysPerYear)

	return p.FlowVolume * scale * pInf
}

// Options configures a single estimation run. The zero value is valid:
// summary output, no overrides, DefaultCombine, quiet.
type Options struct {
	// ReturnAll selects raw per-destination simulation vectors instead
	// of the summary table.
	ReturnAll bool

	// StayOverrides supplies duration-of-stay values per destination ID,
	// bypassing the dictionary for this run only. A vector of length 1
	// fixes the stay for every trial; length nSim fixes it per trial.
	StayOverrides map[string][]float64

	// PopSizeOverrides supplies population sizes per location ID,
	// bypassing the dictionary for this run only.
	PopSizeOverrides map[string]float64

	// NumCasesOverrides supplies observed case counts per location ID,
	// bypassing the dictionary for this run only.
	NumCasesOverrides map[string]float64

	// WindowDays, when > 0, fixes the observation window length for
	// every location, bypassing date resolution entirely.
	WindowDays float64

	// Combine replaces DefaultCombine for this run.
	Combine CombineFunc

	// Verbose prints one progress line per destination via fmt.Printf.
	Verbose bool
}

// DefaultOptions returns the default estimation options.
func DefaultOptions() Options {
	return Options{}
}

// LocationEstimate is one summary row: the mean estimated number of
// undetected infectious arrivals at Location, with the empirical 95%
// interval bounds of the simulation vector.
type LocationEstimate struct {
	Location  string
	MeanCases float64
	LowerCI   float64
	UpperCI   float64
}

// Simulation is one raw-output row: the full vector of per-trial
// estimates for Location, in trial order.
type Simulation struct {
	Location string
	Values   []float64
}

// Result is the outcome of one estimation run. Exactly one of the two
// slices is populated, per Options.ReturnAll; both follow destination
// order as destinations first appear in the source's flow records.
type Result struct {
	// Estimates holds one summary row per destination (summary mode).
	Estimates []LocationEstimate

	// Simulations holds one raw vector per destination (ReturnAll mode).
	Simulations []Simulation
}
