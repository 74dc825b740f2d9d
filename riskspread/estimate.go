package riskspread

import (
	"fmt"
	"math"

	"github.com/katalvlaran/epiflows/epidata"
)

// EstimateRiskSpread runs the Monte Carlo risk-of-spread estimation for
// every destination directly connected to source in f's flow table.
//
// It returns:
//   - res: one summary row per distinct destination (or the raw
//     simulation vectors when opts.ReturnAll), in the order destinations
//     first appear in the source's flow records
//   - err: non-nil on any invalid input, unresolved parameter, or
//     malformed sampler output; a failed call yields no partial result.
//
// incubation and infectious draw the epidemiological periods; nSim is
// the number of trials per destination. opts may be nil for defaults.
//
// The estimator holds no random state: runs are reproducible exactly
// when the caller seeds the samplers' sources. Parallel flow rows to
// the same destination are summed, as parallel edges are elsewhere in
// this family of libraries.
//
// Complexity: O(D · nSim) time, O(D · nSim) memory in ReturnAll mode.
func EstimateRiskSpread(
	f *epidata.Flows,
	source string,
	incubation, infectious Sampler,
	nSim int,
	opts *Options,
) (*Result, error) {
	// 1) Validate call parameters.
	if f == nil {
		return nil, ErrNilFlows
	}
	if nSim < 1 {
		return nil, fmt.Errorf("riskspread: EstimateRiskSpread: nSim=%d: %w", nSim, ErrBadSimCount)
	}
	if incubation == nil || infectious == nil {
		return nil, ErrNilSampler
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	combine := o.Combine
	if combine == nil {
		combine = DefaultCombine
	}

	// 2) Validate the source and collect its outbound flows.
	if !f.HasLocation(source) {
		return nil, fmt.Errorf("riskspread: EstimateRiskSpread: %q: %w", source, ErrUnknownSource)
	}
	outbound := f.FlowsFrom(source)
	if len(outbound) == 0 {
		return nil, fmt.Errorf("riskspread: EstimateRiskSpread: %q: %w", source, ErrNoFlowsFromSource)
	}

	// 3) Distinct destinations in first-appearance order; parallel flow
	// rows to the same destination sum their volumes.
	dests := make([]string, 0, len(outbound))
	volume := make(map[string]float64, len(outbound))
	for _, fr := range outbound {
		if _, seen := volume[fr.To]; !seen {
			dests = append(dests, fr.To)
		}
		volume[fr.To] += fr.NumCases
	}

	// 4) Resolve deterministic source metadata once.
	src, err := resolveLocation(f, source, &o)
	if err != nil {
		return nil, err
	}

	// 5) Simulate each destination.
	vectors := make([][]float64, len(dests))
	for di, d := range dests {
		dst, err := resolveLocation(f, d, &o)
		if err != nil {
			return nil, err
		}

		stays, err := stayValues(f, d, nSim, &o)
		if err != nil {
			return nil, err
		}

		inc, err := drawPeriods(incubation, nSim)
		if err != nil {
			return nil, err
		}
		inf, err := drawPeriods(infectious, nSim)
		if err != nil {
			return nil, err
		}

		base := TrialParams{
			FlowVolume:     volume[d],
			WindowDays:     src.windowDays,
			PopSource:      src.pop,
			CasesSource:    src.cases,
			PopDest:        dst.pop,
			CasesDest:      dst.cases,
			WindowDaysDest: dst.windowDays,
		}

		values := make([]float64, nSim)
		for i := range values {
			p := base
			p.Stay = stays[i%len(stays)]
			p.Incubation = inc[i]
			p.Infectious = inf[i]
			values[i] = combine(p)
		}
		vectors[di] = values

		if o.Verbose {
			fmt.Printf("riskspread: %s→%s: %d trials, mean %.4g\n",
				source, d, nSim, mean(values))
		}
	}

	// 6) Assemble the result; order follows dests throughout.
	res := &Result{}
	if o.ReturnAll {
		res.Simulations = make([]Simulation, len(dests))
		for di, d := range dests {
			res.Simulations[di] = Simulation{Location: d, Values: vectors[di]}
		}

		return res, nil
	}

	res.Estimates = make([]LocationEstimate, len(dests))
	for di, d := range dests {
		m, lo, hi := summarize(vectors[di])
		res.Estimates[di] = LocationEstimate{Location: d, MeanCases: m, LowerCI: lo, UpperCI: hi}
	}

	return res, nil
}

// locationParams holds one location's deterministically resolved
// metadata for a single run.
type locationParams struct {
	pop, cases, windowDays float64
}

// resolveLocation resolves population size, observed case count, and
// observation window length for id, honoring run-scoped overrides.
func resolveLocation(f *epidata.Flows, id string, o *Options) (locationParams, error) {
	var lp locationParams
	var err error

	lp.pop, err = resolveNumeric(f, id, epidata.KeyPopSize, o.PopSizeOverrides)
	if err != nil {
		return lp, err
	}
	if lp.pop <= 0 || math.IsNaN(lp.pop) {
		return lp, fmt.Errorf("riskspread: %q: population %g: %w", id, lp.pop, ErrBadMetadata)
	}

	lp.cases, err = resolveNumeric(f, id, epidata.KeyNumCases, o.NumCasesOverrides)
	if err != nil {
		return lp, err
	}
	if lp.cases < 0 || math.IsNaN(lp.cases) {
		return lp, fmt.Errorf("riskspread: %q: case count %g: %w", id, lp.cases, ErrBadMetadata)
	}

	if o.WindowDays > 0 {
		lp.windowDays = o.WindowDays

		return lp, nil
	}

	first, err := f.ResolveDate(id, epidata.KeyFirstDate)
	if err != nil {
		return lp, err
	}
	last, err := f.ResolveDate(id, epidata.KeyLastDate)
	if err != nil {
		return lp, err
	}
	if last.Before(first) {
		return lp, fmt.Errorf("riskspread: %q: %s > %s: %w",
			id, first.Format("2006-01-02"), last.Format("2006-01-02"), ErrBadDateWindow)
	}
	lp.windowDays = last.Sub(first).Hours() / 24

	return lp, nil
}

// resolveNumeric reads one numeric parameter for id from overrides
// first, falling back to dictionary resolution on the container.
func resolveNumeric(f *epidata.Flows, id string, key epidata.VarKey, overrides map[string]float64) (float64, error) {
	if v, ok := overrides[id]; ok {
		return v, nil
	}

	return f.ResolveNumeric(id, key)
}

// stayValues resolves the duration-of-stay values for destination d.
// It returns a vector of length 1 (constant stay for all trials) or
// nSim (deterministic per-trial stays from an override).
func stayValues(f *epidata.Flows, d string, nSim int, o *Options) ([]float64, error) {
	if ov, ok := o.StayOverrides[d]; ok {
		if len(ov) != 1 && len(ov) != nSim {
			return nil, fmt.Errorf("riskspread: stay override for %q: length %d, want 1 or %d: %w",
				d, len(ov), nSim, ErrBadOverride)
		}
		for _, v := range ov {
			if v < 0 || math.IsNaN(v) {
				return nil, fmt.Errorf("riskspread: stay override for %q: value %g: %w", d, v, ErrBadOverride)
			}
		}

		return ov, nil
	}

	stay, err := f.ResolveNumeric(d, epidata.KeyDurationStay)
	if err != nil {
		return nil, err
	}
	if stay < 0 || math.IsNaN(stay) {
		return nil, fmt.Errorf("riskspread: %q: duration of stay %g: %w", d, stay, ErrBadMetadata)
	}

	return []float64{stay}, nil
}

// drawPeriods invokes a sampler for n draws and validates its output:
// exactly n values, each non-negative and not NaN.
func drawPeriods(s Sampler, n int) ([]float64, error) {
	out := s(n)
	if len(out) != n {
		return nil, fmt.Errorf("riskspread: sampler returned %d draws, want %d: %w",
			len(out), n, ErrSamplerOutput)
	}
	for i, v := range out {
		if v < 0 || math.IsNaN(v) {
			return nil, fmt.Errorf("riskspread: sampler draw %d is %g: %w", i, v, ErrSamplerOutput)
		}
	}

	return out, nil
}
