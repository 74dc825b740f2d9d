// Package riskspread estimates, by Monte Carlo simulation, the number
// of undetected infectious travelers likely to have moved from a source
// location toward each of its directly connected destinations during an
// observation window.
//
// 🚀 What is risk-of-spread estimation?
//
//	Given a source location with an ongoing outbreak, case flows toward
//	a set of destinations, and epidemiological period distributions
//	(incubation, infectious), riskspread answers: "how many cases does
//	each destination plausibly receive while still undetected?" It is
//	used in outbreak response to rank destinations by importation risk.
//
// Model outline, per destination d reachable from the source s:
//
//  1. Resolve parameters through the container's variable dictionary
//     (or run-scoped overrides): duration of stay at d, population size
//     at d, case counts and date windows at both s and d.
//  2. Compute a deterministic scaling of reported cases into cases
//     actually present: per-capita incidence at s over the window.
//  3. For each of nSim independent trials, draw a stay duration at d
//     (or take the deterministic override), an incubation period and an
//     infectious period, and combine flow volume, scaling, and the
//     sampled periods through the combination rule: the probability an
//     individual remains infectious on or during arrival compares the
//     sampled incubation+infectious duration against the stay duration.
//  4. Summarize the nSim draws per destination into mean and empirical
//     95% interval, or hand back the raw vectors (ReturnAll).
//
// ✨ Key features:
//
//   - Injected sampling strategy — incubation and infectious samplers
//     are opaque functions from a count to that many non-negative draws
//   - Injectable combination rule — the literal per-trial arithmetic is
//     a CombineFunc; DefaultCombine is the documented reference rule
//   - Run-scoped overrides — per-destination stay vectors, population
//     sizes or case counts bypass the dictionary without mutating the
//     container
//   - Strict fail-fast errors — no partial results, no silent recovery;
//     Monte Carlo noise is the only accepted source of variability
//   - Reproducible — the estimator holds no random state; seed the
//     sampler sources and identical runs produce identical output
//
// ⚙️ Usage:
//
//	import (
//	    "github.com/katalvlaran/epiflows/riskspread"
//	    "github.com/katalvlaran/epiflows/samplers"
//	)
//
//	src := rand.NewPCG(1, 2)
//	res, err := riskspread.EstimateRiskSpread(f, "BRA",
//	    samplers.LogNormal(1.46, 0.35, src),
//	    samplers.Normal(4.5, 1.5, src),
//	    100_000, nil)
//	for _, e := range res.Estimates {
//	    fmt.Printf("%s: %.2f [%.2f, %.2f]\n",
//	        e.Location, e.MeanCases, e.LowerCI, e.UpperCI)
//	}
//
// Performance:
//
//   - Time:   O(D · nSim) for D destinations
//   - Memory: O(D · nSim) in ReturnAll mode, O(nSim) otherwise
//
// The trial loop is single-threaded on purpose: draws are consumed in a
// fixed destination-major order so a seeded run is bit-reproducible.
//
// See examples in example_test.go for a complete walkthrough.
package riskspread
