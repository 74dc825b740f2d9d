// SPDX-License-Identifier: MIT
// Package: riskspread
//
// stats.go — aggregation of raw simulation vectors into summary rows.
//
// Purpose:
//   - Turn one per-destination vector of nSim trial estimates into
//     (mean, 2.5th percentile, 97.5th percentile).
//   - Keep the quantile interpolation rule explicit and fixed, because
//     interval bounds are part of the reproducibility contract.
//
// Determinism & numeric policy:
//   - quantile uses linear interpolation between order statistics
//     (the R type-7 rule: h = (n-1)·p, interpolate between floor(h)
//     and floor(h)+1). This exact rule is frozen; changing it changes
//     published interval bounds.
//   - All-zero vectors summarize to (0, 0, 0) without special casing.
//   - Sorting happens on a copy; input vectors are never reordered,
//     since ReturnAll mode hands them to the caller in trial order.

package riskspread

import (
	"slices"

	"gonum.org/v1/gonum/stat"
)

// Interval probabilities for the 95% empirical interval.
const (
	lowerProb = 0.025
	upperProb = 0.975
)

// summarize reduces one simulation vector to its arithmetic mean and
// empirical 95% interval bounds. values must be non-empty; the
// estimator guarantees len(values) == nSim ≥ 1.
// Complexity: O(n log n) time for the sort, O(n) memory for the copy.
func summarize(values []float64) (m, lower, upper float64) {
	m = mean(values)

	sorted := slices.Clone(values)
	slices.Sort(sorted)
	lower = quantile(sorted, lowerProb)
	upper = quantile(sorted, upperProb)

	return m, lower, upper
}

// mean is the arithmetic mean of values.
func mean(values []float64) float64 {
	return stat.Mean(values, nil)
}

// quantile returns the p-quantile of sorted (ascending) by linear
// interpolation between order statistics:
//
//	h = (n-1)·p,  q = x[⌊h⌋] + (h-⌊h⌋)·(x[⌊h⌋+1] - x[⌊h⌋])
//
// For n == 1 every quantile is the single sample.
func quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}

	h := float64(n-1) * p
	i := int(h)
	if i >= n-1 {
		return sorted[n-1]
	}

	return sorted[i] + (h-float64(i))*(sorted[i+1]-sorted[i])
}
