package riskspread

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestQuantile_LinearInterpolation pins the frozen type-7 rule against
// hand-computed reference values on 1..10.
func TestQuantile_LinearInterpolation(t *testing.T) {
	sorted := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	tests := []struct {
		p    float64
		want float64
	}{
		{0.0, 1.0},
		{0.025, 1.225}, // h = 9·0.025 = 0.225
		{0.5, 5.5},     // h = 4.5
		{0.975, 9.775}, // h = 8.775
		{1.0, 10.0},
	}

	for _, tc := range tests {
		assert.InDelta(t, tc.want, quantile(sorted, tc.p), 1e-12, "p=%g", tc.p)
	}
}

// TestQuantile_SingleSample: every quantile of one sample is that sample.
func TestQuantile_SingleSample(t *testing.T) {
	assert.Equal(t, 3.5, quantile([]float64{3.5}, 0.025))
	assert.Equal(t, 3.5, quantile([]float64{3.5}, 0.975))
}

// TestSummarize covers ordering of the returned triple and the
// all-zero-vector contract.
func TestSummarize(t *testing.T) {
	m, lo, hi := summarize([]float64{4, 1, 3, 2})
	assert.InDelta(t, 2.5, m, 1e-12, "mean")
	assert.LessOrEqual(t, lo, m, "lower ≤ mean")
	assert.LessOrEqual(t, m, hi, "mean ≤ upper")

	m, lo, hi = summarize(make([]float64, 64))
	assert.Zero(t, m, "all-zero mean")
	assert.Zero(t, lo, "all-zero lower")
	assert.Zero(t, hi, "all-zero upper")
}

// TestSummarize_InputUntouched: summarize must sort a copy, never the
// caller's vector (ReturnAll hands vectors out in trial order).
func TestSummarize_InputUntouched(t *testing.T) {
	values := []float64{4, 1, 3, 2}
	summarize(values)
	assert.Equal(t, []float64{4, 1, 3, 2}, values)
}
