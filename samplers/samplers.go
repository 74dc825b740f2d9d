package samplers

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/epiflows/riskspread"
)

// Constant returns a Sampler whose every draw equals v.
// Panics if v is negative.
func Constant(v float64) riskspread.Sampler {
	if v < 0 {
		panic(fmt.Sprintf("samplers: Constant(%g): negative value", v))
	}

	return func(n int) []float64 {
		out := make([]float64, n)
		for i := range out {
			out[i] = v
		}

		return out
	}
}

// LogNormal returns a Sampler drawing from LogNormal(mu, sigma), the
// classic incubation-period model. mu and sigma are the mean and
// standard deviation of the underlying normal, in log-days.
// Panics if sigma ≤ 0.
func LogNormal(mu, sigma float64, src rand.Source) riskspread.Sampler {
	if sigma <= 0 {
		panic(fmt.Sprintf("samplers: LogNormal(%g, %g): sigma must be > 0", mu, sigma))
	}
	dist := distuv.LogNormal{Mu: mu, Sigma: sigma, Src: src}

	return fill(dist.Rand)
}

// Normal returns a Sampler drawing from Normal(mean, sd) truncated to
// non-negative values by redraw, so the Sampler contract (draws ≥ 0)
// holds even when the untruncated distribution has mass below zero.
// Panics if sd ≤ 0.
func Normal(mean, sd float64, src rand.Source) riskspread.Sampler {
	if sd <= 0 {
		panic(fmt.Sprintf("samplers: Normal(%g, %g): sd must be > 0", mean, sd))
	}
	dist := distuv.Normal{Mu: mean, Sigma: sd, Src: src}

	return fill(func() float64 {
		v := dist.Rand()
		for v < 0 {
			v = dist.Rand()
		}

		return v
	})
}

// Gamma returns a Sampler drawing from Gamma(alpha, beta) with shape
// alpha and rate beta, a flexible strictly-positive period model.
// Panics if alpha ≤ 0 or beta ≤ 0.
func Gamma(alpha, beta float64, src rand.Source) riskspread.Sampler {
	if alpha <= 0 || beta <= 0 {
		panic(fmt.Sprintf("samplers: Gamma(%g, %g): parameters must be > 0", alpha, beta))
	}
	dist := distuv.Gamma{Alpha: alpha, Beta: beta, Src: src}

	return fill(dist.Rand)
}

// Empirical returns a Sampler that bootstraps (resamples with
// replacement) from observations, e.g. a survey of observed stay
// durations at a location.
// Panics if observations is empty or holds a negative value.
func Empirical(observations []float64, src rand.Source) riskspread.Sampler {
	if len(observations) == 0 {
		panic("samplers: Empirical: no observations")
	}
	for i, v := range observations {
		if v < 0 {
			panic(fmt.Sprintf("samplers: Empirical: observation %d is negative (%g)", i, v))
		}
	}
	obs := append([]float64(nil), observations...)

	rng := rand.New(orGlobal(src))

	return fill(func() float64 {
		return obs[rng.IntN(len(obs))]
	})
}

// fill adapts a single-draw function to the Sampler contract.
func fill(draw func() float64) riskspread.Sampler {
	return func(n int) []float64 {
		out := make([]float64, n)
		for i := range out {
			out[i] = draw()
		}

		return out
	}
}

// orGlobal returns src unchanged, or, when src is nil, a fresh PCG
// source seeded from the process-global generator.
func orGlobal(src rand.Source) rand.Source {
	if src != nil {
		return src
	}

	return rand.NewPCG(rand.Uint64(), rand.Uint64())
}
