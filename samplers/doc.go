// Package samplers provides ready-made riskspread.Sampler constructors
// for the usual epidemiological period distributions, built on gonum's
// distuv with math/rand/v2 sources.
//
// 🚀 Why a samplers package?
//
//	The estimator takes incubation and infectious periods as opaque
//	sampling functions. Writing those closures by hand is easy to get
//	subtly wrong (negative draws, unseeded sources, length mismatches).
//	This package packages the distributions that show up in practice:
//
//	  • Constant  — degenerate distribution, ideal for tests & overrides
//	  • LogNormal — the classic incubation-period model
//	  • Normal    — infectious periods; zero-truncated by redraw
//	  • Gamma     — flexible positive-period model
//	  • Empirical — bootstrap resampling of observed durations,
//	    e.g. per-location duration-of-stay surveys
//
// ⚙️ Usage:
//
//	src := rand.NewPCG(42, 0)
//	incubation := samplers.LogNormal(1.46, 0.35, src)
//	infectious := samplers.Normal(4.5, 1.5, src)
//
// Reproducibility: every constructor takes an explicit rand.Source;
// seed it and the produced Sampler draws an identical stream. A nil
// source falls back to the process-global generator, which is fine for
// exploration and wrong for anything you intend to publish.
//
// Validation policy: constructors panic on nonsensical parameters
// (σ ≤ 0, empty observation sets) — programmer error, not runtime
// input — mirroring the option-constructor convention used across this
// family of libraries. Produced Samplers never fail at draw time.
package samplers
