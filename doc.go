// Package epiflows models flows of disease cases between geographic
// locations and estimates the risk of onward spread from a source
// location to each of its connected destinations.
//
// 🚀 What is epiflows?
//
//	A small, focused library that brings together:
//		• epidata    — typed flow & location tables plus a variable
//		  dictionary mapping semantic keys to source column names
//		• riskspread — the Monte Carlo risk-of-spread estimator
//		  (per-destination mean + 95% interval, or raw draws)
//		• samplers   — ready-made incubation / infectious-period /
//		  stay-duration samplers built on gonum distributions
//		• geocode    — optional coordinate enrichment for location
//		  rows via an external geocoding service
//
// ✨ Why choose epiflows?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Reproducible – seed the sampler sources and every run is identical
//   - Pure Go core – the estimator has no hidden state, no globals
//   - Extensible – inject your own period samplers, or even the
//     per-trial combination rule, without touching the estimator
//
// Under the hood, everything is organized under four subpackages:
//
//	epidata/    — FlowRecord, LocationRecord, VariableDictionary, Flows
//	riskspread/ — EstimateRiskSpread, Options, Result
//	samplers/   — Constant, LogNormal, Normal, Gamma, Empirical
//	geocode/    — Geocoder, AddCoordinates
//
// Quick ASCII example:
//
//	    S ──100──▶ B
//	    │
//	    └──50───▶ C
//
//	one source S exporting cases toward destinations B and C.
//
// Dive into the per-package doc.go files and examples/ for full
// walkthroughs, from building a container to reading the summary table.
//
//	go get github.com/katalvlaran/epiflows
package epiflows
