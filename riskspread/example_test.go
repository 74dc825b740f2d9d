package riskspread_test

import (
	"fmt"
	"time"

	"github.com/katalvlaran/epiflows/epidata"
	"github.com/katalvlaran/epiflows/riskspread"
	"github.com/katalvlaran/epiflows/samplers"
)

// ExampleEstimateRiskSpread walks through a full estimation run.
//
// Scenario:
//
//	Source S reports 1 000 cases among a population of 100 000 over a
//	365-day window, with annual travel volumes of 100 toward B and 50
//	toward C. Travelers stay 5 days; for the sake of a deterministic
//	example the incubation and infectious periods are fixed at 1 day
//	each, so every trial reduces to
//
//	  volume · (1000/100000) · (365/365) · min(1, 2/5)
//
// Use case:
//
//	Ranking destinations by expected undetected infectious arrivals.
//
// Complexity: O(D · nSim) time.
func ExampleEstimateRiskSpread() {
	first := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	location := func(id string, pop, cases, stay float64) epidata.LocationRecord {
		return epidata.LocationRecord{
			ID: id,
			Numeric: map[string]float64{
				"location_population":   pop,
				"num_cases_time_window": cases,
				"length_of_stay":        stay,
			},
			Dates: map[string]time.Time{
				"first_date_cases": first,
				"last_date_cases":  last,
			},
		}
	}

	f, err := epidata.New(
		[]epidata.FlowRecord{
			{From: "S", To: "B", NumCases: 100},
			{From: "S", To: "C", NumCases: 50},
		},
		[]epidata.LocationRecord{
			location("S", 100_000, 1000, 3),
			location("B", 2_000_000, 0, 5),
			location("C", 1_500_000, 0, 5),
		},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := riskspread.EstimateRiskSpread(f, "S",
		samplers.Constant(1), // incubation, days
		samplers.Constant(1), // infectious period, days
		1000, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, e := range res.Estimates {
		fmt.Printf("%s: %.2f [%.2f, %.2f]\n", e.Location, e.MeanCases, e.LowerCI, e.UpperCI)
	}

	// Output:
	// B: 0.40 [0.40, 0.40]
	// C: 0.20 [0.20, 0.20]
}
