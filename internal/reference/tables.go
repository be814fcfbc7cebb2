// Package reference holds the static reference data the pipeline merges
// with live API results: geographic query points, known major-utility
// customer counts, EIA state-average residential rates, and state
// net-metering policy.
//
// The data is exposed through an explicit Tables value passed into the
// pipeline rather than ambient package state, so tests can substitute
// small fixtures.
package reference

import (
	"sort"

	"github.com/solarcrm/ratesync/internal/models"
)

// DefaultAvgRate is the residential rate fallback for states missing from
// the EIA table, in dollars per kWh.
const DefaultAvgRate = 0.13

// GeoQueryPoint is one geographic query location within a state, centered
// on a population center to maximize utility coverage.
type GeoQueryPoint struct {
	Label string
	Lat   float64
	Lon   float64
}

// KnownUtility is a major utility with its approximate residential
// customer count, sourced from EIA-861 data. A zero count means the
// utility is listed for classification only and is never backfilled.
type KnownUtility struct {
	Name      string
	Customers int
}

// Tables bundles the four reference data sets. Values are read-only after
// construction; the pipeline never mutates them.
type Tables struct {
	QueryPoints    map[string][]GeoQueryPoint
	KnownUtilities map[string][]KnownUtility
	StateAvgRates  map[string]float64
	NetMetering    map[string]models.NetMeteringPolicy
}

// Default returns the built-in national reference tables covering all 50
// states.
func Default() *Tables {
	return &Tables{
		QueryPoints:    stateQueryPoints,
		KnownUtilities: majorUtilities,
		StateAvgRates:  eiaStateAvgRates,
		NetMetering:    netMeteringPolicies,
	}
}

// States returns the covered state codes in sorted order.
func (t *Tables) States() []string {
	states := make([]string, 0, len(t.QueryPoints))
	for state := range t.QueryPoints {
		states = append(states, state)
	}
	sort.Strings(states)
	return states
}

// AvgRate returns the EIA average residential rate for a state, or
// DefaultAvgRate when the state is unknown.
func (t *Tables) AvgRate(state string) float64 {
	if rate, ok := t.StateAvgRates[state]; ok {
		return rate
	}
	return DefaultAvgRate
}

// Policy returns the state's net-metering policy, defaulting to no
// compensation for unknown states.
func (t *Tables) Policy(state string) models.NetMeteringPolicy {
	if p, ok := t.NetMetering[state]; ok {
		return p
	}
	return models.NetMeteringPolicy{HasNetMetering: false, NetMeteringType: "none"}
}
