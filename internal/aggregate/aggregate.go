// Package aggregate rolls per-utility records into per-state and national
// summaries. Purely arithmetic, no I/O.
package aggregate

import (
	"math"
	"time"

	"github.com/solarcrm/ratesync/internal/models"
	"github.com/solarcrm/ratesync/internal/reference"
)

// nationalSource labels where the national data set came from.
const nationalSource = "OpenEI USURDB + EIA-861"

// State builds the per-state summary. The state average is the arithmetic
// mean of member utilities' rates; an empty utility list yields zero
// rather than dividing by zero.
func State(state string, utilities []models.UtilityRecord, tables *reference.Tables, fetchedAt time.Time) models.StateSummary {
	var total float64
	for _, u := range utilities {
		total += u.ResidentialAvgRate
	}
	divisor := len(utilities)
	if divisor == 0 {
		divisor = 1
	}

	return models.StateSummary{
		State:              state,
		UtilityCount:       len(utilities),
		AvgResidentialRate: round4(total / float64(divisor)),
		EIAStateAvgRate:    tables.StateAvgRates[state],
		NetMetering:        tables.Policy(state),
		Utilities:          utilities,
		FetchedAt:          fetchedAt,
	}
}

// National builds the national summary from all state summaries. The
// national average is the unweighted mean of the reference state rates,
// independent of how many utilities each state produced.
func National(states []models.StateSummary, tables *reference.Tables, fetchedAt time.Time) models.NationalSummary {
	rollup := make(map[string]models.StateRollup, len(states))
	var utilities []models.UtilityRecord
	for _, s := range states {
		rollup[s.State] = models.StateRollup{
			UtilityCount: s.UtilityCount,
			AvgRate:      s.AvgResidentialRate,
			EIAAvgRate:   s.EIAStateAvgRate,
		}
		utilities = append(utilities, s.Utilities...)
	}

	var total float64
	for _, r := range tables.StateAvgRates {
		total += r
	}
	var nationalAvg float64
	if len(tables.StateAvgRates) > 0 {
		nationalAvg = round4(total / float64(len(tables.StateAvgRates)))
	}

	return models.NationalSummary{
		TotalUtilities:  len(utilities),
		StatesCovered:   len(states),
		NationalAvgRate: nationalAvg,
		StateSummary:    rollup,
		Utilities:       utilities,
		FetchedAt:       fetchedAt,
		Source:          nationalSource,
	}
}

func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
