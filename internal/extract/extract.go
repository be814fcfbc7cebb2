// Package extract derives normalized rate attributes from raw API items.
// Every function is pure and total: any partially-populated item yields a
// result, never a panic.
package extract

import (
	"math"
	"strings"

	"github.com/solarcrm/ratesync/internal/models"
)

// assumedMonthlyKWh is the average residential usage assumed when only a
// fixed monthly charge is available.
const assumedMonthlyKWh = 1000

// AverageRate derives a per-kWh residential rate from an item. When an
// energy-rate matrix is present it returns the flat arithmetic mean of
// rate+adj over every tier in every period — deliberately not weighted by
// tier width or period length, so downstream consumers see a consistent
// (if understated) approximation. Without a matrix it falls back to the
// fixed monthly charge spread over assumedMonthlyKWh. Returns false when
// neither source yields a rate.
func AverageRate(item models.RawRateItem) (float64, bool) {
	var total float64
	var count int
	for _, period := range item.EnergyRateTiers {
		for _, tier := range period {
			if tier.Rate == nil {
				continue
			}
			total += *tier.Rate + tier.Adj
			count++
		}
	}
	if count > 0 {
		return round(total/float64(count), 5), true
	}

	if item.FixedMonthlyCharge > 0 {
		return round(item.FixedMonthlyCharge/assumedMonthlyKWh, 5), true
	}

	return 0, false
}

// ClassifyStructure classifies an item as flat, tiered, or time-of-use.
// Time-of-use takes priority: more than one distinct period index anywhere
// in the twelve-month weekday schedule means tou regardless of tier count.
func ClassifyStructure(item models.RawRateItem) models.RateStructure {
	periods := make(map[int]struct{})
	for _, month := range item.WeekdaySchedule {
		for _, p := range month {
			periods[p] = struct{}{}
		}
	}
	if len(periods) > 1 {
		return models.RateStructureTOU
	}

	for _, period := range item.EnergyRateTiers {
		if len(period) > 1 {
			return models.RateStructureTiered
		}
	}
	return models.RateStructureFlat
}

// HasDemandCharges reports whether any demand-rate field is populated.
func HasDemandCharges(item models.RawRateItem) bool {
	return len(item.DemandRateTiers) > 0 ||
		len(item.FlatDemandTiers) > 0 ||
		item.DemandMax != 0
}

// Cooperative keywords are checked before municipal ones: a name matching
// both sets classifies as coop.
var (
	coopKeywords = []string{"coop", "cooperative", "co-op", "emc", "ec ", "rec ", "remc"}
	muniKeywords = []string{
		"city of", "municipal", "dept of", "department of", "public util",
		"pud", "district", "authority", "board", "town of", "village of",
		"cwl&p", "city light", "electric service", "utilities board",
	}
)

// ClassifyUtilityType classifies a utility's ownership from its name,
// defaulting to investor-owned.
func ClassifyUtilityType(name string) models.UtilityType {
	lower := strings.ToLower(name)
	for _, kw := range coopKeywords {
		if strings.Contains(lower, kw) {
			return models.UtilityTypeCoop
		}
	}
	for _, kw := range muniKeywords {
		if strings.Contains(lower, kw) {
			return models.UtilityTypeMuni
		}
	}
	return models.UtilityTypeIOU
}

func round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
