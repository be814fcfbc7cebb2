package models

// RateEnvelope wraps the rate API's response body.
type RateEnvelope struct {
	Items []RawRateItem `json:"items"`
}

// EnergyTier is one tier within a rate period. Rate is a pointer because
// the API omits the field on some tiers; tiers without a rate are excluded
// from averaging.
type EnergyTier struct {
	Rate *float64 `json:"rate"`
	Adj  float64  `json:"adj"`
	Max  float64  `json:"max"`
	Unit string   `json:"unit"`
}

// RawRateItem is the API's representation of one rate structure for one
// utility. Any subset of the fields may be populated; consumers must
// tolerate partially-filled items. It is transient, consumed once per
// query response.
type RawRateItem struct {
	EIAID              int64          `json:"eiaid"`
	Utility            string         `json:"utility"`
	Name               string         `json:"name"`
	Source             string         `json:"source"`
	StartDate          int64          `json:"startdate"`
	EnergyRateTiers    [][]EnergyTier `json:"energyratestructure"`
	WeekdaySchedule    [][]int        `json:"energyweekdayschedule"`
	WeekendSchedule    [][]int        `json:"energyweekendschedule"`
	DemandRateTiers    [][]EnergyTier `json:"demandratestructure"`
	FlatDemandTiers    [][]EnergyTier `json:"flatdemandstructure"`
	DemandMax          float64        `json:"demandmax"`
	FixedMonthlyCharge float64        `json:"fixedmonthlycharge"`
}
