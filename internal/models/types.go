package models

import "time"

// UtilityType is the ownership classification of a utility.
type UtilityType string

const (
	UtilityTypeIOU  UtilityType = "IOU"
	UtilityTypeMuni UtilityType = "muni"
	UtilityTypeCoop UtilityType = "coop"
)

// RateStructure classifies how a residential rate is billed.
type RateStructure string

const (
	RateStructureFlat   RateStructure = "flat"
	RateStructureTiered RateStructure = "tiered"
	RateStructureTOU    RateStructure = "tou"
)

// NetMeteringPolicy is the state-level policy for compensating
// customer-generated electricity exported to the grid.
type NetMeteringPolicy struct {
	HasNetMetering  bool     `json:"has_net_metering"`
	NetMeteringType string   `json:"net_metering_type"`
	ExportRate      *float64 `json:"export_rate"`
}

// UtilityRecord is the normalized output record for one utility in one
// state. Exactly one record exists per (state, utility_id) pair in the
// final output; UtilityID is the deduplication key.
type UtilityRecord struct {
	UtilityID          string        `json:"utility_id"`
	UtilityName        string        `json:"utility_name"`
	State              string        `json:"state"`
	StatesServed       []string      `json:"states_served"`
	Type               UtilityType   `json:"type"`
	CustomerCount      int           `json:"customer_count"`
	ResidentialAvgRate float64       `json:"residential_avg_rate"`
	RateStructure      RateStructure `json:"rate_structure"`
	HasNetMetering     bool          `json:"has_net_metering"`
	NetMeteringType    string        `json:"net_metering_type"`
	ExportRate         *float64      `json:"export_rate"`
	TOUAvailable       bool          `json:"tou_available"`
	DemandCharges      bool          `json:"demand_charges"`
	UpdatedAt          string        `json:"updated_at"`

	// Merge bookkeeping, stripped from output files.
	StartDate  int64  `json:"-"`
	RateName   string `json:"-"`
	RateSource string `json:"-"`
}

// StateSummary is the per-state output file shape. It is built once after
// a state's reconciliation pass and never mutated afterward.
type StateSummary struct {
	State              string            `json:"state"`
	UtilityCount       int               `json:"utility_count"`
	AvgResidentialRate float64           `json:"avg_residential_rate"`
	EIAStateAvgRate    float64           `json:"eia_state_avg_rate"`
	NetMetering        NetMeteringPolicy `json:"net_metering"`
	Utilities          []UtilityRecord   `json:"utilities"`
	FetchedAt          time.Time         `json:"fetched_at"`
}

// StateRollup is the condensed per-state entry inside the national file.
type StateRollup struct {
	UtilityCount int     `json:"utility_count"`
	AvgRate      float64 `json:"avg_rate"`
	EIAAvgRate   float64 `json:"eia_avg_rate"`
}

// NationalSummary is the national output file shape, built once at the end
// of a full run.
type NationalSummary struct {
	TotalUtilities  int                    `json:"total_utilities"`
	StatesCovered   int                    `json:"states_covered"`
	NationalAvgRate float64                `json:"national_avg_rate"`
	StateSummary    map[string]StateRollup `json:"state_summary"`
	Utilities       []UtilityRecord        `json:"utilities"`
	FetchedAt       time.Time              `json:"fetched_at"`
	Source          string                 `json:"source"`
}
