package reconcile

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/solarcrm/ratesync/internal/models"
	"github.com/solarcrm/ratesync/internal/reference"
)

// fakeSource stubs the API client with per-call functions.
type fakeSource struct {
	regionCalls  int
	utilityCalls int
	region       func(lat, lon float64) ([]models.RawRateItem, error)
	utility      func(name string) ([]models.RawRateItem, error)
}

func (f *fakeSource) QueryRegion(_ context.Context, lat, lon float64) ([]models.RawRateItem, error) {
	f.regionCalls++
	if f.region == nil {
		return nil, nil
	}
	return f.region(lat, lon)
}

func (f *fakeSource) QueryUtility(_ context.Context, name string) ([]models.RawRateItem, error) {
	f.utilityCalls++
	if f.utility == nil {
		return nil, nil
	}
	return f.utility(name)
}

func testTables() *reference.Tables {
	return &reference.Tables{
		QueryPoints: map[string][]reference.GeoQueryPoint{
			"DE": {
				{Label: "Wilmington", Lat: 39.74, Lon: -75.55},
				{Label: "Dover", Lat: 39.16, Lon: -75.52},
			},
		},
		KnownUtilities: map[string][]reference.KnownUtility{
			"DE": {{Name: "Delmarva Power", Customers: 310000}},
		},
		StateAvgRates: map[string]float64{"DE": 0.1432},
		NetMetering: map[string]models.NetMeteringPolicy{
			"DE": {HasNetMetering: true, NetMeteringType: "NEM"},
		},
	}
}

func testReconciler(source RateSource) *Reconciler {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return New(source, testTables(), rate.NewLimiter(rate.Inf, 0), logger)
}

func rateOf(v float64) *float64 { return &v }

// flatItem builds a raw item with a single-tier rate matrix.
func flatItem(eiaID int64, utility string, start int64, perKWh float64) models.RawRateItem {
	return models.RawRateItem{
		EIAID:     eiaID,
		Utility:   utility,
		StartDate: start,
		EnergyRateTiers: [][]models.EnergyTier{
			{{Rate: rateOf(perKWh)}},
		},
	}
}

func TestMergeCandidates(t *testing.T) {
	older := candidate{id: "1", item: models.RawRateItem{StartDate: 100}}
	newer := candidate{id: "1", item: models.RawRateItem{StartDate: 200, Name: "winner"}}
	tie := candidate{id: "1", item: models.RawRateItem{StartDate: 200, Name: "loser"}}
	other := candidate{id: "2", item: models.RawRateItem{StartDate: 50}}

	t.Run("newer start date supersedes", func(t *testing.T) {
		merged := mergeCandidates([]candidate{older, other, newer})
		require.Len(t, merged, 2)
		// First-encounter order is preserved even after replacement.
		assert.Equal(t, "1", merged[0].id)
		assert.Equal(t, int64(200), merged[0].item.StartDate)
		assert.Equal(t, "2", merged[1].id)
	})

	t.Run("equal start dates keep the first seen", func(t *testing.T) {
		merged := mergeCandidates([]candidate{newer, tie})
		require.Len(t, merged, 1)
		assert.Equal(t, "winner", merged[0].item.Name)
	})

	t.Run("older candidate never replaces", func(t *testing.T) {
		merged := mergeCandidates([]candidate{newer, older})
		require.Len(t, merged, 1)
		assert.Equal(t, int64(200), merged[0].item.StartDate)
	})
}

func TestStateDeduplicatesAcrossQueryPoints(t *testing.T) {
	source := &fakeSource{
		region: func(lat, _ float64) ([]models.RawRateItem, error) {
			if lat == 39.74 {
				return []models.RawRateItem{flatItem(4062, "Delmarva Power", 100, 0.10)}, nil
			}
			return []models.RawRateItem{flatItem(4062, "Delmarva Power", 200, 0.12)}, nil
		},
	}

	records, err := testReconciler(source).State(context.Background(), "DE")
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "4062", rec.UtilityID)
	assert.Equal(t, 2, source.regionCalls)
	assert.Equal(t, 0, source.utilityCalls, "matched utility must not trigger a direct lookup")
	// The later effective date won.
	assert.Equal(t, 0.12, rec.ResidentialAvgRate)
	assert.Equal(t, 310000, rec.CustomerCount)
	assert.Equal(t, models.UtilityTypeIOU, rec.Type)
	assert.True(t, rec.HasNetMetering)
	assert.Equal(t, "NEM", rec.NetMeteringType)
	assert.Equal(t, []string{"DE"}, rec.StatesServed)
}

func TestStateSkipsItemsWithoutEIAID(t *testing.T) {
	source := &fakeSource{
		region: func(_, _ float64) ([]models.RawRateItem, error) {
			return []models.RawRateItem{flatItem(0, "Delmarva Power", 100, 0.10)}, nil
		},
		utility: func(string) ([]models.RawRateItem, error) {
			return nil, nil
		},
	}

	records, err := testReconciler(source).State(context.Background(), "DE")
	require.NoError(t, err)
	require.Len(t, records, 1)
	// The unidentified geographic item was dropped, so the known utility
	// came back through the synthesized path.
	assert.Equal(t, "Estimated", records[0].RateName)
}

func TestStateClampsImplausibleRates(t *testing.T) {
	tests := []struct {
		name   string
		perKWh float64
	}{
		{"absurdly high", 5.0},
		{"below plausible floor", 0.001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := &fakeSource{
				region: func(_, _ float64) ([]models.RawRateItem, error) {
					return []models.RawRateItem{flatItem(4062, "Delmarva Power", 100, tt.perKWh)}, nil
				},
			}

			records, err := testReconciler(source).State(context.Background(), "DE")
			require.NoError(t, err)
			require.Len(t, records, 1)
			assert.Equal(t, 0.1432, records[0].ResidentialAvgRate,
				"implausible rate must be replaced by the state average")
		})
	}
}

func TestStateBackfillsViaDirectLookup(t *testing.T) {
	source := &fakeSource{
		utility: func(name string) ([]models.RawRateItem, error) {
			require.Equal(t, "Delmarva Power", name)
			item := flatItem(4062, "Delmarva Power Rate R", 300, 0.11)
			item.WeekdaySchedule = [][]int{{0, 1}}
			return []models.RawRateItem{item}, nil
		},
	}

	records, err := testReconciler(source).State(context.Background(), "DE")
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "4062", rec.UtilityID)
	// The record carries the known reference name, not the rate's label.
	assert.Equal(t, "Delmarva Power", rec.UtilityName)
	assert.Equal(t, 0.11, rec.ResidentialAvgRate)
	assert.Equal(t, models.RateStructureTOU, rec.RateStructure)
	assert.True(t, rec.TOUAvailable)
	assert.Equal(t, 310000, rec.CustomerCount)
}

func TestStateSynthesizesMissingKnownUtility(t *testing.T) {
	// Two query points and the direct lookup all come back empty: the DE
	// scenario. Delmarva Power must still appear, built from reference
	// data alone.
	source := &fakeSource{}

	records, err := testReconciler(source).State(context.Background(), "DE")
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "Delmarva Power", rec.UtilityName)
	assert.Equal(t, models.RateStructureTiered, rec.RateStructure)
	assert.Equal(t, 0.1432, rec.ResidentialAvgRate)
	assert.False(t, rec.TOUAvailable)
	assert.False(t, rec.DemandCharges)
	assert.Equal(t, 310000, rec.CustomerCount)
	assert.NotEmpty(t, rec.UtilityID)
	assert.Equal(t, "EIA-861", rec.RateSource)
	assert.Equal(t, 1, source.utilityCalls)

	// The synthesized identifier is deterministic across runs.
	again, err := testReconciler(&fakeSource{}).State(context.Background(), "DE")
	require.NoError(t, err)
	assert.Equal(t, rec.UtilityID, again[0].UtilityID)
}

func TestStateTreatsQueryFailureAsEmpty(t *testing.T) {
	source := &fakeSource{
		region: func(_, _ float64) ([]models.RawRateItem, error) {
			return nil, errors.New("connection reset")
		},
		utility: func(string) ([]models.RawRateItem, error) {
			return nil, errors.New("connection reset")
		},
	}

	records, err := testReconciler(source).State(context.Background(), "DE")
	require.NoError(t, err, "query failures must never abort the state")
	require.Len(t, records, 1)
	assert.Equal(t, "Estimated", records[0].RateName)
}

func TestStateSortsByCustomerCountDescending(t *testing.T) {
	tables := testTables()
	tables.KnownUtilities["DE"] = []reference.KnownUtility{
		{Name: "Delmarva Power", Customers: 310000},
		{Name: "Dover Municipal Electric", Customers: 23000},
	}

	source := &fakeSource{
		region: func(lat, _ float64) ([]models.RawRateItem, error) {
			if lat == 39.74 {
				return []models.RawRateItem{
					flatItem(9001, "Tiny Rural Electric Coop", 100, 0.10),
					flatItem(9002, "Another Small Coop", 100, 0.10),
				}, nil
			}
			return []models.RawRateItem{
				flatItem(4062, "Delmarva Power", 100, 0.12),
				flatItem(9003, "Dover Municipal Electric", 100, 0.09),
			}, nil
		},
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	r := New(source, tables, rate.NewLimiter(rate.Inf, 0), logger)

	records, err := r.State(context.Background(), "DE")
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, "Delmarva Power", records[0].UtilityName)
	assert.Equal(t, "Dover Municipal Electric", records[1].UtilityName)
	// Zero-count utilities keep their encounter order.
	assert.Equal(t, "Tiny Rural Electric Coop", records[2].UtilityName)
	assert.Equal(t, "Another Small Coop", records[3].UtilityName)
}

func TestStateUtilityIDsUnique(t *testing.T) {
	source := &fakeSource{
		region: func(_, _ float64) ([]models.RawRateItem, error) {
			return []models.RawRateItem{
				flatItem(4062, "Delmarva Power", 100, 0.12),
				flatItem(4062, "Delmarva Power", 100, 0.13),
				flatItem(9001, "Tiny Rural Electric Coop", 100, 0.10),
			}, nil
		},
	}

	records, err := testReconciler(source).State(context.Background(), "DE")
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, rec := range records {
		assert.False(t, seen[rec.UtilityID], "duplicate utility_id %s", rec.UtilityID)
		seen[rec.UtilityID] = true
	}
	assert.Len(t, records, 2)
}

func TestLookupCustomers(t *testing.T) {
	known := []reference.KnownUtility{
		{Name: "Tennessee Valley Authority", Customers: 0},
		{Name: "Delmarva Power", Customers: 310000},
	}

	tests := []struct {
		name     string
		expected int
	}{
		{"Delmarva Power", 310000},
		{"Delmarva Power Delivery", 310000}, // known name inside record name
		{"Delmarva", 310000},                // record name inside known name
		{"Unrelated Electric Co", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, lookupCustomers(tt.name, known))
		})
	}
}
