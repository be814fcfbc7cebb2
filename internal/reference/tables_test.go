package reference

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCoversAllFiftyStates(t *testing.T) {
	tables := Default()

	assert.Len(t, tables.QueryPoints, 50)
	assert.Len(t, tables.KnownUtilities, 50)
	assert.Len(t, tables.StateAvgRates, 50)
	assert.Len(t, tables.NetMetering, 50)

	for state, points := range tables.QueryPoints {
		assert.GreaterOrEqual(t, len(points), 2, "state %s needs at least 2 query points", state)
		_, ok := tables.StateAvgRates[state]
		assert.True(t, ok, "state %s missing average rate", state)
		_, ok = tables.NetMetering[state]
		assert.True(t, ok, "state %s missing net-metering policy", state)
	}

	for state, rate := range tables.StateAvgRates {
		assert.Greater(t, rate, 0.0, "state %s", state)
		assert.Less(t, rate, 1.0, "state %s", state)
	}
}

func TestStatesSorted(t *testing.T) {
	states := Default().States()
	require.Len(t, states, 50)
	assert.True(t, sort.StringsAreSorted(states))
	assert.Equal(t, "AK", states[0])
	assert.Equal(t, "WY", states[49])
}

func TestAvgRateFallback(t *testing.T) {
	tables := Default()

	assert.Equal(t, 0.1432, tables.AvgRate("DE"))
	assert.Equal(t, DefaultAvgRate, tables.AvgRate("PR"))
}

func TestPolicyFallback(t *testing.T) {
	tables := Default()

	de := tables.Policy("DE")
	assert.True(t, de.HasNetMetering)
	assert.Equal(t, "NEM", de.NetMeteringType)

	ca := tables.Policy("CA")
	require.NotNil(t, ca.ExportRate)
	assert.Equal(t, 0.05, *ca.ExportRate)

	unknown := tables.Policy("PR")
	assert.False(t, unknown.HasNetMetering)
	assert.Equal(t, "none", unknown.NetMeteringType)
}

func TestKnownUtilityEntries(t *testing.T) {
	tables := Default()

	de := tables.KnownUtilities["DE"]
	require.Len(t, de, 1)
	assert.Equal(t, "Delmarva Power", de[0].Name)
	assert.Equal(t, 310000, de[0].Customers)

	// Zero-count entries mark utilities listed for classification only.
	al := tables.KnownUtilities["AL"]
	require.Len(t, al, 2)
	assert.Equal(t, 0, al[1].Customers)
}
