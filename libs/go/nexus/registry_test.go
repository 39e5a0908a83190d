package nexus_test

import (
	"testing"

	"github.com/sails-app/sails-api/libs/go/nexus"
	"github.com/sails-app/sails-api/libs/go/types/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultRegistry(t *testing.T) {
	registry := defaultRegistry(t)

	all := registry.ListAll()
	assert.Len(t, all, 52, "50 states, DC and PR")

	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].StateCode, all[i].StateCode)
	}

	t.Run("states without sales tax carry no thresholds", func(t *testing.T) {
		for _, code := range []string{"DE", "MT", "NH", "OR"} {
			threshold, ok := registry.GetThreshold(code)
			require.True(t, ok, code)
			assert.False(t, threshold.HasSalesTax, code)
			assert.Nil(t, threshold.SalesThreshold, code)
			assert.Nil(t, threshold.TransactionThreshold, code)
		}
	})

	t.Run("alaska is modelled with local nexus rules", func(t *testing.T) {
		threshold, ok := registry.GetThreshold("AK")
		require.True(t, ok)
		assert.True(t, threshold.HasSalesTax)
		require.NotNil(t, threshold.SalesThreshold)
	})

	t.Run("california uses rolling twelve months", func(t *testing.T) {
		threshold, ok := registry.GetThreshold("CA")
		require.True(t, ok)
		assert.Equal(t, business.PeriodRolling12Months, threshold.MeasurementPeriod)
		assert.Equal(t, "500000", threshold.SalesThreshold.String())
		assert.Nil(t, threshold.TransactionThreshold)
		assert.Equal(t, "0.0725", threshold.BaseRate.String())
	})

	t.Run("lookup normalises the code", func(t *testing.T) {
		threshold, ok := registry.GetThreshold(" tx ")
		require.True(t, ok)
		assert.Equal(t, "TX", threshold.StateCode)
	})

	t.Run("unknown code", func(t *testing.T) {
		_, ok := registry.GetThreshold("ZZ")
		assert.False(t, ok)
	})
}

func TestStaticRegistry_ListAllReturnsCopy(t *testing.T) {
	registry := defaultRegistry(t)

	all := registry.ListAll()
	all[0].StateName = "mutated"

	again := registry.ListAll()
	assert.NotEqual(t, "mutated", again[0].StateName)
}

func TestParseRegistry_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "empty input",
			yaml: "",
		},
		{
			name: "malformed yaml",
			yaml: "states: [",
		},
		{
			name: "no states",
			yaml: "states: []",
		},
		{
			name: "unknown measurement period",
			yaml: `
states:
  - code: CA
    name: California
    has_sales_tax: true
    sales_threshold: 500000
    measurement_period: fiscal_year
`,
		},
		{
			name: "duplicate state",
			yaml: `
states:
  - code: CA
    name: California
    has_sales_tax: true
    measurement_period: rolling_12_months
  - code: ca
    name: California again
    has_sales_tax: true
    measurement_period: rolling_12_months
`,
		},
		{
			name: "no-tax state with threshold",
			yaml: `
states:
  - code: OR
    name: Oregon
    has_sales_tax: false
    sales_threshold: 100000
    measurement_period: rolling_12_months
`,
		},
		{
			name: "negative threshold",
			yaml: `
states:
  - code: TX
    name: Texas
    has_sales_tax: true
    sales_threshold: -1
    measurement_period: rolling_12_months
`,
		},
		{
			name: "bad base rate",
			yaml: `
states:
  - code: TX
    name: Texas
    has_sales_tax: true
    measurement_period: rolling_12_months
    base_rate: "six percent"
`,
		},
		{
			name: "missing name",
			yaml: `
states:
  - code: TX
    has_sales_tax: true
    measurement_period: rolling_12_months
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry, err := nexus.ParseRegistry([]byte(tt.yaml))
			require.Error(t, err)
			assert.ErrorIs(t, err, nexus.ErrInvalidRegistry)
			assert.Nil(t, registry)
		})
	}
}

func TestParseRegistry_Valid(t *testing.T) {
	registry, err := nexus.ParseRegistry([]byte(`
states:
  - code: ny
    name: New York
    has_sales_tax: true
    sales_threshold: 500000
    transaction_threshold: 100
    measurement_period: rolling_12_months
    base_rate: "0.04"
    notes: both tests must be met
`))
	require.NoError(t, err)

	threshold, ok := registry.GetThreshold("NY")
	require.True(t, ok)
	assert.Equal(t, "New York", threshold.StateName)
	assert.Equal(t, int64(100), *threshold.TransactionThreshold)
	assert.Equal(t, "both tests must be met", threshold.Notes)
}

func TestNewStaticRegistry_Empty(t *testing.T) {
	_, err := nexus.NewStaticRegistry(nil)
	assert.ErrorIs(t, err, nexus.ErrInvalidRegistry)
}
