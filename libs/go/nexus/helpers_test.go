package nexus_test

import (
	"testing"
	"time"

	"github.com/sails-app/sails-api/libs/go/nexus"
	"github.com/sails-app/sails-api/libs/go/types/business"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func usOrder(state string, amount string, at time.Time) business.Order {
	return business.Order{
		StateCode:   state,
		CountryCode: "US",
		OrderDate:   at,
		TotalAmount: decimal.RequireFromString(amount),
		Status:      "paid",
	}
}

func mustDecimal(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func intPtr(v int64) *int64 {
	return &v
}

func syntheticThreshold(code string, sales, transactions *int64, period business.MeasurementPeriod) business.StateThreshold {
	threshold := business.StateThreshold{
		StateCode:            code,
		StateName:            "State " + code,
		HasSalesTax:          true,
		TransactionThreshold: transactions,
		MeasurementPeriod:    period,
	}
	if sales != nil {
		threshold.SalesThreshold = decPtr(*sales)
	}
	return threshold
}

func noTaxThreshold(code string) business.StateThreshold {
	return business.StateThreshold{
		StateCode:         code,
		StateName:         "State " + code,
		HasSalesTax:       false,
		MeasurementPeriod: business.PeriodRolling12Months,
	}
}

func defaultRegistry(t *testing.T) *nexus.StaticRegistry {
	t.Helper()
	registry, err := nexus.LoadDefaultRegistry()
	require.NoError(t, err)
	return registry
}

func findExposure(t *testing.T, report business.ExposureReport, code string) business.StateExposure {
	t.Helper()
	for _, exposure := range report.Exposures {
		if exposure.StateCode == code {
			return exposure
		}
	}
	t.Fatalf("state %s missing from report", code)
	return business.StateExposure{}
}
