package nexus

import (
	"github.com/sails-app/sails-api/libs/go/constants"
	"github.com/sails-app/sails-api/libs/go/types/business"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Evaluate classifies one state's exposure from its totals and threshold.
func Evaluate(totals business.ExposureTotals, threshold business.StateThreshold) business.StateExposure {
	exposure := business.StateExposure{
		StateCode:            threshold.StateCode,
		StateName:            threshold.StateName,
		HasSalesTax:          threshold.HasSalesTax,
		MeasurementPeriod:    threshold.MeasurementPeriod,
		SalesThreshold:       threshold.SalesThreshold,
		TransactionThreshold: threshold.TransactionThreshold,
		Totals:               totals,
		Notes:                threshold.Notes,
		Status:               business.StatusSafe,
	}

	exposure.CurrentSales, exposure.CurrentTransactions = selectPeriod(totals, threshold.MeasurementPeriod)

	if !threshold.HasSalesTax || (threshold.SalesThreshold == nil && threshold.TransactionThreshold == nil) {
		return exposure
	}

	if threshold.SalesThreshold != nil && threshold.SalesThreshold.IsPositive() {
		exposure.SalesPercentage = percentage(exposure.CurrentSales, *threshold.SalesThreshold)
	}
	if threshold.TransactionThreshold != nil && *threshold.TransactionThreshold > 0 {
		exposure.TransactionPercentage = percentage(
			decimal.NewFromInt(exposure.CurrentTransactions),
			decimal.NewFromInt(*threshold.TransactionThreshold),
		)
	}

	exposure.HighestPercentage = max(exposure.SalesPercentage, exposure.TransactionPercentage)
	exposure.Status = StatusFor(exposure.HighestPercentage)

	return exposure
}

// StatusFor maps a percentage of threshold onto an exposure status.
func StatusFor(highestPercentage float64) business.ExposureStatus {
	switch {
	case highestPercentage >= constants.ExceededPercentage:
		return business.StatusExceeded
	case highestPercentage >= constants.WarningPercentage:
		return business.StatusWarning
	case highestPercentage >= constants.ApproachingPercentage:
		return business.StatusApproaching
	default:
		return business.StatusSafe
	}
}

// selectPeriod picks the values the state's measurement period tests.
// Sales and transactions are maximised independently.
func selectPeriod(totals business.ExposureTotals, period business.MeasurementPeriod) (decimal.Decimal, int64) {
	if period == business.PeriodRolling12Months {
		return totals.Rolling12MonthSales, totals.Rolling12MonthTransactions
	}
	return decimal.Max(totals.Rolling12MonthSales, totals.CalendarYearSales),
		max(totals.Rolling12MonthTransactions, totals.CalendarYearTransactions)
}

func percentage(value, threshold decimal.Decimal) float64 {
	// Multiply before dividing so exact boundaries stay exact.
	return value.Mul(hundred).Div(threshold).InexactFloat64()
}
