package nexus

import (
	"cmp"
	"slices"
	"time"

	"github.com/sails-app/sails-api/libs/go/types/business"
)

// BuildReport aggregates orders and evaluates every state in the registry.
func BuildReport(registry Registry, orders []business.Order, now time.Time) business.ExposureReport {
	report := AssembleReport(registry, Aggregate(orders, now))
	report.GeneratedAt = now
	return report
}

// AssembleReport evaluates every registry state against totals, ranks the
// results and counts them. States missing from totals evaluate as zero.
// Totals for codes outside the registry are ignored.
func AssembleReport(registry Registry, totals map[string]business.ExposureTotals) business.ExposureReport {
	thresholds := registry.ListAll()
	exposures := make([]business.StateExposure, 0, len(thresholds))
	summary := business.ExposureSummary{TotalStates: len(thresholds)}

	for _, threshold := range thresholds {
		stateTotals := totals[threshold.StateCode]
		exposure := Evaluate(stateTotals, threshold)
		exposures = append(exposures, exposure)

		if stateTotals.HasSales() {
			summary.StatesWithSales++
		}
		if !exposure.HasSalesTax {
			summary.NoSalesTaxCount++
			continue
		}
		switch exposure.Status {
		case business.StatusExceeded:
			summary.ExceededCount++
		case business.StatusWarning:
			summary.WarningCount++
		case business.StatusApproaching:
			summary.ApproachingCount++
		default:
			summary.SafeCount++
		}
	}

	SortExposures(exposures)

	return business.ExposureReport{
		Exposures: exposures,
		Summary:   summary,
	}
}

// SortExposures orders exposures most urgent first: taxed states before
// untaxed ones, then by status, then by highest percentage descending. The
// state code breaks remaining ties.
func SortExposures(exposures []business.StateExposure) {
	slices.SortStableFunc(exposures, compareExposures)
}

func compareExposures(a, b business.StateExposure) int {
	if a.HasSalesTax != b.HasSalesTax {
		if a.HasSalesTax {
			return -1
		}
		return 1
	}
	if c := cmp.Compare(a.Status.Urgency(), b.Status.Urgency()); c != 0 {
		return c
	}
	if c := cmp.Compare(b.HighestPercentage, a.HighestPercentage); c != 0 {
		return c
	}
	return cmp.Compare(a.StateCode, b.StateCode)
}
