package nexus

import (
	"strings"
	"time"

	"github.com/sails-app/sails-api/libs/go/constants"
	"github.com/sails-app/sails-api/libs/go/types/business"
)

// Windows holds the inclusive bounds of both measurement windows.
type Windows struct {
	RollingStart  time.Time
	CalendarStart time.Time
	End           time.Time
}

// WindowBounds returns the measurement windows ending at now. The calendar
// year starts on January 1 in now's location.
func WindowBounds(now time.Time) Windows {
	return Windows{
		RollingStart:  now.AddDate(-1, 0, 0),
		CalendarStart: time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()),
		End:           now,
	}
}

// EarliestStart is the first instant any window covers.
func (w Windows) EarliestStart() time.Time {
	if w.CalendarStart.Before(w.RollingStart) {
		return w.CalendarStart
	}
	return w.RollingStart
}

func (w Windows) inRolling(t time.Time) bool {
	return !t.Before(w.RollingStart) && !t.After(w.End)
}

func (w Windows) inCalendarYear(t time.Time) bool {
	return !t.Before(w.CalendarStart) && !t.After(w.End)
}

// Aggregate groups qualifying orders by shipping state over both windows in a
// single pass. States without qualifying orders are absent from the result.
func Aggregate(orders []business.Order, now time.Time) map[string]business.ExposureTotals {
	windows := WindowBounds(now)
	totals := make(map[string]business.ExposureTotals)

	for _, order := range orders {
		if !qualifies(order) {
			continue
		}

		inRolling := windows.inRolling(order.OrderDate)
		inCalendar := windows.inCalendarYear(order.OrderDate)
		if !inRolling && !inCalendar {
			continue
		}

		code := normalizeCode(order.StateCode)
		t := totals[code]
		if inRolling {
			t.Rolling12MonthSales = t.Rolling12MonthSales.Add(order.TotalAmount)
			t.Rolling12MonthTransactions++
		}
		if inCalendar {
			t.CalendarYearSales = t.CalendarYearSales.Add(order.TotalAmount)
			t.CalendarYearTransactions++
		}
		totals[code] = t
	}

	return totals
}

func qualifies(order business.Order) bool {
	if !strings.EqualFold(strings.TrimSpace(order.CountryCode), constants.USCountryCode) {
		return false
	}
	if strings.TrimSpace(order.StateCode) == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(order.Status)) {
	case constants.OrderStatusCancelled, constants.OrderStatusRefunded:
		return false
	}
	return true
}
