package business

import (
	"time"

	"github.com/shopspring/decimal"
)

// MeasurementPeriod identifies the window a state uses to test its thresholds.
type MeasurementPeriod string

const (
	// PeriodRolling12Months evaluates the trailing twelve months only.
	PeriodRolling12Months MeasurementPeriod = "rolling_12_months"
	// PeriodCalendarYearOrRolling evaluates whichever of the calendar year and
	// the trailing twelve months shows more exposure, per metric.
	PeriodCalendarYearOrRolling MeasurementPeriod = "calendar_year_or_rolling"
)

// Valid reports whether p is a known measurement period.
func (p MeasurementPeriod) Valid() bool {
	switch p {
	case PeriodRolling12Months, PeriodCalendarYearOrRolling:
		return true
	default:
		return false
	}
}

// ExposureStatus is the derived classification of a state.
type ExposureStatus string

const (
	StatusSafe        ExposureStatus = "safe"
	StatusApproaching ExposureStatus = "approaching"
	StatusWarning     ExposureStatus = "warning"
	StatusExceeded    ExposureStatus = "exceeded"
)

// Urgency ranks statuses so that lower values sort first.
func (s ExposureStatus) Urgency() int {
	switch s {
	case StatusExceeded:
		return 0
	case StatusWarning:
		return 1
	case StatusApproaching:
		return 2
	default:
		return 3
	}
}

// Order is the subset of an imported order the nexus engine reads.
// StateCode and CountryCode are empty when the platform did not provide them.
type Order struct {
	StateCode   string
	CountryCode string
	OrderDate   time.Time
	TotalAmount decimal.Decimal
	Status      string
}

// StateThreshold holds the economic nexus rule of one state or territory.
type StateThreshold struct {
	StateCode            string            `json:"state_code"`
	StateName            string            `json:"state_name"`
	HasSalesTax          bool              `json:"has_sales_tax"`
	SalesThreshold       *decimal.Decimal  `json:"sales_threshold"`
	TransactionThreshold *int64            `json:"transaction_threshold"`
	MeasurementPeriod    MeasurementPeriod `json:"measurement_period"`
	BaseRate             decimal.Decimal   `json:"base_rate"`
	Notes                string            `json:"notes,omitempty"`
}

// ExposureTotals are the per-state aggregates over both windows.
type ExposureTotals struct {
	Rolling12MonthSales        decimal.Decimal `json:"rolling_12_month_sales"`
	Rolling12MonthTransactions int64           `json:"rolling_12_month_transactions"`
	CalendarYearSales          decimal.Decimal `json:"calendar_year_sales"`
	CalendarYearTransactions   int64           `json:"calendar_year_transactions"`
}

// HasSales reports whether any qualifying order landed in either window.
func (t ExposureTotals) HasSales() bool {
	return t.Rolling12MonthTransactions > 0 || t.CalendarYearTransactions > 0
}

// StateExposure is the evaluated exposure of one state. Every branch of the
// evaluator fills the same fields.
type StateExposure struct {
	StateCode            string            `json:"state_code"`
	StateName            string            `json:"state_name"`
	HasSalesTax          bool              `json:"has_sales_tax"`
	MeasurementPeriod    MeasurementPeriod `json:"measurement_period"`
	SalesThreshold       *decimal.Decimal  `json:"sales_threshold"`
	TransactionThreshold *int64            `json:"transaction_threshold"`

	CurrentSales          decimal.Decimal `json:"current_sales"`
	CurrentTransactions   int64           `json:"current_transactions"`
	SalesPercentage       float64         `json:"sales_percentage"`
	TransactionPercentage float64         `json:"transaction_percentage"`
	HighestPercentage     float64         `json:"highest_percentage"`
	Status                ExposureStatus  `json:"status"`

	Totals ExposureTotals `json:"totals"`
	Notes  string         `json:"notes,omitempty"`
}

// ExposureSummary counts states per bucket.
type ExposureSummary struct {
	TotalStates      int `json:"total_states"`
	StatesWithSales  int `json:"states_with_sales"`
	ExceededCount    int `json:"exceeded_count"`
	WarningCount     int `json:"warning_count"`
	ApproachingCount int `json:"approaching_count"`
	SafeCount        int `json:"safe_count"`
	NoSalesTaxCount  int `json:"no_sales_tax_count"`
}

// ExposureReport is the ranked report for one seller.
type ExposureReport struct {
	Exposures   []StateExposure `json:"exposures"`
	Summary     ExposureSummary `json:"summary"`
	GeneratedAt time.Time       `json:"generated_at"`
}
