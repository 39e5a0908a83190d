package responses

import (
	"time"

	"github.com/shopspring/decimal"
)

// StateExposureResponse is one state's entry in the exposure report
type StateExposureResponse struct {
	StateCode                  string           `json:"state_code"`
	StateName                  string           `json:"state_name"`
	HasSalesTax                bool             `json:"has_sales_tax"`
	MeasurementPeriod          string           `json:"measurement_period"`
	SalesThreshold             *decimal.Decimal `json:"sales_threshold"`
	TransactionThreshold       *int64           `json:"transaction_threshold"`
	CurrentSales               decimal.Decimal  `json:"current_sales"`
	CurrentTransactions        int64            `json:"current_transactions"`
	SalesPercentage            float64          `json:"sales_percentage"`
	TransactionPercentage      float64          `json:"transaction_percentage"`
	HighestPercentage          float64          `json:"highest_percentage"`
	Status                     string           `json:"status"`
	Registered                 bool             `json:"registered"`
	Rolling12MonthSales        decimal.Decimal  `json:"rolling_12_month_sales"`
	Rolling12MonthTransactions int64            `json:"rolling_12_month_transactions"`
	CalendarYearSales          decimal.Decimal  `json:"calendar_year_sales"`
	CalendarYearTransactions   int64            `json:"calendar_year_transactions"`
	Notes                      string           `json:"notes,omitempty"`
}

// ExposureSummaryResponse counts states per status
type ExposureSummaryResponse struct {
	TotalStates      int `json:"total_states"`
	StatesWithSales  int `json:"states_with_sales"`
	ExceededCount    int `json:"exceeded_count"`
	WarningCount     int `json:"warning_count"`
	ApproachingCount int `json:"approaching_count"`
	SafeCount        int `json:"safe_count"`
	NoSalesTaxCount  int `json:"no_sales_tax_count"`
}

// NexusExposureResponse is returned by GET /nexus/exposure
type NexusExposureResponse struct {
	Exposures   []StateExposureResponse `json:"exposures"`
	Summary     ExposureSummaryResponse `json:"summary"`
	GeneratedAt time.Time               `json:"generated_at"`
}

// NexusRegistrationsResponse lists the states the caller is registered in
type NexusRegistrationsResponse struct {
	StateCodes []string `json:"state_codes"`
}
