package params

import "github.com/shopspring/decimal"

// TaxCalculationParams contains parameters for tax calculation
type TaxCalculationParams struct {
	StateCode string
	Amount    decimal.Decimal
}
