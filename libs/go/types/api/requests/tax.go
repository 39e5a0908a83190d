package requests

import "github.com/shopspring/decimal"

// TaxCalculationRequest is the body of POST /tax/calculate
type TaxCalculationRequest struct {
	StateCode string           `json:"state_code" binding:"required"`
	Amount    *decimal.Decimal `json:"amount" binding:"required"`
}
