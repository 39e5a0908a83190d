package responses

import "github.com/shopspring/decimal"

// StateTaxRateResponse is returned by GET /tax/rates/:state_code
type StateTaxRateResponse struct {
	StateCode   string          `json:"state_code"`
	StateName   string          `json:"state_name"`
	HasSalesTax bool            `json:"has_sales_tax"`
	Rate        decimal.Decimal `json:"rate"`
}

// TaxCalculationResponse is returned by POST /tax/calculate
type TaxCalculationResponse struct {
	StateCode string          `json:"state_code"`
	Amount    decimal.Decimal `json:"amount"`
	Rate      decimal.Decimal `json:"rate"`
	TaxAmount decimal.Decimal `json:"tax_amount"`
	Total     decimal.Decimal `json:"total"`
}
