package business

import "github.com/shopspring/decimal"

// StateTaxRate is the state-level base sales tax rate. Local rates are not included.
type StateTaxRate struct {
	StateCode   string          `json:"state_code"`
	StateName   string          `json:"state_name"`
	HasSalesTax bool            `json:"has_sales_tax"`
	Rate        decimal.Decimal `json:"rate"`
}

// TaxCalculation is the result of applying a state base rate to an amount
type TaxCalculation struct {
	StateCode string          `json:"state_code"`
	Amount    decimal.Decimal `json:"amount"`
	Rate      decimal.Decimal `json:"rate"`
	TaxAmount decimal.Decimal `json:"tax_amount"`
	Total     decimal.Decimal `json:"total"`
}
