package services

import (
	"github.com/pkg/errors"
	"github.com/sails-app/sails-api/libs/go/logger"
	"github.com/sails-app/sails-api/libs/go/nexus"
	"github.com/sails-app/sails-api/libs/go/types/api/params"
	"github.com/sails-app/sails-api/libs/go/types/business"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// TaxService applies state-level base sales tax rates from the nexus registry
type TaxService struct {
	registry nexus.Registry
	logger   *zap.Logger
}

// NewTaxService creates a new tax service
func NewTaxService(registry nexus.Registry) *TaxService {
	return &TaxService{
		registry: registry,
		logger:   logger.Log,
	}
}

// GetStateRate returns the base rate for stateCode. States without sales tax
// have a zero rate.
func (s *TaxService) GetStateRate(stateCode string) (*business.StateTaxRate, error) {
	threshold, ok := s.registry.GetThreshold(stateCode)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownState, "%q", stateCode)
	}

	rate := threshold.BaseRate
	if !threshold.HasSalesTax {
		rate = decimal.Zero
	}

	return &business.StateTaxRate{
		StateCode:   threshold.StateCode,
		StateName:   threshold.StateName,
		HasSalesTax: threshold.HasSalesTax,
		Rate:        rate,
	}, nil
}

// CalculateTax applies the state base rate to params.Amount. Tax is rounded
// half away from zero to cents.
func (s *TaxService) CalculateTax(params params.TaxCalculationParams) (*business.TaxCalculation, error) {
	if params.Amount.IsNegative() {
		return nil, ErrInvalidAmount
	}

	rate, err := s.GetStateRate(params.StateCode)
	if err != nil {
		return nil, err
	}

	taxAmount := params.Amount.Mul(rate.Rate).Round(2)
	total := params.Amount.Add(taxAmount).Round(2)

	s.logger.Debug("Calculated state tax",
		zap.String("state_code", rate.StateCode),
		zap.String("amount", params.Amount.String()),
		zap.String("rate", rate.Rate.String()),
		zap.String("tax_amount", taxAmount.String()))

	return &business.TaxCalculation{
		StateCode: rate.StateCode,
		Amount:    params.Amount,
		Rate:      rate.Rate,
		TaxAmount: taxAmount,
		Total:     total,
	}, nil
}
