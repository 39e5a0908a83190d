package interfaces

import (
	"context"

	"github.com/google/uuid"
	"github.com/sails-app/sails-api/libs/go/types/api/params"
	"github.com/sails-app/sails-api/libs/go/types/business"
)

// NexusService produces exposure reports and manages registered states
type NexusService interface {
	GetExposureReport(ctx context.Context, userID uuid.UUID) (*business.ExposureReport, error)
	ListThresholds() []business.StateThreshold
	ListRegistrations(ctx context.Context, userID uuid.UUID) ([]string, error)
	ReplaceRegistrations(ctx context.Context, userID uuid.UUID, stateCodes []string) ([]string, error)
}

// TaxService looks up state base rates
type TaxService interface {
	GetStateRate(stateCode string) (*business.StateTaxRate, error)
	CalculateTax(params params.TaxCalculationParams) (*business.TaxCalculation, error)
}

// AlertService notifies users whose exposure escalated
type AlertService interface {
	ProcessExposureAlerts(ctx context.Context) (*business.AlertRunResult, error)
	ProcessUser(ctx context.Context, userID uuid.UUID) (int, error)
}
