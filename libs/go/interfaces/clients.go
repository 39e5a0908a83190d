package interfaces

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sails-app/sails-api/libs/go/types/api/params"
	"github.com/sails-app/sails-api/libs/go/types/business"
)

// EmailSender delivers transactional email
type EmailSender interface {
	SendTransactionalEmail(ctx context.Context, params params.TransactionalEmailParams) error
}

// ReportCache stores computed exposure reports for a short time
type ReportCache interface {
	GetOrCompute(ctx context.Context, userID uuid.UUID, now time.Time, compute func() (*business.ExposureReport, error)) (*business.ExposureReport, error)
}
