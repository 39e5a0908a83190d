package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"github.com/sails-app/sails-api/libs/go/interfaces"
	"github.com/sails-app/sails-api/libs/go/types/business"
)

// ExposureAlertProcessor runs one exposure alert pass per invocation
type ExposureAlertProcessor struct {
	alerts  interfaces.AlertService
	timeout time.Duration
	logger  *zap.Logger
}

// NewExposureAlertProcessor creates a processor. A zero timeout leaves the
// invocation context untouched.
func NewExposureAlertProcessor(alerts interfaces.AlertService, timeout time.Duration, logger *zap.Logger) *ExposureAlertProcessor {
	return &ExposureAlertProcessor{
		alerts:  alerts,
		timeout: timeout,
		logger:  logger,
	}
}

// Run checks every user with recent orders and emails escalations.
func (p *ExposureAlertProcessor) Run(ctx context.Context) (*business.AlertRunResult, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	started := time.Now()
	p.logger.Info("Starting exposure alert run")

	result, err := p.alerts.ProcessExposureAlerts(ctx)
	if err != nil {
		p.logger.Error("Exposure alert run failed", zap.Error(err), zap.Duration("elapsed", time.Since(started)))
		return result, fmt.Errorf("exposure alert run: %w", err)
	}

	p.logger.Info("Exposure alert run completed",
		zap.Int("users_processed", result.UsersProcessed),
		zap.Int("users_failed", result.UsersFailed),
		zap.Int("alerts_sent", result.AlertsSent),
		zap.Duration("elapsed", time.Since(started)),
	)
	return result, nil
}

// HandleScheduledEvent is the Lambda entry point for the EventBridge schedule.
func (p *ExposureAlertProcessor) HandleScheduledEvent(ctx context.Context, event events.CloudWatchEvent) error {
	p.logger.Info("Received scheduled event",
		zap.String("event_id", event.ID),
		zap.String("source", event.Source),
		zap.Time("event_time", event.Time),
	)
	_, err := p.Run(ctx)
	return err
}
