package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sails-app/sails-api/libs/go/db"
	"github.com/sails-app/sails-api/libs/go/helpers"
	"github.com/sails-app/sails-api/libs/go/interfaces"
	"github.com/sails-app/sails-api/libs/go/logger"
	"github.com/sails-app/sails-api/libs/go/nexus"
	"github.com/sails-app/sails-api/libs/go/types/business"
	"go.uber.org/zap"
)

// NexusService builds exposure reports from stored orders and manages the
// states a user has registered in.
type NexusService struct {
	queries  db.Querier
	txRunner helpers.TxRunner
	registry nexus.Registry
	cache    interfaces.ReportCache
	now      func() time.Time
	logger   *zap.Logger
}

// NexusServiceOption customises a NexusService
type NexusServiceOption func(*NexusService)

// WithReportCache serves reports through cache. A nil cache disables caching.
func WithReportCache(cache interfaces.ReportCache) NexusServiceOption {
	return func(s *NexusService) {
		s.cache = cache
	}
}

// WithClock overrides the reference instant used for report windows
func WithClock(now func() time.Time) NexusServiceOption {
	return func(s *NexusService) {
		s.now = now
	}
}

// NewNexusService creates a new nexus service
func NewNexusService(queries db.Querier, txRunner helpers.TxRunner, registry nexus.Registry, opts ...NexusServiceOption) *NexusService {
	s := &NexusService{
		queries:  queries,
		txRunner: txRunner,
		registry: registry,
		now:      time.Now,
		logger:   logger.Log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetExposureReport returns the exposure report for userID as of now.
// Orders are read in one query covering both measurement windows. A failed
// read fails the whole report.
func (s *NexusService) GetExposureReport(ctx context.Context, userID uuid.UUID) (*business.ExposureReport, error) {
	now := s.now()

	compute := func() (*business.ExposureReport, error) {
		return s.buildReport(ctx, userID, now)
	}

	if s.cache == nil {
		return compute()
	}
	return s.cache.GetOrCompute(ctx, userID, now, compute)
}

func (s *NexusService) buildReport(ctx context.Context, userID uuid.UUID, now time.Time) (*business.ExposureReport, error) {
	windows := nexus.WindowBounds(now)

	rows, err := s.queries.ListOrdersForExposure(ctx, db.ListOrdersForExposureParams{
		UserID:        userID,
		OrderDateFrom: helpers.TimeToNullableTimestamptz(windows.EarliestStart()),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load orders for exposure report")
	}

	report := nexus.BuildReport(s.registry, helpers.OrdersFromExposureRows(rows), now)

	s.logger.Debug("Built nexus exposure report",
		zap.String("user_id", userID.String()),
		zap.Int("orders", len(rows)),
		zap.Int("states_with_sales", report.Summary.StatesWithSales),
		zap.Int("exceeded", report.Summary.ExceededCount),
		zap.Int("warning", report.Summary.WarningCount))

	return &report, nil
}

// ListThresholds returns every state rule ordered by state code
func (s *NexusService) ListThresholds() []business.StateThreshold {
	return s.registry.ListAll()
}

// ListRegistrations returns the state codes userID is registered in
func (s *NexusService) ListRegistrations(ctx context.Context, userID uuid.UUID) ([]string, error) {
	registrations, err := s.queries.ListNexusRegistrations(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list nexus registrations")
	}

	codes := make([]string, 0, len(registrations))
	for _, registration := range registrations {
		codes = append(codes, strings.TrimSpace(registration.StateCode))
	}
	return codes, nil
}

// ReplaceRegistrations replaces userID's registered states in one transaction.
// Codes are normalised and deduplicated; any code outside the registry
// rejects the whole request with ErrUnknownState.
func (s *NexusService) ReplaceRegistrations(ctx context.Context, userID uuid.UUID, stateCodes []string) ([]string, error) {
	codes, err := s.normalizeStateCodes(stateCodes)
	if err != nil {
		return nil, err
	}

	err = s.txRunner.RunInTransaction(ctx, func(q db.Querier) error {
		if err := q.DeleteNexusRegistrationsByUser(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to clear nexus registrations")
		}
		for _, code := range codes {
			if _, err := q.CreateNexusRegistration(ctx, db.CreateNexusRegistrationParams{
				UserID:    userID,
				StateCode: code,
			}); err != nil {
				return errors.Wrapf(err, "failed to register state %s", code)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Replaced nexus registrations",
		zap.String("user_id", userID.String()),
		zap.Strings("state_codes", codes))

	return codes, nil
}

func (s *NexusService) normalizeStateCodes(stateCodes []string) ([]string, error) {
	seen := make(map[string]struct{}, len(stateCodes))
	codes := make([]string, 0, len(stateCodes))

	for _, raw := range stateCodes {
		threshold, ok := s.registry.GetThreshold(raw)
		if !ok {
			return nil, errors.Wrapf(ErrUnknownState, "%q", raw)
		}
		if _, dup := seen[threshold.StateCode]; dup {
			continue
		}
		seen[threshold.StateCode] = struct{}{}
		codes = append(codes, threshold.StateCode)
	}

	sort.Strings(codes)
	return codes, nil
}
