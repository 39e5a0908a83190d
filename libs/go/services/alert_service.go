package services

import (
	"bytes"
	"context"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sails-app/sails-api/libs/go/db"
	"github.com/sails-app/sails-api/libs/go/helpers"
	"github.com/sails-app/sails-api/libs/go/interfaces"
	"github.com/sails-app/sails-api/libs/go/logger"
	"github.com/sails-app/sails-api/libs/go/types/api/params"
	"github.com/sails-app/sails-api/libs/go/types/business"
	"go.uber.org/zap"
)

// AlertService emails users whose nexus exposure escalated to warning or
// exceeded since their last alert.
type AlertService struct {
	queries  db.Querier
	txRunner helpers.TxRunner
	nexus    interfaces.NexusService
	email    interfaces.EmailSender
	now      func() time.Time
	logger   *zap.Logger
}

// NewAlertService creates a new alert service
func NewAlertService(queries db.Querier, txRunner helpers.TxRunner, nexus interfaces.NexusService, email interfaces.EmailSender) *AlertService {
	return &AlertService{
		queries:  queries,
		txRunner: txRunner,
		nexus:    nexus,
		email:    email,
		now:      time.Now,
		logger:   logger.Log,
	}
}

// WithClock returns a copy of the service using now as its clock
func (s *AlertService) WithClock(now func() time.Time) *AlertService {
	clone := *s
	clone.now = now
	return &clone
}

// ProcessExposureAlerts checks every user with orders in the last twelve
// months. A failing user is logged and skipped; the run fails only when
// every user failed.
func (s *AlertService) ProcessExposureAlerts(ctx context.Context) (*business.AlertRunResult, error) {
	since := s.now().AddDate(-1, 0, 0)

	userIDs, err := s.queries.ListUserIDsWithOrdersSince(ctx, helpers.TimeToNullableTimestamptz(since))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users with recent orders")
	}

	result := &business.AlertRunResult{}
	for _, userID := range userIDs {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		sent, err := s.ProcessUser(ctx, userID)
		if err != nil {
			result.UsersFailed++
			s.logger.Error("Failed to process exposure alerts for user",
				zap.String("user_id", userID.String()),
				zap.Error(err))
			continue
		}

		result.UsersProcessed++
		if sent > 0 {
			result.AlertsSent++
		}
	}

	s.logger.Info("Exposure alert run finished",
		zap.Int("users", len(userIDs)),
		zap.Int("processed", result.UsersProcessed),
		zap.Int("failed", result.UsersFailed),
		zap.Int("alerts_sent", result.AlertsSent))

	if len(userIDs) > 0 && result.UsersFailed == len(userIDs) {
		return result, errors.Errorf("exposure alerts failed for all %d users", len(userIDs))
	}
	return result, nil
}

// ProcessUser emails userID about escalated states and records the statuses
// alerted on. It returns the number of escalated states.
func (s *AlertService) ProcessUser(ctx context.Context, userID uuid.UUID) (int, error) {
	report, err := s.nexus.GetExposureReport(ctx, userID)
	if err != nil {
		return 0, err
	}

	alerts, err := s.queries.ListExposureAlerts(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list exposure alerts")
	}

	escalations, recoveries := diffAlerts(report.Exposures, alerts)
	if len(escalations) == 0 && len(recoveries) == 0 {
		return 0, nil
	}

	if len(escalations) > 0 {
		user, err := s.queries.GetUserByID(ctx, userID)
		if err != nil {
			return 0, errors.Wrap(err, "failed to load user")
		}

		message, err := renderExposureAlert(business.ExposureAlertEmailData{
			UserName:    helpers.NullableTextToString(user.Name),
			Escalations: escalations,
		})
		if err != nil {
			return 0, err
		}
		message.To = []string{user.Email}

		if err := s.email.SendTransactionalEmail(ctx, message); err != nil {
			return 0, err
		}
	}

	// Record after sending so a failed send is retried on the next run.
	err = s.txRunner.RunInTransaction(ctx, func(q db.Querier) error {
		for _, update := range append(escalations, recoveries...) {
			if _, err := q.UpsertExposureAlert(ctx, db.UpsertExposureAlertParams{
				UserID:            userID,
				StateCode:         update.StateCode,
				Status:            string(update.Status),
				HighestPercentage: update.HighestPercentage,
			}); err != nil {
				return errors.Wrapf(err, "failed to record alert for %s", update.StateCode)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(escalations), nil
}

// diffAlerts compares current exposures with the last alerted statuses.
// Escalations are taxed states now at warning or exceeded whose status is
// more urgent than the recorded one. Recoveries are states whose recorded
// alert status is no longer reached; recording them lets a later escalation
// alert again.
func diffAlerts(exposures []business.StateExposure, alerts []db.ExposureAlert) (escalations, recoveries []business.ExposureEscalation) {
	previous := make(map[string]business.ExposureStatus, len(alerts))
	for _, alert := range alerts {
		previous[alert.StateCode] = business.ExposureStatus(alert.Status)
	}

	for _, exposure := range exposures {
		prior, alerted := previous[exposure.StateCode]
		change := business.ExposureEscalation{
			StateCode:         exposure.StateCode,
			StateName:         exposure.StateName,
			PreviousStatus:    prior,
			Status:            exposure.Status,
			HighestPercentage: exposure.HighestPercentage,
		}

		if !alertable(exposure) {
			if alerted && alertableStatus(prior) {
				recoveries = append(recoveries, change)
			}
			continue
		}

		if alerted && prior.Urgency() <= exposure.Status.Urgency() {
			if prior != exposure.Status {
				recoveries = append(recoveries, change)
			}
			continue
		}
		escalations = append(escalations, change)
	}

	return escalations, recoveries
}

func alertable(exposure business.StateExposure) bool {
	return exposure.HasSalesTax && alertableStatus(exposure.Status)
}

func alertableStatus(status business.ExposureStatus) bool {
	return status == business.StatusExceeded || status == business.StatusWarning
}

var exposureAlertHTML = htmltemplate.Must(htmltemplate.New("exposure_alert_html").Parse(`<p>Hi{{if .UserName}} {{.UserName}}{{end}},</p>
<p>Your sales tax nexus exposure changed in the following states:</p>
<ul>
{{range .Escalations}}<li><strong>{{.StateName}} ({{.StateCode}})</strong>: {{.Status}} at {{printf "%.1f" .HighestPercentage}}% of the threshold{{if .PreviousStatus}} (was {{.PreviousStatus}}){{end}}</li>
{{end}}</ul>
<p>States marked exceeded may require sales tax registration.</p>`))

var exposureAlertText = texttemplate.Must(texttemplate.New("exposure_alert_text").Parse(`Hi{{if .UserName}} {{.UserName}}{{end}},

Your sales tax nexus exposure changed in the following states:
{{range .Escalations}}
- {{.StateName}} ({{.StateCode}}): {{.Status}} at {{printf "%.1f" .HighestPercentage}}% of the threshold{{if .PreviousStatus}} (was {{.PreviousStatus}}){{end}}{{end}}

States marked exceeded may require sales tax registration.
`))

func renderExposureAlert(data business.ExposureAlertEmailData) (params.TransactionalEmailParams, error) {
	var html, text bytes.Buffer
	if err := exposureAlertHTML.Execute(&html, data); err != nil {
		return params.TransactionalEmailParams{}, fmt.Errorf("failed to render alert html: %w", err)
	}
	if err := exposureAlertText.Execute(&text, data); err != nil {
		return params.TransactionalEmailParams{}, fmt.Errorf("failed to render alert text: %w", err)
	}

	subject := fmt.Sprintf("Sales tax nexus alert: %d state", len(data.Escalations))
	if len(data.Escalations) != 1 {
		subject += "s"
	}

	return params.TransactionalEmailParams{
		Subject:     subject,
		HTMLContent: html.String(),
		TextContent: text.String(),
		Tags:        map[string]string{"category": "nexus_alert"},
	}, nil
}
