package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"

	"github.com/sails-app/sails-api/libs/go/types/api/params"
)

type EmailService struct {
	client    *resend.Client
	logger    *zap.Logger
	fromEmail string
	fromName  string
}

func NewEmailService(client *resend.Client, fromEmail string, fromName string, logger *zap.Logger) *EmailService {
	return &EmailService{
		client:    client,
		logger:    logger,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

// NewResendEmailService creates an EmailService with a Resend client for apiKey
func NewResendEmailService(apiKey string, fromEmail string, fromName string, logger *zap.Logger) *EmailService {
	return NewEmailService(resend.NewClient(apiKey), fromEmail, fromName, logger)
}

// SendTransactionalEmail sends a general transactional email
func (s *EmailService) SendTransactionalEmail(ctx context.Context, params params.TransactionalEmailParams) error {
	if len(params.To) == 0 {
		return fmt.Errorf("email has no recipients")
	}

	headers := map[string]string{"X-Entity-Ref-ID": uuid.New().String()}
	for k, v := range params.Headers {
		headers[k] = v
	}

	request := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail),
		To:      params.To,
		Subject: params.Subject,
		Html:    params.HTMLContent,
		Text:    params.TextContent,
		ReplyTo: params.ReplyTo,
		Headers: headers,
		Tags:    convertToResendTags(params.Tags),
	}

	sent, err := s.client.Emails.Send(request)
	if err != nil {
		s.logger.Error("failed to send transactional email",
			zap.Error(err),
			zap.Strings("to", params.To),
			zap.String("subject", params.Subject))
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info("transactional email sent successfully",
		zap.String("email_id", sent.Id),
		zap.Strings("to", params.To),
		zap.String("subject", params.Subject))

	return nil
}

func convertToResendTags(tags map[string]string) []resend.Tag {
	var resendTags []resend.Tag
	for name, value := range tags {
		resendTags = append(resendTags, resend.Tag{
			Name:  name,
			Value: value,
		})
	}
	return resendTags
}
