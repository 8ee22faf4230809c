package contact

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/joshu-sajeev/contactrelay/common"
	"github.com/joshu-sajeev/contactrelay/internal/config"
	"github.com/joshu-sajeev/contactrelay/internal/dto"
	"github.com/joshu-sajeev/contactrelay/internal/mailer"
	"github.com/joshu-sajeev/contactrelay/internal/metrics"
)

type ContactService struct {
	smtp    config.SMTPConfig
	sender  mailer.Sender
	metrics *metrics.ContactMetrics
	logger  *zap.Logger
}

func NewContactService(smtp config.SMTPConfig, sender mailer.Sender, m *metrics.ContactMetrics, logger *zap.Logger) *ContactService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContactService{
		smtp:    smtp,
		sender:  sender,
		metrics: m,
		logger:  logger.Named("contact"),
	}
}

var _ ContactServiceInterface = (*ContactService)(nil)

// CheckConfigured reports a configuration error when the SMTP account
// credentials are missing. Credential values never appear in the error.
func (s *ContactService) CheckConfigured() error {
	if !s.smtp.Configured() {
		s.logger.Error("missing SMTP credentials, check SMTP_EMAIL and SMTP_PASSWORD")
		s.metrics.ObserveSubmission(metrics.OutcomeMisconfigured)
		return common.ConfigurationError()
	}
	return nil
}

// Submit validates the submission, renders it as an HTML email and sends it
// to the configured account with the submitter as reply-to.
// Missing configuration is reported before validation so that an
// unconfigured server never answers with a validation error.
func (s *ContactService) Submit(ctx context.Context, sub *dto.ContactSubmission) error {
	if err := s.CheckConfigured(); err != nil {
		return err
	}

	if err := Validate(sub); err != nil {
		s.logger.Info("form validation failed", zap.Error(err))
		s.metrics.ObserveSubmission(metrics.OutcomeInvalid)
		return common.ValidationError()
	}

	html, err := FormatEmailHTML(sub)
	if err != nil {
		s.logger.Error("failed to render contact email", zap.Error(err))
		s.metrics.ObserveSubmission(metrics.OutcomeFailed)
		return submitFailed()
	}

	msg := mailer.Message{
		From:    s.smtp.Email,
		To:      s.smtp.Email,
		ReplyTo: sub.Email.String(),
		Subject: Subject(sub),
		HTML:    html,
	}

	if err := s.sender.Send(ctx, msg); err != nil {
		s.logger.Error("error processing form submission", zap.Error(err))
		s.metrics.ObserveSubmission(metrics.OutcomeFailed)
		return submitFailed()
	}

	s.logger.Info("contact form relayed", zap.Stringer("business", sub.BusinessName))
	s.metrics.ObserveSubmission(metrics.OutcomeSent)
	return nil
}

func submitFailed() common.APIError {
	return common.NewAPIError(http.StatusInternalServerError, "Internal Server Error",
		"Failed to submit form. Please try again later.")
}
