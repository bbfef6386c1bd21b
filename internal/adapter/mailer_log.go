package adapter

import (
	"context"

	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/models"
)

// logMailer writes messages to the log instead of delivering them.
// Only meant for local runs without an SMTP server.
type logMailer struct {
	logger *logger.Logger
}

func NewLogMailer(log *logger.Logger) Mailer {
	return &logMailer{logger: log}
}

func (m *logMailer) Send(ctx context.Context, email models.Email) error {
	if email.To == "" {
		return ErrEmptyRecipient
	}

	logger.FromContext(ctx).Info().
		Str("func", "*logMailer.Send").
		Str("subject", email.Subject).
		Str("body", email.Text).
		Msg("mail not delivered: no SMTP host configured")
	return nil
}
