package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-accounts/internal/config"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/models"
	"gopkg.in/gomail.v2"
)

// dialer is the part of *gomail.Dialer used by smtpMailer.
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type smtpMailer struct {
	dialer dialer
	from   string
	logger *logger.Logger
}

// NewSMTPMailer constructs a [Mailer] that opens one SMTP connection per
// message. Port 465 implies implicit TLS, other ports use STARTTLS when the
// server offers it.
func NewSMTPMailer(cfg config.Mail, log *logger.Logger) Mailer {
	return &smtpMailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.From,
		logger: log,
	}
}

func (m *smtpMailer) Send(ctx context.Context, email models.Email) error {
	log := logger.FromContext(ctx)

	if email.To == "" {
		return ErrEmptyRecipient
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrSendingMail, err)
	}

	if err := m.dialer.DialAndSend(m.newMessage(email)); err != nil {
		log.Err(err).Str("func", "*smtpMailer.Send").Str("subject", email.Subject).Msg("smtp delivery failed")
		return fmt.Errorf("%w: %w", ErrSendingMail, err)
	}

	log.Debug().Str("func", "*smtpMailer.Send").Str("subject", email.Subject).Msg("mail sent")
	return nil
}

func (m *smtpMailer) newMessage(email models.Email) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email.To)
	msg.SetHeader("Subject", email.Subject)

	switch {
	case email.Text != "" && email.HTML != "":
		msg.SetBody("text/plain", email.Text)
		msg.AddAlternative("text/html", email.HTML)
	case email.HTML != "":
		msg.SetBody("text/html", email.HTML)
	default:
		msg.SetBody("text/plain", email.Text)
	}

	return msg
}
