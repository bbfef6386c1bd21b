// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides abstractions for outbound integrations of the
// accounts service.
//
// The primary abstraction is [Mailer], which decouples the service layer from
// the mail transport. The package ships an SMTP implementation backed by
// gomail ([NewSMTPMailer]) and a logging implementation for local development
// ([NewLogMailer]); [NewMailer] picks one from configuration.
//
// Transport failures are wrapped with [ErrSendingMail] so that callers can use
// [errors.Is] without depending on the transport.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-accounts/internal/config"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mailer_mock.go -package=mock

// Mailer delivers e-mails. Send returns once the message has been handed to
// the transport or has failed.
type Mailer interface {
	Send(ctx context.Context, email models.Email) error
}

// NewMailer returns the SMTP mailer when an SMTP host is configured and the
// logging mailer otherwise.
func NewMailer(cfg config.Mail, log *logger.Logger) Mailer {
	if cfg.SMTPHost == "" {
		log.Warn().Msg("no SMTP host configured, e-mails will only be logged")
		return NewLogMailer(log)
	}
	return NewSMTPMailer(cfg, log)
}
