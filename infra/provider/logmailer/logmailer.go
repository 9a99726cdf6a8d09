// Package logmailer is a Mailer that writes outbound messages to the
// structured log instead of an SMTP relay. It stands in for a real email
// provider in development and tests.
package logmailer

import (
	"context"
	"log/slog"

	"github.com/briskfarm/backend/pkg/service/notification"
)

type Mailer struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Mailer {
	return &Mailer{logger: logger}
}

// Send logs the message and reports success.
func (m *Mailer) Send(ctx context.Context, msg notification.Message) error {
	m.logger.Info("outbound email",
		"from", msg.From,
		"to", msg.To,
		"subject", msg.Subject,
		"body", msg.Body,
	)
	return nil
}
