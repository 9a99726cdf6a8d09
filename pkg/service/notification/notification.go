// Package notification composes and delivers donor receipts. Delivery is
// best effort by contract; callers must never couple donation state to it.
package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cenkalti/backoff/v5"

	"github.com/briskfarm/backend/infra/model"
	"github.com/briskfarm/backend/pkg/config"
)

// Message is one outbound email.
type Message struct {
	From    string
	To      string
	Subject string
	Body    string
}

// Mailer delivers a composed message. Implementations live under
// infra/provider.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// Service composes donation receipts and hands them to a Mailer with
// retry on transient failure.
type Service struct {
	mailer Mailer
	cfg    *config.Email
	logger *slog.Logger
}

func New(mailer Mailer, cfg *config.Email, logger *slog.Logger) *Service {
	return &Service{mailer: mailer, cfg: cfg, logger: logger}
}

// SendReceipt emails a confirmation receipt to the donor. Donations
// without a donor email are skipped silently. Transient mailer failures
// are retried with exponential backoff up to the configured elapsed time.
func (s *Service) SendReceipt(ctx context.Context, d *model.Donation) error {
	if d.DonorEmail == nil || *d.DonorEmail == "" {
		s.logger.Debug("receipt skipped, no donor email", "donation_id", d.ID)
		return nil
	}

	msg := Message{
		From:    s.cfg.From,
		To:      *d.DonorEmail,
		Subject: fmt.Sprintf("Thank you for your donation of %d %s", d.Amount, d.Currency),
		Body:    receiptBody(d),
	}

	operation := func() (struct{}, error) {
		return struct{}{}, s.mailer.Send(ctx, msg)
	}
	_, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxElapsedTime(s.cfg.MaxElapsed),
	)
	if err != nil {
		return fmt.Errorf("send receipt for donation %s: %w", d.ID, err)
	}

	s.logger.Info("receipt sent", "donation_id", d.ID, "to", msg.To)
	return nil
}

func receiptBody(d *model.Donation) string {
	name := "Friend"
	if d.DonorName != nil && *d.DonorName != "" && !d.IsAnonymous {
		name = *d.DonorName
	}

	designation := "General support"
	if d.Campaign != nil {
		designation = d.Campaign.Name
	}

	return fmt.Sprintf(
		"Dear %s,\n\n"+
			"We have received your donation of %d %s towards %s.\n"+
			"Your reference number is %s.\n\n"+
			"Thank you for your generosity.\n",
		name, d.Amount, d.Currency, designation, d.ID,
	)
}
