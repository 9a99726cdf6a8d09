// Package donation orchestrates the donation lifecycle: checkout intent
// creation, listing, and webhook reconciliation.
package donation

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/briskfarm/backend/infra/model"
	"github.com/briskfarm/backend/infra/repository"
	campaignrepo "github.com/briskfarm/backend/infra/repository/campaign"
	donationrepo "github.com/briskfarm/backend/infra/repository/donation"
	"github.com/briskfarm/backend/pkg/domain"
	"github.com/briskfarm/backend/pkg/provider/payment"
)

// ReceiptSender delivers a donation receipt to the donor. Delivery is best
// effort; a failed send never affects donation state.
type ReceiptSender interface {
	SendReceipt(ctx context.Context, d *model.Donation) error
}

// CreateIntentParams carries the public donation-intent input after
// transport validation.
type CreateIntentParams struct {
	Amount        int64
	Currency      string
	DonorName     *string
	DonorEmail    *string
	DonorPhone    *string
	IsAnonymous   bool
	Message       *string
	CampaignID    *uuid.UUID
	PaymentMethod string
	IPAddress     *string
	UserAgent     *string
}

// Service coordinates donation state with the payment provider.
type Service struct {
	uow      *repository.UoW
	provider payment.Provider
	receipts ReceiptSender
	logger   *slog.Logger
}

// New creates a donation service. receipts may be nil when receipt
// delivery is disabled.
func New(
	uow *repository.UoW,
	provider payment.Provider,
	receipts ReceiptSender,
	logger *slog.Logger,
) *Service {
	return &Service{
		uow:      uow,
		provider: provider,
		receipts: receipts,
		logger:   logger,
	}
}

// CreateIntent records a pending donation and opens a provider checkout
// session for it. The donation row, the session creation and the provider
// identifiers are committed as one unit, so no donation is ever left
// without its session correlation key.
func (s *Service) CreateIntent(
	ctx context.Context,
	params CreateIntentParams,
) (*model.Donation, *payment.CheckoutSession, error) {
	if params.Amount <= 0 {
		return nil, nil, domain.ErrDonationAmountMustBePositive
	}

	currency := params.Currency
	if currency == "" {
		currency = "UGX"
	}
	method := domain.NormalizePaymentMethod(params.PaymentMethod)

	d := &model.Donation{
		Amount:        params.Amount,
		Currency:      currency,
		Status:        domain.DonationPending,
		DonorName:     params.DonorName,
		DonorEmail:    params.DonorEmail,
		DonorPhone:    params.DonorPhone,
		IsAnonymous:   params.IsAnonymous,
		Message:       params.Message,
		CampaignID:    params.CampaignID,
		PaymentMethod: method,
		IPAddress:     params.IPAddress,
		UserAgent:     params.UserAgent,
	}

	var session *payment.CheckoutSession
	err := s.uow.Do(ctx, func(tx *gorm.DB) error {
		// The accepting-donations gate reads inside the transaction so a
		// campaign closed concurrently cannot receive the insert.
		if params.CampaignID != nil {
			c, err := campaignrepo.New(tx).Get(ctx, *params.CampaignID)
			if err != nil {
				return err
			}
			if !c.Status.AcceptsDonations() {
				return domain.ErrCampaignNotAcceptingDonations
			}
		}

		repo := donationrepo.New(tx)
		if err := repo.Create(ctx, d); err != nil {
			return err
		}

		sess, err := s.provider.CreateSession(ctx, payment.SessionRequest{
			DonationID: d.ID,
			Amount:     d.Amount,
			Currency:   d.Currency,
			Method:     method,
		})
		if err != nil {
			return err
		}
		session = sess

		return repo.AttachProviderSession(
			ctx, d.ID,
			sess.Provider, sess.SessionID, sess.SessionID, "created",
		)
	})
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("donation intent created",
		"donation_id", d.ID,
		"amount", d.Amount,
		"currency", d.Currency,
		"method", method,
		"session_id", session.SessionID,
	)

	// Reload so callers see the provider fields written in the unit.
	created, err := donationrepo.New(s.uow.DB()).Get(ctx, d.ID)
	if err != nil {
		return nil, nil, err
	}
	return created, session, nil
}

// Get returns a donation by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.Donation, error) {
	return donationrepo.New(s.uow.DB()).Get(ctx, id)
}

// List returns donations matching the filter, newest first.
func (s *Service) List(ctx context.Context, f donationrepo.Filter) ([]model.Donation, error) {
	return donationrepo.New(s.uow.DB()).List(ctx, f)
}

// ApplyWebhook reconciles one provider event against donation state.
//
// Verification happens on the exact raw bytes before anything is parsed,
// and parsing before anything is read from the database. Replays and
// transitions that map to the donation's current status are acknowledged
// without a state change, so the endpoint is safe to call any number of
// times with the same event.
func (s *Service) ApplyWebhook(
	ctx context.Context,
	rawBody []byte,
	signature string,
) (*model.Donation, error) {
	if err := s.provider.VerifySignature(rawBody, signature); err != nil {
		return nil, err
	}
	event, err := s.provider.ParseEvent(rawBody)
	if err != nil {
		return nil, err
	}

	d, err := donationrepo.New(s.uow.DB()).GetBySessionID(ctx, event.SessionID)
	if err != nil {
		return nil, err
	}

	prev := d.Status
	next := domain.MapProviderStatus(event.Status)

	// Unrecognized provider statuses and exact replays only refresh the
	// recorded provider status. Confirmed money leaves only through a
	// refund; a late failure or decline for an already confirmed donation
	// is acknowledged the same way.
	noTransition := next == prev ||
		next == domain.DonationPending ||
		(prev == domain.DonationConfirmed && next != domain.DonationRefunded)
	if noTransition {
		if err := donationrepo.New(s.uow.DB()).SetProviderStatus(ctx, d.ID, event.Status); err != nil {
			return nil, err
		}
		s.logger.Info("webhook acknowledged without transition",
			"donation_id", d.ID,
			"status", prev,
			"provider_status", event.Status,
		)
		return donationrepo.New(s.uow.DB()).Get(ctx, d.ID)
	}

	err = s.uow.Do(ctx, func(tx *gorm.DB) error {
		if err := donationrepo.New(tx).UpdateStatusFrom(ctx, d.ID, prev, next, event.Status); err != nil {
			return err
		}
		if d.CampaignID == nil {
			return nil
		}

		// The raised accumulator moves with the donation in the same
		// transaction: up on the first confirmation, back down when a
		// confirmed donation is refunded.
		campaigns := campaignrepo.New(tx)
		switch {
		case next == domain.DonationConfirmed && prev != domain.DonationConfirmed:
			return campaigns.AddToRaised(ctx, *d.CampaignID, d.Amount)
		case next == domain.DonationRefunded && prev == domain.DonationConfirmed:
			return campaigns.AddToRaised(ctx, *d.CampaignID, -d.Amount)
		}
		return nil
	})
	if errors.Is(err, domain.ErrConcurrentStatusUpdate) {
		// Another delivery of the same event won the race. Acknowledge and
		// report whatever state it left behind.
		s.logger.Warn("webhook lost status race",
			"donation_id", d.ID,
			"provider_status", event.Status,
		)
		return donationrepo.New(s.uow.DB()).Get(ctx, d.ID)
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("donation status reconciled",
		"donation_id", d.ID,
		"from", prev,
		"to", next,
		"provider_status", event.Status,
	)

	updated, err := donationrepo.New(s.uow.DB()).Get(ctx, d.ID)
	if err != nil {
		return nil, err
	}

	if next == domain.DonationConfirmed && s.receipts != nil {
		if err := s.receipts.SendReceipt(ctx, updated); err != nil {
			s.logger.Error("receipt delivery failed",
				"donation_id", updated.ID,
				"error", err,
			)
		}
	}
	return updated, nil
}
