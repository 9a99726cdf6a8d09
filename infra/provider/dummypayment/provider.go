// Package dummypayment implements the payment provider contract without a
// real provider behind it. Checkout sessions are fabricated locally and
// webhook callbacks are authenticated with an HMAC shared secret, the same
// scheme a real integration would use.
package dummypayment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/briskfarm/backend/pkg/config"
	"github.com/briskfarm/backend/pkg/domain"
	"github.com/briskfarm/backend/pkg/provider/payment"
)

const baseURL = "https://payments.example.local"

// Provider fabricates checkout sessions and verifies webhook callbacks.
type Provider struct {
	cfg    *config.Payment
	logger *slog.Logger
}

// New creates a dummy provider. The webhook secret comes from cfg; no
// global settings lookup happens at verification time.
func New(cfg *config.Payment, logger *slog.Logger) *Provider {
	return &Provider{cfg: cfg, logger: logger}
}

// CreateSession fabricates a checkout session for the donation. The
// session id is derived from provider name, normalized method and donation
// id, so it is unique per donation and needs no lookup table. No network
// call is made; a real integration would wrap this with a timeout and
// treat provider unavailability as retryable, leaving the donation pending.
func (p *Provider) CreateSession(ctx context.Context, req payment.SessionRequest) (*payment.CheckoutSession, error) {
	method := domain.NormalizePaymentMethod(req.Method.String())

	providerName := p.cfg.ProviderName
	if providerName == "" {
		providerName = "dummy"
	}

	sessionID := fmt.Sprintf("%s_%s_session_%s", providerName, method, req.DonationID)

	var path string
	switch method {
	case domain.MethodMTNMomo:
		path = fmt.Sprintf("/mtn-momo/checkout/%s", sessionID)
	case domain.MethodAirtelMomo:
		path = fmt.Sprintf("/airtel-momo/checkout/%s", sessionID)
	default:
		path = fmt.Sprintf("/card/checkout/%s", sessionID)
	}

	p.logger.Info("payment session created",
		"donation_id", req.DonationID,
		"session_id", sessionID,
		"method", method,
	)

	return &payment.CheckoutSession{
		Provider:      providerName,
		SessionID:     sessionID,
		PaymentURL:    baseURL + path,
		PaymentMethod: method.String(),
	}, nil
}

// VerifySignature checks hex(HMAC-SHA256(secret, payload)) against the
// header value in constant time. Each failure mode has its own error so
// callers can tell misconfiguration from forgery.
func (p *Provider) VerifySignature(payload []byte, signature string) error {
	if p.cfg.WebhookSecret == "" {
		return domain.ErrWebhookSecretNotConfigured
	}
	if signature == "" {
		return domain.ErrWebhookSignatureMissing
	}

	expected := ComputeSignature(p.cfg.WebhookSecret, payload)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return domain.ErrWebhookSignatureInvalid
	}
	return nil
}

// ParseEvent decodes the verified body. session_id and status are
// mandatory; everything else rides along for audit.
func (p *Provider) ParseEvent(payload []byte) (*payment.Event, error) {
	var event payment.Event
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrWebhookBadPayload, err)
	}
	if event.SessionID == "" || event.Status == "" {
		return nil, fmt.Errorf("%w: missing session_id or status", domain.ErrWebhookBadPayload)
	}
	return &event, nil
}

// ComputeSignature returns the hex HMAC-SHA256 of body under secret. Tests
// and simulated provider callbacks use it to sign payloads.
func ComputeSignature(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}
