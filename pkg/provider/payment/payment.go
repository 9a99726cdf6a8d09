// Package payment defines the checkout-provider contract used by the
// donation flow. Implementations live under infra/provider.
package payment

import (
	"context"

	"github.com/google/uuid"

	"github.com/briskfarm/backend/pkg/domain"
)

// SessionRequest carries the donation fields a provider needs to open a
// checkout session.
type SessionRequest struct {
	DonationID uuid.UUID
	Amount     int64
	Currency   string
	Method     domain.PaymentMethod
}

// CheckoutSession is the result of opening a provider checkout for a
// donation.
type CheckoutSession struct {
	Provider      string `json:"provider"`
	SessionID     string `json:"session_id"`
	PaymentURL    string `json:"payment_url"`
	PaymentMethod string `json:"payment_method"`
}

// Event is a provider webhook callback after signature verification and
// parsing. SessionID and Status are always present; the remaining fields
// are carried through for audit but unused by reconciliation.
type Event struct {
	SessionID     string `json:"session_id"`
	Status        string `json:"status"`
	Provider      string `json:"provider,omitempty"`
	EventType     string `json:"event_type,omitempty"`
	Amount        int64  `json:"amount,omitempty"`
	Currency      string `json:"currency,omitempty"`
	PaymentMethod string `json:"payment_method,omitempty"`
}

// Provider is a payment checkout provider.
//
// VerifySignature must be called on the exact raw request bytes before
// ParseEvent, and ParseEvent before any state is touched. That ordering is
// a correctness requirement, not an optimization: forged events must be
// rejected before they can influence the database.
type Provider interface {
	// CreateSession opens a checkout session for a pending donation and
	// returns the provider identifiers to persist on it.
	CreateSession(ctx context.Context, req SessionRequest) (*CheckoutSession, error)

	// VerifySignature proves the authenticity of a raw webhook body against
	// the signature header value.
	VerifySignature(payload []byte, signature string) error

	// ParseEvent decodes verified raw bytes into a structured event.
	ParseEvent(payload []byte) (*Event, error)
}
