package donation

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/briskfarm/backend/infra/model"
)

// CreateDonationInput is the public donation-intent request body.
type CreateDonationInput struct {
	Amount        int64   `json:"amount" validate:"required"`
	Currency      string  `json:"currency" validate:"omitempty,len=3"`
	DonorName     *string `json:"donor_name" validate:"omitempty,max=150"`
	DonorEmail    *string `json:"donor_email" validate:"omitempty,email,max=255"`
	DonorPhone    *string `json:"donor_phone" validate:"omitempty,max=50"`
	IsAnonymous   bool    `json:"is_anonymous"`
	Message       *string `json:"message" validate:"omitempty,max=2000"`
	CampaignID    *string `json:"campaign_id" validate:"omitempty,uuid"`
	PaymentMethod string  `json:"payment_method" validate:"omitempty,max=50"`
}

// PublicDonation is the donor-facing projection. Provider identifiers and
// request metadata are withheld.
type PublicDonation struct {
	ID          uuid.UUID  `json:"id"`
	Amount      int64      `json:"amount"`
	Currency    string     `json:"currency"`
	Status      string     `json:"status"`
	DonorName   *string    `json:"donor_name,omitempty"`
	IsAnonymous bool       `json:"is_anonymous"`
	Message     *string    `json:"message,omitempty"`
	CampaignID  *uuid.UUID `json:"campaign_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// AdminDonation is the back-office projection including provider and
// request metadata.
type AdminDonation struct {
	ID                uuid.UUID  `json:"id"`
	Amount            int64      `json:"amount"`
	Currency          string     `json:"currency"`
	Status            string     `json:"status"`
	DonorName         *string    `json:"donor_name,omitempty"`
	DonorEmail        *string    `json:"donor_email,omitempty"`
	DonorPhone        *string    `json:"donor_phone,omitempty"`
	IsAnonymous       bool       `json:"is_anonymous"`
	Message           *string    `json:"message,omitempty"`
	CampaignID        *uuid.UUID `json:"campaign_id,omitempty"`
	CampaignName      *string    `json:"campaign_name,omitempty"`
	PaymentMethod     string     `json:"payment_method"`
	PaymentProvider   *string    `json:"payment_provider,omitempty"`
	ProviderSessionID *string    `json:"provider_session_id,omitempty"`
	ProviderStatus    *string    `json:"provider_status,omitempty"`
	IPAddress         *string    `json:"ip_address,omitempty"`
	UserAgent         *string    `json:"user_agent,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func toPublic(d *model.Donation) PublicDonation {
	out := PublicDonation{
		ID:          d.ID,
		Amount:      d.Amount,
		Currency:    d.Currency,
		Status:      d.Status.String(),
		IsAnonymous: d.IsAnonymous,
		Message:     d.Message,
		CampaignID:  d.CampaignID,
		CreatedAt:   d.CreatedAt,
	}
	if !d.IsAnonymous {
		out.DonorName = d.DonorName
	}
	return out
}

func toAdmin(d *model.Donation) AdminDonation {
	out := AdminDonation{
		ID:                d.ID,
		Amount:            d.Amount,
		Currency:          d.Currency,
		Status:            d.Status.String(),
		DonorName:         d.DonorName,
		DonorEmail:        d.DonorEmail,
		DonorPhone:        d.DonorPhone,
		IsAnonymous:       d.IsAnonymous,
		Message:           d.Message,
		CampaignID:        d.CampaignID,
		PaymentMethod:     d.PaymentMethod.String(),
		PaymentProvider:   d.PaymentProvider,
		ProviderSessionID: d.ProviderSessionID,
		ProviderStatus:    d.ProviderStatus,
		IPAddress:         d.IPAddress,
		UserAgent:         d.UserAgent,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
	if d.Campaign != nil {
		out.CampaignName = &d.Campaign.Name
	}
	return out
}

// parseTimeParam parses an ISO-8601 query value. Proxies and form encoders
// routinely turn the "+" of a timezone offset into a space, so a single
// interior space before the offset digits is folded back to "+" first.
func parseTimeParam(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if i := strings.LastIndex(s, " "); i > 0 {
		if rest := s[i+1:]; len(rest) == 5 && rest[2] == ':' {
			s = s[:i] + "+" + rest
		}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
