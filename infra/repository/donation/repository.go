// Package donation persists donation records and performs the conditional
// status writes used by webhook reconciliation.
package donation

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/briskfarm/backend/infra/model"
	"github.com/briskfarm/backend/pkg/domain"
)

// Filter narrows admin donation listings. Nil fields are ignored.
type Filter struct {
	CampaignID *uuid.UUID
	Status     *domain.DonationStatus
	DateFrom   *time.Time
	DateTo     *time.Time
	MinAmount  *int64
	MaxAmount  *int64
	Skip       int
	Limit      int
}

type Repository struct {
	db *gorm.DB
}

// New creates a donation repository over the given session. Pass the
// transaction handle when the operation participates in a unit of work.
func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new donation row.
func (r *Repository) Create(ctx context.Context, d *model.Donation) error {
	return r.db.WithContext(ctx).Create(d).Error
}

// Get returns a donation by id, with its campaign preloaded.
func (r *Repository) Get(ctx context.Context, id uuid.UUID) (*model.Donation, error) {
	var d model.Donation
	err := r.db.WithContext(ctx).Preload("Campaign").First(&d, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrDonationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// GetBySessionID resolves the donation correlated with a provider checkout
// session. Exactly one row can match; the column carries a unique index.
func (r *Repository) GetBySessionID(ctx context.Context, sessionID string) (*model.Donation, error) {
	var d model.Donation
	err := r.db.WithContext(ctx).
		Preload("Campaign").
		First(&d, "provider_session_id = ?", sessionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrDonationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// List returns donations matching the filter, newest first.
func (r *Repository) List(ctx context.Context, f Filter) ([]model.Donation, error) {
	q := r.db.WithContext(ctx).Model(&model.Donation{})

	if f.CampaignID != nil {
		q = q.Where("campaign_id = ?", *f.CampaignID)
	}
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.DateFrom != nil {
		q = q.Where("created_at >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		q = q.Where("created_at <= ?", *f.DateTo)
	}
	if f.MinAmount != nil {
		q = q.Where("amount >= ?", *f.MinAmount)
	}
	if f.MaxAmount != nil {
		q = q.Where("amount <= ?", *f.MaxAmount)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 100
	}

	var out []model.Donation
	err := q.Order("created_at DESC").Offset(f.Skip).Limit(limit).Find(&out).Error
	return out, err
}

// AttachProviderSession records the provider identifiers produced at
// checkout-session creation time.
func (r *Repository) AttachProviderSession(
	ctx context.Context,
	id uuid.UUID,
	provider, sessionID, paymentID, providerStatus string,
) error {
	return r.db.WithContext(ctx).Model(&model.Donation{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"payment_provider":    provider,
			"provider_session_id": sessionID,
			"provider_payment_id": paymentID,
			"provider_status":     providerStatus,
		}).Error
}

// UpdateStatusFrom performs the reconciliation write as a compare-and-set:
// the row is only updated when its status still equals prev. Returns
// ErrConcurrentStatusUpdate when another writer got there first.
func (r *Repository) UpdateStatusFrom(
	ctx context.Context,
	id uuid.UUID,
	prev, next domain.DonationStatus,
	providerStatus string,
) error {
	res := r.db.WithContext(ctx).Model(&model.Donation{}).
		Where("id = ? AND status = ?", id, prev).
		Updates(map[string]any{
			"status":          next,
			"provider_status": providerStatus,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrConcurrentStatusUpdate
	}
	return nil
}

// SetProviderStatus records the raw provider status without touching the
// donation status. Used for no-op transitions and replays.
func (r *Repository) SetProviderStatus(ctx context.Context, id uuid.UUID, providerStatus string) error {
	return r.db.WithContext(ctx).Model(&model.Donation{}).
		Where("id = ?", id).
		Update("provider_status", providerStatus).Error
}
