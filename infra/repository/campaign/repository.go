// Package campaign persists fundraising campaigns.
package campaign

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/briskfarm/backend/infra/model"
	"github.com/briskfarm/backend/pkg/domain"
)

// Filter narrows campaign listings. Nil fields are ignored.
type Filter struct {
	Status     *domain.CampaignStatus
	IsFeatured *bool
	Skip       int
	Limit      int
}

type Repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a campaign. A duplicate slug maps to ErrAlreadyExists.
func (r *Repository) Create(ctx context.Context, c *model.Campaign) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Campaign{}).
		Where("slug = ?", c.Slug).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrAlreadyExists
	}
	return r.db.WithContext(ctx).Create(c).Error
}

// Get returns a campaign by id.
func (r *Repository) Get(ctx context.Context, id uuid.UUID) (*model.Campaign, error) {
	var c model.Campaign
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrCampaignNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetBySlug returns a campaign by its public slug.
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*model.Campaign, error) {
	var c model.Campaign
	err := r.db.WithContext(ctx).First(&c, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrCampaignNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns campaigns matching the filter, ordered by sort_order then
// newest first.
func (r *Repository) List(ctx context.Context, f Filter) ([]model.Campaign, error) {
	q := r.db.WithContext(ctx).Model(&model.Campaign{})

	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.IsFeatured != nil {
		q = q.Where("is_featured = ?", *f.IsFeatured)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}

	var out []model.Campaign
	err := q.Order("sort_order ASC, created_at DESC").Offset(f.Skip).Limit(limit).Find(&out).Error
	return out, err
}

// Update applies a partial update. When the slug changes, uniqueness is
// enforced against other campaigns first.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, updates map[string]any) (*model.Campaign, error) {
	c, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if slug, ok := updates["slug"].(string); ok && slug != c.Slug {
		var count int64
		if err := r.db.WithContext(ctx).Model(&model.Campaign{}).
			Where("slug = ? AND id <> ?", slug, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, domain.ErrAlreadyExists
		}
	}

	if err := r.db.WithContext(ctx).Model(c).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

// Archive soft-deletes a campaign: status becomes archived and the campaign
// drops off the featured rotation. Donations keep their campaign reference.
func (r *Repository) Archive(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Model(&model.Campaign{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":      domain.CampaignArchived,
			"is_featured": false,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrCampaignNotFound
	}
	return nil
}

// AddToRaised atomically adjusts the raised_amount accumulator. Delta may
// be negative for refunds.
func (r *Repository) AddToRaised(ctx context.Context, id uuid.UUID, delta int64) error {
	return r.db.WithContext(ctx).Model(&model.Campaign{}).
		Where("id = ?", id).
		Update("raised_amount", gorm.Expr("raised_amount + ?", delta)).Error
}
