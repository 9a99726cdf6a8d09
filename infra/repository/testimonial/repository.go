// Package testimonial persists client testimonials.
package testimonial

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/briskfarm/backend/infra/model"
	"github.com/briskfarm/backend/pkg/domain"
)

// Filter narrows testimonial listings. Nil fields are ignored.
type Filter struct {
	IsActive   *bool
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

func (r *Repository) Create(ctx context.Context, t *model.Testimonial) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *Repository) Get(ctx context.Context, id uuid.UUID) (*model.Testimonial, error) {
	var t model.Testimonial
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *Repository) List(ctx context.Context, f Filter) ([]model.Testimonial, error) {
	q := r.db.WithContext(ctx).Model(&model.Testimonial{})
	if f.IsActive != nil {
		q = q.Where("is_active = ?", *f.IsActive)
	}
	if f.IsFeatured != nil {
		q = q.Where("is_featured = ?", *f.IsFeatured)
	}
	limit := f.Limit
	if limit <= 0 {
		limit = 100
	}
	var out []model.Testimonial
	err := q.Order("display_order ASC, created_at DESC").Offset(f.Skip).Limit(limit).Find(&out).Error
	return out, err
}

func (r *Repository) Update(ctx context.Context, id uuid.UUID, updates map[string]any) (*model.Testimonial, error) {
	res := r.db.WithContext(ctx).Model(&model.Testimonial{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	return r.Get(ctx, id)
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Testimonial{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
