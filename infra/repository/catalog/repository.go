// Package catalog persists the company service offerings.
package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/briskfarm/backend/infra/model"
	"github.com/briskfarm/backend/pkg/domain"
)

type Repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, s *model.Service) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Service{}).
		Where("slug = ? OR name = ?", s.Slug, s.Name).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrAlreadyExists
	}
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *Repository) Get(ctx context.Context, id uuid.UUID) (*model.Service, error) {
	var s model.Service
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) GetBySlug(ctx context.Context, slug string) (*model.Service, error) {
	var s model.Service
	err := r.db.WithContext(ctx).First(&s, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// List returns offerings ordered by display_order then name. When
// activeOnly is set, inactive offerings are hidden (the public view).
func (r *Repository) List(ctx context.Context, activeOnly bool, skip, limit int) ([]model.Service, error) {
	q := r.db.WithContext(ctx).Model(&model.Service{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	if limit <= 0 {
		limit = 100
	}
	var out []model.Service
	err := q.Order("display_order ASC, name ASC").Offset(skip).Limit(limit).Find(&out).Error
	return out, err
}

func (r *Repository) Update(ctx context.Context, id uuid.UUID, updates map[string]any) (*model.Service, error) {
	res := r.db.WithContext(ctx).Model(&model.Service{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	return r.Get(ctx, id)
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Service{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
