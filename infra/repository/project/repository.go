// Package project persists construction projects.
package project

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/briskfarm/backend/infra/model"
	"github.com/briskfarm/backend/pkg/domain"
)

// Sort orders for project listings.
const (
	SortNewest   = "newest"
	SortOldest   = "oldest"
	SortFeatured = "featured"
)

// Filter narrows project listings. Nil fields are ignored.
type Filter struct {
	Status      *domain.ProjectStatus
	ServiceSlug *string
	Featured    *bool
	Sort        string
	Page        int
	Limit       int
}

type Repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, p *model.Project) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Project{}).
		Where("slug = ?", p.Slug).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrAlreadyExists
	}
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *Repository) Get(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	var p model.Project
	err := r.db.WithContext(ctx).Preload("Service").First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) GetBySlug(ctx context.Context, slug string) (*model.Project, error) {
	var p model.Project
	err := r.db.WithContext(ctx).
		Preload("Service").Preload("MediaItems").
		First(&p, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns one page of projects plus the unpaged total.
func (r *Repository) List(ctx context.Context, f Filter) ([]model.Project, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Project{})

	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.Featured != nil {
		q = q.Where("is_featured = ?", *f.Featured)
	}
	if f.ServiceSlug != nil {
		q = q.Joins("JOIN services ON services.id = projects.service_id").
			Where("services.slug = ?", *f.ServiceSlug)
	}

	switch f.Sort {
	case SortOldest:
		q = q.Order("projects.created_at ASC")
	case SortFeatured:
		q = q.Order("projects.is_featured DESC, projects.created_at DESC")
	default:
		q = q.Order("projects.created_at DESC")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := f.Page
	if page < 1 {
		page = 1
	}
	limit := f.Limit
	if limit <= 0 {
		limit = 10
	}

	var out []model.Project
	err := q.Offset((page - 1) * limit).Limit(limit).Find(&out).Error
	return out, total, err
}

func (r *Repository) Update(ctx context.Context, id uuid.UUID, updates map[string]any) (*model.Project, error) {
	res := r.db.WithContext(ctx).Model(&model.Project{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	return r.Get(ctx, id)
}

// Delete removes the project and, via FK cascade, its media items.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Project{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
