// Package media persists project gallery entries.
package media

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

func (r *Repository) Create(ctx context.Context, m *model.Media) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *Repository) Get(ctx context.Context, id uuid.UUID) (*model.Media, error) {
	var m model.Media
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListByProject returns a project's gallery ordered for display.
func (r *Repository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.Media, error) {
	var out []model.Media
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("display_order ASC, created_at ASC").
		Find(&out).Error
	return out, err
}

func (r *Repository) Update(ctx context.Context, id uuid.UUID, updates map[string]any) (*model.Media, error) {
	res := r.db.WithContext(ctx).Model(&model.Media{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	return r.Get(ctx, id)
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Media{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
