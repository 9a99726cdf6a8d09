// Package inquiry persists leads from the public contact form.
package inquiry

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/briskfarm/backend/infra/model"
	"github.com/briskfarm/backend/pkg/domain"
)

// Filter narrows inquiry listings. Nil fields are ignored.
type Filter struct {
	Status *domain.InquiryStatus
	Skip   int
	Limit  int
}

type Repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, i *model.Inquiry) error {
	return r.db.WithContext(ctx).Create(i).Error
}

func (r *Repository) Get(ctx context.Context, id uuid.UUID) (*model.Inquiry, error) {
	var i model.Inquiry
	err := r.db.WithContext(ctx).First(&i, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// List returns one page of inquiries plus the unpaged total, newest first.
func (r *Repository) List(ctx context.Context, f Filter) ([]model.Inquiry, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Inquiry{})
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}

	var out []model.Inquiry
	err := q.Order("created_at DESC").Offset(f.Skip).Limit(limit).Find(&out).Error
	return out, total, err
}

func (r *Repository) Update(ctx context.Context, id uuid.UUID, updates map[string]any) (*model.Inquiry, error) {
	res := r.db.WithContext(ctx).Model(&model.Inquiry{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	return r.Get(ctx, id)
}
