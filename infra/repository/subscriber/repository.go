// Package subscriber persists newsletter signups.
package subscriber

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/briskfarm/backend/infra/model"
)

type Repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetOrCreate subscribes an email address. Signing up twice is not an
// error; the existing row is returned with created=false.
func (r *Repository) GetOrCreate(ctx context.Context, email string) (*model.Subscriber, bool, error) {
	var existing model.Subscriber
	err := r.db.WithContext(ctx).First(&existing, "email = ?", email).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	s := model.Subscriber{Email: email}
	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		return nil, false, err
	}
	return &s, true, nil
}

// List returns subscribers, newest first.
func (r *Repository) List(ctx context.Context, skip, limit int) ([]model.Subscriber, error) {
	if limit <= 0 {
		limit = 100
	}
	var out []model.Subscriber
	err := r.db.WithContext(ctx).
		Order("created_at DESC").Offset(skip).Limit(limit).Find(&out).Error
	return out, err
}
