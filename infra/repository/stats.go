package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/briskfarm/backend/infra/model"
)

// Stats holds the aggregate counts shown on the admin dashboard.
type Stats struct {
	Services     int64 `json:"services"`
	Projects     int64 `json:"projects"`
	Inquiries    int64 `json:"inquiries"`
	Testimonials int64 `json:"testimonials"`
	Subscribers  int64 `json:"subscribers"`
}

// CountStats computes the dashboard counts in one pass.
func CountStats(ctx context.Context, db *gorm.DB) (*Stats, error) {
	var s Stats
	counts := []struct {
		model any
		dst   *int64
	}{
		{&model.Service{}, &s.Services},
		{&model.Project{}, &s.Projects},
		{&model.Inquiry{}, &s.Inquiries},
		{&model.Testimonial{}, &s.Testimonials},
		{&model.Subscriber{}, &s.Subscribers},
	}
	for _, c := range counts {
		if err := db.WithContext(ctx).Model(c.model).Count(c.dst).Error; err != nil {
			return nil, err
		}
	}
	return &s, nil
}
