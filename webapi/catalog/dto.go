package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/briskfarm/backend/infra/model"
)

// CreateServiceInput is the admin request body for a new company service.
type CreateServiceInput struct {
	Name             string  `json:"name" validate:"required,max=200"`
	Slug             string  `json:"slug" validate:"required,max=200"`
	ShortDescription *string `json:"short_description" validate:"omitempty,max=500"`
	Description      *string `json:"description"`
	Tagline          *string `json:"tagline" validate:"omitempty,max=255"`
	Category         *string `json:"category" validate:"omitempty,max=100"`
	HeroImageURL     *string `json:"hero_image_url" validate:"omitempty,max=500"`
	Icon             *string `json:"icon" validate:"omitempty,max=100"`
	Highlight1       *string `json:"highlight_1" validate:"omitempty,max=255"`
	Highlight2       *string `json:"highlight_2" validate:"omitempty,max=255"`
	Highlight3       *string `json:"highlight_3" validate:"omitempty,max=255"`
	IsActive         *bool   `json:"is_active"`
	DisplayOrder     int     `json:"display_order"`
}

// UpdateServiceInput is a partial admin update. Nil fields are untouched.
type UpdateServiceInput struct {
	Name             *string `json:"name" validate:"omitempty,max=200"`
	Slug             *string `json:"slug" validate:"omitempty,max=200"`
	ShortDescription *string `json:"short_description" validate:"omitempty,max=500"`
	Description      *string `json:"description"`
	Tagline          *string `json:"tagline" validate:"omitempty,max=255"`
	Category         *string `json:"category" validate:"omitempty,max=100"`
	HeroImageURL     *string `json:"hero_image_url" validate:"omitempty,max=500"`
	Icon             *string `json:"icon" validate:"omitempty,max=100"`
	Highlight1       *string `json:"highlight_1" validate:"omitempty,max=255"`
	Highlight2       *string `json:"highlight_2" validate:"omitempty,max=255"`
	Highlight3       *string `json:"highlight_3" validate:"omitempty,max=255"`
	IsActive         *bool   `json:"is_active"`
	DisplayOrder     *int    `json:"display_order"`
}

// ServiceRead is the service projection returned to all callers.
type ServiceRead struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Slug             string    `json:"slug"`
	ShortDescription *string   `json:"short_description,omitempty"`
	Description      *string   `json:"description,omitempty"`
	Tagline          *string   `json:"tagline,omitempty"`
	Category         *string   `json:"category,omitempty"`
	HeroImageURL     *string   `json:"hero_image_url,omitempty"`
	Icon             *string   `json:"icon,omitempty"`
	Highlight1       *string   `json:"highlight_1,omitempty"`
	Highlight2       *string   `json:"highlight_2,omitempty"`
	Highlight3       *string   `json:"highlight_3,omitempty"`
	IsActive         bool      `json:"is_active"`
	DisplayOrder     int       `json:"display_order"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func toRead(s *model.Service) ServiceRead {
	return ServiceRead{
		ID:               s.ID,
		Name:             s.Name,
		Slug:             s.Slug,
		ShortDescription: s.ShortDescription,
		Description:      s.Description,
		Tagline:          s.Tagline,
		Category:         s.Category,
		HeroImageURL:     s.HeroImageURL,
		Icon:             s.Icon,
		Highlight1:       s.Highlight1,
		Highlight2:       s.Highlight2,
		Highlight3:       s.Highlight3,
		IsActive:         s.IsActive,
		DisplayOrder:     s.DisplayOrder,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}
