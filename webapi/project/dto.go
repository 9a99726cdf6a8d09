package project

import (
	"time"

	"github.com/google/uuid"

	"github.com/briskfarm/backend/infra/model"
)

// CreateProjectInput is the admin request body for a new project.
type CreateProjectInput struct {
	Name             string     `json:"name" validate:"required,max=255"`
	Slug             string     `json:"slug" validate:"required,max=255"`
	Description      *string    `json:"description"`
	ShortDescription *string    `json:"short_description" validate:"omitempty,max=500"`
	Location         *string    `json:"location" validate:"omitempty,max=255"`
	ClientName       *string    `json:"client_name" validate:"omitempty,max=255"`
	BudgetAmount     *float64   `json:"budget_amount"`
	Budget           *string    `json:"budget" validate:"omitempty,max=255"`
	StartDate        *time.Time `json:"start_date"`
	EndDate          *time.Time `json:"end_date"`
	Status           *string    `json:"status"`
	IsFeatured       bool       `json:"is_featured"`
	CoverImageURL    *string    `json:"cover_image_url" validate:"omitempty,max=500"`
	HeroImageURL     *string    `json:"hero_image_url" validate:"omitempty,max=500"`
	Thumbnail        *string    `json:"thumbnail" validate:"omitempty,max=500"`
	Type             *string    `json:"type" validate:"omitempty,max=255"`
	Size             *string    `json:"size" validate:"omitempty,max=255"`
	ServiceID        *string    `json:"service_id" validate:"omitempty,uuid"`
}

// UpdateProjectInput is a partial admin update. Nil fields are untouched.
type UpdateProjectInput struct {
	Name             *string    `json:"name" validate:"omitempty,max=255"`
	Slug             *string    `json:"slug" validate:"omitempty,max=255"`
	Description      *string    `json:"description"`
	ShortDescription *string    `json:"short_description" validate:"omitempty,max=500"`
	Location         *string    `json:"location" validate:"omitempty,max=255"`
	ClientName       *string    `json:"client_name" validate:"omitempty,max=255"`
	BudgetAmount     *float64   `json:"budget_amount"`
	Budget           *string    `json:"budget" validate:"omitempty,max=255"`
	StartDate        *time.Time `json:"start_date"`
	EndDate          *time.Time `json:"end_date"`
	Status           *string    `json:"status"`
	IsFeatured       *bool      `json:"is_featured"`
	CoverImageURL    *string    `json:"cover_image_url" validate:"omitempty,max=500"`
	HeroImageURL     *string    `json:"hero_image_url" validate:"omitempty,max=500"`
	Thumbnail        *string    `json:"thumbnail" validate:"omitempty,max=500"`
	Type             *string    `json:"type" validate:"omitempty,max=255"`
	Size             *string    `json:"size" validate:"omitempty,max=255"`
	ServiceID        *string    `json:"service_id" validate:"omitempty,uuid"`
}

// MediaRead is the gallery projection nested under a project.
type MediaRead struct {
	ID           uuid.UUID `json:"id"`
	Title        *string   `json:"title,omitempty"`
	Description  *string   `json:"description,omitempty"`
	URL          string    `json:"url"`
	MediaType    string    `json:"media_type"`
	IsFeatured   bool      `json:"is_featured"`
	DisplayOrder int       `json:"display_order"`
}

// ProjectRead is the project projection returned to all callers.
type ProjectRead struct {
	ID               uuid.UUID   `json:"id"`
	Name             string      `json:"name"`
	Slug             string      `json:"slug"`
	Description      *string     `json:"description,omitempty"`
	ShortDescription *string     `json:"short_description,omitempty"`
	Location         *string     `json:"location,omitempty"`
	ClientName       *string     `json:"client_name,omitempty"`
	BudgetAmount     *float64    `json:"budget_amount,omitempty"`
	Budget           *string     `json:"budget,omitempty"`
	StartDate        *time.Time  `json:"start_date,omitempty"`
	EndDate          *time.Time  `json:"end_date,omitempty"`
	Status           string      `json:"status"`
	IsFeatured       bool        `json:"is_featured"`
	CoverImageURL    *string     `json:"cover_image_url,omitempty"`
	HeroImageURL     *string     `json:"hero_image_url,omitempty"`
	Thumbnail        *string     `json:"thumbnail,omitempty"`
	Type             *string     `json:"type,omitempty"`
	Size             *string     `json:"size,omitempty"`
	ServiceID        *uuid.UUID  `json:"service_id,omitempty"`
	ServiceName      *string     `json:"service_name,omitempty"`
	MediaItems       []MediaRead `json:"media_items,omitempty"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// ProjectPage is the paginated listing envelope.
type ProjectPage struct {
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
	Items []ProjectRead `json:"items"`
}

func toRead(p *model.Project) ProjectRead {
	out := ProjectRead{
		ID:               p.ID,
		Name:             p.Name,
		Slug:             p.Slug,
		Description:      p.Description,
		ShortDescription: p.ShortDescription,
		Location:         p.Location,
		ClientName:       p.ClientName,
		BudgetAmount:     p.BudgetAmount,
		Budget:           p.Budget,
		StartDate:        p.StartDate,
		EndDate:          p.EndDate,
		Status:           p.Status.String(),
		IsFeatured:       p.IsFeatured,
		CoverImageURL:    p.CoverImageURL,
		HeroImageURL:     p.HeroImageURL,
		Thumbnail:        p.Thumbnail,
		Type:             p.Type,
		Size:             p.Size,
		ServiceID:        p.ServiceID,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
	if p.Service != nil {
		out.ServiceName = &p.Service.Name
	}
	for i := range p.MediaItems {
		m := &p.MediaItems[i]
		out.MediaItems = append(out.MediaItems, MediaRead{
			ID:           m.ID,
			Title:        m.Title,
			Description:  m.Description,
			URL:          m.URL,
			MediaType:    m.MediaType.String(),
			IsFeatured:   m.IsFeatured,
			DisplayOrder: m.DisplayOrder,
		})
	}
	return out
}
