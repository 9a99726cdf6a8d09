package media

import (
	"time"

	"github.com/google/uuid"

	"github.com/briskfarm/backend/infra/model"
)

// CreateMediaInput is the admin request body for a new gallery entry.
type CreateMediaInput struct {
	ProjectID    *string `json:"project_id" validate:"omitempty,uuid"`
	Title        *string `json:"title" validate:"omitempty,max=255"`
	Description  *string `json:"description"`
	URL          string  `json:"url" validate:"required,max=500"`
	MediaType    *string `json:"media_type"`
	IsFeatured   bool    `json:"is_featured"`
	DisplayOrder int     `json:"display_order"`
}

// UpdateMediaInput is a partial admin update. Nil fields are untouched.
type UpdateMediaInput struct {
	Title        *string `json:"title" validate:"omitempty,max=255"`
	Description  *string `json:"description"`
	URL          *string `json:"url" validate:"omitempty,max=500"`
	MediaType    *string `json:"media_type"`
	IsFeatured   *bool   `json:"is_featured"`
	DisplayOrder *int    `json:"display_order"`
}

// MediaRead is the gallery projection.
type MediaRead struct {
	ID           uuid.UUID  `json:"id"`
	ProjectID    *uuid.UUID `json:"project_id,omitempty"`
	Title        *string    `json:"title,omitempty"`
	Description  *string    `json:"description,omitempty"`
	URL          string     `json:"url"`
	MediaType    string     `json:"media_type"`
	IsFeatured   bool       `json:"is_featured"`
	DisplayOrder int        `json:"display_order"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func toRead(m *model.Media) MediaRead {
	return MediaRead{
		ID:           m.ID,
		ProjectID:    m.ProjectID,
		Title:        m.Title,
		Description:  m.Description,
		URL:          m.URL,
		MediaType:    m.MediaType.String(),
		IsFeatured:   m.IsFeatured,
		DisplayOrder: m.DisplayOrder,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
