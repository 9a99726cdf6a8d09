package testimonial

import (
	"time"

	"github.com/google/uuid"

	"github.com/briskfarm/backend/infra/model"
)

// CreateTestimonialInput is the admin request body for a new testimonial.
type CreateTestimonialInput struct {
	ClientName   string  `json:"client_name" validate:"required,max=150"`
	ClientRole   *string `json:"client_role" validate:"omitempty,max=150"`
	Company      *string `json:"company" validate:"omitempty,max=200"`
	Message      string  `json:"message" validate:"required"`
	Rating       *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	IsFeatured   bool    `json:"is_featured"`
	IsActive     *bool   `json:"is_active"`
	DisplayOrder int     `json:"display_order"`
}

// UpdateTestimonialInput is a partial admin update. Nil fields are
// untouched.
type UpdateTestimonialInput struct {
	ClientName   *string `json:"client_name" validate:"omitempty,max=150"`
	ClientRole   *string `json:"client_role" validate:"omitempty,max=150"`
	Company      *string `json:"company" validate:"omitempty,max=200"`
	Message      *string `json:"message"`
	Rating       *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	IsFeatured   *bool   `json:"is_featured"`
	IsActive     *bool   `json:"is_active"`
	DisplayOrder *int    `json:"display_order"`
}

// TestimonialRead is the testimonial projection.
type TestimonialRead struct {
	ID           uuid.UUID `json:"id"`
	ClientName   string    `json:"client_name"`
	ClientRole   *string   `json:"client_role,omitempty"`
	Company      *string   `json:"company,omitempty"`
	Message      string    `json:"message"`
	Rating       *int      `json:"rating,omitempty"`
	IsFeatured   bool      `json:"is_featured"`
	IsActive     bool      `json:"is_active"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toRead(t *model.Testimonial) TestimonialRead {
	return TestimonialRead{
		ID:           t.ID,
		ClientName:   t.ClientName,
		ClientRole:   t.ClientRole,
		Company:      t.Company,
		Message:      t.Message,
		Rating:       t.Rating,
		IsFeatured:   t.IsFeatured,
		IsActive:     t.IsActive,
		DisplayOrder: t.DisplayOrder,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}
