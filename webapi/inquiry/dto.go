package inquiry

import (
	"time"

	"github.com/google/uuid"

	"github.com/briskfarm/backend/infra/model"
)

// CreateInquiryInput is the public contact-form body.
type CreateInquiryInput struct {
	FullName    string  `json:"full_name" validate:"required,max=150"`
	Email       *string `json:"email" validate:"omitempty,email,max=255"`
	Phone       *string `json:"phone" validate:"omitempty,max=50"`
	ProjectType *string `json:"project_type" validate:"omitempty,max=100"`
	BudgetRange *string `json:"budget_range" validate:"omitempty,max=100"`
	Location    *string `json:"location" validate:"omitempty,max=255"`
	Message     *string `json:"message"`
	Source      *string `json:"source" validate:"omitempty,max=100"`
	ServiceID   *string `json:"service_id" validate:"omitempty,uuid"`
	ProjectID   *string `json:"project_id" validate:"omitempty,uuid"`
}

// UpdateInquiryInput is a partial admin update. Nil fields are untouched.
type UpdateInquiryInput struct {
	FullName    *string `json:"full_name" validate:"omitempty,max=150"`
	Email       *string `json:"email" validate:"omitempty,email,max=255"`
	Phone       *string `json:"phone" validate:"omitempty,max=50"`
	ProjectType *string `json:"project_type" validate:"omitempty,max=100"`
	BudgetRange *string `json:"budget_range" validate:"omitempty,max=100"`
	Location    *string `json:"location" validate:"omitempty,max=255"`
	Message     *string `json:"message"`
	Status      *string `json:"status"`
}

// UpdateStatusInput carries a bare status change.
type UpdateStatusInput struct {
	Status string `json:"status" validate:"required"`
}

// InquiryRead is the inquiry projection.
type InquiryRead struct {
	ID          uuid.UUID  `json:"id"`
	FullName    string     `json:"full_name"`
	Email       *string    `json:"email,omitempty"`
	Phone       *string    `json:"phone,omitempty"`
	ProjectType *string    `json:"project_type,omitempty"`
	BudgetRange *string    `json:"budget_range,omitempty"`
	Location    *string    `json:"location,omitempty"`
	Message     *string    `json:"message,omitempty"`
	Status      string     `json:"status"`
	Source      *string    `json:"source,omitempty"`
	ServiceID   *uuid.UUID `json:"service_id,omitempty"`
	ProjectID   *uuid.UUID `json:"project_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// InquiryPage is the paginated admin listing envelope.
type InquiryPage struct {
	Total int64         `json:"total"`
	Items []InquiryRead `json:"items"`
}

func toRead(i *model.Inquiry) InquiryRead {
	return InquiryRead{
		ID:          i.ID,
		FullName:    i.FullName,
		Email:       i.Email,
		Phone:       i.Phone,
		ProjectType: i.ProjectType,
		BudgetRange: i.BudgetRange,
		Location:    i.Location,
		Message:     i.Message,
		Status:      i.Status.String(),
		Source:      i.Source,
		ServiceID:   i.ServiceID,
		ProjectID:   i.ProjectID,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}
