package user

import (
	"time"

	"github.com/google/uuid"

	"github.com/briskfarm/backend/infra/model"
)

// NewUserInput is the admin request body for provisioning a staff account.
type NewUserInput struct {
	Email    string  `json:"email" validate:"required,email,max=255"`
	Password string  `json:"password" validate:"required,min=8,max=72"`
	FullName *string `json:"full_name" validate:"omitempty,max=150"`
	Role     *string `json:"role"`
}

// UpdateRoleInput carries a role change.
type UpdateRoleInput struct {
	Role string `json:"role" validate:"required"`
}

// UserRead is the account projection. The password hash never leaves the
// service layer.
type UserRead struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	FullName    *string   `json:"full_name,omitempty"`
	Role        string    `json:"role"`
	IsActive    bool      `json:"is_active"`
	IsSuperuser bool      `json:"is_superuser"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToRead converts a stored account to its response projection.
func ToRead(u *model.User) UserRead {
	return UserRead{
		ID:          u.ID,
		Email:       u.Email,
		FullName:    u.FullName,
		Role:        u.Role.String(),
		IsActive:    u.IsActive,
		IsSuperuser: u.IsSuperuser,
		CreatedAt:   u.CreatedAt,
	}
}
