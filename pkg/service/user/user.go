// Package user manages back-office staff accounts.
package user

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/briskfarm/backend/infra/model"
	"github.com/briskfarm/backend/infra/repository"
	userrepo "github.com/briskfarm/backend/infra/repository/user"
	"github.com/briskfarm/backend/pkg/domain"
	"github.com/briskfarm/backend/pkg/utils"
)

// ErrCannotDemoteSelf blocks an admin from removing their own admin role.
var ErrCannotDemoteSelf = errors.New("cannot change your own role")

// CreateParams carries validated input for a new staff account.
type CreateParams struct {
	Email    string
	Password string
	FullName *string
	Role     domain.UserRole
}

// UpdateParams carries a partial account update. Nil fields are left
// untouched.
type UpdateParams struct {
	FullName *string
	Password *string
	IsActive *bool
}

type Service struct {
	uow    *repository.UoW
	logger *slog.Logger
}

func New(uow *repository.UoW, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// Create provisions a staff account with a bcrypt-hashed password.
func (s *Service) Create(ctx context.Context, params CreateParams) (*model.User, error) {
	if !utils.IsEmail(params.Email) {
		return nil, domain.ErrValidation
	}

	hashed, err := utils.HashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	role := params.Role
	if role == "" {
		role = domain.RoleStaff
	}

	u := &model.User{
		Email:          params.Email,
		FullName:       params.FullName,
		HashedPassword: hashed,
		Role:           role,
		IsActive:       true,
	}
	if err := userrepo.New(s.uow.DB()).Create(ctx, u); err != nil {
		return nil, err
	}

	s.logger.Info("user created", "user_id", u.ID, "email", u.Email, "role", u.Role)
	return u, nil
}

// Get returns a user by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return userrepo.New(s.uow.DB()).Get(ctx, id)
}

// List returns users, newest first.
func (s *Service) List(ctx context.Context, skip, limit int) ([]model.User, error) {
	return userrepo.New(s.uow.DB()).List(ctx, skip, limit)
}

// Update applies a partial account update.
func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*model.User, error) {
	updates := map[string]any{}
	if params.FullName != nil {
		updates["full_name"] = *params.FullName
	}
	if params.IsActive != nil {
		updates["is_active"] = *params.IsActive
	}
	if params.Password != nil {
		hashed, err := utils.HashPassword(*params.Password)
		if err != nil {
			return nil, err
		}
		updates["hashed_password"] = hashed
	}
	if len(updates) == 0 {
		return s.Get(ctx, id)
	}
	return userrepo.New(s.uow.DB()).Update(ctx, id, updates)
}

// UpdateRole changes a user's role. Admins cannot change their own role,
// so the system always keeps at least the acting admin.
func (s *Service) UpdateRole(
	ctx context.Context,
	actorID, id uuid.UUID,
	role domain.UserRole,
) (*model.User, error) {
	if actorID == id {
		return nil, ErrCannotDemoteSelf
	}
	u, err := userrepo.New(s.uow.DB()).Update(ctx, id, map[string]any{"role": role})
	if err != nil {
		return nil, err
	}
	s.logger.Info("user role updated", "user_id", id, "role", role, "actor_id", actorID)
	return u, nil
}
