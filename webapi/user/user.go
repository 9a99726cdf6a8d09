// Package user exposes the admin staff-account endpoints.
package user

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/briskfarm/backend/pkg/config"
	"github.com/briskfarm/backend/pkg/domain"
	usersvc "github.com/briskfarm/backend/pkg/service/user"
	"github.com/briskfarm/backend/webapi/common"
	"github.com/briskfarm/backend/webapi/middleware"
)

// Routes registers user-management endpoints under the given router group.
// All of them require admin.
func Routes(api fiber.Router, svc *usersvc.Service, cfg *config.App) {
	api.Post("/auth/users",
		middleware.JwtProtected(cfg.Jwt), middleware.AdminRequired(),
		Create(svc),
	)
	api.Get("/users",
		middleware.JwtProtected(cfg.Jwt), middleware.AdminRequired(),
		List(svc),
	)
	api.Get("/users/:id",
		middleware.JwtProtected(cfg.Jwt), middleware.AdminRequired(),
		Get(svc),
	)
	api.Patch("/users/:id/role",
		middleware.JwtProtected(cfg.Jwt), middleware.AdminRequired(),
		UpdateRole(svc),
	)
}

// Create provisions a staff account.
func Create(svc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[NewUserInput](c)
		if input == nil {
			return err
		}

		role := domain.RoleStaff
		if input.Role != nil {
			role, err = domain.ParseUserRole(*input.Role)
			if err != nil {
				return common.ProblemDetailsJSON(c, "Invalid role", err, fiber.StatusBadRequest)
			}
		}

		u, err := svc.Create(c.Context(), usersvc.CreateParams{
			Email:    input.Email,
			Password: input.Password,
			FullName: input.FullName,
			Role:     role,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Could not create user", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "User created", ToRead(u))
	}
}

// List returns staff accounts, newest first.
func List(svc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users, err := svc.List(c.Context(), c.QueryInt("skip", 0), c.QueryInt("limit", 100))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Could not list users", err)
		}
		out := make([]UserRead, 0, len(users))
		for i := range users {
			out = append(out, ToRead(&users[i]))
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Users fetched", out)
	}
}

// Get returns one staff account.
func Get(svc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid user id", err, fiber.StatusBadRequest)
		}
		u, err := svc.Get(c.Context(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "User not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "User found", ToRead(u))
	}
}

// UpdateRole changes an account's role. The acting admin cannot change
// their own.
func UpdateRole(svc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid user id", err, fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[UpdateRoleInput](c)
		if input == nil {
			return err
		}

		role, err := domain.ParseUserRole(input.Role)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid role", err, fiber.StatusBadRequest)
		}

		claims, err := middleware.CurrentClaims(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err, fiber.StatusUnauthorized)
		}

		u, err := svc.UpdateRole(c.Context(), claims.UserID, id, role)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Could not update role", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Role updated", ToRead(u))
	}
}
