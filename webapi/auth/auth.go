// Package auth exposes staff login and the current-user endpoint.
package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/briskfarm/backend/pkg/config"
	authsvc "github.com/briskfarm/backend/pkg/service/auth"
	usersvc "github.com/briskfarm/backend/pkg/service/user"
	userweb "github.com/briskfarm/backend/webapi/user"
	"github.com/briskfarm/backend/webapi/common"
	"github.com/briskfarm/backend/webapi/middleware"
)

// Routes registers auth endpoints under the given router group.
func Routes(api fiber.Router, authSvc *authsvc.Service, userSvc *usersvc.Service, cfg *config.App) {
	api.Post("/auth/login", Login(authSvc))
	api.Get("/auth/me", middleware.JwtProtected(cfg.Jwt), Me(userSvc))
}

// Login authenticates a staff user and returns a bearer token.
func Login(svc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoginInput](c)
		if input == nil {
			return err
		}

		token, err := svc.Login(c.Context(), input.Email, input.Password)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid email or password", err, fiber.StatusUnauthorized)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Login successful", TokenOutput{
			AccessToken: token,
			TokenType:   "bearer",
		})
	}
}

// Me returns the account behind the presented token.
func Me(svc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := middleware.CurrentClaims(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err, fiber.StatusUnauthorized)
		}
		u, err := svc.Get(c.Context(), claims.UserID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err, fiber.StatusUnauthorized)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Current user", userweb.ToRead(u))
	}
}
