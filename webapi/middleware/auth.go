// Package middleware provides the JWT guard and role checks applied to
// admin routes.
package middleware

import (
	"strings"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/briskfarm/backend/pkg/config"
	"github.com/briskfarm/backend/pkg/domain"
	authsvc "github.com/briskfarm/backend/pkg/service/auth"
	"github.com/briskfarm/backend/webapi/common"
)

// JwtProtected verifies the bearer token and leaves the parsed token in
// c.Locals("user").
func JwtProtected(cfg *config.Jwt) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   jwtware.SigningKey{Key: []byte(cfg.Secret)},
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	if strings.Contains(err.Error(), "missing or malformed") {
		return common.ProblemDetailsJSON(c, "Missing or malformed token", err, fiber.StatusBadRequest)
	}
	return common.ProblemDetailsJSON(c, "Invalid or expired token", err, fiber.StatusUnauthorized)
}

// AdminRequired rejects callers whose token lacks the administrator role.
// It must run after JwtProtected. The check happens before any resource
// lookup, so a staff caller probing a random id learns nothing about its
// existence.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := CurrentClaims(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err, fiber.StatusUnauthorized)
		}
		if !claims.IsAdmin() {
			return common.ProblemDetailsJSON(c, "Admin access required", domain.ErrForbidden)
		}
		return c.Next()
	}
}

// CurrentClaims extracts the authenticated identity placed by JwtProtected.
func CurrentClaims(c *fiber.Ctx) (authsvc.Claims, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return authsvc.Claims{}, domain.ErrUnauthorized
	}
	return authsvc.ClaimsFromToken(token)
}
