// Package auth authenticates staff users and issues JWT access tokens.
package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"log/slog"

	"github.com/briskfarm/backend/infra/repository"
	userrepo "github.com/briskfarm/backend/infra/repository/user"
	"github.com/briskfarm/backend/pkg/config"
	"github.com/briskfarm/backend/pkg/domain"
	"github.com/briskfarm/backend/pkg/utils"
)

// dummyHash is a valid bcrypt hash of an unguessable string. Login always
// runs one bcrypt comparison, so a missing account costs the same time as
// a wrong password.
const dummyHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

// Claims is the decoded JWT payload carried on authenticated requests.
type Claims struct {
	UserID      uuid.UUID
	Email       string
	Role        domain.UserRole
	IsSuperuser bool
}

// IsAdmin reports whether the claims grant administrative access.
func (c Claims) IsAdmin() bool {
	return c.Role == domain.RoleAdmin || c.IsSuperuser
}

type Service struct {
	uow    *repository.UoW
	cfg    *config.Jwt
	logger *slog.Logger
}

func New(uow *repository.UoW, cfg *config.Jwt, logger *slog.Logger) *Service {
	return &Service{uow: uow, cfg: cfg, logger: logger}
}

// Login verifies credentials and returns a signed access token. Inactive
// accounts are rejected the same way as bad credentials.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	log := s.logger.With("context", "Login", "email", email)

	u, err := userrepo.New(s.uow.DB()).GetByEmail(ctx, email)
	if err != nil {
		_ = utils.CheckPasswordHash(password, dummyHash)
		log.Warn("login failed, unknown email")
		return "", domain.ErrUnauthorized
	}
	if !utils.CheckPasswordHash(password, u.HashedPassword) {
		log.Warn("login failed, bad password", "user_id", u.ID)
		return "", domain.ErrUnauthorized
	}
	if !u.IsActive {
		log.Warn("login failed, inactive account", "user_id", u.ID)
		return "", domain.ErrUnauthorized
	}

	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["user_id"] = u.ID.String()
	claims["email"] = u.Email
	claims["role"] = u.Role.String()
	claims["is_superuser"] = u.IsSuperuser
	claims["exp"] = time.Now().Add(s.cfg.Expiry).Unix()

	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		log.Error("token signing failed", "error", err)
		return "", err
	}

	log.Info("login successful", "user_id", u.ID, "role", u.Role)
	return signed, nil
}

// ClaimsFromToken extracts the authenticated identity from a verified
// token. Signature and expiry checks happen in the middleware; this only
// decodes.
func ClaimsFromToken(token *jwt.Token) (Claims, error) {
	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, domain.ErrUnauthorized
	}

	rawID, ok := mapClaims["user_id"].(string)
	if !ok {
		return Claims{}, domain.ErrUnauthorized
	}
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return Claims{}, domain.ErrUnauthorized
	}

	out := Claims{UserID: userID}
	if email, ok := mapClaims["email"].(string); ok {
		out.Email = email
	}
	if role, ok := mapClaims["role"].(string); ok {
		out.Role = domain.UserRole(role)
	}
	if super, ok := mapClaims["is_superuser"].(bool); ok {
		out.IsSuperuser = super
	}
	return out, nil
}
