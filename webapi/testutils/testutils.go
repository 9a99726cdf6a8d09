// Package testutils provides the shared end-to-end test harness: a full
// application over an in-memory database plus request helpers.
package testutils

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/briskfarm/backend/infra"
	"github.com/briskfarm/backend/infra/model"
	"github.com/briskfarm/backend/infra/provider/dummypayment"
	userrepo "github.com/briskfarm/backend/infra/repository/user"
	"github.com/briskfarm/backend/pkg/app"
	"github.com/briskfarm/backend/pkg/config"
	"github.com/briskfarm/backend/pkg/domain"
	"github.com/briskfarm/backend/pkg/utils"
	"github.com/briskfarm/backend/webapi"
)

// TestWebhookSecret signs webhook payloads in tests.
const TestWebhookSecret = "test-webhook-secret"

var dbCounter atomic.Int64

// E2ETestSuite runs the full HTTP stack against an in-memory database.
type E2ETestSuite struct {
	suite.Suite

	DB  *gorm.DB
	App *app.App
	Cfg *config.App

	fiberApp *fiber.App
}

// SetupTest builds a fresh database and application for every test, so
// tests never observe each other's rows.
func (s *E2ETestSuite) SetupTest() {
	dsn := fmt.Sprintf("file:e2e%d?mode=memory&cache=shared", dbCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)
	s.Require().NoError(infra.Migrate(db))

	s.DB = db
	s.Cfg = NewTestConfig()
	s.App = app.NewWithDB(db, s.Cfg, slog.New(slog.DiscardHandler))
	s.fiberApp = webapi.SetupApp(s.App)
}

// NewTestConfig returns a fully populated configuration for tests.
func NewTestConfig() *config.App {
	return &config.App{
		Env:    "test",
		Server: &config.Server{Scheme: "http", Host: "localhost", Port: 8000},
		Log:    &config.Log{Format: "text"},
		DB:     &config.DB{},
		Jwt: &config.Jwt{
			Secret: "test-jwt-secret",
			Expiry: time.Hour,
		},
		Payment: &config.Payment{
			ProviderName:  "dummy",
			WebhookSecret: TestWebhookSecret,
		},
		Email:     &config.Email{From: "donations@test.local", MaxElapsed: time.Second},
		RateLimit: &config.RateLimit{MaxRequests: 10000, Window: time.Minute},
	}
}

// MakeRequest performs an in-process request against the app. An empty
// token leaves the request unauthenticated.
func (s *E2ETestSuite) MakeRequest(method, path, body, token string) *http.Response {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := s.fiberApp.Test(req, -1)
	s.Require().NoError(err)
	return resp
}

// PostWebhook delivers a webhook body with the given signature header.
func (s *E2ETestSuite) PostWebhook(body []byte, signature string) *http.Response {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/donations/webhook", bytes.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if signature != "" {
		req.Header.Set("X-Payment-Signature", signature)
	}
	resp, err := s.fiberApp.Test(req, -1)
	s.Require().NoError(err)
	return resp
}

// SignBody returns the valid signature for body under the test secret.
func (s *E2ETestSuite) SignBody(body []byte) string {
	return dummypayment.ComputeSignature(TestWebhookSecret, body)
}

// CreateUser inserts an account directly and returns it.
func (s *E2ETestSuite) CreateUser(email, password string, role domain.UserRole, superuser bool) *model.User {
	hashed, err := utils.HashPassword(password)
	s.Require().NoError(err)

	u := &model.User{
		Email:          email,
		HashedPassword: hashed,
		Role:           role,
		IsActive:       true,
		IsSuperuser:    superuser,
	}
	s.Require().NoError(userrepo.New(s.DB).Create(s.T().Context(), u))
	return u
}

// CreateAdmin inserts an admin account.
func (s *E2ETestSuite) CreateAdmin(email, password string) *model.User {
	return s.CreateUser(email, password, domain.RoleAdmin, false)
}

// CreateStaff inserts a non-admin account.
func (s *E2ETestSuite) CreateStaff(email, password string) *model.User {
	return s.CreateUser(email, password, domain.RoleStaff, false)
}

// Login authenticates via the HTTP endpoint and returns the bearer token.
func (s *E2ETestSuite) Login(email, password string) string {
	token, err := s.App.AuthService.Login(s.T().Context(), email, password)
	s.Require().NoError(err)
	return token
}
