// Package webapi assembles the HTTP surface. Handlers are organized into
// sub-packages per domain:
// - donation: donation intents, the provider webhook and admin listings
// - campaign: fundraising campaigns
// - catalog: company services
// - project, media, testimonial: public portfolio content
// - subscriber, inquiry: lead capture
// - auth, user, stats: back-office endpoints
package webapi

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/briskfarm/backend/pkg/app"
	authweb "github.com/briskfarm/backend/webapi/auth"
	campaignweb "github.com/briskfarm/backend/webapi/campaign"
	catalogweb "github.com/briskfarm/backend/webapi/catalog"
	"github.com/briskfarm/backend/webapi/common"
	donationweb "github.com/briskfarm/backend/webapi/donation"
	inquiryweb "github.com/briskfarm/backend/webapi/inquiry"
	mediaweb "github.com/briskfarm/backend/webapi/media"
	projectweb "github.com/briskfarm/backend/webapi/project"
	statsweb "github.com/briskfarm/backend/webapi/stats"
	subscriberweb "github.com/briskfarm/backend/webapi/subscriber"
	testimonialweb "github.com/briskfarm/backend/webapi/testimonial"
	userweb "github.com/briskfarm/backend/webapi/user"
)

// SetupApp initializes Fiber with the shared middleware stack and mounts
// every route group under /api/v1.
func SetupApp(a *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				status = fiberErr.Code
			}
			return common.ProblemDetailsJSON(c, "Internal Server Error", err, status)
		},
	})

	// Rate limiting keyed on the originating client IP. Behind a proxy the
	// first X-Forwarded-For entry is the client.
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        a.Config.RateLimit.MaxRequests,
		Expiration: a.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(
				c,
				"Too Many Requests",
				errors.New("rate limit exceeded"),
				fiber.StatusTooManyRequests,
			)
		},
	}))
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())

	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Briskfarm API is running")
	})
	fiberApp.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := fiberApp.Group("/api/v1")

	donationweb.Routes(api, a.DonationService, a.Config)
	campaignweb.Routes(api, a.Deps.Uow, a.Config)
	catalogweb.Routes(api, a.Deps.Uow, a.Config)
	projectweb.Routes(api, a.Deps.Uow, a.Config)
	mediaweb.Routes(api, a.Deps.Uow, a.Config)
	testimonialweb.Routes(api, a.Deps.Uow, a.Config)
	subscriberweb.Routes(api, a.Deps.Uow, a.Config)
	inquiryweb.Routes(api, a.Deps.Uow, a.Config)
	statsweb.Routes(api, a.Deps.Uow, a.Config)
	authweb.Routes(api, a.AuthService, a.UserService, a.Config)
	userweb.Routes(api, a.UserService, a.Config)

	return fiberApp
}
