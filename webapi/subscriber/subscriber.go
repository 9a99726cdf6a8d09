// Package subscriber exposes newsletter signup and the admin subscriber
// listing.
package subscriber

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/briskfarm/backend/infra/repository"
	subscriberrepo "github.com/briskfarm/backend/infra/repository/subscriber"
	"github.com/briskfarm/backend/pkg/config"
	"github.com/briskfarm/backend/webapi/common"
	"github.com/briskfarm/backend/webapi/middleware"
)

// SubscribeInput is the public signup body.
type SubscribeInput struct {
	Email string `json:"email" validate:"required,email,max=255"`
}

// SubscriberRead is the subscriber projection.
type SubscriberRead struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Routes registers subscriber endpoints under the given router group.
func Routes(api fiber.Router, uow *repository.UoW, cfg *config.App) {
	api.Post("/subscribers", Subscribe(uow))
	api.Get("/subscribers",
		middleware.JwtProtected(cfg.Jwt), middleware.AdminRequired(),
		List(uow),
	)
}

// Subscribe records a newsletter signup. Signing up twice returns the
// existing row rather than an error, so the form can be resubmitted
// safely.
func Subscribe(uow *repository.UoW) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[SubscribeInput](c)
		if input == nil {
			return err
		}

		sub, created, err := subscriberrepo.New(uow.DB()).GetOrCreate(c.Context(), input.Email)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Could not subscribe", err)
		}

		status := fiber.StatusOK
		message := "Already subscribed"
		if created {
			status = fiber.StatusCreated
			message = "Subscribed"
		}
		return common.SuccessResponseJSON(c, status, message, SubscriberRead{
			ID:        sub.ID,
			Email:     sub.Email,
			CreatedAt: sub.CreatedAt,
		})
	}
}

// List returns subscribers, newest first.
func List(uow *repository.UoW) fiber.Handler {
	return func(c *fiber.Ctx) error {
		skip := c.QueryInt("skip", 0)
		limit := c.QueryInt("limit", 100)

		subs, err := subscriberrepo.New(uow.DB()).List(c.Context(), skip, limit)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Could not list subscribers", err)
		}

		out := make([]SubscriberRead, 0, len(subs))
		for _, s := range subs {
			out = append(out, SubscriberRead{ID: s.ID, Email: s.Email, CreatedAt: s.CreatedAt})
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Subscribers fetched", out)
	}
}
