// Package stats exposes the admin dashboard counters.
package stats

import (
	"github.com/gofiber/fiber/v2"

	"github.com/briskfarm/backend/infra/repository"
	"github.com/briskfarm/backend/pkg/config"
	"github.com/briskfarm/backend/webapi/common"
	"github.com/briskfarm/backend/webapi/middleware"
)

// Routes registers the stats endpoint under the given router group.
func Routes(api fiber.Router, uow *repository.UoW, cfg *config.App) {
	api.Get("/stats",
		middleware.JwtProtected(cfg.Jwt), middleware.AdminRequired(),
		Get(uow),
	)
}

// Get returns entity counts for the admin dashboard.
func Get(uow *repository.UoW) fiber.Handler {
	return func(c *fiber.Ctx) error {
		counts, err := repository.CountStats(c.Context(), uow.DB())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Could not compute stats", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Stats computed", counts)
	}
}
