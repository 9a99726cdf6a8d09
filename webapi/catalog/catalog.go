// Package catalog exposes the company services offered on the public
// site, with admin CRUD behind the JWT guard.
package catalog

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/briskfarm/backend/infra/model"
	"github.com/briskfarm/backend/infra/repository"
	catalogrepo "github.com/briskfarm/backend/infra/repository/catalog"
	"github.com/briskfarm/backend/pkg/config"
	"github.com/briskfarm/backend/webapi/common"
	"github.com/briskfarm/backend/webapi/middleware"
)

const maxPageSize = 200

// Routes registers service-catalog endpoints under the given router group.
func Routes(api fiber.Router, uow *repository.UoW, cfg *config.App) {
	api.Get("/services", List(uow))
	api.Get("/services/:slug", GetBySlug(uow))

	api.Post("/services", middleware.JwtProtected(cfg.Jwt), middleware.AdminRequired(), Create(uow))
	api.Put("/services/:id", middleware.JwtProtected(cfg.Jwt), middleware.AdminRequired(), Update(uow))
	api.Delete("/services/:id", middleware.JwtProtected(cfg.Jwt), middleware.AdminRequired(), Delete(uow))
}

// List returns services ordered for display. Inactive services are hidden
// unless active_only=false.
func List(uow *repository.UoW) fiber.Handler {
	return func(c *fiber.Ctx) error {
		activeOnly := c.Query("active_only", "true") != "false"
		skip := c.QueryInt("skip", 0)
		limit := c.QueryInt("limit", 100)
		if limit <= 0 || limit > maxPageSize {
			limit = maxPageSize
		}

		services, err := catalogrepo.New(uow.DB()).List(c.Context(), activeOnly, skip, limit)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Could not list services", err)
		}

		out := make([]ServiceRead, 0, len(services))
		for i := range services {
			out = append(out, toRead(&services[i]))
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Services fetched", out)
	}
}

// GetBySlug returns one service by slug.
func GetBySlug(uow *repository.UoW) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := catalogrepo.New(uow.DB()).GetBySlug(c.Context(), c.Params("slug"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Service not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Service found", toRead(s))
	}
}

// Create inserts a service. Duplicate name or slug is a bad request.
func Create(uow *repository.UoW) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateServiceInput](c)
		if input == nil {
			return err
		}

		isActive := true
		if input.IsActive != nil {
			isActive = *input.IsActive
		}

		s := &model.Service{
			Name:             input.Name,
			Slug:             input.Slug,
			ShortDescription: input.ShortDescription,
			Description:      input.Description,
			Tagline:          input.Tagline,
			Category:         input.Category,
			HeroImageURL:     input.HeroImageURL,
			Icon:             input.Icon,
			Highlight1:       input.Highlight1,
			Highlight2:       input.Highlight2,
			Highlight3:       input.Highlight3,
			IsActive:         isActive,
			DisplayOrder:     input.DisplayOrder,
		}
		if err := catalogrepo.New(uow.DB()).Create(c.Context(), s); err != nil {
			return common.ProblemDetailsJSON(c, "Could not create service", err, fiber.StatusBadRequest)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Service created", toRead(s))
	}
}

// Update applies a partial service update.
func Update(uow *repository.UoW) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid service id", err, fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[UpdateServiceInput](c)
		if input == nil {
			return err
		}

		updates := map[string]any{}
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Slug != nil {
			updates["slug"] = *input.Slug
		}
		if input.ShortDescription != nil {
			updates["short_description"] = *input.ShortDescription
		}
		if input.Description != nil {
			updates["description"] = *input.Description
		}
		if input.Tagline != nil {
			updates["tagline"] = *input.Tagline
		}
		if input.Category != nil {
			updates["category"] = *input.Category
		}
		if input.HeroImageURL != nil {
			updates["hero_image_url"] = *input.HeroImageURL
		}
		if input.Icon != nil {
			updates["icon"] = *input.Icon
		}
		if input.Highlight1 != nil {
			updates["highlight1"] = *input.Highlight1
		}
		if input.Highlight2 != nil {
			updates["highlight2"] = *input.Highlight2
		}
		if input.Highlight3 != nil {
			updates["highlight3"] = *input.Highlight3
		}
		if input.IsActive != nil {
			updates["is_active"] = *input.IsActive
		}
		if input.DisplayOrder != nil {
			updates["display_order"] = *input.DisplayOrder
		}

		s, err := catalogrepo.New(uow.DB()).Update(c.Context(), id, updates)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Could not update service", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Service updated", toRead(s))
	}
}

// Delete removes a service.
func Delete(uow *repository.UoW) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid service id", err, fiber.StatusBadRequest)
		}
		if err := catalogrepo.New(uow.DB()).Delete(c.Context(), id); err != nil {
			return common.ProblemDetailsJSON(c, "Could not delete service", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
