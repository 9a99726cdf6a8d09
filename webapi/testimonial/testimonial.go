// Package testimonial exposes client testimonials.
package testimonial

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/briskfarm/backend/infra/model"
	"github.com/briskfarm/backend/infra/repository"
	testimonialrepo "github.com/briskfarm/backend/infra/repository/testimonial"
	"github.com/briskfarm/backend/pkg/config"
	"github.com/briskfarm/backend/webapi/common"
	"github.com/briskfarm/backend/webapi/middleware"
)

const maxPageSize = 200

// Routes registers testimonial endpoints under the given router group.
func Routes(api fiber.Router, uow *repository.UoW, cfg *config.App) {
	api.Get("/testimonials", List(uow))

	api.Post("/testimonials", middleware.JwtProtected(cfg.Jwt), middleware.AdminRequired(), Create(uow))
	api.Put("/testimonials/:id", middleware.JwtProtected(cfg.Jwt), middleware.AdminRequired(), Update(uow))
	api.Delete("/testimonials/:id", middleware.JwtProtected(cfg.Jwt), middleware.AdminRequired(), Delete(uow))
}

// List returns testimonials in display order. Inactive ones are hidden
// unless active=false is passed.
func List(uow *repository.UoW) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var f testimonialrepo.Filter

		if raw := c.Query("active", "true"); raw != "" {
			active := raw != "false"
			f.IsActive = &active
		}
		if raw := c.Query("featured"); raw != "" {
			featured := raw == "true" || raw == "1"
			f.IsFeatured = &featured
		}
		f.Skip = c.QueryInt("skip", 0)
		f.Limit = c.QueryInt("limit", 50)
		if f.Limit <= 0 || f.Limit > maxPageSize {
			f.Limit = maxPageSize
		}

		items, err := testimonialrepo.New(uow.DB()).List(c.Context(), f)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Could not list testimonials", err)
		}

		out := make([]TestimonialRead, 0, len(items))
		for i := range items {
			out = append(out, toRead(&items[i]))
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Testimonials fetched", out)
	}
}

// Create inserts a testimonial.
func Create(uow *repository.UoW) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateTestimonialInput](c)
		if input == nil {
			return err
		}

		isActive := true
		if input.IsActive != nil {
			isActive = *input.IsActive
		}

		t := &model.Testimonial{
			ClientName:   input.ClientName,
			ClientRole:   input.ClientRole,
			Company:      input.Company,
			Message:      input.Message,
			Rating:       input.Rating,
			IsFeatured:   input.IsFeatured,
			IsActive:     isActive,
			DisplayOrder: input.DisplayOrder,
		}
		if err := testimonialrepo.New(uow.DB()).Create(c.Context(), t); err != nil {
			return common.ProblemDetailsJSON(c, "Could not create testimonial", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Testimonial created", toRead(t))
	}
}

// Update applies a partial testimonial update.
func Update(uow *repository.UoW) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid testimonial id", err, fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[UpdateTestimonialInput](c)
		if input == nil {
			return err
		}

		updates := map[string]any{}
		if input.ClientName != nil {
			updates["client_name"] = *input.ClientName
		}
		if input.ClientRole != nil {
			updates["client_role"] = *input.ClientRole
		}
		if input.Company != nil {
			updates["company"] = *input.Company
		}
		if input.Message != nil {
			updates["message"] = *input.Message
		}
		if input.Rating != nil {
			updates["rating"] = *input.Rating
		}
		if input.IsFeatured != nil {
			updates["is_featured"] = *input.IsFeatured
		}
		if input.IsActive != nil {
			updates["is_active"] = *input.IsActive
		}
		if input.DisplayOrder != nil {
			updates["display_order"] = *input.DisplayOrder
		}

		t, err := testimonialrepo.New(uow.DB()).Update(c.Context(), id, updates)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Could not update testimonial", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Testimonial updated", toRead(t))
	}
}

// Delete removes a testimonial.
func Delete(uow *repository.UoW) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid testimonial id", err, fiber.StatusBadRequest)
		}
		if err := testimonialrepo.New(uow.DB()).Delete(c.Context(), id); err != nil {
			return common.ProblemDetailsJSON(c, "Could not delete testimonial", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
