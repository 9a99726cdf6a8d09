// Package media exposes project gallery entries.
package media

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/briskfarm/backend/infra/model"
	"github.com/briskfarm/backend/infra/repository"
	mediarepo "github.com/briskfarm/backend/infra/repository/media"
	"github.com/briskfarm/backend/pkg/config"
	"github.com/briskfarm/backend/pkg/domain"
	"github.com/briskfarm/backend/webapi/common"
	"github.com/briskfarm/backend/webapi/middleware"
)

// Routes registers media endpoints under the given router group.
func Routes(api fiber.Router, uow *repository.UoW, cfg *config.App) {
	api.Get("/media/project/:project_id", ListByProject(uow))

	api.Post("/media", middleware.JwtProtected(cfg.Jwt), middleware.AdminRequired(), Create(uow))
	api.Put("/media/:id", middleware.JwtProtected(cfg.Jwt), middleware.AdminRequired(), Update(uow))
	api.Delete("/media/:id", middleware.JwtProtected(cfg.Jwt), middleware.AdminRequired(), Delete(uow))
}

// ListByProject returns a project's gallery in display order.
func ListByProject(uow *repository.UoW) fiber.Handler {
	return func(c *fiber.Ctx) error {
		projectID, err := uuid.Parse(c.Params("project_id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid project id", err, fiber.StatusBadRequest)
		}
		items, err := mediarepo.New(uow.DB()).ListByProject(c.Context(), projectID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Could not list media", err)
		}

		out := make([]MediaRead, 0, len(items))
		for i := range items {
			out = append(out, toRead(&items[i]))
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Media fetched", out)
	}
}

// Create inserts a gallery entry.
func Create(uow *repository.UoW) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateMediaInput](c)
		if input == nil {
			return err
		}

		mediaType := domain.MediaImage
		if input.MediaType != nil {
			mediaType, err = domain.ParseMediaType(*input.MediaType)
			if err != nil {
				return common.ProblemDetailsJSON(c, "Invalid media type", err, fiber.StatusBadRequest)
			}
		}

		m := &model.Media{
			Title:        input.Title,
			Description:  input.Description,
			URL:          input.URL,
			MediaType:    mediaType,
			IsFeatured:   input.IsFeatured,
			DisplayOrder: input.DisplayOrder,
		}
		if input.ProjectID != nil {
			pid, err := uuid.Parse(*input.ProjectID)
			if err != nil {
				return common.ProblemDetailsJSON(c, "Invalid project id", err, fiber.StatusBadRequest)
			}
			m.ProjectID = &pid
		}

		if err := mediarepo.New(uow.DB()).Create(c.Context(), m); err != nil {
			return common.ProblemDetailsJSON(c, "Could not create media", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Media created", toRead(m))
	}
}

// Update applies a partial media update.
func Update(uow *repository.UoW) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid media id", err, fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[UpdateMediaInput](c)
		if input == nil {
			return err
		}

		updates := map[string]any{}
		if input.Title != nil {
			updates["title"] = *input.Title
		}
		if input.Description != nil {
			updates["description"] = *input.Description
		}
		if input.URL != nil {
			updates["url"] = *input.URL
		}
		if input.MediaType != nil {
			mediaType, err := domain.ParseMediaType(*input.MediaType)
			if err != nil {
				return common.ProblemDetailsJSON(c, "Invalid media type", err, fiber.StatusBadRequest)
			}
			updates["media_type"] = mediaType
		}
		if input.IsFeatured != nil {
			updates["is_featured"] = *input.IsFeatured
		}
		if input.DisplayOrder != nil {
			updates["display_order"] = *input.DisplayOrder
		}

		m, err := mediarepo.New(uow.DB()).Update(c.Context(), id, updates)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Could not update media", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Media updated", toRead(m))
	}
}

// Delete removes a gallery entry.
func Delete(uow *repository.UoW) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid media id", err, fiber.StatusBadRequest)
		}
		if err := mediarepo.New(uow.DB()).Delete(c.Context(), id); err != nil {
			return common.ProblemDetailsJSON(c, "Could not delete media", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
