// Package project exposes the public project portfolio and the admin
// project CRUD.
package project

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/briskfarm/backend/infra/model"
	"github.com/briskfarm/backend/infra/repository"
	projectrepo "github.com/briskfarm/backend/infra/repository/project"
	"github.com/briskfarm/backend/pkg/config"
	"github.com/briskfarm/backend/pkg/domain"
	"github.com/briskfarm/backend/webapi/common"
	"github.com/briskfarm/backend/webapi/middleware"
)

const maxPageSize = 100

// Routes registers project endpoints under the given router group.
func Routes(api fiber.Router, uow *repository.UoW, cfg *config.App) {
	api.Get("/projects", List(uow))
	api.Get("/projects/:slug", GetBySlug(uow))

	api.Post("/projects", middleware.JwtProtected(cfg.Jwt), middleware.AdminRequired(), Create(uow))
	api.Put("/projects/:id", middleware.JwtProtected(cfg.Jwt), middleware.AdminRequired(), Update(uow))
	api.Delete("/projects/:id", middleware.JwtProtected(cfg.Jwt), middleware.AdminRequired(), Delete(uow))
}

// List returns a paginated project page.
func List(uow *repository.UoW) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var f projectrepo.Filter

		if raw := c.Query("status"); raw != "" {
			status, err := domain.ParseProjectStatus(raw)
			if err != nil {
				return common.ProblemDetailsJSON(c, "Invalid status", err, fiber.StatusBadRequest)
			}
			f.Status = &status
		}
		if raw := c.Query("service_slug"); raw != "" {
			f.ServiceSlug = &raw
		}
		if raw := c.Query("featured"); raw != "" {
			featured := raw == "true" || raw == "1"
			f.Featured = &featured
		}
		f.Sort = c.Query("sort", projectrepo.SortNewest)
		f.Page = c.QueryInt("page", 1)
		if f.Page < 1 {
			f.Page = 1
		}
		f.Limit = c.QueryInt("limit", 12)
		if f.Limit <= 0 || f.Limit > maxPageSize {
			f.Limit = maxPageSize
		}

		projects, total, err := projectrepo.New(uow.DB()).List(c.Context(), f)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Could not list projects", err)
		}

		items := make([]ProjectRead, 0, len(projects))
		for i := range projects {
			items = append(items, toRead(&projects[i]))
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Projects fetched", ProjectPage{
			Total: total,
			Page:  f.Page,
			Limit: f.Limit,
			Items: items,
		})
	}
}

// GetBySlug returns one project with its media gallery.
func GetBySlug(uow *repository.UoW) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := projectrepo.New(uow.DB()).GetBySlug(c.Context(), c.Params("slug"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Project not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Project found", toRead(p))
	}
}

// Create inserts a project. Duplicate slug is a bad request.
func Create(uow *repository.UoW) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateProjectInput](c)
		if input == nil {
			return err
		}

		status := domain.ProjectOngoing
		if input.Status != nil {
			status, err = domain.ParseProjectStatus(*input.Status)
			if err != nil {
				return common.ProblemDetailsJSON(c, "Invalid status", err, fiber.StatusBadRequest)
			}
		}

		p := &model.Project{
			Name:             input.Name,
			Slug:             input.Slug,
			Description:      input.Description,
			ShortDescription: input.ShortDescription,
			Location:         input.Location,
			ClientName:       input.ClientName,
			BudgetAmount:     input.BudgetAmount,
			Budget:           input.Budget,
			StartDate:        input.StartDate,
			EndDate:          input.EndDate,
			Status:           status,
			IsFeatured:       input.IsFeatured,
			CoverImageURL:    input.CoverImageURL,
			HeroImageURL:     input.HeroImageURL,
			Thumbnail:        input.Thumbnail,
			Type:             input.Type,
			Size:             input.Size,
		}
		if input.ServiceID != nil {
			sid, err := uuid.Parse(*input.ServiceID)
			if err != nil {
				return common.ProblemDetailsJSON(c, "Invalid service id", err, fiber.StatusBadRequest)
			}
			p.ServiceID = &sid
		}

		if err := projectrepo.New(uow.DB()).Create(c.Context(), p); err != nil {
			return common.ProblemDetailsJSON(c, "Could not create project", err, fiber.StatusBadRequest)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Project created", toRead(p))
	}
}

// Update applies a partial project update.
func Update(uow *repository.UoW) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid project id", err, fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[UpdateProjectInput](c)
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
		if input.Description != nil {
			updates["description"] = *input.Description
		}
		if input.ShortDescription != nil {
			updates["short_description"] = *input.ShortDescription
		}
		if input.Location != nil {
			updates["location"] = *input.Location
		}
		if input.ClientName != nil {
			updates["client_name"] = *input.ClientName
		}
		if input.BudgetAmount != nil {
			updates["budget_amount"] = *input.BudgetAmount
		}
		if input.Budget != nil {
			updates["budget"] = *input.Budget
		}
		if input.StartDate != nil {
			updates["start_date"] = *input.StartDate
		}
		if input.EndDate != nil {
			updates["end_date"] = *input.EndDate
		}
		if input.Status != nil {
			status, err := domain.ParseProjectStatus(*input.Status)
			if err != nil {
				return common.ProblemDetailsJSON(c, "Invalid status", err, fiber.StatusBadRequest)
			}
			updates["status"] = status
		}
		if input.IsFeatured != nil {
			updates["is_featured"] = *input.IsFeatured
		}
		if input.CoverImageURL != nil {
			updates["cover_image_url"] = *input.CoverImageURL
		}
		if input.HeroImageURL != nil {
			updates["hero_image_url"] = *input.HeroImageURL
		}
		if input.Thumbnail != nil {
			updates["thumbnail"] = *input.Thumbnail
		}
		if input.Type != nil {
			updates["type"] = *input.Type
		}
		if input.Size != nil {
			updates["size"] = *input.Size
		}
		if input.ServiceID != nil {
			sid, err := uuid.Parse(*input.ServiceID)
			if err != nil {
				return common.ProblemDetailsJSON(c, "Invalid service id", err, fiber.StatusBadRequest)
			}
			updates["service_id"] = sid
		}

		p, err := projectrepo.New(uow.DB()).Update(c.Context(), id, updates)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Could not update project", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Project updated", toRead(p))
	}
}

// Delete removes a project and cascades to its media.
func Delete(uow *repository.UoW) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid project id", err, fiber.StatusBadRequest)
		}
		if err := projectrepo.New(uow.DB()).Delete(c.Context(), id); err != nil {
			return common.ProblemDetailsJSON(c, "Could not delete project", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
