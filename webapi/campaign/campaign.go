// Package campaign exposes public campaign listings and the admin
// campaign CRUD.
package campaign

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/briskfarm/backend/infra/model"
	"github.com/briskfarm/backend/infra/repository"
	campaignrepo "github.com/briskfarm/backend/infra/repository/campaign"
	"github.com/briskfarm/backend/pkg/config"
	"github.com/briskfarm/backend/pkg/domain"
	"github.com/briskfarm/backend/webapi/common"
	"github.com/briskfarm/backend/webapi/middleware"
)

const maxPageSize = 200

// Routes registers campaign endpoints under the given router group.
func Routes(api fiber.Router, uow *repository.UoW, cfg *config.App) {
	api.Get("/campaigns", List(uow))
	api.Get("/campaigns/:slug", GetBySlug(uow))

	api.Post("/campaigns", middleware.JwtProtected(cfg.Jwt), middleware.AdminRequired(), Create(uow))
	api.Put("/campaigns/:id", middleware.JwtProtected(cfg.Jwt), middleware.AdminRequired(), Update(uow))
	api.Delete("/campaigns/:id", middleware.JwtProtected(cfg.Jwt), middleware.AdminRequired(), Archive(uow))
}

// List returns campaigns ordered by sort_order then newest first.
func List(uow *repository.UoW) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var f campaignrepo.Filter

		if raw := c.Query("status"); raw != "" {
			status, err := domain.ParseCampaignStatus(raw)
			if err != nil {
				return common.ProblemDetailsJSON(c, "Invalid status", err, fiber.StatusBadRequest)
			}
			f.Status = &status
		}
		if raw := c.Query("is_featured"); raw != "" {
			featured := raw == "true" || raw == "1"
			f.IsFeatured = &featured
		}
		f.Skip = c.QueryInt("skip", 0)
		f.Limit = c.QueryInt("limit", 50)
		if f.Limit <= 0 || f.Limit > maxPageSize {
			f.Limit = maxPageSize
		}

		campaigns, err := campaignrepo.New(uow.DB()).List(c.Context(), f)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Could not list campaigns", err)
		}

		out := make([]CampaignRead, 0, len(campaigns))
		for i := range campaigns {
			out = append(out, toRead(&campaigns[i]))
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Campaigns fetched", out)
	}
}

// GetBySlug returns one campaign by its public slug.
func GetBySlug(uow *repository.UoW) fiber.Handler {
	return func(c *fiber.Ctx) error {
		campaign, err := campaignrepo.New(uow.DB()).GetBySlug(c.Context(), c.Params("slug"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Campaign not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Campaign found", toRead(campaign))
	}
}

// Create inserts a campaign. A duplicate slug is a bad request.
func Create(uow *repository.UoW) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateCampaignInput](c)
		if input == nil {
			return err
		}

		status := domain.CampaignActive
		if input.Status != nil {
			status, err = domain.ParseCampaignStatus(*input.Status)
			if err != nil {
				return common.ProblemDetailsJSON(c, "Invalid status", err, fiber.StatusBadRequest)
			}
		}
		currency := input.Currency
		if currency == "" {
			currency = "UGX"
		}

		campaign := &model.Campaign{
			Name:             input.Name,
			Slug:             input.Slug,
			ShortDescription: input.ShortDescription,
			Description:      input.Description,
			Currency:         currency,
			TargetAmount:     input.TargetAmount,
			Status:           status,
			IsFeatured:       input.IsFeatured,
			SortOrder:        input.SortOrder,
			HeroImageURL:     input.HeroImageURL,
			StartDate:        input.StartDate,
			EndDate:          input.EndDate,
		}
		if err := campaignrepo.New(uow.DB()).Create(c.Context(), campaign); err != nil {
			return common.ProblemDetailsJSON(c, "Could not create campaign", err, fiber.StatusBadRequest)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Campaign created", toRead(campaign))
	}
}

// Update applies a partial campaign update.
func Update(uow *repository.UoW) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid campaign id", err, fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[UpdateCampaignInput](c)
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
		if input.TargetAmount != nil {
			updates["target_amount"] = *input.TargetAmount
		}
		if input.Status != nil {
			status, err := domain.ParseCampaignStatus(*input.Status)
			if err != nil {
				return common.ProblemDetailsJSON(c, "Invalid status", err, fiber.StatusBadRequest)
			}
			updates["status"] = status
		}
		if input.IsFeatured != nil {
			updates["is_featured"] = *input.IsFeatured
		}
		if input.SortOrder != nil {
			updates["sort_order"] = *input.SortOrder
		}
		if input.HeroImageURL != nil {
			updates["hero_image_url"] = *input.HeroImageURL
		}
		if input.StartDate != nil {
			updates["start_date"] = *input.StartDate
		}
		if input.EndDate != nil {
			updates["end_date"] = *input.EndDate
		}

		campaign, err := campaignrepo.New(uow.DB()).Update(c.Context(), id, updates)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Could not update campaign", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Campaign updated", toRead(campaign))
	}
}

// Archive soft-deletes a campaign. Donations keep their reference.
func Archive(uow *repository.UoW) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid campaign id", err, fiber.StatusBadRequest)
		}
		if err := campaignrepo.New(uow.DB()).Archive(c.Context(), id); err != nil {
			return common.ProblemDetailsJSON(c, "Could not archive campaign", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
