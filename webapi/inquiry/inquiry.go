// Package inquiry exposes the public contact form and the admin inquiry
// triage endpoints.
package inquiry

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/briskfarm/backend/infra/model"
	"github.com/briskfarm/backend/infra/repository"
	inquiryrepo "github.com/briskfarm/backend/infra/repository/inquiry"
	"github.com/briskfarm/backend/pkg/config"
	"github.com/briskfarm/backend/pkg/domain"
	"github.com/briskfarm/backend/webapi/common"
	"github.com/briskfarm/backend/webapi/middleware"
)

const maxPageSize = 200

// Routes registers inquiry endpoints under the given router group.
func Routes(api fiber.Router, uow *repository.UoW, cfg *config.App) {
	api.Post("/inquiries", Create(uow))

	api.Get("/inquiries",
		middleware.JwtProtected(cfg.Jwt), middleware.AdminRequired(),
		List(uow),
	)
	api.Patch("/inquiries/:id/status",
		middleware.JwtProtected(cfg.Jwt), middleware.AdminRequired(),
		UpdateStatus(uow),
	)
	api.Put("/inquiries/:id",
		middleware.JwtProtected(cfg.Jwt), middleware.AdminRequired(),
		Update(uow),
	)
}

// Create records a lead from the public contact form. New inquiries always
// start in the NEW triage state.
func Create(uow *repository.UoW) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateInquiryInput](c)
		if input == nil {
			return err
		}

		i := &model.Inquiry{
			FullName:    input.FullName,
			Email:       input.Email,
			Phone:       input.Phone,
			ProjectType: input.ProjectType,
			BudgetRange: input.BudgetRange,
			Location:    input.Location,
			Message:     input.Message,
			Status:      domain.InquiryNew,
			Source:      input.Source,
		}
		if input.ServiceID != nil {
			sid, err := uuid.Parse(*input.ServiceID)
			if err != nil {
				return common.ProblemDetailsJSON(c, "Invalid service id", err, fiber.StatusBadRequest)
			}
			i.ServiceID = &sid
		}
		if input.ProjectID != nil {
			pid, err := uuid.Parse(*input.ProjectID)
			if err != nil {
				return common.ProblemDetailsJSON(c, "Invalid project id", err, fiber.StatusBadRequest)
			}
			i.ProjectID = &pid
		}

		if err := inquiryrepo.New(uow.DB()).Create(c.Context(), i); err != nil {
			return common.ProblemDetailsJSON(c, "Could not create inquiry", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Inquiry received", toRead(i))
	}
}

// List returns a paginated inquiry page, newest first.
func List(uow *repository.UoW) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var f inquiryrepo.Filter

		if raw := c.Query("status"); raw != "" {
			status, err := domain.ParseInquiryStatus(raw)
			if err != nil {
				return common.ProblemDetailsJSON(c, "Invalid status", err, fiber.StatusBadRequest)
			}
			f.Status = &status
		}
		f.Skip = c.QueryInt("skip", 0)
		f.Limit = c.QueryInt("limit", 50)
		if f.Limit <= 0 || f.Limit > maxPageSize {
			f.Limit = maxPageSize
		}

		items, total, err := inquiryrepo.New(uow.DB()).List(c.Context(), f)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Could not list inquiries", err)
		}

		out := make([]InquiryRead, 0, len(items))
		for i := range items {
			out = append(out, toRead(&items[i]))
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Inquiries fetched", InquiryPage{
			Total: total,
			Items: out,
		})
	}
}

// UpdateStatus moves an inquiry through triage.
func UpdateStatus(uow *repository.UoW) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid inquiry id", err, fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[UpdateStatusInput](c)
		if input == nil {
			return err
		}

		status, err := domain.ParseInquiryStatus(input.Status)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid status", err, fiber.StatusBadRequest)
		}

		i, err := inquiryrepo.New(uow.DB()).Update(c.Context(), id, map[string]any{"status": status})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Could not update inquiry", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Inquiry updated", toRead(i))
	}
}

// Update applies a partial inquiry update.
func Update(uow *repository.UoW) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid inquiry id", err, fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[UpdateInquiryInput](c)
		if input == nil {
			return err
		}

		updates := map[string]any{}
		if input.FullName != nil {
			updates["full_name"] = *input.FullName
		}
		if input.Email != nil {
			updates["email"] = *input.Email
		}
		if input.Phone != nil {
			updates["phone"] = *input.Phone
		}
		if input.ProjectType != nil {
			updates["project_type"] = *input.ProjectType
		}
		if input.BudgetRange != nil {
			updates["budget_range"] = *input.BudgetRange
		}
		if input.Location != nil {
			updates["location"] = *input.Location
		}
		if input.Message != nil {
			updates["message"] = *input.Message
		}
		if input.Status != nil {
			status, err := domain.ParseInquiryStatus(*input.Status)
			if err != nil {
				return common.ProblemDetailsJSON(c, "Invalid status", err, fiber.StatusBadRequest)
			}
			updates["status"] = status
		}

		i, err := inquiryrepo.New(uow.DB()).Update(c.Context(), id, updates)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Could not update inquiry", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Inquiry updated", toRead(i))
	}
}
