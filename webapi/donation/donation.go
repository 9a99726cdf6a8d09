// Package donation exposes the public donation intent endpoint, the
// provider webhook endpoint and the admin donation listings.
package donation

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	donationrepo "github.com/briskfarm/backend/infra/repository/donation"
	"github.com/briskfarm/backend/pkg/config"
	"github.com/briskfarm/backend/pkg/domain"
	donationsvc "github.com/briskfarm/backend/pkg/service/donation"
	"github.com/briskfarm/backend/webapi/common"
	"github.com/briskfarm/backend/webapi/middleware"
)

// SignatureHeader carries the hex HMAC of the raw webhook body.
const SignatureHeader = "X-Payment-Signature"

const (
	defaultPageSize = 100
	maxPageSize     = 200
)

// pageLimit clamps a requested page size to (0, maxPageSize], treating
// absent and invalid values as the default.
func pageLimit(v int) int {
	if v <= 0 {
		return defaultPageSize
	}
	if v > maxPageSize {
		return maxPageSize
	}
	return v
}

// Routes registers donation endpoints under the given router group.
func Routes(api fiber.Router, svc *donationsvc.Service, cfg *config.App) {
	api.Post("/donations", Create(svc))
	api.Post("/donations/webhook", Webhook(svc))
	api.Get("/donations",
		middleware.JwtProtected(cfg.Jwt), middleware.AdminRequired(),
		List(svc),
	)
	api.Get("/donations/:id",
		middleware.JwtProtected(cfg.Jwt), middleware.AdminRequired(),
		Get(svc),
	)
}

// Create opens a donation intent and returns the checkout session next to
// the public donation projection.
func Create(svc *donationsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateDonationInput](c)
		if input == nil {
			return err
		}

		params := donationsvc.CreateIntentParams{
			Amount:        input.Amount,
			Currency:      input.Currency,
			DonorName:     input.DonorName,
			DonorEmail:    input.DonorEmail,
			DonorPhone:    input.DonorPhone,
			IsAnonymous:   input.IsAnonymous,
			Message:       input.Message,
			PaymentMethod: input.PaymentMethod,
		}
		if input.CampaignID != nil {
			id, err := uuid.Parse(*input.CampaignID)
			if err != nil {
				return common.ProblemDetailsJSON(c, "Invalid campaign id", err, fiber.StatusBadRequest)
			}
			params.CampaignID = &id
		}
		if ip := c.IP(); ip != "" {
			params.IPAddress = &ip
		}
		if ua := c.Get(fiber.HeaderUserAgent); ua != "" {
			params.UserAgent = &ua
		}

		d, session, err := svc.CreateIntent(c.Context(), params)
		if err != nil {
			// A donation referencing an unknown campaign is a bad request,
			// not a missing resource.
			if errors.Is(err, domain.ErrCampaignNotFound) {
				return common.ProblemDetailsJSON(c, "Unknown campaign", err, fiber.StatusBadRequest)
			}
			return common.ProblemDetailsJSON(c, "Could not create donation", err)
		}

		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Donation created", fiber.Map{
			"donation":            toPublic(d),
			"payment_url":         session.PaymentURL,
			"provider_session_id": session.SessionID,
		})
	}
}

// Webhook receives provider callbacks. The raw body is handed to the
// service untouched; any verification, parsing or lookup failure is a 400
// so the caller cannot distinguish a forged signature from an unknown
// session.
func Webhook(svc *donationsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		d, err := svc.ApplyWebhook(c.Context(), c.Body(), c.Get(SignatureHeader))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Webhook rejected", err, fiber.StatusBadRequest)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Webhook processed", fiber.Map{
			"ok":          true,
			"donation_id": d.ID,
			"status":      d.Status,
		})
	}
}

// List returns admin donation projections, newest first.
func List(svc *donationsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter, err := parseFilter(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid filter", err, fiber.StatusBadRequest)
		}

		donations, err := svc.List(c.Context(), filter)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Could not list donations", err)
		}

		out := make([]AdminDonation, 0, len(donations))
		for i := range donations {
			out = append(out, toAdmin(&donations[i]))
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Donations fetched", out)
	}
}

// Get returns one admin donation projection.
func Get(svc *donationsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid donation id", err, fiber.StatusBadRequest)
		}
		d, err := svc.Get(c.Context(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Donation not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Donation found", toAdmin(d))
	}
}

func parseFilter(c *fiber.Ctx) (donationrepo.Filter, error) {
	var f donationrepo.Filter

	if raw := c.Query("campaign_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return f, err
		}
		f.CampaignID = &id
	}
	if raw := c.Query("status"); raw != "" {
		status, err := domain.ParseDonationStatus(raw)
		if err != nil {
			return f, err
		}
		f.Status = &status
	}
	if raw := c.Query("date_from"); raw != "" {
		t, err := parseTimeParam(raw)
		if err != nil {
			return f, err
		}
		f.DateFrom = &t
	}
	if raw := c.Query("date_to"); raw != "" {
		t, err := parseTimeParam(raw)
		if err != nil {
			return f, err
		}
		f.DateTo = &t
	}
	if raw := c.Query("min_amount"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return f, err
		}
		f.MinAmount = &v
	}
	if raw := c.Query("max_amount"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return f, err
		}
		f.MaxAmount = &v
	}

	f.Skip = c.QueryInt("skip", 0)
	if f.Skip < 0 {
		f.Skip = 0
	}
	f.Limit = pageLimit(c.QueryInt("limit", defaultPageSize))
	return f, nil
}
