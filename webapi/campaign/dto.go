package campaign

import (
	"time"

	"github.com/google/uuid"

	"github.com/briskfarm/backend/infra/model"
)

// CreateCampaignInput is the admin request body for a new campaign.
type CreateCampaignInput struct {
	Name             string     `json:"name" validate:"required,max=200"`
	Slug             string     `json:"slug" validate:"required,max=200"`
	ShortDescription *string    `json:"short_description" validate:"omitempty,max=300"`
	Description      *string    `json:"description"`
	Currency         string     `json:"currency" validate:"omitempty,len=3"`
	TargetAmount     *int64     `json:"target_amount" validate:"omitempty,gt=0"`
	Status           *string    `json:"status"`
	IsFeatured       bool       `json:"is_featured"`
	SortOrder        int        `json:"sort_order"`
	HeroImageURL     *string    `json:"hero_image_url" validate:"omitempty,max=500"`
	StartDate        *time.Time `json:"start_date"`
	EndDate          *time.Time `json:"end_date"`
}

// UpdateCampaignInput is a partial admin update. Nil fields are untouched.
type UpdateCampaignInput struct {
	Name             *string    `json:"name" validate:"omitempty,max=200"`
	Slug             *string    `json:"slug" validate:"omitempty,max=200"`
	ShortDescription *string    `json:"short_description" validate:"omitempty,max=300"`
	Description      *string    `json:"description"`
	TargetAmount     *int64     `json:"target_amount" validate:"omitempty,gt=0"`
	Status           *string    `json:"status"`
	IsFeatured       *bool      `json:"is_featured"`
	SortOrder        *int       `json:"sort_order"`
	HeroImageURL     *string    `json:"hero_image_url" validate:"omitempty,max=500"`
	StartDate        *time.Time `json:"start_date"`
	EndDate          *time.Time `json:"end_date"`
}

// CampaignRead is the campaign projection shared by public and admin
// listings. raised_amount reflects confirmed donations only.
type CampaignRead struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	Slug             string     `json:"slug"`
	ShortDescription *string    `json:"short_description,omitempty"`
	Description      *string    `json:"description,omitempty"`
	Currency         string     `json:"currency"`
	TargetAmount     *int64     `json:"target_amount,omitempty"`
	RaisedAmount     int64      `json:"raised_amount"`
	Status           string     `json:"status"`
	IsFeatured       bool       `json:"is_featured"`
	SortOrder        int        `json:"sort_order"`
	HeroImageURL     *string    `json:"hero_image_url,omitempty"`
	StartDate        *time.Time `json:"start_date,omitempty"`
	EndDate          *time.Time `json:"end_date,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func toRead(c *model.Campaign) CampaignRead {
	return CampaignRead{
		ID:               c.ID,
		Name:             c.Name,
		Slug:             c.Slug,
		ShortDescription: c.ShortDescription,
		Description:      c.Description,
		Currency:         c.Currency,
		TargetAmount:     c.TargetAmount,
		RaisedAmount:     c.RaisedAmount,
		Status:           c.Status.String(),
		IsFeatured:       c.IsFeatured,
		SortOrder:        c.SortOrder,
		HeroImageURL:     c.HeroImageURL,
		StartDate:        c.StartDate,
		EndDate:          c.EndDate,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}
