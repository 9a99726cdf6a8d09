// Package model defines the persisted GORM models for the backend.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/briskfarm/backend/pkg/domain"
)

// User is a back-office staff account.
type User struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key"`
	Email          string          `gorm:"uniqueIndex;not null;size:255"`
	FullName       *string         `gorm:"size:150"`
	HashedPassword string          `gorm:"not null"`
	Role           domain.UserRole `gorm:"type:varchar(20);not null;default:'STAFF'"`
	IsActive       bool            `gorm:"not null;default:true"`
	IsSuperuser    bool            `gorm:"not null;default:false"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Service is a company offering shown on the public site.
type Service struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key"`
	Name             string    `gorm:"uniqueIndex;not null;size:200"`
	Slug             string    `gorm:"uniqueIndex;not null;size:200"`
	ShortDescription *string   `gorm:"size:500"`
	Description      *string   `gorm:"type:text"`
	Tagline          *string   `gorm:"size:255"`
	Category         *string   `gorm:"size:100"`
	HeroImageURL     *string   `gorm:"size:500"`
	Icon             *string   `gorm:"size:100"`
	Highlight1       *string   `gorm:"size:255"`
	Highlight2       *string   `gorm:"size:255"`
	Highlight3       *string   `gorm:"size:255"`
	IsActive         bool      `gorm:"not null;default:true"`
	DisplayOrder     int       `gorm:"not null;default:0"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Projects []Project `gorm:"foreignKey:ServiceID"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// Project is a delivered or ongoing construction project.
type Project struct {
	ID               uuid.UUID            `gorm:"type:uuid;primary_key"`
	Name             string               `gorm:"not null;size:255"`
	Slug             string               `gorm:"uniqueIndex;not null;size:255"`
	Description      *string              `gorm:"type:text"`
	ShortDescription *string              `gorm:"size:500"`
	Location         *string              `gorm:"size:255"`
	ClientName       *string              `gorm:"size:255"`
	BudgetAmount     *float64             `gorm:"type:decimal(14,2)"`
	Budget           *string              `gorm:"size:255"`
	StartDate        *time.Time           `gorm:"type:date"`
	EndDate          *time.Time           `gorm:"type:date"`
	Status           domain.ProjectStatus `gorm:"type:varchar(20);not null;default:'ONGOING';index"`
	IsFeatured       bool                 `gorm:"not null;default:false"`
	CoverImageURL    *string              `gorm:"size:500"`
	HeroImageURL     *string              `gorm:"size:500"`
	Thumbnail        *string              `gorm:"size:500"`
	Type             *string              `gorm:"size:255"`
	Size             *string              `gorm:"size:255"`
	ServiceID        *uuid.UUID           `gorm:"type:uuid;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Service    *Service `gorm:"foreignKey:ServiceID"`
	MediaItems []Media  `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Media is a gallery entry attached to a project.
type Media struct {
	ID           uuid.UUID        `gorm:"type:uuid;primary_key"`
	ProjectID    *uuid.UUID       `gorm:"type:uuid;index"`
	Title        *string          `gorm:"size:255"`
	Description  *string          `gorm:"type:text"`
	URL          string           `gorm:"not null;size:500"`
	MediaType    domain.MediaType `gorm:"type:varchar(10);not null;default:'IMAGE'"`
	IsFeatured   bool             `gorm:"not null;default:false;index"`
	DisplayOrder int              `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (m *Media) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// Testimonial is a client quote shown on the public site.
type Testimonial struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	ClientName   string    `gorm:"not null;size:150"`
	ClientRole   *string   `gorm:"size:150"`
	Company      *string   `gorm:"size:200"`
	Message      string    `gorm:"type:text;not null"`
	Rating       *int
	IsFeatured   bool `gorm:"not null;default:false"`
	IsActive     bool `gorm:"not null;default:true"`
	DisplayOrder int  `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (t *Testimonial) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// Subscriber is a newsletter signup.
type Subscriber struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Email     string    `gorm:"uniqueIndex;not null;size:255"`
	CreatedAt time.Time
}

func (s *Subscriber) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// Inquiry is a lead captured from the public contact form.
type Inquiry struct {
	ID          uuid.UUID            `gorm:"type:uuid;primary_key"`
	FullName    string               `gorm:"not null;size:150"`
	Email       *string              `gorm:"size:255"`
	Phone       *string              `gorm:"size:50"`
	ProjectType *string              `gorm:"size:100"`
	BudgetRange *string              `gorm:"size:100"`
	Location    *string              `gorm:"size:255"`
	Message     *string              `gorm:"type:text"`
	Status      domain.InquiryStatus `gorm:"type:varchar(20);not null;default:'NEW';index"`
	Source      *string              `gorm:"size:100"`
	ServiceID   *uuid.UUID           `gorm:"type:uuid"`
	ProjectID   *uuid.UUID           `gorm:"type:uuid"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (i *Inquiry) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// Campaign is a fundraising campaign. Deleting a campaign archives it;
// rows are never physically removed.
type Campaign struct {
	ID               uuid.UUID             `gorm:"type:uuid;primary_key"`
	Name             string                `gorm:"not null;size:200"`
	Slug             string                `gorm:"uniqueIndex;not null;size:200"`
	ShortDescription *string               `gorm:"size:300"`
	Description      *string               `gorm:"type:text"`
	Currency         string                `gorm:"type:varchar(3);not null;default:'UGX'"`
	TargetAmount     *int64
	RaisedAmount     int64                 `gorm:"not null;default:0"`
	Status           domain.CampaignStatus `gorm:"type:varchar(20);not null;default:'active'"`
	IsFeatured       bool                  `gorm:"not null;default:false"`
	SortOrder        int                   `gorm:"not null;default:0"`
	HeroImageURL     *string               `gorm:"size:500"`
	StartDate        *time.Time            `gorm:"type:date"`
	EndDate          *time.Time            `gorm:"type:date"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Donations []Donation `gorm:"foreignKey:CampaignID;constraint:OnDelete:SET NULL"`
}

func (c *Campaign) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// Donation is one donor contribution. Amounts are stored in major currency
// units. Only card fingerprint fields are persisted, never a full PAN.
type Donation struct {
	ID       uuid.UUID             `gorm:"type:uuid;primary_key"`
	Amount   int64                 `gorm:"not null"`
	Currency string                `gorm:"type:varchar(3);not null;default:'UGX'"`
	Status   domain.DonationStatus `gorm:"type:varchar(20);not null;default:'pending';index"`

	DonorName   *string `gorm:"size:150"`
	DonorEmail  *string `gorm:"size:255"`
	DonorPhone  *string `gorm:"size:50"`
	IsAnonymous bool    `gorm:"not null;default:false"`
	Message     *string `gorm:"type:text"`

	CampaignID *uuid.UUID `gorm:"type:uuid;index"`
	Campaign   *Campaign  `gorm:"foreignKey:CampaignID"`

	PaymentMethod   domain.PaymentMethod `gorm:"type:varchar(50);default:'card'"`
	PaymentProvider *string              `gorm:"size:50"`

	// provider_session_id correlates inbound webhook events to exactly one
	// donation, so it carries a unique index.
	ProviderSessionID  *string `gorm:"size:100;uniqueIndex"`
	ProviderPaymentID  *string `gorm:"size:100"`
	ProviderCustomerID *string `gorm:"size:100"`
	ProviderStatus     *string `gorm:"size:50"`

	CardBrand    *string `gorm:"size:30"`
	CardLast4    *string `gorm:"size:4"`
	CardExpMonth *int
	CardExpYear  *int

	IPAddress *string `gorm:"size:45"`
	UserAgent *string `gorm:"size:300"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

func (d *Donation) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// All returns every model for AutoMigrate, in FK dependency order.
func All() []any {
	return []any{
		&User{},
		&Service{},
		&Project{},
		&Media{},
		&Testimonial{},
		&Subscriber{},
		&Inquiry{},
		&Campaign{},
		&Donation{},
	}
}
