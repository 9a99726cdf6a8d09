package domain

import (
	"fmt"
	"strings"
)

// CampaignStatus is the publication state of a fundraising campaign.
// Archived is the soft-deleted state; campaigns are never physically removed.
type CampaignStatus string

const (
	CampaignDraft    CampaignStatus = "draft"
	CampaignActive   CampaignStatus = "active"
	CampaignClosed   CampaignStatus = "closed"
	CampaignArchived CampaignStatus = "archived"
)

// ParseCampaignStatus parses a status value received at a boundary.
func ParseCampaignStatus(s string) (CampaignStatus, error) {
	switch CampaignStatus(strings.ToLower(s)) {
	case CampaignDraft, CampaignActive, CampaignClosed, CampaignArchived:
		return CampaignStatus(strings.ToLower(s)), nil
	}
	return "", fmt.Errorf("%w: unknown campaign status %q", ErrValidation, s)
}

func (s CampaignStatus) String() string { return string(s) }

// AcceptsDonations reports whether new donation intents may reference the
// campaign. Draft is allowed so early gifts can land before launch.
func (s CampaignStatus) AcceptsDonations() bool {
	return s == CampaignActive || s == CampaignDraft
}
