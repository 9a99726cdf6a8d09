// Package domain defines the closed status vocabularies and sentinel errors
// shared by the services, repositories and web layer.
package domain

import "errors"

// Common domain errors
var (
	// ErrNotFound is returned when a requested resource does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrAlreadyExists is returned when a uniqueness constraint would be violated.
	ErrAlreadyExists = errors.New("resource already exists")
	// ErrValidation is returned when input validation fails.
	ErrValidation = errors.New("validation error")
	// ErrUnauthorized is returned when credentials are missing or invalid.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden is returned when the caller lacks the required role.
	ErrForbidden = errors.New("forbidden")
)

// Donation errors
var (
	// ErrDonationAmountMustBePositive rejects non-positive donation intents.
	ErrDonationAmountMustBePositive = errors.New("donation amount must be greater than zero")
	// ErrCampaignNotAcceptingDonations rejects intents referencing a closed or archived campaign.
	ErrCampaignNotAcceptingDonations = errors.New("campaign is not accepting donations at this time")
	// ErrDonationNotFound is returned when no donation matches the lookup key.
	ErrDonationNotFound = errors.New("donation not found")
	// ErrCampaignNotFound is returned when a referenced campaign does not exist.
	ErrCampaignNotFound = errors.New("campaign not found")
	// ErrConcurrentStatusUpdate is returned when the conditional status write
	// loses a race with another reconciliation of the same donation.
	ErrConcurrentStatusUpdate = errors.New("donation status changed concurrently")
)

// Webhook errors
var (
	// ErrWebhookSecretNotConfigured is returned when no webhook secret is set.
	ErrWebhookSecretNotConfigured = errors.New("webhook secret is not configured")
	// ErrWebhookSignatureMissing is returned when the signature header is absent.
	ErrWebhookSignatureMissing = errors.New("missing webhook signature header")
	// ErrWebhookSignatureInvalid is returned when the signature does not match the payload.
	ErrWebhookSignatureInvalid = errors.New("invalid webhook signature")
	// ErrWebhookBadPayload is returned for unparseable or incomplete webhook bodies.
	ErrWebhookBadPayload = errors.New("bad webhook payload")
)
