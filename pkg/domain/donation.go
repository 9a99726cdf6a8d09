package domain

import (
	"fmt"
	"strings"
)

// DonationStatus is the lifecycle state of a donation. It is set to
// StatusPending at creation and only the webhook reconciler moves it.
type DonationStatus string

const (
	DonationPending   DonationStatus = "pending"
	DonationConfirmed DonationStatus = "confirmed"
	DonationFailed    DonationStatus = "failed"
	DonationRefunded  DonationStatus = "refunded"
)

// ParseDonationStatus parses a status value received at a boundary.
func ParseDonationStatus(s string) (DonationStatus, error) {
	switch DonationStatus(strings.ToLower(s)) {
	case DonationPending, DonationConfirmed, DonationFailed, DonationRefunded:
		return DonationStatus(strings.ToLower(s)), nil
	}
	return "", fmt.Errorf("%w: unknown donation status %q", ErrValidation, s)
}

func (s DonationStatus) String() string { return string(s) }

// PaymentMethod is a supported donation channel.
type PaymentMethod string

const (
	MethodCard       PaymentMethod = "card"
	MethodMTNMomo    PaymentMethod = "mtn_momo"
	MethodAirtelMomo PaymentMethod = "airtel_momo"
)

// NormalizePaymentMethod maps any unrecognized method to card. Unknown
// channels are never rejected at intent time.
func NormalizePaymentMethod(s string) PaymentMethod {
	switch PaymentMethod(strings.ToLower(s)) {
	case MethodCard, MethodMTNMomo, MethodAirtelMomo:
		return PaymentMethod(strings.ToLower(s))
	}
	return MethodCard
}

func (m PaymentMethod) String() string { return string(m) }

// MapProviderStatus maps a provider-reported status string to the internal
// donation status. Unrecognized values fall back to pending, which the
// reconciler treats as a no-op transition.
func MapProviderStatus(providerStatus string) DonationStatus {
	switch strings.ToLower(providerStatus) {
	case "success", "succeeded", "paid", "completed":
		return DonationConfirmed
	case "failed", "declined":
		return DonationFailed
	case "refunded", "charge_refunded":
		return DonationRefunded
	}
	return DonationPending
}
