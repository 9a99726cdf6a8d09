package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/briskfarm/backend/pkg/domain"
)

func TestMapProviderStatus(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want domain.DonationStatus
	}{
		{"success", domain.DonationConfirmed},
		{"succeeded", domain.DonationConfirmed},
		{"paid", domain.DonationConfirmed},
		{"completed", domain.DonationConfirmed},
		{"SUCCESS", domain.DonationConfirmed},
		{"Paid", domain.DonationConfirmed},
		{"failed", domain.DonationFailed},
		{"declined", domain.DonationFailed},
		{"refunded", domain.DonationRefunded},
		{"charge_refunded", domain.DonationRefunded},
		{"processing", domain.DonationPending},
		{"", domain.DonationPending},
		{"unknown_status", domain.DonationPending},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, domain.MapProviderStatus(tc.in), "status %q", tc.in)
	}
}

func TestNormalizePaymentMethod(t *testing.T) {
	t.Parallel()
	assert.Equal(t, domain.MethodCard, domain.NormalizePaymentMethod("card"))
	assert.Equal(t, domain.MethodMTNMomo, domain.NormalizePaymentMethod("MTN_MOMO"))
	assert.Equal(t, domain.MethodAirtelMomo, domain.NormalizePaymentMethod("airtel_momo"))
	assert.Equal(t, domain.MethodCard, domain.NormalizePaymentMethod("bitcoin"))
	assert.Equal(t, domain.MethodCard, domain.NormalizePaymentMethod(""))
}

func TestParseDonationStatus(t *testing.T) {
	t.Parallel()
	status, err := domain.ParseDonationStatus("Confirmed")
	assert.NoError(t, err)
	assert.Equal(t, domain.DonationConfirmed, status)

	_, err = domain.ParseDonationStatus("charge_refunded")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCampaignAcceptsDonations(t *testing.T) {
	t.Parallel()
	assert.True(t, domain.CampaignActive.AcceptsDonations())
	assert.True(t, domain.CampaignDraft.AcceptsDonations())
	assert.False(t, domain.CampaignClosed.AcceptsDonations())
	assert.False(t, domain.CampaignArchived.AcceptsDonations())
}
