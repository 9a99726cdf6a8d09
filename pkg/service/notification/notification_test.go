package notification_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/briskfarm/backend/infra/model"
	"github.com/briskfarm/backend/pkg/config"
	"github.com/briskfarm/backend/pkg/domain"
	"github.com/briskfarm/backend/pkg/service/notification"
)

type captureMailer struct {
	sent []notification.Message
	err  error
}

func (m *captureMailer) Send(_ context.Context, msg notification.Message) error {
	m.sent = append(m.sent, msg)
	return m.err
}

func newService(mailer notification.Mailer) *notification.Service {
	return notification.New(mailer, &config.Email{
		From:       "receipts@briskfarm.example",
		MaxElapsed: 10 * time.Millisecond,
	}, slog.New(slog.DiscardHandler))
}

func strptr(s string) *string { return &s }

func testDonation() *model.Donation {
	return &model.Donation{
		ID:         uuid.New(),
		Amount:     25000,
		Currency:   "UGX",
		Status:     domain.DonationConfirmed,
		DonorName:  strptr("Achen Grace"),
		DonorEmail: strptr("grace@example.com"),
	}
}

func TestSendReceipt_DeliversComposedMessage(t *testing.T) {
	t.Parallel()
	mailer := &captureMailer{}
	svc := newService(mailer)

	d := testDonation()
	d.Campaign = &model.Campaign{Name: "Clean Water Fund"}

	require.NoError(t, svc.SendReceipt(context.Background(), d))
	require.Len(t, mailer.sent, 1)

	msg := mailer.sent[0]
	assert.Equal(t, "receipts@briskfarm.example", msg.From)
	assert.Equal(t, "grace@example.com", msg.To)
	assert.Contains(t, msg.Subject, "25000 UGX")
	assert.Contains(t, msg.Body, "Dear Achen Grace")
	assert.Contains(t, msg.Body, "Clean Water Fund")
	assert.Contains(t, msg.Body, d.ID.String())
}

func TestSendReceipt_NoEmailSkips(t *testing.T) {
	t.Parallel()
	mailer := &captureMailer{}
	svc := newService(mailer)

	d := testDonation()
	d.DonorEmail = nil
	require.NoError(t, svc.SendReceipt(context.Background(), d))

	d = testDonation()
	d.DonorEmail = strptr("")
	require.NoError(t, svc.SendReceipt(context.Background(), d))

	assert.Empty(t, mailer.sent)
}

func TestSendReceipt_AnonymousDonorAddressedAsFriend(t *testing.T) {
	t.Parallel()
	mailer := &captureMailer{}
	svc := newService(mailer)

	d := testDonation()
	d.IsAnonymous = true
	require.NoError(t, svc.SendReceipt(context.Background(), d))

	require.Len(t, mailer.sent, 1)
	assert.Contains(t, mailer.sent[0].Body, "Dear Friend")
	assert.NotContains(t, mailer.sent[0].Body, "Achen Grace")
}

func TestSendReceipt_NoCampaignFallsBackToGeneralSupport(t *testing.T) {
	t.Parallel()
	mailer := &captureMailer{}
	svc := newService(mailer)

	require.NoError(t, svc.SendReceipt(context.Background(), testDonation()))

	require.Len(t, mailer.sent, 1)
	assert.Contains(t, mailer.sent[0].Body, "General support")
}

func TestSendReceipt_MailerFailureSurfacesAsError(t *testing.T) {
	t.Parallel()
	mailer := &captureMailer{err: errors.New("smtp unavailable")}
	svc := newService(mailer)

	d := testDonation()
	err := svc.SendReceipt(context.Background(), d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), d.ID.String())
	assert.NotEmpty(t, mailer.sent)
}
