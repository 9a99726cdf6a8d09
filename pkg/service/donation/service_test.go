package donation_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/briskfarm/backend/infra"
	"github.com/briskfarm/backend/infra/model"
	"github.com/briskfarm/backend/infra/provider/dummypayment"
	"github.com/briskfarm/backend/infra/repository"
	campaignrepo "github.com/briskfarm/backend/infra/repository/campaign"
	donationrepo "github.com/briskfarm/backend/infra/repository/donation"
	"github.com/briskfarm/backend/pkg/config"
	"github.com/briskfarm/backend/pkg/domain"
	donationsvc "github.com/briskfarm/backend/pkg/service/donation"
)

const webhookSecret = "svc-test-secret"

var dbCounter atomic.Int64

func newTestService(t *testing.T) (*donationsvc.Service, *repository.UoW) {
	t.Helper()

	dsn := fmt.Sprintf("file:donationsvc%d?mode=memory&cache=shared", dbCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, infra.Migrate(db))

	discard := slog.New(slog.DiscardHandler)
	provider := dummypayment.New(&config.Payment{
		ProviderName:  "dummy",
		WebhookSecret: webhookSecret,
	}, discard)

	uow := repository.NewUoW(db)
	return donationsvc.New(uow, provider, nil, discard), uow
}

func seedCampaign(t *testing.T, uow *repository.UoW, status domain.CampaignStatus) *model.Campaign {
	t.Helper()
	c := &model.Campaign{
		Name:     "Test Campaign",
		Slug:     fmt.Sprintf("test-campaign-%s", uuid.New().String()[:8]),
		Currency: "UGX",
		Status:   status,
	}
	require.NoError(t, campaignrepo.New(uow.DB()).Create(context.Background(), c))
	return c
}

func signedEvent(sessionID, status string) ([]byte, string) {
	body := []byte(fmt.Sprintf(`{"session_id":%q,"status":%q}`, sessionID, status))
	return body, dummypayment.ComputeSignature(webhookSecret, body)
}

func TestCreateIntent_HappyPath(t *testing.T) {
	t.Parallel()
	svc, uow := newTestService(t)
	campaign := seedCampaign(t, uow, domain.CampaignActive)

	d, session, err := svc.CreateIntent(context.Background(), donationsvc.CreateIntentParams{
		Amount:        100000,
		Currency:      "UGX",
		CampaignID:    &campaign.ID,
		PaymentMethod: "mtn_momo",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.DonationPending, d.Status)
	assert.Equal(t, domain.MethodMTNMomo, d.PaymentMethod)
	require.NotNil(t, d.ProviderSessionID)
	assert.Equal(t, session.SessionID, *d.ProviderSessionID)
	assert.Equal(t, "dummy_mtn_momo_session_"+d.ID.String(), session.SessionID)
	assert.Contains(t, session.PaymentURL, "/mtn-momo/checkout/")
}

func TestCreateIntent_NonPositiveAmountPersistsNothing(t *testing.T) {
	t.Parallel()
	svc, uow := newTestService(t)

	for _, amount := range []int64{0, -100} {
		_, _, err := svc.CreateIntent(context.Background(), donationsvc.CreateIntentParams{Amount: amount})
		assert.ErrorIs(t, err, domain.ErrDonationAmountMustBePositive)
	}

	rows, err := donationrepo.New(uow.DB()).List(context.Background(), donationrepo.Filter{})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestCreateIntent_CampaignGate(t *testing.T) {
	t.Parallel()
	svc, uow := newTestService(t)

	for _, status := range []domain.CampaignStatus{domain.CampaignClosed, domain.CampaignArchived} {
		campaign := seedCampaign(t, uow, status)
		_, _, err := svc.CreateIntent(context.Background(), donationsvc.CreateIntentParams{
			Amount:     1000,
			CampaignID: &campaign.ID,
		})
		assert.ErrorIs(t, err, domain.ErrCampaignNotAcceptingDonations, "status %s", status)
	}

	// The gate runs inside the insert transaction, so a rejected intent
	// leaves no donation row behind.
	rows, err := donationrepo.New(uow.DB()).List(context.Background(), donationrepo.Filter{})
	require.NoError(t, err)
	assert.Empty(t, rows)

	for _, status := range []domain.CampaignStatus{domain.CampaignActive, domain.CampaignDraft} {
		campaign := seedCampaign(t, uow, status)
		_, _, err := svc.CreateIntent(context.Background(), donationsvc.CreateIntentParams{
			Amount:     1000,
			CampaignID: &campaign.ID,
		})
		assert.NoError(t, err, "status %s", status)
	}
}

func TestCreateIntent_UnknownCampaign(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	missing := uuid.New()
	_, _, err := svc.CreateIntent(context.Background(), donationsvc.CreateIntentParams{
		Amount:     1000,
		CampaignID: &missing,
	})
	assert.ErrorIs(t, err, domain.ErrCampaignNotFound)
}

func TestCreateIntent_UnknownMethodNormalizedToCard(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	d, session, err := svc.CreateIntent(context.Background(), donationsvc.CreateIntentParams{
		Amount:        500,
		PaymentMethod: "cowrie_shells",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.MethodCard, d.PaymentMethod)
	assert.Contains(t, session.PaymentURL, "/card/checkout/")
}

func TestApplyWebhook_ConfirmsAndRecordsProviderStatus(t *testing.T) {
	t.Parallel()
	svc, uow := newTestService(t)
	campaign := seedCampaign(t, uow, domain.CampaignActive)

	d, session, err := svc.CreateIntent(context.Background(), donationsvc.CreateIntentParams{
		Amount:     100000,
		CampaignID: &campaign.ID,
	})
	require.NoError(t, err)

	body, sig := signedEvent(session.SessionID, "success")
	updated, err := svc.ApplyWebhook(context.Background(), body, sig)
	require.NoError(t, err)

	assert.Equal(t, d.ID, updated.ID)
	assert.Equal(t, domain.DonationConfirmed, updated.Status)
	require.NotNil(t, updated.ProviderStatus)
	assert.Equal(t, "success", *updated.ProviderStatus)

	fresh, err := campaignrepo.New(uow.DB()).Get(context.Background(), campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(100000), fresh.RaisedAmount)
}

func TestApplyWebhook_ReplayIsIdempotent(t *testing.T) {
	t.Parallel()
	svc, uow := newTestService(t)
	campaign := seedCampaign(t, uow, domain.CampaignActive)

	_, session, err := svc.CreateIntent(context.Background(), donationsvc.CreateIntentParams{
		Amount:     50000,
		CampaignID: &campaign.ID,
	})
	require.NoError(t, err)

	body, sig := signedEvent(session.SessionID, "success")
	for i := 0; i < 3; i++ {
		updated, err := svc.ApplyWebhook(context.Background(), body, sig)
		require.NoError(t, err)
		assert.Equal(t, domain.DonationConfirmed, updated.Status)
	}

	// Replays acknowledged without re-counting the money.
	fresh, err := campaignrepo.New(uow.DB()).Get(context.Background(), campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(50000), fresh.RaisedAmount)
}

func TestApplyWebhook_RefundReversesRaisedAmount(t *testing.T) {
	t.Parallel()
	svc, uow := newTestService(t)
	campaign := seedCampaign(t, uow, domain.CampaignActive)

	_, session, err := svc.CreateIntent(context.Background(), donationsvc.CreateIntentParams{
		Amount:     20000,
		CampaignID: &campaign.ID,
	})
	require.NoError(t, err)

	body, sig := signedEvent(session.SessionID, "success")
	_, err = svc.ApplyWebhook(context.Background(), body, sig)
	require.NoError(t, err)

	body, sig = signedEvent(session.SessionID, "charge_refunded")
	updated, err := svc.ApplyWebhook(context.Background(), body, sig)
	require.NoError(t, err)
	assert.Equal(t, domain.DonationRefunded, updated.Status)

	fresh, err := campaignrepo.New(uow.DB()).Get(context.Background(), campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), fresh.RaisedAmount)
}

func TestApplyWebhook_DeclineAfterConfirmKeepsMoney(t *testing.T) {
	t.Parallel()
	svc, uow := newTestService(t)
	campaign := seedCampaign(t, uow, domain.CampaignActive)

	_, session, err := svc.CreateIntent(context.Background(), donationsvc.CreateIntentParams{
		Amount:     30000,
		CampaignID: &campaign.ID,
	})
	require.NoError(t, err)

	body, sig := signedEvent(session.SessionID, "success")
	_, err = svc.ApplyWebhook(context.Background(), body, sig)
	require.NoError(t, err)

	// A late decline for an already confirmed donation is acknowledged
	// without a transition. Only a refund moves money back out.
	body, sig = signedEvent(session.SessionID, "declined")
	updated, err := svc.ApplyWebhook(context.Background(), body, sig)
	require.NoError(t, err)
	assert.Equal(t, domain.DonationConfirmed, updated.Status)
	require.NotNil(t, updated.ProviderStatus)
	assert.Equal(t, "declined", *updated.ProviderStatus)

	fresh, err := campaignrepo.New(uow.DB()).Get(context.Background(), campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(30000), fresh.RaisedAmount)
}

func TestApplyWebhook_UnrecognizedStatusIsNoOp(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	_, session, err := svc.CreateIntent(context.Background(), donationsvc.CreateIntentParams{Amount: 1000})
	require.NoError(t, err)

	body, sig := signedEvent(session.SessionID, "processing")
	updated, err := svc.ApplyWebhook(context.Background(), body, sig)
	require.NoError(t, err)
	assert.Equal(t, domain.DonationPending, updated.Status)
	require.NotNil(t, updated.ProviderStatus)
	assert.Equal(t, "processing", *updated.ProviderStatus)
}

func TestApplyWebhook_BadSignature(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	_, session, err := svc.CreateIntent(context.Background(), donationsvc.CreateIntentParams{Amount: 1000})
	require.NoError(t, err)

	body, _ := signedEvent(session.SessionID, "success")
	_, err = svc.ApplyWebhook(context.Background(), body, "deadbeef")
	assert.ErrorIs(t, err, domain.ErrWebhookSignatureInvalid)

	_, err = svc.ApplyWebhook(context.Background(), body, "")
	assert.ErrorIs(t, err, domain.ErrWebhookSignatureMissing)
}

type failingReceipts struct{ calls int }

func (f *failingReceipts) SendReceipt(context.Context, *model.Donation) error {
	f.calls++
	return errors.New("smtp unavailable")
}

func TestApplyWebhook_ReceiptFailureDoesNotAffectReconciliation(t *testing.T) {
	t.Parallel()
	_, uow := newTestService(t)
	campaign := seedCampaign(t, uow, domain.CampaignActive)

	discard := slog.New(slog.DiscardHandler)
	provider := dummypayment.New(&config.Payment{
		ProviderName:  "dummy",
		WebhookSecret: webhookSecret,
	}, discard)
	receipts := &failingReceipts{}
	svc := donationsvc.New(uow, provider, receipts, discard)

	_, session, err := svc.CreateIntent(context.Background(), donationsvc.CreateIntentParams{
		Amount:     1000,
		CampaignID: &campaign.ID,
	})
	require.NoError(t, err)

	body, sig := signedEvent(session.SessionID, "success")
	updated, err := svc.ApplyWebhook(context.Background(), body, sig)
	require.NoError(t, err)
	assert.Equal(t, domain.DonationConfirmed, updated.Status)
	assert.Equal(t, 1, receipts.calls)
}

func TestApplyWebhook_UnknownSession(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	body, sig := signedEvent("dummy_card_session_"+uuid.New().String(), "success")
	_, err := svc.ApplyWebhook(context.Background(), body, sig)
	assert.ErrorIs(t, err, domain.ErrDonationNotFound)
}
