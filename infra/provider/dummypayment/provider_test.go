package dummypayment_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/briskfarm/backend/infra/provider/dummypayment"
	"github.com/briskfarm/backend/pkg/config"
	"github.com/briskfarm/backend/pkg/domain"
	"github.com/briskfarm/backend/pkg/provider/payment"
)

func newProvider(secret string) *dummypayment.Provider {
	cfg := &config.Payment{ProviderName: "dummy", WebhookSecret: secret}
	return dummypayment.New(cfg, slog.New(slog.DiscardHandler))
}

func TestCreateSession_SessionIDFormat(t *testing.T) {
	t.Parallel()
	p := newProvider("secret")
	id := uuid.New()

	sess, err := p.CreateSession(context.Background(), payment.SessionRequest{
		DonationID: id,
		Amount:     100000,
		Currency:   "UGX",
		Method:     domain.MethodMTNMomo,
	})
	require.NoError(t, err)

	assert.Equal(t, "dummy_mtn_momo_session_"+id.String(), sess.SessionID)
	assert.Equal(t, "https://payments.example.local/mtn-momo/checkout/"+sess.SessionID, sess.PaymentURL)
	assert.Equal(t, "mtn_momo", sess.PaymentMethod)
	assert.Equal(t, "dummy", sess.Provider)
}

func TestCreateSession_UnknownMethodFallsBackToCard(t *testing.T) {
	t.Parallel()
	p := newProvider("secret")
	id := uuid.New()

	sess, err := p.CreateSession(context.Background(), payment.SessionRequest{
		DonationID: id,
		Method:     domain.PaymentMethod("carrier_pigeon"),
	})
	require.NoError(t, err)

	assert.Equal(t, "dummy_card_session_"+id.String(), sess.SessionID)
	assert.Contains(t, sess.PaymentURL, "/card/checkout/")
}

func TestVerifySignature(t *testing.T) {
	t.Parallel()
	body := []byte(`{"session_id":"dummy_card_session_x","status":"success"}`)
	good := dummypayment.ComputeSignature("secret", body)

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, newProvider("secret").VerifySignature(body, good))
	})

	t.Run("flipped byte fails", func(t *testing.T) {
		tampered := append([]byte(nil), body...)
		tampered[0] ^= 0x01
		err := newProvider("secret").VerifySignature(tampered, good)
		assert.ErrorIs(t, err, domain.ErrWebhookSignatureInvalid)
	})

	t.Run("wrong secret fails", func(t *testing.T) {
		err := newProvider("other").VerifySignature(body, good)
		assert.ErrorIs(t, err, domain.ErrWebhookSignatureInvalid)
	})

	t.Run("missing header", func(t *testing.T) {
		err := newProvider("secret").VerifySignature(body, "")
		assert.ErrorIs(t, err, domain.ErrWebhookSignatureMissing)
	})

	t.Run("secret not configured", func(t *testing.T) {
		err := newProvider("").VerifySignature(body, good)
		assert.ErrorIs(t, err, domain.ErrWebhookSecretNotConfigured)
	})
}

func TestComputeSignature_IsPure(t *testing.T) {
	t.Parallel()
	body := []byte(`{"a":1}`)
	assert.Equal(t,
		dummypayment.ComputeSignature("s", body),
		dummypayment.ComputeSignature("s", body),
	)
	assert.NotEqual(t,
		dummypayment.ComputeSignature("s", body),
		dummypayment.ComputeSignature("s", []byte(`{"a":2}`)),
	)
}

func TestParseEvent(t *testing.T) {
	t.Parallel()
	p := newProvider("secret")

	t.Run("complete event", func(t *testing.T) {
		event, err := p.ParseEvent([]byte(
			`{"session_id":"sid","status":"success","amount":500,"currency":"UGX","event_type":"payment.succeeded"}`,
		))
		require.NoError(t, err)
		assert.Equal(t, "sid", event.SessionID)
		assert.Equal(t, "success", event.Status)
		assert.Equal(t, int64(500), event.Amount)
		assert.Equal(t, "payment.succeeded", event.EventType)
	})

	t.Run("not json", func(t *testing.T) {
		_, err := p.ParseEvent([]byte("not json"))
		assert.ErrorIs(t, err, domain.ErrWebhookBadPayload)
	})

	t.Run("missing session_id", func(t *testing.T) {
		_, err := p.ParseEvent([]byte(`{"status":"success"}`))
		assert.ErrorIs(t, err, domain.ErrWebhookBadPayload)
	})

	t.Run("missing status", func(t *testing.T) {
		_, err := p.ParseEvent([]byte(`{"session_id":"sid"}`))
		assert.ErrorIs(t, err, domain.ErrWebhookBadPayload)
	})
}
