package stripe

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"testing"
	"time"

	"culturehub/internal/checkout"
	"culturehub/internal/lib/logger/handlers/slogdiscard"

	stripeapi "github.com/stripe/stripe-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIntents struct {
	created []*stripeapi.PaymentIntentParams
	status  stripeapi.PaymentIntentStatus
	err     error
}

func (f *fakeIntents) New(params *stripeapi.PaymentIntentParams) (*stripeapi.PaymentIntent, error) {
	f.created = append(f.created, params)
	if f.err != nil {
		return nil, f.err
	}
	return &stripeapi.PaymentIntent{
		ID:           "pi_123",
		ClientSecret: "pi_123_secret",
		Status:       stripeapi.PaymentIntentStatusRequiresPaymentMethod,
	}, nil
}

func (f *fakeIntents) Get(id string, _ *stripeapi.PaymentIntentParams) (*stripeapi.PaymentIntent, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &stripeapi.PaymentIntent{ID: id, Status: f.status}, nil
}

func TestCreateIntent(t *testing.T) {
	t.Parallel()

	fake := &fakeIntents{}
	g := newGateway(slogdiscard.NewDiscardLogger(), fake, "whsec")

	intent, err := g.CreateIntent(context.Background(), checkout.IntentRequest{
		AmountCents:    4500,
		Currency:       "eur",
		IdempotencyKey: "order:abc",
		Metadata:       map[string]string{"order_id": "abc"},
	})
	require.NoError(t, err)

	assert.Equal(t, "pi_123", intent.ID)
	assert.Equal(t, "pi_123_secret", intent.ClientSecret)
	assert.Equal(t, checkout.IntentRequiresPaymentMethod, intent.Status)

	require.Len(t, fake.created, 1)
	params := fake.created[0]
	assert.Equal(t, int64(4500), *params.Amount)
	assert.Equal(t, "eur", *params.Currency)
	require.NotNil(t, params.IdempotencyKey)
	assert.Equal(t, "order:abc", *params.IdempotencyKey)
	assert.Equal(t, "abc", params.Metadata["order_id"])
}

func TestGetIntent(t *testing.T) {
	t.Parallel()

	fake := &fakeIntents{status: stripeapi.PaymentIntentStatusSucceeded}
	g := newGateway(slogdiscard.NewDiscardLogger(), fake, "whsec")

	intent, err := g.GetIntent(context.Background(), "pi_9")
	require.NoError(t, err)

	assert.Equal(t, "pi_9", intent.ID)
	assert.Equal(t, checkout.IntentSucceeded, intent.Status)
}

func TestBreakerOpensAfterFailures(t *testing.T) {
	t.Parallel()

	apiErr := errors.New("connection reset")
	fake := &fakeIntents{err: apiErr}
	g := newGateway(slogdiscard.NewDiscardLogger(), fake, "whsec")

	for i := 0; i < 3; i++ {
		_, err := g.GetIntent(context.Background(), "pi_1")
		require.ErrorIs(t, err, apiErr)
	}

	_, err := g.GetIntent(context.Background(), "pi_1")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestParseWebhook(t *testing.T) {
	t.Parallel()

	const secret = "whsec_test"
	g := newGateway(slogdiscard.NewDiscardLogger(), &fakeIntents{}, secret)

	payload := []byte(`{
		"id": "evt_1",
		"object": "event",
		"type": "payment_intent.succeeded",
		"data": {"object": {"id": "pi_42", "object": "payment_intent", "status": "succeeded"}}
	}`)

	t.Run("valid signature", func(t *testing.T) {
		event, err := g.ParseWebhook(payload, sign(payload, secret, time.Now()))
		require.NoError(t, err)

		assert.Equal(t, "evt_1", event.ID)
		assert.Equal(t, EventPaymentIntentSucceeded, event.Type)
		assert.Equal(t, "pi_42", event.IntentID)
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, err := g.ParseWebhook(payload, sign(payload, "other", time.Now()))
		assert.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("stale timestamp", func(t *testing.T) {
		_, err := g.ParseWebhook(payload, sign(payload, secret, time.Now().Add(-time.Hour)))
		assert.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("missing header", func(t *testing.T) {
		_, err := g.ParseWebhook(payload, "")
		assert.ErrorIs(t, err, ErrInvalidSignature)
	})
}

func sign(payload []byte, secret string, at time.Time) string {
	ts := at.Unix()

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(fmt.Sprintf("%d.", ts)))
	mac.Write(payload)

	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}
