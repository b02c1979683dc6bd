package stripe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"culturehub/internal/checkout"

	"github.com/sony/gobreaker"
	stripeapi "github.com/stripe/stripe-go"
	"github.com/stripe/stripe-go/client"
	"github.com/stripe/stripe-go/webhook"
)

const EventPaymentIntentSucceeded = "payment_intent.succeeded"

var (
	ErrUnavailable      = errors.New("payment provider is temporarily unavailable")
	ErrInvalidSignature = errors.New("webhook signature verification failed")
)

type intentsAPI interface {
	New(params *stripeapi.PaymentIntentParams) (*stripeapi.PaymentIntent, error)
	Get(id string, params *stripeapi.PaymentIntentParams) (*stripeapi.PaymentIntent, error)
}

// WebhookEvent is the part of a provider notification the service acts on.
type WebhookEvent struct {
	ID       string
	Type     string
	IntentID string
}

type Gateway struct {
	log           *slog.Logger
	intents       intentsAPI
	breaker       *gobreaker.CircuitBreaker
	webhookSecret string
}

func New(log *slog.Logger, secretKey, webhookSecret string) *Gateway {
	sc := client.New(secretKey, nil)

	return newGateway(log, sc.PaymentIntents, webhookSecret)
}

func newGateway(log *slog.Logger, intents intentsAPI, webhookSecret string) *Gateway {
	log = log.With(slog.String("component", "payment/stripe"))

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "stripe",
		MaxRequests: 5,
		Interval:    60 * time.Second,
		Timeout:     60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Warn("circuit breaker state changed",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Gateway{
		log:           log,
		intents:       intents,
		breaker:       breaker,
		webhookSecret: webhookSecret,
	}
}

func (g *Gateway) CreateIntent(ctx context.Context, req checkout.IntentRequest) (*checkout.Intent, error) {
	const op = "payment.stripe.CreateIntent"

	params := &stripeapi.PaymentIntentParams{
		Amount:   stripeapi.Int64(req.AmountCents),
		Currency: stripeapi.String(req.Currency),
	}
	params.Context = ctx
	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	pi, err := g.call(func() (*stripeapi.PaymentIntent, error) {
		return g.intents.New(params)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	g.log.Info("payment intent created", slog.String("intent_id", pi.ID))

	return toIntent(pi), nil
}

func (g *Gateway) GetIntent(ctx context.Context, id string) (*checkout.Intent, error) {
	const op = "payment.stripe.GetIntent"

	params := &stripeapi.PaymentIntentParams{}
	params.Context = ctx

	pi, err := g.call(func() (*stripeapi.PaymentIntent, error) {
		return g.intents.Get(id, params)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return toIntent(pi), nil
}

// ParseWebhook verifies the signature of a provider notification and
// extracts the payment intent it refers to.
func (g *Gateway) ParseWebhook(payload []byte, signature string) (*WebhookEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, g.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	res := &WebhookEvent{
		ID:   event.ID,
		Type: event.Type,
	}

	if event.Data != nil && len(event.Data.Raw) > 0 {
		var pi stripeapi.PaymentIntent
		if err = json.Unmarshal(event.Data.Raw, &pi); err == nil {
			res.IntentID = pi.ID
		}
	}

	return res, nil
}

func (g *Gateway) call(fn func() (*stripeapi.PaymentIntent, error)) (*stripeapi.PaymentIntent, error) {
	res, err := g.breaker.Execute(func() (interface{}, error) {
		return fn()
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, ErrUnavailable
		}
		return nil, err
	}

	return res.(*stripeapi.PaymentIntent), nil
}

func toIntent(pi *stripeapi.PaymentIntent) *checkout.Intent {
	return &checkout.Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       checkout.IntentStatus(pi.Status),
	}
}
