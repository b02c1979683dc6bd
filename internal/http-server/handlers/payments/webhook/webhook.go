package webhook

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"culturehub/internal/lib/api/response"
	"culturehub/internal/lib/logger/sl"
	"culturehub/internal/payment/stripe"
	"culturehub/internal/storage"

	"github.com/go-chi/render"
)

const (
	signatureHeader = "Stripe-Signature"
	maxBodyBytes    = 64 << 10
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=WebhookParser
type WebhookParser interface {
	ParseWebhook(payload []byte, signature string) (*stripe.WebhookEvent, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PaymentSettler
type PaymentSettler interface {
	PaymentSucceeded(ctx context.Context, intentID string) error
}

// New receives provider notifications. Succeeded payment intents settle the
// matching order; every other event type is acknowledged and ignored.
func New(log *slog.Logger, parser WebhookParser, settler PaymentSettler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.payments.webhook.New"

		log := log.With(slog.String("op", op))

		payload, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
		if err != nil {
			log.Error("failed to read webhook body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to read request"))
			return
		}

		event, err := parser.ParseWebhook(payload, r.Header.Get(signatureHeader))
		if err != nil {
			log.Warn("webhook rejected", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid signature"))
			return
		}

		log = log.With(slog.String("event_id", event.ID), slog.String("type", event.Type))

		if event.Type != stripe.EventPaymentIntentSucceeded || event.IntentID == "" {
			log.Debug("webhook event ignored")
			render.JSON(w, r, response.OK())
			return
		}

		err = settler.PaymentSucceeded(r.Context(), event.IntentID)
		switch {
		case err == nil:
			log.Info("order settled from webhook", slog.String("intent_id", event.IntentID))
		case errors.Is(err, storage.ErrOrderNotFound), errors.Is(err, storage.ErrOrderNotPending):
			log.Warn("webhook intent has no payable order", slog.String("intent_id", event.IntentID), sl.Err(err))
		case errors.Is(err, storage.ErrRefundRequired):
			// a redelivery cannot bring the seats back, the order stays flagged
			log.Error("paid order needs a refund", slog.String("intent_id", event.IntentID), sl.Err(err))
		default:
			log.Error("failed to settle order", slog.String("intent_id", event.IntentID), sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to settle order"))
			return
		}

		render.JSON(w, r, response.OK())
	}
}
