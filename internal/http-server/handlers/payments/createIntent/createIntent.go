package createIntent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"culturehub/internal/checkout"
	"culturehub/internal/lib/api/response"
	"culturehub/internal/lib/auth"
	"culturehub/internal/lib/logger/sl"
	"culturehub/internal/payment/stripe"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

const idempotencyHeader = "Idempotency-Key"

type Request struct {
	AmountCents int64             `json:"amount_cents" validate:"required,gt=0"`
	Currency    string            `json:"currency,omitempty" validate:"omitempty,len=3"`
	Metadata    map[string]string `json:"metadata,omitempty" validate:"max=20"`
}

type IntentResponse struct {
	response.Response
	IntentID     string `json:"intent_id"`
	ClientSecret string `json:"client_secret"`
	IntentStatus string `json:"intent_status"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=IntentCreator
type IntentCreator interface {
	CreateIntent(ctx context.Context, req checkout.IntentRequest) (*checkout.Intent, error)
}

// New creates a payment intent for an amount and answers its client secret.
// An Idempotency-Key header is forwarded to the provider.
func New(log *slog.Logger, defaultCurrency string, intents IntentCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.payments.createIntent.New"

		log := log.With(slog.String("op", op))

		session, ok := auth.FromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("not authenticated"))
			return
		}

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		currency := strings.ToLower(req.Currency)
		if currency == "" {
			currency = defaultCurrency
		}

		metadata := make(map[string]string, len(req.Metadata)+1)
		for k, v := range req.Metadata {
			metadata[k] = v
		}
		metadata["user_id"] = session.UserID

		intent, err := intents.CreateIntent(r.Context(), checkout.IntentRequest{
			AmountCents:    req.AmountCents,
			Currency:       currency,
			IdempotencyKey: r.Header.Get(idempotencyHeader),
			Metadata:       metadata,
		})
		if err != nil {
			log.Error("failed to create payment intent", sl.Err(err))

			if errors.Is(err, stripe.ErrUnavailable) {
				render.Status(r, http.StatusServiceUnavailable)
				render.JSON(w, r, response.Error("payment provider is temporarily unavailable"))
				return
			}

			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("failed to create payment intent"))
			return
		}

		log.Info("payment intent created", slog.String("intent_id", intent.ID), slog.Int64("amount_cents", req.AmountCents))

		render.JSON(w, r, IntentResponse{
			Response:     response.OK(),
			IntentID:     intent.ID,
			ClientSecret: intent.ClientSecret,
			IntentStatus: string(intent.Status),
		})
	}
}
