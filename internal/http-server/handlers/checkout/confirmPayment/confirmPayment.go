package confirmPayment

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"culturehub/internal/checkout"
	"culturehub/internal/lib/api/response"
	"culturehub/internal/lib/auth"
	"culturehub/internal/lib/logger/sl"
	"culturehub/internal/payment/stripe"
	"culturehub/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type ConfirmResponse struct {
	response.Response
	Session *checkout.Session `json:"session,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PaymentConfirmer
type PaymentConfirmer interface {
	ConfirmPayment(ctx context.Context, userID, sessionID string) (*checkout.Session, error)
}

// New checks the payment of the session with the provider after the widget
// reports success. A payment that did not go through keeps the session on the
// payment step and is answered with the session so the reason can be shown.
func New(log *slog.Logger, flow PaymentConfirmer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.checkout.confirmPayment.New"

		log := log.With(slog.String("op", op))

		session, ok := auth.FromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("not authenticated"))
			return
		}

		sessionID := chi.URLParam(r, "id")
		log = log.With(slog.String("session_id", sessionID))

		cs, err := flow.ConfirmPayment(r.Context(), session.UserID, sessionID)
		if err != nil {
			log.Error("failed to confirm payment", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrSessionNotFound), errors.Is(err, checkout.ErrForeignSession):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("checkout session not found"))
				return
			case errors.Is(err, checkout.ErrWrongState), errors.Is(err, storage.ErrSessionLocked),
				errors.Is(err, storage.ErrRefundRequired):
				render.Status(r, http.StatusConflict)
			case errors.Is(err, checkout.ErrPaymentIncomplete):
				render.Status(r, http.StatusPaymentRequired)
			case errors.Is(err, stripe.ErrUnavailable):
				render.Status(r, http.StatusServiceUnavailable)
			default:
				render.Status(r, http.StatusBadGateway)
			}

			render.JSON(w, r, ConfirmResponse{
				Response: response.Error(err.Error()),
				Session:  cs,
			})
			return
		}

		log.Info("payment confirmed",
			slog.String("order_id", cs.OrderID),
			slog.Int("tickets", len(cs.Tickets)),
		)

		responseOK(w, r, cs)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, cs *checkout.Session) {
	render.JSON(w, r, ConfirmResponse{
		Response: response.OK(),
		Session:  cs,
	})
}
