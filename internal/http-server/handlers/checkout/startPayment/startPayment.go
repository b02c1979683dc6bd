package startPayment

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

type SessionResponse struct {
	response.Response
	Session *checkout.Session `json:"session"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PaymentStarter
type PaymentStarter interface {
	StartPayment(ctx context.Context, userID, sessionID string) (*checkout.Session, error)
}

// New holds the seats of the session and answers the client secret of its
// payment intent. Free orders come back already confirmed.
func New(log *slog.Logger, flow PaymentStarter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.checkout.startPayment.New"

		log := log.With(slog.String("op", op))

		session, ok := auth.FromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("not authenticated"))
			return
		}

		sessionID := chi.URLParam(r, "id")
		log = log.With(slog.String("session_id", sessionID))

		cs, err := flow.StartPayment(r.Context(), session.UserID, sessionID)
		if err != nil {
			log.Error("failed to start payment", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrSessionNotFound), errors.Is(err, checkout.ErrForeignSession):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("checkout session not found"))
			case errors.Is(err, checkout.ErrWrongState):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error(err.Error()))
			case errors.Is(err, storage.ErrSessionLocked):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("checkout session is busy, try again"))
			case errors.Is(err, storage.ErrNoAvailableSeats):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("no available seats"))
			case errors.Is(err, storage.ErrEventNotOnSale):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("event is not on sale"))
			case errors.Is(err, stripe.ErrUnavailable):
				render.Status(r, http.StatusServiceUnavailable)
				render.JSON(w, r, response.Error("payment provider is temporarily unavailable"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to start payment"))
			}
			return
		}

		log.Info("payment started",
			slog.String("order_id", cs.OrderID),
			slog.String("state", string(cs.State)),
		)

		render.JSON(w, r, SessionResponse{
			Response: response.OK(),
			Session:  cs,
		})
	}
}
