package stepBack

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"culturehub/internal/checkout"
	"culturehub/internal/lib/api/response"
	"culturehub/internal/lib/auth"
	"culturehub/internal/lib/logger/sl"
	"culturehub/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type SessionResponse struct {
	response.Response
	Session *checkout.Session `json:"session"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CheckoutStepper
type CheckoutStepper interface {
	Back(ctx context.Context, userID, sessionID string) (*checkout.Session, error)
}

func New(log *slog.Logger, flow CheckoutStepper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.checkout.stepBack.New"

		log := log.With(slog.String("op", op))

		session, ok := auth.FromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("not authenticated"))
			return
		}

		sessionID := chi.URLParam(r, "id")
		log = log.With(slog.String("session_id", sessionID))

		cs, err := flow.Back(r.Context(), session.UserID, sessionID)
		if err != nil {
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
			default:
				log.Error("failed to go back", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to go back"))
			}
			return
		}

		log.Info("checkout moved back", slog.String("state", string(cs.State)))

		render.JSON(w, r, SessionResponse{
			Response: response.OK(),
			Session:  cs,
		})
	}
}
