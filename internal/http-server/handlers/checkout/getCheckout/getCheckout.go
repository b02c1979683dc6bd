package getCheckout

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SessionGetter
type SessionGetter interface {
	Get(ctx context.Context, userID, sessionID string) (*checkout.Session, error)
}

func New(log *slog.Logger, flow SessionGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.checkout.getCheckout.New"

		log := log.With(slog.String("op", op))

		session, ok := auth.FromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("not authenticated"))
			return
		}

		sessionID := chi.URLParam(r, "id")
		log = log.With(slog.String("session_id", sessionID))

		cs, err := flow.Get(r.Context(), session.UserID, sessionID)
		if err != nil {
			if errors.Is(err, storage.ErrSessionNotFound) || errors.Is(err, checkout.ErrForeignSession) {
				log.Info("checkout session not found", sl.Err(err))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("checkout session not found"))
				return
			}

			log.Error("failed to load checkout session", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to load checkout session"))
			return
		}

		render.JSON(w, r, SessionResponse{
			Response: response.OK(),
			Session:  cs,
		})
	}
}
