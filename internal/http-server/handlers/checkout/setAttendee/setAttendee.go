package setAttendee

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
	"github.com/go-playground/validator/v10"
)

type SessionResponse struct {
	response.Response
	Session *checkout.Session `json:"session"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AttendeeSetter
type AttendeeSetter interface {
	SetAttendee(ctx context.Context, userID, sessionID string, attendee checkout.Attendee) (*checkout.Session, error)
}

func New(log *slog.Logger, flow AttendeeSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.checkout.setAttendee.New"

		log := log.With(slog.String("op", op))

		session, ok := auth.FromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("not authenticated"))
			return
		}

		sessionID := chi.URLParam(r, "id")
		log = log.With(slog.String("session_id", sessionID))

		var req checkout.Attendee

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		cs, err := flow.SetAttendee(r.Context(), session.UserID, sessionID, req)
		if err != nil {
			var validateErr validator.ValidationErrors

			switch {
			case errors.As(err, &validateErr):
				log.Info("invalid attendee", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
			case errors.Is(err, storage.ErrSessionNotFound), errors.Is(err, checkout.ErrForeignSession):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("checkout session not found"))
			case errors.Is(err, checkout.ErrWrongState):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error(err.Error()))
			default:
				log.Error("failed to set attendee", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to set attendee"))
			}
			return
		}

		log.Info("attendee captured")

		render.JSON(w, r, SessionResponse{
			Response: response.OK(),
			Session:  cs,
		})
	}
}
