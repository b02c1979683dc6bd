package startCheckout

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

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	EventID int `json:"event_id" validate:"required,gt=0"`
}

type SessionResponse struct {
	response.Response
	Session *checkout.Session `json:"session"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CheckoutStarter
type CheckoutStarter interface {
	Start(ctx context.Context, userID string, eventID int) (*checkout.Session, error)
}

func New(log *slog.Logger, flow CheckoutStarter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.checkout.startCheckout.New"

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

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		log = log.With(slog.Int("event_id", req.EventID))

		cs, err := flow.Start(r.Context(), session.UserID, req.EventID)
		if err != nil {
			log.Error("failed to start checkout", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.Is(err, storage.ErrEventNotOnSale):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("event is not on sale"))
			case errors.Is(err, storage.ErrNoAvailableSeats):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("no available seats"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to start checkout"))
			}
			return
		}

		log.Info("checkout started", slog.String("session_id", cs.ID), slog.String("user_id", session.UserID))

		render.Status(r, http.StatusCreated)
		responseOK(w, r, cs)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, cs *checkout.Session) {
	render.JSON(w, r, SessionResponse{
		Response: response.OK(),
		Session:  cs,
	})
}
