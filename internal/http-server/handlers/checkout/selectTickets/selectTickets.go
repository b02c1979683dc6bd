package selectTickets

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

type Request struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

type SessionResponse struct {
	response.Response
	Session *checkout.Session `json:"session"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TicketSelector
type TicketSelector interface {
	SelectTickets(ctx context.Context, userID, sessionID string, quantity int) (*checkout.Session, error)
}

func New(log *slog.Logger, flow TicketSelector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.checkout.selectTickets.New"

		log := log.With(slog.String("op", op))

		session, ok := auth.FromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("not authenticated"))
			return
		}

		sessionID := chi.URLParam(r, "id")
		log = log.With(slog.String("session_id", sessionID))

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

		cs, err := flow.SelectTickets(r.Context(), session.UserID, sessionID, req.Quantity)
		if err != nil {
			log.Info("ticket selection rejected", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrSessionNotFound), errors.Is(err, checkout.ErrForeignSession):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("checkout session not found"))
			case errors.Is(err, checkout.ErrInvalidQuantity), errors.Is(err, checkout.ErrTooManyTickets):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(err.Error()))
			case errors.Is(err, checkout.ErrNotEnoughSeats), errors.Is(err, checkout.ErrWrongState):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error(err.Error()))
			default:
				log.Error("failed to select tickets", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to select tickets"))
			}
			return
		}

		log.Info("tickets selected", slog.Int("quantity", cs.Quantity))

		render.JSON(w, r, SessionResponse{
			Response: response.OK(),
			Session:  cs,
		})
	}
}
