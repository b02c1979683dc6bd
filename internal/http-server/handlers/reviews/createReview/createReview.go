package createReview

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"culturehub/internal/lib/api/response"
	"culturehub/internal/lib/auth"
	"culturehub/internal/lib/logger/sl"
	"culturehub/internal/models"
	"culturehub/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment,omitempty" validate:"max=2000"`
}

type ReviewResponse struct {
	response.Response
	ReviewID int `json:"review_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ReviewSaver
type ReviewSaver interface {
	SaveReview(ctx context.Context, review *models.Review) (int, error)
}

// New records the caller's review of an event. A second review by the same
// user replaces the first.
func New(log *slog.Logger, saver ReviewSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.reviews.createReview.New"

		log := log.With(slog.String("op", op))

		session, ok := auth.FromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("not authenticated"))
			return
		}

		eventID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			log.Info("invalid event id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		var req Request

		if err = render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Info("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		id, err := saver.SaveReview(r.Context(), &models.Review{
			EventID: eventID,
			UserID:  session.UserID,
			Rating:  req.Rating,
			Comment: strings.TrimSpace(req.Comment),
		})
		if err != nil {
			if errors.Is(err, storage.ErrEventNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			log.Error("failed to save review", slog.Int("event_id", eventID), sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to save review"))
			return
		}

		log.Info("review saved", slog.Int("event_id", eventID), slog.Int("review_id", id))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, ReviewResponse{
			Response: response.OK(),
			ReviewID: id,
		})
	}
}
