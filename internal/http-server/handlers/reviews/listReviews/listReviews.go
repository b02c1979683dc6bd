package listReviews

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"culturehub/internal/lib/api/response"
	"culturehub/internal/lib/logger/sl"
	"culturehub/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type ReviewsResponse struct {
	response.Response
	Reviews []models.Review `json:"reviews"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ReviewLister
type ReviewLister interface {
	ListReviews(ctx context.Context, eventID int) ([]models.Review, error)
}

func New(log *slog.Logger, lister ReviewLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.reviews.listReviews.New"

		log := log.With(slog.String("op", op))

		eventID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			log.Info("invalid event id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		reviews, err := lister.ListReviews(r.Context(), eventID)
		if err != nil {
			log.Error("failed to list reviews", slog.Int("event_id", eventID), sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get reviews"))
			return
		}

		render.JSON(w, r, ReviewsResponse{
			Response: response.OK(),
			Reviews:  reviews,
		})
	}
}
