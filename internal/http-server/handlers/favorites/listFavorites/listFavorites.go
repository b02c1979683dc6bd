package listFavorites

import (
	"context"
	"log/slog"
	"net/http"

	"culturehub/internal/lib/api/response"
	"culturehub/internal/lib/auth"
	"culturehub/internal/lib/logger/sl"
	"culturehub/internal/models"

	"github.com/go-chi/render"
)

type FavoritesResponse struct {
	response.Response
	Events []models.Event `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=FavoriteLister
type FavoriteLister interface {
	ListFavorites(ctx context.Context, userID string) ([]models.Event, error)
}

func New(log *slog.Logger, lister FavoriteLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.favorites.listFavorites.New"

		log := log.With(slog.String("op", op))

		session, ok := auth.FromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("not authenticated"))
			return
		}

		events, err := lister.ListFavorites(r.Context(), session.UserID)
		if err != nil {
			log.Error("failed to list favorites", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get favorites"))
			return
		}

		render.JSON(w, r, FavoritesResponse{
			Response: response.OK(),
			Events:   events,
		})
	}
}
