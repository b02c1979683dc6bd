package removeFavorite

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"culturehub/internal/lib/api/response"
	"culturehub/internal/lib/auth"
	"culturehub/internal/lib/logger/sl"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=FavoriteRemover
type FavoriteRemover interface {
	RemoveFavorite(ctx context.Context, userID string, eventID int) error
}

// New drops an event from the caller's favorites. Removing an event that is
// not a favorite succeeds.
func New(log *slog.Logger, remover FavoriteRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.favorites.removeFavorite.New"

		log := log.With(slog.String("op", op))

		session, ok := auth.FromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("not authenticated"))
			return
		}

		eventID, err := strconv.Atoi(chi.URLParam(r, "eventID"))
		if err != nil {
			log.Info("invalid event id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		if err = remover.RemoveFavorite(r.Context(), session.UserID, eventID); err != nil {
			log.Error("failed to remove favorite", slog.Int("event_id", eventID), sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to remove favorite"))
			return
		}

		render.JSON(w, r, response.OK())
	}
}
