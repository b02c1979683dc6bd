package addFavorite

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"culturehub/internal/lib/api/response"
	"culturehub/internal/lib/auth"
	"culturehub/internal/lib/logger/sl"
	"culturehub/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=FavoriteAdder
type FavoriteAdder interface {
	AddFavorite(ctx context.Context, userID string, eventID int) error
}

// New marks an event as a favorite of the caller. Adding it twice is not an
// error.
func New(log *slog.Logger, adder FavoriteAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.favorites.addFavorite.New"

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

		if err = adder.AddFavorite(r.Context(), session.UserID, eventID); err != nil {
			if errors.Is(err, storage.ErrEventNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			log.Error("failed to add favorite", slog.Int("event_id", eventID), sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to add favorite"))
			return
		}

		render.JSON(w, r, response.OK())
	}
}
