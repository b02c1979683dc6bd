package deleteEvent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"culturehub/internal/lib/api/response"
	"culturehub/internal/lib/logger/sl"
	"culturehub/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventDeleter
type EventDeleter interface {
	DeleteEvent(ctx context.Context, id int) error
}

func New(log *slog.Logger, deleter EventDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.deleteEvent.New"

		log := log.With(slog.String("op", op))

		eventID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			log.Info("invalid event id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		if err = deleter.DeleteEvent(r.Context(), eventID); err != nil {
			if errors.Is(err, storage.ErrEventNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			log.Error("failed to delete event", slog.Int("event_id", eventID), sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete event"))
			return
		}

		log.Info("event deleted", slog.Int("event_id", eventID))

		render.JSON(w, r, response.OK())
	}
}
