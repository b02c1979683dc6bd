package getEventInfo

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"culturehub/internal/lib/api/response"
	"culturehub/internal/lib/logger/sl"
	"culturehub/internal/models"
	"culturehub/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type EventInfoResponse struct {
	response.Response
	Event *models.EventDetails `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventGetter
type EventGetter interface {
	GetEventDetails(ctx context.Context, id int) (*models.EventDetails, error)
}

// New answers the detail page of an approved event: the event, its artists,
// rating summary and remaining seats.
func New(log *slog.Logger, info EventGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getEventInfo.New"

		log := log.With(slog.String("op", op))

		eventIdStr := chi.URLParam(r, "id")
		if eventIdStr == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		eventID, err := strconv.Atoi(eventIdStr)
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		log = log.With(slog.Int("event_id", eventID))

		event, err := info.GetEventDetails(r.Context(), eventID)
		if err != nil {
			if errors.Is(err, storage.ErrEventNotFound) {
				log.Info("event not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			log.Error("failed to get event information", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get event information"))
			return
		}

		if event.Status != models.EventApproved {
			log.Info("event is not public", slog.String("status", string(event.Status)))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("event not found"))
			return
		}

		log.Info("event info successfully received")

		responseOK(w, r, event)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, event *models.EventDetails) {
	render.JSON(w, r, EventInfoResponse{
		Response: response.OK(),
		Event:    event,
	})
}
