package listEvents

import (
	"context"
	"log/slog"
	"net/http"

	"culturehub/internal/lib/api/response"
	"culturehub/internal/lib/logger/sl"
	"culturehub/internal/models"

	"github.com/go-chi/render"
)

const pageSize = 100

type EventsResponse struct {
	response.Response
	Events []models.Event `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsGetter
type EventsGetter interface {
	ListEvents(ctx context.Context, filter models.EventFilter) ([]models.Event, error)
}

// New is the moderation queue: events in ?status= (pending by default).
func New(log *slog.Logger, eventsGetter EventsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.listEvents.New"

		log := log.With(slog.String("op", op))

		status := models.EventStatus(r.URL.Query().Get("status"))
		switch status {
		case "":
			status = models.EventPending
		case models.EventPending, models.EventApproved, models.EventRejected:
		default:
			log.Info("unknown status filter", slog.String("status", string(status)))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("status must be one of [pending approved rejected]"))
			return
		}

		events, err := eventsGetter.ListEvents(r.Context(), models.EventFilter{
			Status: status,
			Limit:  pageSize,
		})
		if err != nil {
			log.Error("failed to get events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get events"))
			return
		}

		render.JSON(w, r, EventsResponse{
			Response: response.OK(),
			Events:   events,
		})
	}
}
