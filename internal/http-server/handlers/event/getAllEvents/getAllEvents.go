package getAllEvents

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"culturehub/internal/lib/api/response"
	"culturehub/internal/lib/logger/sl"
	"culturehub/internal/models"

	"github.com/go-chi/render"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

type EventsResponse struct {
	response.Response
	Events []models.Event `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsGetter
type EventsGetter interface {
	ListEvents(ctx context.Context, filter models.EventFilter) ([]models.Event, error)
}

// New lists approved events. Query parameters: category, city, q, upcoming,
// limit, offset.
func New(log *slog.Logger, eventsGetter EventsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getAllEvents.New"

		log := log.With(slog.String("op", op))

		filter, err := parseFilter(r)
		if err != nil {
			log.Error("invalid query", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid query parameters"))
			return
		}
		filter.Status = models.EventApproved

		events, err := eventsGetter.ListEvents(r.Context(), filter)
		if err != nil {
			log.Error("failed to get events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get events"))
			return
		}

		log.Info("events retrieved successfully", slog.Int("count", len(events)))

		responseOK(w, r, events)
	}
}

func parseFilter(r *http.Request) (models.EventFilter, error) {
	q := r.URL.Query()

	filter := models.EventFilter{
		Category: strings.TrimSpace(q.Get("category")),
		City:     strings.TrimSpace(q.Get("city")),
		Search:   strings.TrimSpace(q.Get("q")),
		Limit:    defaultLimit,
	}

	if v := q.Get("upcoming"); v != "" {
		upcoming, err := strconv.ParseBool(v)
		if err != nil {
			return filter, err
		}
		filter.Upcoming = upcoming
	}

	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit <= 0 {
			return filter, strconv.ErrSyntax
		}
		filter.Limit = min(limit, maxLimit)
	}

	if v := q.Get("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil || offset < 0 {
			return filter, strconv.ErrSyntax
		}
		filter.Offset = offset
	}

	return filter, nil
}

func responseOK(w http.ResponseWriter, r *http.Request, events []models.Event) {
	render.JSON(w, r, EventsResponse{
		Response: response.OK(),
		Events:   events,
	})
}
