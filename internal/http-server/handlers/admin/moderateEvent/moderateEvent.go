package moderateEvent

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

const (
	decisionApprove = "approve"
	decisionReject  = "reject"
)

type Request struct {
	Decision string `json:"decision" validate:"required,oneof=approve reject"`
	Reason   string `json:"reason,omitempty" validate:"max=500"`
}

type ModerationResponse struct {
	response.Response
	EventID int                `json:"event_id"`
	Status  models.EventStatus `json:"event_status"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventModerator
type EventModerator interface {
	ModerateEvent(ctx context.Context, id int, status models.EventStatus, reason string) error
}

// New approves or rejects a submitted event. Rejections need a reason the
// organizer can read.
func New(log *slog.Logger, moderator EventModerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.moderateEvent.New"

		log := log.With(slog.String("op", op))

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

		reason := strings.TrimSpace(req.Reason)
		status := models.EventApproved
		if req.Decision == decisionReject {
			if reason == "" {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("rejection reason is required"))
				return
			}
			status = models.EventRejected
		}

		if err = moderator.ModerateEvent(r.Context(), eventID, status, reason); err != nil {
			if errors.Is(err, storage.ErrEventNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			log.Error("failed to moderate event", slog.Int("event_id", eventID), sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to moderate event"))
			return
		}

		moderatorID := ""
		if session, ok := auth.FromContext(r.Context()); ok {
			moderatorID = session.UserID
		}

		log.Info("event moderated",
			slog.Int("event_id", eventID),
			slog.String("status", string(status)),
			slog.String("moderator_id", moderatorID),
		)

		render.JSON(w, r, ModerationResponse{
			Response: response.OK(),
			EventID:  eventID,
			Status:   status,
		})
	}
}
