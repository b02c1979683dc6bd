package submitEvent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"culturehub/internal/lib/api/response"
	"culturehub/internal/lib/auth"
	"culturehub/internal/lib/logger/sl"
	"culturehub/internal/models"
	"culturehub/internal/storage"
	"culturehub/internal/wizard"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	Form wizard.Form `json:"form"`
}

type EventResponse struct {
	response.Response
	EventId int `json:"event_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=DraftManager
type DraftManager interface {
	Get(ctx context.Context, userID string) (*wizard.Draft, error)
	Discard(ctx context.Context, userID string) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	CreateEvent(ctx context.Context, event *models.Event, artistIDs []int) (int, error)
}

// New submits the caller's event from the ticketing step. The event is stored
// as pending moderation and the draft is removed.
func New(log *slog.Logger, drafts DraftManager, events EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.wizard.submitEvent.New"

		log := log.With(slog.String("op", op))

		session, ok := auth.FromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("not authenticated"))
			return
		}

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		step := wizard.StepBasicInfo
		current, err := drafts.Get(r.Context(), session.UserID)
		switch {
		case err == nil:
			step = current.Step
		case errors.Is(err, storage.ErrDraftNotFound):
		default:
			log.Error("failed to load draft", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to load draft"))
			return
		}

		wz, err := wizard.Resume(step)
		if err != nil {
			log.Error("draft has an unknown step", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to load draft"))
			return
		}

		eventId, err := wz.Submit(r.Context(), &req.Form, session.UserID, events)
		if err != nil {
			log.Error("failed to submit event", sl.Err(err))
			writeSubmitError(w, r, err)
			return
		}

		if err = drafts.Discard(r.Context(), session.UserID); err != nil {
			log.Error("failed to discard submitted draft", sl.Err(err))
		}

		log.Info("event submitted", slog.Int("id", eventId), slog.String("organizer_id", session.UserID))

		responseOK(w, r, eventId)
	}
}

func writeSubmitError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validateErr validator.ValidationErrors
		ruleErr     *wizard.RuleError
	)

	switch {
	case errors.As(err, &validateErr):
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(validateErr))
	case errors.As(err, &ruleErr):
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error(ruleErr.Error()))
	case errors.Is(err, storage.ErrArtistNotFound):
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("artist not found"))
	case errors.Is(err, wizard.ErrNotLastStep), errors.Is(err, wizard.ErrSubmitted):
		render.Status(r, http.StatusConflict)
		render.JSON(w, r, response.Error(err.Error()))
	default:
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to add event"))
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, eventId int) {
	render.JSON(w, r, EventResponse{
		Response: response.OK(),
		EventId:  eventId,
	})
}
