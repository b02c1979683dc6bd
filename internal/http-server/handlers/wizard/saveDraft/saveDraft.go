package saveDraft

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"culturehub/internal/lib/api/response"
	"culturehub/internal/lib/auth"
	"culturehub/internal/lib/logger/sl"
	"culturehub/internal/storage"
	"culturehub/internal/wizard"

	"github.com/go-chi/render"
)

type Request struct {
	Form wizard.Form `json:"form"`
}

type SaveResponse struct {
	response.Response
	Step wizard.Step `json:"step"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=DraftSaver
type DraftSaver interface {
	Get(ctx context.Context, userID string) (*wizard.Draft, error)
	Put(userID string, draft wizard.Draft)
}

// New buffers the form of the caller's draft. The form is not validated and
// the step the draft is on is kept; moving between steps goes through the step
// handler.
func New(log *slog.Logger, drafts DraftSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.wizard.saveDraft.New"

		log := log.With(slog.String("op", op))

		session, ok := auth.FromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("not authenticated"))
			return
		}

		var req Request

		if err := render.DecodeJSON(r.Body, &req); err != nil {
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
			render.JSON(w, r, response.Error("failed to save draft"))
			return
		}

		if step == wizard.StepSubmitted {
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, response.Error(wizard.ErrSubmitted.Error()))
			return
		}

		drafts.Put(session.UserID, wizard.Draft{Step: step, Form: req.Form})

		log.Debug("draft buffered", slog.String("user_id", session.UserID), slog.String("step", step.String()))

		render.JSON(w, r, SaveResponse{
			Response: response.OK(),
			Step:     step,
		})
	}
}
