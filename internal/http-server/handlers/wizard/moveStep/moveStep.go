package moveStep

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
	"github.com/go-playground/validator/v10"
)

const (
	directionNext = "next"
	directionBack = "back"
)

type Request struct {
	Direction string      `json:"direction" validate:"required,oneof=next back"`
	Form      wizard.Form `json:"form"`
}

type StepResponse struct {
	response.Response
	Step wizard.Step `json:"step"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=DraftStepper
type DraftStepper interface {
	Get(ctx context.Context, userID string) (*wizard.Draft, error)
	Put(userID string, draft wizard.Draft)
}

// New moves the caller's wizard one step forward or back. Moving forward
// requires the current step of the form to be valid. The form is buffered
// either way, so a rejected step does not lose input.
func New(log *slog.Logger, drafts DraftStepper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.wizard.moveStep.New"

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

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
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

		if req.Direction == directionBack {
			err = wz.Back()
		} else {
			err = wz.Next(&req.Form)
		}

		if !errors.Is(err, wizard.ErrSubmitted) {
			drafts.Put(session.UserID, wizard.Draft{Step: wz.Step(), Form: req.Form})
		}

		if err != nil {
			log.Info("step rejected", slog.String("step", step.String()), sl.Err(err))
			writeStepError(w, r, err)
			return
		}

		log.Info("wizard moved",
			slog.String("from", step.String()),
			slog.String("to", wz.Step().String()),
		)

		render.JSON(w, r, StepResponse{
			Response: response.OK(),
			Step:     wz.Step(),
		})
	}
}

func writeStepError(w http.ResponseWriter, r *http.Request, err error) {
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
	case errors.Is(err, wizard.ErrLastStep), errors.Is(err, wizard.ErrSubmitted):
		render.Status(r, http.StatusConflict)
		render.JSON(w, r, response.Error(err.Error()))
	default:
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to move wizard"))
	}
}
