package getDraft

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

type DraftResponse struct {
	response.Response
	Draft *wizard.Draft `json:"draft"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=DraftGetter
type DraftGetter interface {
	Get(ctx context.Context, userID string) (*wizard.Draft, error)
}

func New(log *slog.Logger, drafts DraftGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.wizard.getDraft.New"

		log := log.With(slog.String("op", op))

		session, ok := auth.FromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("not authenticated"))
			return
		}

		draft, err := drafts.Get(r.Context(), session.UserID)
		if err != nil {
			if errors.Is(err, storage.ErrDraftNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("draft not found"))
				return
			}

			log.Error("failed to load draft", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to load draft"))
			return
		}

		render.JSON(w, r, DraftResponse{
			Response: response.OK(),
			Draft:    draft,
		})
	}
}
