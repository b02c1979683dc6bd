package deleteDraft

import (
	"context"
	"log/slog"
	"net/http"

	"culturehub/internal/lib/api/response"
	"culturehub/internal/lib/auth"
	"culturehub/internal/lib/logger/sl"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=DraftDiscarder
type DraftDiscarder interface {
	Discard(ctx context.Context, userID string) error
}

func New(log *slog.Logger, drafts DraftDiscarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.wizard.deleteDraft.New"

		log := log.With(slog.String("op", op))

		session, ok := auth.FromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("not authenticated"))
			return
		}

		if err := drafts.Discard(r.Context(), session.UserID); err != nil {
			log.Error("failed to discard draft", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to discard draft"))
			return
		}

		log.Info("draft discarded", slog.String("user_id", session.UserID))

		render.JSON(w, r, response.OK())
	}
}
