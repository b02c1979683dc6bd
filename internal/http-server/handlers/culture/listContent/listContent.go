package listContent

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"culturehub/internal/lib/api/response"
	"culturehub/internal/lib/logger/sl"
	"culturehub/internal/models"

	"github.com/go-chi/render"
)

type ContentListResponse struct {
	response.Response
	Content []models.CulturalContent `json:"content"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ContentLister
type ContentLister interface {
	ListContent(ctx context.Context, category, tag string) ([]models.CulturalContent, error)
}

// New lists published articles, optionally narrowed by ?category= and ?tag=.
func New(log *slog.Logger, lister ContentLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.culture.listContent.New"

		log := log.With(slog.String("op", op))

		category := strings.TrimSpace(r.URL.Query().Get("category"))
		tag := strings.TrimSpace(r.URL.Query().Get("tag"))

		content, err := lister.ListContent(r.Context(), category, tag)
		if err != nil {
			log.Error("failed to list content", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get content"))
			return
		}

		render.JSON(w, r, ContentListResponse{
			Response: response.OK(),
			Content:  content,
		})
	}
}
