package getContent

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

type ContentResponse struct {
	response.Response
	Content *models.CulturalContent `json:"content"`
	HTML    string                  `json:"html"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ContentGetter
type ContentGetter interface {
	GetContent(ctx context.Context, id int) (*models.CulturalContent, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Renderer
type Renderer interface {
	Render(source string) (string, error)
}

// New answers a published article with its Markdown body rendered to HTML.
// Drafts are not found.
func New(log *slog.Logger, getter ContentGetter, md Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.culture.getContent.New"

		log := log.With(slog.String("op", op))

		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			log.Info("invalid content id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid content id format"))
			return
		}

		content, err := getter.GetContent(r.Context(), id)
		if err == nil && content.Status != models.ContentPublished {
			err = storage.ErrContentNotFound
		}
		if err != nil {
			if errors.Is(err, storage.ErrContentNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("content not found"))
				return
			}

			log.Error("failed to get content", slog.Int("content_id", id), sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get content"))
			return
		}

		html, err := md.Render(content.Body)
		if err != nil {
			log.Error("failed to render content", slog.Int("content_id", id), sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to render content"))
			return
		}

		render.JSON(w, r, ContentResponse{
			Response: response.OK(),
			Content:  content,
			HTML:     html,
		})
	}
}
