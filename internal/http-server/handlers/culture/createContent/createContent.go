package createContent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"culturehub/internal/lib/api/response"
	"culturehub/internal/lib/auth"
	"culturehub/internal/lib/logger/sl"
	"culturehub/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	Title    string   `json:"title" validate:"required,max=200"`
	Body     string   `json:"body" validate:"required"`
	Category string   `json:"category" validate:"required,max=64"`
	Tags     []string `json:"tags,omitempty" validate:"max=10,dive,required,max=32"`
	Publish  bool     `json:"publish"`
}

type ContentResponse struct {
	response.Response
	ContentID int                  `json:"content_id"`
	Status    models.ContentStatus `json:"content_status"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ContentCreator
type ContentCreator interface {
	CreateContent(ctx context.Context, content *models.CulturalContent) (int, error)
}

// New stores an article written by the caller. It stays a draft unless
// publish is set.
func New(log *slog.Logger, creator ContentCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.culture.createContent.New"

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

			log.Info("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		status := models.ContentDraft
		if req.Publish {
			status = models.ContentPublished
		}

		tags := make([]string, 0, len(req.Tags))
		for _, tag := range req.Tags {
			tags = append(tags, strings.ToLower(strings.TrimSpace(tag)))
		}

		id, err := creator.CreateContent(r.Context(), &models.CulturalContent{
			AuthorID: session.UserID,
			Title:    strings.TrimSpace(req.Title),
			Body:     req.Body,
			Category: strings.TrimSpace(req.Category),
			Tags:     tags,
			Status:   status,
		})
		if err != nil {
			log.Error("failed to create content", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create content"))
			return
		}

		log.Info("content created", slog.Int("content_id", id), slog.String("status", string(status)))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, ContentResponse{
			Response:  response.OK(),
			ContentID: id,
			Status:    status,
		})
	}
}
