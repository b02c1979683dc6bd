package createArtist

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"culturehub/internal/lib/api/response"
	"culturehub/internal/lib/logger/sl"
	"culturehub/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	Name       string  `json:"name" validate:"required,max=200"`
	Discipline string  `json:"discipline" validate:"required,max=64"`
	Bio        string  `json:"bio,omitempty" validate:"max=5000"`
	ImageURL   string  `json:"image_url,omitempty" validate:"omitempty,url"`
	UserID     *string `json:"user_id,omitempty" validate:"omitempty,uuid"`
}

type ArtistResponse struct {
	response.Response
	ArtistID int `json:"artist_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ArtistCreator
type ArtistCreator interface {
	CreateArtist(ctx context.Context, artist *models.ArtistProfile) (int, error)
}

func New(log *slog.Logger, creator ArtistCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.createArtist.New"

		log := log.With(slog.String("op", op))

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

		id, err := creator.CreateArtist(r.Context(), &models.ArtistProfile{
			UserID:     req.UserID,
			Name:       strings.TrimSpace(req.Name),
			Discipline: strings.ToLower(strings.TrimSpace(req.Discipline)),
			Bio:        req.Bio,
			ImageURL:   req.ImageURL,
		})
		if err != nil {
			log.Error("failed to create artist", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create artist"))
			return
		}

		log.Info("artist created", slog.Int("artist_id", id))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, ArtistResponse{
			Response: response.OK(),
			ArtistID: id,
		})
	}
}
