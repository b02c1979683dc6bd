package getArtist

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

type ArtistResponse struct {
	response.Response
	Artist *models.ArtistDetails `json:"artist"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ArtistGetter
type ArtistGetter interface {
	GetArtist(ctx context.Context, id int) (*models.ArtistDetails, error)
}

// New answers an artist profile with the approved upcoming events it plays.
func New(log *slog.Logger, getter ArtistGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.artists.getArtist.New"

		log := log.With(slog.String("op", op))

		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			log.Info("invalid artist id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid artist id format"))
			return
		}

		artist, err := getter.GetArtist(r.Context(), id)
		if err != nil {
			if errors.Is(err, storage.ErrArtistNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("artist not found"))
				return
			}

			log.Error("failed to get artist", slog.Int("artist_id", id), sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get artist"))
			return
		}

		render.JSON(w, r, ArtistResponse{
			Response: response.OK(),
			Artist:   artist,
		})
	}
}
