package listArtists

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

type ArtistsResponse struct {
	response.Response
	Artists []models.ArtistProfile `json:"artists"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ArtistLister
type ArtistLister interface {
	ListArtists(ctx context.Context, discipline string) ([]models.ArtistProfile, error)
}

func New(log *slog.Logger, lister ArtistLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.artists.listArtists.New"

		log := log.With(slog.String("op", op))

		artists, err := lister.ListArtists(r.Context(), strings.TrimSpace(r.URL.Query().Get("discipline")))
		if err != nil {
			log.Error("failed to list artists", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get artists"))
			return
		}

		render.JSON(w, r, ArtistsResponse{
			Response: response.OK(),
			Artists:  artists,
		})
	}
}
