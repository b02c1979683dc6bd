package getMe

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"culturehub/internal/lib/api/response"
	"culturehub/internal/lib/auth"
	"culturehub/internal/lib/logger/sl"
	"culturehub/internal/models"
	"culturehub/internal/storage"

	"github.com/go-chi/render"
)

type ProfileResponse struct {
	response.Response
	User *models.UserProfile `json:"user"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserGetter
type UserGetter interface {
	GetUser(ctx context.Context, id string) (*models.UserProfile, error)
}

func New(log *slog.Logger, users UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.getMe.New"

		log := log.With(slog.String("op", op))

		session, ok := auth.FromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("not authenticated"))
			return
		}

		user, err := users.GetUser(r.Context(), session.UserID)
		if err != nil {
			if errors.Is(err, storage.ErrUserNotFound) {
				log.Warn("token for a deleted user", slog.String("user_id", session.UserID))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("not authenticated"))
				return
			}

			log.Error("failed to get user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get profile"))
			return
		}

		render.JSON(w, r, ProfileResponse{
			Response: response.OK(),
			User:     user,
		})
	}
}
