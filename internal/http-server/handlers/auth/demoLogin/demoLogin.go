package demoLogin

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"culturehub/internal/lib/api/response"
	"culturehub/internal/lib/logger/sl"
	"culturehub/internal/models"
	"culturehub/internal/storage"

	"github.com/go-chi/render"
)

type TokenResponse struct {
	response.Response
	Token     string              `json:"token"`
	ExpiresAt time.Time           `json:"expires_at"`
	User      *models.UserProfile `json:"user"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserProvider
type UserProvider interface {
	GetUserByEmail(ctx context.Context, email string) (*models.UserProfile, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TokenIssuer
type TokenIssuer interface {
	Issue(user *models.UserProfile) (string, time.Time, error)
}

// New signs in as the configured demo account without a password. An empty
// demoEmail turns the route off.
func New(log *slog.Logger, demoEmail string, users UserProvider, issuer TokenIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.demoLogin.New"

		log := log.With(slog.String("op", op))

		if demoEmail == "" {
			log.Info("demo login is disabled")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("demo login is disabled"))
			return
		}

		user, err := users.GetUserByEmail(r.Context(), demoEmail)
		if err != nil {
			if errors.Is(err, storage.ErrUserNotFound) {
				log.Warn("demo user does not exist", slog.String("email", demoEmail))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("demo login is disabled"))
				return
			}

			log.Error("failed to get demo user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to log in"))
			return
		}

		token, expiresAt, err := issuer.Issue(user)
		if err != nil {
			log.Error("failed to issue token", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to log in"))
			return
		}

		log.Info("demo user logged in", slog.String("user_id", user.ID))

		render.JSON(w, r, TokenResponse{
			Response:  response.OK(),
			Token:     token,
			ExpiresAt: expiresAt,
			User:      user,
		})
	}
}
