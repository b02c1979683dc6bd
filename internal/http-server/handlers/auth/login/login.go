package login

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"culturehub/internal/lib/api/response"
	"culturehub/internal/lib/auth"
	"culturehub/internal/lib/logger/sl"
	"culturehub/internal/models"
	"culturehub/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

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

// New exchanges e-mail and password for a bearer token. Unknown e-mails and
// wrong passwords get the same answer.
func New(log *slog.Logger, users UserProvider, issuer TokenIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.login.New"

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

		user, err := users.GetUserByEmail(r.Context(), strings.ToLower(strings.TrimSpace(req.Email)))
		if err != nil {
			if errors.Is(err, storage.ErrUserNotFound) {
				log.Info("unknown email")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid email or password"))
				return
			}

			log.Error("failed to get user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to log in"))
			return
		}

		if err = auth.CheckPassword(user.PasswordHash, req.Password); err != nil {
			log.Info("wrong password", slog.String("user_id", user.ID))
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("invalid email or password"))
			return
		}

		token, expiresAt, err := issuer.Issue(user)
		if err != nil {
			log.Error("failed to issue token", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to log in"))
			return
		}

		log.Info("user logged in", slog.String("user_id", user.ID))

		render.JSON(w, r, TokenResponse{
			Response:  response.OK(),
			Token:     token,
			ExpiresAt: expiresAt,
			User:      user,
		})
	}
}
