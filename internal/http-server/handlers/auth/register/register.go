package register

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
	Password string `json:"password" validate:"required,min=8,max=72"`
	FullName string `json:"full_name" validate:"required,max=200"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=user organizer"`
}

type TokenResponse struct {
	response.Response
	Token     string              `json:"token"`
	ExpiresAt time.Time           `json:"expires_at"`
	User      *models.UserProfile `json:"user"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserCreator
type UserCreator interface {
	CreateUser(ctx context.Context, user *models.UserProfile) (string, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TokenIssuer
type TokenIssuer interface {
	Issue(user *models.UserProfile) (string, time.Time, error)
}

func New(log *slog.Logger, users UserCreator, issuer TokenIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.register.New"

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

		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			log.Error("failed to hash password", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to register"))
			return
		}

		role := models.RoleUser
		if req.Role != "" {
			role = models.Role(req.Role)
		}

		user := &models.UserProfile{
			Email:        strings.ToLower(strings.TrimSpace(req.Email)),
			PasswordHash: hash,
			FullName:     strings.TrimSpace(req.FullName),
			Role:         role,
		}

		user.ID, err = users.CreateUser(r.Context(), user)
		if err != nil {
			if errors.Is(err, storage.ErrUserExists) {
				log.Info("user already exists")
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("user already exists"))
				return
			}

			log.Error("failed to create user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to register"))
			return
		}

		token, expiresAt, err := issuer.Issue(user)
		if err != nil {
			log.Error("failed to issue token", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to register"))
			return
		}

		log.Info("user registered", slog.String("user_id", user.ID), slog.String("role", string(role)))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, TokenResponse{
			Response:  response.OK(),
			Token:     token,
			ExpiresAt: expiresAt,
			User:      user,
		})
	}
}
