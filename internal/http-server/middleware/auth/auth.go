package auth

import (
	"log/slog"
	"net/http"
	"strings"

	"culturehub/internal/lib/api/response"
	"culturehub/internal/lib/auth"
	"culturehub/internal/lib/logger/sl"
	"culturehub/internal/models"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TokenVerifier
type TokenVerifier interface {
	Verify(token string) (*auth.Session, error)
}

// New rejects requests without a valid bearer token and stores the session in
// the request context.
func New(log *slog.Logger, verifier TokenVerifier) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(
			slog.String("component", "middleware/auth"),
		)

		fn := func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("missing bearer token"))

				return
			}

			session, err := verifier.Verify(strings.TrimSpace(token))
			if err != nil {
				log.Info("token rejected", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid token"))

				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithSession(r.Context(), session)))
		}

		return http.HandlerFunc(fn)
	}
}

// RequireRole must run after New.
func RequireRole(roles ...models.Role) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			session, ok := auth.FromContext(r.Context())
			if !ok {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("not authenticated"))

				return
			}

			if !session.HasRole(roles...) {
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("forbidden"))

				return
			}

			next.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}
