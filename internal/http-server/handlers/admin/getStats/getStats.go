package getStats

import (
	"context"
	"log/slog"
	"net/http"

	"culturehub/internal/lib/api/response"
	"culturehub/internal/lib/logger/sl"
	"culturehub/internal/models"

	"github.com/go-chi/render"
)

type StatsResponse struct {
	response.Response
	Stats *models.DashboardStats `json:"stats"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StatsGetter
type StatsGetter interface {
	Stats(ctx context.Context) (*models.DashboardStats, error)
}

// New answers the counters shown on the admin dashboard.
func New(log *slog.Logger, getter StatsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.getStats.New"

		log := log.With(slog.String("op", op))

		stats, err := getter.Stats(r.Context())
		if err != nil {
			log.Error("failed to get stats", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get stats"))
			return
		}

		render.JSON(w, r, StatsResponse{
			Response: response.OK(),
			Stats:    stats,
		})
	}
}
