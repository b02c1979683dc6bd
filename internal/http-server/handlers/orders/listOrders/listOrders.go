package listOrders

import (
	"context"
	"log/slog"
	"net/http"

	"culturehub/internal/lib/api/response"
	"culturehub/internal/lib/auth"
	"culturehub/internal/lib/logger/sl"
	"culturehub/internal/models"

	"github.com/go-chi/render"
)

type OrdersResponse struct {
	response.Response
	Orders []models.TicketOrder `json:"orders"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=OrderLister
type OrderLister interface {
	ListUserOrders(ctx context.Context, userID string) ([]models.TicketOrder, error)
}

// New lists the caller's orders, newest first.
func New(log *slog.Logger, lister OrderLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.orders.listOrders.New"

		log := log.With(slog.String("op", op))

		session, ok := auth.FromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("not authenticated"))
			return
		}

		orders, err := lister.ListUserOrders(r.Context(), session.UserID)
		if err != nil {
			log.Error("failed to list orders", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get orders"))
			return
		}

		render.JSON(w, r, OrdersResponse{
			Response: response.OK(),
			Orders:   orders,
		})
	}
}
