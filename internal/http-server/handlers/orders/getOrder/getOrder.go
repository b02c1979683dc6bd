package getOrder

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

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type OrderResponse struct {
	response.Response
	Order   *models.TicketOrder `json:"order"`
	Tickets []models.Ticket     `json:"tickets"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=OrderGetter
type OrderGetter interface {
	GetOrder(ctx context.Context, id string) (*models.TicketOrder, error)
	ListOrderTickets(ctx context.Context, orderID string) ([]models.Ticket, error)
}

// New answers one of the caller's orders with its tickets. Orders of other
// users are not found.
func New(log *slog.Logger, getter OrderGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.orders.getOrder.New"

		log := log.With(slog.String("op", op))

		session, ok := auth.FromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("not authenticated"))
			return
		}

		orderID := chi.URLParam(r, "id")
		log = log.With(slog.String("order_id", orderID))

		order, err := getter.GetOrder(r.Context(), orderID)
		if err == nil && order.UserID != session.UserID {
			log.Warn("order of another user requested", slog.String("user_id", session.UserID))
			err = storage.ErrOrderNotFound
		}
		if err != nil {
			if errors.Is(err, storage.ErrOrderNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("order not found"))
				return
			}

			log.Error("failed to get order", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get order"))
			return
		}

		tickets, err := getter.ListOrderTickets(r.Context(), order.ID)
		if err != nil {
			log.Error("failed to get tickets", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get order"))
			return
		}

		render.JSON(w, r, OrderResponse{
			Response: response.OK(),
			Order:    order,
			Tickets:  tickets,
		})
	}
}
