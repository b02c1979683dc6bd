package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"culturehub/internal/models"
	"culturehub/internal/storage"

	"github.com/google/uuid"
)

const orderColumns = `
	id, event_id, user_id, quantity, unit_price_cents, total_cents, currency,
	attendee_name, attendee_email, attendee_phone, payment_intent_id, status,
	created_at, paid_at`

// CreatePendingOrder holds order.Quantity seats of the event until the order
// is paid or cancelled.
func (s *Storage) CreatePendingOrder(ctx context.Context, order *models.TicketOrder) (string, error) {
	const op = "storage.postgres.CreatePendingOrder"

	tx, err := s.DB.BeginTxx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	var (
		capacity, sold int
		status         string
	)
	err = tx.QueryRowContext(ctx, `
		SELECT capacity, sold, status
		FROM events
		WHERE id = $1
		FOR UPDATE`, order.EventID).Scan(&capacity, &sold, &status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", storage.ErrEventNotFound
		}
		return "", fmt.Errorf("%s: failed to get event seats info: %w", op, err)
	}

	if models.EventStatus(status) != models.EventApproved {
		return "", storage.ErrEventNotOnSale
	}

	if sold+order.Quantity > capacity {
		return "", storage.ErrNoAvailableSeats
	}

	if order.ID == "" {
		order.ID = uuid.NewString()
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO ticket_orders (
			id, event_id, user_id, quantity, unit_price_cents, total_cents, currency,
			attendee_name, attendee_email, attendee_phone, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 'pending')`,
		order.ID,
		order.EventID,
		order.UserID,
		order.Quantity,
		order.UnitPriceCents,
		order.TotalCents,
		order.Currency,
		order.AttendeeName,
		order.AttendeeEmail,
		order.AttendeePhone,
	)
	if err != nil {
		return "", fmt.Errorf("%s: failed to create order: %w", op, err)
	}

	_, err = tx.ExecContext(ctx, `UPDATE events SET sold = sold + $1 WHERE id = $2`, order.Quantity, order.EventID)
	if err != nil {
		return "", fmt.Errorf("%s: failed to hold seats: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return "", fmt.Errorf("%s: failed to commit: %w", op, err)
	}

	order.Status = models.OrderPending

	return order.ID, nil
}

func (s *Storage) SetOrderPaymentIntent(ctx context.Context, orderID, intentID string) error {
	const op = "storage.postgres.SetOrderPaymentIntent"

	res, err := s.DB.ExecContext(ctx, `
		UPDATE ticket_orders
		SET payment_intent_id = $1
		WHERE id = $2 AND status = 'pending'`, intentID, orderID)
	if err != nil {
		return fmt.Errorf("%s: failed to set payment intent: %w", op, err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return storage.ErrOrderNotPending
	}

	return nil
}

func (s *Storage) GetOrder(ctx context.Context, id string) (*models.TicketOrder, error) {
	return s.getOrder(ctx, "storage.postgres.GetOrder", `WHERE id = $1`, id)
}

func (s *Storage) GetOrderByPaymentIntent(ctx context.Context, intentID string) (*models.TicketOrder, error) {
	return s.getOrder(ctx, "storage.postgres.GetOrderByPaymentIntent", `WHERE payment_intent_id = $1`, intentID)
}

func (s *Storage) getOrder(ctx context.Context, op, where string, arg any) (*models.TicketOrder, error) {
	var order models.TicketOrder
	err := s.DB.GetContext(ctx, &order, `SELECT `+orderColumns+` FROM ticket_orders `+where, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrOrderNotFound
		}
		return nil, fmt.Errorf("%s: failed to get order: %w", op, err)
	}

	return &order, nil
}

// MarkOrderPaid issues one ticket per seat and reports whether this call moved
// the order to paid. Paying an already paid order returns its existing tickets.
// A cancelled order takes its seats back when they are still free, otherwise it
// is flagged for a refund.
func (s *Storage) MarkOrderPaid(ctx context.Context, orderID string) ([]models.Ticket, bool, error) {
	const op = "storage.postgres.MarkOrderPaid"

	tx, err := s.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, false, fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	var order models.TicketOrder
	err = tx.GetContext(ctx, &order, `SELECT `+orderColumns+` FROM ticket_orders WHERE id = $1 FOR UPDATE`, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, storage.ErrOrderNotFound
		}
		return nil, false, fmt.Errorf("%s: failed to get order: %w", op, err)
	}

	switch order.Status {
	case models.OrderPaid:
		tickets, err := s.ListOrderTickets(ctx, orderID)
		return tickets, false, err
	case models.OrderRefundRequired:
		return nil, false, storage.ErrRefundRequired
	case models.OrderCancelled:
		var capacity, sold int
		err = tx.QueryRowContext(ctx, `
			SELECT capacity, sold
			FROM events
			WHERE id = $1
			FOR UPDATE`, order.EventID).Scan(&capacity, &sold)
		if err != nil {
			return nil, false, fmt.Errorf("%s: failed to get event seats info: %w", op, err)
		}

		if sold+order.Quantity > capacity {
			if _, err = tx.ExecContext(ctx, `UPDATE ticket_orders SET status = 'refund_required' WHERE id = $1`, orderID); err != nil {
				return nil, false, fmt.Errorf("%s: failed to flag order for refund: %w", op, err)
			}
			if err = tx.Commit(); err != nil {
				return nil, false, fmt.Errorf("%s: failed to commit: %w", op, err)
			}
			return nil, false, storage.ErrRefundRequired
		}

		_, err = tx.ExecContext(ctx, `UPDATE events SET sold = sold + $1 WHERE id = $2`, order.Quantity, order.EventID)
		if err != nil {
			return nil, false, fmt.Errorf("%s: failed to hold seats again: %w", op, err)
		}
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE ticket_orders
		SET status = 'paid', paid_at = NOW()
		WHERE id = $1`, orderID)
	if err != nil {
		return nil, false, fmt.Errorf("%s: failed to mark order paid: %w", op, err)
	}

	tickets := make([]models.Ticket, 0, order.Quantity)
	for i := 0; i < order.Quantity; i++ {
		ticket := models.Ticket{
			ID:           uuid.NewString(),
			OrderID:      order.ID,
			EventID:      order.EventID,
			Code:         ticketCode(),
			AttendeeName: order.AttendeeName,
		}

		err = tx.QueryRowContext(ctx, `
			INSERT INTO tickets (id, order_id, event_id, code, attendee_name)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING created_at`,
			ticket.ID, ticket.OrderID, ticket.EventID, ticket.Code, ticket.AttendeeName,
		).Scan(&ticket.CreatedAt)
		if err != nil {
			return nil, false, fmt.Errorf("%s: failed to issue ticket: %w", op, err)
		}

		tickets = append(tickets, ticket)
	}

	if err = tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("%s: failed to commit: %w", op, err)
	}

	return tickets, true, nil
}

func (s *Storage) ListOrderTickets(ctx context.Context, orderID string) ([]models.Ticket, error) {
	const op = "storage.postgres.ListOrderTickets"

	tickets := []models.Ticket{}
	err := s.DB.SelectContext(ctx, &tickets, `
		SELECT id, order_id, event_id, code, attendee_name, created_at
		FROM tickets
		WHERE order_id = $1
		ORDER BY created_at, code`, orderID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get tickets: %w", op, err)
	}

	return tickets, nil
}

func (s *Storage) ListUserOrders(ctx context.Context, userID string) ([]models.TicketOrder, error) {
	const op = "storage.postgres.ListUserOrders"

	orders := []models.TicketOrder{}
	err := s.DB.SelectContext(ctx, &orders, `
		SELECT `+orderColumns+`
		FROM ticket_orders
		WHERE user_id = $1
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get orders: %w", op, err)
	}

	return orders, nil
}

// CancelOrder cancels a pending order and releases its seats.
func (s *Storage) CancelOrder(ctx context.Context, orderID string) error {
	const op = "storage.postgres.CancelOrder"

	tx, err := s.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	var (
		eventID, quantity int
		status            string
	)
	err = tx.QueryRowContext(ctx, `
		SELECT event_id, quantity, status
		FROM ticket_orders
		WHERE id = $1
		FOR UPDATE`, orderID).Scan(&eventID, &quantity, &status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrOrderNotFound
		}
		return fmt.Errorf("%s: failed to get order: %w", op, err)
	}

	if models.OrderStatus(status) != models.OrderPending {
		return storage.ErrOrderNotPending
	}

	if _, err = tx.ExecContext(ctx, `UPDATE ticket_orders SET status = 'cancelled' WHERE id = $1`, orderID); err != nil {
		return fmt.Errorf("%s: failed to cancel order: %w", op, err)
	}

	_, err = tx.ExecContext(ctx, `UPDATE events SET sold = GREATEST(sold - $1, 0) WHERE id = $2`, quantity, eventID)
	if err != nil {
		return fmt.Errorf("%s: failed to release seats: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%s: failed to commit: %w", op, err)
	}

	return nil
}

// CancelExpiredOrders cancels pending orders older than holdMinutes and
// releases their seats.
func (s *Storage) CancelExpiredOrders(ctx context.Context, holdMinutes int) (int64, error) {
	const op = "storage.postgres.CancelExpiredOrders"

	query := `
		WITH expired AS (
			UPDATE ticket_orders
			SET status = 'cancelled'
			WHERE status = 'pending'
			AND created_at < NOW() - INTERVAL '1 minute' * $1
			RETURNING event_id, quantity
		), released AS (
			SELECT event_id, SUM(quantity) AS seats
			FROM expired
			GROUP BY event_id
		)
		UPDATE events e
		SET sold = GREATEST(e.sold - released.seats, 0)
		FROM released
		WHERE e.id = released.event_id
		RETURNING released.seats`

	rows, err := s.DB.QueryContext(ctx, query, holdMinutes)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to cancel expired orders: %w", op, err)
	}
	defer rows.Close()

	var cancelled int64
	for rows.Next() {
		var seats int64
		if err = rows.Scan(&seats); err != nil {
			return 0, fmt.Errorf("%s: failed to scan released seats: %w", op, err)
		}
		cancelled += seats
	}

	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("%s: error iterating released seats: %w", op, err)
	}

	return cancelled, nil
}

func ticketCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
}
