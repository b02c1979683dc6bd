package models

import "time"

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPaid      OrderStatus = "paid"
	OrderCancelled OrderStatus = "cancelled"

	// OrderRefundRequired is a cancelled order whose payment arrived after its
	// seats were sold again.
	OrderRefundRequired OrderStatus = "refund_required"
)

type TicketOrder struct {
	ID              string      `json:"id" db:"id"`
	EventID         int         `json:"event_id" db:"event_id"`
	UserID          string      `json:"user_id" db:"user_id"`
	Quantity        int         `json:"quantity" db:"quantity"`
	UnitPriceCents  int64       `json:"unit_price_cents" db:"unit_price_cents"`
	TotalCents      int64       `json:"total_cents" db:"total_cents"`
	Currency        string      `json:"currency" db:"currency"`
	AttendeeName    string      `json:"attendee_name" db:"attendee_name"`
	AttendeeEmail   string      `json:"attendee_email" db:"attendee_email"`
	AttendeePhone   string      `json:"attendee_phone,omitempty" db:"attendee_phone"`
	PaymentIntentID string      `json:"payment_intent_id,omitempty" db:"payment_intent_id"`
	Status          OrderStatus `json:"status" db:"status"`
	CreatedAt       time.Time   `json:"created_at" db:"created_at"`
	PaidAt          *time.Time  `json:"paid_at,omitempty" db:"paid_at"`
}

type Ticket struct {
	ID           string    `json:"id" db:"id"`
	OrderID      string    `json:"order_id" db:"order_id"`
	EventID      int       `json:"event_id" db:"event_id"`
	Code         string    `json:"code" db:"code"`
	AttendeeName string    `json:"attendee_name" db:"attendee_name"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
