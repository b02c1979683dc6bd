package checkout

import (
	"errors"
	"fmt"
	"time"

	"culturehub/internal/models"

	"github.com/go-playground/validator/v10"
)

type State string

const (
	StateSelectTickets State = "select_tickets"
	StateAttendeeInfo  State = "attendee_info"
	StatePayment       State = "payment"
	StateConfirmation  State = "confirmation"
)

var (
	ErrWrongState        = errors.New("operation not allowed in the current checkout step")
	ErrInvalidQuantity   = errors.New("ticket quantity must be greater than 0")
	ErrTooManyTickets    = errors.New("too many tickets for one order")
	ErrNotEnoughSeats    = errors.New("not enough seats left")
	ErrPaymentIncomplete = errors.New("payment has not succeeded")
	ErrForeignSession    = errors.New("checkout session belongs to another user")
)

var validate = validator.New()

type Attendee struct {
	Name  string `json:"name" validate:"required,max=200"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone,omitempty" validate:"omitempty,max=32"`
}

// Session is one pass through the checkout steps for a single event.
type Session struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	EventID         int             `json:"event_id"`
	EventTitle      string          `json:"event_title"`
	State           State           `json:"state"`
	Quantity        int             `json:"quantity"`
	UnitPriceCents  int64           `json:"unit_price_cents"`
	Currency        string          `json:"currency"`
	Attendee        Attendee        `json:"attendee"`
	OrderID         string          `json:"order_id,omitempty"`
	PaymentIntentID string          `json:"payment_intent_id,omitempty"`
	ClientSecret    string          `json:"client_secret,omitempty"`
	Tickets         []models.Ticket `json:"tickets,omitempty"`
	LastError       string          `json:"last_error,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (s *Session) TotalCents() int64 {
	return s.UnitPriceCents * int64(s.Quantity)
}

// SelectTickets sets the ticket quantity and moves to attendee capture.
func (s *Session) SelectTickets(quantity, remaining, maxPerOrder int) error {
	if s.State != StateSelectTickets {
		return fmt.Errorf("%w: %s", ErrWrongState, s.State)
	}

	switch {
	case quantity <= 0:
		return ErrInvalidQuantity
	case maxPerOrder > 0 && quantity > maxPerOrder:
		return fmt.Errorf("%w: at most %d", ErrTooManyTickets, maxPerOrder)
	case quantity > remaining:
		return fmt.Errorf("%w: %d remaining", ErrNotEnoughSeats, remaining)
	}

	s.Quantity = quantity
	s.State = StateAttendeeInfo
	s.LastError = ""

	return nil
}

// SetAttendee records who attends and moves to payment.
func (s *Session) SetAttendee(attendee Attendee) error {
	if s.State != StateAttendeeInfo {
		return fmt.Errorf("%w: %s", ErrWrongState, s.State)
	}

	if err := validate.Struct(attendee); err != nil {
		return err
	}

	s.Attendee = attendee
	s.State = StatePayment
	s.LastError = ""

	return nil
}

// Back returns to the previous step. The payment hold, if any, is dropped from
// the session; the caller is responsible for releasing it.
func (s *Session) Back() error {
	switch s.State {
	case StateAttendeeInfo:
		s.State = StateSelectTickets
	case StatePayment:
		s.State = StateAttendeeInfo
		s.OrderID = ""
		s.PaymentIntentID = ""
		s.ClientSecret = ""
	default:
		return fmt.Errorf("%w: %s", ErrWrongState, s.State)
	}

	s.LastError = ""

	return nil
}

func (s *Session) confirm(tickets []models.Ticket) {
	s.Tickets = tickets
	s.State = StateConfirmation
	s.LastError = ""
	s.ClientSecret = ""
}
