package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"culturehub/internal/lib/logger/sl"
	"culturehub/internal/models"
	"culturehub/internal/storage"

	"github.com/google/uuid"
)

type IntentStatus string

const (
	IntentSucceeded             IntentStatus = "succeeded"
	IntentProcessing            IntentStatus = "processing"
	IntentRequiresPaymentMethod IntentStatus = "requires_payment_method"
	IntentRequiresAction        IntentStatus = "requires_action"
	IntentCanceled              IntentStatus = "canceled"
)

type IntentRequest struct {
	AmountCents    int64
	Currency       string
	IdempotencyKey string
	Metadata       map[string]string
}

type Intent struct {
	ID           string
	ClientSecret string
	Status       IntentStatus
}

// Confirmation is published once an order is paid.
type Confirmation struct {
	OrderID       string   `json:"order_id"`
	EventID       int      `json:"event_id"`
	EventTitle    string   `json:"event_title"`
	AttendeeName  string   `json:"attendee_name"`
	AttendeeEmail string   `json:"attendee_email"`
	Quantity      int      `json:"quantity"`
	TotalCents    int64    `json:"total_cents"`
	Currency      string   `json:"currency"`
	TicketCodes   []string `json:"ticket_codes"`
}

type EventGetter interface {
	GetEvent(ctx context.Context, id int) (*models.Event, error)
}

type OrderStore interface {
	CreatePendingOrder(ctx context.Context, order *models.TicketOrder) (string, error)
	SetOrderPaymentIntent(ctx context.Context, orderID, intentID string) error
	MarkOrderPaid(ctx context.Context, orderID string) (tickets []models.Ticket, paidNow bool, err error)
	CancelOrder(ctx context.Context, orderID string) error
	GetOrderByPaymentIntent(ctx context.Context, intentID string) (*models.TicketOrder, error)
}

type PaymentGateway interface {
	CreateIntent(ctx context.Context, req IntentRequest) (*Intent, error)
	GetIntent(ctx context.Context, id string) (*Intent, error)
}

// SessionStore keeps sessions between requests. LockSession fails with
// storage.ErrSessionLocked while another holder has the lock.
type SessionStore interface {
	SaveSession(ctx context.Context, session *Session) error
	LoadSession(ctx context.Context, id string) (*Session, error)
	LockSession(ctx context.Context, id string) (token string, err error)
	UnlockSession(ctx context.Context, id, token string) error
}

type Notifier interface {
	OrderConfirmed(ctx context.Context, confirmation Confirmation) error
}

type Options struct {
	MaxTicketsPerOrder int
}

// Flow drives checkout sessions and performs the side effects of each step.
type Flow struct {
	log      *slog.Logger
	events   EventGetter
	orders   OrderStore
	gateway  PaymentGateway
	sessions SessionStore
	notifier Notifier
	opts     Options
	now      func() time.Time
}

func NewFlow(
	log *slog.Logger,
	events EventGetter,
	orders OrderStore,
	gateway PaymentGateway,
	sessions SessionStore,
	notifier Notifier,
	opts Options,
) *Flow {
	return &Flow{
		log:      log.With(slog.String("component", "checkout")),
		events:   events,
		orders:   orders,
		gateway:  gateway,
		sessions: sessions,
		notifier: notifier,
		opts:     opts,
		now:      time.Now,
	}
}

func (f *Flow) Start(ctx context.Context, userID string, eventID int) (*Session, error) {
	event, err := f.events.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if event.Status != models.EventApproved || !event.EndAt.After(f.now()) {
		return nil, storage.ErrEventNotOnSale
	}
	if event.Remaining() == 0 {
		return nil, storage.ErrNoAvailableSeats
	}

	now := f.now().UTC()
	session := &Session{
		ID:         uuid.NewString(),
		UserID:     userID,
		EventID:    event.ID,
		EventTitle: event.Title,
		State:      StateSelectTickets,
		Currency:   event.Currency,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if !event.IsFree {
		session.UnitPriceCents = event.PriceCents
	}

	if err = f.save(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

func (f *Flow) Get(ctx context.Context, userID, sessionID string) (*Session, error) {
	session, err := f.sessions.LoadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.UserID != userID {
		return nil, ErrForeignSession
	}

	return session, nil
}

func (f *Flow) SelectTickets(ctx context.Context, userID, sessionID string, quantity int) (*Session, error) {
	session, err := f.Get(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	event, err := f.events.GetEvent(ctx, session.EventID)
	if err != nil {
		return nil, err
	}

	if err = session.SelectTickets(quantity, event.Remaining(), f.opts.MaxTicketsPerOrder); err != nil {
		return nil, err
	}

	return session, f.save(ctx, session)
}

func (f *Flow) SetAttendee(ctx context.Context, userID, sessionID string, attendee Attendee) (*Session, error) {
	session, err := f.Get(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	if err = session.SetAttendee(attendee); err != nil {
		return nil, err
	}

	return session, f.save(ctx, session)
}

// StartPayment holds the seats and creates the payment intent the widget
// confirms. Calling it again reuses the hold and the intent. Free orders are
// confirmed immediately.
func (f *Flow) StartPayment(ctx context.Context, userID, sessionID string) (*Session, error) {
	return f.locked(ctx, sessionID, func() (*Session, error) {
		return f.startPayment(ctx, userID, sessionID)
	})
}

func (f *Flow) startPayment(ctx context.Context, userID, sessionID string) (*Session, error) {
	session, err := f.Get(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	if session.State != StatePayment {
		return nil, fmt.Errorf("%w: %s", ErrWrongState, session.State)
	}

	if session.OrderID == "" {
		order := &models.TicketOrder{
			ID:             uuid.NewString(),
			EventID:        session.EventID,
			UserID:         session.UserID,
			Quantity:       session.Quantity,
			UnitPriceCents: session.UnitPriceCents,
			TotalCents:     session.TotalCents(),
			Currency:       session.Currency,
			AttendeeName:   session.Attendee.Name,
			AttendeeEmail:  session.Attendee.Email,
			AttendeePhone:  session.Attendee.Phone,
		}

		orderID, err := f.orders.CreatePendingOrder(ctx, order)
		if err != nil {
			return nil, err
		}

		session.OrderID = orderID
		if err = f.save(ctx, session); err != nil {
			return nil, err
		}
	}

	if session.TotalCents() == 0 {
		if err = f.complete(ctx, session); err != nil {
			return nil, err
		}
		return session, nil
	}

	if session.PaymentIntentID == "" {
		intent, err := f.gateway.CreateIntent(ctx, IntentRequest{
			AmountCents:    session.TotalCents(),
			Currency:       session.Currency,
			IdempotencyKey: "order:" + session.OrderID,
			Metadata: map[string]string{
				"order_id": session.OrderID,
				"event_id": strconv.Itoa(session.EventID),
				"user_id":  session.UserID,
			},
		})
		if err != nil {
			return nil, f.fail(ctx, session, err)
		}

		if err = f.orders.SetOrderPaymentIntent(ctx, session.OrderID, intent.ID); err != nil {
			return nil, err
		}

		session.PaymentIntentID = intent.ID
		session.ClientSecret = intent.ClientSecret
		session.LastError = ""
		if err = f.save(ctx, session); err != nil {
			return nil, err
		}
	}

	return session, nil
}

// ConfirmPayment is called after the widget reports success. The intent is
// checked with the gateway; anything but a succeeded intent keeps the session
// on the payment step with the reason in LastError.
func (f *Flow) ConfirmPayment(ctx context.Context, userID, sessionID string) (*Session, error) {
	return f.locked(ctx, sessionID, func() (*Session, error) {
		return f.confirmPayment(ctx, userID, sessionID)
	})
}

func (f *Flow) confirmPayment(ctx context.Context, userID, sessionID string) (*Session, error) {
	session, err := f.Get(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	if session.State == StateConfirmation {
		return session, nil
	}
	if session.State != StatePayment || session.PaymentIntentID == "" {
		return nil, fmt.Errorf("%w: %s", ErrWrongState, session.State)
	}

	intent, err := f.gateway.GetIntent(ctx, session.PaymentIntentID)
	if err != nil {
		return session, f.fail(ctx, session, err)
	}

	if intent.Status != IntentSucceeded {
		return session, f.fail(ctx, session, fmt.Errorf("%w: %s", ErrPaymentIncomplete, intent.Status))
	}

	if err = f.complete(ctx, session); err != nil {
		return session, f.fail(ctx, session, err)
	}

	return session, nil
}

// Back returns the session to the previous step and releases a held order.
func (f *Flow) Back(ctx context.Context, userID, sessionID string) (*Session, error) {
	return f.locked(ctx, sessionID, func() (*Session, error) {
		return f.back(ctx, userID, sessionID)
	})
}

func (f *Flow) back(ctx context.Context, userID, sessionID string) (*Session, error) {
	session, err := f.Get(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	orderID := session.OrderID
	if err = session.Back(); err != nil {
		return nil, err
	}

	if orderID != "" {
		if err = f.orders.CancelOrder(ctx, orderID); err != nil && !errors.Is(err, storage.ErrOrderNotPending) {
			return nil, err
		}
	}

	return session, f.save(ctx, session)
}

// PaymentSucceeded settles the order of an intent reported by the payment
// provider outside of a checkout session. It is safe to call more than once.
func (f *Flow) PaymentSucceeded(ctx context.Context, intentID string) error {
	order, err := f.orders.GetOrderByPaymentIntent(ctx, intentID)
	if err != nil {
		return err
	}

	tickets, paidNow, err := f.orders.MarkOrderPaid(ctx, order.ID)
	if err != nil {
		return err
	}

	if !paidNow {
		return nil
	}

	title := ""
	if event, err := f.events.GetEvent(ctx, order.EventID); err == nil {
		title = event.Title
	}

	f.notify(ctx, Confirmation{
		OrderID:       order.ID,
		EventID:       order.EventID,
		EventTitle:    title,
		AttendeeName:  order.AttendeeName,
		AttendeeEmail: order.AttendeeEmail,
		Quantity:      order.Quantity,
		TotalCents:    order.TotalCents,
		Currency:      order.Currency,
		TicketCodes:   ticketCodes(tickets),
	})

	return nil
}

// complete pays the order of session. Only the call that moves the order to
// paid publishes the confirmation; the webhook may have been first.
func (f *Flow) complete(ctx context.Context, session *Session) error {
	tickets, paidNow, err := f.orders.MarkOrderPaid(ctx, session.OrderID)
	if err != nil {
		return err
	}

	session.confirm(tickets)
	if err = f.save(ctx, session); err != nil {
		return err
	}

	if !paidNow {
		return nil
	}

	f.notify(ctx, Confirmation{
		OrderID:       session.OrderID,
		EventID:       session.EventID,
		EventTitle:    session.EventTitle,
		AttendeeName:  session.Attendee.Name,
		AttendeeEmail: session.Attendee.Email,
		Quantity:      session.Quantity,
		TotalCents:    session.TotalCents(),
		Currency:      session.Currency,
		TicketCodes:   ticketCodes(tickets),
	})

	return nil
}

// locked runs fn while holding the lock of the session, so concurrent requests
// on one session cannot hold seats twice.
func (f *Flow) locked(ctx context.Context, sessionID string, fn func() (*Session, error)) (*Session, error) {
	token, err := f.sessions.LockSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	defer func() {
		if err := f.sessions.UnlockSession(context.WithoutCancel(ctx), sessionID, token); err != nil {
			f.log.Error("failed to unlock checkout session", slog.String("session_id", sessionID), sl.Err(err))
		}
	}()

	return fn()
}

// fail records cause on the session and returns it.
func (f *Flow) fail(ctx context.Context, session *Session, cause error) error {
	session.LastError = cause.Error()
	if err := f.save(ctx, session); err != nil {
		f.log.Error("failed to save checkout session", slog.String("session_id", session.ID), sl.Err(err))
	}
	return cause
}

func (f *Flow) notify(ctx context.Context, c Confirmation) {
	if f.notifier == nil {
		return
	}
	if err := f.notifier.OrderConfirmed(ctx, c); err != nil {
		f.log.Error("failed to publish order confirmation", slog.String("order_id", c.OrderID), sl.Err(err))
	}
}

func (f *Flow) save(ctx context.Context, session *Session) error {
	session.UpdatedAt = f.now().UTC()
	return f.sessions.SaveSession(ctx, session)
}

func ticketCodes(tickets []models.Ticket) []string {
	codes := make([]string, 0, len(tickets))
	for _, t := range tickets {
		codes = append(codes, t.Code)
	}
	return codes
}
