package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"culturehub/internal/lib/logger/handlers/slogdiscard"
	"culturehub/internal/models"
	"culturehub/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

type fakeEvents struct {
	mu     sync.Mutex
	events map[int]*models.Event
}

func (f *fakeEvents) GetEvent(_ context.Context, id int) (*models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	e, ok := f.events[id]
	if !ok {
		return nil, storage.ErrEventNotFound
	}
	cp := *e
	return &cp, nil
}

func (f *fakeEvents) adjustSold(id, delta int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.events[id].Sold += delta
}

type fakeOrders struct {
	events  *fakeEvents
	mu      sync.Mutex
	orders  map[string]*models.TicketOrder
	tickets map[string][]models.Ticket
	paid    int

	beforeCreate func()
	beforePay    func()
}

func (f *fakeOrders) CreatePendingOrder(ctx context.Context, order *models.TicketOrder) (string, error) {
	if f.beforeCreate != nil {
		f.beforeCreate()
	}

	event, err := f.events.GetEvent(ctx, order.EventID)
	if err != nil {
		return "", err
	}
	if order.Quantity > event.Remaining() {
		return "", storage.ErrNoAvailableSeats
	}

	f.mu.Lock()
	cp := *order
	cp.Status = models.OrderPending
	f.orders[order.ID] = &cp
	f.mu.Unlock()

	f.events.adjustSold(order.EventID, order.Quantity)

	return order.ID, nil
}

func (f *fakeOrders) SetOrderPaymentIntent(_ context.Context, orderID, intentID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	o, ok := f.orders[orderID]
	if !ok || o.Status != models.OrderPending {
		return storage.ErrOrderNotPending
	}
	o.PaymentIntentID = intentID
	return nil
}

func (f *fakeOrders) MarkOrderPaid(ctx context.Context, orderID string) ([]models.Ticket, bool, error) {
	if f.beforePay != nil {
		f.beforePay()
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	o, ok := f.orders[orderID]
	if !ok {
		return nil, false, storage.ErrOrderNotFound
	}
	switch o.Status {
	case models.OrderPaid:
		return f.tickets[orderID], false, nil
	case models.OrderRefundRequired:
		return nil, false, storage.ErrRefundRequired
	case models.OrderCancelled:
		event, err := f.events.GetEvent(ctx, o.EventID)
		if err != nil {
			return nil, false, err
		}
		if event.Remaining() < o.Quantity {
			o.Status = models.OrderRefundRequired
			return nil, false, storage.ErrRefundRequired
		}
		f.events.adjustSold(o.EventID, o.Quantity)
	}

	o.Status = models.OrderPaid
	f.paid++

	tickets := make([]models.Ticket, 0, o.Quantity)
	for i := 0; i < o.Quantity; i++ {
		tickets = append(tickets, models.Ticket{
			ID:      fmt.Sprintf("%s-t%d", orderID, i),
			OrderID: orderID,
			EventID: o.EventID,
			Code:    fmt.Sprintf("CODE%d", i),
		})
	}
	f.tickets[orderID] = tickets

	return tickets, true, nil
}

func (f *fakeOrders) status(orderID string) models.OrderStatus {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.orders[orderID].Status
}

func (f *fakeOrders) CancelOrder(_ context.Context, orderID string) error {
	f.mu.Lock()
	o, ok := f.orders[orderID]
	if !ok {
		f.mu.Unlock()
		return storage.ErrOrderNotFound
	}
	if o.Status != models.OrderPending {
		f.mu.Unlock()
		return storage.ErrOrderNotPending
	}
	o.Status = models.OrderCancelled
	f.mu.Unlock()

	f.events.adjustSold(o.EventID, -o.Quantity)

	return nil
}

func (f *fakeOrders) GetOrderByPaymentIntent(_ context.Context, intentID string) (*models.TicketOrder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, o := range f.orders {
		if o.PaymentIntentID == intentID {
			cp := *o
			return &cp, nil
		}
	}
	return nil, storage.ErrOrderNotFound
}

type fakeGateway struct {
	mu        sync.Mutex
	status    IntentStatus
	createErr error
	getErr    error
	requests  []IntentRequest
}

func (f *fakeGateway) CreateIntent(_ context.Context, req IntentRequest) (*Intent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return nil, f.createErr
	}
	f.requests = append(f.requests, req)
	return &Intent{
		ID:           fmt.Sprintf("pi_%d", len(f.requests)),
		ClientSecret: "secret",
		Status:       IntentRequiresPaymentMethod,
	}, nil
}

func (f *fakeGateway) GetIntent(_ context.Context, id string) (*Intent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getErr != nil {
		return nil, f.getErr
	}
	return &Intent{ID: id, Status: f.status}, nil
}

type fakeSessions struct {
	mu       sync.Mutex
	sessions map[string]Session
	locks    map[string]string
	issued   int
}

func (f *fakeSessions) LockSession(_ context.Context, id string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.locks[id]; ok {
		return "", storage.ErrSessionLocked
	}
	f.issued++
	token := fmt.Sprintf("lock-%d", f.issued)
	f.locks[id] = token
	return token, nil
}

func (f *fakeSessions) UnlockSession(_ context.Context, id, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.locks[id] == token {
		delete(f.locks, id)
	}
	return nil
}

func (f *fakeSessions) SaveSession(_ context.Context, s *Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.sessions[s.ID] = *s
	return nil
}

func (f *fakeSessions) LoadSession(_ context.Context, id string) (*Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, ok := f.sessions[id]
	if !ok {
		return nil, storage.ErrSessionNotFound
	}
	return &s, nil
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []Confirmation
	err  error
}

func (f *fakeNotifier) OrderConfirmed(_ context.Context, c Confirmation) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.sent = append(f.sent, c)
	return f.err
}

type fixture struct {
	flow     *Flow
	events   *fakeEvents
	orders   *fakeOrders
	gateway  *fakeGateway
	sessions *fakeSessions
	notifier *fakeNotifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	events := &fakeEvents{events: map[int]*models.Event{
		1: {
			ID: 1, Title: "Winter Concert", Status: models.EventApproved,
			StartAt: testNow.Add(24 * time.Hour), EndAt: testNow.Add(26 * time.Hour),
			PriceCents: 2500, Currency: "eur", Capacity: 10,
		},
		2: {
			ID: 2, Title: "Open Rehearsal", Status: models.EventApproved, IsFree: true,
			StartAt: testNow.Add(24 * time.Hour), EndAt: testNow.Add(26 * time.Hour),
			Currency: "eur", Capacity: 5,
		},
		3: {ID: 3, Title: "Pending", Status: models.EventPending, EndAt: testNow.Add(time.Hour), Capacity: 5},
		4: {ID: 4, Title: "Sold out", Status: models.EventApproved, EndAt: testNow.Add(time.Hour), Capacity: 5, Sold: 5},
		5: {ID: 5, Title: "Over", Status: models.EventApproved, EndAt: testNow.Add(-time.Hour), Capacity: 5},
	}}

	f := &fixture{
		events:   events,
		orders:   &fakeOrders{events: events, orders: map[string]*models.TicketOrder{}, tickets: map[string][]models.Ticket{}},
		gateway:  &fakeGateway{status: IntentSucceeded},
		sessions: &fakeSessions{sessions: map[string]Session{}, locks: map[string]string{}},
		notifier: &fakeNotifier{},
	}

	f.flow = NewFlow(slogdiscard.NewDiscardLogger(), f.events, f.orders, f.gateway, f.sessions, f.notifier,
		Options{MaxTicketsPerOrder: 4})
	f.flow.now = func() time.Time { return testNow }

	return f
}

// toPayment walks a new session for eventID up to the payment step.
func (f *fixture) toPayment(t *testing.T, eventID, quantity int) *Session {
	t.Helper()

	ctx := context.Background()

	s, err := f.flow.Start(ctx, "u-1", eventID)
	require.NoError(t, err)
	require.Equal(t, StateSelectTickets, s.State)

	s, err = f.flow.SelectTickets(ctx, "u-1", s.ID, quantity)
	require.NoError(t, err)
	require.Equal(t, StateAttendeeInfo, s.State)

	s, err = f.flow.SetAttendee(ctx, "u-1", s.ID, Attendee{Name: "Ana Lima", Email: "ana@example.com"})
	require.NoError(t, err)
	require.Equal(t, StatePayment, s.State)

	return s
}

func TestFlowStart(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	testCases := []struct {
		name    string
		eventID int
		wantErr error
	}{
		{name: "Unknown event", eventID: 99, wantErr: storage.ErrEventNotFound},
		{name: "Not approved", eventID: 3, wantErr: storage.ErrEventNotOnSale},
		{name: "Sold out", eventID: 4, wantErr: storage.ErrNoAvailableSeats},
		{name: "Already over", eventID: 5, wantErr: storage.ErrEventNotOnSale},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			_, err := f.flow.Start(ctx, "u-1", tc.eventID)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	t.Run("Snapshot of the price", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		s, err := f.flow.Start(ctx, "u-1", 1)
		require.NoError(t, err)

		assert.Equal(t, int64(2500), s.UnitPriceCents)
		assert.Equal(t, "Winter Concert", s.EventTitle)

		stored, err := f.flow.Get(ctx, "u-1", s.ID)
		require.NoError(t, err)
		assert.Equal(t, s.ID, stored.ID)
	})
}

func TestFlowPaidCheckout(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(t)

	s := f.toPayment(t, 1, 2)

	s, err := f.flow.StartPayment(ctx, "u-1", s.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, s.OrderID)
	assert.Equal(t, "pi_1", s.PaymentIntentID)
	assert.Equal(t, "secret", s.ClientSecret)

	require.Len(t, f.gateway.requests, 1)
	req := f.gateway.requests[0]
	assert.Equal(t, int64(5000), req.AmountCents)
	assert.Equal(t, "order:"+s.OrderID, req.IdempotencyKey)
	assert.Equal(t, s.OrderID, req.Metadata["order_id"])

	event, _ := f.events.GetEvent(ctx, 1)
	assert.Equal(t, 2, event.Sold)

	again, err := f.flow.StartPayment(ctx, "u-1", s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.OrderID, again.OrderID)
	assert.Len(t, f.gateway.requests, 1)

	s, err = f.flow.ConfirmPayment(ctx, "u-1", s.ID)
	require.NoError(t, err)
	assert.Equal(t, StateConfirmation, s.State)
	assert.Len(t, s.Tickets, 2)
	assert.Empty(t, s.ClientSecret)

	require.Len(t, f.notifier.sent, 1)
	c := f.notifier.sent[0]
	assert.Equal(t, s.OrderID, c.OrderID)
	assert.Equal(t, int64(5000), c.TotalCents)
	assert.Equal(t, []string{"CODE0", "CODE1"}, c.TicketCodes)

	s, err = f.flow.ConfirmPayment(ctx, "u-1", s.ID)
	require.NoError(t, err)
	assert.Equal(t, StateConfirmation, s.State)
	assert.Equal(t, 1, f.orders.paid)
	assert.Len(t, f.notifier.sent, 1)
}

func TestFlowPaymentFailureStaysOnPayment(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("Intent not succeeded", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		f.gateway.status = IntentRequiresPaymentMethod

		s := f.toPayment(t, 1, 1)
		_, err := f.flow.StartPayment(ctx, "u-1", s.ID)
		require.NoError(t, err)

		s, err = f.flow.ConfirmPayment(ctx, "u-1", s.ID)
		require.ErrorIs(t, err, ErrPaymentIncomplete)
		require.NotNil(t, s)
		assert.Equal(t, StatePayment, s.State)
		assert.Contains(t, s.LastError, "requires_payment_method")

		stored, err := f.flow.Get(ctx, "u-1", s.ID)
		require.NoError(t, err)
		assert.Equal(t, StatePayment, stored.State)
		assert.NotEmpty(t, stored.LastError)

		f.gateway.status = IntentSucceeded
		s, err = f.flow.ConfirmPayment(ctx, "u-1", s.ID)
		require.NoError(t, err)
		assert.Equal(t, StateConfirmation, s.State)
		assert.Empty(t, s.LastError)
	})

	t.Run("Gateway down", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		f.gateway.createErr = errors.New("gateway down")

		s := f.toPayment(t, 1, 1)
		_, err := f.flow.StartPayment(ctx, "u-1", s.ID)
		require.Error(t, err)

		stored, err := f.flow.Get(ctx, "u-1", s.ID)
		require.NoError(t, err)
		assert.Equal(t, StatePayment, stored.State)
		assert.Equal(t, "gateway down", stored.LastError)
		assert.NotEmpty(t, stored.OrderID)
	})

	t.Run("Confirm before starting payment", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		s := f.toPayment(t, 1, 1)

		_, err := f.flow.ConfirmPayment(ctx, "u-1", s.ID)
		assert.ErrorIs(t, err, ErrWrongState)
	})
}

func TestFlowFreeOrderSkipsTheGateway(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(t)

	s := f.toPayment(t, 2, 3)

	s, err := f.flow.StartPayment(ctx, "u-1", s.ID)
	require.NoError(t, err)

	assert.Equal(t, StateConfirmation, s.State)
	assert.Len(t, s.Tickets, 3)
	assert.Empty(t, f.gateway.requests)
	require.Len(t, f.notifier.sent, 1)
	assert.Zero(t, f.notifier.sent[0].TotalCents)
}

func TestFlowBackReleasesTheHold(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(t)

	s := f.toPayment(t, 1, 2)
	s, err := f.flow.StartPayment(ctx, "u-1", s.ID)
	require.NoError(t, err)
	orderID := s.OrderID

	s, err = f.flow.Back(ctx, "u-1", s.ID)
	require.NoError(t, err)
	assert.Equal(t, StateAttendeeInfo, s.State)
	assert.Empty(t, s.OrderID)
	assert.Equal(t, models.OrderCancelled, f.orders.orders[orderID].Status)

	event, _ := f.events.GetEvent(ctx, 1)
	assert.Zero(t, event.Sold)

	s, err = f.flow.Back(ctx, "u-1", s.ID)
	require.NoError(t, err)
	assert.Equal(t, StateSelectTickets, s.State)

	_, err = f.flow.Back(ctx, "u-1", s.ID)
	assert.ErrorIs(t, err, ErrWrongState)
}

func TestFlowSelectTicketsChecksRemainingSeats(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(t)

	s, err := f.flow.Start(ctx, "u-1", 1)
	require.NoError(t, err)

	f.events.adjustSold(1, 9)

	_, err = f.flow.SelectTickets(ctx, "u-1", s.ID, 2)
	assert.ErrorIs(t, err, ErrNotEnoughSeats)

	_, err = f.flow.SelectTickets(ctx, "u-1", s.ID, 5)
	assert.ErrorIs(t, err, ErrTooManyTickets)
}

func TestFlowForeignSession(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(t)

	s, err := f.flow.Start(ctx, "u-1", 1)
	require.NoError(t, err)

	_, err = f.flow.Get(ctx, "u-2", s.ID)
	assert.ErrorIs(t, err, ErrForeignSession)

	_, err = f.flow.SelectTickets(ctx, "u-2", s.ID, 1)
	assert.ErrorIs(t, err, ErrForeignSession)

	_, err = f.flow.Get(ctx, "u-1", "missing")
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestFlowPaymentSucceededWebhook(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(t)

	s := f.toPayment(t, 1, 1)
	s, err := f.flow.StartPayment(ctx, "u-1", s.ID)
	require.NoError(t, err)

	require.NoError(t, f.flow.PaymentSucceeded(ctx, s.PaymentIntentID))
	require.NoError(t, f.flow.PaymentSucceeded(ctx, s.PaymentIntentID))

	assert.Equal(t, 1, f.orders.paid)
	require.Len(t, f.notifier.sent, 1)
	assert.Equal(t, "Winter Concert", f.notifier.sent[0].EventTitle)

	// the widget confirmation that arrives later finds the order paid
	s, err = f.flow.ConfirmPayment(ctx, "u-1", s.ID)
	require.NoError(t, err)
	assert.Equal(t, StateConfirmation, s.State)
	assert.Len(t, s.Tickets, 1)
	assert.Len(t, f.notifier.sent, 1)

	assert.ErrorIs(t, f.flow.PaymentSucceeded(ctx, "pi_unknown"), storage.ErrOrderNotFound)
}

func TestFlowNotifierFailureDoesNotFailCheckout(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(t)
	f.notifier.err = errors.New("broker down")

	s := f.toPayment(t, 2, 1)
	s, err := f.flow.StartPayment(ctx, "u-1", s.ID)
	require.NoError(t, err)
	assert.Equal(t, StateConfirmation, s.State)
}

func TestFlowSessionLock(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(t)

	s := f.toPayment(t, 1, 2)

	var nestedErr error
	f.orders.beforeCreate = func() {
		f.orders.beforeCreate = nil
		_, nestedErr = f.flow.StartPayment(ctx, "u-1", s.ID)
	}

	s, err := f.flow.StartPayment(ctx, "u-1", s.ID)
	require.NoError(t, err)
	require.ErrorIs(t, nestedErr, storage.ErrSessionLocked)

	assert.Len(t, f.orders.orders, 1)
	event, _ := f.events.GetEvent(ctx, 1)
	assert.Equal(t, 2, event.Sold)

	assert.Empty(t, f.sessions.locks)

	_, err = f.flow.Back(ctx, "u-1", s.ID)
	require.NoError(t, err)
	assert.Empty(t, f.sessions.locks)
}

func TestFlowConcurrentSettlementNotifiesOnce(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(t)

	s := f.toPayment(t, 1, 2)
	s, err := f.flow.StartPayment(ctx, "u-1", s.ID)
	require.NoError(t, err)

	// both callers reach MarkOrderPaid before either of them settles
	var ready sync.WaitGroup
	ready.Add(2)
	f.orders.beforePay = func() {
		ready.Done()
		ready.Wait()
	}

	var (
		wg         sync.WaitGroup
		confirmErr error
		webhookErr error
		confirmed  *Session
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		confirmed, confirmErr = f.flow.ConfirmPayment(ctx, "u-1", s.ID)
	}()
	go func() {
		defer wg.Done()
		webhookErr = f.flow.PaymentSucceeded(ctx, s.PaymentIntentID)
	}()
	wg.Wait()

	require.NoError(t, confirmErr)
	require.NoError(t, webhookErr)
	assert.Equal(t, StateConfirmation, confirmed.State)
	assert.Len(t, confirmed.Tickets, 2)

	assert.Equal(t, 1, f.orders.paid)
	assert.Len(t, f.notifier.sent, 1)
}

func TestFlowLatePaymentOfCancelledOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("Seats still free", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)

		s := f.toPayment(t, 1, 2)
		s, err := f.flow.StartPayment(ctx, "u-1", s.ID)
		require.NoError(t, err)

		// the hold expired and the sweep released it
		require.NoError(t, f.orders.CancelOrder(ctx, s.OrderID))
		event, _ := f.events.GetEvent(ctx, 1)
		require.Equal(t, 0, event.Sold)

		require.NoError(t, f.flow.PaymentSucceeded(ctx, s.PaymentIntentID))

		assert.Equal(t, models.OrderPaid, f.orders.status(s.OrderID))
		event, _ = f.events.GetEvent(ctx, 1)
		assert.Equal(t, 2, event.Sold)
		require.Len(t, f.notifier.sent, 1)
		assert.Len(t, f.notifier.sent[0].TicketCodes, 2)
	})

	t.Run("Seats resold", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)

		s := f.toPayment(t, 1, 2)
		s, err := f.flow.StartPayment(ctx, "u-1", s.ID)
		require.NoError(t, err)

		require.NoError(t, f.orders.CancelOrder(ctx, s.OrderID))
		f.events.adjustSold(1, 9)

		s, err = f.flow.ConfirmPayment(ctx, "u-1", s.ID)
		require.ErrorIs(t, err, storage.ErrRefundRequired)
		assert.Equal(t, StatePayment, s.State)
		assert.NotEmpty(t, s.LastError)

		assert.ErrorIs(t, f.flow.PaymentSucceeded(ctx, s.PaymentIntentID), storage.ErrRefundRequired)

		assert.Equal(t, models.OrderRefundRequired, f.orders.status(s.OrderID))
		event, _ := f.events.GetEvent(ctx, 1)
		assert.Equal(t, 9, event.Sold)
		assert.Empty(t, f.notifier.sent)
		assert.Zero(t, f.orders.paid)
	})
}
