//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"culturehub/internal/models"
	"culturehub/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	ctx := context.Background()

	ctr, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("culturehub"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		tcpostgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := Open(dsn, 5)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func seedEvent(t *testing.T, s *Storage, organizerID string, capacity int, status models.EventStatus, artistIDs ...int) int {
	t.Helper()

	start := time.Now().Add(48 * time.Hour).UTC()
	id, err := s.CreateEvent(context.Background(), &models.Event{
		OrganizerID: organizerID,
		Title:       "Winter Concert",
		Description: "A night of chamber music by the river.",
		Category:    "music",
		StartAt:     start,
		EndAt:       start.Add(2 * time.Hour),
		City:        "Porto",
		PriceCents:  2500,
		Currency:    "eur",
		Capacity:    capacity,
		Status:      status,
	}, artistIDs)
	require.NoError(t, err)

	return id
}

func TestStorage(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	organizerID, err := s.CreateUser(ctx, &models.UserProfile{
		Email: "Org@Example.com", PasswordHash: "x", FullName: "Org", Role: models.RoleOrganizer,
	})
	require.NoError(t, err)

	buyerID, err := s.CreateUser(ctx, &models.UserProfile{Email: "buyer@example.com", PasswordHash: "x"})
	require.NoError(t, err)

	t.Run("Users", func(t *testing.T) {
		_, err := s.CreateUser(ctx, &models.UserProfile{Email: "org@example.com", PasswordHash: "y"})
		assert.ErrorIs(t, err, storage.ErrUserExists)

		user, err := s.GetUserByEmail(ctx, "org@example.com")
		require.NoError(t, err)
		assert.Equal(t, organizerID, user.ID)
		assert.Equal(t, models.RoleOrganizer, user.Role)

		_, err = s.GetUser(ctx, "00000000-0000-0000-0000-000000000000")
		assert.ErrorIs(t, err, storage.ErrUserNotFound)
	})

	t.Run("Moderation and listing", func(t *testing.T) {
		eventID := seedEvent(t, s, organizerID, 10, models.EventPending)

		pending, err := s.ListEvents(ctx, models.EventFilter{Status: models.EventPending, Limit: 10})
		require.NoError(t, err)
		assert.NotEmpty(t, pending)

		require.NoError(t, s.ModerateEvent(ctx, eventID, models.EventRejected, "missing photos"))
		event, err := s.GetEvent(ctx, eventID)
		require.NoError(t, err)
		assert.Equal(t, "missing photos", event.RejectionReason)

		require.NoError(t, s.ModerateEvent(ctx, eventID, models.EventApproved, "ignored"))
		event, err = s.GetEvent(ctx, eventID)
		require.NoError(t, err)
		assert.Equal(t, models.EventApproved, event.Status)
		assert.Empty(t, event.RejectionReason)

		approved, err := s.ListEvents(ctx, models.EventFilter{Status: models.EventApproved, City: "Porto", Limit: 10})
		require.NoError(t, err)
		assert.NotEmpty(t, approved)

		assert.ErrorIs(t, s.ModerateEvent(ctx, 999999, models.EventApproved, ""), storage.ErrEventNotFound)
	})

	t.Run("Artists", func(t *testing.T) {
		artistID, err := s.CreateArtist(ctx, &models.ArtistProfile{Name: "Lua Quartet", Discipline: "music"})
		require.NoError(t, err)

		eventID := seedEvent(t, s, organizerID, 10, models.EventApproved, artistID, artistID)

		var before, after int
		require.NoError(t, s.DB.GetContext(ctx, &before, `SELECT COUNT(*) FROM events`))

		_, err = s.CreateEvent(ctx, &models.Event{
			OrganizerID: organizerID,
			Title:       "Unknown guest",
			Category:    "music",
			StartAt:     time.Now().Add(time.Hour),
			EndAt:       time.Now().Add(2 * time.Hour),
			Capacity:    5,
		}, []int{artistID, 424242})
		assert.ErrorIs(t, err, storage.ErrArtistNotFound)

		require.NoError(t, s.DB.GetContext(ctx, &after, `SELECT COUNT(*) FROM events`))
		assert.Equal(t, before, after)

		details, err := s.GetEventDetails(ctx, eventID)
		require.NoError(t, err)
		require.Len(t, details.Artists, 1)
		assert.Equal(t, 10, details.Remaining)

		artist, err := s.GetArtist(ctx, artistID)
		require.NoError(t, err)
		assert.Len(t, artist.UpcomingEvents, 1)
	})

	t.Run("Orders hold and release seats", func(t *testing.T) {
		eventID := seedEvent(t, s, organizerID, 3, models.EventApproved)

		order := &models.TicketOrder{
			EventID: eventID, UserID: buyerID, Quantity: 2,
			UnitPriceCents: 2500, TotalCents: 5000, Currency: "eur",
			AttendeeName: "Ana Lima", AttendeeEmail: "ana@example.com",
		}
		orderID, err := s.CreatePendingOrder(ctx, order)
		require.NoError(t, err)

		_, err = s.CreatePendingOrder(ctx, &models.TicketOrder{EventID: eventID, UserID: buyerID, Quantity: 2})
		assert.ErrorIs(t, err, storage.ErrNoAvailableSeats)

		require.NoError(t, s.SetOrderPaymentIntent(ctx, orderID, "pi_test"))

		byIntent, err := s.GetOrderByPaymentIntent(ctx, "pi_test")
		require.NoError(t, err)
		assert.Equal(t, orderID, byIntent.ID)

		tickets, paidNow, err := s.MarkOrderPaid(ctx, orderID)
		require.NoError(t, err)
		assert.True(t, paidNow)
		assert.Len(t, tickets, 2)

		again, paidNow, err := s.MarkOrderPaid(ctx, orderID)
		require.NoError(t, err)
		assert.False(t, paidNow)
		require.Len(t, again, 2)
		assert.ElementsMatch(t, []string{tickets[0].Code, tickets[1].Code}, []string{again[0].Code, again[1].Code})

		assert.ErrorIs(t, s.CancelOrder(ctx, orderID), storage.ErrOrderNotPending)

		other, err := s.CreatePendingOrder(ctx, &models.TicketOrder{EventID: eventID, UserID: buyerID, Quantity: 1})
		require.NoError(t, err)
		require.NoError(t, s.CancelOrder(ctx, other))

		event, err := s.GetEvent(ctx, eventID)
		require.NoError(t, err)
		assert.Equal(t, 2, event.Sold)

		orders, err := s.ListUserOrders(ctx, buyerID)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(orders), 2)
	})

	t.Run("Expired holds are swept", func(t *testing.T) {
		eventID := seedEvent(t, s, organizerID, 5, models.EventApproved)

		orderID, err := s.CreatePendingOrder(ctx, &models.TicketOrder{EventID: eventID, UserID: buyerID, Quantity: 3})
		require.NoError(t, err)

		_, err = s.DB.ExecContext(ctx, `UPDATE ticket_orders SET created_at = NOW() - INTERVAL '1 hour' WHERE id = $1`, orderID)
		require.NoError(t, err)

		released, err := s.CancelExpiredOrders(ctx, 15)
		require.NoError(t, err)
		assert.Equal(t, int64(3), released)

		event, err := s.GetEvent(ctx, eventID)
		require.NoError(t, err)
		assert.Zero(t, event.Sold)

		order, err := s.GetOrder(ctx, orderID)
		require.NoError(t, err)
		assert.Equal(t, models.OrderCancelled, order.Status)
	})

	t.Run("Late payment of a swept order", func(t *testing.T) {
		eventID := seedEvent(t, s, organizerID, 2, models.EventApproved)

		expire := func(orderID string) {
			_, err := s.DB.ExecContext(ctx, `UPDATE ticket_orders SET created_at = NOW() - INTERVAL '1 hour' WHERE id = $1`, orderID)
			require.NoError(t, err)
			_, err = s.CancelExpiredOrders(ctx, 15)
			require.NoError(t, err)
		}

		late, err := s.CreatePendingOrder(ctx, &models.TicketOrder{EventID: eventID, UserID: buyerID, Quantity: 2})
		require.NoError(t, err)
		require.NoError(t, s.SetOrderPaymentIntent(ctx, late, "pi_late"))
		expire(late)

		tickets, paidNow, err := s.MarkOrderPaid(ctx, late)
		require.NoError(t, err)
		assert.True(t, paidNow)
		assert.Len(t, tickets, 2)

		event, err := s.GetEvent(ctx, eventID)
		require.NoError(t, err)
		assert.Equal(t, 2, event.Sold)

		otherEvent := seedEvent(t, s, organizerID, 1, models.EventApproved)
		lost, err := s.CreatePendingOrder(ctx, &models.TicketOrder{EventID: otherEvent, UserID: buyerID, Quantity: 1})
		require.NoError(t, err)
		expire(lost)

		_, err = s.CreatePendingOrder(ctx, &models.TicketOrder{EventID: otherEvent, UserID: buyerID, Quantity: 1})
		require.NoError(t, err)

		_, paidNow, err = s.MarkOrderPaid(ctx, lost)
		assert.ErrorIs(t, err, storage.ErrRefundRequired)
		assert.False(t, paidNow)

		order, err := s.GetOrder(ctx, lost)
		require.NoError(t, err)
		assert.Equal(t, models.OrderRefundRequired, order.Status)

		event, err = s.GetEvent(ctx, otherEvent)
		require.NoError(t, err)
		assert.Equal(t, 1, event.Sold)
	})

	t.Run("Favorites are idempotent", func(t *testing.T) {
		eventID := seedEvent(t, s, organizerID, 5, models.EventApproved)

		require.NoError(t, s.AddFavorite(ctx, buyerID, eventID))
		require.NoError(t, s.AddFavorite(ctx, buyerID, eventID))

		favorites, err := s.ListFavorites(ctx, buyerID)
		require.NoError(t, err)
		require.Len(t, favorites, 1)
		assert.Equal(t, eventID, favorites[0].ID)

		require.NoError(t, s.RemoveFavorite(ctx, buyerID, eventID))
		require.NoError(t, s.RemoveFavorite(ctx, buyerID, eventID))

		assert.ErrorIs(t, s.AddFavorite(ctx, buyerID, 999999), storage.ErrEventNotFound)
	})

	t.Run("Reviews replace each other", func(t *testing.T) {
		eventID := seedEvent(t, s, organizerID, 5, models.EventApproved)

		_, err := s.SaveReview(ctx, &models.Review{EventID: eventID, UserID: buyerID, Rating: 2})
		require.NoError(t, err)
		_, err = s.SaveReview(ctx, &models.Review{EventID: eventID, UserID: buyerID, Rating: 5, Comment: "better"})
		require.NoError(t, err)

		reviews, err := s.ListReviews(ctx, eventID)
		require.NoError(t, err)
		require.Len(t, reviews, 1)
		assert.Equal(t, 5, reviews[0].Rating)

		details, err := s.GetEventDetails(ctx, eventID)
		require.NoError(t, err)
		assert.InDelta(t, 5.0, details.AverageRating, 0.001)
		assert.Equal(t, 1, details.ReviewCount)
	})

	t.Run("Content", func(t *testing.T) {
		id, err := s.CreateContent(ctx, &models.CulturalContent{
			AuthorID: organizerID, Title: "Fado", Body: "# Fado", Category: "music",
			Tags: []string{"fado", "lisbon"}, Status: models.ContentPublished,
		})
		require.NoError(t, err)

		_, err = s.CreateContent(ctx, &models.CulturalContent{
			AuthorID: organizerID, Title: "Draft", Body: "wip", Category: "music",
		})
		require.NoError(t, err)

		content, err := s.GetContent(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Org", content.AuthorName)

		list, err := s.ListContent(ctx, "music", "lisbon")
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, id, list[0].ID)

		_, err = s.GetContent(ctx, 999999)
		assert.ErrorIs(t, err, storage.ErrContentNotFound)
	})

	t.Run("Stats", func(t *testing.T) {
		stats, err := s.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, stats.Users)
		assert.GreaterOrEqual(t, stats.PaidOrders, 1)
		assert.GreaterOrEqual(t, stats.RevenueCents, int64(5000))
	})
}
