package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"culturehub/internal/models"
	"culturehub/internal/storage"
)

const eventColumns = `
	e.id, e.organizer_id, e.title, e.description, e.category, e.start_at, e.end_at,
	e.venue_name, e.address, e.city, e.latitude, e.longitude, e.cover_image_url,
	e.gallery, e.is_free, e.price_cents, e.currency, e.capacity, e.sold, e.status,
	e.rejection_reason, e.created_at, e.updated_at`

// CreateEvent inserts the event and links its artists in one transaction. An
// unknown artist id stores nothing.
func (s *Storage) CreateEvent(ctx context.Context, event *models.Event, artistIDs []int) (int, error) {
	const op = "storage.postgres.CreateEvent"

	query := `
		INSERT INTO events (
			organizer_id, title, description, category, start_at, end_at,
			venue_name, address, city, latitude, longitude, cover_image_url,
			gallery, is_free, price_cents, currency, capacity, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING id`

	status := event.Status
	if status == "" {
		status = models.EventPending
	}

	tx, err := s.DB.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	var id int
	err = tx.QueryRowContext(ctx, query,
		event.OrganizerID,
		event.Title,
		event.Description,
		event.Category,
		event.StartAt,
		event.EndAt,
		event.VenueName,
		event.Address,
		event.City,
		event.Latitude,
		event.Longitude,
		event.CoverImageURL,
		event.Gallery,
		event.IsFree,
		event.PriceCents,
		event.Currency,
		event.Capacity,
		status,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to create event: %w", op, err)
	}

	for _, artistID := range artistIDs {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO event_artists (event_id, artist_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING`, id, artistID)
		if err != nil {
			if isForeignKeyViolation(err) {
				return 0, fmt.Errorf("%s: artist %d: %w", op, artistID, storage.ErrArtistNotFound)
			}
			return 0, fmt.Errorf("%s: failed to attach artist %d: %w", op, artistID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: failed to commit: %w", op, err)
	}

	return id, nil
}

func (s *Storage) GetEvent(ctx context.Context, id int) (*models.Event, error) {
	const op = "storage.postgres.GetEvent"

	var event models.Event
	err := s.DB.GetContext(ctx, &event, `SELECT `+eventColumns+` FROM events e WHERE e.id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("%s: failed to get event: %w", op, err)
	}

	return &event, nil
}

func (s *Storage) GetEventDetails(ctx context.Context, id int) (*models.EventDetails, error) {
	const op = "storage.postgres.GetEventDetails"

	event, err := s.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	details := &models.EventDetails{
		Event:     *event,
		Remaining: event.Remaining(),
		Artists:   []models.ArtistProfile{},
	}

	err = s.DB.SelectContext(ctx, &details.Artists, `
		SELECT a.id, a.user_id, a.name, a.discipline, a.bio, a.image_url, a.created_at
		FROM artists a
		JOIN event_artists ea ON ea.artist_id = a.id
		WHERE ea.event_id = $1
		ORDER BY a.name`, id)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get artists: %w", op, err)
	}

	err = s.DB.QueryRowContext(ctx, `
		SELECT COALESCE(AVG(rating), 0), COUNT(*)
		FROM reviews
		WHERE event_id = $1`, id).Scan(&details.AverageRating, &details.ReviewCount)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get rating: %w", op, err)
	}

	return details, nil
}

func (s *Storage) ListEvents(ctx context.Context, filter models.EventFilter) ([]models.Event, error) {
	const op = "storage.postgres.ListEvents"

	var (
		where []string
		args  []any
	)

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Status != "" {
		where = append(where, "e.status = "+arg(string(filter.Status)))
	}
	if filter.Category != "" {
		where = append(where, "e.category = "+arg(filter.Category))
	}
	if filter.City != "" {
		where = append(where, "LOWER(e.city) = LOWER("+arg(filter.City)+")")
	}
	if filter.Search != "" {
		p := arg("%" + filter.Search + "%")
		where = append(where, "(e.title ILIKE "+p+" OR e.description ILIKE "+p+")")
	}
	if filter.Upcoming {
		where = append(where, "e.end_at >= NOW()")
	}

	query := `SELECT ` + eventColumns + ` FROM events e`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY e.start_at ASC"

	if filter.Limit > 0 {
		query += " LIMIT " + arg(filter.Limit)
	}
	if filter.Offset > 0 {
		query += " OFFSET " + arg(filter.Offset)
	}

	events := []models.Event{}
	if err := s.DB.SelectContext(ctx, &events, query, args...); err != nil {
		return nil, fmt.Errorf("%s: failed to get events: %w", op, err)
	}

	return events, nil
}

func (s *Storage) ModerateEvent(ctx context.Context, id int, status models.EventStatus, reason string) error {
	const op = "storage.postgres.ModerateEvent"

	if status == models.EventApproved {
		reason = ""
	}

	res, err := s.DB.ExecContext(ctx, `
		UPDATE events
		SET status = $1, rejection_reason = $2, updated_at = NOW()
		WHERE id = $3`, string(status), reason, id)
	if err != nil {
		return fmt.Errorf("%s: failed to moderate event: %w", op, err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return storage.ErrEventNotFound
	}

	return nil
}

func (s *Storage) DeleteEvent(ctx context.Context, id int) error {
	const op = "storage.postgres.DeleteEvent"

	res, err := s.DB.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: failed to delete event: %w", op, err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return storage.ErrEventNotFound
	}

	return nil
}

func (s *Storage) Stats(ctx context.Context) (*models.DashboardStats, error) {
	const op = "storage.postgres.Stats"

	var stats models.DashboardStats
	err := s.DB.GetContext(ctx, &stats, `
		SELECT
			(SELECT COUNT(*) FROM events WHERE status = 'pending') AS pending_events,
			(SELECT COUNT(*) FROM events WHERE status = 'approved') AS approved_events,
			(SELECT COUNT(*) FROM users) AS users,
			(SELECT COUNT(*) FROM ticket_orders WHERE status = 'paid') AS paid_orders,
			(SELECT COALESCE(SUM(quantity), 0) FROM ticket_orders WHERE status = 'paid') AS tickets_sold,
			(SELECT COALESCE(SUM(total_cents), 0) FROM ticket_orders WHERE status = 'paid') AS revenue_cents`)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get stats: %w", op, err)
	}

	return &stats, nil
}
