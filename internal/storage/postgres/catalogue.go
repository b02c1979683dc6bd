package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"culturehub/internal/models"
	"culturehub/internal/storage"
)

func (s *Storage) CreateArtist(ctx context.Context, artist *models.ArtistProfile) (int, error) {
	const op = "storage.postgres.CreateArtist"

	var id int
	err := s.DB.QueryRowContext(ctx, `
		INSERT INTO artists (user_id, name, discipline, bio, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		artist.UserID, artist.Name, artist.Discipline, artist.Bio, artist.ImageURL,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to create artist: %w", op, err)
	}

	return id, nil
}

func (s *Storage) ListArtists(ctx context.Context, discipline string) ([]models.ArtistProfile, error) {
	const op = "storage.postgres.ListArtists"

	query := `SELECT id, user_id, name, discipline, bio, image_url, created_at FROM artists`
	args := []any{}
	if discipline != "" {
		query += ` WHERE discipline = $1`
		args = append(args, discipline)
	}
	query += ` ORDER BY name`

	artists := []models.ArtistProfile{}
	if err := s.DB.SelectContext(ctx, &artists, query, args...); err != nil {
		return nil, fmt.Errorf("%s: failed to get artists: %w", op, err)
	}

	return artists, nil
}

func (s *Storage) GetArtist(ctx context.Context, id int) (*models.ArtistDetails, error) {
	const op = "storage.postgres.GetArtist"

	var details models.ArtistDetails
	err := s.DB.GetContext(ctx, &details.ArtistProfile, `
		SELECT id, user_id, name, discipline, bio, image_url, created_at
		FROM artists
		WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrArtistNotFound
		}
		return nil, fmt.Errorf("%s: failed to get artist: %w", op, err)
	}

	details.UpcomingEvents = []models.Event{}
	err = s.DB.SelectContext(ctx, &details.UpcomingEvents, `
		SELECT `+eventColumns+`
		FROM events e
		JOIN event_artists ea ON ea.event_id = e.id
		WHERE ea.artist_id = $1 AND e.status = 'approved' AND e.end_at >= NOW()
		ORDER BY e.start_at`, id)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get artist events: %w", op, err)
	}

	return &details, nil
}

const contentColumns = `
	c.id, c.author_id, COALESCE(u.full_name, '') AS author_name, c.title, c.body,
	c.category, c.tags, c.status, c.created_at, c.updated_at`

func (s *Storage) CreateContent(ctx context.Context, content *models.CulturalContent) (int, error) {
	const op = "storage.postgres.CreateContent"

	status := content.Status
	if status == "" {
		status = models.ContentDraft
	}

	var id int
	err := s.DB.QueryRowContext(ctx, `
		INSERT INTO cultural_content (author_id, title, body, category, tags, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		content.AuthorID, content.Title, content.Body, content.Category, content.Tags, string(status),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to create content: %w", op, err)
	}

	return id, nil
}

func (s *Storage) GetContent(ctx context.Context, id int) (*models.CulturalContent, error) {
	const op = "storage.postgres.GetContent"

	var content models.CulturalContent
	err := s.DB.GetContext(ctx, &content, `
		SELECT `+contentColumns+`
		FROM cultural_content c
		LEFT JOIN users u ON u.id = c.author_id
		WHERE c.id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrContentNotFound
		}
		return nil, fmt.Errorf("%s: failed to get content: %w", op, err)
	}

	return &content, nil
}

func (s *Storage) ListContent(ctx context.Context, category, tag string) ([]models.CulturalContent, error) {
	const op = "storage.postgres.ListContent"

	query := `
		SELECT ` + contentColumns + `
		FROM cultural_content c
		LEFT JOIN users u ON u.id = c.author_id
		WHERE c.status = 'published'
		AND ($1 = '' OR c.category = $1)
		AND ($2 = '' OR $2 = ANY(c.tags))
		ORDER BY c.created_at DESC`

	contents := []models.CulturalContent{}
	if err := s.DB.SelectContext(ctx, &contents, query, category, tag); err != nil {
		return nil, fmt.Errorf("%s: failed to get content: %w", op, err)
	}

	return contents, nil
}

// SaveReview keeps a single review per user and event; a second review
// replaces the first.
func (s *Storage) SaveReview(ctx context.Context, review *models.Review) (int, error) {
	const op = "storage.postgres.SaveReview"

	var id int
	err := s.DB.QueryRowContext(ctx, `
		INSERT INTO reviews (event_id, user_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (event_id, user_id)
		DO UPDATE SET rating = EXCLUDED.rating, comment = EXCLUDED.comment, created_at = NOW()
		RETURNING id`,
		review.EventID, review.UserID, review.Rating, review.Comment,
	).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, storage.ErrEventNotFound
		}
		return 0, fmt.Errorf("%s: failed to save review: %w", op, err)
	}

	return id, nil
}

func (s *Storage) ListReviews(ctx context.Context, eventID int) ([]models.Review, error) {
	const op = "storage.postgres.ListReviews"

	reviews := []models.Review{}
	err := s.DB.SelectContext(ctx, &reviews, `
		SELECT id, event_id, user_id, rating, comment, created_at
		FROM reviews
		WHERE event_id = $1
		ORDER BY created_at DESC`, eventID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get reviews: %w", op, err)
	}

	return reviews, nil
}

func (s *Storage) AddFavorite(ctx context.Context, userID string, eventID int) error {
	const op = "storage.postgres.AddFavorite"

	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO favorites (user_id, event_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`, userID, eventID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return storage.ErrEventNotFound
		}
		return fmt.Errorf("%s: failed to add favorite: %w", op, err)
	}

	return nil
}

func (s *Storage) RemoveFavorite(ctx context.Context, userID string, eventID int) error {
	const op = "storage.postgres.RemoveFavorite"

	_, err := s.DB.ExecContext(ctx, `DELETE FROM favorites WHERE user_id = $1 AND event_id = $2`, userID, eventID)
	if err != nil {
		return fmt.Errorf("%s: failed to remove favorite: %w", op, err)
	}

	return nil
}

func (s *Storage) ListFavorites(ctx context.Context, userID string) ([]models.Event, error) {
	const op = "storage.postgres.ListFavorites"

	events := []models.Event{}
	err := s.DB.SelectContext(ctx, &events, `
		SELECT `+eventColumns+`
		FROM events e
		JOIN favorites f ON f.event_id = e.id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get favorites: %w", op, err)
	}

	return events, nil
}
