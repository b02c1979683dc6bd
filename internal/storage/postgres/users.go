package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"culturehub/internal/models"
	"culturehub/internal/storage"

	"github.com/google/uuid"
)

func (s *Storage) CreateUser(ctx context.Context, user *models.UserProfile) (string, error) {
	const op = "storage.postgres.CreateUser"

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.Role == "" {
		user.Role = models.RoleUser
	}

	err := s.DB.QueryRowContext(ctx, `
		INSERT INTO users (id, email, password_hash, full_name, role)
		VALUES ($1, LOWER($2), $3, $4, $5)
		RETURNING created_at`,
		user.ID, user.Email, user.PasswordHash, user.FullName, string(user.Role),
	).Scan(&user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return "", storage.ErrUserExists
		}
		return "", fmt.Errorf("%s: failed to create user: %w", op, err)
	}

	return user.ID, nil
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.UserProfile, error) {
	return s.getUser(ctx, "storage.postgres.GetUserByEmail", `WHERE email = LOWER($1)`, email)
}

func (s *Storage) GetUser(ctx context.Context, id string) (*models.UserProfile, error) {
	return s.getUser(ctx, "storage.postgres.GetUser", `WHERE id = $1`, id)
}

func (s *Storage) getUser(ctx context.Context, op, where string, arg any) (*models.UserProfile, error) {
	var user models.UserProfile
	err := s.DB.GetContext(ctx, &user, `
		SELECT id, email, password_hash, full_name, role, created_at
		FROM users `+where, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: failed to get user: %w", op, err)
	}

	return &user, nil
}
