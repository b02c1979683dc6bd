package postgres

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"culturehub/internal/config"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

//go:embed schema.sql
var schema string

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

type Storage struct {
	DB *sqlx.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	return Open(dbCfg.DSN(), dbCfg.MaxConns)
}

func Open(dsn string, maxConns int) (*Storage, error) {
	const op = "storage.postgres.Open"

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to connect to the database: %w", op, err)
	}

	if maxConns > 0 {
		db.SetMaxOpenConns(maxConns)
	}

	if _, err = db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: failed to apply schema: %w", op, err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation
}
