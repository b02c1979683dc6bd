package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"culturehub/internal/checkout"
	"culturehub/internal/config"
	"culturehub/internal/storage"
	"culturehub/internal/wizard"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

const (
	draftPrefix    = "draft:"
	checkoutPrefix = "checkout:"
	lockPrefix     = "checkout:lock:"

	lockTTL = 30 * time.Second
)

// unlockScript deletes the lock only while it still holds the caller's token.
var unlockScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type Storage struct {
	rdb         *goredis.Client
	draftTTL    time.Duration
	checkoutTTL time.Duration
}

func New(cfg *config.Redis, draftTTL, checkoutTTL time.Duration) (*Storage, error) {
	const op = "storage.redis.New"

	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("%s: failed to connect to redis at %s: %w", op, cfg.Address, err)
	}

	return NewWithClient(rdb, draftTTL, checkoutTTL), nil
}

func NewWithClient(rdb *goredis.Client, draftTTL, checkoutTTL time.Duration) *Storage {
	return &Storage{
		rdb:         rdb,
		draftTTL:    draftTTL,
		checkoutTTL: checkoutTTL,
	}
}

func (s *Storage) Close() error {
	return s.rdb.Close()
}

func (s *Storage) SaveDraft(ctx context.Context, userID string, draft *wizard.Draft) error {
	const op = "storage.redis.SaveDraft"

	if err := s.setJSON(ctx, draftPrefix+userID, draft, s.draftTTL); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) LoadDraft(ctx context.Context, userID string) (*wizard.Draft, error) {
	const op = "storage.redis.LoadDraft"

	var draft wizard.Draft
	if err := s.getJSON(ctx, draftPrefix+userID, &draft); err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, storage.ErrDraftNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &draft, nil
}

func (s *Storage) DeleteDraft(ctx context.Context, userID string) error {
	const op = "storage.redis.DeleteDraft"

	if err := s.rdb.Del(ctx, draftPrefix+userID).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) SaveSession(ctx context.Context, session *checkout.Session) error {
	const op = "storage.redis.SaveSession"

	if err := s.setJSON(ctx, checkoutPrefix+session.ID, session, s.checkoutTTL); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) LoadSession(ctx context.Context, id string) (*checkout.Session, error) {
	const op = "storage.redis.LoadSession"

	var session checkout.Session
	if err := s.getJSON(ctx, checkoutPrefix+id, &session); err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, storage.ErrSessionNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &session, nil
}

// LockSession takes the lock of a checkout session. The lock expires on its
// own if the holder never releases it.
func (s *Storage) LockSession(ctx context.Context, id string) (string, error) {
	const op = "storage.redis.LockSession"

	token := uuid.NewString()

	ok, err := s.rdb.SetNX(ctx, lockPrefix+id, token, lockTTL).Result()
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if !ok {
		return "", storage.ErrSessionLocked
	}

	return token, nil
}

func (s *Storage) UnlockSession(ctx context.Context, id, token string) error {
	const op = "storage.redis.UnlockSession"

	if err := unlockScript.Run(ctx, s.rdb, []string{lockPrefix + id}, token).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) setJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}

	return s.rdb.Set(ctx, key, b, ttl).Err()
}

func (s *Storage) getJSON(ctx context.Context, key string, v any) error {
	b, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}

	if err = json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}

	return nil
}
