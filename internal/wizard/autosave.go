package wizard

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"culturehub/internal/lib/logger/sl"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=DraftStore
type DraftStore interface {
	SaveDraft(ctx context.Context, userID string, draft *Draft) error
	LoadDraft(ctx context.Context, userID string) (*Draft, error)
	DeleteDraft(ctx context.Context, userID string) error
}

type buffered struct {
	draft   Draft
	version uint64
}

// Autosaver buffers drafts in memory and writes them to a DraftStore on a
// fixed interval.
type Autosaver struct {
	log      *slog.Logger
	store    DraftStore
	interval time.Duration
	now      func() time.Time

	mu      sync.Mutex
	version uint64
	dirty   map[string]*buffered
}

func NewAutosaver(log *slog.Logger, store DraftStore, interval time.Duration) *Autosaver {
	return &Autosaver{
		log:      log.With(slog.String("component", "wizard/autosaver")),
		store:    store,
		interval: interval,
		now:      time.Now,
		dirty:    make(map[string]*buffered),
	}
}

// Put replaces the buffered draft of a user. It is written on the next tick.
func (a *Autosaver) Put(userID string, draft Draft) {
	if draft.Step == 0 {
		draft.Step = StepBasicInfo
	}
	draft.UpdatedAt = a.now().UTC()

	a.mu.Lock()
	defer a.mu.Unlock()

	a.version++
	a.dirty[userID] = &buffered{draft: draft, version: a.version}
}

// Get returns the newest draft of a user, looking at the buffer before the store.
func (a *Autosaver) Get(ctx context.Context, userID string) (*Draft, error) {
	a.mu.Lock()
	b, ok := a.dirty[userID]
	a.mu.Unlock()

	if ok {
		draft := b.draft
		return &draft, nil
	}

	return a.store.LoadDraft(ctx, userID)
}

// Discard drops the draft of a user from the buffer and the store.
func (a *Autosaver) Discard(ctx context.Context, userID string) error {
	a.mu.Lock()
	delete(a.dirty, userID)
	a.mu.Unlock()

	return a.store.DeleteDraft(ctx, userID)
}

// Flush writes every buffered draft. Drafts that were not replaced while
// being written leave the buffer.
func (a *Autosaver) Flush(ctx context.Context) error {
	a.mu.Lock()
	pending := make(map[string]buffered, len(a.dirty))
	for userID, b := range a.dirty {
		pending[userID] = *b
	}
	a.mu.Unlock()

	var errs []error
	for userID, b := range pending {
		draft := b.draft
		if err := a.store.SaveDraft(ctx, userID, &draft); err != nil {
			a.log.Error("failed to save draft", slog.String("user_id", userID), sl.Err(err))
			errs = append(errs, err)
			continue
		}

		a.mu.Lock()
		if cur, ok := a.dirty[userID]; ok && cur.version == b.version {
			delete(a.dirty, userID)
		}
		a.mu.Unlock()
	}

	if len(pending) > 0 {
		a.log.Debug("drafts flushed", slog.Int("count", len(pending)-len(errs)))
	}

	return errors.Join(errs...)
}

// Pending reports how many drafts wait for the next flush.
func (a *Autosaver) Pending() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return len(a.dirty)
}

// Run flushes on every tick until ctx is done, then flushes once more so no
// buffered draft is lost on shutdown.
func (a *Autosaver) Run(ctx context.Context) {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			_ = a.Flush(ctx)
		case <-ctx.Done():
			finalCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			_ = a.Flush(finalCtx)
			cancel()
			return
		}
	}
}
