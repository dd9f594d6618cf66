package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Store is the data store adapter: it owns the canonical collections and
// is the only component that reads or writes the persistence backend.
// Engines operate on snapshots returned from it and never mutate them.
type Store struct {
	backend Backend

	// Injected for deterministic tests; default to the real thing.
	now   func() time.Time
	newID func() string
}

// NewStore creates a store over the given backend.
func NewStore(backend Backend) *Store {
	return &Store{
		backend: backend,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Close closes the underlying backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

// loadCollection reads and decodes one persisted collection. A missing key
// yields an empty collection. A corrupted value is recovered to empty so
// reads never fail; the parse error is logged so "empty by design" and
// "corrupted" stay distinguishable in the logs.
func loadCollection[T any](ctx context.Context, s *Store, key string) ([]T, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	raw, ok, err := s.backend.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", key, err)
	}
	if !ok || len(raw) == 0 {
		return nil, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		slog.Warn("recovered corrupted collection to empty",
			"key", key,
			"error", fmt.Errorf("%w: %v", ErrParse, err).Error())
		return nil, nil
	}
	return items, nil
}

// saveCollection encodes and persists one collection wholesale.
func saveCollection[T any](ctx context.Context, s *Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.backend.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}
