package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/akerkez/coinkeeper/internal/model"
)

// Settings holds the small amount of scalar app state that lives outside
// the three main collections.
type Settings struct {
	MonthlyLimit float64 `json:"monthlyLimit"`
	Currency     string  `json:"currency,omitempty"`
}

// GetSettings returns the stored settings, or zero-value settings when
// nothing is stored or the stored value is corrupt.
func (s *Store) GetSettings(ctx context.Context) (Settings, error) {
	if err := validateContext(ctx); err != nil {
		return Settings{}, err
	}

	raw, ok, err := s.backend.Get(ctx, keySettings)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	if !ok || len(raw) == 0 {
		return Settings{}, nil
	}

	var settings Settings
	if err := json.Unmarshal(raw, &settings); err != nil {
		slog.Warn("recovered corrupted settings to defaults",
			"error", fmt.Errorf("%w: %v", ErrParse, err).Error())
		return Settings{}, nil
	}
	return settings, nil
}

// SetMonthlyLimit persists the overall monthly spending limit.
func (s *Store) SetMonthlyLimit(ctx context.Context, limit float64) error {
	if limit < 0 {
		return fmt.Errorf("%w: monthly limit cannot be negative", ErrValidation)
	}

	settings, err := s.GetSettings(ctx)
	if err != nil {
		return err
	}
	settings.MonthlyLimit = limit

	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := s.backend.Set(ctx, keySettings, raw); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	slog.Info("set monthly limit", "limit", limit)
	return nil
}

// SaveSession stores the mock user session. There is no real
// authentication; the record only feeds profile display.
func (s *Store) SaveSession(ctx context.Context, user model.User) (*model.User, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if user.Email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidation)
	}

	if user.ID == "" {
		user.ID = s.newID()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = s.now().UTC()
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.backend.Set(ctx, keySession, raw); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	slog.Info("saved session", "email", user.Email)
	return &user, nil
}

// CurrentSession returns the stored session user, or nil when logged out.
func (s *Store) CurrentSession(ctx context.Context) (*model.User, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	raw, ok, err := s.backend.Get(ctx, keySession)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if !ok || len(raw) == 0 {
		return nil, nil
	}

	var user model.User
	if err := json.Unmarshal(raw, &user); err != nil {
		slog.Warn("recovered corrupted session by clearing it",
			"error", fmt.Errorf("%w: %v", ErrParse, err).Error())
		return nil, nil
	}
	return &user, nil
}

// ClearSession removes the stored session. Clearing an absent session is
// not an error.
func (s *Store) ClearSession(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	return s.backend.Delete(ctx, keySession)
}
