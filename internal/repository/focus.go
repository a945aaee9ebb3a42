package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/zeenhq/zeen/backend/internal/models"
	"github.com/zeenhq/zeen/backend/internal/store"
)

const keyFocusSessions = "focus:sessions"

type focusRepository struct {
	store store.Store
}

// NewFocusRepository creates a focus-session repository over the store.
func NewFocusRepository(s store.Store) FocusRepository {
	return &focusRepository{store: s}
}

// LoadSessions returns recorded sessions, newest first. Missing or
// corrupt data degrades to an empty list.
func (r *focusRepository) LoadSessions(ctx context.Context) ([]models.FocusSessionRecord, error) {
	raw, err := r.store.Get(ctx, keyFocusSessions)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load focus sessions: %w", err)
	}

	var sessions []models.FocusSessionRecord
	if err := json.Unmarshal(raw, &sessions); err != nil {
		return nil, nil
	}
	return sessions, nil
}

func (r *focusRepository) SaveSessions(ctx context.Context, sessions []models.FocusSessionRecord) error {
	raw, err := json.Marshal(sessions)
	if err != nil {
		return fmt.Errorf("failed to marshal focus sessions: %w", err)
	}
	if err := r.store.Set(ctx, keyFocusSessions, raw); err != nil {
		return fmt.Errorf("failed to save focus sessions: %w", err)
	}
	return nil
}
