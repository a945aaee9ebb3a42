package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/zeenhq/zeen/backend/internal/models"
	"github.com/zeenhq/zeen/backend/internal/store"
)

const keyProfile = "profile"

type profileRepository struct {
	store store.Store
}

// NewProfileRepository creates a profile repository over the store.
func NewProfileRepository(s store.Store) ProfileRepository {
	return &profileRepository{store: s}
}

func (r *profileRepository) Load(ctx context.Context) (*models.UserProfile, error) {
	raw, err := r.store.Get(ctx, keyProfile)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	var profile models.UserProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, nil
	}
	return &profile, nil
}

func (r *profileRepository) Save(ctx context.Context, profile *models.UserProfile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	if err := r.store.Set(ctx, keyProfile, raw); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

func (r *profileRepository) Delete(ctx context.Context) error {
	if err := r.store.Delete(ctx, keyProfile); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}
