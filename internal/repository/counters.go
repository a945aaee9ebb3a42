package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/zeenhq/zeen/backend/internal/models"
	"github.com/zeenhq/zeen/backend/internal/store"
)

const (
	keyTodayCounters      = "drift:today_counters"
	keyLastActiveDate     = "drift:last_active_date"
	keyDeliveredWatermark = "drift:delivered_watermark"
)

type counterRepository struct {
	store store.Store
}

// NewCounterRepository creates a counter repository over the given store.
func NewCounterRepository(s store.Store) CounterRepository {
	return &counterRepository{store: s}
}

// Load returns today's counters. Missing or corrupt data degrades to the
// zero vector; the recorder always has some valid state.
func (r *counterRepository) Load(ctx context.Context) (models.BehaviorCounters, error) {
	raw, err := r.store.Get(ctx, keyTodayCounters)
	if errors.Is(err, store.ErrNotFound) {
		return models.BehaviorCounters{}, nil
	}
	if err != nil {
		return models.BehaviorCounters{}, fmt.Errorf("failed to load counters: %w", err)
	}

	var counters models.BehaviorCounters
	if err := json.Unmarshal(raw, &counters); err != nil {
		return models.BehaviorCounters{}, nil
	}
	return counters, nil
}

func (r *counterRepository) Save(ctx context.Context, counters models.BehaviorCounters) error {
	raw, err := json.Marshal(counters)
	if err != nil {
		return fmt.Errorf("failed to marshal counters: %w", err)
	}
	if err := r.store.Set(ctx, keyTodayCounters, raw); err != nil {
		return fmt.Errorf("failed to save counters: %w", err)
	}
	return nil
}

func (r *counterRepository) LastActiveDate(ctx context.Context) (string, error) {
	raw, err := r.store.Get(ctx, keyLastActiveDate)
	if errors.Is(err, store.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to load last active date: %w", err)
	}
	return string(raw), nil
}

func (r *counterRepository) SetLastActiveDate(ctx context.Context, dateKey string) error {
	if err := r.store.Set(ctx, keyLastActiveDate, []byte(dateKey)); err != nil {
		return fmt.Errorf("failed to save last active date: %w", err)
	}
	return nil
}

func (r *counterRepository) DeliveredWatermark(ctx context.Context) (int, error) {
	raw, err := r.store.Get(ctx, keyDeliveredWatermark)
	if errors.Is(err, store.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to load delivered watermark: %w", err)
	}

	count, err := strconv.Atoi(string(raw))
	if err != nil {
		return 0, nil
	}
	return count, nil
}

func (r *counterRepository) SetDeliveredWatermark(ctx context.Context, count int) error {
	if err := r.store.Set(ctx, keyDeliveredWatermark, []byte(strconv.Itoa(count))); err != nil {
		return fmt.Errorf("failed to save delivered watermark: %w", err)
	}
	return nil
}
