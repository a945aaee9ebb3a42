package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/zeenhq/zeen/backend/internal/models"
	"github.com/zeenhq/zeen/backend/internal/store"
)

const keyHourlyBuckets = "drift:hourly"

// hourlyBucket is the persisted wire form: the hour index travels with
// its counts instead of living in a string map key.
type hourlyBucket struct {
	Hour int `json:"hour"`
	models.HourlyEntry
}

type hourlyRepository struct {
	store store.Store
}

// NewHourlyRepository creates an hourly-bucket repository over the store.
func NewHourlyRepository(s store.Store) HourlyRepository {
	return &hourlyRepository{store: s}
}

// Load returns today's hour buckets keyed by hour of day. Missing or
// corrupt data degrades to an empty map.
func (r *hourlyRepository) Load(ctx context.Context) (map[int]models.HourlyEntry, error) {
	raw, err := r.store.Get(ctx, keyHourlyBuckets)
	if errors.Is(err, store.ErrNotFound) {
		return map[int]models.HourlyEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load hourly buckets: %w", err)
	}

	var rows []hourlyBucket
	if err := json.Unmarshal(raw, &rows); err != nil {
		return map[int]models.HourlyEntry{}, nil
	}

	buckets := make(map[int]models.HourlyEntry, len(rows))
	for _, row := range rows {
		if row.Hour < 0 || row.Hour > 23 {
			continue
		}
		buckets[row.Hour] = row.HourlyEntry
	}
	return buckets, nil
}

func (r *hourlyRepository) Save(ctx context.Context, buckets map[int]models.HourlyEntry) error {
	rows := make([]hourlyBucket, 0, len(buckets))
	for hour := 0; hour < 24; hour++ {
		entry, ok := buckets[hour]
		if !ok {
			continue
		}
		rows = append(rows, hourlyBucket{Hour: hour, HourlyEntry: entry})
	}

	raw, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("failed to marshal hourly buckets: %w", err)
	}
	if err := r.store.Set(ctx, keyHourlyBuckets, raw); err != nil {
		return fmt.Errorf("failed to save hourly buckets: %w", err)
	}
	return nil
}

func (r *hourlyRepository) Clear(ctx context.Context) error {
	if err := r.store.Set(ctx, keyHourlyBuckets, []byte("[]")); err != nil {
		return fmt.Errorf("failed to clear hourly buckets: %w", err)
	}
	return nil
}
