package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/zeenhq/zeen/backend/internal/models"
	"github.com/zeenhq/zeen/backend/internal/store"
)

const keyDailyHistory = "drift:daily_history"

// dailyRow is the persisted wire form of one day's snapshot.
type dailyRow struct {
	Date string `json:"date"`
	models.DailyEntry
}

type historyRepository struct {
	store store.Store
}

// NewHistoryRepository creates a daily-history repository over the store.
func NewHistoryRepository(s store.Store) HistoryRepository {
	return &historyRepository{store: s}
}

// Load returns the daily history keyed by yyyy-MM-dd date key. Missing or
// corrupt data degrades to an empty map.
func (r *historyRepository) Load(ctx context.Context) (map[string]models.DailyEntry, error) {
	raw, err := r.store.Get(ctx, keyDailyHistory)
	if errors.Is(err, store.ErrNotFound) {
		return map[string]models.DailyEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load daily history: %w", err)
	}

	var rows []dailyRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return map[string]models.DailyEntry{}, nil
	}

	history := make(map[string]models.DailyEntry, len(rows))
	for _, row := range rows {
		history[row.Date] = row.DailyEntry
	}
	return history, nil
}

// Upsert writes one day's snapshot; rewriting the same date is
// last-write-wins, matching the multiple-snapshots-per-day contract.
func (r *historyRepository) Upsert(ctx context.Context, dateKey string, entry models.DailyEntry) error {
	history, err := r.Load(ctx)
	if err != nil {
		return err
	}
	history[dateKey] = entry

	rows := make([]dailyRow, 0, len(history))
	for date, e := range history {
		rows = append(rows, dailyRow{Date: date, DailyEntry: e})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date })

	raw, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("failed to marshal daily history: %w", err)
	}
	if err := r.store.Set(ctx, keyDailyHistory, raw); err != nil {
		return fmt.Errorf("failed to save daily history: %w", err)
	}
	return nil
}
