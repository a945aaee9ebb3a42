package repository

import (
	"context"

	"github.com/zeenhq/zeen/backend/internal/models"
)

// CounterRepository persists today's raw counters and the recorder's
// bookkeeping values (active date, delivered-notification watermark).
type CounterRepository interface {
	Load(ctx context.Context) (models.BehaviorCounters, error)
	Save(ctx context.Context, counters models.BehaviorCounters) error
	LastActiveDate(ctx context.Context) (string, error)
	SetLastActiveDate(ctx context.Context, dateKey string) error
	DeliveredWatermark(ctx context.Context) (int, error)
	SetDeliveredWatermark(ctx context.Context, count int) error
}

// HourlyRepository persists today's hour-of-day event buckets.
type HourlyRepository interface {
	Load(ctx context.Context) (map[int]models.HourlyEntry, error)
	Save(ctx context.Context, buckets map[int]models.HourlyEntry) error
	Clear(ctx context.Context) error
}

// HistoryRepository persists the rolling daily drift history keyed by
// calendar date.
type HistoryRepository interface {
	Load(ctx context.Context) (map[string]models.DailyEntry, error)
	Upsert(ctx context.Context, dateKey string, entry models.DailyEntry) error
}

// ProfileRepository persists the single user profile. Load returns
// (nil, nil) when no profile exists.
type ProfileRepository interface {
	Load(ctx context.Context) (*models.UserProfile, error)
	Save(ctx context.Context, profile *models.UserProfile) error
	Delete(ctx context.Context) error
}

// FocusRepository persists finished focus-session records.
type FocusRepository interface {
	LoadSessions(ctx context.Context) ([]models.FocusSessionRecord, error)
	SaveSessions(ctx context.Context, sessions []models.FocusSessionRecord) error
}
