package service

import (
	"context"
	"errors"

	"github.com/zeenhq/zeen/backend/internal/models"
)

// Focus session state errors, mapped to 409/400 at the HTTP edge.
var (
	ErrSessionRunning     = errors.New("a focus session is already running")
	ErrNoActiveSession    = errors.New("no focus session is active")
	ErrSessionNotPaused   = errors.New("focus session is not paused")
	ErrInvalidSessionType = errors.New("unknown focus session type")
)

// ScoringService converts raw behavior counters into drift scores.
// Implementations are pure and stateless.
type ScoringService interface {
	Score(input models.BehaviorCounters) models.Score
	HourlyScore(entry models.HourlyEntry) int
}

// TrackerService is the event recorder: it owns today's counters, the
// hourly buckets, day rollover, and the end-of-day snapshot.
type TrackerService interface {
	RecordAppBecameActive(ctx context.Context) error
	RecordAppEnteredBackground(ctx context.Context) error
	RecordNotificationInterruption(ctx context.Context) error
	RecordNotifications(ctx context.Context, count int) error
	RecordDeliveredNotifications(ctx context.Context, total int) error
	RecordFocusBreak(ctx context.Context) error
	TodayCounters(ctx context.Context) (models.BehaviorCounters, error)
	HourlyBuckets(ctx context.Context) (map[int]models.HourlyEntry, error)
	SaveTodaySnapshot(ctx context.Context) error
}

// AggregationService builds timelines, weekly summaries, and historical
// records from recorded data.
type AggregationService interface {
	DailySummary(ctx context.Context) (models.DailySummary, error)
	HourlyTimeline(ctx context.Context) ([]models.TimelinePoint, error)
	WeeklySummary(ctx context.Context) (models.WeeklySummary, error)
	HistoricalRecords(ctx context.Context, days int) ([]models.DailyRecord, error)
}

// InsightService derives qualitative insights and the weekly trend.
// Both methods are pure functions of their inputs.
type InsightService interface {
	GenerateInsights(daily models.DailySummary, weekly models.WeeklySummary, profile *models.UserProfile) []models.Insight
	TrendDirection(weekly models.WeeklySummary) models.TrendDirection
}

// FocusService runs the focus-session countdown and records finished
// sessions.
type FocusService interface {
	Start(ctx context.Context, sessionType models.FocusSessionType, durationMinutes int) error
	Pause(ctx context.Context) error
	Resume(ctx context.Context) error
	Stop(ctx context.Context) error
	Status() models.FocusStatus
	TodayStats(ctx context.Context) (models.FocusDayStats, error)
	InterruptIfRunning(ctx context.Context) (bool, error)
}

// AchievementService evaluates the badge catalog against current data.
type AchievementService interface {
	Evaluate(ctx context.Context) ([]models.Achievement, error)
}

// ProfileService manages the user profile and drift goal.
type ProfileService interface {
	Get(ctx context.Context) (*models.UserProfile, error)
	Update(ctx context.Context, name, email string) (*models.UserProfile, error)
	UpdateGoal(ctx context.Context, goal int) (*models.UserProfile, error)
}
