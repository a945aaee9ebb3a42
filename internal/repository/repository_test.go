package repository

import (
	"context"
	"testing"
	"time"

	"github.com/zeenhq/zeen/backend/internal/models"
	"github.com/zeenhq/zeen/backend/internal/store"
)

func TestHourlyRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewHourlyRepository(store.NewMemory())

	buckets := map[int]models.HourlyEntry{
		6:  {AppSwitches: 2, Notifications: 1},
		9:  {AppSwitches: 5, ShortSessions: 3, Notifications: 4, FocusBreaks: 1},
		23: {ShortSessions: 1},
	}
	if err := repo.Save(ctx, buckets); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != len(buckets) {
		t.Fatalf("expected %d buckets, got %d", len(buckets), len(loaded))
	}
	for hour, want := range buckets {
		if got := loaded[hour]; got != want {
			t.Errorf("hour %d: got %+v, want %+v", hour, got, want)
		}
	}
}

func TestHourlyRepositoryEmptyAndClear(t *testing.T) {
	ctx := context.Background()
	repo := NewHourlyRepository(store.NewMemory())

	loaded, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load on empty store failed: %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("expected empty map, got %d entries", len(loaded))
	}

	if err := repo.Save(ctx, map[int]models.HourlyEntry{10: {AppSwitches: 1}}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	loaded, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load after clear failed: %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("expected cleared map, got %d entries", len(loaded))
	}
}

func TestHourlyRepositoryIgnoresCorruptData(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	if err := s.Set(ctx, "drift:hourly", []byte("{not json")); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	loaded, err := NewHourlyRepository(s).Load(ctx)
	if err != nil {
		t.Fatalf("Load should degrade, not fail: %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("expected empty map from corrupt data, got %d entries", len(loaded))
	}
}

func TestHistoryRepositoryUpsertRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewHistoryRepository(store.NewMemory())

	if err := repo.Upsert(ctx, "2026-08-29", models.DailyEntry{Score: 48, DeepFocusMinutes: 113}); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if err := repo.Upsert(ctx, "2026-08-30", models.DailyEntry{Score: 66, DeepFocusMinutes: 76}); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	history, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := history["2026-08-29"]; got != (models.DailyEntry{Score: 48, DeepFocusMinutes: 113}) {
		t.Errorf("2026-08-29: got %+v", got)
	}

	// Re-upserting the same date is last-write-wins.
	if err := repo.Upsert(ctx, "2026-08-30", models.DailyEntry{Score: 31, DeepFocusMinutes: 154}); err != nil {
		t.Fatalf("re-upsert failed: %v", err)
	}
	history, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := history["2026-08-30"]; got != (models.DailyEntry{Score: 31, DeepFocusMinutes: 154}) {
		t.Errorf("2026-08-30 after overwrite: got %+v", got)
	}
	if len(history) != 2 {
		t.Errorf("expected 2 days, got %d", len(history))
	}
}

func TestCounterRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewCounterRepository(store.NewMemory())

	counters, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load on empty store failed: %v", err)
	}
	if counters != (models.BehaviorCounters{}) {
		t.Errorf("expected zero counters, got %+v", counters)
	}

	want := models.BehaviorCounters{AppSwitches: 27, ShortSessions: 16, NotificationInterruptions: 21, FocusBreaks: 8}
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	counters, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if counters != want {
		t.Errorf("counters did not round-trip: got %+v, want %+v", counters, want)
	}

	if err := repo.SetLastActiveDate(ctx, "2026-08-31"); err != nil {
		t.Fatalf("SetLastActiveDate failed: %v", err)
	}
	date, err := repo.LastActiveDate(ctx)
	if err != nil {
		t.Fatalf("LastActiveDate failed: %v", err)
	}
	if date != "2026-08-31" {
		t.Errorf("got date %q", date)
	}

	if err := repo.SetDeliveredWatermark(ctx, 14); err != nil {
		t.Fatalf("SetDeliveredWatermark failed: %v", err)
	}
	mark, err := repo.DeliveredWatermark(ctx)
	if err != nil {
		t.Fatalf("DeliveredWatermark failed: %v", err)
	}
	if mark != 14 {
		t.Errorf("got watermark %d", mark)
	}
}

func TestProfileRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewProfileRepository(store.NewMemory())

	profile, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load on empty store failed: %v", err)
	}
	if profile != nil {
		t.Fatalf("expected nil profile, got %+v", profile)
	}

	joined := time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC)
	want := &models.UserProfile{Name: "Ada Lovelace", Email: "ada@example.com", GoalAverageScore: 35, JoinDate: joined}
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	profile, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if profile == nil || *profile != *want {
		t.Errorf("profile did not round-trip: got %+v, want %+v", profile, want)
	}

	if err := repo.Delete(ctx); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	profile, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load after delete failed: %v", err)
	}
	if profile != nil {
		t.Errorf("expected nil after delete, got %+v", profile)
	}
}

func TestFocusRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewFocusRepository(store.NewMemory())

	done := time.Date(2026, 8, 31, 14, 5, 0, 0, time.UTC)
	sessions := []models.FocusSessionRecord{
		{ID: "a", Type: models.FocusDeepWork, ElapsedSeconds: 1500, TargetSeconds: 1500, CompletedAt: done, Completed: true},
		{ID: "b", Type: models.FocusReading, ElapsedSeconds: 240, TargetSeconds: 1200, CompletedAt: done.Add(-time.Hour), Completed: false},
	}
	if err := repo.SaveSessions(ctx, sessions); err != nil {
		t.Fatalf("SaveSessions failed: %v", err)
	}

	loaded, err := repo.LoadSessions(ctx)
	if err != nil {
		t.Fatalf("LoadSessions failed: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(loaded))
	}
	for i := range sessions {
		if !loaded[i].CompletedAt.Equal(sessions[i].CompletedAt) {
			t.Errorf("session %d timestamp mismatch: got %v, want %v", i, loaded[i].CompletedAt, sessions[i].CompletedAt)
		}
		loaded[i].CompletedAt = sessions[i].CompletedAt
		if loaded[i] != sessions[i] {
			t.Errorf("session %d did not round-trip: got %+v, want %+v", i, loaded[i], sessions[i])
		}
	}
}
