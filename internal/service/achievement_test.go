package service

import (
	"context"
	"testing"
	"time"

	"github.com/zeenhq/zeen/backend/internal/models"
)

func newAchievementEnv(now time.Time) (*testEnv, AchievementService) {
	env := newTestEnv(now)
	svc := NewAchievementService(env.aggregation(), env.focus, env.clock)
	return env, svc
}

func badgeByID(t *testing.T, badges []models.Achievement, id string) models.Achievement {
	t.Helper()
	for _, b := range badges {
		if b.ID == id {
			return b
		}
	}
	t.Fatalf("badge %q not in catalog", id)
	return models.Achievement{}
}

func TestEvaluateReturnsFullCatalog(t *testing.T) {
	ctx := context.Background()
	_, svc := newAchievementEnv(mustDate(2026, time.March, 2, 12))

	badges, err := svc.Evaluate(ctx)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if len(badges) != 8 {
		t.Errorf("expected 8 badges, got %d", len(badges))
	}
}

func TestFirstCalmUnlocksOnLowScore(t *testing.T) {
	ctx := context.Background()
	env, svc := newAchievementEnv(mustDate(2026, time.March, 2, 12))

	badges, err := svc.Evaluate(ctx)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	// A zero-data day scores 0, which is below the calm threshold.
	if badge := badgeByID(t, badges, "first_calm"); !badge.Unlocked {
		t.Error("expected first_calm unlocked at score 0")
	}

	// Push today's score to 40 (25 from notifications, 15 from breaks)
	// and fill the week with loud days.
	if err := env.tracker.RecordNotifications(ctx, 40); err != nil {
		t.Fatalf("RecordNotifications failed: %v", err)
	}
	for i := 0; i < 20; i++ {
		if err := env.tracker.RecordFocusBreak(ctx); err != nil {
			t.Fatalf("RecordFocusBreak failed: %v", err)
		}
	}
	mustUpsert(t, env, "2026-03-02", models.DailyEntry{Score: 90})
	mustUpsert(t, env, "2026-03-01", models.DailyEntry{Score: 90})
	mustUpsert(t, env, "2026-02-28", models.DailyEntry{Score: 90})
	mustUpsert(t, env, "2026-02-27", models.DailyEntry{Score: 90})
	mustUpsert(t, env, "2026-02-26", models.DailyEntry{Score: 90})
	mustUpsert(t, env, "2026-02-25", models.DailyEntry{Score: 90})
	mustUpsert(t, env, "2026-02-24", models.DailyEntry{Score: 90})

	badges, err = svc.Evaluate(ctx)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if badge := badgeByID(t, badges, "first_calm"); badge.Unlocked {
		t.Error("expected first_calm locked with daily 40 and weekly 90")
	}
}

func TestStreakBadges(t *testing.T) {
	ctx := context.Background()
	env, svc := newAchievementEnv(mustDate(2026, time.March, 8, 12))

	// Last three days calm, the day before loud.
	mustUpsert(t, env, "2026-03-08", models.DailyEntry{Score: 20})
	mustUpsert(t, env, "2026-03-07", models.DailyEntry{Score: 30})
	mustUpsert(t, env, "2026-03-06", models.DailyEntry{Score: 10})
	mustUpsert(t, env, "2026-03-05", models.DailyEntry{Score: 80})

	badges, err := svc.Evaluate(ctx)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if badge := badgeByID(t, badges, "streak_3"); !badge.Unlocked {
		t.Error("expected streak_3 unlocked with a 3-day streak")
	}
	if badge := badgeByID(t, badges, "streak_7"); badge.Unlocked {
		t.Error("expected streak_7 locked with only a 3-day streak")
	}

	// Fill the full week below the streak threshold.
	mustUpsert(t, env, "2026-03-05", models.DailyEntry{Score: 15})
	mustUpsert(t, env, "2026-03-04", models.DailyEntry{Score: 15})
	mustUpsert(t, env, "2026-03-03", models.DailyEntry{Score: 15})
	mustUpsert(t, env, "2026-03-02", models.DailyEntry{Score: 15})

	badges, err = svc.Evaluate(ctx)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if badge := badgeByID(t, badges, "streak_7"); !badge.Unlocked {
		t.Error("expected streak_7 unlocked with a full calm week")
	}
}

func TestFocusBadges(t *testing.T) {
	ctx := context.Background()
	now := mustDate(2026, time.March, 2, 12)
	env, svc := newAchievementEnv(now)

	badges, err := svc.Evaluate(ctx)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if badge := badgeByID(t, badges, "focus_first"); badge.Unlocked {
		t.Error("expected focus_first locked with no sessions")
	}

	sessions := make([]models.FocusSessionRecord, 0, 10)
	for i := 0; i < 10; i++ {
		sessions = append(sessions, models.FocusSessionRecord{
			ID:             string(rune('a' + i)),
			Type:           models.FocusDeepWork,
			ElapsedSeconds: 1500,
			TargetSeconds:  1500,
			CompletedAt:    now.AddDate(0, 0, -i),
			Completed:      i < 9,
		})
	}
	if err := env.focus.SaveSessions(ctx, sessions); err != nil {
		t.Fatalf("save sessions failed: %v", err)
	}

	badges, err = svc.Evaluate(ctx)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if badge := badgeByID(t, badges, "focus_first"); !badge.Unlocked {
		t.Error("expected focus_first unlocked")
	}
	// 9 completed of 10 recorded sessions is one short of focus_10.
	if badge := badgeByID(t, badges, "focus_10"); badge.Unlocked {
		t.Error("expected focus_10 locked at 9 completed sessions")
	}
}

func TestEarlyBird(t *testing.T) {
	ctx := context.Background()
	_, svc := newAchievementEnv(mustDate(2026, time.March, 2, 7))

	badges, err := svc.Evaluate(ctx)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if badge := badgeByID(t, badges, "early_bird"); !badge.Unlocked {
		t.Error("expected early_bird unlocked at 7am")
	}

	_, lateSvc := newAchievementEnv(mustDate(2026, time.March, 2, 8))
	badges, err = lateSvc.Evaluate(ctx)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if badge := badgeByID(t, badges, "early_bird"); badge.Unlocked {
		t.Error("expected early_bird locked at 8am")
	}
}

func TestPerfectDayRequiresAllCalmHours(t *testing.T) {
	ctx := context.Background()
	env, svc := newAchievementEnv(mustDate(2026, time.March, 2, 10))

	// Quiet hours so far today score 0, all below the calm band.
	badges, err := svc.Evaluate(ctx)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if badge := badgeByID(t, badges, "perfect_day"); !badge.Unlocked {
		t.Error("expected perfect_day unlocked with an all-quiet timeline")
	}

	// One saturated hour pushes that point out of the calm band.
	if err := env.tracker.RecordNotifications(ctx, 8); err != nil {
		t.Fatalf("RecordNotifications failed: %v", err)
	}
	if err := env.tracker.RecordFocusBreak(ctx); err != nil {
		t.Fatalf("RecordFocusBreak failed: %v", err)
	}
	if err := env.tracker.RecordFocusBreak(ctx); err != nil {
		t.Fatalf("RecordFocusBreak failed: %v", err)
	}

	badges, err = svc.Evaluate(ctx)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if badge := badgeByID(t, badges, "perfect_day"); badge.Unlocked {
		t.Error("expected perfect_day locked after a loud hour")
	}
}

func TestBreatheStaysLocked(t *testing.T) {
	ctx := context.Background()
	_, svc := newAchievementEnv(mustDate(2026, time.March, 2, 12))

	badges, err := svc.Evaluate(ctx)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if badge := badgeByID(t, badges, "breathe"); badge.Unlocked {
		t.Error("expected breathe locked; breathing exercises happen client-side")
	}
}
