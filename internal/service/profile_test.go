package service

import (
	"context"
	"testing"
	"time"

	"github.com/zeenhq/zeen/backend/internal/models"
)

func TestProfileGetDefaultsWhenMissing(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(mustDate(2026, time.March, 2, 10))
	svc := NewProfileService(env.profile, env.clock)

	profile, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if profile.GoalAverageScore != models.DefaultGoalAverageScore {
		t.Errorf("expected default goal %d, got %d", models.DefaultGoalAverageScore, profile.GoalAverageScore)
	}

	// The default is not persisted until a write happens.
	stored, err := env.profile.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if stored != nil {
		t.Error("expected no stored profile after a read")
	}
}

func TestProfileUpdateCreatesAndPreserves(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(mustDate(2026, time.March, 2, 10))
	svc := NewProfileService(env.profile, env.clock)

	profile, err := svc.Update(ctx, "Ada Lovelace", "ada@example.com")
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if profile.Name != "Ada Lovelace" || profile.Email != "ada@example.com" {
		t.Errorf("unexpected profile %+v", profile)
	}
	if profile.JoinDate.IsZero() {
		t.Error("expected join date to be set on first update")
	}
	if got := profile.FirstName(); got != "Ada" {
		t.Errorf("expected first name Ada, got %q", got)
	}

	if _, err := svc.UpdateGoal(ctx, 55); err != nil {
		t.Fatalf("UpdateGoal failed: %v", err)
	}
	updated, err := svc.Update(ctx, "Ada King", "ada@example.com")
	if err != nil {
		t.Fatalf("second Update failed: %v", err)
	}
	if updated.GoalAverageScore != 55 {
		t.Errorf("expected goal preserved at 55, got %d", updated.GoalAverageScore)
	}
	if !updated.JoinDate.Equal(profile.JoinDate) {
		t.Errorf("expected join date preserved, got %v", updated.JoinDate)
	}
}

func TestProfileGoalClamping(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(mustDate(2026, time.March, 2, 10))
	svc := NewProfileService(env.profile, env.clock)

	tests := []struct {
		goal int
		want int
	}{
		{5, 10},
		{10, 10},
		{40, 40},
		{90, 90},
		{120, 90},
		{-3, 10},
	}
	for _, tt := range tests {
		profile, err := svc.UpdateGoal(ctx, tt.goal)
		if err != nil {
			t.Fatalf("UpdateGoal(%d) failed: %v", tt.goal, err)
		}
		if profile.GoalAverageScore != tt.want {
			t.Errorf("UpdateGoal(%d) = %d, want %d", tt.goal, profile.GoalAverageScore, tt.want)
		}
	}
}
