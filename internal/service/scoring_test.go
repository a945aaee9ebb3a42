package service

import (
	"testing"

	"github.com/zeenhq/zeen/backend/internal/models"
)

func TestScoreZeroInput(t *testing.T) {
	svc := NewScoringService()

	score := svc.Score(models.BehaviorCounters{})
	if score.Value != 0 {
		t.Errorf("expected value 0, got %d", score.Value)
	}
	if score.Level != models.DriftLevelCalm {
		t.Errorf("expected calm level, got %s", score.Level)
	}
	if len(score.Factors) != 4 {
		t.Fatalf("expected 4 factors, got %d", len(score.Factors))
	}
	for _, f := range score.Factors {
		if f.Contribution != 0 {
			t.Errorf("factor %q: expected contribution 0, got %d", f.Title, f.Contribution)
		}
	}
}

func TestScoreSaturatedInput(t *testing.T) {
	svc := NewScoringService()

	score := svc.Score(models.BehaviorCounters{
		AppSwitches:               40,
		ShortSessions:             30,
		NotificationInterruptions: 40,
		FocusBreaks:               20,
	})
	if score.Value != 100 {
		t.Errorf("expected value 100 at saturation, got %d", score.Value)
	}
	if score.Level != models.DriftLevelOverloaded {
		t.Errorf("expected overloaded level, got %s", score.Level)
	}
}

func TestScoreBeyondCapsStaysAt100(t *testing.T) {
	svc := NewScoringService()

	score := svc.Score(models.BehaviorCounters{
		AppSwitches:               999,
		ShortSessions:             999,
		NotificationInterruptions: 999,
		FocusBreaks:               999,
	})
	if score.Value != 100 {
		t.Errorf("expected value 100 beyond caps, got %d", score.Value)
	}
}

func TestScoreFactorOrderAndWeights(t *testing.T) {
	svc := NewScoringService()

	score := svc.Score(models.BehaviorCounters{AppSwitches: 10})
	wantTitles := []string{"App Switching", "Short Sessions", "Notifications", "Focus Breaks"}
	wantWeights := []float64{0.35, 0.25, 0.25, 0.15}

	if len(score.Factors) != len(wantTitles) {
		t.Fatalf("expected %d factors, got %d", len(wantTitles), len(score.Factors))
	}
	weightSum := 0.0
	for i, f := range score.Factors {
		if f.Title != wantTitles[i] {
			t.Errorf("factor %d: expected title %q, got %q", i, wantTitles[i], f.Title)
		}
		if f.Weight != wantWeights[i] {
			t.Errorf("factor %d: expected weight %v, got %v", i, wantWeights[i], f.Weight)
		}
		weightSum += f.Weight
	}
	if weightSum < 0.99 || weightSum > 1.01 {
		t.Errorf("expected weights to sum to 1.0, got %v", weightSum)
	}
}

func TestScoreSingleFactorContribution(t *testing.T) {
	svc := NewScoringService()

	// 10 of 40 app switches at weight 0.35 contributes 8 (truncated from 8.75).
	score := svc.Score(models.BehaviorCounters{AppSwitches: 10})
	if got := score.Factors[0].Contribution; got != 8 {
		t.Errorf("expected contribution 8, got %d", got)
	}
	if score.Value != 8 {
		t.Errorf("expected value 8, got %d", score.Value)
	}
}

func TestScoreNegativeInputClampsToZero(t *testing.T) {
	svc := NewScoringService()

	score := svc.Score(models.BehaviorCounters{
		AppSwitches:               -5,
		ShortSessions:             -1,
		NotificationInterruptions: -100,
		FocusBreaks:               -3,
	})
	if score.Value != 0 {
		t.Errorf("expected value 0 for negative inputs, got %d", score.Value)
	}
	for _, f := range score.Factors {
		if f.Observed != 0 {
			t.Errorf("factor %q: expected observed 0, got %d", f.Title, f.Observed)
		}
	}
}

func TestLevelBoundaries(t *testing.T) {
	tests := []struct {
		value int
		want  models.DriftLevel
	}{
		{0, models.DriftLevelCalm},
		{24, models.DriftLevelCalm},
		{25, models.DriftLevelMild},
		{49, models.DriftLevelMild},
		{50, models.DriftLevelHigh},
		{74, models.DriftLevelHigh},
		{75, models.DriftLevelOverloaded},
		{100, models.DriftLevelOverloaded},
	}
	for _, tt := range tests {
		if got := models.LevelForScore(tt.value); got != tt.want {
			t.Errorf("LevelForScore(%d) = %s, want %s", tt.value, got, tt.want)
		}
	}
}

func TestHourlyScore(t *testing.T) {
	svc := NewScoringService()

	if got := svc.HourlyScore(models.HourlyEntry{}); got != 0 {
		t.Errorf("expected 0 for empty hour, got %d", got)
	}

	saturated := models.HourlyEntry{
		AppSwitches:   8,
		ShortSessions: 5,
		Notifications: 8,
		FocusBreaks:   4,
	}
	if got := svc.HourlyScore(saturated); got != 100 {
		t.Errorf("expected 100 for saturated hour, got %d", got)
	}

	// 4 of 8 app switches at weight 0.35 scores 17 (truncated from 17.5).
	if got := svc.HourlyScore(models.HourlyEntry{AppSwitches: 4}); got != 17 {
		t.Errorf("expected 17 for half-saturated switches, got %d", got)
	}
}
