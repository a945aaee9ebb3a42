package service

import (
	"context"

	"github.com/zeenhq/zeen/backend/internal/clock"
	"github.com/zeenhq/zeen/backend/internal/models"
	"github.com/zeenhq/zeen/backend/internal/repository"
)

const (
	calmUnlockScore    = 30
	calmStreakScore    = 40
	earlyBirdHourLimit = 8
)

// achievementService evaluates the badge catalog against live data.
// Unlock state is computed on every call and never persisted, so badges
// can lock again if conditions stop holding.
type achievementService struct {
	aggregation AggregationService
	focusRepo   repository.FocusRepository
	clock       clock.Clock
}

// NewAchievementService creates the badge evaluator.
func NewAchievementService(aggregation AggregationService, focusRepo repository.FocusRepository, clk clock.Clock) AchievementService {
	return &achievementService{
		aggregation: aggregation,
		focusRepo:   focusRepo,
		clock:       clk,
	}
}

// Evaluate returns the full catalog with unlock state applied.
func (s *achievementService) Evaluate(ctx context.Context) ([]models.Achievement, error) {
	daily, err := s.aggregation.DailySummary(ctx)
	if err != nil {
		return nil, err
	}
	weekly, err := s.aggregation.WeeklySummary(ctx)
	if err != nil {
		return nil, err
	}
	sessions, err := s.focusRepo.LoadSessions(ctx)
	if err != nil {
		return nil, err
	}

	completedSessions := 0
	for _, session := range sessions {
		if session.Completed {
			completedSessions++
		}
	}

	streak := weekly.CurrentCalmStreak(calmStreakScore)
	now := s.clock.Now()

	badges := models.AchievementCatalog()
	for i := range badges {
		switch badges[i].ID {
		case "first_calm":
			badges[i].Unlocked = weekly.AverageScore() < calmUnlockScore || daily.Score.Value < calmUnlockScore
		case "streak_3":
			badges[i].Unlocked = streak >= 3
		case "streak_7":
			badges[i].Unlocked = streak >= 7
		case "focus_first":
			badges[i].Unlocked = completedSessions >= 1
		case "focus_10":
			badges[i].Unlocked = completedSessions >= 10
		case "early_bird":
			badges[i].Unlocked = now.Hour() < earlyBirdHourLimit
		case "perfect_day":
			badges[i].Unlocked = perfectDay(daily.Timeline)
		}
		if badges[i].Unlocked {
			unlockedAt := now
			badges[i].UnlockedAt = &unlockedAt
		}
	}
	return badges, nil
}

// perfectDay holds when every hour seen so far stayed in the calm band.
func perfectDay(timeline []models.TimelinePoint) bool {
	if len(timeline) == 0 {
		return false
	}
	for _, p := range timeline {
		if p.Score >= calmUnlockScore {
			return false
		}
	}
	return true
}
