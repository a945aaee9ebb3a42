package service

import (
	"context"

	"github.com/zeenhq/zeen/backend/internal/clock"
	"github.com/zeenhq/zeen/backend/internal/models"
	"github.com/zeenhq/zeen/backend/internal/repository"
)

const (
	minGoalAverageScore = 10
	maxGoalAverageScore = 90
)

type profileService struct {
	repo  repository.ProfileRepository
	clock clock.Clock
}

// NewProfileService creates the profile manager.
func NewProfileService(repo repository.ProfileRepository, clk clock.Clock) ProfileService {
	return &profileService{repo: repo, clock: clk}
}

// Get returns the stored profile, or a default profile when none exists.
// The default is not persisted until the first update.
func (s *profileService) Get(ctx context.Context) (*models.UserProfile, error) {
	profile, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return s.defaultProfile(), nil
	}
	return profile, nil
}

// Update sets the profile name and email, creating the profile on first
// use. Goal and join date are preserved across updates.
func (s *profileService) Update(ctx context.Context, name, email string) (*models.UserProfile, error) {
	profile, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		profile = s.defaultProfile()
	}

	profile.Name = name
	profile.Email = email
	if err := s.repo.Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// UpdateGoal sets the weekly-average target, clamped to a sane range.
func (s *profileService) UpdateGoal(ctx context.Context, goal int) (*models.UserProfile, error) {
	if goal < minGoalAverageScore {
		goal = minGoalAverageScore
	}
	if goal > maxGoalAverageScore {
		goal = maxGoalAverageScore
	}

	profile, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		profile = s.defaultProfile()
	}

	profile.GoalAverageScore = goal
	if err := s.repo.Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *profileService) defaultProfile() *models.UserProfile {
	return &models.UserProfile{
		GoalAverageScore: models.DefaultGoalAverageScore,
		JoinDate:         s.clock.Now(),
	}
}
