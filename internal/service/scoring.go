package service

import "github.com/zeenhq/zeen/backend/internal/models"

// Per-factor saturation caps for the daily score. An observed count at or
// above its cap contributes the factor's full weight.
const (
	maxDailyAppSwitches   = 40.0
	maxDailyShortSessions = 30.0
	maxDailyNotifications = 40.0
	maxDailyFocusBreaks   = 20.0
)

// Factor weights, fixed and summing to 1.0.
const (
	weightAppSwitches   = 0.35
	weightShortSessions = 0.25
	weightNotifications = 0.25
	weightFocusBreaks   = 0.15
)

// Per-hour caps for the timeline mini-score. Deliberately much lower than
// the daily caps so a single noisy hour still registers.
const (
	maxHourlyAppSwitches   = 8.0
	maxHourlyShortSessions = 5.0
	maxHourlyNotifications = 8.0
	maxHourlyFocusBreaks   = 4.0
)

type scoringService struct{}

// NewScoringService creates the drift scoring engine.
func NewScoringService() ScoringService {
	return &scoringService{}
}

// Score rates one day's behavior as a 0-100 drift score with a per-factor
// breakdown in fixed order: App Switching, Short Sessions, Notifications,
// Focus Breaks. Inputs are never rejected; negative counts clamp to zero.
func (s *scoringService) Score(input models.BehaviorCounters) models.Score {
	factors := []models.ScoreFactor{
		factor("App Switching", weightAppSwitches, input.AppSwitches, maxDailyAppSwitches),
		factor("Short Sessions", weightShortSessions, input.ShortSessions, maxDailyShortSessions),
		factor("Notifications", weightNotifications, input.NotificationInterruptions, maxDailyNotifications),
		factor("Focus Breaks", weightFocusBreaks, input.FocusBreaks, maxDailyFocusBreaks),
	}

	total := 0
	for _, f := range factors {
		total += f.Contribution
	}
	value := clamp(total, 0, 100)

	return models.Score{
		Value:   value,
		Level:   models.LevelForScore(value),
		Factors: factors,
	}
}

// HourlyScore rates a single hour's bucket on the 0-100 scale using the
// per-hour caps.
func (s *scoringService) HourlyScore(entry models.HourlyEntry) int {
	raw := (normalize(entry.AppSwitches, maxHourlyAppSwitches)*weightAppSwitches +
		normalize(entry.ShortSessions, maxHourlyShortSessions)*weightShortSessions +
		normalize(entry.Notifications, maxHourlyNotifications)*weightNotifications +
		normalize(entry.FocusBreaks, maxHourlyFocusBreaks)*weightFocusBreaks) * 100
	return clamp(int(raw), 0, 100)
}

func factor(title string, weight float64, observed int, limit float64) models.ScoreFactor {
	if observed < 0 {
		observed = 0
	}
	return models.ScoreFactor{
		Title:        title,
		Weight:       weight,
		Observed:     observed,
		Contribution: int(normalize(observed, limit) * 100 * weight),
	}
}

func normalize(observed int, limit float64) float64 {
	if observed < 0 {
		observed = 0
	}
	n := float64(observed) / limit
	if n > 1.0 {
		return 1.0
	}
	return n
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
