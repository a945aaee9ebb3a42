package service

import (
	"fmt"
	"sort"

	"github.com/zeenhq/zeen/backend/internal/models"
)

const (
	// topDriverWarnThreshold is the contribution a single factor must
	// exceed before the top-driver insight turns into a warning.
	topDriverWarnThreshold = 15

	// minTrendPoints is the minimum number of weekly points required to
	// call a trend; below it the trend is always stable.
	minTrendPoints = 4

	// trendDelta is the half-average difference beyond which the week
	// counts as improving or worsening.
	trendDelta = 5
)

type insightService struct{}

// NewInsightService creates the insight and trend engine.
func NewInsightService() InsightService {
	return &insightService{}
}

// GenerateInsights derives up to four insights, always in the same order:
// overall assessment, top driver, calmest hour, goal tracking. Output is
// deterministic given the inputs.
func (s *insightService) GenerateInsights(daily models.DailySummary, weekly models.WeeklySummary, profile *models.UserProfile) []models.Insight {
	insights := make([]models.Insight, 0, 4)
	value := daily.Score.Value

	switch {
	case value < 25:
		insights = append(insights, models.Insight{
			Icon:  "sparkles",
			Title: "Exceptional focus",
			Body:  "Your cognitive drift is minimal today. Keep protecting these patterns.",
			Tone:  models.TonePositive,
		})
	case value < 50:
		insights = append(insights, models.Insight{
			Icon:  "brain.head.profile",
			Title: "Mild fragmentation",
			Body:  "Some attention scattering, but still within a healthy range.",
			Tone:  models.ToneNeutral,
		})
	case value < 75:
		insights = append(insights, models.Insight{
			Icon:  "exclamationmark.bubble",
			Title: "Elevated drift",
			Body:  "Your attention is fragmenting. Consider a focus block.",
			Tone:  models.ToneWarning,
		})
	default:
		insights = append(insights, models.Insight{
			Icon:  "bolt.trianglebadge.exclamationmark",
			Title: "Cognitive overload",
			Body:  "High mental fatigue detected. Time for a reset.",
			Tone:  models.ToneCritical,
		})
	}

	if top, ok := topDriver(daily.Score.Factors); ok {
		tone := models.ToneNeutral
		if top.Contribution > topDriverWarnThreshold {
			tone = models.ToneWarning
		}
		insights = append(insights, models.Insight{
			Icon:  "arrow.up.right",
			Title: fmt.Sprintf("%s is your top driver", top.Title),
			Body:  fmt.Sprintf("%d instances contributed +%d to your score.", top.Observed, top.Contribution),
			Tone:  tone,
		})
	}

	if calm := daily.MostCalmHour(); calm != nil {
		insights = append(insights, models.Insight{
			Icon:  "leaf",
			Title: fmt.Sprintf("Calmest at %s", calm.HourLabel()),
			Body:  fmt.Sprintf("Score of %d with %d interruptions.", calm.Score, calm.InterruptionCount),
			Tone:  models.TonePositive,
		})
	}

	if profile != nil {
		avg := weekly.AverageScore()
		goal := profile.GoalAverageScore
		if avg < goal {
			insights = append(insights, models.Insight{
				Icon:  "target",
				Title: "On track for your goal",
				Body:  fmt.Sprintf("Weekly average of %d is below your target of %d.", avg, goal),
				Tone:  models.TonePositive,
			})
		} else {
			insights = append(insights, models.Insight{
				Icon:  "exclamationmark.circle",
				Title: "Above your goal",
				Body:  fmt.Sprintf("Weekly average %d exceeds your target of %d. Focus on reducing switches.", avg, goal),
				Tone:  models.ToneWarning,
			})
		}
	}

	return insights
}

// TrendDirection compares the integer mean of the week's earliest half
// against its latest half. With an odd point count the middle point
// belongs to neither half. A drop of more than trendDelta is improving
// (less drift); a rise of more than trendDelta is worsening.
func (s *insightService) TrendDirection(weekly models.WeeklySummary) models.TrendDirection {
	points := make([]models.WeeklyDriftPoint, len(weekly.Points))
	copy(points, weekly.Points)
	if len(points) < minTrendPoints {
		return models.TrendStable
	}
	sort.Slice(points, func(i, j int) bool { return points[i].DayIndex < points[j].DayIndex })

	half := len(points) / 2
	firstAvg := meanScore(points[:half])
	secondAvg := meanScore(points[len(points)-half:])

	diff := secondAvg - firstAvg
	switch {
	case diff < -trendDelta:
		return models.TrendImproving
	case diff > trendDelta:
		return models.TrendWorsening
	default:
		return models.TrendStable
	}
}

// topDriver returns the factor with the largest contribution; ties go to
// the earliest factor in display order.
func topDriver(factors []models.ScoreFactor) (models.ScoreFactor, bool) {
	if len(factors) == 0 {
		return models.ScoreFactor{}, false
	}
	best := factors[0]
	for _, f := range factors[1:] {
		if f.Contribution > best.Contribution {
			best = f
		}
	}
	return best, true
}

func meanScore(points []models.WeeklyDriftPoint) int {
	if len(points) == 0 {
		return 0
	}
	sum := 0
	for _, p := range points {
		sum += p.Score
	}
	return sum / len(points)
}
