package service

import (
	"context"
	"fmt"

	"github.com/zeenhq/zeen/backend/internal/clock"
	"github.com/zeenhq/zeen/backend/internal/models"
	"github.com/zeenhq/zeen/backend/internal/repository"
)

// timelineStartHour is the first hour shown on the daily timeline.
const timelineStartHour = 6

type aggregationService struct {
	tracker TrackerService
	history repository.HistoryRepository
	scoring ScoringService
	clock   clock.Clock
}

// NewAggregationService creates the aggregation layer over the recorder
// and the persisted daily history.
func NewAggregationService(
	tracker TrackerService,
	history repository.HistoryRepository,
	scoring ScoringService,
	clk clock.Clock,
) AggregationService {
	return &aggregationService{
		tracker: tracker,
		history: history,
		scoring: scoring,
		clock:   clk,
	}
}

// DailySummary combines today's live score with the hourly timeline.
func (s *aggregationService) DailySummary(ctx context.Context) (models.DailySummary, error) {
	counters, err := s.tracker.TodayCounters(ctx)
	if err != nil {
		return models.DailySummary{}, fmt.Errorf("failed to read today's counters: %w", err)
	}
	timeline, err := s.HourlyTimeline(ctx)
	if err != nil {
		return models.DailySummary{}, err
	}

	return models.DailySummary{
		Date:     clock.StartOfDay(s.clock.Now()),
		Score:    s.scoring.Score(counters),
		Timeline: timeline,
	}, nil
}

// HourlyTimeline yields one point per hour from the timeline start hour
// through the current hour, inclusive. Hours without recorded events
// produce zero points, so the sequence grows across the day.
func (s *aggregationService) HourlyTimeline(ctx context.Context) ([]models.TimelinePoint, error) {
	buckets, err := s.tracker.HourlyBuckets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read hourly buckets: %w", err)
	}

	currentHour := s.clock.Now().Hour()
	endHour := currentHour
	if endHour < timelineStartHour {
		endHour = timelineStartHour
	}

	points := make([]models.TimelinePoint, 0, endHour-timelineStartHour+1)
	for hour := timelineStartHour; hour <= endHour; hour++ {
		entry, ok := buckets[hour]
		if !ok {
			points = append(points, models.TimelinePoint{Hour: hour})
			continue
		}
		points = append(points, models.TimelinePoint{
			Hour:              hour,
			Score:             s.scoring.HourlyScore(entry),
			InterruptionCount: entry.Notifications + entry.FocusBreaks,
		})
	}
	return points, nil
}

// WeeklySummary builds exactly 7 points covering the trailing window
// ending today, oldest first. Days without a snapshot yield zero scores
// with HasData false.
func (s *aggregationService) WeeklySummary(ctx context.Context) (models.WeeklySummary, error) {
	history, err := s.history.Load(ctx)
	if err != nil {
		return models.WeeklySummary{}, fmt.Errorf("failed to load daily history: %w", err)
	}

	weekStart := clock.StartOfDay(s.clock.Now()).AddDate(0, 0, -6)
	points := make([]models.WeeklyDriftPoint, 0, 7)
	for offset := 0; offset < 7; offset++ {
		date := weekStart.AddDate(0, 0, offset)
		entry, ok := history[clock.DateKey(date)]
		points = append(points, models.WeeklyDriftPoint{
			DayIndex:         offset,
			Score:            entry.Score,
			DeepFocusMinutes: entry.DeepFocusMinutes,
			HasData:          ok,
		})
	}

	return models.WeeklySummary{WeekStart: weekStart, Points: points}, nil
}

// HistoricalRecords returns days consecutive calendar records ending
// today, oldest first; days without a snapshot yield score 0.
func (s *aggregationService) HistoricalRecords(ctx context.Context, days int) ([]models.DailyRecord, error) {
	if days <= 0 {
		return nil, nil
	}

	history, err := s.history.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load daily history: %w", err)
	}

	today := clock.StartOfDay(s.clock.Now())
	records := make([]models.DailyRecord, 0, days)
	for offset := 0; offset < days; offset++ {
		date := today.AddDate(0, 0, -(days - 1 - offset))
		entry := history[clock.DateKey(date)]
		records = append(records, models.DailyRecord{
			Date:             date,
			Score:            entry.Score,
			DeepFocusMinutes: entry.DeepFocusMinutes,
		})
	}
	return records, nil
}
