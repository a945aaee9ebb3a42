package service

import (
	"context"
	"sync"
	"time"

	"github.com/zeenhq/zeen/backend/internal/clock"
	"github.com/zeenhq/zeen/backend/internal/logger"
	"github.com/zeenhq/zeen/backend/internal/models"
	"github.com/zeenhq/zeen/backend/internal/repository"
)

// shortSessionThreshold is the foreground duration below which a session
// counts as "short".
const shortSessionThreshold = 120 * time.Second

type hourlyEventType int

const (
	eventAppSwitch hourlyEventType = iota
	eventShortSession
	eventNotification
	eventFocusBreak
)

// trackerService owns all mutable drift state for the current day. Every
// read and write goes through the mutex so no caller can observe the
// daily counter incremented without its hourly bucket, or vice versa.
type trackerService struct {
	mu sync.Mutex

	counters  repository.CounterRepository
	hourly    repository.HourlyRepository
	history   repository.HistoryRepository
	focusRepo repository.FocusRepository
	scoring   ScoringService
	clock     clock.Clock
	log       logger.Logger

	today          models.BehaviorCounters
	sessionStart   *time.Time
	lastBackground *time.Time
}

// NewTrackerService creates the event recorder, restoring today's
// counters from the store and rolling the day over if the persisted date
// is stale.
func NewTrackerService(
	counters repository.CounterRepository,
	hourly repository.HourlyRepository,
	history repository.HistoryRepository,
	focusRepo repository.FocusRepository,
	scoring ScoringService,
	clk clock.Clock,
	log logger.Logger,
) TrackerService {
	t := &trackerService{
		counters:  counters,
		hourly:    hourly,
		history:   history,
		focusRepo: focusRepo,
		scoring:   scoring,
		clock:     clk,
		log:       log,
	}

	ctx := context.Background()
	loaded, err := counters.Load(ctx)
	if err != nil {
		log.Warn("failed to restore counters, starting from zero", logger.Err(err))
	}
	t.today = loaded
	if err := t.rolloverIfNewDay(ctx); err != nil {
		log.Warn("day rollover during startup failed", logger.Err(err))
	}
	return t
}

// RecordAppBecameActive handles a foreground transition. An app switch is
// counted only when a background transition preceded it, so a cold start
// records nothing. If the previous foreground session lasted under the
// short-session threshold it is counted here, using the prior session's
// start and background timestamps.
func (t *trackerService) RecordAppBecameActive(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.rolloverIfNewDay(ctx); err != nil {
		return err
	}
	now := t.clock.Now()

	if t.lastBackground != nil {
		t.today.AppSwitches++
		if err := t.bumpHour(ctx, eventAppSwitch); err != nil {
			return err
		}

		start := *t.lastBackground
		if t.sessionStart != nil {
			start = *t.sessionStart
		}
		duration := t.lastBackground.Sub(start)
		if duration > 0 && duration < shortSessionThreshold {
			t.today.ShortSessions++
			if err := t.bumpHour(ctx, eventShortSession); err != nil {
				return err
			}
		}
	}

	t.sessionStart = &now
	t.lastBackground = nil

	return t.counters.Save(ctx, t.today)
}

// RecordAppEnteredBackground stamps the background transition and writes
// the end-of-day snapshot so history survives process death while
// backgrounded.
func (t *trackerService) RecordAppEnteredBackground(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.rolloverIfNewDay(ctx); err != nil {
		return err
	}
	now := t.clock.Now()
	t.lastBackground = &now

	if err := t.counters.Save(ctx, t.today); err != nil {
		return err
	}
	return t.saveSnapshotLocked(ctx)
}

func (t *trackerService) RecordNotificationInterruption(ctx context.Context) error {
	return t.RecordNotifications(ctx, 1)
}

// RecordNotifications records a batch of notification interruptions.
// Non-positive counts are a no-op.
func (t *trackerService) RecordNotifications(ctx context.Context, count int) error {
	if count <= 0 {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.rolloverIfNewDay(ctx); err != nil {
		return err
	}
	t.today.NotificationInterruptions += count
	if err := t.bumpHourN(ctx, eventNotification, count); err != nil {
		return err
	}
	return t.counters.Save(ctx, t.today)
}

// RecordDeliveredNotifications takes the device's total delivered
// notification count and records only the delta since the last check.
func (t *trackerService) RecordDeliveredNotifications(ctx context.Context, total int) error {
	if total < 0 {
		return nil
	}

	t.mu.Lock()
	if err := t.rolloverIfNewDay(ctx); err != nil {
		t.mu.Unlock()
		return err
	}
	mark, err := t.counters.DeliveredWatermark(ctx)
	if err != nil {
		t.mu.Unlock()
		return err
	}
	fresh := total - mark
	if err := t.counters.SetDeliveredWatermark(ctx, total); err != nil {
		t.mu.Unlock()
		return err
	}
	t.mu.Unlock()

	if fresh <= 0 {
		return nil
	}
	return t.RecordNotifications(ctx, fresh)
}

func (t *trackerService) RecordFocusBreak(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.rolloverIfNewDay(ctx); err != nil {
		return err
	}
	t.today.FocusBreaks++
	if err := t.bumpHour(ctx, eventFocusBreak); err != nil {
		return err
	}
	return t.counters.Save(ctx, t.today)
}

// TodayCounters returns a snapshot of today's counters after a rollover
// check.
func (t *trackerService) TodayCounters(ctx context.Context) (models.BehaviorCounters, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.rolloverIfNewDay(ctx); err != nil {
		return models.BehaviorCounters{}, err
	}
	return t.today, nil
}

// HourlyBuckets returns today's hour buckets under the recorder lock so
// readers never see a half-applied event.
func (t *trackerService) HourlyBuckets(ctx context.Context) (map[int]models.HourlyEntry, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.rolloverIfNewDay(ctx); err != nil {
		return nil, err
	}
	return t.hourly.Load(ctx)
}

// SaveTodaySnapshot scores today's counters and upserts the daily history
// entry for the current date. Repeated calls overwrite the same day.
func (t *trackerService) SaveTodaySnapshot(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.saveSnapshotLocked(ctx)
}

func (t *trackerService) saveSnapshotLocked(ctx context.Context) error {
	score := t.scoring.Score(t.today)
	entry := models.DailyEntry{
		Score:            score.Value,
		DeepFocusMinutes: t.deepFocusMinutesToday(ctx),
	}
	return t.history.Upsert(ctx, clock.DateKey(t.clock.Now()), entry)
}

// deepFocusMinutesToday sums completed focus-session minutes for today.
func (t *trackerService) deepFocusMinutesToday(ctx context.Context) int {
	sessions, err := t.focusRepo.LoadSessions(ctx)
	if err != nil {
		t.log.Warn("failed to load focus sessions for snapshot", logger.Err(err))
		return 0
	}

	now := t.clock.Now()
	seconds := 0
	for _, s := range sessions {
		if s.Completed && clock.SameDay(s.CompletedAt, now) {
			seconds += s.ElapsedSeconds
		}
	}
	return seconds / 60
}

// rolloverIfNewDay resets all daily state when the persisted active date
// differs from today. Safe to call repeatedly; after the first reset of a
// day it is a no-op.
func (t *trackerService) rolloverIfNewDay(ctx context.Context) error {
	todayKey := clock.DateKey(t.clock.Now())
	lastKey, err := t.counters.LastActiveDate(ctx)
	if err != nil {
		return err
	}
	if lastKey == todayKey {
		return nil
	}

	t.today = models.BehaviorCounters{}
	if err := t.counters.Save(ctx, t.today); err != nil {
		return err
	}
	if err := t.hourly.Clear(ctx); err != nil {
		return err
	}
	if err := t.counters.SetDeliveredWatermark(ctx, 0); err != nil {
		return err
	}
	if err := t.counters.SetLastActiveDate(ctx, todayKey); err != nil {
		return err
	}

	if lastKey != "" {
		t.log.Info("rolled over to new day",
			logger.String("previous", lastKey),
			logger.String("current", todayKey),
		)
	}
	return nil
}

func (t *trackerService) bumpHour(ctx context.Context, event hourlyEventType) error {
	return t.bumpHourN(ctx, event, 1)
}

func (t *trackerService) bumpHourN(ctx context.Context, event hourlyEventType, n int) error {
	buckets, err := t.hourly.Load(ctx)
	if err != nil {
		return err
	}

	hour := t.clock.Now().Hour()
	entry := buckets[hour]
	switch event {
	case eventAppSwitch:
		entry.AppSwitches += n
	case eventShortSession:
		entry.ShortSessions += n
	case eventNotification:
		entry.Notifications += n
	case eventFocusBreak:
		entry.FocusBreaks += n
	}
	buckets[hour] = entry

	return t.hourly.Save(ctx, buckets)
}
