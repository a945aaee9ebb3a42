package service

import (
	"sync"
	"time"

	"github.com/zeenhq/zeen/backend/internal/logger"
	"github.com/zeenhq/zeen/backend/internal/repository"
	"github.com/zeenhq/zeen/backend/internal/store"
)

// fixedClock returns a settable time, so day rollover and hour bucketing
// can be driven deterministically.
type fixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFixedClock(t time.Time) *fixedClock {
	return &fixedClock{now: t}
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fixedClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func (c *fixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// testEnv bundles the in-memory persistence stack shared by the service
// tests.
type testEnv struct {
	clock   *fixedClock
	store   store.Store
	counter repository.CounterRepository
	hourly  repository.HourlyRepository
	history repository.HistoryRepository
	focus   repository.FocusRepository
	profile repository.ProfileRepository
	scoring ScoringService
	tracker TrackerService
}

func newTestEnv(now time.Time) *testEnv {
	s := store.NewMemory()
	env := &testEnv{
		clock:   newFixedClock(now),
		store:   s,
		counter: repository.NewCounterRepository(s),
		hourly:  repository.NewHourlyRepository(s),
		history: repository.NewHistoryRepository(s),
		focus:   repository.NewFocusRepository(s),
		profile: repository.NewProfileRepository(s),
		scoring: NewScoringService(),
	}
	env.tracker = NewTrackerService(env.counter, env.hourly, env.history, env.focus, env.scoring, env.clock, testLogger())
	return env
}

func (e *testEnv) aggregation() AggregationService {
	return NewAggregationService(e.tracker, e.history, e.scoring, e.clock)
}

func testLogger() logger.Logger {
	return logger.NewSlogLogger(logger.Config{Level: logger.LevelError, Format: "text"})
}

// mustDate builds a local time for test fixtures.
func mustDate(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, time.Local)
}
