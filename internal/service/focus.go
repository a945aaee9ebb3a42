package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zeenhq/zeen/backend/internal/clock"
	"github.com/zeenhq/zeen/backend/internal/logger"
	"github.com/zeenhq/zeen/backend/internal/models"
	"github.com/zeenhq/zeen/backend/internal/repository"
)

// minRecordableSeconds is the elapsed time below which a stopped session
// is discarded instead of being recorded as incomplete.
const minRecordableSeconds = 5

// focusService runs the one-at-a-time focus countdown. A background
// goroutine ticks once per second while a session exists; all state is
// guarded by the mutex.
type focusService struct {
	mu sync.Mutex

	repo    repository.FocusRepository
	tracker TrackerService
	clock   clock.Clock
	log     logger.Logger

	state            models.FocusSessionState
	sessionID        string
	sessionType      models.FocusSessionType
	totalSeconds     int
	remainingSeconds int
	stopTick         chan struct{}
}

// NewFocusService creates the focus-session countdown service.
func NewFocusService(repo repository.FocusRepository, tracker TrackerService, clk clock.Clock, log logger.Logger) FocusService {
	return &focusService{
		repo:    repo,
		tracker: tracker,
		clock:   clk,
		log:     log,
		state:   models.FocusStateIdle,
	}
}

// Start begins a new countdown. Zero or negative duration falls back to
// the type's default length. Only one session may exist at a time.
func (f *focusService) Start(ctx context.Context, sessionType models.FocusSessionType, durationMinutes int) error {
	if !sessionType.Valid() {
		return ErrInvalidSessionType
	}
	if durationMinutes <= 0 {
		durationMinutes = sessionType.DefaultMinutes()
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != models.FocusStateIdle {
		return ErrSessionRunning
	}

	f.state = models.FocusStateRunning
	f.sessionID = uuid.NewString()
	f.sessionType = sessionType
	f.totalSeconds = durationMinutes * 60
	f.remainingSeconds = f.totalSeconds
	f.stopTick = make(chan struct{})
	go f.run(f.stopTick)

	f.log.Info("focus session started",
		logger.String("session_id", f.sessionID),
		logger.String("type", string(sessionType)),
		logger.Int("minutes", durationMinutes),
	)
	return nil
}

// Pause freezes the countdown without ending the session.
func (f *focusService) Pause(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == models.FocusStateIdle {
		return ErrNoActiveSession
	}
	f.state = models.FocusStatePaused
	return nil
}

// Resume continues a paused countdown.
func (f *focusService) Resume(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == models.FocusStateIdle {
		return ErrNoActiveSession
	}
	if f.state != models.FocusStatePaused {
		return ErrSessionNotPaused
	}
	f.state = models.FocusStateRunning
	return nil
}

// Stop ends the session early. Sessions stopped after more than a few
// seconds are recorded as incomplete; anything shorter is discarded.
func (f *focusService) Stop(ctx context.Context) error {
	f.mu.Lock()
	if f.state == models.FocusStateIdle {
		f.mu.Unlock()
		return ErrNoActiveSession
	}

	elapsed := f.totalSeconds - f.remainingSeconds
	record := models.FocusSessionRecord{
		ID:             f.sessionID,
		Type:           f.sessionType,
		ElapsedSeconds: elapsed,
		TargetSeconds:  f.totalSeconds,
		CompletedAt:    f.clock.Now(),
		Completed:      false,
	}
	f.resetLocked()
	f.mu.Unlock()

	if elapsed <= minRecordableSeconds {
		return nil
	}
	return f.record(ctx, record)
}

// Status returns the live countdown state. Safe to call in any state.
func (f *focusService) Status() models.FocusStatus {
	f.mu.Lock()
	defer f.mu.Unlock()

	status := models.FocusStatus{State: f.state}
	if f.state == models.FocusStateIdle {
		return status
	}
	status.Type = f.sessionType
	status.TotalSeconds = f.totalSeconds
	status.RemainingSeconds = f.remainingSeconds
	if f.totalSeconds > 0 {
		status.Progress = float64(f.totalSeconds-f.remainingSeconds) / float64(f.totalSeconds)
	}
	return status
}

// TodayStats summarizes today's recorded sessions.
func (f *focusService) TodayStats(ctx context.Context) (models.FocusDayStats, error) {
	sessions, err := f.repo.LoadSessions(ctx)
	if err != nil {
		return models.FocusDayStats{}, err
	}

	now := f.clock.Now()
	var stats models.FocusDayStats
	for _, s := range sessions {
		if !clock.SameDay(s.CompletedAt, now) {
			continue
		}
		stats.Sessions++
		if s.Completed {
			stats.CompletedSessions++
			stats.FocusMinutes += s.ElapsedSeconds / 60
		}
	}
	return stats, nil
}

// InterruptIfRunning records a focus break when a session is actively
// counting down. Paused sessions are not interrupted.
func (f *focusService) InterruptIfRunning(ctx context.Context) (bool, error) {
	f.mu.Lock()
	running := f.state == models.FocusStateRunning
	f.mu.Unlock()

	if !running {
		return false, nil
	}
	if err := f.tracker.RecordFocusBreak(ctx); err != nil {
		return true, err
	}
	return true, nil
}

func (f *focusService) run(stop chan struct{}) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			f.tick()
		}
	}
}

// tick advances the countdown by one second and records the finished
// session when it reaches zero.
func (f *focusService) tick() {
	f.mu.Lock()
	if f.state != models.FocusStateRunning {
		f.mu.Unlock()
		return
	}
	f.remainingSeconds--
	if f.remainingSeconds > 0 {
		f.mu.Unlock()
		return
	}

	record := models.FocusSessionRecord{
		ID:             f.sessionID,
		Type:           f.sessionType,
		ElapsedSeconds: f.totalSeconds,
		TargetSeconds:  f.totalSeconds,
		CompletedAt:    f.clock.Now(),
		Completed:      true,
	}
	f.resetLocked()
	f.mu.Unlock()

	if err := f.record(context.Background(), record); err != nil {
		f.log.Error("failed to record completed focus session", logger.Err(err))
	}
}

// record prepends the session to the persisted list and refreshes today's
// history snapshot so deep-focus minutes stay current.
func (f *focusService) record(ctx context.Context, record models.FocusSessionRecord) error {
	sessions, err := f.repo.LoadSessions(ctx)
	if err != nil {
		return err
	}
	sessions = append([]models.FocusSessionRecord{record}, sessions...)
	if err := f.repo.SaveSessions(ctx, sessions); err != nil {
		return fmt.Errorf("failed to record focus session: %w", err)
	}

	if err := f.tracker.SaveTodaySnapshot(ctx); err != nil {
		f.log.Warn("failed to refresh daily snapshot after focus session", logger.Err(err))
	}
	return nil
}

// resetLocked returns the service to idle and stops the tick goroutine.
// Caller must hold the mutex.
func (f *focusService) resetLocked() {
	if f.stopTick != nil {
		close(f.stopTick)
		f.stopTick = nil
	}
	f.state = models.FocusStateIdle
	f.sessionID = ""
	f.sessionType = ""
	f.totalSeconds = 0
	f.remainingSeconds = 0
}
