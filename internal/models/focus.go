package models

import "time"

// FocusSessionType identifies the kind of focus session being run.
type FocusSessionType string

const (
	FocusDeepWork   FocusSessionType = "deep_work"
	FocusReading    FocusSessionType = "reading"
	FocusCreative   FocusSessionType = "creative"
	FocusMeditation FocusSessionType = "meditation"
)

// FocusSessionTypes lists all session types in display order.
var FocusSessionTypes = []FocusSessionType{FocusDeepWork, FocusReading, FocusCreative, FocusMeditation}

// DefaultMinutes returns the default session length for the type.
func (t FocusSessionType) DefaultMinutes() int {
	switch t {
	case FocusReading:
		return 20
	case FocusCreative:
		return 30
	case FocusMeditation:
		return 10
	default:
		return 25
	}
}

// Valid reports whether t is a known session type.
func (t FocusSessionType) Valid() bool {
	switch t {
	case FocusDeepWork, FocusReading, FocusCreative, FocusMeditation:
		return true
	}
	return false
}

// FocusSessionState is the lifecycle state of the focus countdown.
type FocusSessionState string

const (
	FocusStateIdle    FocusSessionState = "idle"
	FocusStateRunning FocusSessionState = "running"
	FocusStatePaused  FocusSessionState = "paused"
)

// FocusSessionRecord is one finished (or abandoned) focus session.
type FocusSessionRecord struct {
	ID             string           `json:"id"`
	Type           FocusSessionType `json:"type"`
	ElapsedSeconds int              `json:"elapsed_seconds"`
	TargetSeconds  int              `json:"target_seconds"`
	CompletedAt    time.Time        `json:"completed_at"`
	Completed      bool             `json:"completed"`
}

// FocusStatus is the live countdown state exposed to clients.
type FocusStatus struct {
	State            FocusSessionState `json:"state"`
	Type             FocusSessionType  `json:"type"`
	TotalSeconds     int               `json:"total_seconds"`
	RemainingSeconds int               `json:"remaining_seconds"`
	Progress         float64           `json:"progress"`
}

// FocusDayStats summarizes today's focus activity.
type FocusDayStats struct {
	Sessions          int `json:"sessions"`
	CompletedSessions int `json:"completed_sessions"`
	FocusMinutes      int `json:"focus_minutes"`
}
