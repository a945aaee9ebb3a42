package models

// NotificationEventRequest reports notification interruptions. Either a
// batch count of new interruptions or the total delivered-notification
// count seen on the device (the recorder diffs the latter against its
// watermark).
type NotificationEventRequest struct {
	Count          *int `json:"count,omitempty"`
	DeliveredTotal *int `json:"delivered_total,omitempty"`
}

// UpdateProfileRequest creates or updates the user profile.
type UpdateProfileRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// UpdateGoalRequest sets the weekly-average drift goal.
type UpdateGoalRequest struct {
	GoalAverageScore int `json:"goal_average_score" binding:"required"`
}

// StartFocusRequest starts a focus session. DurationMinutes of 0 uses the
// type's default length.
type StartFocusRequest struct {
	Type            FocusSessionType `json:"type" binding:"required"`
	DurationMinutes int              `json:"duration_minutes"`
}

// TodayResponse is the dashboard payload for the current day.
type TodayResponse struct {
	Date     string           `json:"date"`
	Counters BehaviorCounters `json:"counters"`
	Score    Score            `json:"score"`
}

// WeeklyResponse carries the weekly summary with its derived statistics.
type WeeklyResponse struct {
	Summary               WeeklySummary  `json:"summary"`
	AverageScore          int            `json:"average_score"`
	TotalDeepFocusMinutes int            `json:"total_deep_focus_minutes"`
	CalmDayCount          int            `json:"calm_day_count"`
	CalmStreak            int            `json:"calm_streak"`
	Trend                 TrendDirection `json:"trend"`
}
