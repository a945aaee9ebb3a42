package models

import "time"

// Achievement is one badge from the fixed catalog, with unlock state
// applied at evaluation time.
type Achievement struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Requirement string     `json:"requirement"`
	Unlocked    bool       `json:"unlocked"`
	UnlockedAt  *time.Time `json:"unlocked_at,omitempty"`
}

// AchievementCatalog returns the fixed badge catalog, all locked.
func AchievementCatalog() []Achievement {
	return []Achievement{
		{ID: "first_calm", Title: "Inner Peace", Description: "Score below 30 for the first time", Icon: "leaf.fill", Requirement: "Score < 30"},
		{ID: "streak_3", Title: "Momentum", Description: "Maintain a 3-day calm streak", Icon: "flame.fill", Requirement: "3-day streak"},
		{ID: "streak_7", Title: "Unstoppable", Description: "7 calm days in a row", Icon: "bolt.fill", Requirement: "7-day streak"},
		{ID: "focus_first", Title: "Deep Diver", Description: "Complete your first focus session", Icon: "timer", Requirement: "1 focus session"},
		{ID: "focus_10", Title: "Focus Master", Description: "Complete 10 focus sessions", Icon: "crown.fill", Requirement: "10 sessions"},
		{ID: "breathe", Title: "Zen Master", Description: "Complete a breathing exercise", Icon: "wind", Requirement: "1 breathing"},
		{ID: "early_bird", Title: "Early Bird", Description: "Check your score before 8 AM", Icon: "sunrise.fill", Requirement: "Open < 8 AM"},
		{ID: "perfect_day", Title: "Perfect Day", Description: "Stay in Calm zone all day", Icon: "star.fill", Requirement: "All hours < 30"},
	}
}
