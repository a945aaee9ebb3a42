package models

import (
	"strings"
	"time"
)

// DefaultGoalAverageScore is the weekly-average target assigned to new profiles.
const DefaultGoalAverageScore = 40

// UserProfile holds the user's identity and their weekly drift goal.
type UserProfile struct {
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	GoalAverageScore int       `json:"goal_average_score"`
	JoinDate         time.Time `json:"join_date"`
}

// FirstName returns the leading word of the profile name.
func (p UserProfile) FirstName() string {
	if fields := strings.Fields(p.Name); len(fields) > 0 {
		return fields[0]
	}
	return p.Name
}
