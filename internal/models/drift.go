package models

import (
	"fmt"
	"sort"
	"time"
)

// BehaviorCounters is the raw behavioral input vector for one day:
// everything the scoring engine needs to rate attention fragmentation.
type BehaviorCounters struct {
	AppSwitches               int `json:"app_switches"`
	ShortSessions             int `json:"short_sessions"`
	NotificationInterruptions int `json:"notification_interruptions"`
	FocusBreaks               int `json:"focus_breaks"`
}

// DriftLevel buckets a drift score into a coarse severity band.
type DriftLevel string

const (
	DriftLevelCalm       DriftLevel = "calm"
	DriftLevelMild       DriftLevel = "mild"
	DriftLevelHigh       DriftLevel = "high"
	DriftLevelOverloaded DriftLevel = "overloaded"
)

// Label returns the display name for the level.
func (l DriftLevel) Label() string {
	switch l {
	case DriftLevelCalm:
		return "In Flow"
	case DriftLevelMild:
		return "Mild Drift"
	case DriftLevelHigh:
		return "High Drift"
	case DriftLevelOverloaded:
		return "Overloaded"
	default:
		return string(l)
	}
}

// Description returns a one-line explanation for the level.
func (l DriftLevel) Description() string {
	switch l {
	case DriftLevelCalm:
		return "Your attention is steady and protected."
	case DriftLevelMild:
		return "Some scattering, but you're staying grounded."
	case DriftLevelHigh:
		return "Frequent context switches are fragmenting your focus."
	case DriftLevelOverloaded:
		return "Your cognitive bandwidth is stretched thin."
	default:
		return ""
	}
}

// LevelForScore maps a score value to its level.
// Bands are half-open: [0,25) calm, [25,50) mild, [50,75) high, [75,100] overloaded.
func LevelForScore(value int) DriftLevel {
	switch {
	case value < 25:
		return DriftLevelCalm
	case value < 50:
		return DriftLevelMild
	case value < 75:
		return DriftLevelHigh
	default:
		return DriftLevelOverloaded
	}
}

// ScoreFactor is one weighted behavioral dimension of a drift score.
type ScoreFactor struct {
	Title        string  `json:"title"`
	Weight       float64 `json:"weight"`
	Observed     int     `json:"observed"`
	Contribution int     `json:"contribution"`
}

// Score is the result of scoring one day's behavior: a 0-100 value,
// its level, and the per-factor breakdown in fixed display order.
type Score struct {
	Value   int           `json:"value"`
	Level   DriftLevel    `json:"level"`
	Factors []ScoreFactor `json:"factors"`
}

// EmptyScore is the all-zero score used when no data exists yet.
func EmptyScore() Score {
	return Score{Value: 0, Level: DriftLevelCalm, Factors: nil}
}

// HourlyEntry holds per-hour event counts for the current day.
type HourlyEntry struct {
	AppSwitches   int `json:"app_switches"`
	ShortSessions int `json:"short_sessions"`
	Notifications int `json:"notifications"`
	FocusBreaks   int `json:"focus_breaks"`
}

// IsZero reports whether no events were recorded in this hour.
func (e HourlyEntry) IsZero() bool {
	return e.AppSwitches == 0 && e.ShortSessions == 0 && e.Notifications == 0 && e.FocusBreaks == 0
}

// TimelinePoint is one hour of today's drift timeline.
type TimelinePoint struct {
	Hour              int `json:"hour"`
	Score             int `json:"score"`
	InterruptionCount int `json:"interruption_count"`
}

// HourLabel formats the hour as a compact clock label ("6a", "12p", "3p").
func (p TimelinePoint) HourLabel() string {
	h := p.Hour % 24
	switch {
	case h == 0:
		return "12a"
	case h < 12:
		return fmt.Sprintf("%da", h)
	case h == 12:
		return "12p"
	default:
		return fmt.Sprintf("%dp", h-12)
	}
}

// DailySummary combines today's score with the hourly timeline.
type DailySummary struct {
	Date     time.Time       `json:"date"`
	Score    Score           `json:"score"`
	Timeline []TimelinePoint `json:"timeline"`
}

// CalmHourCount returns how many timeline hours stayed below 40.
func (d DailySummary) CalmHourCount() int {
	count := 0
	for _, p := range d.Timeline {
		if p.Score < 40 {
			count++
		}
	}
	return count
}

// MostCalmHour returns the timeline point with the lowest score, first
// occurrence winning ties. Nil when the timeline is empty.
func (d DailySummary) MostCalmHour() *TimelinePoint {
	if len(d.Timeline) == 0 {
		return nil
	}
	best := d.Timeline[0]
	for _, p := range d.Timeline[1:] {
		if p.Score < best.Score {
			best = p
		}
	}
	return &best
}

// WeeklyDriftPoint is one day of the trailing-week summary.
// HasData distinguishes a genuinely calm day from a day with no records.
type WeeklyDriftPoint struct {
	DayIndex         int  `json:"day_index"`
	Score            int  `json:"score"`
	DeepFocusMinutes int  `json:"deep_focus_minutes"`
	HasData          bool `json:"has_data"`
}

// WeeklySummary covers the trailing 7-day window ending today,
// oldest day first (DayIndex 0..6).
type WeeklySummary struct {
	WeekStart time.Time          `json:"week_start"`
	Points    []WeeklyDriftPoint `json:"points"`
}

// AverageScore is the integer mean of the point scores, 0 when empty.
func (w WeeklySummary) AverageScore() int {
	if len(w.Points) == 0 {
		return 0
	}
	sum := 0
	for _, p := range w.Points {
		sum += p.Score
	}
	return sum / len(w.Points)
}

// TotalDeepFocusMinutes sums deep-focus minutes across the week.
func (w WeeklySummary) TotalDeepFocusMinutes() int {
	total := 0
	for _, p := range w.Points {
		total += p.DeepFocusMinutes
	}
	return total
}

// CalmDayCount counts days scoring below threshold.
func (w WeeklySummary) CalmDayCount(threshold int) int {
	count := 0
	for _, p := range w.Points {
		if p.Score < threshold {
			count++
		}
	}
	return count
}

// CurrentCalmStreak counts consecutive days below threshold scanning from
// the most recent day backward. A day without data scores 0 and therefore
// extends the streak; see CurrentCalmStreakStrict for the variant that
// treats gaps as breaking it.
func (w WeeklySummary) CurrentCalmStreak(threshold int) int {
	streak := 0
	for _, p := range sortedByDayDesc(w.Points) {
		if p.Score >= threshold {
			break
		}
		streak++
	}
	return streak
}

// CurrentCalmStreakStrict behaves like CurrentCalmStreak but stops at the
// first day that has no recorded data.
func (w WeeklySummary) CurrentCalmStreakStrict(threshold int) int {
	streak := 0
	for _, p := range sortedByDayDesc(w.Points) {
		if !p.HasData || p.Score >= threshold {
			break
		}
		streak++
	}
	return streak
}

func sortedByDayDesc(points []WeeklyDriftPoint) []WeeklyDriftPoint {
	sorted := make([]WeeklyDriftPoint, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].DayIndex > sorted[j].DayIndex })
	return sorted
}

// DailyEntry is the persisted end-of-day snapshot for one calendar date.
type DailyEntry struct {
	Score            int `json:"score"`
	DeepFocusMinutes int `json:"deep_focus_minutes"`
}

// DailyRecord is one day of drift history, as served to calendar views.
type DailyRecord struct {
	Date             time.Time `json:"date"`
	Score            int       `json:"score"`
	DeepFocusMinutes int       `json:"deep_focus_minutes"`
}

// Level buckets the record for calendar display. The calendar bands
// (30/55/75) are intentionally wider than the live score bands.
func (r DailyRecord) Level() DriftLevel {
	switch {
	case r.Score < 30:
		return DriftLevelCalm
	case r.Score < 55:
		return DriftLevelMild
	case r.Score < 75:
		return DriftLevelHigh
	default:
		return DriftLevelOverloaded
	}
}

// InsightTone classifies how an insight should read.
type InsightTone string

const (
	TonePositive InsightTone = "positive"
	ToneNeutral  InsightTone = "neutral"
	ToneWarning  InsightTone = "warning"
	ToneCritical InsightTone = "critical"
)

// Insight is a generated, human-readable observation about the user's day
// or week. Insights are ephemeral and never persisted.
type Insight struct {
	Icon  string      `json:"icon"`
	Title string      `json:"title"`
	Body  string      `json:"body"`
	Tone  InsightTone `json:"tone"`
}

// TrendDirection classifies the week's drift trajectory.
type TrendDirection string

const (
	TrendImproving TrendDirection = "improving"
	TrendStable    TrendDirection = "stable"
	TrendWorsening TrendDirection = "worsening"
)

// Label returns the display name for the trend.
func (t TrendDirection) Label() string {
	switch t {
	case TrendImproving:
		return "Improving"
	case TrendWorsening:
		return "Worsening"
	default:
		return "Stable"
	}
}
