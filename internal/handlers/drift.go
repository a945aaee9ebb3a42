package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/zeenhq/zeen/backend/internal/apierror"
	"github.com/zeenhq/zeen/backend/internal/clock"
	"github.com/zeenhq/zeen/backend/internal/logger"
	"github.com/zeenhq/zeen/backend/internal/models"
	"github.com/zeenhq/zeen/backend/internal/service"
)

const (
	defaultHistoryDays = 30
	maxHistoryDays     = 365
	calmDayThreshold   = 40
)

// DriftHandler serves drift scores, timelines, and insights.
type DriftHandler struct {
	tracker     service.TrackerService
	aggregation service.AggregationService
	insight     service.InsightService
	profile     service.ProfileService
}

// NewDriftHandler creates a new drift handler
func NewDriftHandler(
	tracker service.TrackerService,
	aggregation service.AggregationService,
	insight service.InsightService,
	profile service.ProfileService,
) *DriftHandler {
	return &DriftHandler{
		tracker:     tracker,
		aggregation: aggregation,
		insight:     insight,
		profile:     profile,
	}
}

// Today handles GET /api/v1/drift/today
func (h *DriftHandler) Today(c *gin.Context) {
	ctx := c.Request.Context()
	daily, err := h.aggregation.DailySummary(ctx)
	if err != nil {
		h.writeInternal(c, "failed to build daily summary", err)
		return
	}
	counters, err := h.tracker.TodayCounters(ctx)
	if err != nil {
		h.writeInternal(c, "failed to read today's counters", err)
		return
	}

	c.JSON(http.StatusOK, models.TodayResponse{
		Date:     clock.DateKey(daily.Date),
		Counters: counters,
		Score:    daily.Score,
	})
}

// Timeline handles GET /api/v1/drift/timeline
func (h *DriftHandler) Timeline(c *gin.Context) {
	timeline, err := h.aggregation.HourlyTimeline(c.Request.Context())
	if err != nil {
		h.writeInternal(c, "failed to build hourly timeline", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"timeline": timeline})
}

// Weekly handles GET /api/v1/drift/weekly
func (h *DriftHandler) Weekly(c *gin.Context) {
	weekly, err := h.aggregation.WeeklySummary(c.Request.Context())
	if err != nil {
		h.writeInternal(c, "failed to build weekly summary", err)
		return
	}

	c.JSON(http.StatusOK, models.WeeklyResponse{
		Summary:               weekly,
		AverageScore:          weekly.AverageScore(),
		TotalDeepFocusMinutes: weekly.TotalDeepFocusMinutes(),
		CalmDayCount:          weekly.CalmDayCount(calmDayThreshold),
		CalmStreak:            weekly.CurrentCalmStreak(calmDayThreshold),
		Trend:                 h.insight.TrendDirection(weekly),
	})
}

// History handles GET /api/v1/drift/history?days=30
func (h *DriftHandler) History(c *gin.Context) {
	days := defaultHistoryDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxHistoryDays {
			requestID := apierror.GetRequestID(c)
			apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{
				{Field: "days", Message: "must be an integer between 1 and 365", Code: "out_of_range"},
			}))
			return
		}
		days = parsed
	}

	records, err := h.aggregation.HistoricalRecords(c.Request.Context(), days)
	if err != nil {
		h.writeInternal(c, "failed to load drift history", err)
		return
	}

	type historyDay struct {
		Date             string            `json:"date"`
		Score            int               `json:"score"`
		Level            models.DriftLevel `json:"level"`
		DeepFocusMinutes int               `json:"deep_focus_minutes"`
	}
	out := make([]historyDay, 0, len(records))
	for _, r := range records {
		out = append(out, historyDay{
			Date:             clock.DateKey(r.Date),
			Score:            r.Score,
			Level:            r.Level(),
			DeepFocusMinutes: r.DeepFocusMinutes,
		})
	}
	c.JSON(http.StatusOK, gin.H{"days": out})
}

// Insights handles GET /api/v1/drift/insights
func (h *DriftHandler) Insights(c *gin.Context) {
	ctx := c.Request.Context()
	daily, err := h.aggregation.DailySummary(ctx)
	if err != nil {
		h.writeInternal(c, "failed to build daily summary", err)
		return
	}
	weekly, err := h.aggregation.WeeklySummary(ctx)
	if err != nil {
		h.writeInternal(c, "failed to build weekly summary", err)
		return
	}
	profile, err := h.profile.Get(ctx)
	if err != nil {
		h.writeInternal(c, "failed to load profile", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"insights": h.insight.GenerateInsights(daily, weekly, profile),
		"trend":    h.insight.TrendDirection(weekly),
	})
}

func (h *DriftHandler) writeInternal(c *gin.Context, msg string, err error) {
	requestID := apierror.GetRequestID(c)
	logger.Ctx(c.Request.Context()).Error(msg, logger.Err(err), logger.String("request_id", requestID))
	apierror.WriteProblem(c, apierror.NewInternalError(requestID))
}
