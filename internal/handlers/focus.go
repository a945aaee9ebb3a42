package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zeenhq/zeen/backend/internal/apierror"
	"github.com/zeenhq/zeen/backend/internal/logger"
	"github.com/zeenhq/zeen/backend/internal/models"
	"github.com/zeenhq/zeen/backend/internal/service"
)

// FocusHandler controls the focus-session countdown.
type FocusHandler struct {
	focus service.FocusService
}

// NewFocusHandler creates a new focus handler
func NewFocusHandler(focus service.FocusService) *FocusHandler {
	return &FocusHandler{focus: focus}
}

// Start handles POST /api/v1/focus/start
func (h *FocusHandler) Start(c *gin.Context) {
	var req models.StartFocusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Invalid JSON format"))
		return
	}
	if req.DurationMinutes < 0 {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{
			{Field: "duration_minutes", Message: "must not be negative", Code: "invalid_value"},
		}))
		return
	}

	if err := h.focus.Start(c.Request.Context(), req.Type, req.DurationMinutes); err != nil {
		h.writeServiceError(c, err, "failed to start focus session")
		return
	}
	c.JSON(http.StatusCreated, h.focus.Status())
}

// Pause handles POST /api/v1/focus/pause
func (h *FocusHandler) Pause(c *gin.Context) {
	if err := h.focus.Pause(c.Request.Context()); err != nil {
		h.writeServiceError(c, err, "failed to pause focus session")
		return
	}
	c.JSON(http.StatusOK, h.focus.Status())
}

// Resume handles POST /api/v1/focus/resume
func (h *FocusHandler) Resume(c *gin.Context) {
	if err := h.focus.Resume(c.Request.Context()); err != nil {
		h.writeServiceError(c, err, "failed to resume focus session")
		return
	}
	c.JSON(http.StatusOK, h.focus.Status())
}

// Stop handles POST /api/v1/focus/stop
func (h *FocusHandler) Stop(c *gin.Context) {
	if err := h.focus.Stop(c.Request.Context()); err != nil {
		h.writeServiceError(c, err, "failed to stop focus session")
		return
	}
	c.JSON(http.StatusOK, h.focus.Status())
}

// Status handles GET /api/v1/focus/status
func (h *FocusHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.focus.Status())
}

// Today handles GET /api/v1/focus/today
func (h *FocusHandler) Today(c *gin.Context) {
	stats, err := h.focus.TodayStats(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err, "failed to load today's focus stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// writeServiceError maps focus-session state errors to problem responses.
func (h *FocusHandler) writeServiceError(c *gin.Context, err error, msg string) {
	requestID := apierror.GetRequestID(c)
	switch {
	case errors.Is(err, service.ErrInvalidSessionType):
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{
			{Field: "type", Message: "must be one of deep_work, reading, creative, meditation", Code: "invalid_value"},
		}))
	case errors.Is(err, service.ErrSessionRunning):
		apierror.WriteProblem(c, apierror.NewConflictError(requestID, "A focus session is already running"))
	case errors.Is(err, service.ErrNoActiveSession):
		apierror.WriteProblem(c, apierror.NewConflictError(requestID, "No focus session is active"))
	case errors.Is(err, service.ErrSessionNotPaused):
		apierror.WriteProblem(c, apierror.NewConflictError(requestID, "The focus session is not paused"))
	default:
		logger.Ctx(c.Request.Context()).Error(msg, logger.Err(err), logger.String("request_id", requestID))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
	}
}
