package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zeenhq/zeen/backend/internal/apierror"
	"github.com/zeenhq/zeen/backend/internal/logger"
	"github.com/zeenhq/zeen/backend/internal/models"
	"github.com/zeenhq/zeen/backend/internal/service"
)

// EventHandler ingests behavioral events into the drift tracker.
type EventHandler struct {
	tracker service.TrackerService
	focus   service.FocusService
}

// NewEventHandler creates a new event handler
func NewEventHandler(tracker service.TrackerService, focus service.FocusService) *EventHandler {
	return &EventHandler{
		tracker: tracker,
		focus:   focus,
	}
}

// AppBecameActive handles POST /api/v1/events/active
func (h *EventHandler) AppBecameActive(c *gin.Context) {
	if err := h.tracker.RecordAppBecameActive(c.Request.Context()); err != nil {
		h.writeInternal(c, "failed to record app activation", err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "recorded"})
}

// AppEnteredBackground handles POST /api/v1/events/background
func (h *EventHandler) AppEnteredBackground(c *gin.Context) {
	if err := h.tracker.RecordAppEnteredBackground(c.Request.Context()); err != nil {
		h.writeInternal(c, "failed to record app backgrounding", err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "recorded"})
}

// Notifications handles POST /api/v1/events/notifications.
// The body carries either a batch count of new interruptions or the
// device's total delivered count; an empty body records one interruption.
// A running focus session is interrupted as a side effect.
func (h *EventHandler) Notifications(c *gin.Context) {
	var req models.NotificationEventRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			requestID := apierror.GetRequestID(c)
			apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Invalid JSON format"))
			return
		}
	}

	var fieldErrors []apierror.FieldError
	if req.Count != nil && *req.Count < 0 {
		fieldErrors = append(fieldErrors, apierror.FieldError{
			Field: "count", Message: "must not be negative", Code: "invalid_value",
		})
	}
	if req.DeliveredTotal != nil && *req.DeliveredTotal < 0 {
		fieldErrors = append(fieldErrors, apierror.FieldError{
			Field: "delivered_total", Message: "must not be negative", Code: "invalid_value",
		})
	}
	if len(fieldErrors) > 0 {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, fieldErrors))
		return
	}

	ctx := c.Request.Context()
	var err error
	switch {
	case req.DeliveredTotal != nil:
		err = h.tracker.RecordDeliveredNotifications(ctx, *req.DeliveredTotal)
	case req.Count != nil:
		err = h.tracker.RecordNotifications(ctx, *req.Count)
	default:
		err = h.tracker.RecordNotificationInterruption(ctx)
	}
	if err != nil {
		h.writeInternal(c, "failed to record notifications", err)
		return
	}

	interrupted, err := h.focus.InterruptIfRunning(ctx)
	if err != nil {
		h.writeInternal(c, "failed to interrupt focus session", err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "recorded", "focus_interrupted": interrupted})
}

// FocusBreak handles POST /api/v1/events/focus-break
func (h *EventHandler) FocusBreak(c *gin.Context) {
	if err := h.tracker.RecordFocusBreak(c.Request.Context()); err != nil {
		h.writeInternal(c, "failed to record focus break", err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "recorded"})
}

func (h *EventHandler) writeInternal(c *gin.Context, msg string, err error) {
	requestID := apierror.GetRequestID(c)
	logger.Ctx(c.Request.Context()).Error(msg, logger.Err(err), logger.String("request_id", requestID))
	apierror.WriteProblem(c, apierror.NewInternalError(requestID))
}
