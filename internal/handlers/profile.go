package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zeenhq/zeen/backend/internal/apierror"
	"github.com/zeenhq/zeen/backend/internal/logger"
	"github.com/zeenhq/zeen/backend/internal/models"
	"github.com/zeenhq/zeen/backend/internal/service"
)

// ProfileHandler serves the user profile and drift goal.
type ProfileHandler struct {
	profile service.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profile service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profile: profile}
}

// Get handles GET /api/v1/profile
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.profile.Get(c.Request.Context())
	if err != nil {
		h.writeInternal(c, "failed to load profile", err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Update handles PUT /api/v1/profile
func (h *ProfileHandler) Update(c *gin.Context) {
	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{
			{Field: "name", Message: "is required", Code: "required"},
			{Field: "email", Message: "must be a valid email address", Code: "invalid_email"},
		}))
		return
	}

	profile, err := h.profile.Update(c.Request.Context(), req.Name, req.Email)
	if err != nil {
		h.writeInternal(c, "failed to update profile", err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateGoal handles PUT /api/v1/profile/goal.
// Out-of-range goals are clamped rather than rejected.
func (h *ProfileHandler) UpdateGoal(c *gin.Context) {
	var req models.UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{
			{Field: "goal_average_score", Message: "is required", Code: "required"},
		}))
		return
	}

	profile, err := h.profile.UpdateGoal(c.Request.Context(), req.GoalAverageScore)
	if err != nil {
		h.writeInternal(c, "failed to update goal", err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) writeInternal(c *gin.Context, msg string, err error) {
	requestID := apierror.GetRequestID(c)
	logger.Ctx(c.Request.Context()).Error(msg, logger.Err(err), logger.String("request_id", requestID))
	apierror.WriteProblem(c, apierror.NewInternalError(requestID))
}
