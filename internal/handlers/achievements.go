package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zeenhq/zeen/backend/internal/apierror"
	"github.com/zeenhq/zeen/backend/internal/logger"
	"github.com/zeenhq/zeen/backend/internal/service"
)

// AchievementHandler serves the evaluated badge catalog.
type AchievementHandler struct {
	achievements service.AchievementService
}

// NewAchievementHandler creates a new achievement handler
func NewAchievementHandler(achievements service.AchievementService) *AchievementHandler {
	return &AchievementHandler{achievements: achievements}
}

// List handles GET /api/v1/achievements
func (h *AchievementHandler) List(c *gin.Context) {
	badges, err := h.achievements.Evaluate(c.Request.Context())
	if err != nil {
		requestID := apierror.GetRequestID(c)
		logger.Ctx(c.Request.Context()).Error("failed to evaluate achievements", logger.Err(err), logger.String("request_id", requestID))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	unlocked := 0
	for _, b := range badges {
		if b.Unlocked {
			unlocked++
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"achievements": badges,
		"unlocked":     unlocked,
		"total":        len(badges),
	})
}
