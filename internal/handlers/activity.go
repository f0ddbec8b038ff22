package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apierrors "github.com/brunofarias/zapboard/internal/errors"
	"github.com/brunofarias/zapboard/internal/middleware"
	"github.com/brunofarias/zapboard/internal/services"
	"github.com/gin-gonic/gin"
)

// ActivityHandler exposes the audit-trail endpoints.
type ActivityHandler struct {
	activityService *services.ActivityService
}

// NewActivityHandler creates a new ActivityHandler.
func NewActivityHandler(activityService *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
	}
}

// ListLogs returns activity log entries, newest first.
// Can filter by board_id.
func (h *ActivityHandler) ListLogs(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var boardID *uint64
	if boardIDStr := c.Query("board_id"); boardIDStr != "" {
		id, err := strconv.ParseUint(boardIDStr, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid board_id")
			return
		}
		boardID = &id
	}

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil {
			apierrors.BadRequest(c, "Invalid limit")
			return
		}
		limit = parsed
	}

	logs, err := h.activityService.ListLogs(userID, boardID, limit)
	if err != nil {
		if errors.Is(err, services.ErrBoardNotFound) {
			apierrors.NotFound(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to fetch activity logs")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"logs": logs,
	})
}

// ListCardActivities returns a card's transition history, newest first.
func (h *ActivityHandler) ListCardActivities(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	cardID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	activities, err := h.activityService.ListCardActivities(cardID, userID)
	if err != nil {
		if errors.Is(err, services.ErrCardNotFound) {
			apierrors.NotFound(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to fetch card activities")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"activities": activities,
	})
}
