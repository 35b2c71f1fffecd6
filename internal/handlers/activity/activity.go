// internal/handlers/activity/activity_handler.go
package activity

import (
	"net/http"
	"strconv"

	"crm-service/internal/domain/activity"
	"crm-service/internal/pkg/response"
	service "crm-service/internal/service/activity"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	activityService *service.ActivityService
}

func NewActivityHandler(activityService *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// ListActivities retrieves all activities, newest first
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	result, err := h.activityService.ListActivities(c.Request.Context())
	if err != nil {
		response.FromError(c, "failed to list activities", err)
		return
	}

	response.Success(c, http.StatusOK, "activities retrieved", result)
}

// CreateActivity logs a new interaction
func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	var req activity.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.activityService.CreateActivity(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, "failed to create activity", err)
		return
	}

	response.Success(c, http.StatusCreated, "activity created successfully", result)
}

// CompleteActivity marks an activity as done
func (h *ActivityHandler) CompleteActivity(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid activity ID", err)
		return
	}

	result, err := h.activityService.CompleteActivity(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, "failed to complete activity", err)
		return
	}

	response.Success(c, http.StatusOK, "activity completed", result)
}
