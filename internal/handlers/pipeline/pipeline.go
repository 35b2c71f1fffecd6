// internal/handlers/pipeline/pipeline_handler.go
package pipeline

import (
	"net/http"
	"strconv"

	"crm-service/internal/domain/deal"
	"crm-service/internal/pkg/response"
	service "crm-service/internal/service/pipeline"

	"github.com/gin-gonic/gin"
)

type PipelineHandler struct {
	pipelineService *service.PipelineService
}

func NewPipelineHandler(pipelineService *service.PipelineService) *PipelineHandler {
	return &PipelineHandler{pipelineService: pipelineService}
}

// GetBoard returns all deals grouped by stage
func (h *PipelineHandler) GetBoard(c *gin.Context) {
	result, err := h.pipelineService.Board(c.Request.Context())
	if err != nil {
		response.FromError(c, "failed to load pipeline board", err)
		return
	}

	response.Success(c, http.StatusOK, "pipeline board retrieved", result)
}

// CreateDeal creates a new deal
func (h *PipelineHandler) CreateDeal(c *gin.Context) {
	var req deal.CreateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.pipelineService.CreateDeal(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, "failed to create deal", err)
		return
	}

	response.Success(c, http.StatusCreated, "deal created successfully", result)
}

// MoveDeal updates a deal's stage
func (h *PipelineHandler) MoveDeal(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid deal ID", err)
		return
	}

	var req deal.MoveDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.pipelineService.MoveDeal(c.Request.Context(), id, req.Stage)
	if err != nil {
		response.FromError(c, "failed to move deal", err)
		return
	}

	response.Success(c, http.StatusOK, "deal moved", result)
}

// DeleteDeal removes a deal and its activities
func (h *PipelineHandler) DeleteDeal(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid deal ID", err)
		return
	}

	if err := h.pipelineService.DeleteDeal(c.Request.Context(), id); err != nil {
		response.FromError(c, "failed to delete deal", err)
		return
	}

	response.Success(c, http.StatusOK, "deal deleted", nil)
}
