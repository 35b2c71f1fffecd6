// internal/handlers/intel/intel_handler.go
package intel

import (
	"net/http"
	"strconv"

	"crm-service/internal/domain/intel"
	"crm-service/internal/middleware"
	"crm-service/internal/pkg/response"
	service "crm-service/internal/service/intel"

	"github.com/gin-gonic/gin"
)

type IntelHandler struct {
	intelService *service.IntelService
}

func NewIntelHandler(intelService *service.IntelService) *IntelHandler {
	return &IntelHandler{intelService: intelService}
}

// ListAnalyses retrieves all stored analyses, newest first
func (h *IntelHandler) ListAnalyses(c *gin.Context) {
	result, err := h.intelService.ListAnalyses(c.Request.Context())
	if err != nil {
		response.FromError(c, "failed to list analyses", err)
		return
	}

	response.Success(c, http.StatusOK, "analyses retrieved", result)
}

// GetAnalysis retrieves a stored analysis by ID
func (h *IntelHandler) GetAnalysis(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid analysis ID", err)
		return
	}

	result, err := h.intelService.GetAnalysis(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, "analysis not found", err)
		return
	}

	response.Success(c, http.StatusOK, "analysis retrieved", result)
}

// Analyze generates and stores a new company analysis
func (h *IntelHandler) Analyze(c *gin.Context) {
	var req intel.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.intelService.Analyze(c.Request.Context(), middleware.MustGetUserID(c), &req)
	if err != nil {
		response.FromError(c, "failed to analyze company", err)
		return
	}

	response.Success(c, http.StatusCreated, "analysis generated", result)
}
