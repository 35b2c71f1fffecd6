// internal/app/router.go
package app

import (
	activityHandler "crm-service/internal/handlers/activity"
	contactHandler "crm-service/internal/handlers/contact"
	dashboardHandler "crm-service/internal/handlers/dashboard"
	intelHandler "crm-service/internal/handlers/intel"
	pipelineHandler "crm-service/internal/handlers/pipeline"
	wsHandler "crm-service/internal/handlers/ws"
	"crm-service/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handlers struct {
	ContactHandler   *contactHandler.ContactHandler
	PipelineHandler  *pipelineHandler.PipelineHandler
	DashboardHandler *dashboardHandler.DashboardHandler
	ActivityHandler  *activityHandler.ActivityHandler
	IntelHandler     *intelHandler.IntelHandler
	WSHandler        *wsHandler.WSHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

func SetupRouter(r *gin.Engine, logger *zap.Logger, h *Handlers) {
	api := r.Group("/api/v1")

	// ==================== Health Check ====================
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ==================== WebSocket ====================
	r.GET("/ws", h.AuthMiddleware.Auth(), h.WSHandler.HandleConnection)

	// ==================== Dashboard ====================
	dashboard := api.Group("/dashboard")
	dashboard.Use(h.AuthMiddleware.Auth())
	{
		dashboard.GET("", h.DashboardHandler.GetSummary)
	}

	// ==================== Contacts ====================
	contacts := api.Group("/contacts")
	contacts.Use(h.AuthMiddleware.Auth())
	{
		contacts.GET("", h.ContactHandler.ListContacts)
		contacts.POST("", h.ContactHandler.CreateContact)
		contacts.GET("/:id", h.ContactHandler.GetContact)
		contacts.PUT("/:id", h.ContactHandler.UpdateContact)
		contacts.DELETE("/:id", h.ContactHandler.DeleteContact)
	}

	// ==================== Pipeline ====================
	pipeline := api.Group("/pipeline")
	pipeline.Use(h.AuthMiddleware.Auth())
	{
		pipeline.GET("", h.PipelineHandler.GetBoard)
		pipeline.POST("/deals", h.PipelineHandler.CreateDeal)
		pipeline.POST("/deals/:id/move", h.PipelineHandler.MoveDeal)
		pipeline.DELETE("/deals/:id", h.PipelineHandler.DeleteDeal)
	}

	// ==================== Activities ====================
	activities := api.Group("/activities")
	activities.Use(h.AuthMiddleware.Auth())
	{
		activities.GET("", h.ActivityHandler.ListActivities)
		activities.POST("", h.ActivityHandler.CreateActivity)
		activities.POST("/:id/complete", h.ActivityHandler.CompleteActivity)
	}

	// ==================== Company Intel ====================
	intel := api.Group("/intel")
	intel.Use(h.AuthMiddleware.Auth())
	{
		intel.GET("", h.IntelHandler.ListAnalyses)
		intel.GET("/:id", h.IntelHandler.GetAnalysis)
		intel.POST("/analyze", h.IntelHandler.Analyze)
	}
}
