package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/", h.root)

	// Маршруты для инцидентов
	incidents := api.Group("/incidents")
	{
		incidents.POST("", h.createIncident)
		incidents.GET("", h.listIncidents)
		incidents.POST("/:id/react", h.reactToIncident)
	}

	api.POST("/geocode", h.geocode)
	api.POST("/users/heartbeat/:session_id", h.heartbeat)

	chat := api.Group("/chat")
	{
		chat.GET("/messages", h.listChatMessages)
		chat.POST("/messages", h.postChatMessage)
	}

	// Публичный контент
	api.GET("/live-updates", h.getLiveUpdates)
	api.GET("/welcome-notice", h.getWelcomeNotice)
	api.GET("/street-highlights", h.listHighlights)

	// Проверка учетных данных доступна без API-ключа
	api.POST("/admin/verify", h.verifyAdmin)

	admin := api.Group("/admin", AdminAPIKeyMiddleware(h.cfg, h.logger))
	{
		admin.GET("/incidents", h.listAdminIncidents)
		admin.PUT("/incidents/:id", h.updateIncident)
		admin.DELETE("/incidents/:id", h.deleteIncident)

		admin.POST("/live-updates", h.setLiveUpdates)
		admin.POST("/welcome-notice", h.setWelcomeNotice)

		admin.GET("/street-highlights", h.listHighlights)
		admin.POST("/street-highlights", h.createHighlight)
		admin.PUT("/street-highlights/:id", h.updateHighlight)
		admin.DELETE("/street-highlights/:id", h.deleteHighlight)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
