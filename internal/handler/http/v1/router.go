package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты для управления обьектами и их картой точек
	objects := api.Group("/objects")
	{
		objects.POST("", h.createObject)
		objects.GET("", h.listObjects)
		objects.GET("/:id", h.getObject)
		objects.PATCH("/:id", h.updateObject)
		objects.DELETE("/:id", h.deleteObject)
		objects.GET("/:id/status", h.objectStatuses)
		objects.POST("/:id/image", h.uploadObjectImage)
		objects.DELETE("/:id/image", h.deleteObjectImage)
	}

	// Маршруты контрольных точек вне состава обьекта
	checkpoints := api.Group("/checkpoints")
	{
		checkpoints.DELETE("/:id", h.deleteCheckpoint)
		checkpoints.GET("/:id/logs", h.listCheckpointLogs)
	}

	// Отметки охранников со считывателей
	api.POST("/scans", h.registerScan)

	// Сессии редактирования с undo/redo
	sessions := api.Group("/edit-sessions")
	{
		sessions.POST("", h.openEditSession)
		sessions.GET("/:id", h.getEditSession)
		sessions.PUT("/:id/position", h.setSessionPosition)
		sessions.PUT("/:id/checkpoints", h.setSessionCheckpoints)
		sessions.POST("/:id/position/undo", h.undoSessionPosition)
		sessions.POST("/:id/position/redo", h.redoSessionPosition)
		sessions.POST("/:id/checkpoints/undo", h.undoSessionCheckpoints)
		sessions.POST("/:id/checkpoints/redo", h.redoSessionCheckpoints)
		sessions.DELETE("/:id", h.closeEditSession)
	}

	// Живые события патруля
	api.GET("/ws", h.serveWS)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
