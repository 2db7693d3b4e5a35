package api

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the API under /api.
func RegisterRoutes(r *gin.Engine, h *Handlers) {
    api := r.Group("/api")
    {
        api.GET("/health", h.health)
        api.GET("/presets", h.listPresets)
        api.POST("/event/image", h.eventImage)
        api.POST("/event/batch", h.eventBatch)
        api.POST("/event/export", h.eventExport)
        api.GET("/qr", h.qr)
    }
}
