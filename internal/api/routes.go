package api

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, h *Handler) {
	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.GET("/template", h.template)
		api.POST("/poster", h.poster)
		api.GET("/qr", qrHandler)
	}
}
