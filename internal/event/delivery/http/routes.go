package http

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts GET /events on rg. The feed is public.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.GET("/events", h.Recent)
}
