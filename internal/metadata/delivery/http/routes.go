package http

import (
	"github.com/gin-gonic/gin"

	"escrow-marketplace/internal/middleware"
)

// RegisterRoutes maps the upload endpoint onto the API group.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/uploads", mw.Auth(), mw.RateLimit(), h.Upload)
}

// RegisterFileRoutes serves stored files under /uploads on the root group, so
// the URLs returned by Upload resolve directly.
func RegisterFileRoutes(rg *gin.RouterGroup, h *handler) {
	rg.GET("/uploads/:name", h.Serve)
}
