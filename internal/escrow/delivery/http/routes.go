package http

import (
	"github.com/gin-gonic/gin"

	"escrow-marketplace/internal/middleware"
)

// RegisterRoutes maps the escrow routes onto rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/items/:id/purchase", mw.Auth(), mw.RateLimit(), h.RequestPurchase)
	rg.GET("/owner", h.Owner)

	pending := rg.Group("/pending-purchases")
	{
		pending.GET("", h.GetAllPending)
		pending.GET("/:id", h.Detail)
		pending.POST("/:id/approve", mw.Auth(), mw.RateLimit(), h.Approve)
		pending.POST("/:id/reject", mw.Auth(), mw.RateLimit(), h.Reject)
	}
}
