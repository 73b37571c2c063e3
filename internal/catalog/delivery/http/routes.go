package http

import (
	"github.com/gin-gonic/gin"

	"escrow-marketplace/internal/middleware"
)

// RegisterRoutes maps the catalog routes onto rg. Reads are public; listing
// and the caller views require an identity.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	items := rg.Group("/items")
	{
		items.POST("", mw.Auth(), mw.RateLimit(), h.List)
		items.GET("", h.GetAll)
		items.GET("/available", h.GetAvailable)
		items.GET("/:id", h.Detail)
	}

	me := rg.Group("/me", mw.Auth())
	{
		me.GET("/listed", h.MyListed)
		me.GET("/purchased", h.MyPurchased)
	}
}
