package http

import (
	"github.com/gin-gonic/gin"

	"escrow-marketplace/internal/middleware"
)

// RegisterRoutes maps the ledger read routes onto rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	me := rg.Group("/me", mw.Auth())
	{
		me.GET("/balance", h.Balance)
		me.GET("/ledger", h.Entries)
	}
	rg.GET("/escrow/summary", h.Summary)
}
