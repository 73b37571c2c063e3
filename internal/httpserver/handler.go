package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"escrow-marketplace/internal/middleware"
	"escrow-marketplace/internal/model"
)

func (srv *HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.jwtManager, srv.middleware)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Mode: production")
	} else {
		srv.l.Infof(ctx, "Mode: %s", srv.environment)
	}
	if srv.middleware.TrustHeader {
		srv.l.Warnf(ctx, "X-Caller-Address is trusted; only run behind an authenticating gateway")
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv *HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	if err := srv.setupMarketplace(ctx, api, mw); err != nil {
		return err
	}

	if srv.recorder != nil {
		srv.setupEvents(ctx, api)
	} else {
		srv.l.Infof(ctx, "Event recorder not configured, skipping /api/v1/events")
	}

	if srv.metadata != nil {
		srv.setupMetadata(ctx, api, mw)
	} else {
		srv.l.Infof(ctx, "Metadata store not configured, skipping upload routes")
	}

	return nil
}
