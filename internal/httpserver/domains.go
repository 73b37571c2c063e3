package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	catalogHTTP "escrow-marketplace/internal/catalog/delivery/http"
	catalogUC "escrow-marketplace/internal/catalog/usecase"
	escrowHTTP "escrow-marketplace/internal/escrow/delivery/http"
	escrowUC "escrow-marketplace/internal/escrow/usecase"
	eventHTTP "escrow-marketplace/internal/event/delivery/http"
	ledgerHTTP "escrow-marketplace/internal/ledger/delivery/http"
	ledgerUC "escrow-marketplace/internal/ledger/usecase"
	metadataHTTP "escrow-marketplace/internal/metadata/delivery/http"
	"escrow-marketplace/internal/middleware"
)

// setupMarketplace wires the catalog, escrow and ledger domains over the shared
// repository. The ledger use case doubles as the escrow engine's disburser so
// custody postings join the escrow transaction.
func (srv *HTTPServer) setupMarketplace(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. UseCases
	ledger := ledgerUC.New(srv.repo, srv.clock, srv.l)
	catalog := catalogUC.New(srv.repo, srv.publisher, srv.clock, srv.l)
	escrow := escrowUC.New(srv.repo, ledger, srv.publisher, srv.clock, srv.owner, srv.l)

	// 2. Routes
	catalogHTTP.RegisterRoutes(api, catalogHTTP.New(srv.l, catalog), mw)
	escrowHTTP.RegisterRoutes(api, escrowHTTP.New(srv.l, escrow), mw)
	ledgerHTTP.RegisterRoutes(api, ledgerHTTP.New(srv.l, ledger), mw)

	srv.l.Infof(ctx, "Marketplace domains registered, owner %s", srv.owner)
	return nil
}

func (srv *HTTPServer) setupEvents(ctx context.Context, api *gin.RouterGroup) {
	eventHTTP.RegisterRoutes(api, eventHTTP.New(srv.l, srv.recorder))
	srv.l.Infof(ctx, "Event feed registered at GET /api/v1/events")
}

func (srv *HTTPServer) setupMetadata(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	h := metadataHTTP.New(srv.l, srv.metadata, srv.metadataMaxBytes)
	metadataHTTP.RegisterRoutes(api, h, mw)
	metadataHTTP.RegisterFileRoutes(&srv.gin.RouterGroup, h)
	srv.l.Infof(ctx, "Upload routes registered")
}
