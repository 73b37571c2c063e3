package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"escrow-marketplace/internal/event"
	"escrow-marketplace/internal/metadata"
	"escrow-marketplace/internal/middleware"
	"escrow-marketplace/internal/repository"
	"escrow-marketplace/pkg/clock"
	"escrow-marketplace/pkg/log"
	"escrow-marketplace/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Marketplace
	repo      repository.Repository
	publisher event.Publisher
	recorder  *event.Recorder
	clock     clock.Clock
	owner     string

	// Metadata
	metadata         metadata.Store
	metadataMaxBytes int64

	// Edge
	jwtManager scope.Manager
	middleware middleware.Config
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Marketplace
	Repository repository.Repository
	Publisher  event.Publisher
	Recorder   *event.Recorder
	Clock      clock.Clock
	// Owner is the normalised owner identity.
	Owner string

	// Metadata is optional; upload routes are skipped without it.
	Metadata         metadata.Store
	MetadataMaxBytes int64

	// Edge
	JWTManager scope.Manager
	Middleware middleware.Config
}

// New creates a new HTTPServer instance with every route mounted.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		repo:             cfg.Repository,
		publisher:        cfg.Publisher,
		recorder:         cfg.Recorder,
		clock:            cfg.Clock,
		owner:            cfg.Owner,
		metadata:         cfg.Metadata,
		metadataMaxBytes: cfg.MetadataMaxBytes,
		jwtManager:       cfg.JWTManager,
		middleware:       cfg.Middleware,
	}
	if srv.clock == nil {
		srv.clock = clock.NewSystem()
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.repo == nil {
		return errors.New("repository is required")
	}
	if srv.publisher == nil {
		return errors.New("publisher is required")
	}
	if srv.owner == "" {
		return errors.New("owner is required")
	}
	if srv.jwtManager == nil && !srv.middleware.TrustHeader {
		return errors.New("jwt manager is required unless the caller header is trusted")
	}
	return nil
}
