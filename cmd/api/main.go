package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"escrow-marketplace/config"
	"escrow-marketplace/config/postgre"
	"escrow-marketplace/config/redis"
	_ "escrow-marketplace/docs" // Swagger docs
	"escrow-marketplace/internal/event"
	eventRedis "escrow-marketplace/internal/event/redis"
	"escrow-marketplace/internal/httpserver"
	"escrow-marketplace/internal/metadata"
	"escrow-marketplace/internal/metadata/disk"
	"escrow-marketplace/internal/metadata/httpstore"
	"escrow-marketplace/internal/middleware"
	"escrow-marketplace/internal/repository"
	"escrow-marketplace/internal/repository/memory"
	repoPostgre "escrow-marketplace/internal/repository/postgre"
	"escrow-marketplace/migrations"
	"escrow-marketplace/pkg/address"
	"escrow-marketplace/pkg/clock"
	"escrow-marketplace/pkg/log"
	"escrow-marketplace/pkg/scope"
)

// @title       Escrow Marketplace API
// @description Peer-to-peer digital goods marketplace with owner-approved escrow.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey Bearer
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting escrow marketplace...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	owner, err := address.Normalize(cfg.Marketplace.Owner)
	if err != nil {
		logger.Error(ctx, "Invalid marketplace.owner: ", err)
		return
	}

	// 3. Storage
	var repo repository.Repository
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		pool, err := postgre.Connect(ctx, cfg.Postgres)
		if err != nil {
			logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
			return
		}
		defer pool.Close()

		if cfg.Postgres.AutoMigrate {
			if err := migrations.Apply(ctx, pool); err != nil {
				logger.Error(ctx, "Failed to apply migrations: ", err)
				return
			}
			logger.Info(ctx, "Migrations applied")
		}
		repo = repoPostgre.New(logger, pool)
	default:
		logger.Warn(ctx, "Using in-memory storage; state is lost on restart")
		repo = memory.New(logger)
	}

	// 4. Events
	recorder := event.NewRecorder(cfg.Events.Recent)
	sinks := []event.Sink{event.NewLogSink(logger), recorder}
	if cfg.Redis.Addr != "" {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			logger.Warnf(ctx, "Redis not available (optional): %v", err)
		} else {
			defer client.Close()
			sinks = append(sinks, eventRedis.New(client, cfg.Redis.Stream, eventRedis.DefaultMaxLen))
			logger.Infof(ctx, "Publishing events to Redis stream %s", cfg.Redis.Stream)
		}
	}
	bus := event.NewBus(logger, cfg.Events.BufferSize, sinks...)

	// 5. Metadata store
	var store metadata.Store
	switch cfg.Metadata.Driver {
	case config.MetadataHTTP:
		store = httpstore.New(httpstore.Config{BaseURL: cfg.Metadata.UploadURL, MaxBytes: cfg.Metadata.MaxBytes}, logger)
	default:
		store, err = disk.New(disk.Config{Dir: cfg.Metadata.Dir, PublicURL: cfg.Metadata.PublicURL, MaxBytes: cfg.Metadata.MaxBytes}, logger)
		if err != nil {
			logger.Error(ctx, "Failed to initialize upload directory: ", err)
			return
		}
	}

	// 6. Caller identity
	var jwtManager scope.Manager
	if cfg.Auth.JWTSecret != "" {
		jwtManager, err = scope.New(cfg.Auth.JWTSecret, cfg.Auth.Issuer)
		if err != nil {
			logger.Error(ctx, "Failed to initialize token manager: ", err)
			return
		}
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		Repository:       repo,
		Publisher:        bus,
		Recorder:         recorder,
		Clock:            clock.NewSystem(),
		Owner:            owner,
		Metadata:         store,
		MetadataMaxBytes: cfg.Metadata.MaxBytes,
		JWTManager:       jwtManager,
		Middleware: middleware.Config{
			TrustHeader:     cfg.Auth.TrustHeader,
			RateLimitPerMin: cfg.RateLimit.PerMin,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run: the bus keeps draining until the server has stopped.
	busCtx, stopBus := context.WithCancel(context.WithoutCancel(ctx))
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer stopBus()
		return httpServer.Run(gctx)
	})
	g.Go(func() error {
		return bus.Run(busCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error(ctx, "Server stopped with error: ", err)
		return
	}
	if dropped := bus.Dropped(); dropped > 0 {
		logger.Warnf(ctx, "%d events were dropped because the buffer was full", dropped)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
