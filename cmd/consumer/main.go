package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"escrow-marketplace/config"
	"escrow-marketplace/config/redis"
	eventRedis "escrow-marketplace/internal/event/redis"
	"escrow-marketplace/pkg/log"
)

// main is the entry point for the background event consumer.
// It joins the Redis stream consumer group and logs every marketplace event,
// acknowledging each one once handled.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Redis.Addr == "" {
		logger.Error(ctx, "redis.addr is required for the consumer")
		return
	}

	logger.Info(ctx, "Starting event consumer...")

	client, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer client.Close()

	hostname, _ := os.Hostname()
	consumer := eventRedis.NewConsumer(client, eventRedis.ConsumerConfig{
		Stream:   cfg.Redis.Stream,
		Group:    cfg.Redis.ConsumerGroup,
		Consumer: fmt.Sprintf("%s-%d", hostname, os.Getpid()),
	}, logger)

	logger.Infof(ctx, "Consuming %s as group %s", cfg.Redis.Stream, cfg.Redis.ConsumerGroup)
	err = consumer.Run(ctx, func(ctx context.Context, rec eventRedis.Record) error {
		logger.Infof(ctx, "event %s %s at %s: %s", rec.Type, rec.ID, rec.OccurredAt.Format("2006-01-02T15:04:05Z07:00"), rec.Payload)
		return nil
	})
	if err != nil {
		logger.Error(ctx, "Consumer stopped with error: ", err)
		return
	}

	logger.Info(ctx, "Consumer service stopped gracefully")
}
