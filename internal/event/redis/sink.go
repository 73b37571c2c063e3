// Package redis publishes marketplace events to a Redis stream.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"escrow-marketplace/internal/event"
)

// DefaultMaxLen caps the stream length (approximate trimming).
const DefaultMaxLen int64 = 10000

type streamSink struct {
	client goredis.Cmdable
	stream string
	maxLen int64
}

// New returns a Sink that XADDs each event to stream.
func New(client goredis.Cmdable, stream string, maxLen int64) event.Sink {
	if maxLen <= 0 {
		maxLen = DefaultMaxLen
	}
	return &streamSink{client: client, stream: stream, maxLen: maxLen}
}

func (s *streamSink) Name() string { return "redis:" + s.stream }

func (s *streamSink) Deliver(ctx context.Context, e event.Event) error {
	payload, err := json.Marshal(e.Payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	err = s.client.XAdd(ctx, &goredis.XAddArgs{
		Stream: s.stream,
		MaxLen: s.maxLen,
		Approx: true,
		Values: map[string]any{
			"id":          e.ID,
			"type":        string(e.Type),
			"occurred_at": e.OccurredAt.UTC().Format(time.RFC3339Nano),
			"payload":     string(payload),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("xadd %s: %w", s.stream, err)
	}
	return nil
}
