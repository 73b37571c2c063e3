package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"escrow-marketplace/internal/event"
	"escrow-marketplace/pkg/log"
)

const (
	defaultBlock = 2 * time.Second
	defaultCount = 50
	retryBackoff = time.Second
)

// Record is one event as read back from the stream. Payload stays raw JSON
// since consumers may not share the publisher's Go types.
type Record struct {
	StreamID   string
	ID         string
	Type       event.Type
	OccurredAt time.Time
	Payload    json.RawMessage
}

// HandlerFunc processes one record. A returned error leaves the record
// unacknowledged so it is redelivered to the group.
type HandlerFunc func(ctx context.Context, rec Record) error

type ConsumerConfig struct {
	Stream   string
	Group    string
	Consumer string
	// Block is how long one read waits for new entries. Negative disables blocking.
	Block time.Duration
	Count int64
}

// Consumer reads the event stream as a member of a consumer group.
type Consumer struct {
	client goredis.Cmdable
	cfg    ConsumerConfig
	l      log.Logger
}

// NewConsumer creates a consumer group member.
func NewConsumer(client goredis.Cmdable, cfg ConsumerConfig, l log.Logger) *Consumer {
	if cfg.Block == 0 {
		cfg.Block = defaultBlock
	}
	if cfg.Count <= 0 {
		cfg.Count = defaultCount
	}
	return &Consumer{client: client, cfg: cfg, l: l}
}

// EnsureGroup creates the stream and group if they do not exist yet.
func (c *Consumer) EnsureGroup(ctx context.Context) error {
	err := c.client.XGroupCreateMkStream(ctx, c.cfg.Stream, c.cfg.Group, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return fmt.Errorf("create group %s on %s: %w", c.cfg.Group, c.cfg.Stream, err)
	}
	return nil
}

// Run polls until ctx is cancelled.
func (c *Consumer) Run(ctx context.Context, handle HandlerFunc) error {
	if err := c.EnsureGroup(ctx); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}
	for {
		if ctx.Err() != nil {
			return nil
		}
		if _, err := c.Poll(ctx, handle); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			c.l.Warnf(ctx, "event/redis.Consumer: %v", err)
			select {
			case <-time.After(retryBackoff):
			case <-ctx.Done():
				return nil
			}
		}
	}
}

// Poll reads one batch of new entries, hands each to handle and acknowledges
// the ones handled without error. It returns the number acknowledged.
func (c *Consumer) Poll(ctx context.Context, handle HandlerFunc) (int, error) {
	streams, err := c.client.XReadGroup(ctx, &goredis.XReadGroupArgs{
		Group:    c.cfg.Group,
		Consumer: c.cfg.Consumer,
		Streams:  []string{c.cfg.Stream, ">"},
		Count:    c.cfg.Count,
		Block:    c.cfg.Block,
	}).Result()
	if errors.Is(err, goredis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("xreadgroup %s: %w", c.cfg.Stream, err)
	}

	acked := 0
	for _, s := range streams {
		for _, msg := range s.Messages {
			rec, err := decode(msg)
			if err != nil {
				// A malformed entry would be redelivered forever; ack and skip it.
				c.l.Errorf(ctx, "event/redis.Consumer: entry %s: %v", msg.ID, err)
			} else if err := handle(ctx, rec); err != nil {
				c.l.Warnf(ctx, "event/redis.Consumer: handle %s %s: %v", rec.Type, rec.ID, err)
				continue
			}
			if err := c.client.XAck(ctx, c.cfg.Stream, c.cfg.Group, msg.ID).Err(); err != nil {
				return acked, fmt.Errorf("xack %s: %w", msg.ID, err)
			}
			acked++
		}
	}
	return acked, nil
}

func decode(msg goredis.XMessage) (Record, error) {
	str := func(key string) string {
		v, _ := msg.Values[key].(string)
		return v
	}

	rec := Record{
		StreamID: msg.ID,
		ID:       str("id"),
		Type:     event.Type(str("type")),
		Payload:  json.RawMessage(str("payload")),
	}
	if rec.ID == "" || rec.Type == "" {
		return Record{}, errors.New("missing id or type")
	}
	at, err := time.Parse(time.RFC3339Nano, str("occurred_at"))
	if err != nil {
		return Record{}, fmt.Errorf("occurred_at: %w", err)
	}
	rec.OccurredAt = at
	if !json.Valid(rec.Payload) {
		return Record{}, errors.New("payload is not valid JSON")
	}
	return rec, nil
}
