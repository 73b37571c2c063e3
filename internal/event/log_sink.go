package event

import (
	"context"

	"escrow-marketplace/pkg/log"
)

type logSink struct {
	l log.Logger
}

// NewLogSink writes every event to the service log at info level.
func NewLogSink(l log.Logger) Sink {
	return logSink{l: l}
}

func (s logSink) Name() string { return "log" }

func (s logSink) Deliver(ctx context.Context, e Event) error {
	s.l.Infof(ctx, "event %s id=%s payload=%+v", e.Type, e.ID, e.Payload)
	return nil
}
