package event

import (
	"context"
	"sync/atomic"
	"time"

	"escrow-marketplace/pkg/log"
)

const deliverTimeout = 5 * time.Second

// Bus buffers published events and fans them out to sinks from a single
// dispatcher goroutine, so sinks see events in publish order.
type Bus struct {
	l       log.Logger
	sinks   []Sink
	queue   chan Event
	dropped atomic.Int64
}

var _ Publisher = (*Bus)(nil)

// NewBus creates a Bus holding at most bufferSize undelivered events.
func NewBus(l log.Logger, bufferSize int, sinks ...Sink) *Bus {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &Bus{
		l:     l,
		sinks: sinks,
		queue: make(chan Event, bufferSize),
	}
}

// Publish enqueues e. When the buffer is full the event is dropped and logged.
func (b *Bus) Publish(ctx context.Context, e Event) {
	select {
	case b.queue <- e:
	default:
		b.dropped.Add(1)
		b.l.Warnf(ctx, "event.Bus: buffer full, dropped %s %s", e.Type, e.ID)
	}
}

// Dropped reports how many events were discarded because the buffer was full.
func (b *Bus) Dropped() int64 {
	return b.dropped.Load()
}

// Run dispatches events until ctx is cancelled, then drains what is buffered.
func (b *Bus) Run(ctx context.Context) error {
	for {
		select {
		case e := <-b.queue:
			b.dispatch(ctx, e)
		case <-ctx.Done():
			b.drain()
			return nil
		}
	}
}

func (b *Bus) drain() {
	ctx := context.Background()
	for {
		select {
		case e := <-b.queue:
			b.dispatch(ctx, e)
		default:
			return
		}
	}
}

func (b *Bus) dispatch(ctx context.Context, e Event) {
	for _, s := range b.sinks {
		dctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), deliverTimeout)
		if err := s.Deliver(dctx, e); err != nil {
			b.l.Warnf(dctx, "event.Bus: sink %s failed for %s %s: %v", s.Name(), e.Type, e.ID, err)
		}
		cancel()
	}
}
