package event

import "context"

// Publisher accepts events for asynchronous delivery. Publish must not block
// and must not fail the caller; delivery problems are the publisher's concern.
type Publisher interface {
	Publish(ctx context.Context, e Event)
}

// Sink is one delivery target fed by the Bus.
type Sink interface {
	Name() string
	Deliver(ctx context.Context, e Event) error
}
