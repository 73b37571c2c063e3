package event

import (
	"context"
	"sync"
)

// Recorder keeps the most recent events in memory.
type Recorder struct {
	mu     sync.RWMutex
	events []Event
	limit  int
}

var _ Sink = (*Recorder)(nil)

// NewRecorder keeps up to limit events.
func NewRecorder(limit int) *Recorder {
	if limit <= 0 {
		limit = 100
	}
	return &Recorder{limit: limit}
}

func (r *Recorder) Name() string { return "recorder" }

func (r *Recorder) Deliver(_ context.Context, e Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, e)
	if over := len(r.events) - r.limit; over > 0 {
		r.events = append(r.events[:0:0], r.events[over:]...)
	}
	return nil
}

// Recent returns up to n events, oldest first. n <= 0 returns everything kept.
func (r *Recorder) Recent(n int) []Event {
	r.mu.RLock()
	defer r.mu.RUnlock()

	start := 0
	if n > 0 && n < len(r.events) {
		start = len(r.events) - n
	}
	out := make([]Event, len(r.events)-start)
	copy(out, r.events[start:])
	return out
}
