package http

import (
	"escrow-marketplace/internal/event"
	"escrow-marketplace/pkg/log"
)

// RecentLister is the read side of the event recorder.
type RecentLister interface {
	Recent(n int) []event.Event
}

type handler struct {
	l        log.Logger
	recorder RecentLister
}

// New creates the HTTP handler for the recent-events feed.
func New(l log.Logger, recorder RecentLister) *handler {
	return &handler{l: l, recorder: recorder}
}
