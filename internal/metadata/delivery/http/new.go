package http

import (
	"escrow-marketplace/internal/metadata"
	"escrow-marketplace/pkg/log"
)

type handler struct {
	l        log.Logger
	store    metadata.Store
	maxBytes int64
}

// New creates a new HTTP handler for uploads.
func New(l log.Logger, store metadata.Store, maxBytes int64) *handler {
	if maxBytes <= 0 {
		maxBytes = metadata.DefaultMaxBytes
	}
	return &handler{
		l:        l,
		store:    store,
		maxBytes: maxBytes,
	}
}
