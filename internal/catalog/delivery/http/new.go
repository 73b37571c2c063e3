package http

import (
	"escrow-marketplace/internal/catalog"
	"escrow-marketplace/pkg/log"
)

type handler struct {
	l  log.Logger
	uc catalog.UseCase
}

// New creates a new HTTP handler for the catalog domain.
func New(l log.Logger, uc catalog.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
