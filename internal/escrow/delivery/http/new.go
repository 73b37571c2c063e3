package http

import (
	"escrow-marketplace/internal/escrow"
	"escrow-marketplace/pkg/log"
)

type handler struct {
	l  log.Logger
	uc escrow.UseCase
}

// New creates a new HTTP handler for the escrow domain.
func New(l log.Logger, uc escrow.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
