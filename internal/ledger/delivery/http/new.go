package http

import (
	"escrow-marketplace/internal/ledger"
	"escrow-marketplace/pkg/log"
)

type handler struct {
	l  log.Logger
	uc ledger.UseCase
}

// New creates a new HTTP handler for the ledger domain.
func New(l log.Logger, uc ledger.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
