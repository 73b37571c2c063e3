package usecase

import (
	"escrow-marketplace/internal/ledger"
	"escrow-marketplace/internal/repository"
	"escrow-marketplace/pkg/clock"
	"escrow-marketplace/pkg/log"
)

// implUseCase is the private implementation of ledger.UseCase and ledger.Disburser.
type implUseCase struct {
	repo  repository.Repository
	clock clock.Clock
	l     log.Logger
}

var (
	_ ledger.UseCase   = (*implUseCase)(nil)
	_ ledger.Disburser = (*implUseCase)(nil)
)

// New creates the ledger use case. The same value serves as the escrow
// engine's Disburser.
func New(repo repository.Repository, clk clock.Clock, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:  repo,
		clock: clk,
		l:     l,
	}
}
