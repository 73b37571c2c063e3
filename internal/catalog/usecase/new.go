package usecase

import (
	"escrow-marketplace/internal/catalog"
	"escrow-marketplace/internal/event"
	"escrow-marketplace/internal/repository"
	"escrow-marketplace/pkg/clock"
	"escrow-marketplace/pkg/log"
)

// implUseCase is the private implementation of catalog.UseCase.
type implUseCase struct {
	repo      repository.Repository
	publisher event.Publisher
	clock     clock.Clock
	l         log.Logger
}

var _ catalog.UseCase = (*implUseCase)(nil)

// New creates a new catalog UseCase implementation.
func New(repo repository.Repository, publisher event.Publisher, clk clock.Clock, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:      repo,
		publisher: publisher,
		clock:     clk,
		l:         l,
	}
}
