package usecase

import (
	"escrow-marketplace/internal/escrow"
	"escrow-marketplace/internal/event"
	"escrow-marketplace/internal/ledger"
	"escrow-marketplace/internal/repository"
	"escrow-marketplace/pkg/clock"
	"escrow-marketplace/pkg/log"
)

// implUseCase is the private implementation of escrow.UseCase.
type implUseCase struct {
	repo      repository.Repository
	disburser ledger.Disburser
	publisher event.Publisher
	clock     clock.Clock
	owner     string
	l         log.Logger
}

var _ escrow.UseCase = (*implUseCase)(nil)

// New creates the escrow engine. owner must already be normalised; it is
// compared byte for byte against caller identities.
func New(
	repo repository.Repository,
	disburser ledger.Disburser,
	publisher event.Publisher,
	clk clock.Clock,
	owner string,
	l log.Logger,
) *implUseCase {
	if owner == "" {
		panic("escrow/usecase: owner is required")
	}
	return &implUseCase{
		repo:      repo,
		disburser: disburser,
		publisher: publisher,
		clock:     clk,
		owner:     owner,
		l:         l,
	}
}

func (uc *implUseCase) Owner() string {
	return uc.owner
}
