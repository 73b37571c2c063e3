package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"escrow-marketplace/internal/ledger"
	"escrow-marketplace/internal/model"
	repo "escrow-marketplace/internal/repository"
)

func (uc *implUseCase) Balance(ctx context.Context, sc model.Scope) (ledger.BalanceOutput, error) {
	if sc.IsZero() {
		return ledger.BalanceOutput{}, ledger.ErrMissingCaller
	}

	bal, err := uc.repo.Balance(ctx, sc.Address)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Balance: %v", err)
		return ledger.BalanceOutput{}, err
	}
	return ledger.BalanceOutput{Account: sc.Address, Balance: bal}, nil
}

func (uc *implUseCase) Entries(ctx context.Context, sc model.Scope) (ledger.EntriesOutput, error) {
	if sc.IsZero() {
		return ledger.EntriesOutput{}, ledger.ErrMissingCaller
	}

	entries, err := uc.repo.ListEntries(ctx, repo.ListEntriesOptions{Account: sc.Address})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Entries: %v", err)
		return ledger.EntriesOutput{}, err
	}
	return ledger.EntriesOutput{Account: sc.Address, Entries: entries}, nil
}

// Summary reads a consistent snapshot inside one transaction.
func (uc *implUseCase) Summary(ctx context.Context) (ledger.SummaryOutput, error) {
	var out ledger.SummaryOutput
	err := uc.repo.WithTx(ctx, func(ctx context.Context) error {
		n, err := uc.repo.CountItems(ctx)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Summary CountItems: %v", err)
			return err
		}

		open, err := uc.repo.ListPendingPurchases(ctx, repo.ListPendingPurchasesOptions{Status: model.PendingPurchaseStatusOpen})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Summary ListPendingPurchases: %v", err)
			return err
		}

		total := decimal.Zero
		for _, pp := range open {
			held, err := uc.repo.Balance(ctx, model.CustodyAccount(pp.ID))
			if err != nil {
				uc.l.Errorf(ctx, "uc.Summary Balance: %v", err)
				return err
			}
			total = total.Add(held)
		}

		out = ledger.SummaryOutput{ItemCount: n, OpenPendingCount: len(open), TotalHeld: total}
		return nil
	})
	if err != nil {
		return ledger.SummaryOutput{}, err
	}
	return out, nil
}
