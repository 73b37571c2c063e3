package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"escrow-marketplace/internal/ledger"
	"escrow-marketplace/internal/model"
	repo "escrow-marketplace/internal/repository"
)

// Deposit credits the custody account of a pending purchase.
func (uc *implUseCase) Deposit(ctx context.Context, input ledger.DepositInput) error {
	if !input.Amount.IsPositive() {
		return ledger.ErrNonPositiveAmount
	}

	_, err := uc.repo.AppendEntries(ctx, []repo.CreateEntryOptions{{
		PendingPurchaseID: input.PendingPurchaseID,
		Kind:              model.EntryKindDeposit,
		Account:           model.CustodyAccount(input.PendingPurchaseID),
		Amount:            input.Amount,
		CreatedAt:         uc.clock.Now(),
	}})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Deposit AppendEntries: %v", err)
		return err
	}
	return nil
}

// Credit posts a balanced pair: custody is debited and the account credited.
// Custody never goes negative.
func (uc *implUseCase) Credit(ctx context.Context, input ledger.CreditInput) error {
	if !input.Amount.IsPositive() {
		return ledger.ErrNonPositiveAmount
	}
	if input.Account == "" || model.IsCustodyAccount(input.Account) {
		return ledger.ErrInvalidAccount
	}
	switch input.Kind {
	case model.EntryKindExcessRefund, model.EntryKindPayout, model.EntryKindRefund:
	default:
		return ledger.ErrInvalidKind
	}

	return uc.repo.WithTx(ctx, func(ctx context.Context) error {
		custody := model.CustodyAccount(input.PendingPurchaseID)
		held, err := uc.repo.Balance(ctx, custody)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Credit Balance: %v", err)
			return err
		}
		if held.LessThan(input.Amount) {
			uc.l.Warnf(ctx, "uc.Credit: %s holds %s, cannot release %s", custody, held, input.Amount)
			return ledger.ErrInsufficientCustody
		}

		now := uc.clock.Now()
		_, err = uc.repo.AppendEntries(ctx, []repo.CreateEntryOptions{
			{
				PendingPurchaseID: input.PendingPurchaseID,
				Kind:              input.Kind,
				Account:           custody,
				Amount:            input.Amount.Neg(),
				CreatedAt:         now,
			},
			{
				PendingPurchaseID: input.PendingPurchaseID,
				Kind:              input.Kind,
				Account:           input.Account,
				Amount:            input.Amount,
				CreatedAt:         now,
			},
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Credit AppendEntries: %v", err)
			return err
		}
		return nil
	})
}

// Custody returns the balance of the pending purchase's custody account.
func (uc *implUseCase) Custody(ctx context.Context, pendingPurchaseID int64) (decimal.Decimal, error) {
	pp, err := uc.repo.GetOnePendingPurchase(ctx, pendingPurchaseID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Custody GetOnePendingPurchase: %v", err)
		return decimal.Zero, err
	}
	if pp.ID == 0 {
		return decimal.Zero, ledger.ErrPendingNotFound
	}

	held, err := uc.repo.Balance(ctx, model.CustodyAccount(pendingPurchaseID))
	if err != nil {
		uc.l.Errorf(ctx, "uc.Custody Balance: %v", err)
		return decimal.Zero, err
	}
	return held, nil
}
