package usecase

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"escrow-marketplace/internal/escrow"
	"escrow-marketplace/internal/event"
	"escrow-marketplace/internal/ledger"
	"escrow-marketplace/internal/model"
	repo "escrow-marketplace/internal/repository"
)

// RequestPurchase moves an AVAILABLE item to PENDING and takes custody of the
// payment. Checks run in a fixed order: existence, status, seller, amount.
func (uc *implUseCase) RequestPurchase(ctx context.Context, sc model.Scope, input escrow.RequestPurchaseInput) (escrow.RequestPurchaseOutput, error) {
	if sc.IsZero() {
		return escrow.RequestPurchaseOutput{}, escrow.ErrMissingCaller
	}
	if !model.AmountFits(input.Paid) {
		return escrow.RequestPurchaseOutput{}, escrow.ErrInvalidPayment
	}

	var out escrow.RequestPurchaseOutput
	err := uc.repo.WithTx(ctx, func(ctx context.Context) error {
		item, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: input.ItemID})
		if err != nil {
			uc.l.Errorf(ctx, "uc.RequestPurchase GetOneItem: %v", err)
			return err
		}
		if item.ID == 0 {
			return escrow.ErrItemNotFound
		}
		if item.Status != model.ItemStatusAvailable {
			return escrow.ErrItemNotAvailable
		}
		if item.Seller == sc.Address {
			return escrow.ErrSelfPurchase
		}
		if input.Paid.LessThan(item.Price) {
			return escrow.ErrInsufficientPayment
		}

		now := uc.clock.Now()
		pp, err := uc.repo.CreatePendingPurchase(ctx, repo.CreatePendingPurchaseOptions{
			ItemID:      item.ID,
			Buyer:       sc.Address,
			Seller:      item.Seller,
			AmountHeld:  item.Price,
			RequestedAt: now,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.RequestPurchase CreatePendingPurchase: %v", err)
			return conflictAs(err, escrow.ErrItemNotAvailable)
		}

		item, err = uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{
			ID:         item.ID,
			FromStatus: model.ItemStatusAvailable,
			Status:     model.ItemStatusPending,
			UpdatedAt:  now,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.RequestPurchase UpdateItem: %v", err)
			return conflictAs(err, escrow.ErrItemNotAvailable)
		}

		if err := uc.disburser.Deposit(ctx, ledger.DepositInput{
			PendingPurchaseID: pp.ID,
			Amount:            input.Paid,
		}); err != nil {
			uc.l.Errorf(ctx, "uc.RequestPurchase Deposit: %v", err)
			return err
		}

		excess := input.Paid.Sub(item.Price)
		if excess.IsPositive() {
			if err := uc.disburser.Credit(ctx, ledger.CreditInput{
				PendingPurchaseID: pp.ID,
				Account:           sc.Address,
				Amount:            excess,
				Kind:              model.EntryKindExcessRefund,
			}); err != nil {
				uc.l.Errorf(ctx, "uc.RequestPurchase refund excess: %v", err)
				return err
			}
		} else {
			excess = decimal.Zero
		}

		out = escrow.RequestPurchaseOutput{PendingPurchase: pp, Item: item, Refunded: excess}
		return nil
	})
	if err != nil {
		return escrow.RequestPurchaseOutput{}, err
	}

	pp := out.PendingPurchase
	uc.l.Infof(ctx, "uc.RequestPurchase: pending %d opened for item %d, held %s, refunded %s",
		pp.ID, pp.ItemID, pp.AmountHeld, out.Refunded)
	uc.publisher.Publish(ctx, event.New(event.TypePurchaseRequested, pp.RequestedAt, event.PurchaseRequested{
		PendingPurchaseID: pp.ID,
		ItemID:            pp.ItemID,
		Buyer:             pp.Buyer,
		AmountHeld:        pp.AmountHeld,
	}))

	return out, nil
}

// conflictAs maps a lost conditional update to the caller-facing state error.
func conflictAs(err, target error) error {
	if errors.Is(err, repo.ErrStatusConflict) {
		return target
	}
	return err
}
