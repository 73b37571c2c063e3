package usecase

import (
	"context"

	"escrow-marketplace/internal/escrow"
	"escrow-marketplace/internal/event"
	"escrow-marketplace/internal/ledger"
	"escrow-marketplace/internal/model"
	repo "escrow-marketplace/internal/repository"
)

// resolution describes one way out of OPEN.
type resolution struct {
	method     string
	status     model.PendingPurchaseStatus
	itemStatus model.ItemStatus
	entryKind  model.EntryKind
	// payee picks who receives the custody balance.
	payee func(pp model.PendingPurchase) string
	// buyer picks the value written to Item.Buyer.
	buyer func(pp model.PendingPurchase) string
}

var (
	approval = resolution{
		method:     "uc.Approve",
		status:     model.PendingPurchaseStatusApproved,
		itemStatus: model.ItemStatusSold,
		entryKind:  model.EntryKindPayout,
		payee:      func(pp model.PendingPurchase) string { return pp.Seller },
		buyer:      func(pp model.PendingPurchase) string { return pp.Buyer },
	}
	rejection = resolution{
		method:     "uc.Reject",
		status:     model.PendingPurchaseStatusRejected,
		itemStatus: model.ItemStatusAvailable,
		entryKind:  model.EntryKindRefund,
		payee:      func(pp model.PendingPurchase) string { return pp.Buyer },
		buyer:      func(model.PendingPurchase) string { return "" },
	}
)

func (uc *implUseCase) Approve(ctx context.Context, sc model.Scope, pendingPurchaseID int64) (escrow.ResolveOutput, error) {
	out, err := uc.resolve(ctx, sc, pendingPurchaseID, approval)
	if err != nil {
		return escrow.ResolveOutput{}, err
	}

	pp := out.PendingPurchase
	uc.publisher.Publish(ctx, event.New(event.TypePurchaseApproved, *pp.ResolvedAt, event.PurchaseApproved{
		PendingPurchaseID: pp.ID,
		ItemID:            pp.ItemID,
		Buyer:             pp.Buyer,
		Seller:            pp.Seller,
		Amount:            pp.AmountHeld,
	}))
	return out, nil
}

func (uc *implUseCase) Reject(ctx context.Context, sc model.Scope, pendingPurchaseID int64) (escrow.ResolveOutput, error) {
	out, err := uc.resolve(ctx, sc, pendingPurchaseID, rejection)
	if err != nil {
		return escrow.ResolveOutput{}, err
	}

	pp := out.PendingPurchase
	uc.publisher.Publish(ctx, event.New(event.TypePurchaseRejected, *pp.ResolvedAt, event.PurchaseRejected{
		PendingPurchaseID: pp.ID,
		ItemID:            pp.ItemID,
		Buyer:             pp.Buyer,
		Amount:            pp.AmountHeld,
	}))
	return out, nil
}

// resolve releases custody and closes the record in one transaction. The
// owner check runs before any lookup, so non-owners learn nothing about ids.
func (uc *implUseCase) resolve(ctx context.Context, sc model.Scope, id int64, res resolution) (escrow.ResolveOutput, error) {
	if sc.IsZero() || sc.Address != uc.owner {
		uc.l.Warnf(ctx, "%s: rejected caller %q", res.method, sc.Address)
		return escrow.ResolveOutput{}, escrow.ErrNotOwner
	}

	var out escrow.ResolveOutput
	err := uc.repo.WithTx(ctx, func(ctx context.Context) error {
		pp, err := uc.repo.GetOnePendingPurchase(ctx, id)
		if err != nil {
			uc.l.Errorf(ctx, "%s GetOnePendingPurchase: %v", res.method, err)
			return err
		}
		if pp.ID == 0 {
			return escrow.ErrPendingNotFound
		}
		if pp.Status != model.PendingPurchaseStatusOpen {
			return escrow.ErrAlreadyResolved
		}

		if err := uc.disburser.Credit(ctx, ledger.CreditInput{
			PendingPurchaseID: pp.ID,
			Account:           res.payee(pp),
			Amount:            pp.AmountHeld,
			Kind:              res.entryKind,
		}); err != nil {
			uc.l.Errorf(ctx, "%s Credit: %v", res.method, err)
			return err
		}

		now := uc.clock.Now()
		pp, err = uc.repo.ResolvePendingPurchase(ctx, repo.ResolvePendingPurchaseOptions{
			ID:         pp.ID,
			Status:     res.status,
			ResolvedAt: now,
		})
		if err != nil {
			uc.l.Errorf(ctx, "%s ResolvePendingPurchase: %v", res.method, err)
			return conflictAs(err, escrow.ErrAlreadyResolved)
		}

		item, err := uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{
			ID:         pp.ItemID,
			FromStatus: model.ItemStatusPending,
			Status:     res.itemStatus,
			Buyer:      res.buyer(pp),
			UpdatedAt:  now,
		})
		if err != nil {
			uc.l.Errorf(ctx, "%s UpdateItem: %v", res.method, err)
			return conflictAs(err, escrow.ErrAlreadyResolved)
		}

		out = escrow.ResolveOutput{PendingPurchase: pp, Item: item}
		return nil
	})
	if err != nil {
		return escrow.ResolveOutput{}, err
	}

	uc.l.Infof(ctx, "%s: pending %d %s, item %d %s", res.method, id, out.PendingPurchase.Status, out.Item.ID, out.Item.Status)
	return out, nil
}
