package usecase

import (
	"context"

	"escrow-marketplace/internal/escrow"
	"escrow-marketplace/internal/model"
	repo "escrow-marketplace/internal/repository"
)

func (uc *implUseCase) GetAllPendingPurchases(ctx context.Context) ([]model.PendingPurchase, error) {
	pps, err := uc.repo.ListPendingPurchases(ctx, repo.ListPendingPurchasesOptions{Status: model.PendingPurchaseStatusOpen})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetAllPendingPurchases: %v", err)
		return nil, err
	}
	return pps, nil
}

// Detail returns a pending purchase of any status with its item and custody.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (escrow.DetailOutput, error) {
	pp, err := uc.repo.GetOnePendingPurchase(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOnePendingPurchase: %v", err)
		return escrow.DetailOutput{}, err
	}
	if pp.ID == 0 {
		return escrow.DetailOutput{}, escrow.ErrPendingNotFound
	}

	item, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: pp.ItemID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneItem: %v", err)
		return escrow.DetailOutput{}, err
	}

	held, err := uc.disburser.Custody(ctx, pp.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail Custody: %v", err)
		return escrow.DetailOutput{}, err
	}

	return escrow.DetailOutput{PendingPurchase: pp, Item: item, Held: held}, nil
}
