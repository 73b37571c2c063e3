package usecase

import (
	"context"

	"escrow-marketplace/internal/catalog"
	"escrow-marketplace/internal/model"
	repo "escrow-marketplace/internal/repository"
)

func (uc *implUseCase) GetItem(ctx context.Context, id int64) (model.Item, error) {
	item, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetItem GetOneItem: %v", err)
		return model.Item{}, err
	}
	if item.ID == 0 {
		return model.Item{}, catalog.ErrItemNotFound
	}
	return item, nil
}

func (uc *implUseCase) GetAllItems(ctx context.Context) ([]model.Item, error) {
	return uc.listItems(ctx, "uc.GetAllItems", repo.ListItemsOptions{})
}

func (uc *implUseCase) GetAvailableItems(ctx context.Context) ([]model.Item, error) {
	return uc.listItems(ctx, "uc.GetAvailableItems", repo.ListItemsOptions{Status: model.ItemStatusAvailable})
}

func (uc *implUseCase) GetMyListedItems(ctx context.Context, sc model.Scope) ([]model.Item, error) {
	if sc.IsZero() {
		return nil, catalog.ErrMissingCaller
	}
	return uc.listItems(ctx, "uc.GetMyListedItems", repo.ListItemsOptions{Seller: sc.Address})
}

func (uc *implUseCase) GetMyPurchasedItems(ctx context.Context, sc model.Scope) ([]model.Item, error) {
	if sc.IsZero() {
		return nil, catalog.ErrMissingCaller
	}
	return uc.listItems(ctx, "uc.GetMyPurchasedItems", repo.ListItemsOptions{
		Buyer:  sc.Address,
		Status: model.ItemStatusSold,
	})
}

func (uc *implUseCase) ItemCount(ctx context.Context) (int, error) {
	n, err := uc.repo.CountItems(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ItemCount CountItems: %v", err)
		return 0, err
	}
	return n, nil
}

func (uc *implUseCase) listItems(ctx context.Context, method string, opt repo.ListItemsOptions) ([]model.Item, error) {
	items, err := uc.repo.ListItems(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "%s ListItems: %v", method, err)
		return nil, err
	}
	return items, nil
}
