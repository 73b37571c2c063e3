package catalog

import (
	"context"

	"escrow-marketplace/internal/model"
)

// UseCase owns item creation and the read views over the item table.
type UseCase interface {
	// List creates an AVAILABLE item sold by the caller.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	GetItem(ctx context.Context, id int64) (model.Item, error)
	// GetAllItems returns every item in creation order.
	GetAllItems(ctx context.Context) ([]model.Item, error)
	GetAvailableItems(ctx context.Context) ([]model.Item, error)
	// GetMyListedItems returns the caller's listings in any status.
	GetMyListedItems(ctx context.Context, sc model.Scope) ([]model.Item, error)
	// GetMyPurchasedItems returns SOLD items whose buyer is the caller.
	GetMyPurchasedItems(ctx context.Context, sc model.Scope) ([]model.Item, error)
	ItemCount(ctx context.Context) (int, error)
}
