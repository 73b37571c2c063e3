package escrow

import (
	"context"

	"escrow-marketplace/internal/model"
)

// UseCase is the escrow engine: it owns pending purchases and the custody of
// their funds. Every state-changing call is a single all-or-nothing unit.
type UseCase interface {
	// RequestPurchase holds the item price in custody, refunds any excess to
	// the caller and moves the item to PENDING.
	RequestPurchase(ctx context.Context, sc model.Scope, input RequestPurchaseInput) (RequestPurchaseOutput, error)
	// GetAllPendingPurchases returns OPEN records in creation order.
	GetAllPendingPurchases(ctx context.Context) ([]model.PendingPurchase, error)
	Detail(ctx context.Context, pendingPurchaseID int64) (DetailOutput, error)
	// Approve pays the seller and marks the item SOLD. Owner only.
	Approve(ctx context.Context, sc model.Scope, pendingPurchaseID int64) (ResolveOutput, error)
	// Reject refunds the buyer and returns the item to the market. Owner only.
	Reject(ctx context.Context, sc model.Scope, pendingPurchaseID int64) (ResolveOutput, error)
	// Owner returns the fixed identity allowed to resolve pending purchases.
	Owner() string
}
