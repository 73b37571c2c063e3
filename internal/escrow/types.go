package escrow

import (
	"github.com/shopspring/decimal"

	"escrow-marketplace/internal/model"
)

type RequestPurchaseInput struct {
	ItemID int64
	Paid   decimal.Decimal
}

type RequestPurchaseOutput struct {
	PendingPurchase model.PendingPurchase
	Item            model.Item
	// Refunded is the excess returned to the buyer before the call returned.
	Refunded decimal.Decimal
}

type DetailOutput struct {
	PendingPurchase model.PendingPurchase
	Item            model.Item
	// Held is the custody balance; zero once resolved.
	Held decimal.Decimal
}

type ResolveOutput struct {
	PendingPurchase model.PendingPurchase
	Item            model.Item
}
