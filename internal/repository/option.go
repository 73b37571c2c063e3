package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"escrow-marketplace/internal/model"
)

// CreateItemOptions holds parameters for appending a new Item.
type CreateItemOptions struct {
	Name        string
	Description string
	MetadataRef string
	Price       decimal.Decimal
	Seller      string
	CreatedAt   time.Time
}

// GetOneItemOptions selects a single Item by id.
type GetOneItemOptions struct {
	ID int64
}

// ListItemsOptions holds filters for listing Items. All non-empty fields are
// applied as AND conditions; results are always in id order.
type ListItemsOptions struct {
	Status model.ItemStatus
	Seller string
	Buyer  string
}

// UpdateItemOptions moves an item from FromStatus to Status. Buyer is written
// as given, so callers pass "" to leave it unset.
type UpdateItemOptions struct {
	ID         int64
	FromStatus model.ItemStatus
	Status     model.ItemStatus
	Buyer      string
	UpdatedAt  time.Time
}

// CreatePendingPurchaseOptions holds parameters for opening a pending purchase.
type CreatePendingPurchaseOptions struct {
	ItemID      int64
	Buyer       string
	Seller      string
	AmountHeld  decimal.Decimal
	RequestedAt time.Time
}

// ListPendingPurchasesOptions holds filters for listing pending purchases.
type ListPendingPurchasesOptions struct {
	Status model.PendingPurchaseStatus
	ItemID int64
	Buyer  string
}

// ResolvePendingPurchaseOptions closes an OPEN pending purchase.
type ResolvePendingPurchaseOptions struct {
	ID         int64
	Status     model.PendingPurchaseStatus
	ResolvedAt time.Time
}

// CreateEntryOptions holds one ledger posting.
type CreateEntryOptions struct {
	PendingPurchaseID int64
	Kind              model.EntryKind
	Account           string
	Amount            decimal.Decimal
	CreatedAt         time.Time
}

// ListEntriesOptions filters ledger postings. Results are in id order.
type ListEntriesOptions struct {
	Account           string
	PendingPurchaseID int64
}
