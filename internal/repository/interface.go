package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"escrow-marketplace/internal/model"
)

// Repository is the ledger store shared by the catalog, escrow and ledger
// domains: three append-only tables plus a transaction boundary.
type Repository interface {
	Transactor
	ItemRepository
	PendingPurchaseRepository
	LedgerRepository
}

// Transactor runs fn as one all-or-nothing unit. Repository calls made with the
// ctx passed to fn join the transaction; if fn returns an error (or panics)
// nothing fn wrote is kept. Nested calls reuse the outer transaction.
type Transactor interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ItemRepository defines data access for the Item table.
type ItemRepository interface {
	// CreateItem appends an item with the next sequential id.
	CreateItem(ctx context.Context, opt CreateItemOptions) (model.Item, error)
	// GetOneItem returns the zero Item (ID == 0) when no row matches.
	// Inside a transaction the row is locked until commit.
	GetOneItem(ctx context.Context, opt GetOneItemOptions) (model.Item, error)
	ListItems(ctx context.Context, opt ListItemsOptions) ([]model.Item, error)
	CountItems(ctx context.Context) (int, error)
	// UpdateItem moves an item between statuses. It fails with ErrStatusConflict
	// when the stored status differs from opt.FromStatus.
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (model.Item, error)
}

// PendingPurchaseRepository defines data access for the PendingPurchase table.
type PendingPurchaseRepository interface {
	CreatePendingPurchase(ctx context.Context, opt CreatePendingPurchaseOptions) (model.PendingPurchase, error)
	// GetOnePendingPurchase returns the zero value (ID == 0) when no row matches.
	GetOnePendingPurchase(ctx context.Context, id int64) (model.PendingPurchase, error)
	ListPendingPurchases(ctx context.Context, opt ListPendingPurchasesOptions) ([]model.PendingPurchase, error)
	// ResolvePendingPurchase closes an OPEN record. It fails with
	// ErrStatusConflict when the record is no longer OPEN.
	ResolvePendingPurchase(ctx context.Context, opt ResolvePendingPurchaseOptions) (model.PendingPurchase, error)
}

// LedgerRepository defines data access for ledger postings.
type LedgerRepository interface {
	AppendEntries(ctx context.Context, opts []CreateEntryOptions) ([]model.LedgerEntry, error)
	ListEntries(ctx context.Context, opt ListEntriesOptions) ([]model.LedgerEntry, error)
	// Balance sums every posting made against account.
	Balance(ctx context.Context, account string) (decimal.Decimal, error)
}
