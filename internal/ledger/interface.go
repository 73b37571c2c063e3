package ledger

import (
	"context"

	"github.com/shopspring/decimal"

	"escrow-marketplace/internal/model"
)

// UseCase answers balance and custody questions from the posting ledger.
type UseCase interface {
	// Balance sums every posting credited to the caller.
	Balance(ctx context.Context, sc model.Scope) (BalanceOutput, error)
	// Entries lists the caller's postings in id order.
	Entries(ctx context.Context, sc model.Scope) (EntriesOutput, error)
	// Custody returns the amount currently held for one pending purchase.
	Custody(ctx context.Context, pendingPurchaseID int64) (decimal.Decimal, error)
	// Summary totals custody over every OPEN pending purchase.
	Summary(ctx context.Context) (SummaryOutput, error)
}

// Disburser is the only way funds move. Every call posts inside the caller's
// transaction, so a failed posting aborts the whole state transition.
type Disburser interface {
	// Deposit records payment arriving in the custody account of a pending purchase.
	Deposit(ctx context.Context, input DepositInput) error
	// Credit moves funds out of custody to an identity.
	Credit(ctx context.Context, input CreditInput) error
	Custody(ctx context.Context, pendingPurchaseID int64) (decimal.Decimal, error)
}
