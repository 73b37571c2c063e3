package ledger

import (
	"github.com/shopspring/decimal"

	"escrow-marketplace/internal/model"
)

type DepositInput struct {
	PendingPurchaseID int64
	Amount            decimal.Decimal
}

// CreditInput moves Amount from the custody of PendingPurchaseID to Account.
type CreditInput struct {
	PendingPurchaseID int64
	Account           string
	Amount            decimal.Decimal
	Kind              model.EntryKind
}

type BalanceOutput struct {
	Account string
	Balance decimal.Decimal
}

type EntriesOutput struct {
	Account string
	Entries []model.LedgerEntry
}

type SummaryOutput struct {
	ItemCount        int
	OpenPendingCount int
	TotalHeld        decimal.Decimal
}
