package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind classifies a ledger posting.
type EntryKind string

const (
	// EntryKindDeposit records the buyer's payment arriving in custody.
	EntryKindDeposit EntryKind = "DEPOSIT"
	// EntryKindExcessRefund returns paid-minus-price to the buyer at request time.
	EntryKindExcessRefund EntryKind = "EXCESS_REFUND"
	// EntryKindPayout moves custody to the seller on approval.
	EntryKindPayout EntryKind = "PAYOUT"
	// EntryKindRefund moves custody back to the buyer on rejection.
	EntryKindRefund EntryKind = "REFUND"
)

const custodyPrefix = "escrow:"

// CustodyAccount names the per-purchase custody account. Funds are never pooled
// across pending purchases.
func CustodyAccount(pendingPurchaseID int64) string {
	return custodyPrefix + strconv.FormatInt(pendingPurchaseID, 10)
}

// IsCustodyAccount reports whether account is a custody account.
func IsCustodyAccount(account string) bool {
	return strings.HasPrefix(account, custodyPrefix)
}

// LedgerEntry is one signed posting against an account. Entries are append-only;
// an account's balance is the sum of its entries.
type LedgerEntry struct {
	ID                int64
	PendingPurchaseID int64
	Kind              EntryKind
	Account           string
	Amount            decimal.Decimal
	CreatedAt         time.Time
}

func (e LedgerEntry) String() string {
	return fmt.Sprintf("%s %s %s (pending %d)", e.Kind, e.Account, e.Amount.String(), e.PendingPurchaseID)
}
