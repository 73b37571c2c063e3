package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PendingPurchaseStatus is the lifecycle state of a purchase awaiting the owner.
type PendingPurchaseStatus string

const (
	PendingPurchaseStatusOpen     PendingPurchaseStatus = "OPEN"
	PendingPurchaseStatusApproved PendingPurchaseStatus = "APPROVED"
	PendingPurchaseStatusRejected PendingPurchaseStatus = "REJECTED"
)

// IsValid reports whether the status is part of the pending purchase lifecycle.
func (s PendingPurchaseStatus) IsValid() bool {
	switch s {
	case PendingPurchaseStatusOpen, PendingPurchaseStatusApproved, PendingPurchaseStatusRejected:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the record has been resolved.
func (s PendingPurchaseStatus) IsTerminal() bool {
	return s == PendingPurchaseStatusApproved || s == PendingPurchaseStatusRejected
}

// PendingPurchase is a buyer's payment held in custody until the owner
// approves or rejects it. Records are never deleted.
type PendingPurchase struct {
	ID          int64
	ItemID      int64
	Buyer       string
	Seller      string
	AmountHeld  decimal.Decimal
	Status      PendingPurchaseStatus
	RequestedAt time.Time
	ResolvedAt  *time.Time
}
