package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemStatus is the lifecycle state of a listed item.
type ItemStatus string

const (
	ItemStatusAvailable ItemStatus = "AVAILABLE"
	ItemStatusPending   ItemStatus = "PENDING"
	ItemStatusSold      ItemStatus = "SOLD"
)

// IsValid reports whether the status is part of the item lifecycle.
func (s ItemStatus) IsValid() bool {
	switch s {
	case ItemStatusAvailable, ItemStatusPending, ItemStatusSold:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the item may move from s to next.
//
//	AVAILABLE → PENDING
//	PENDING   → SOLD | AVAILABLE
//	SOLD      → (terminal)
func (s ItemStatus) CanTransitionTo(next ItemStatus) bool {
	switch s {
	case ItemStatusAvailable:
		return next == ItemStatusPending
	case ItemStatusPending:
		return next == ItemStatusSold || next == ItemStatusAvailable
	default:
		return false
	}
}

// Item is a single listed good. Name, description, price and seller never
// change after creation; only Status and Buyer move.
type Item struct {
	ID          int64
	Name        string
	Description string
	MetadataRef string
	Price       decimal.Decimal
	Seller      string
	Buyer       string
	Status      ItemStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
