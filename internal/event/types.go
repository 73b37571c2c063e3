package event

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Type names one of the marketplace notifications.
type Type string

const (
	TypeItemListed        Type = "ItemListed"
	TypePurchaseRequested Type = "PurchaseRequested"
	TypePurchaseApproved  Type = "PurchaseApproved"
	TypePurchaseRejected  Type = "PurchaseRejected"
)

// Event is the envelope delivered to every sink.
type Event struct {
	ID         string    `json:"id"`
	Type       Type      `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

// New wraps payload in an envelope with a fresh id.
func New(t Type, at time.Time, payload any) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       t,
		OccurredAt: at,
		Payload:    payload,
	}
}

type ItemListed struct {
	ItemID int64           `json:"item_id"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
	Seller string          `json:"seller"`
}

type PurchaseRequested struct {
	PendingPurchaseID int64           `json:"pending_purchase_id"`
	ItemID            int64           `json:"item_id"`
	Buyer             string          `json:"buyer"`
	AmountHeld        decimal.Decimal `json:"amount_held"`
}

type PurchaseApproved struct {
	PendingPurchaseID int64           `json:"pending_purchase_id"`
	ItemID            int64           `json:"item_id"`
	Buyer             string          `json:"buyer"`
	Seller            string          `json:"seller"`
	Amount            decimal.Decimal `json:"amount"`
}

type PurchaseRejected struct {
	PendingPurchaseID int64           `json:"pending_purchase_id"`
	ItemID            int64           `json:"item_id"`
	Buyer             string          `json:"buyer"`
	Amount            decimal.Decimal `json:"amount"`
}
