package http

import (
	"time"

	"github.com/shopspring/decimal"

	"escrow-marketplace/internal/escrow"
	"escrow-marketplace/internal/model"
	"escrow-marketplace/pkg/address"
)

// --- Request DTOs ---

type purchaseReq struct {
	Paid string `json:"paid" binding:"required"`

	itemID int64
	paid   decimal.Decimal
}

func (r purchaseReq) toInput() escrow.RequestPurchaseInput {
	return escrow.RequestPurchaseInput{ItemID: r.itemID, Paid: r.paid}
}

// --- Response DTOs ---

type pendingResp struct {
	ID          int64      `json:"id"`
	ItemID      int64      `json:"item_id"`
	Buyer       string     `json:"buyer"`
	Seller      string     `json:"seller"`
	AmountHeld  string     `json:"amount_held"`
	Status      string     `json:"status"`
	RequestedAt time.Time  `json:"requested_at"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
}

func newPendingResp(pp model.PendingPurchase) pendingResp {
	return pendingResp{
		ID:          pp.ID,
		ItemID:      pp.ItemID,
		Buyer:       address.Checksum(pp.Buyer),
		Seller:      address.Checksum(pp.Seller),
		AmountHeld:  pp.AmountHeld.String(),
		Status:      string(pp.Status),
		RequestedAt: pp.RequestedAt,
		ResolvedAt:  pp.ResolvedAt,
	}
}

type itemStateResp struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
	Buyer  string `json:"buyer,omitempty"`
}

func newItemStateResp(item model.Item) itemStateResp {
	resp := itemStateResp{ID: item.ID, Status: string(item.Status)}
	if item.Buyer != "" {
		resp.Buyer = address.Checksum(item.Buyer)
	}
	return resp
}

type pendingListResp struct {
	PendingPurchases []pendingResp `json:"pending_purchases"`
	Count            int           `json:"count"`
}

func newPendingListResp(pps []model.PendingPurchase) pendingListResp {
	out := make([]pendingResp, len(pps))
	for i, pp := range pps {
		out[i] = newPendingResp(pp)
	}
	return pendingListResp{PendingPurchases: out, Count: len(out)}
}

type purchaseResp struct {
	PendingPurchaseID int64         `json:"pending_purchase_id"`
	PendingPurchase   pendingResp   `json:"pending_purchase"`
	Item              itemStateResp `json:"item"`
	Refunded          string        `json:"refunded"`
}

func newPurchaseResp(out escrow.RequestPurchaseOutput) purchaseResp {
	return purchaseResp{
		PendingPurchaseID: out.PendingPurchase.ID,
		PendingPurchase:   newPendingResp(out.PendingPurchase),
		Item:              newItemStateResp(out.Item),
		Refunded:          out.Refunded.String(),
	}
}

type detailResp struct {
	PendingPurchase pendingResp   `json:"pending_purchase"`
	Item            itemStateResp `json:"item"`
	Held            string        `json:"held"`
}

func newDetailResp(out escrow.DetailOutput) detailResp {
	return detailResp{
		PendingPurchase: newPendingResp(out.PendingPurchase),
		Item:            newItemStateResp(out.Item),
		Held:            out.Held.String(),
	}
}

type resolveResp struct {
	PendingPurchase pendingResp   `json:"pending_purchase"`
	Item            itemStateResp `json:"item"`
}

func newResolveResp(out escrow.ResolveOutput) resolveResp {
	return resolveResp{
		PendingPurchase: newPendingResp(out.PendingPurchase),
		Item:            newItemStateResp(out.Item),
	}
}

type ownerResp struct {
	Owner string `json:"owner"`
}
