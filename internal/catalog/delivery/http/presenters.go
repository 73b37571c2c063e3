package http

import (
	"time"

	"github.com/shopspring/decimal"

	"escrow-marketplace/internal/catalog"
	"escrow-marketplace/internal/model"
	"escrow-marketplace/pkg/address"
)

// --- Request DTOs ---

type listReq struct {
	Name        string `json:"name"         binding:"max=255"`
	Description string `json:"description"  binding:"max=4000"`
	Price       string `json:"price"        binding:"required"`
	MetadataRef string `json:"metadata_ref" binding:"max=2048"`

	price decimal.Decimal
}

func (r listReq) toInput() catalog.ListInput {
	return catalog.ListInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.price,
		MetadataRef: r.MetadataRef,
	}
}

// --- Response DTOs ---

type itemResp struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	MetadataRef string    `json:"metadata_ref,omitempty"`
	Price       string    `json:"price"`
	Seller      string    `json:"seller"`
	Buyer       string    `json:"buyer,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newItemResp(item model.Item) itemResp {
	resp := itemResp{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		MetadataRef: item.MetadataRef,
		Price:       item.Price.String(),
		Seller:      address.Checksum(item.Seller),
		Status:      string(item.Status),
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
	if item.Buyer != "" {
		resp.Buyer = address.Checksum(item.Buyer)
	}
	return resp
}

type itemsResp struct {
	Items []itemResp `json:"items"`
	Count int        `json:"count"`
}

func newItemsResp(items []model.Item) itemsResp {
	out := make([]itemResp, len(items))
	for i, it := range items {
		out[i] = newItemResp(it)
	}
	return itemsResp{Items: out, Count: len(out)}
}

type listResp struct {
	ItemID int64    `json:"item_id"`
	Item   itemResp `json:"item"`
}

func (h *handler) newListResp(out catalog.ListOutput) listResp {
	return listResp{ItemID: out.Item.ID, Item: newItemResp(out.Item)}
}
