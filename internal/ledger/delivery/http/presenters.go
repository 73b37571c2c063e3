package http

import (
	"time"

	"escrow-marketplace/internal/ledger"
	"escrow-marketplace/pkg/address"
)

type balanceResp struct {
	Account string `json:"account"`
	Balance string `json:"balance"`
}

func newBalanceResp(out ledger.BalanceOutput) balanceResp {
	return balanceResp{Account: address.Checksum(out.Account), Balance: out.Balance.String()}
}

type entryResp struct {
	ID                int64     `json:"id"`
	PendingPurchaseID int64     `json:"pending_purchase_id"`
	Kind              string    `json:"kind"`
	Amount            string    `json:"amount"`
	CreatedAt         time.Time `json:"created_at"`
}

type entriesResp struct {
	Account string      `json:"account"`
	Entries []entryResp `json:"entries"`
}

func newEntriesResp(out ledger.EntriesOutput) entriesResp {
	entries := make([]entryResp, len(out.Entries))
	for i, e := range out.Entries {
		entries[i] = entryResp{
			ID:                e.ID,
			PendingPurchaseID: e.PendingPurchaseID,
			Kind:              string(e.Kind),
			Amount:            e.Amount.String(),
			CreatedAt:         e.CreatedAt,
		}
	}
	return entriesResp{Account: address.Checksum(out.Account), Entries: entries}
}

type summaryResp struct {
	ItemCount        int    `json:"item_count"`
	OpenPendingCount int    `json:"open_pending_count"`
	TotalHeld        string `json:"total_held"`
}
