package memory

import (
	"context"

	"github.com/shopspring/decimal"

	"escrow-marketplace/internal/model"
	repo "escrow-marketplace/internal/repository"
)

// AppendEntries appends postings with sequential ids.
func (r *implRepository) AppendEntries(ctx context.Context, opts []repo.CreateEntryOptions) ([]model.LedgerEntry, error) {
	out := make([]model.LedgerEntry, 0, len(opts))
	err := r.write(ctx, func(t *tables) error {
		for _, opt := range opts {
			e := model.LedgerEntry{
				ID:                int64(len(t.entries)) + 1,
				PendingPurchaseID: opt.PendingPurchaseID,
				Kind:              opt.Kind,
				Account:           opt.Account,
				Amount:            opt.Amount,
				CreatedAt:         opt.CreatedAt,
			}
			t.entries = append(t.entries, e)
			out = append(out, e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListEntries returns matching postings in id order.
func (r *implRepository) ListEntries(ctx context.Context, opt repo.ListEntriesOptions) ([]model.LedgerEntry, error) {
	out := make([]model.LedgerEntry, 0)
	r.read(ctx, func(t *tables) {
		for _, e := range t.entries {
			if opt.Account != "" && e.Account != opt.Account {
				continue
			}
			if opt.PendingPurchaseID != 0 && e.PendingPurchaseID != opt.PendingPurchaseID {
				continue
			}
			out = append(out, e)
		}
	})
	return out, nil
}

// Balance sums the postings made against account.
func (r *implRepository) Balance(ctx context.Context, account string) (decimal.Decimal, error) {
	total := decimal.Zero
	r.read(ctx, func(t *tables) {
		for _, e := range t.entries {
			if e.Account == account {
				total = total.Add(e.Amount)
			}
		}
	})
	return total, nil
}
