package memory

import (
	"context"

	"escrow-marketplace/internal/model"
	repo "escrow-marketplace/internal/repository"
)

// CreatePendingPurchase appends an OPEN record with the next sequential id.
func (r *implRepository) CreatePendingPurchase(ctx context.Context, opt repo.CreatePendingPurchaseOptions) (model.PendingPurchase, error) {
	var pp model.PendingPurchase
	err := r.write(ctx, func(t *tables) error {
		for _, existing := range t.pendings {
			if existing.ItemID == opt.ItemID && existing.Status == model.PendingPurchaseStatusOpen {
				return repo.ErrStatusConflict
			}
		}
		pp = model.PendingPurchase{
			ID:          int64(len(t.pendings)) + 1,
			ItemID:      opt.ItemID,
			Buyer:       opt.Buyer,
			Seller:      opt.Seller,
			AmountHeld:  opt.AmountHeld,
			Status:      model.PendingPurchaseStatusOpen,
			RequestedAt: opt.RequestedAt,
		}
		t.pendings = append(t.pendings, pp)
		return nil
	})
	if err != nil {
		return model.PendingPurchase{}, err
	}
	return pp, nil
}

// GetOnePendingPurchase returns the zero value when the id is unknown.
func (r *implRepository) GetOnePendingPurchase(ctx context.Context, id int64) (model.PendingPurchase, error) {
	var pp model.PendingPurchase
	r.read(ctx, func(t *tables) {
		if id >= 1 && id <= int64(len(t.pendings)) {
			pp = t.pendings[id-1]
		}
	})
	return pp, nil
}

// ListPendingPurchases returns matching records in creation order.
func (r *implRepository) ListPendingPurchases(ctx context.Context, opt repo.ListPendingPurchasesOptions) ([]model.PendingPurchase, error) {
	out := make([]model.PendingPurchase, 0)
	r.read(ctx, func(t *tables) {
		for _, pp := range t.pendings {
			if opt.Status != "" && pp.Status != opt.Status {
				continue
			}
			if opt.ItemID != 0 && pp.ItemID != opt.ItemID {
				continue
			}
			if opt.Buyer != "" && pp.Buyer != opt.Buyer {
				continue
			}
			out = append(out, pp)
		}
	})
	return out, nil
}

// ResolvePendingPurchase closes an OPEN record exactly once.
func (r *implRepository) ResolvePendingPurchase(ctx context.Context, opt repo.ResolvePendingPurchaseOptions) (model.PendingPurchase, error) {
	var pp model.PendingPurchase
	err := r.write(ctx, func(t *tables) error {
		if opt.ID < 1 || opt.ID > int64(len(t.pendings)) {
			return repo.ErrRecordNotFound
		}
		current := &t.pendings[opt.ID-1]
		if current.Status != model.PendingPurchaseStatusOpen {
			return repo.ErrStatusConflict
		}
		resolvedAt := opt.ResolvedAt
		current.Status = opt.Status
		current.ResolvedAt = &resolvedAt
		pp = *current
		return nil
	})
	if err != nil {
		return model.PendingPurchase{}, err
	}
	return pp, nil
}
