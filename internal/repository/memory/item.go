package memory

import (
	"context"

	"escrow-marketplace/internal/model"
	repo "escrow-marketplace/internal/repository"
)

// CreateItem appends a new AVAILABLE item. Ids are positions, so they are
// sequential and never reused.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (model.Item, error) {
	var item model.Item
	err := r.write(ctx, func(t *tables) error {
		item = model.Item{
			ID:          int64(len(t.items)) + 1,
			Name:        opt.Name,
			Description: opt.Description,
			MetadataRef: opt.MetadataRef,
			Price:       opt.Price,
			Seller:      opt.Seller,
			Status:      model.ItemStatusAvailable,
			CreatedAt:   opt.CreatedAt,
			UpdatedAt:   opt.CreatedAt,
		}
		t.items = append(t.items, item)
		return nil
	})
	if err != nil {
		return model.Item{}, err
	}
	return item, nil
}

// GetOneItem returns the zero Item when the id is unknown.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (model.Item, error) {
	var item model.Item
	r.read(ctx, func(t *tables) {
		if opt.ID >= 1 && opt.ID <= int64(len(t.items)) {
			item = t.items[opt.ID-1]
		}
	})
	return item, nil
}

// ListItems returns matching items in creation order.
func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]model.Item, error) {
	items := make([]model.Item, 0)
	r.read(ctx, func(t *tables) {
		for _, it := range t.items {
			if opt.Status != "" && it.Status != opt.Status {
				continue
			}
			if opt.Seller != "" && it.Seller != opt.Seller {
				continue
			}
			if opt.Buyer != "" && it.Buyer != opt.Buyer {
				continue
			}
			items = append(items, it)
		}
	})
	return items, nil
}

func (r *implRepository) CountItems(ctx context.Context) (int, error) {
	var n int
	r.read(ctx, func(t *tables) { n = len(t.items) })
	return n, nil
}

// UpdateItem applies a guarded status change.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (model.Item, error) {
	var item model.Item
	err := r.write(ctx, func(t *tables) error {
		if opt.ID < 1 || opt.ID > int64(len(t.items)) {
			return repo.ErrRecordNotFound
		}
		current := &t.items[opt.ID-1]
		if current.Status != opt.FromStatus {
			r.l.Warnf(ctx, "%s: item %d is %s, expected %s", r.dsn("UpdateItem"), opt.ID, current.Status, opt.FromStatus)
			return repo.ErrStatusConflict
		}
		current.Status = opt.Status
		current.Buyer = opt.Buyer
		current.UpdatedAt = opt.UpdatedAt
		item = *current
		return nil
	})
	if err != nil {
		return model.Item{}, err
	}
	return item, nil
}
