package postgre

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"escrow-marketplace/internal/model"
	repo "escrow-marketplace/internal/repository"
)

const itemColumns = `id, name, description, metadata_ref, price::text, seller, buyer, status, created_at, updated_at`

func scanItem(row pgx.Row) (model.Item, error) {
	var (
		it    model.Item
		price string
	)
	if err := row.Scan(&it.ID, &it.Name, &it.Description, &it.MetadataRef, &price, &it.Seller, &it.Buyer, &it.Status, &it.CreatedAt, &it.UpdatedAt); err != nil {
		return model.Item{}, err
	}
	d, err := decimal.NewFromString(price)
	if err != nil {
		return model.Item{}, fmt.Errorf("parse price %q: %w", price, err)
	}
	it.Price = d
	return it, nil
}

func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (model.Item, error) {
	var item model.Item
	err := r.write(ctx, func(ctx context.Context, q querier) error {
		if err := lockTable(ctx, q, "items"); err != nil {
			return err
		}
		const query = `
INSERT INTO items (id, name, description, metadata_ref, price, seller, buyer, status, created_at, updated_at)
SELECT COALESCE(MAX(id), 0) + 1, $1, $2, $3, $4::numeric, $5, '', $6, $7, $7 FROM items
RETURNING ` + itemColumns
		var err error
		item, err = scanItem(q.QueryRow(ctx, query,
			opt.Name, opt.Description, opt.MetadataRef, opt.Price.String(), opt.Seller, model.ItemStatusAvailable, opt.CreatedAt))
		return err
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return model.Item{}, fmt.Errorf("%w: %v", repo.ErrFailedToInsert, err)
	}
	return item, nil
}

// GetOneItem locks the row when called inside a transaction.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (model.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	if txFromContext(ctx) != nil {
		query += ` FOR UPDATE`
	}

	item, err := scanItem(r.db(ctx).QueryRow(ctx, query, opt.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Item{}, nil
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneItem"), err)
		return model.Item{}, fmt.Errorf("%w: %v", repo.ErrFailedToGet, err)
	}
	return item, nil
}

func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]model.Item, error) {
	var (
		conds []string
		args  []any
	)
	add := func(col string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if opt.Status != "" {
		add("status", opt.Status)
	}
	if opt.Seller != "" {
		add("seller", opt.Seller)
	}
	if opt.Buyer != "" {
		add("buyer", opt.Buyer)
	}

	query := `SELECT ` + itemColumns + ` FROM items`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY id`

	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}
	defer rows.Close()

	items := make([]model.Item, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s: scan: %v", r.dsn("ListItems"), err)
			return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}
	return items, nil
}

func (r *implRepository) CountItems(ctx context.Context) (int, error) {
	var n int
	if err := r.db(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM items`).Scan(&n); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountItems"), err)
		return 0, fmt.Errorf("%w: %v", repo.ErrFailedToGet, err)
	}
	return n, nil
}

// UpdateItem only matches a row still in opt.FromStatus.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (model.Item, error) {
	const query = `
UPDATE items SET status = $2, buyer = $3, updated_at = $4
WHERE id = $1 AND status = $5
RETURNING ` + itemColumns

	q := r.db(ctx)
	item, err := scanItem(q.QueryRow(ctx, query, opt.ID, opt.Status, opt.Buyer, opt.UpdatedAt, opt.FromStatus))
	if err == nil {
		return item, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return model.Item{}, fmt.Errorf("%w: %v", repo.ErrFailedToUpdate, err)
	}

	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM items WHERE id = $1)`, opt.ID).Scan(&exists); err != nil {
		return model.Item{}, fmt.Errorf("%w: %v", repo.ErrFailedToUpdate, err)
	}
	if !exists {
		return model.Item{}, repo.ErrRecordNotFound
	}
	r.l.Warnf(ctx, "%s: item %d is not %s", r.dsn("UpdateItem"), opt.ID, opt.FromStatus)
	return model.Item{}, repo.ErrStatusConflict
}
