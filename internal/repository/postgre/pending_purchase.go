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

const pendingColumns = `id, item_id, buyer, seller, amount_held::text, status, requested_at, resolved_at`

func scanPendingPurchase(row pgx.Row) (model.PendingPurchase, error) {
	var (
		pp   model.PendingPurchase
		held string
	)
	if err := row.Scan(&pp.ID, &pp.ItemID, &pp.Buyer, &pp.Seller, &held, &pp.Status, &pp.RequestedAt, &pp.ResolvedAt); err != nil {
		return model.PendingPurchase{}, err
	}
	d, err := decimal.NewFromString(held)
	if err != nil {
		return model.PendingPurchase{}, fmt.Errorf("parse amount_held %q: %w", held, err)
	}
	pp.AmountHeld = d
	return pp, nil
}

// CreatePendingPurchase fails with ErrStatusConflict when the item already has
// an OPEN record (enforced by a partial unique index).
func (r *implRepository) CreatePendingPurchase(ctx context.Context, opt repo.CreatePendingPurchaseOptions) (model.PendingPurchase, error) {
	var pp model.PendingPurchase
	err := r.write(ctx, func(ctx context.Context, q querier) error {
		if err := lockTable(ctx, q, "pending_purchases"); err != nil {
			return err
		}
		const query = `
INSERT INTO pending_purchases (id, item_id, buyer, seller, amount_held, status, requested_at)
SELECT COALESCE(MAX(id), 0) + 1, $1, $2, $3, $4::numeric, $5, $6 FROM pending_purchases
RETURNING ` + pendingColumns
		var err error
		pp, err = scanPendingPurchase(q.QueryRow(ctx, query,
			opt.ItemID, opt.Buyer, opt.Seller, opt.AmountHeld.String(), model.PendingPurchaseStatusOpen, opt.RequestedAt))
		return err
	})
	if err != nil {
		if isUniqueViolation(err) {
			return model.PendingPurchase{}, repo.ErrStatusConflict
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreatePendingPurchase"), err)
		return model.PendingPurchase{}, fmt.Errorf("%w: %v", repo.ErrFailedToInsert, err)
	}
	return pp, nil
}

// GetOnePendingPurchase locks the row when called inside a transaction.
func (r *implRepository) GetOnePendingPurchase(ctx context.Context, id int64) (model.PendingPurchase, error) {
	query := `SELECT ` + pendingColumns + ` FROM pending_purchases WHERE id = $1`
	if txFromContext(ctx) != nil {
		query += ` FOR UPDATE`
	}

	pp, err := scanPendingPurchase(r.db(ctx).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.PendingPurchase{}, nil
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOnePendingPurchase"), err)
		return model.PendingPurchase{}, fmt.Errorf("%w: %v", repo.ErrFailedToGet, err)
	}
	return pp, nil
}

func (r *implRepository) ListPendingPurchases(ctx context.Context, opt repo.ListPendingPurchasesOptions) ([]model.PendingPurchase, error) {
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
	if opt.ItemID != 0 {
		add("item_id", opt.ItemID)
	}
	if opt.Buyer != "" {
		add("buyer", opt.Buyer)
	}

	query := `SELECT ` + pendingColumns + ` FROM pending_purchases`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY id`

	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListPendingPurchases"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}
	defer rows.Close()

	out := make([]model.PendingPurchase, 0)
	for rows.Next() {
		pp, err := scanPendingPurchase(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
		}
		out = append(out, pp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}
	return out, nil
}

func (r *implRepository) ResolvePendingPurchase(ctx context.Context, opt repo.ResolvePendingPurchaseOptions) (model.PendingPurchase, error) {
	const query = `
UPDATE pending_purchases SET status = $2, resolved_at = $3
WHERE id = $1 AND status = 'OPEN'
RETURNING ` + pendingColumns

	q := r.db(ctx)
	pp, err := scanPendingPurchase(q.QueryRow(ctx, query, opt.ID, opt.Status, opt.ResolvedAt))
	if err == nil {
		return pp, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ResolvePendingPurchase"), err)
		return model.PendingPurchase{}, fmt.Errorf("%w: %v", repo.ErrFailedToUpdate, err)
	}

	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM pending_purchases WHERE id = $1)`, opt.ID).Scan(&exists); err != nil {
		return model.PendingPurchase{}, fmt.Errorf("%w: %v", repo.ErrFailedToUpdate, err)
	}
	if !exists {
		return model.PendingPurchase{}, repo.ErrRecordNotFound
	}
	return model.PendingPurchase{}, repo.ErrStatusConflict
}
