package postgre

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"escrow-marketplace/internal/model"
	repo "escrow-marketplace/internal/repository"
)

const entryColumns = `id, pending_purchase_id, kind, account, amount::text, created_at`

func scanEntry(row pgx.Row) (model.LedgerEntry, error) {
	var (
		e      model.LedgerEntry
		amount string
	)
	if err := row.Scan(&e.ID, &e.PendingPurchaseID, &e.Kind, &e.Account, &amount, &e.CreatedAt); err != nil {
		return model.LedgerEntry{}, err
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return model.LedgerEntry{}, fmt.Errorf("parse amount %q: %w", amount, err)
	}
	e.Amount = d
	return e, nil
}

func (r *implRepository) AppendEntries(ctx context.Context, opts []repo.CreateEntryOptions) ([]model.LedgerEntry, error) {
	out := make([]model.LedgerEntry, 0, len(opts))
	err := r.write(ctx, func(ctx context.Context, q querier) error {
		if err := lockTable(ctx, q, "ledger_entries"); err != nil {
			return err
		}
		const query = `
INSERT INTO ledger_entries (id, pending_purchase_id, kind, account, amount, created_at)
SELECT COALESCE(MAX(id), 0) + 1, $1, $2, $3, $4::numeric, $5 FROM ledger_entries
RETURNING ` + entryColumns
		for _, opt := range opts {
			e, err := scanEntry(q.QueryRow(ctx, query, opt.PendingPurchaseID, opt.Kind, opt.Account, opt.Amount.String(), opt.CreatedAt))
			if err != nil {
				return err
			}
			out = append(out, e)
		}
		return nil
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("AppendEntries"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToInsert, err)
	}
	return out, nil
}

func (r *implRepository) ListEntries(ctx context.Context, opt repo.ListEntriesOptions) ([]model.LedgerEntry, error) {
	var (
		conds []string
		args  []any
	)
	if opt.Account != "" {
		args = append(args, opt.Account)
		conds = append(conds, fmt.Sprintf("account = $%d", len(args)))
	}
	if opt.PendingPurchaseID != 0 {
		args = append(args, opt.PendingPurchaseID)
		conds = append(conds, fmt.Sprintf("pending_purchase_id = $%d", len(args)))
	}

	query := `SELECT ` + entryColumns + ` FROM ledger_entries`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY id`

	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEntries"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}
	defer rows.Close()

	out := make([]model.LedgerEntry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}
	return out, nil
}

func (r *implRepository) Balance(ctx context.Context, account string) (decimal.Decimal, error) {
	var total string
	err := r.db(ctx).QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0)::text FROM ledger_entries WHERE account = $1`, account).Scan(&total)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Balance"), err)
		return decimal.Zero, fmt.Errorf("%w: %v", repo.ErrFailedToGet, err)
	}
	d, err := decimal.NewFromString(total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: parse %q: %v", repo.ErrFailedToGet, total, err)
	}
	return d, nil
}
