package postgre

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	repo "escrow-marketplace/internal/repository"
)

type txKey struct{}

func txFromContext(ctx context.Context) pgx.Tx {
	tx, _ := ctx.Value(txKey{}).(pgx.Tx)
	return tx
}

// WithTx runs fn in a READ COMMITTED transaction. Transitions stay correct
// because every read that feeds a write takes a row lock and every status
// update is conditional on the status it read.
func (r *implRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if txFromContext(ctx) != nil {
		return fn(ctx)
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("WithTx"), err)
		return fmt.Errorf("%w: %v", repo.ErrFailedToBegin, err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(context.Background())
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			r.l.Warnf(ctx, "%s: rollback: %v", r.dsn("WithTx"), rbErr)
		}
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		r.l.Errorf(ctx, "%s: commit: %v", r.dsn("WithTx"), err)
		return fmt.Errorf("%w: %v", repo.ErrFailedToCommit, err)
	}
	return nil
}

// write runs fn inside the caller's transaction, or a fresh one.
func (r *implRepository) write(ctx context.Context, fn func(ctx context.Context, q querier) error) error {
	return r.WithTx(ctx, func(ctx context.Context) error {
		return fn(ctx, txFromContext(ctx))
	})
}

// lockTable takes an EXCLUSIVE lock so MAX(id)+1 allocation is gapless and
// race free. Readers are not blocked.
func lockTable(ctx context.Context, q querier, table string) error {
	_, err := q.Exec(ctx, "LOCK TABLE "+table+" IN EXCLUSIVE MODE")
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
