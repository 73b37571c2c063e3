package postgre

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"escrow-marketplace/internal/repository"
	"escrow-marketplace/pkg/log"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type implRepository struct {
	pool *pgxpool.Pool
	l    log.Logger
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a Postgres-backed Repository. The schema is expected to be in
// place (see migrations.Apply).
func New(l log.Logger, pool *pgxpool.Pool) repository.Repository {
	return &implRepository{pool: pool, l: l}
}

// db returns the transaction carried by ctx, or the pool.
func (r *implRepository) db(ctx context.Context) querier {
	if tx := txFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("repository/postgre.%s", method)
}
