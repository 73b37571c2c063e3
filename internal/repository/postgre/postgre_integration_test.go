//go:build integration

package postgre_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"escrow-marketplace/internal/model"
	repo "escrow-marketplace/internal/repository"
	"escrow-marketplace/internal/repository/postgre"
	"escrow-marketplace/migrations"
	"escrow-marketplace/pkg/log"
)

// startPostgres reuses TEST_DATABASE_URL when set, otherwise starts a
// throwaway Postgres 16 container.
func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		pgC, err := postgres.Run(ctx,
			"postgres:16",
			postgres.WithDatabase("marketplace"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			postgres.BasicWaitStrategies(),
		)
		require.NoError(t, err)
		t.Cleanup(func() { _ = pgC.Terminate(context.Background()) })

		dsn, err = pgC.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, migrations.Apply(ctx, pool))
	_, err = pool.Exec(ctx, `TRUNCATE ledger_entries, pending_purchases, items`)
	require.NoError(t, err)
	return pool
}

func TestPostgresRepository(t *testing.T) {
	pool := startPostgres(t)
	r := postgre.New(log.NewNop(), pool)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("items are sequential and guarded", func(t *testing.T) {
		a, err := r.CreateItem(ctx, repo.CreateItemOptions{Name: "a", Description: "d", Price: decimal.RequireFromString("1.5"), Seller: "0xs", CreatedAt: now})
		require.NoError(t, err)
		b, err := r.CreateItem(ctx, repo.CreateItemOptions{Name: "b", Description: "d", Price: decimal.NewFromInt(2), Seller: "0xs", CreatedAt: now})
		require.NoError(t, err)
		assert.Equal(t, int64(1), a.ID)
		assert.Equal(t, int64(2), b.ID)
		assert.True(t, a.Price.Equal(decimal.RequireFromString("1.5")))

		_, err = r.UpdateItem(ctx, repo.UpdateItemOptions{ID: 1, FromStatus: model.ItemStatusPending, Status: model.ItemStatusSold, UpdatedAt: now})
		assert.ErrorIs(t, err, repo.ErrStatusConflict)
		_, err = r.UpdateItem(ctx, repo.UpdateItemOptions{ID: 99, FromStatus: model.ItemStatusAvailable, Status: model.ItemStatusPending, UpdatedAt: now})
		assert.ErrorIs(t, err, repo.ErrRecordNotFound)

		missing, err := r.GetOneItem(ctx, repo.GetOneItemOptions{ID: 99})
		require.NoError(t, err)
		assert.Zero(t, missing.ID)
	})

	t.Run("rollback discards every write", func(t *testing.T) {
		boom := errors.New("boom")
		err := r.WithTx(ctx, func(ctx context.Context) error {
			if _, err := r.UpdateItem(ctx, repo.UpdateItemOptions{ID: 1, FromStatus: model.ItemStatusAvailable, Status: model.ItemStatusPending, UpdatedAt: now}); err != nil {
				return err
			}
			if _, err := r.CreatePendingPurchase(ctx, repo.CreatePendingPurchaseOptions{ItemID: 1, Buyer: "0xb", Seller: "0xs", AmountHeld: decimal.NewFromInt(2), RequestedAt: now}); err != nil {
				return err
			}
			return boom
		})
		require.ErrorIs(t, err, boom)

		item, err := r.GetOneItem(ctx, repo.GetOneItemOptions{ID: 1})
		require.NoError(t, err)
		assert.Equal(t, model.ItemStatusAvailable, item.Status)

		pps, err := r.ListPendingPurchases(ctx, repo.ListPendingPurchasesOptions{})
		require.NoError(t, err)
		assert.Empty(t, pps)
	})

	t.Run("one open pending per item and ledger sums", func(t *testing.T) {
		pp, err := r.CreatePendingPurchase(ctx, repo.CreatePendingPurchaseOptions{ItemID: 1, Buyer: "0xb", Seller: "0xs", AmountHeld: decimal.RequireFromString("1.5"), RequestedAt: now})
		require.NoError(t, err)
		assert.Equal(t, int64(1), pp.ID)

		_, err = r.CreatePendingPurchase(ctx, repo.CreatePendingPurchaseOptions{ItemID: 1, Buyer: "0xc", Seller: "0xs", AmountHeld: decimal.NewFromInt(2), RequestedAt: now})
		assert.ErrorIs(t, err, repo.ErrStatusConflict)

		_, err = r.AppendEntries(ctx, []repo.CreateEntryOptions{
			{PendingPurchaseID: 1, Kind: model.EntryKindDeposit, Account: model.CustodyAccount(1), Amount: decimal.NewFromInt(2), CreatedAt: now},
			{PendingPurchaseID: 1, Kind: model.EntryKindExcessRefund, Account: model.CustodyAccount(1), Amount: decimal.RequireFromString("-0.5"), CreatedAt: now},
			{PendingPurchaseID: 1, Kind: model.EntryKindExcessRefund, Account: "0xb", Amount: decimal.RequireFromString("0.5"), CreatedAt: now},
		})
		require.NoError(t, err)

		held, err := r.Balance(ctx, model.CustodyAccount(1))
		require.NoError(t, err)
		assert.True(t, held.Equal(decimal.RequireFromString("1.5")), "held %s", held)

		resolved, err := r.ResolvePendingPurchase(ctx, repo.ResolvePendingPurchaseOptions{ID: 1, Status: model.PendingPurchaseStatusApproved, ResolvedAt: now})
		require.NoError(t, err)
		require.NotNil(t, resolved.ResolvedAt)

		_, err = r.ResolvePendingPurchase(ctx, repo.ResolvePendingPurchaseOptions{ID: 1, Status: model.PendingPurchaseStatusRejected, ResolvedAt: now})
		assert.ErrorIs(t, err, repo.ErrStatusConflict)
	})

	t.Run("concurrent creates stay gapless", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := r.CreateItem(ctx, repo.CreateItemOptions{Name: "x", Description: "y", Price: decimal.NewFromInt(1), Seller: "0xs", CreatedAt: now})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		items, err := r.ListItems(ctx, repo.ListItemsOptions{})
		require.NoError(t, err)
		for i, it := range items {
			assert.Equal(t, int64(i+1), it.ID)
		}
		n, err := r.CountItems(ctx)
		require.NoError(t, err)
		assert.Equal(t, 22, n)
	})
}
