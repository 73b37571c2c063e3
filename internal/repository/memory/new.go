package memory

import (
	"fmt"
	"slices"
	"sync"

	"escrow-marketplace/internal/model"
	"escrow-marketplace/internal/repository"
	"escrow-marketplace/pkg/log"
)

// tables is one consistent snapshot of the three append-only tables.
// Item and pending ids are 1-indexed positions in their slices.
type tables struct {
	items    []model.Item
	pendings []model.PendingPurchase
	entries  []model.LedgerEntry
}

// clone copies the mutable tables. Ledger entries are never modified in place,
// so the clipped slice can share its backing array with the committed snapshot.
func (t *tables) clone() *tables {
	return &tables{
		items:    slices.Clone(t.items),
		pendings: slices.Clone(t.pendings),
		entries:  slices.Clip(t.entries),
	}
}

type implRepository struct {
	mu    sync.RWMutex
	state *tables
	l     log.Logger
}

var _ repository.Repository = (*implRepository)(nil)

// New creates an in-process Repository. Writers are serialised; readers see the
// last committed snapshot.
func New(l log.Logger) repository.Repository {
	if l == nil {
		panic("repository/memory: logger is required")
	}
	return &implRepository{state: &tables{}, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("repository/memory.%s", method)
}
