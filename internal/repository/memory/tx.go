package memory

import "context"

type txKey struct{}

func stagedFromContext(ctx context.Context) *tables {
	t, _ := ctx.Value(txKey{}).(*tables)
	return t
}

// WithTx stages every write on a private copy of the tables and swaps it in only
// when fn succeeds. The write lock is held for the whole of fn.
func (r *implRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if stagedFromContext(ctx) != nil {
		return fn(ctx)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	staged := r.state.clone()
	if err := fn(context.WithValue(ctx, txKey{}, staged)); err != nil {
		return err
	}
	r.state = staged
	return nil
}

// read runs fn against the transaction's staged tables when ctx carries one,
// otherwise against the committed snapshot under a read lock.
func (r *implRepository) read(ctx context.Context, fn func(t *tables)) {
	if staged := stagedFromContext(ctx); staged != nil {
		fn(staged)
		return
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn(r.state)
}

// write runs fn inside the caller's transaction, or in a single-statement one.
func (r *implRepository) write(ctx context.Context, fn func(t *tables) error) error {
	return r.WithTx(ctx, func(ctx context.Context) error {
		return fn(stagedFromContext(ctx))
	})
}
