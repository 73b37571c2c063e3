package usecase

import (
	"context"
	"errors"
	"sync"

	"escrow-marketplace/internal/event"
	"escrow-marketplace/internal/model"
	repo "escrow-marketplace/internal/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// recordingPublisher captures published events synchronously.
type recordingPublisher struct {
	mu     sync.Mutex
	events []event.Event
}

func (p *recordingPublisher) Publish(_ context.Context, e event.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

func (p *recordingPublisher) all() []event.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]event.Event(nil), p.events...)
}

var errStoreDown = errors.New("store down")

// brokenRepo fails every item call; it embeds repo.Repository so unused
// methods panic if reached.
type brokenRepo struct {
	repo.Repository
}

func (brokenRepo) CreateItem(context.Context, repo.CreateItemOptions) (model.Item, error) {
	return model.Item{}, errStoreDown
}

func (brokenRepo) GetOneItem(context.Context, repo.GetOneItemOptions) (model.Item, error) {
	return model.Item{}, errStoreDown
}

func (brokenRepo) ListItems(context.Context, repo.ListItemsOptions) ([]model.Item, error) {
	return nil, errStoreDown
}

func (brokenRepo) CountItems(context.Context) (int, error) {
	return 0, errStoreDown
}
