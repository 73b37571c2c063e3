package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	"escrow-marketplace/internal/event"
	"escrow-marketplace/internal/ledger"
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

type recordingPublisher struct {
	mu     sync.Mutex
	events []event.Event
}

func (p *recordingPublisher) Publish(_ context.Context, e event.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

func (p *recordingPublisher) types() []event.Type {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]event.Type, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}

func (p *recordingPublisher) last() event.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.events[len(p.events)-1]
}

var errTransferFailed = errors.New("transfer failed")

// flakyDisburser delegates to a real Disburser but can fail chosen calls after
// they have already written, to prove the surrounding transaction rolls back.
type flakyDisburser struct {
	ledger.Disburser
	failCredit  bool
	failDeposit bool
}

func (d *flakyDisburser) Deposit(ctx context.Context, input ledger.DepositInput) error {
	if err := d.Disburser.Deposit(ctx, input); err != nil {
		return err
	}
	if d.failDeposit {
		return errTransferFailed
	}
	return nil
}

func (d *flakyDisburser) Credit(ctx context.Context, input ledger.CreditInput) error {
	if err := d.Disburser.Credit(ctx, input); err != nil {
		return err
	}
	if d.failCredit {
		return errTransferFailed
	}
	return nil
}

func (d *flakyDisburser) Custody(ctx context.Context, id int64) (decimal.Decimal, error) {
	return d.Disburser.Custody(ctx, id)
}
