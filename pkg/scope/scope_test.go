package scope_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"escrow-marketplace/internal/model"
	"escrow-marketplace/pkg/scope"
)

func TestManagerRoundTrip(t *testing.T) {
	m, err := scope.New("secret", "escrow-marketplace")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	token, err := m.CreateToken("0xabc", time.Minute)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	payload, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if payload.Subject != "0xabc" {
		t.Errorf("expected subject 0xabc, got %q", payload.Subject)
	}
}

func TestManagerRejects(t *testing.T) {
	m, _ := scope.New("secret", "")
	other, _ := scope.New("other-secret", "")

	foreign, _ := other.CreateToken("0xabc", time.Minute)
	expired, _ := m.CreateToken("0xabc", -time.Minute)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"wrong key", foreign},
		{"expired", expired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := m.Verify(tt.token); !errors.Is(err, scope.ErrInvalidToken) {
				t.Errorf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestNewRequiresKey(t *testing.T) {
	if _, err := scope.New("", ""); !errors.Is(err, scope.ErrMissingKey) {
		t.Errorf("expected ErrMissingKey, got %v", err)
	}
}

func TestScopeContext(t *testing.T) {
	if _, ok := scope.GetScopeFromContext(context.Background()); ok {
		t.Fatal("expected no scope on empty context")
	}
	ctx := scope.SetScopeToContext(context.Background(), model.Scope{Address: "0xabc"})
	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok || sc.Address != "0xabc" {
		t.Errorf("unexpected scope %+v", sc)
	}
}
